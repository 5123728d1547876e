package dto

import "time"

type NotificationDTO struct {
	ID        int       `json:"id" example:"5"`
	Message   string    `json:"message" example:"You've earned 10 points for reporting waste!"`
	Type      string    `json:"type" example:"reward"`
	CreatedAt time.Time `json:"createdAt"`
}
