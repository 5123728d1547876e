package dto

import "time"

type CreateReportRequestDTO struct {
	Location  string `json:"location" validate:"required" example:"40.7128,-74.0060"`
	WasteType string `json:"wasteType" validate:"required" example:"plastic"`
	Amount    string `json:"amount" validate:"required" example:"2.5 kg"`
	ImageURL  string `json:"imageUrl,omitempty" example:"https://cdn.example.com/waste/42.jpg"`
}

type ReportResponseDTO struct {
	ID                 int       `json:"id" example:"42"`
	Location           string    `json:"location" example:"40.7128,-74.0060"`
	WasteType          string    `json:"wasteType" example:"plastic"`
	Amount             string    `json:"amount" example:"2.5 kg"`
	Status             string    `json:"status" example:"pending"`
	VerificationStatus string    `json:"verificationStatus" example:"pending"`
	CreatedAt          time.Time `json:"createdAt"`
}

type TaskDTO struct {
	ID          int    `json:"id" example:"42"`
	Location    string `json:"location" example:"40.7128,-74.0060"`
	WasteType   string `json:"wasteType" example:"plastic"`
	Amount      string `json:"amount" example:"2.5 kg"`
	Status      string `json:"status" example:"in_progress"`
	CollectorID *int   `json:"collectorId,omitempty" example:"9"`
	Date        string `json:"date" example:"2025-04-12"`
}

type UpdateStatusRequestDTO struct {
	Status      string `json:"status" validate:"required,oneof=pending in_progress collected" example:"in_progress"`
	CollectorID *int   `json:"collectorId,omitempty" example:"9"`
}

type CollectedWasteDTO struct {
	ID             int       `json:"id" example:"11"`
	ReportID       int       `json:"reportId" example:"42"`
	CollectorID    int       `json:"collectorId" example:"9"`
	CollectionDate time.Time `json:"collectionDate"`
	Status         string    `json:"status" example:"verified"`
}
