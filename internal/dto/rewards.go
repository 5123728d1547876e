package dto

import "time"

type BalanceResponseDTO struct {
	Balance int `json:"balance" example:"120"`
}

type TransactionDTO struct {
	ID          int    `json:"id" example:"17"`
	Type        string `json:"type" example:"earned_report"`
	Amount      int    `json:"amount" example:"10"`
	Description string `json:"description" example:"Points earned for reporting waste"`
	Date        string `json:"date" example:"2025-04-12T16:09:57+03:00"`
}

type RewardDTO struct {
	ID             int    `json:"id" example:"3"`
	Name           string `json:"name" example:"Reusable bottle"`
	Cost           int    `json:"cost" example:"100"`
	Description    string `json:"description,omitempty"`
	CollectionInfo string `json:"collectionInfo,omitempty"`
}

type RedeemRequestDTO struct {
	RewardID int `json:"rewardId" example:"3"`
}

type RedeemResponseDTO struct {
	Balance int        `json:"balance" example:"20"`
	Coupon  *CouponDTO `json:"coupon,omitempty"`
}

type CouponDTO struct {
	Code     string    `json:"code" example:"COUPON-1744380000000-9f8b2c1a"`
	Discount int       `json:"discount" example:"10"`
	Expiry   time.Time `json:"expiry" example:"2025-05-12T16:09:57+03:00"`
}

type LeaderboardEntryDTO struct {
	UserID int    `json:"userId" example:"7"`
	Name   string `json:"name" example:"Anna"`
	Points int    `json:"points" example:"320"`
	Level  int    `json:"level" example:"2"`
}
