package dto

import "time"

// Request DTOs

type AddSlotRequest struct {
	HospitalID string `json:"hospitalId" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime  string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime    string `json:"endTime" validate:"required,datetime=15:04"`
	Fee        int64  `json:"fee" validate:"required,gt=0"`
}

// Response DTOs

type SlotResponse struct {
	ID         string    `json:"id"`
	DoctorID   string    `json:"doctorId"`
	HospitalID string    `json:"hospitalId"`
	Date       string    `json:"date"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	Fee        int64     `json:"fee"`
	Booked     bool      `json:"booked"`
	CreatedAt  time.Time `json:"createdAt"`
}

type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
	Total int            `json:"total"`
}
