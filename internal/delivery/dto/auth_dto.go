package dto

import "time"

// Request DTOs

type RegisterPatientRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Gender   string `json:"gender" validate:"required,oneof=M F"`
	DOB      string `json:"dob" validate:"required,datetime=2006-01-02"`
	UniqueID string `json:"uniqueId" validate:"required"`
}

type RegisterDoctorRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	Qualifications string `json:"qualifications" validate:"required"`
	Experience     int    `json:"experience" validate:"gte=0"`
	Specialization string `json:"specialization" validate:"required"`
}

type RegisterAdminRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type UserResponse struct {
	ID             string    `json:"id"`
	Role           string    `json:"role"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Gender         string    `json:"gender,omitempty"`
	DOB            string    `json:"dob,omitempty"`
	UniqueID       string    `json:"uniqueId,omitempty"`
	Qualifications string    `json:"qualifications,omitempty"`
	Experience     int       `json:"experience,omitempty"`
	Specialization string    `json:"specialization,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}
