package dto

import "time"

// Request DTOs

// BookAppointmentRequest carries the chosen slot and the amount the
// patient offers to pay. Both are checked field by field in the usecase
// so each failure maps to its own error, not a generic validation bag.
type BookAppointmentRequest struct {
	SlotID string `json:"slotId"`
	Amount int64  `json:"amount"`
}

// Response DTOs

type AppointmentResponse struct {
	ID             string     `json:"id"`
	PatientID      string     `json:"patientId"`
	PatientName    string     `json:"patient"`
	DoctorID       string     `json:"doctorId"`
	DoctorName     string     `json:"doctor"`
	Specialization string     `json:"specialization"`
	HospitalID     string     `json:"hospitalId"`
	HospitalName   string     `json:"hospital"`
	Slot           string     `json:"slot"`
	Fee            int64      `json:"fee"`
	Status         string     `json:"status"`
	BookedAt       time.Time  `json:"bookedAt"`
	CancelledAt    *time.Time `json:"cancelledAt,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
