package entity

import "time"

// AppointmentStatus represents the status of an appointment record
type AppointmentStatus string

const (
	AppointmentStatusConfirmed AppointmentStatus = "Confirmed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

// AppointmentRecord is one confirmed or cancelled booking in a patient ledger.
// Field names in JSON match the persisted ledger shape, so a ledger written by
// an earlier deployment decodes unchanged. A record is immutable after
// creation except for the one-way Confirmed -> Cancelled transition.
type AppointmentRecord struct {
	ID             string            `json:"id"`
	PatientID      string            `json:"patientId"`
	PatientName    string            `json:"patient"`
	DoctorID       string            `json:"doctorId"`
	DoctorName     string            `json:"doctor"`
	Specialization string            `json:"specialization"`
	HospitalID     string            `json:"hospitalId"`
	HospitalName   string            `json:"hospital"`
	Slot           string            `json:"slot"` // "YYYY-MM-DD HH:MM"
	Fee            int64             `json:"fee"`
	BookedAt       time.Time         `json:"bookedAt"`
	Status         AppointmentStatus `json:"status"`
	CancelledAt    *time.Time        `json:"cancelledAt,omitempty"`
}

// IsConfirmed checks if the appointment is confirmed
func (r *AppointmentRecord) IsConfirmed() bool {
	return r.Status == AppointmentStatusConfirmed
}

// IsCancelled checks if the appointment is cancelled
func (r *AppointmentRecord) IsCancelled() bool {
	return r.Status == AppointmentStatusCancelled
}

// Cancel transitions the record to cancelled and stamps the time.
func (r *AppointmentRecord) Cancel(at time.Time) {
	r.Status = AppointmentStatusCancelled
	r.CancelledAt = &at
}

// SlotTime parses the combined date+time slot descriptor.
func (r *AppointmentRecord) SlotTime() (time.Time, error) {
	return time.Parse("2006-01-02 15:04", r.Slot)
}
