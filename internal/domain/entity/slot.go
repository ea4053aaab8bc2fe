package entity

import "time"

// Slot is a doctor-declared availability window at one hospital.
// A slot is consumed at most once: booking marks it Booked instead of
// deleting it, so it drops out of the offer set but stays in history.
type Slot struct {
	ID         string    `json:"id"`
	DoctorID   string    `json:"doctorId"`
	HospitalID string    `json:"hospitalId"`
	Date       string    `json:"date"`      // "2006-01-02"
	StartTime  string    `json:"startTime"` // "15:04"
	EndTime    string    `json:"endTime"`   // "15:04"
	Fee        int64     `json:"fee"`
	Booked     bool      `json:"booked"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ConflictsWith reports whether two slots for the same doctor collide.
// Slots conflict when they share hospital and date and their
// [StartTime, EndTime) half-open intervals intersect, so back-to-back
// slots like 10:00-11:00 and 11:00-12:00 do not conflict.
// Zero-padded HH:MM strings order correctly under string comparison.
func (s *Slot) ConflictsWith(other *Slot) bool {
	if s.HospitalID != other.HospitalID || s.Date != other.Date {
		return false
	}
	return s.StartTime < other.EndTime && other.StartTime < s.EndTime
}

// When returns the combined date+time descriptor recorded on bookings.
func (s *Slot) When() string {
	return s.Date + " " + s.StartTime
}
