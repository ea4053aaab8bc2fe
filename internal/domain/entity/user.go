package entity

import "time"

// Role names constants
const (
	RolePatient       = "patient"
	RoleDoctor        = "doctor"
	RoleHospitalAdmin = "hospitalAdmin"
)

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)

// User is the single account record shared by all roles. Role-specific
// fields stay empty for the other roles; the password is stored and
// compared verbatim.
type User struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`

	// Patient fields
	Gender   string `json:"gender,omitempty"`
	DOB      string `json:"dob,omitempty"` // "2006-01-02"
	UniqueID string `json:"uniqueId,omitempty"`

	// Doctor fields
	Qualifications string `json:"qualifications,omitempty"`
	Experience     int    `json:"experience,omitempty"` // years
	Specialization string `json:"specialization,omitempty"`
}

// IsPatient checks if the user holds the patient role
func (u *User) IsPatient() bool {
	return u.Role == RolePatient
}

// IsDoctor checks if the user holds the doctor role
func (u *User) IsDoctor() bool {
	return u.Role == RoleDoctor
}

// IsHospitalAdmin checks if the user holds the hospital admin role
func (u *User) IsHospitalAdmin() bool {
	return u.Role == RoleHospitalAdmin
}
