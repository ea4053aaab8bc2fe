package entity

import "time"

// AuditLog represents a system audit trail entry
type AuditLog struct {
	ID        string                 `json:"id"`
	UserID    string                 `json:"userId,omitempty"`
	Action    string                 `json:"action"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}

// Common audit actions
const (
	AuditActionUserRegister     = "user.register"
	AuditActionUserLogin        = "user.login"
	AuditActionUserLogout       = "user.logout"
	AuditActionBookingCreate    = "booking.create"
	AuditActionBookingCancel    = "booking.cancel"
	AuditActionSlotCreate       = "slot.create"
	AuditActionHospitalCreate   = "hospital.create"
	AuditActionHospitalDelete   = "hospital.delete"
	AuditActionDepartmentCreate = "department.create"
	AuditActionDepartmentDelete = "department.delete"
)
