package repository

import (
	"context"

	"medibook/internal/domain/entity"
)

// LedgerRepository persists one append-mostly appointment ledger per
// patient, keyed by the patient's unique id. LoadAll unions every
// per-patient ledger into the hospital-wide appointment set the admin
// aggregations run over.
type LedgerRepository interface {
	Load(ctx context.Context, patientUniqueID string) ([]entity.AppointmentRecord, error)
	Save(ctx context.Context, patientUniqueID string, records []entity.AppointmentRecord) error
	Append(ctx context.Context, patientUniqueID string, record *entity.AppointmentRecord) error
	LoadAll(ctx context.Context) ([]entity.AppointmentRecord, error)
}
