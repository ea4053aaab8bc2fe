package repository

import (
	"context"

	"medibook/internal/domain/entity"
)

// SlotRepository stores the global availability collection. Slots are
// never deleted; booking flips the Booked flag via Update.
type SlotRepository interface {
	FindAll(ctx context.Context) ([]entity.Slot, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]entity.Slot, error)
	// FindByID returns nil when absent.
	FindByID(ctx context.Context, id string) (*entity.Slot, error)
	Create(ctx context.Context, slot *entity.Slot) error
	Update(ctx context.Context, slot *entity.Slot) error
}
