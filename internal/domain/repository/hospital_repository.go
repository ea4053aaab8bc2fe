package repository

import (
	"context"

	"medibook/internal/domain/entity"
)

type HospitalRepository interface {
	FindAll(ctx context.Context) ([]entity.Hospital, error)
	// FindByID returns nil when absent.
	FindByID(ctx context.Context, id string) (*entity.Hospital, error)
	Create(ctx context.Context, hospital *entity.Hospital) error
	Delete(ctx context.Context, id string) error
}

type DepartmentRepository interface {
	FindAll(ctx context.Context) ([]entity.Department, error)
	FindByHospitalID(ctx context.Context, hospitalID string) ([]entity.Department, error)
	// FindByID returns nil when absent.
	FindByID(ctx context.Context, id string) (*entity.Department, error)
	Create(ctx context.Context, department *entity.Department) error
	Delete(ctx context.Context, id string) error
}
