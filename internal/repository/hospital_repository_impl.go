package repository

import (
	"context"

	"medibook/internal/domain/entity"
	domainRepo "medibook/internal/domain/repository"
	"medibook/internal/infrastructure/kvstore"

	"github.com/sirupsen/logrus"
)

type hospitalRepository struct {
	store kvstore.Store
	log   *logrus.Logger
}

func NewHospitalRepository(store kvstore.Store, log *logrus.Logger) domainRepo.HospitalRepository {
	return &hospitalRepository{store: store, log: log}
}

func (r *hospitalRepository) FindAll(ctx context.Context) ([]entity.Hospital, error) {
	return loadList[entity.Hospital](ctx, r.store, r.log, hospitalsKey)
}

func (r *hospitalRepository) FindByID(ctx context.Context, id string) (*entity.Hospital, error) {
	hospitals, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range hospitals {
		if hospitals[i].ID == id {
			return &hospitals[i], nil
		}
	}
	return nil, nil
}

func (r *hospitalRepository) Create(ctx context.Context, hospital *entity.Hospital) error {
	hospitals, err := r.FindAll(ctx)
	if err != nil {
		return err
	}
	hospitals = append(hospitals, *hospital)
	return saveList(ctx, r.store, hospitalsKey, hospitals)
}

func (r *hospitalRepository) Delete(ctx context.Context, id string) error {
	hospitals, err := r.FindAll(ctx)
	if err != nil {
		return err
	}
	kept := hospitals[:0]
	for _, h := range hospitals {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	return saveList(ctx, r.store, hospitalsKey, kept)
}

type departmentRepository struct {
	store kvstore.Store
	log   *logrus.Logger
}

func NewDepartmentRepository(store kvstore.Store, log *logrus.Logger) domainRepo.DepartmentRepository {
	return &departmentRepository{store: store, log: log}
}

func (r *departmentRepository) FindAll(ctx context.Context) ([]entity.Department, error) {
	return loadList[entity.Department](ctx, r.store, r.log, departmentsKey)
}

func (r *departmentRepository) FindByHospitalID(ctx context.Context, hospitalID string) ([]entity.Department, error) {
	departments, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	linked := make([]entity.Department, 0)
	for _, d := range departments {
		if d.HospitalID == hospitalID {
			linked = append(linked, d)
		}
	}
	return linked, nil
}

func (r *departmentRepository) FindByID(ctx context.Context, id string) (*entity.Department, error) {
	departments, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range departments {
		if departments[i].ID == id {
			return &departments[i], nil
		}
	}
	return nil, nil
}

func (r *departmentRepository) Create(ctx context.Context, department *entity.Department) error {
	departments, err := r.FindAll(ctx)
	if err != nil {
		return err
	}
	departments = append(departments, *department)
	return saveList(ctx, r.store, departmentsKey, departments)
}

func (r *departmentRepository) Delete(ctx context.Context, id string) error {
	departments, err := r.FindAll(ctx)
	if err != nil {
		return err
	}
	kept := departments[:0]
	for _, d := range departments {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	return saveList(ctx, r.store, departmentsKey, kept)
}
