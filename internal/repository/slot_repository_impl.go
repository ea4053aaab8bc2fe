package repository

import (
	"context"

	"medibook/internal/domain/entity"
	domainRepo "medibook/internal/domain/repository"
	"medibook/internal/infrastructure/kvstore"

	"github.com/sirupsen/logrus"
)

type slotRepository struct {
	store kvstore.Store
	log   *logrus.Logger
}

func NewSlotRepository(store kvstore.Store, log *logrus.Logger) domainRepo.SlotRepository {
	return &slotRepository{store: store, log: log}
}

func (r *slotRepository) FindAll(ctx context.Context) ([]entity.Slot, error) {
	return loadList[entity.Slot](ctx, r.store, r.log, doctorSlotsKey)
}

func (r *slotRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]entity.Slot, error) {
	slots, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	mine := make([]entity.Slot, 0)
	for _, s := range slots {
		if s.DoctorID == doctorID {
			mine = append(mine, s)
		}
	}
	return mine, nil
}

func (r *slotRepository) FindByID(ctx context.Context, id string) (*entity.Slot, error) {
	slots, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range slots {
		if slots[i].ID == id {
			return &slots[i], nil
		}
	}
	return nil, nil
}

func (r *slotRepository) Create(ctx context.Context, slot *entity.Slot) error {
	slots, err := r.FindAll(ctx)
	if err != nil {
		return err
	}
	slots = append(slots, *slot)
	return saveList(ctx, r.store, doctorSlotsKey, slots)
}

func (r *slotRepository) Update(ctx context.Context, slot *entity.Slot) error {
	slots, err := r.FindAll(ctx)
	if err != nil {
		return err
	}
	for i := range slots {
		if slots[i].ID == slot.ID {
			slots[i] = *slot
			break
		}
	}
	return saveList(ctx, r.store, doctorSlotsKey, slots)
}
