package repository

import (
	"context"
	"strings"

	"medibook/internal/domain/entity"
	domainRepo "medibook/internal/domain/repository"
	"medibook/internal/infrastructure/kvstore"

	"github.com/sirupsen/logrus"
)

type ledgerRepository struct {
	store kvstore.Store
	log   *logrus.Logger
}

func NewLedgerRepository(store kvstore.Store, log *logrus.Logger) domainRepo.LedgerRepository {
	return &ledgerRepository{store: store, log: log}
}

func (r *ledgerRepository) Load(ctx context.Context, patientUniqueID string) ([]entity.AppointmentRecord, error) {
	return loadList[entity.AppointmentRecord](ctx, r.store, r.log, patientHistoryKey(patientUniqueID))
}

// Save writes the whole ledger and keeps the patient index in step, so a
// ledger created through Save alone is still discoverable by LoadAll.
func (r *ledgerRepository) Save(ctx context.Context, patientUniqueID string, records []entity.AppointmentRecord) error {
	if err := saveList(ctx, r.store, patientHistoryKey(patientUniqueID), records); err != nil {
		return err
	}
	return r.index(ctx, patientUniqueID)
}

func (r *ledgerRepository) Append(ctx context.Context, patientUniqueID string, record *entity.AppointmentRecord) error {
	records, err := r.Load(ctx, patientUniqueID)
	if err != nil {
		return err
	}
	records = append(records, *record)
	return r.Save(ctx, patientUniqueID, records)
}

// LoadAll unions every per-patient ledger. Discovery goes through the
// patient index; ledger keys written before the index existed are picked
// up by a one-time prefix scan that rebuilds it. Order across patients
// is unspecified; callers sort as needed.
func (r *ledgerRepository) LoadAll(ctx context.Context) ([]entity.AppointmentRecord, error) {
	patientIDs, err := r.patientIDs(ctx)
	if err != nil {
		return nil, err
	}

	all := make([]entity.AppointmentRecord, 0)
	for _, id := range patientIDs {
		records, err := r.Load(ctx, id)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
	}
	return all, nil
}

// index records the patient id in the ledger index, once.
func (r *ledgerRepository) index(ctx context.Context, patientUniqueID string) error {
	ids, err := loadList[string](ctx, r.store, r.log, patientIndexKey)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == patientUniqueID {
			return nil
		}
	}
	return saveList(ctx, r.store, patientIndexKey, append(ids, patientUniqueID))
}

func (r *ledgerRepository) patientIDs(ctx context.Context) ([]string, error) {
	ids, err := loadList[string](ctx, r.store, r.log, patientIndexKey)
	if err != nil {
		return nil, err
	}
	if len(ids) > 0 {
		return ids, nil
	}

	// Empty index: pre-index data may still sit under history keys.
	keys, err := r.store.Keys(ctx, patientHistoryPrefix)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, nil
	}

	ids = make([]string, 0, len(keys))
	for _, key := range keys {
		ids = append(ids, strings.TrimPrefix(key, patientHistoryPrefix))
	}
	if err := saveList(ctx, r.store, patientIndexKey, ids); err != nil {
		r.log.Warnf("Failed to rebuild ledger index: %+v", err)
	}
	return ids, nil
}
