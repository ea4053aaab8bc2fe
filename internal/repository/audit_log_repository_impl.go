package repository

import (
	"context"

	"medibook/internal/domain/entity"
	domainRepo "medibook/internal/domain/repository"
	"medibook/internal/infrastructure/kvstore"

	"github.com/sirupsen/logrus"
)

type auditLogRepository struct {
	store kvstore.Store
	log   *logrus.Logger
}

func NewAuditLogRepository(store kvstore.Store, log *logrus.Logger) domainRepo.AuditLogRepository {
	return &auditLogRepository{store: store, log: log}
}

func (r *auditLogRepository) FindAll(ctx context.Context) ([]entity.AuditLog, error) {
	return loadList[entity.AuditLog](ctx, r.store, r.log, auditLogsKey)
}

func (r *auditLogRepository) Create(ctx context.Context, logEntry *entity.AuditLog) error {
	entries, err := r.FindAll(ctx)
	if err != nil {
		return err
	}
	entries = append(entries, *logEntry)
	return saveList(ctx, r.store, auditLogsKey, entries)
}
