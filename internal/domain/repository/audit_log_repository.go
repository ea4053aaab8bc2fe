package repository

import (
	"context"

	"medibook/internal/domain/entity"
)

type AuditLogRepository interface {
	FindAll(ctx context.Context) ([]entity.AuditLog, error)
	Create(ctx context.Context, log *entity.AuditLog) error
}
