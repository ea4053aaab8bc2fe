package service

import (
	"context"
	"time"

	"medibook/internal/domain/entity"
	"medibook/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AuditService records an audit trail alongside business mutations.
// Recording is best effort: a failed write is logged and swallowed so an
// audit problem never fails the operation being audited.
type AuditService interface {
	LogCreate(ctx context.Context, userID, action, entityName, entityID string, newValue interface{})
	LogDelete(ctx context.Context, userID, action, entityName, entityID string, oldValue interface{})
	LogAction(ctx context.Context, userID, action string, metadata map[string]interface{})
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, userID, action, entityName, entityID string, newValue interface{}) {
	s.LogAction(ctx, userID, action, map[string]interface{}{
		"entity":    entityName,
		"entity_id": entityID,
		"new_value": newValue,
	})
}

// LogDelete logs a delete action
func (s *auditService) LogDelete(ctx context.Context, userID, action, entityName, entityID string, oldValue interface{}) {
	s.LogAction(ctx, userID, action, map[string]interface{}{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
	})
}

func (s *auditService) LogAction(ctx context.Context, userID, action string, metadata map[string]interface{}) {
	entry := &entity.AuditLog{
		ID:        uuid.NewString(),
		UserID:    userID,
		Action:    action,
		Metadata:  metadata,
		CreatedAt: time.Now(),
	}

	if err := s.auditRepo.Create(ctx, entry); err != nil {
		s.log.Warnf("Failed to create audit log for action %s: %+v", action, err)
	}
}
