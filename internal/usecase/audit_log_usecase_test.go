package usecase_test

import (
	"context"
	"testing"

	"medibook/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditTrail(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	e.registerPatient(t, "Priya Nair", "priya@example.com", "AAD-1001")
	e.login(t, "priya@example.com")
	e.addHospital(t, "Apollo Hospital", "Chennai")

	trail, err := e.auditLog.GetAllAuditLogs(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, trail.Total)

	actions := make([]string, 0, len(trail.Logs))
	for _, l := range trail.Logs {
		actions = append(actions, l.Action)
	}
	assert.Contains(t, actions, entity.AuditActionUserRegister)
	assert.Contains(t, actions, entity.AuditActionUserLogin)
	assert.Contains(t, actions, entity.AuditActionHospitalCreate)

	for i := 1; i < len(trail.Logs); i++ {
		assert.False(t, trail.Logs[i-1].CreatedAt.Before(trail.Logs[i].CreatedAt))
	}
}
