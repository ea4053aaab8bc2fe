package repository_test

import (
	"context"
	"io"
	"testing"
	"time"

	"medibook/internal/domain/entity"
	"medibook/internal/infrastructure/kvstore"
	"medibook/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestLedgerRepository_AppendAndLoad(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := repository.NewLedgerRepository(store, discardLogger())

	records, err := repo.Load(ctx, "AAD-1001")
	require.NoError(t, err)
	assert.Empty(t, records)

	record := &entity.AppointmentRecord{
		ID:          "apt-1",
		PatientName: "Priya Nair",
		DoctorName:  "Dr. Arjun Rao",
		Fee:         500,
		BookedAt:    time.Now(),
		Status:      entity.AppointmentStatusConfirmed,
	}
	require.NoError(t, repo.Append(ctx, "AAD-1001", record))

	records, err = repo.Load(ctx, "AAD-1001")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "apt-1", records[0].ID)

	// Each patient gets an isolated ledger key.
	other, err := repo.Load(ctx, "AAD-1002")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestLedgerRepository_LoadAll(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := repository.NewLedgerRepository(store, discardLogger())

	require.NoError(t, repo.Append(ctx, "AAD-1001", &entity.AppointmentRecord{ID: "apt-1"}))
	require.NoError(t, repo.Append(ctx, "AAD-1001", &entity.AppointmentRecord{ID: "apt-2"}))
	require.NoError(t, repo.Append(ctx, "AAD-1002", &entity.AppointmentRecord{ID: "apt-3"}))

	records, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestLedgerRepository_RebuildsIndexFromLegacyKeys(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := repository.NewLedgerRepository(store, discardLogger())

	// A ledger written before the index existed: history key only.
	require.NoError(t, store.Set(ctx, "patientHistory_AAD-1001", `[{"id":"apt-1"}]`))

	records, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	value, found, err := store.Get(ctx, "patientHistoryIndex")
	require.NoError(t, err)
	require.True(t, found)
	assert.Contains(t, value, "AAD-1001")
}

func TestLedgerRepository_CorruptValueResets(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := repository.NewLedgerRepository(store, discardLogger())

	require.NoError(t, store.Set(ctx, "patientHistory_AAD-1001", `{not json`))

	// Undecodable state is treated as empty, never surfaced as an error,
	// and the key is reset so the next write starts clean.
	records, err := repo.Load(ctx, "AAD-1001")
	require.NoError(t, err)
	assert.Empty(t, records)

	value, found, err := store.Get(ctx, "patientHistory_AAD-1001")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "[]", value)
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := repository.NewSessionRepository(store, discardLogger())

	current, err := repo.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	user := &entity.User{ID: "u1", Role: entity.RolePatient, Email: "priya@example.com"}
	require.NoError(t, repo.SetCurrent(ctx, user))

	current, err = repo.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "u1", current.ID)

	require.NoError(t, repo.Clear(ctx))
	current, err = repo.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestSessionRepository_CorruptValueClears(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := repository.NewSessionRepository(store, discardLogger())

	require.NoError(t, store.Set(ctx, "currentUser", `{not json`))

	current, err := repo.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	_, found, err := store.Get(ctx, "currentUser")
	require.NoError(t, err)
	assert.False(t, found)
}
