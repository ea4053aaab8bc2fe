package usecase_test

import (
	"context"
	"testing"

	"medibook/internal/delivery/dto"
	"medibook/internal/domain/entity"
	"medibook/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterPatient(t *testing.T) {
	e := newEnv(t)

	user := e.registerPatient(t, "Priya Nair", "priya@example.com", "AAD-1001")
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, entity.RolePatient, user.Role)
	assert.Equal(t, "AAD-1001", user.UniqueID)
}

func TestRegisterDoctor(t *testing.T) {
	e := newEnv(t)

	user := e.registerDoctor(t, "Dr. Arjun Rao", "arjun@example.com", "Cardiology")
	assert.Equal(t, entity.RoleDoctor, user.Role)
	assert.Equal(t, "Cardiology", user.Specialization)
}

func TestRegisterAdmin(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	user, err := e.auth.RegisterAdmin(ctx, &dto.RegisterAdminRequest{
		Name:     "Meera Iyer",
		Email:    "meera@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleHospitalAdmin, user.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.registerPatient(t, "Priya Nair", "priya@example.com", "AAD-1001")

	// Email uniqueness spans roles and is case-insensitive.
	_, err := e.auth.RegisterDoctor(ctx, &dto.RegisterDoctorRequest{
		Name:           "Dr. Arjun Rao",
		Email:          "PRIYA@example.com",
		Password:       "secret1",
		Qualifications: "MBBS",
		Experience:     3,
		Specialization: "Cardiology",
	})
	assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
}

func TestRegisterPatient_Validation(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	tests := []struct {
		name string
		req  *dto.RegisterPatientRequest
	}{
		{
			name: "short password",
			req: &dto.RegisterPatientRequest{
				Name: "Priya Nair", Email: "priya@example.com", Password: "abc",
				Gender: "F", DOB: "1990-04-12", UniqueID: "AAD-1001",
			},
		},
		{
			name: "bad gender",
			req: &dto.RegisterPatientRequest{
				Name: "Priya Nair", Email: "priya@example.com", Password: "secret1",
				Gender: "X", DOB: "1990-04-12", UniqueID: "AAD-1001",
			},
		},
		{
			name: "bad dob format",
			req: &dto.RegisterPatientRequest{
				Name: "Priya Nair", Email: "priya@example.com", Password: "secret1",
				Gender: "F", DOB: "12-04-1990", UniqueID: "AAD-1001",
			},
		},
		{
			name: "missing unique id",
			req: &dto.RegisterPatientRequest{
				Name: "Priya Nair", Email: "priya@example.com", Password: "secret1",
				Gender: "F", DOB: "1990-04-12",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.auth.RegisterPatient(ctx, tt.req)
			assert.Error(t, err)
		})
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.registerPatient(t, "Priya Nair", "priya@example.com", "AAD-1001")

	user, err := e.auth.Login(ctx, &dto.LoginRequest{
		Email:    "priya@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "priya@example.com", user.Email)

	current, err := e.auth.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, current.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.registerPatient(t, "Priya Nair", "priya@example.com", "AAD-1001")

	_, err := e.auth.Login(ctx, &dto.LoginRequest{
		Email:    "priya@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)

	_, err = e.auth.Login(ctx, &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret1",
	})
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

func TestLogin_ReplacesSession(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.registerPatient(t, "Priya Nair", "priya@example.com", "AAD-1001")
	doctor := e.registerDoctor(t, "Dr. Arjun Rao", "arjun@example.com", "Cardiology")

	e.login(t, "priya@example.com")
	e.login(t, "arjun@example.com")

	current, err := e.auth.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, doctor.ID, current.ID)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.registerPatient(t, "Priya Nair", "priya@example.com", "AAD-1001")
	e.login(t, "priya@example.com")

	require.NoError(t, e.auth.Logout(ctx))

	_, err := e.auth.GetCurrentUser(ctx)
	assert.ErrorIs(t, err, usecase.ErrNotSignedIn)

	assert.ErrorIs(t, e.auth.Logout(ctx), usecase.ErrNotSignedIn)
}

func TestRegister_PersistsCredentials(t *testing.T) {
	e := newEnv(t)

	user := e.registerPatient(t, "Priya Nair", "priya@example.com", "AAD-1001")

	// Credentials round-trip through the store as-is; the response DTO is
	// the only place the password is stripped.
	value, found, err := e.store.Get(context.Background(), "users")
	require.NoError(t, err)
	require.True(t, found)
	assert.Contains(t, value, user.ID)
	assert.Contains(t, value, `"password":"secret1"`)
}
