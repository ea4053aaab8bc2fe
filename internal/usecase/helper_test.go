package usecase_test

import (
	"context"
	"io"
	"testing"

	"medibook/internal/delivery/dto"
	"medibook/internal/infrastructure/kvstore"
	"medibook/internal/repository"
	"medibook/internal/service"
	"medibook/internal/usecase"
	"medibook/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// env wires every usecase over a fresh in-memory store, the same way
// bootstrap does in production.
type env struct {
	store    *kvstore.MemoryStore
	auth     usecase.AuthUsecase
	slots    usecase.SlotUsecase
	bookings usecase.BookingUsecase
	reports  usecase.ReportUsecase
	admin    usecase.AdminUsecase
	auditLog usecase.AuditLogUsecase
}

func newEnv(t *testing.T) *env {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	store := kvstore.NewMemoryStore()
	customValidator := validator.NewValidator()

	userRepo := repository.NewUserRepository(store, log)
	sessionRepo := repository.NewSessionRepository(store, log)
	hospitalRepo := repository.NewHospitalRepository(store, log)
	departmentRepo := repository.NewDepartmentRepository(store, log)
	slotRepo := repository.NewSlotRepository(store, log)
	ledgerRepo := repository.NewLedgerRepository(store, log)
	auditLogRepo := repository.NewAuditLogRepository(store, log)

	auditService := service.NewAuditService(log, auditLogRepo)

	return &env{
		store:    store,
		auth:     usecase.NewAuthUsecase(log, customValidator, userRepo, sessionRepo, auditService),
		slots:    usecase.NewSlotUsecase(log, customValidator, slotRepo, userRepo, hospitalRepo, auditService),
		bookings: usecase.NewBookingUsecase(log, ledgerRepo, slotRepo, userRepo, hospitalRepo, sessionRepo, auditService),
		reports:  usecase.NewReportUsecase(log, ledgerRepo, userRepo, hospitalRepo, departmentRepo),
		admin:    usecase.NewAdminUsecase(log, customValidator, userRepo, hospitalRepo, departmentRepo, sessionRepo, auditService),
		auditLog: usecase.NewAuditLogUsecase(log, auditLogRepo),
	}
}

func (e *env) registerPatient(t *testing.T, name, email, uniqueID string) *dto.UserResponse {
	t.Helper()
	user, err := e.auth.RegisterPatient(context.Background(), &dto.RegisterPatientRequest{
		Name:     name,
		Email:    email,
		Password: "secret1",
		Gender:   "F",
		DOB:      "1990-04-12",
		UniqueID: uniqueID,
	})
	require.NoError(t, err)
	return user
}

func (e *env) registerDoctor(t *testing.T, name, email, specialization string) *dto.UserResponse {
	t.Helper()
	user, err := e.auth.RegisterDoctor(context.Background(), &dto.RegisterDoctorRequest{
		Name:           name,
		Email:          email,
		Password:       "secret1",
		Qualifications: "MBBS, MD",
		Experience:     8,
		Specialization: specialization,
	})
	require.NoError(t, err)
	return user
}

func (e *env) login(t *testing.T, email string) {
	t.Helper()
	_, err := e.auth.Login(context.Background(), &dto.LoginRequest{
		Email:    email,
		Password: "secret1",
	})
	require.NoError(t, err)
}

func (e *env) addHospital(t *testing.T, name, location string) *dto.HospitalResponse {
	t.Helper()
	hospital, err := e.admin.AddHospital(context.Background(), &dto.AddHospitalRequest{
		Name:     name,
		Location: location,
	})
	require.NoError(t, err)
	return hospital
}

func (e *env) addSlot(t *testing.T, doctorID, hospitalID, date, start, end string, fee int64) *dto.SlotResponse {
	t.Helper()
	slot, err := e.slots.AddSlot(context.Background(), doctorID, &dto.AddSlotRequest{
		HospitalID: hospitalID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		Fee:        fee,
	})
	require.NoError(t, err)
	return slot
}

func (e *env) book(t *testing.T, slotID string, amount int64) *dto.AppointmentResponse {
	t.Helper()
	record, err := e.bookings.BookAppointment(context.Background(), &dto.BookAppointmentRequest{
		SlotID: slotID,
		Amount: amount,
	})
	require.NoError(t, err)
	return record
}
