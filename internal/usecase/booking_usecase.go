package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"medibook/internal/converter"
	"medibook/internal/delivery/dto"
	"medibook/internal/domain/entity"
	"medibook/internal/domain/repository"
	"medibook/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrMissingSelection    = errors.New("no time slot chosen")
	ErrInvalidAmount       = errors.New("amount must be a positive number")
	ErrInsufficientAmount  = errors.New("amount is below the consultation fee")
	ErrSlotUnavailable     = errors.New("slot is no longer available")
	ErrAppointmentNotFound = errors.New("appointment not found or already cancelled")
	ErrNotAPatient         = errors.New("only patients can book appointments")
	ErrNotADoctor          = errors.New("only doctors can view their appointments")
)

type BookingUsecase interface {
	BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, recordID string) (*dto.AppointmentResponse, error)
	GetHistory(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetDoctorAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
}

type bookingUsecase struct {
	log          *logrus.Logger
	ledgerRepo   repository.LedgerRepository
	slotRepo     repository.SlotRepository
	userRepo     repository.UserRepository
	hospitalRepo repository.HospitalRepository
	sessionRepo  repository.SessionRepository
	audit        service.AuditService
}

func NewBookingUsecase(
	log *logrus.Logger,
	ledgerRepo repository.LedgerRepository,
	slotRepo repository.SlotRepository,
	userRepo repository.UserRepository,
	hospitalRepo repository.HospitalRepository,
	sessionRepo repository.SessionRepository,
	audit service.AuditService,
) BookingUsecase {
	return &bookingUsecase{
		log:          log,
		ledgerRepo:   ledgerRepo,
		slotRepo:     slotRepo,
		userRepo:     userRepo,
		hospitalRepo: hospitalRepo,
		sessionRepo:  sessionRepo,
		audit:        audit,
	}
}

// BookAppointment records a confirmed booking in the signed-in patient's
// ledger and consumes the chosen slot.
//
// Flow:
// 1. Resolve the signed-in patient
// 2. Check a slot was chosen and the amount is positive
// 3. Resolve the slot; reject when missing or already booked
// 4. Enforce amount >= the hospital's declared fee for the slot
// 5. Append the record to the ledger (durable before acknowledging)
// 6. Mark the slot booked so it leaves the offer set
func (u *bookingUsecase) BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	patient, err := u.currentPatient(ctx)
	if err != nil {
		return nil, err
	}

	if req.SlotID == "" {
		return nil, ErrMissingSelection
	}
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	slot, err := u.slotRepo.FindByID(ctx, req.SlotID)
	if err != nil {
		u.log.Warnf("Failed to find slot %s: %+v", req.SlotID, err)
		return nil, err
	}
	if slot == nil || slot.Booked {
		return nil, ErrSlotUnavailable
	}

	if req.Amount < slot.Fee {
		return nil, ErrInsufficientAmount
	}

	doctor, err := u.userRepo.FindByID(ctx, slot.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", slot.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	hospital, err := u.hospitalRepo.FindByID(ctx, slot.HospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital %s: %+v", slot.HospitalID, err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	// Provider identity is denormalized onto the record at booking time
	// and never re-synced if the doctor later changes specialty.
	record := &entity.AppointmentRecord{
		ID:             uuid.NewString(),
		PatientID:      patient.UniqueID,
		PatientName:    patient.Name,
		DoctorID:       doctor.ID,
		DoctorName:     doctor.Name,
		Specialization: doctor.Specialization,
		HospitalID:     hospital.ID,
		HospitalName:   hospital.Name,
		Slot:           slot.When(),
		Fee:            req.Amount,
		BookedAt:       time.Now(),
		Status:         entity.AppointmentStatusConfirmed,
	}

	if err := u.ledgerRepo.Append(ctx, patient.UniqueID, record); err != nil {
		u.log.Errorf("Failed to append booking to ledger: %+v", err)
		return nil, err
	}

	slot.Booked = true
	if err := u.slotRepo.Update(ctx, slot); err != nil {
		// The booking is already durable; a stale offer set only risks a
		// later ErrSlotUnavailable, so log and continue.
		u.log.Warnf("Failed to mark slot %s booked: %+v", slot.ID, err)
	}

	u.audit.LogCreate(ctx, patient.ID, entity.AuditActionBookingCreate, "appointment", record.ID, map[string]interface{}{
		"doctor":   record.DoctorName,
		"hospital": record.HospitalName,
		"slot":     record.Slot,
		"fee":      record.Fee,
	})

	u.log.Infof("Appointment booked: id=%s, patient=%s, doctor=%s, slot=%s", record.ID, record.PatientID, record.DoctorName, record.Slot)
	return converter.AppointmentToResponse(record), nil
}

// CancelAppointment flips a confirmed record in the caller's own ledger
// to cancelled. The record is kept for history. Cancelling is not
// idempotent: a second attempt finds no confirmed record and fails.
func (u *bookingUsecase) CancelAppointment(ctx context.Context, recordID string) (*dto.AppointmentResponse, error) {
	patient, err := u.currentPatient(ctx)
	if err != nil {
		return nil, err
	}

	records, err := u.ledgerRepo.Load(ctx, patient.UniqueID)
	if err != nil {
		u.log.Warnf("Failed to load ledger for patient %s: %+v", patient.UniqueID, err)
		return nil, err
	}

	for i := range records {
		if records[i].ID != recordID || !records[i].IsConfirmed() {
			continue
		}

		records[i].Cancel(time.Now())
		if err := u.ledgerRepo.Save(ctx, patient.UniqueID, records); err != nil {
			u.log.Warnf("Failed to save ledger for patient %s: %+v", patient.UniqueID, err)
			return nil, err
		}

		u.audit.LogAction(ctx, patient.ID, entity.AuditActionBookingCancel, map[string]interface{}{
			"appointment_id": recordID,
		})

		u.log.Infof("Appointment cancelled: id=%s, patient=%s", recordID, patient.UniqueID)
		return converter.AppointmentToResponse(&records[i]), nil
	}

	return nil, ErrAppointmentNotFound
}

func (u *bookingUsecase) GetHistory(ctx context.Context) (*dto.AppointmentListResponse, error) {
	patient, err := u.currentPatient(ctx)
	if err != nil {
		return nil, err
	}

	records, err := u.ledgerRepo.Load(ctx, patient.UniqueID)
	if err != nil {
		u.log.Warnf("Failed to load ledger for patient %s: %+v", patient.UniqueID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(records),
		Total:        len(records),
	}, nil
}

// GetDoctorAppointments merges every patient ledger and keeps the
// records booked with the signed-in doctor, most recent slot first. The
// match is by denormalized doctor name, the same rule the earnings
// aggregation uses.
func (u *bookingUsecase) GetDoctorAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	doctor, err := u.currentDoctor(ctx)
	if err != nil {
		return nil, err
	}

	records, err := u.ledgerRepo.LoadAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load all ledgers: %+v", err)
		return nil, err
	}

	mine := make([]entity.AppointmentRecord, 0, len(records))
	for _, r := range records {
		if r.DoctorName == doctor.Name {
			mine = append(mine, r)
		}
	}
	sortMostRecentFirst(mine)

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(mine),
		Total:        len(mine),
	}, nil
}

// GetAllAppointments merges every patient ledger for the admin view,
// most recent slot first.
func (u *bookingUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	records, err := u.ledgerRepo.LoadAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load all ledgers: %+v", err)
		return nil, err
	}
	sortMostRecentFirst(records)

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(records),
		Total:        len(records),
	}, nil
}

// sortMostRecentFirst orders records by slot time descending; records
// with an unparseable slot sort last.
func sortMostRecentFirst(records []entity.AppointmentRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		ti, errI := records[i].SlotTime()
		tj, errJ := records[j].SlotTime()
		if errI != nil {
			return false
		}
		if errJ != nil {
			return true
		}
		return ti.After(tj)
	})
}

func (u *bookingUsecase) currentPatient(ctx context.Context) (*entity.User, error) {
	user, err := u.sessionRepo.Current(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotSignedIn
	}
	if !user.IsPatient() {
		return nil, ErrNotAPatient
	}
	return user, nil
}

func (u *bookingUsecase) currentDoctor(ctx context.Context) (*entity.User, error) {
	user, err := u.sessionRepo.Current(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotSignedIn
	}
	if !user.IsDoctor() {
		return nil, ErrNotADoctor
	}
	return user, nil
}
