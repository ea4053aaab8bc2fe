package usecase

import (
	"context"
	"errors"
	"time"

	"medibook/internal/converter"
	"medibook/internal/delivery/dto"
	"medibook/internal/domain/entity"
	"medibook/internal/domain/repository"
	"medibook/internal/service"
	"medibook/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound  = errors.New("doctor not found")
	ErrInvalidTimeSpan = errors.New("end time must be after start time")
	ErrSlotOverlap     = errors.New("slot overlaps with an existing one")
)

type SlotUsecase interface {
	AddSlot(ctx context.Context, doctorID string, req *dto.AddSlotRequest) (*dto.SlotResponse, error)
	GetSlotsByDoctor(ctx context.Context, doctorID string) (*dto.SlotListResponse, error)
	GetAvailableSlots(ctx context.Context) (*dto.SlotListResponse, error)
}

type slotUsecase struct {
	log          *logrus.Logger
	validate     *validator.CustomValidator
	slotRepo     repository.SlotRepository
	userRepo     repository.UserRepository
	hospitalRepo repository.HospitalRepository
	audit        service.AuditService
}

func NewSlotUsecase(
	log *logrus.Logger,
	validate *validator.CustomValidator,
	slotRepo repository.SlotRepository,
	userRepo repository.UserRepository,
	hospitalRepo repository.HospitalRepository,
	audit service.AuditService,
) SlotUsecase {
	return &slotUsecase{
		log:          log,
		validate:     validate,
		slotRepo:     slotRepo,
		userRepo:     userRepo,
		hospitalRepo: hospitalRepo,
		audit:        audit,
	}
}

// AddSlot validates the declared window and rejects it when its
// [start, end) interval intersects any existing slot of the same doctor
// at the same hospital and date.
func (u *slotUsecase) AddSlot(ctx context.Context, doctorID string, req *dto.AddSlotRequest) (*dto.SlotResponse, error) {
	if err := u.validate.Validate(req); err != nil {
		return nil, err
	}
	if req.StartTime >= req.EndTime {
		return nil, ErrInvalidTimeSpan
	}

	doctor, err := u.userRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil || !doctor.IsDoctor() {
		return nil, ErrDoctorNotFound
	}

	hospital, err := u.hospitalRepo.FindByID(ctx, req.HospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital %s: %+v", req.HospitalID, err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	candidate := &entity.Slot{
		ID:         uuid.NewString(),
		DoctorID:   doctorID,
		HospitalID: req.HospitalID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Fee:        req.Fee,
		CreatedAt:  time.Now(),
	}

	existing, err := u.slotRepo.FindByDoctorID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to load slots for doctor %s: %+v", doctorID, err)
		return nil, err
	}
	for i := range existing {
		if candidate.ConflictsWith(&existing[i]) {
			return nil, ErrSlotOverlap
		}
	}

	if err := u.slotRepo.Create(ctx, candidate); err != nil {
		u.log.Warnf("Failed to create slot: %+v", err)
		return nil, err
	}

	u.audit.LogCreate(ctx, doctorID, entity.AuditActionSlotCreate, "slot", candidate.ID, map[string]interface{}{
		"hospital_id": candidate.HospitalID,
		"date":        candidate.Date,
		"start_time":  candidate.StartTime,
		"end_time":    candidate.EndTime,
		"fee":         candidate.Fee,
	})

	u.log.Infof("Slot created: id=%s, doctor=%s, date=%s %s-%s", candidate.ID, doctorID, candidate.Date, candidate.StartTime, candidate.EndTime)
	return converter.SlotToResponse(candidate), nil
}

func (u *slotUsecase) GetSlotsByDoctor(ctx context.Context, doctorID string) (*dto.SlotListResponse, error) {
	slots, err := u.slotRepo.FindByDoctorID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find slots for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.SlotListResponse{
		Slots: converter.SlotsToResponses(slots),
		Total: len(slots),
	}, nil
}

// GetAvailableSlots returns the offer set: every slot not yet consumed
// by a booking.
func (u *slotUsecase) GetAvailableSlots(ctx context.Context) (*dto.SlotListResponse, error) {
	slots, err := u.slotRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find slots: %+v", err)
		return nil, err
	}

	available := make([]entity.Slot, 0, len(slots))
	for _, s := range slots {
		if !s.Booked {
			available = append(available, s)
		}
	}

	return &dto.SlotListResponse{
		Slots: converter.SlotsToResponses(available),
		Total: len(available),
	}, nil
}
