package usecase

import (
	"context"
	"errors"
	"strings"

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
	ErrHospitalNotFound      = errors.New("hospital not found")
	ErrHospitalExists        = errors.New("hospital already exists")
	ErrHospitalHasDependents = errors.New("hospital has linked departments")
	ErrDepartmentNotFound    = errors.New("department not found")
	ErrDepartmentExists      = errors.New("department already exists for this hospital")
)

type AdminUsecase interface {
	AddHospital(ctx context.Context, req *dto.AddHospitalRequest) (*dto.HospitalResponse, error)
	DeleteHospital(ctx context.Context, hospitalID string) error
	GetHospitals(ctx context.Context) (*dto.HospitalListResponse, error)
	AddDepartment(ctx context.Context, req *dto.AddDepartmentRequest) (*dto.DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, departmentID string) error
	GetDepartments(ctx context.Context) (*dto.DepartmentListResponse, error)
	GetDoctors(ctx context.Context) (*dto.UserListResponse, error)
}

type adminUsecase struct {
	log            *logrus.Logger
	validate       *validator.CustomValidator
	userRepo       repository.UserRepository
	hospitalRepo   repository.HospitalRepository
	departmentRepo repository.DepartmentRepository
	sessionRepo    repository.SessionRepository
	audit          service.AuditService
}

func NewAdminUsecase(
	log *logrus.Logger,
	validate *validator.CustomValidator,
	userRepo repository.UserRepository,
	hospitalRepo repository.HospitalRepository,
	departmentRepo repository.DepartmentRepository,
	sessionRepo repository.SessionRepository,
	audit service.AuditService,
) AdminUsecase {
	return &adminUsecase{
		log:            log,
		validate:       validate,
		userRepo:       userRepo,
		hospitalRepo:   hospitalRepo,
		departmentRepo: departmentRepo,
		sessionRepo:    sessionRepo,
		audit:          audit,
	}
}

func (u *adminUsecase) AddHospital(ctx context.Context, req *dto.AddHospitalRequest) (*dto.HospitalResponse, error) {
	if err := u.validate.Validate(req); err != nil {
		return nil, err
	}

	hospitals, err := u.hospitalRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load hospitals: %+v", err)
		return nil, err
	}
	for i := range hospitals {
		if strings.EqualFold(hospitals[i].Name, req.Name) {
			return nil, ErrHospitalExists
		}
	}

	hospital := &entity.Hospital{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Location: req.Location,
	}

	if err := u.hospitalRepo.Create(ctx, hospital); err != nil {
		u.log.Warnf("Failed to create hospital: %+v", err)
		return nil, err
	}

	u.audit.LogCreate(ctx, u.actorID(ctx), entity.AuditActionHospitalCreate, "hospital", hospital.ID, map[string]interface{}{
		"name":     hospital.Name,
		"location": hospital.Location,
	})

	u.log.Infof("Hospital created: id=%s, name=%s", hospital.ID, hospital.Name)
	return converter.HospitalToResponse(hospital), nil
}

// DeleteHospital refuses to remove a hospital still referenced by a
// department; the delete is rejected, never cascaded.
func (u *adminUsecase) DeleteHospital(ctx context.Context, hospitalID string) error {
	hospital, err := u.hospitalRepo.FindByID(ctx, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital %s: %+v", hospitalID, err)
		return err
	}
	if hospital == nil {
		return ErrHospitalNotFound
	}

	linked, err := u.departmentRepo.FindByHospitalID(ctx, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to load departments for hospital %s: %+v", hospitalID, err)
		return err
	}
	if len(linked) > 0 {
		return ErrHospitalHasDependents
	}

	if err := u.hospitalRepo.Delete(ctx, hospitalID); err != nil {
		u.log.Warnf("Failed to delete hospital %s: %+v", hospitalID, err)
		return err
	}

	u.audit.LogDelete(ctx, u.actorID(ctx), entity.AuditActionHospitalDelete, "hospital", hospitalID, map[string]interface{}{
		"name": hospital.Name,
	})

	u.log.Infof("Hospital deleted: id=%s, name=%s", hospitalID, hospital.Name)
	return nil
}

func (u *adminUsecase) GetHospitals(ctx context.Context) (*dto.HospitalListResponse, error) {
	hospitals, err := u.hospitalRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load hospitals: %+v", err)
		return nil, err
	}

	return &dto.HospitalListResponse{
		Hospitals: converter.HospitalsToResponses(hospitals),
		Total:     len(hospitals),
	}, nil
}

// AddDepartment enforces (name, hospitalId) uniqueness with a
// case-insensitive name match; the same name may repeat across
// different hospitals.
func (u *adminUsecase) AddDepartment(ctx context.Context, req *dto.AddDepartmentRequest) (*dto.DepartmentResponse, error) {
	if err := u.validate.Validate(req); err != nil {
		return nil, err
	}

	hospital, err := u.hospitalRepo.FindByID(ctx, req.HospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital %s: %+v", req.HospitalID, err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	siblings, err := u.departmentRepo.FindByHospitalID(ctx, req.HospitalID)
	if err != nil {
		u.log.Warnf("Failed to load departments for hospital %s: %+v", req.HospitalID, err)
		return nil, err
	}
	for i := range siblings {
		if strings.EqualFold(siblings[i].Name, req.Name) {
			return nil, ErrDepartmentExists
		}
	}

	department := &entity.Department{
		ID:         uuid.NewString(),
		Name:       req.Name,
		HospitalID: req.HospitalID,
	}

	if err := u.departmentRepo.Create(ctx, department); err != nil {
		u.log.Warnf("Failed to create department: %+v", err)
		return nil, err
	}

	u.audit.LogCreate(ctx, u.actorID(ctx), entity.AuditActionDepartmentCreate, "department", department.ID, map[string]interface{}{
		"name":        department.Name,
		"hospital_id": department.HospitalID,
	})

	u.log.Infof("Department created: id=%s, name=%s, hospital=%s", department.ID, department.Name, hospital.Name)

	response := converter.DepartmentToResponse(department)
	response.HospitalName = hospital.Name
	return response, nil
}

func (u *adminUsecase) DeleteDepartment(ctx context.Context, departmentID string) error {
	department, err := u.departmentRepo.FindByID(ctx, departmentID)
	if err != nil {
		u.log.Warnf("Failed to find department %s: %+v", departmentID, err)
		return err
	}
	if department == nil {
		return ErrDepartmentNotFound
	}

	if err := u.departmentRepo.Delete(ctx, departmentID); err != nil {
		u.log.Warnf("Failed to delete department %s: %+v", departmentID, err)
		return err
	}

	u.audit.LogDelete(ctx, u.actorID(ctx), entity.AuditActionDepartmentDelete, "department", departmentID, map[string]interface{}{
		"name": department.Name,
	})

	u.log.Infof("Department deleted: id=%s, name=%s", departmentID, department.Name)
	return nil
}

func (u *adminUsecase) GetDepartments(ctx context.Context) (*dto.DepartmentListResponse, error) {
	departments, err := u.departmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load departments: %+v", err)
		return nil, err
	}

	hospitals, err := u.hospitalRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load hospitals: %+v", err)
		return nil, err
	}
	names := make(map[string]string, len(hospitals))
	for _, h := range hospitals {
		names[h.ID] = h.Name
	}

	responses := converter.DepartmentsToResponses(departments)
	for i := range responses {
		responses[i].HospitalName = names[responses[i].HospitalID]
	}

	return &dto.DepartmentListResponse{
		Departments: responses,
		Total:       len(responses),
	}, nil
}

// GetDoctors lists every registered doctor for the admin directory.
// Responses go through the converter, so stored passwords stay behind
// the repository boundary.
func (u *adminUsecase) GetDoctors(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := u.userRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load users: %+v", err)
		return nil, err
	}

	doctors := make([]entity.User, 0, len(users))
	for i := range users {
		if users[i].IsDoctor() {
			doctors = append(doctors, users[i])
		}
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(doctors),
		Total: len(doctors),
	}, nil
}

// actorID resolves the signed-in user for the audit trail; an empty id
// is fine for unattended (seed or test) mutations.
func (u *adminUsecase) actorID(ctx context.Context) string {
	user, err := u.sessionRepo.Current(ctx)
	if err != nil || user == nil {
		return ""
	}
	return user.ID
}
