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
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotSignedIn        = errors.New("no user is signed in")
)

type AuthUsecase interface {
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.UserResponse, error)
	RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.UserResponse, error)
	RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, error)
	Logout(ctx context.Context) error
	GetCurrentUser(ctx context.Context) (*dto.UserResponse, error)
}

type authUsecase struct {
	log         *logrus.Logger
	validate    *validator.CustomValidator
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	audit       service.AuditService
}

func NewAuthUsecase(
	log *logrus.Logger,
	validate *validator.CustomValidator,
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	audit service.AuditService,
) AuthUsecase {
	return &authUsecase{
		log:         log,
		validate:    validate,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		audit:       audit,
	}
}

func (u *authUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.UserResponse, error) {
	if err := u.validate.Validate(req); err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:        uuid.NewString(),
		Role:      entity.RolePatient,
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Gender:    req.Gender,
		DOB:       req.DOB,
		UniqueID:  req.UniqueID,
		CreatedAt: time.Now(),
	}

	return u.register(ctx, user)
}

func (u *authUsecase) RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.UserResponse, error) {
	if err := u.validate.Validate(req); err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:             uuid.NewString(),
		Role:           entity.RoleDoctor,
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Qualifications: req.Qualifications,
		Experience:     req.Experience,
		Specialization: req.Specialization,
		CreatedAt:      time.Now(),
	}

	return u.register(ctx, user)
}

func (u *authUsecase) RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) (*dto.UserResponse, error) {
	if err := u.validate.Validate(req); err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:        uuid.NewString(),
		Role:      entity.RoleHospitalAdmin,
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		CreatedAt: time.Now(),
	}

	return u.register(ctx, user)
}

func (u *authUsecase) register(ctx context.Context, user *entity.User) (*dto.UserResponse, error) {
	existing, err := u.userRepo.FindByEmail(ctx, user.Email)
	if err != nil {
		u.log.Warnf("Failed to look up email %s: %+v", user.Email, err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	u.audit.LogCreate(ctx, user.ID, entity.AuditActionUserRegister, "user", user.ID, map[string]interface{}{
		"role":  user.Role,
		"email": user.Email,
	})

	u.log.Infof("User registered: id=%s, role=%s", user.ID, user.Role)
	return converter.UserToResponse(user), nil
}

// Login compares the stored password verbatim; the store only ever holds
// demo accounts, so there is no hashing step.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, error) {
	if err := u.validate.Validate(req); err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to look up email %s: %+v", req.Email, err)
		return nil, err
	}
	if user == nil || user.Password != req.Password {
		return nil, ErrInvalidCredentials
	}

	if err := u.sessionRepo.SetCurrent(ctx, user); err != nil {
		u.log.Warnf("Failed to persist session for user %s: %+v", user.ID, err)
		return nil, err
	}

	u.audit.LogAction(ctx, user.ID, entity.AuditActionUserLogin, map[string]interface{}{
		"role": user.Role,
	})

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) Logout(ctx context.Context) error {
	user, err := u.sessionRepo.Current(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotSignedIn
	}

	if err := u.sessionRepo.Clear(ctx); err != nil {
		u.log.Warnf("Failed to clear session: %+v", err)
		return err
	}

	u.audit.LogAction(ctx, user.ID, entity.AuditActionUserLogout, nil)
	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context) (*dto.UserResponse, error) {
	user, err := u.sessionRepo.Current(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotSignedIn
	}
	return converter.UserToResponse(user), nil
}
