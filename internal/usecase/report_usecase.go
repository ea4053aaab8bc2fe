package usecase

import (
	"context"

	"medibook/internal/delivery/dto"
	"medibook/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Every booked fee splits 60% to the doctor and 40% to the facility;
// the two rates always sum to 100% of the fee.
var (
	doctorShareRate   = decimal.RequireFromString("0.60")
	hospitalShareRate = decimal.RequireFromString("0.40")
)

type ReportUsecase interface {
	ComputeDoctorEarnings(ctx context.Context, doctorName string) (*dto.DoctorEarningsResponse, error)
	ComputeHospitalRevenue(ctx context.Context) (*dto.HospitalRevenueResponse, error)
	GetOverview(ctx context.Context) (*dto.OverviewResponse, error)
}

type reportUsecase struct {
	log            *logrus.Logger
	ledgerRepo     repository.LedgerRepository
	userRepo       repository.UserRepository
	hospitalRepo   repository.HospitalRepository
	departmentRepo repository.DepartmentRepository
}

func NewReportUsecase(
	log *logrus.Logger,
	ledgerRepo repository.LedgerRepository,
	userRepo repository.UserRepository,
	hospitalRepo repository.HospitalRepository,
	departmentRepo repository.DepartmentRepository,
) ReportUsecase {
	return &reportUsecase{
		log:            log,
		ledgerRepo:     ledgerRepo,
		userRepo:       userRepo,
		hospitalRepo:   hospitalRepo,
		departmentRepo: departmentRepo,
	}
}

// ComputeDoctorEarnings scans every patient ledger for records whose
// doctor name matches exactly, cancelled ones included (the fee was
// charged at booking and nothing refunds it). Fees are summed raw, the
// 60% share is applied once to the sum and rounded once, so no rounding
// drift accumulates across records. The per-hospital breakdown reports
// raw fee totals, which is what the earnings table displays.
func (u *reportUsecase) ComputeDoctorEarnings(ctx context.Context, doctorName string) (*dto.DoctorEarningsResponse, error) {
	records, err := u.ledgerRepo.LoadAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load all ledgers: %+v", err)
		return nil, err
	}

	var (
		count       int
		feeSum      int64
		perHospital = make(map[string]int64)
	)
	for _, r := range records {
		if r.DoctorName != doctorName {
			continue
		}
		count++
		feeSum += r.Fee
		perHospital[r.HospitalName] += r.Fee
	}

	totalEarnings := doctorShareRate.
		Mul(decimal.NewFromInt(feeSum)).
		Round(0).
		IntPart()

	return &dto.DoctorEarningsResponse{
		Doctor:            doctorName,
		TotalAppointments: count,
		TotalEarnings:     totalEarnings,
		PerHospital:       perHospital,
	}, nil
}

// ComputeHospitalRevenue sums the 40% facility share over the whole
// appointment set, grouped by doctor and independently by specialization
// (the department proxy). Breakdown amounts stay exact decimals, which
// keeps the two groupings summing to the identical figure; the total is
// the only rounded number.
func (u *reportUsecase) ComputeHospitalRevenue(ctx context.Context) (*dto.HospitalRevenueResponse, error) {
	records, err := u.ledgerRepo.LoadAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load all ledgers: %+v", err)
		return nil, err
	}

	var (
		feeSum        int64
		perDoctor     = make(map[string]decimal.Decimal)
		perDepartment = make(map[string]decimal.Decimal)
	)
	for _, r := range records {
		share := hospitalShareRate.Mul(decimal.NewFromInt(r.Fee))
		feeSum += r.Fee
		perDoctor[r.DoctorName] = perDoctor[r.DoctorName].Add(share)
		perDepartment[r.Specialization] = perDepartment[r.Specialization].Add(share)
	}

	totalRevenue := hospitalShareRate.
		Mul(decimal.NewFromInt(feeSum)).
		Round(0).
		IntPart()

	return &dto.HospitalRevenueResponse{
		TotalRevenue:  totalRevenue,
		PerDoctor:     perDoctor,
		PerDepartment: perDepartment,
	}, nil
}

// GetOverview counts the major entities and the gross (unsplit) revenue
// for the admin landing page.
func (u *reportUsecase) GetOverview(ctx context.Context) (*dto.OverviewResponse, error) {
	hospitals, err := u.hospitalRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load hospitals: %+v", err)
		return nil, err
	}
	departments, err := u.departmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load departments: %+v", err)
		return nil, err
	}
	users, err := u.userRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load users: %+v", err)
		return nil, err
	}
	records, err := u.ledgerRepo.LoadAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load all ledgers: %+v", err)
		return nil, err
	}

	overview := &dto.OverviewResponse{
		Hospitals:    len(hospitals),
		Departments:  len(departments),
		Appointments: len(records),
	}
	for i := range users {
		switch {
		case users[i].IsDoctor():
			overview.Doctors++
		case users[i].IsPatient():
			overview.Patients++
		}
	}
	for _, r := range records {
		overview.Revenue += r.Fee
	}

	return overview, nil
}
