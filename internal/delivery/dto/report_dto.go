package dto

import "github.com/shopspring/decimal"

// DoctorEarningsResponse summarises one doctor's consultations. The
// total applies the doctor share once over the raw fee sum and rounds
// once; the per-hospital breakdown reports raw fee totals.
type DoctorEarningsResponse struct {
	Doctor            string           `json:"doctor"`
	TotalAppointments int              `json:"totalAppointments"`
	TotalEarnings     int64            `json:"totalEarnings"`
	PerHospital       map[string]int64 `json:"perHospitalBreakdown"`
}

// HospitalRevenueResponse reports the facility share of every booked
// fee. Breakdown amounts stay exact decimals so the per-doctor and
// per-department groupings always sum to the same figure; only the
// total is rounded, and only once.
type HospitalRevenueResponse struct {
	TotalRevenue  int64                      `json:"totalRevenue"`
	PerDoctor     map[string]decimal.Decimal `json:"perDoctor"`
	PerDepartment map[string]decimal.Decimal `json:"perDepartment"`
}

// OverviewResponse backs the admin landing summary.
type OverviewResponse struct {
	Hospitals    int   `json:"hospitals"`
	Departments  int   `json:"departments"`
	Doctors      int   `json:"doctors"`
	Patients     int   `json:"patients"`
	Appointments int   `json:"appointments"`
	Revenue      int64 `json:"revenue"`
}
