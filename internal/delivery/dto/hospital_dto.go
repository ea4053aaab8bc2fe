package dto

// Request DTOs

type AddHospitalRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Location string `json:"location" validate:"required"`
}

type AddDepartmentRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=255"`
	HospitalID string `json:"hospitalId" validate:"required"`
}

// Response DTOs

type HospitalResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type HospitalListResponse struct {
	Hospitals []HospitalResponse `json:"hospitals"`
	Total     int                `json:"total"`
}

type DepartmentResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	HospitalID   string `json:"hospitalId"`
	HospitalName string `json:"hospitalName,omitempty"`
}

type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
	Total       int                  `json:"total"`
}
