package converter

import (
	"medibook/internal/delivery/dto"
	"medibook/internal/domain/entity"
)

// HospitalToResponse converts a Hospital entity to HospitalResponse DTO
func HospitalToResponse(hospital *entity.Hospital) *dto.HospitalResponse {
	if hospital == nil {
		return nil
	}

	return &dto.HospitalResponse{
		ID:       hospital.ID,
		Name:     hospital.Name,
		Location: hospital.Location,
	}
}

// HospitalsToResponses converts a slice of Hospital entities to response DTOs
func HospitalsToResponses(hospitals []entity.Hospital) []dto.HospitalResponse {
	responses := make([]dto.HospitalResponse, len(hospitals))
	for i, hospital := range hospitals {
		resp := HospitalToResponse(&hospital)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// DepartmentToResponse converts a Department entity to DepartmentResponse DTO
func DepartmentToResponse(department *entity.Department) *dto.DepartmentResponse {
	if department == nil {
		return nil
	}

	return &dto.DepartmentResponse{
		ID:         department.ID,
		Name:       department.Name,
		HospitalID: department.HospitalID,
	}
}

// DepartmentsToResponses converts a slice of Department entities to response DTOs
func DepartmentsToResponses(departments []entity.Department) []dto.DepartmentResponse {
	responses := make([]dto.DepartmentResponse, len(departments))
	for i, department := range departments {
		resp := DepartmentToResponse(&department)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
