package converter

import (
	"medibook/internal/delivery/dto"
	"medibook/internal/domain/entity"
)

// AppointmentToResponse converts an AppointmentRecord entity to AppointmentResponse DTO
func AppointmentToResponse(record *entity.AppointmentRecord) *dto.AppointmentResponse {
	if record == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:             record.ID,
		PatientID:      record.PatientID,
		PatientName:    record.PatientName,
		DoctorID:       record.DoctorID,
		DoctorName:     record.DoctorName,
		Specialization: record.Specialization,
		HospitalID:     record.HospitalID,
		HospitalName:   record.HospitalName,
		Slot:           record.Slot,
		Fee:            record.Fee,
		Status:         string(record.Status),
		BookedAt:       record.BookedAt,
		CancelledAt:    record.CancelledAt,
	}
}

// AppointmentsToResponses converts a slice of AppointmentRecord entities to response DTOs
func AppointmentsToResponses(records []entity.AppointmentRecord) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(records))
	for i, record := range records {
		resp := AppointmentToResponse(&record)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
