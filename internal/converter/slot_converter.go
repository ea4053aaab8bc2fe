package converter

import (
	"medibook/internal/delivery/dto"
	"medibook/internal/domain/entity"
)

// SlotToResponse converts a Slot entity to SlotResponse DTO
func SlotToResponse(slot *entity.Slot) *dto.SlotResponse {
	if slot == nil {
		return nil
	}

	return &dto.SlotResponse{
		ID:         slot.ID,
		DoctorID:   slot.DoctorID,
		HospitalID: slot.HospitalID,
		Date:       slot.Date,
		StartTime:  slot.StartTime,
		EndTime:    slot.EndTime,
		Fee:        slot.Fee,
		Booked:     slot.Booked,
		CreatedAt:  slot.CreatedAt,
	}
}

// SlotsToResponses converts a slice of Slot entities to response DTOs
func SlotsToResponses(slots []entity.Slot) []dto.SlotResponse {
	responses := make([]dto.SlotResponse, len(slots))
	for i, slot := range slots {
		resp := SlotToResponse(&slot)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
