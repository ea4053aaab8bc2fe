package converter

import (
	"medibook/internal/delivery/dto"
	"medibook/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO.
// The stored password never leaves this boundary.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:             user.ID,
		Role:           user.Role,
		Name:           user.Name,
		Email:          user.Email,
		Gender:         user.Gender,
		DOB:            user.DOB,
		UniqueID:       user.UniqueID,
		Qualifications: user.Qualifications,
		Experience:     user.Experience,
		Specialization: user.Specialization,
		CreatedAt:      user.CreatedAt,
	}
}

// UsersToResponses converts a slice of User entities to response DTOs
func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *UserToResponse(&users[i])
	}
	return responses
}
