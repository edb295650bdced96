package dto

import (
	"github.com/google/uuid"

	"school360_backend/internals/features/users/auth/model"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	UserName     string    `json:"user_name"`
	UserEmail    string    `json:"user_email"`
	UserRole     string    `json:"user_role"`
	UserSchoolID uuid.UUID `json:"user_school_id"`
}

func ToUserResponse(m *model.UserModel) UserResponse {
	return UserResponse{
		UserID:       m.UserID,
		UserName:     m.UserName,
		UserEmail:    m.UserEmail,
		UserRole:     m.UserRole,
		UserSchoolID: m.UserSchoolID,
	}
}
