package dto

import (
	"time"

	"jobportal/internal/models"
)

// CreateUserRequest - регистрация пользователя
type CreateUserRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=100"`
	Email       string `json:"email" validate:"required,email,max=255"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
	Role        string `json:"role" validate:"required,is-user-role"`
	Phone       string `json:"phone" validate:"omitempty,phone"`
	CompanyName string `json:"companyName" validate:"max=255"`
}

// UpdateUserRequest заменяет все поля профиля; пустой пароль оставляет старый хеш
type UpdateUserRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=100"`
	Email       string `json:"email" validate:"required,email,max=255"`
	Password    string `json:"password" validate:"omitempty,min=6,max=72"`
	Role        string `json:"role" validate:"required,is-user-role"`
	Phone       string `json:"phone" validate:"omitempty,phone"`
	CompanyName string `json:"companyName" validate:"max=255"`
}

// UserResponse - пользователь без хеша пароля
type UserResponse struct {
	ID          string          `json:"id"`
	Username    string          `json:"username"`
	Email       string          `json:"email"`
	Role        models.UserRole `json:"role"`
	Phone       string          `json:"phone,omitempty"`
	CompanyName string          `json:"companyName,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		Role:        user.Role,
		Phone:       user.Phone,
		CompanyName: user.CompanyName,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

func NewUserResponses(users []models.User) []*UserResponse {
	responses := make([]*UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, NewUserResponse(&users[i]))
	}
	return responses
}
