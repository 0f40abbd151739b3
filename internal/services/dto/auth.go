package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse - ответ на успешный вход
type AuthResponse struct {
	Token     string        `json:"token"`
	TokenType string        `json:"tokenType"`
	ExpiresIn int64         `json:"expiresIn"` // секунды
	User      *UserResponse `json:"user"`
}
