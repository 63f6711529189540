package domain

import "errors"

var (
	ErrMissingFields      = errors.New("missing_fields")
	ErrEmailExists        = errors.New("email_exists")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrUserNotFound       = errors.New("user not found")

	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrTokenNotFound = errors.New("token not found")
)

type (
	SignupRequest struct {
		Name     string `json:"name" validate:"omitempty,max=120"`
		Email    string `json:"email" validate:"required,email,max=191"`
		Password string `json:"password" validate:"required,min=1"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	UserResponse struct {
		ID    uint   `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
)
