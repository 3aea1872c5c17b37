package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/weishuo-labs/weishuo-backend/internal/apperr"
)

type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

func (r *RegisterRequest) Validate() error {
	if err := validateCredentials(r.Username, r.Password); err != nil {
		return err
	}
	if strings.TrimSpace(r.DisplayName) == "" {
		return apperr.NewValidation("displayName is required")
	}
	if len(r.DisplayName) > 100 {
		return apperr.NewValidation("displayName must be at most 100 characters")
	}
	if r.Email != "" {
		if len(r.Email) > 120 {
			return apperr.NewValidation("email must be at most 120 characters")
		}
		if !strings.Contains(r.Email, "@") {
			return apperr.NewValidation("email is not valid")
		}
	}
	if len(r.AvatarURL) > 255 {
		return apperr.NewValidation("avatarUrl must be at most 255 characters")
	}
	return nil
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	return validateCredentials(r.Username, r.Password)
}

func validateCredentials(username, password string) error {
	u := strings.TrimSpace(username)
	if len(u) < 3 || len(u) > 50 {
		return apperr.NewValidation("username must be between 3 and 50 characters")
	}
	// 72 bytes is also the bcrypt input limit.
	if len(password) < 6 || len(password) > 72 {
		return apperr.NewValidation("password must be between 6 and 72 characters")
	}
	return nil
}

type AuthResponse struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	AvatarURL   string    `json:"avatarUrl,omitempty"`
	Email       string    `json:"email,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	Message     string    `json:"message"`
}
