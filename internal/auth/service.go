// Package auth implements user registration and login over the user store.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/weishuo-labs/weishuo-backend/internal/apperr"
	"github.com/weishuo-labs/weishuo-backend/internal/domain"
	"github.com/weishuo-labs/weishuo-backend/internal/dto"
	"github.com/weishuo-labs/weishuo-backend/internal/storage"
)

const (
	msgUsernameTaken  = "用户名已被占用"
	msgBadCredentials = "用户名或密码错误"
	msgRegistered     = "注册成功"
	msgLoggedIn       = "登录成功"
)

type Service struct {
	users storage.UserStore
}

func NewService(users storage.UserStore) *Service {
	return &Service{users: users}
}

func (s *Service) Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return dto.AuthResponse{}, err
	}

	username := strings.TrimSpace(req.Username)

	taken, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return dto.AuthResponse{}, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return dto.AuthResponse{}, apperr.NewConflict(msgUsernameTaken)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.AuthResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.Create(ctx, domain.User{
		Username:     username,
		PasswordHash: string(hash),
		DisplayName:  strings.TrimSpace(req.DisplayName),
		Email:        strings.TrimSpace(req.Email),
		AvatarURL:    strings.TrimSpace(req.AvatarURL),
	})
	if err != nil {
		return dto.AuthResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return toResponse(user, msgRegistered), nil
}

func (s *Service) Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return dto.AuthResponse{}, err
	}

	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if errors.Is(err, storage.ErrNotFound) {
		return dto.AuthResponse{}, apperr.NewUnauthorized(msgBadCredentials)
	}
	if err != nil {
		return dto.AuthResponse{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return dto.AuthResponse{}, apperr.NewUnauthorized(msgBadCredentials)
	}

	return toResponse(user, msgLoggedIn), nil
}

func toResponse(user domain.User, message string) dto.AuthResponse {
	return dto.AuthResponse{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		AvatarURL:   user.AvatarURL,
		Email:       user.Email,
		CreatedAt:   user.CreatedAt,
		Message:     message,
	}
}
