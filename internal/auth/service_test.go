package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/weishuo-labs/weishuo-backend/internal/apperr"
	"github.com/weishuo-labs/weishuo-backend/internal/domain"
	"github.com/weishuo-labs/weishuo-backend/internal/dto"
	"github.com/weishuo-labs/weishuo-backend/internal/storage"
)

type fakeUserStore struct {
	users map[string]domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]domain.User)}
}

func (s *fakeUserStore) Create(_ context.Context, user domain.User) (domain.User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.users[user.Username] = user
	return user, nil
}

func (s *fakeUserStore) FindByUsername(_ context.Context, username string) (domain.User, error) {
	user, ok := s.users[username]
	if !ok {
		return domain.User{}, storage.ErrNotFound
	}
	return user, nil
}

func (s *fakeUserStore) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := s.users[username]
	return ok, nil
}

func validRegister() dto.RegisterRequest {
	return dto.RegisterRequest{
		Username:    "  zhangsan  ",
		Password:    "secret66",
		DisplayName: " 张三 ",
		Email:       "zhangsan@example.com",
	}
}

func TestRegister_Success(t *testing.T) {
	store := newFakeUserStore()
	svc := NewService(store)

	resp, err := svc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	assert.Equal(t, "zhangsan", resp.Username)
	assert.Equal(t, "张三", resp.DisplayName)
	assert.Equal(t, msgRegistered, resp.Message)
	assert.NotEqual(t, uuid.Nil, resp.ID)

	saved := store.users["zhangsan"]
	assert.NotEqual(t, "secret66", saved.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("secret66")))
}

func TestRegister_UsernameTaken(t *testing.T) {
	store := newFakeUserStore()
	svc := NewService(store)

	_, err := svc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), validRegister())
	var ce *apperr.ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, msgUsernameTaken, ce.Message)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.RegisterRequest)
	}{
		{"short username", func(r *dto.RegisterRequest) { r.Username = "ab" }},
		{"short password", func(r *dto.RegisterRequest) { r.Password = "12345" }},
		{"blank display name", func(r *dto.RegisterRequest) { r.DisplayName = "   " }},
		{"invalid email", func(r *dto.RegisterRequest) { r.Email = "not-an-email" }},
	}

	svc := NewService(newFakeUserStore())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegister()
			tt.mutate(&req)

			_, err := svc.Register(context.Background(), req)
			var ve *apperr.ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	store := newFakeUserStore()
	svc := NewService(store)

	_, err := svc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "zhangsan", Password: "secret66"})
	require.NoError(t, err)
	assert.Equal(t, msgLoggedIn, resp.Message)
	assert.Equal(t, "zhangsan", resp.Username)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := NewService(newFakeUserStore())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "nobody", Password: "secret66"})
	var ue *apperr.UnauthorizedError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, msgBadCredentials, ue.Message)
}

func TestLogin_WrongPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := NewService(store)

	_, err := svc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "zhangsan", Password: "wrong-pass"})
	var ue *apperr.UnauthorizedError
	require.ErrorAs(t, err, &ue)
	// The message must not reveal which check failed.
	assert.Equal(t, msgBadCredentials, ue.Message)
}
