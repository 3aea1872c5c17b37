package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/weishuo-labs/weishuo-backend/internal/domain"
	"github.com/weishuo-labs/weishuo-backend/internal/storage"
)

type UserStore struct {
	db *pgxpool.Pool
}

func NewUserStore(pool *ConnectionPool) *UserStore {
	return &UserStore{db: pool.conn}
}

func (s *UserStore) Create(ctx context.Context, user domain.User) (domain.User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(ctx, `
        INSERT INTO users (id, username, password_hash, display_name, email, avatar_url, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `,
		user.ID,
		user.Username,
		user.PasswordHash,
		user.DisplayName,
		nullable(user.Email),
		nullable(user.AvatarURL),
		user.CreatedAt,
	)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

func (s *UserStore) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	var (
		user      domain.User
		email     *string
		avatarURL *string
	)
	err := s.db.QueryRow(ctx, `
        SELECT id, username, password_hash, display_name, email, avatar_url, created_at
        FROM users
        WHERE username = $1
    `, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.DisplayName,
		&email,
		&avatarURL,
		&user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, storage.ErrNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to query user: %w", err)
	}

	if email != nil {
		user.Email = *email
	}
	if avatarURL != nil {
		user.AvatarURL = *avatarURL
	}
	return user, nil
}

func (s *UserStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`,
		username,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return exists, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
