// Package storage defines the persistence contracts the services depend on.
package storage

import (
	"context"
	"errors"

	"github.com/weishuo-labs/weishuo-backend/internal/domain"
)

var ErrNotFound = errors.New("record not found")

// BackupStore is the durable cache behind the news feed. Records are insert-only;
// there is no update or delete.
type BackupStore interface {
	// InsertIfAbsent persists the record unless one with the same URL already
	// exists. Records with a blank URL are skipped. Returns true when a new row
	// was written.
	InsertIfAbsent(ctx context.Context, record domain.NewsBackup) (bool, error)
	// MostRecent returns up to n records ordered by published_at descending.
	MostRecent(ctx context.Context, n int) ([]domain.NewsBackup, error)
}

type UserStore interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	// FindByUsername returns ErrNotFound when no such user exists.
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
