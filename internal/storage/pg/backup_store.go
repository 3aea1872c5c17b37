package pg

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/weishuo-labs/weishuo-backend/internal/domain"
)

type BackupStore struct {
	db *pgxpool.Pool
}

func NewBackupStore(pool *ConnectionPool) *BackupStore {
	return &BackupStore{db: pool.conn}
}

// InsertIfAbsent writes the record unless a row with the same URL exists. Records
// without a URL are not cacheable and are skipped. The existence check and the
// insert are not one transaction; the unique index on url makes a racing duplicate
// a no-op instead of a second row.
func (s *BackupStore) InsertIfAbsent(ctx context.Context, record domain.NewsBackup) (bool, error) {
	if strings.TrimSpace(record.URL) == "" {
		return false, nil
	}

	var exists bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM news_backup WHERE url = $1)`,
		record.URL,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check backup url: %w", err)
	}
	if exists {
		return false, nil
	}

	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	tag, err := s.db.Exec(ctx, `
        INSERT INTO news_backup (title, summary, content, source, url, category, published_at, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (url) WHERE url IS NOT NULL DO NOTHING
    `,
		record.Title,
		record.Summary,
		record.Content,
		record.Source,
		record.URL,
		record.Category,
		record.PublishedAt,
		record.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert backup record: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (s *BackupStore) MostRecent(ctx context.Context, n int) ([]domain.NewsBackup, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, title, summary, content, source, url, category, published_at, created_at
        FROM news_backup
        ORDER BY published_at DESC NULLS LAST, id DESC
        LIMIT $1
    `, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query backup records: %w", err)
	}
	defer rows.Close()

	var records []domain.NewsBackup
	for rows.Next() {
		var r domain.NewsBackup
		if err := rows.Scan(
			&r.ID,
			&r.Title,
			&r.Summary,
			&r.Content,
			&r.Source,
			&r.URL,
			&r.Category,
			&r.PublishedAt,
			&r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan backup record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read backup records: %w", err)
	}

	return records, nil
}
