package domain

import "time"

// NewsBackup is a cached copy of an upstream article. Rows are written once when a
// live fetch succeeds and are served back when the upstream is unreachable. There
// is no update or eviction path.
type NewsBackup struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary,omitempty"`
	Content     string     `json:"content,omitempty"`
	Source      string     `json:"source,omitempty"`
	URL         string     `json:"url,omitempty"`
	Category    string     `json:"category,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}
