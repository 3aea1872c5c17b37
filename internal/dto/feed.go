package dto

// FeedItem is the single display shape the feed endpoint returns, whether the item
// came from the live upstream or from the backup table.
type FeedItem struct {
	ID        string     `json:"id"`
	Tag       string     `json:"tag"`
	Author    FeedAuthor `json:"author"`
	Content   string     `json:"content"`
	Media     *FeedMedia `json:"media,omitempty"`
	Stats     FeedStats  `json:"stats"`
	CreatedAt string     `json:"createdAt"`
	Source    string     `json:"source,omitempty"`
	Link      string     `json:"link,omitempty"`
}

type FeedAuthor struct {
	Name     string `json:"name"`
	Handle   string `json:"handle"`
	Avatar   string `json:"avatar"`
	Verified bool   `json:"verified"`
	Badge    string `json:"badge,omitempty"`
}

type FeedMedia struct {
	Type     string `json:"type"`
	Cover    string `json:"cover,omitempty"`
	Duration string `json:"duration,omitempty"`
}

// FeedStats carries presentation-only engagement numbers. They are synthesized per
// request and never persisted.
type FeedStats struct {
	Reposts  int `json:"reposts"`
	Comments int `json:"comments"`
	Likes    int `json:"likes"`
}
