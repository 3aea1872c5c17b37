package dto

// MediastackResponse is the upstream envelope. Fields the feed does not use are
// left unmapped and ignored by the decoder.
type MediastackResponse struct {
	Pagination *MediastackPagination `json:"pagination"`
	Data       []MediastackArticle   `json:"data"`
}

type MediastackPagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
	Total  int `json:"total"`
}

type MediastackArticle struct {
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Language    string `json:"language"`
	Country     string `json:"country"`
	PublishedAt string `json:"published_at"`
}
