package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/weishuo-labs/weishuo-backend/internal/config"
	"github.com/weishuo-labs/weishuo-backend/internal/dto"
)

const clientTimeout = 10 * time.Second

var ErrNotConfigured = errors.New("news provider api key is not configured")

// Fetcher is the upstream boundary the feed service depends on.
type Fetcher interface {
	FetchArticles(ctx context.Context, category string) ([]dto.MediastackArticle, error)
}

// Client issues a single best-effort GET against the news provider. No retries;
// any transport, status, or decode problem surfaces as an error for the caller's
// fallback path.
type Client struct {
	http *resty.Client
	cfg  *config.News
}

func NewClient(cfg *config.News) *Client {
	c := resty.New()
	c.SetBaseURL(cfg.BaseURL)
	c.SetTimeout(clientTimeout)

	return &Client{http: c, cfg: cfg}
}

func (c *Client) FetchArticles(ctx context.Context, category string) ([]dto.MediastackArticle, error) {
	if !c.cfg.IsConfigured() {
		return nil, ErrNotConfigured
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"access_key": c.cfg.APIKey,
			"countries":  c.cfg.NormalizedCountry(),
			"languages":  c.cfg.NormalizedLanguage(),
			"limit":      strconv.Itoa(c.cfg.PageSize),
			"categories": category,
		}).
		Get("/news")
	if err != nil {
		return nil, fmt.Errorf("failed to call news provider: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("news provider returned status %d", resp.StatusCode())
	}

	var envelope dto.MediastackResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode news response: %w", err)
	}
	if envelope.Data == nil {
		return nil, errors.New("news response has no data field")
	}

	return envelope.Data, nil
}
