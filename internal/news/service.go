package news

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/weishuo-labs/weishuo-backend/internal/dto"
	"github.com/weishuo-labs/weishuo-backend/internal/storage"
)

// fallbackFetchCount is how many backup records are served when the live path fails.
const fallbackFetchCount = 20

var errEmptyLiveFeed = errors.New("news provider returned no articles")

// Service is the feed orchestrator: fetch live, map, cache, return — or, when any
// of that fails, serve the most recent backup records instead.
type Service struct {
	fetcher  Fetcher
	store    storage.BackupStore
	mapper   *Mapper
	channels *ChannelMap
}

func NewService(fetcher Fetcher, store storage.BackupStore, mapper *Mapper, channels *ChannelMap) *Service {
	return &Service{
		fetcher:  fetcher,
		store:    store,
		mapper:   mapper,
		channels: channels,
	}
}

// FetchLatest returns the feed for a channel. It never returns an error: a failed
// or empty live fetch falls back to cached records, and an empty cache yields an
// empty list.
func (s *Service) FetchLatest(ctx context.Context, channel string) []dto.FeedItem {
	items, err := s.fetchLive(ctx, channel)
	if err != nil {
		slog.Warn("Live news fetch failed, serving backup feed", "channel", channel, "reason", err)
		return s.fetchCached(ctx)
	}
	return items
}

func (s *Service) fetchLive(ctx context.Context, channel string) ([]dto.FeedItem, error) {
	category := s.channels.Category(channel)

	articles, err := s.fetcher.FetchArticles(ctx, category)
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, errEmptyLiveFeed
	}

	items := make([]dto.FeedItem, 0, len(articles))
	for _, article := range articles {
		item := s.mapper.FromArticle(article, channel)
		items = append(items, item)

		if strings.TrimSpace(item.Link) == "" {
			continue
		}
		record := s.mapper.Backup(article, item, category)
		if _, err := s.store.InsertIfAbsent(ctx, record); err != nil {
			// A caching failure must not downgrade a successful live response.
			slog.Error("Failed to cache news article", "url", item.Link, "error", err)
		}
	}

	return items, nil
}

func (s *Service) fetchCached(ctx context.Context) []dto.FeedItem {
	records, err := s.store.MostRecent(ctx, fallbackFetchCount)
	if err != nil {
		slog.Error("Failed to read backup feed", "error", err)
		return []dto.FeedItem{}
	}

	items := make([]dto.FeedItem, 0, len(records))
	for _, record := range records {
		items = append(items, s.mapper.FromBackup(record))
	}
	return items
}
