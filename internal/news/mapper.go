package news

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/weishuo-labs/weishuo-backend/internal/domain"
	"github.com/weishuo-labs/weishuo-backend/internal/dto"
	"github.com/weishuo-labs/weishuo-backend/pkg/utils"
)

// Display times are rendered in China time regardless of server zone. Fixed offset:
// Asia/Shanghai has no DST.
var chinaZone = time.FixedZone("CST", 8*60*60)

const (
	displayTimeLayout = "01-02 15:04"
	justNow           = "刚刚"
	defaultTitle      = "实时资讯快报"
	defaultSource     = "实时热搜"
	defaultTag        = "#热点资讯#"
	authorBadge       = "资讯"

	tagRuneLimit   = 20
	avatarVariants = 70
)

// IntN returns a non-negative pseudo-random int below n.
type IntN func(n int) int

// Mapper converts upstream articles and backup records into the one FeedItem shape
// the feed endpoint serves. Everything is deterministic except the engagement
// stats, which come from the injected random source.
type Mapper struct {
	intn IntN
	now  func() time.Time
}

func NewMapper() *Mapper {
	return &Mapper{intn: rand.IntN, now: time.Now}
}

// NewMapperWith injects the random source and clock, so tests can pin both.
func NewMapperWith(intn IntN, now func() time.Time) *Mapper {
	return &Mapper{intn: intn, now: now}
}

func (m *Mapper) FromArticle(article dto.MediastackArticle, channel string) dto.FeedItem {
	id := m.articleID(article.URL)

	title := titleOrDefault(article.Title)
	description := strings.TrimSpace(article.Description)
	if description == "" {
		description = title
	}
	source := article.Source
	if utils.IsBlank(source) {
		source = defaultSource
	}

	item := dto.FeedItem{
		ID:        id,
		Tag:       "#" + truncateTitle(title) + "#",
		Author:    m.author(id, source),
		Content:   buildContent(title, description),
		Stats:     m.rollStats(),
		CreatedAt: formatPublishedAt(article.PublishedAt),
		Source:    source,
		Link:      article.URL,
	}

	if !utils.IsBlank(article.Image) {
		item.Media = &dto.FeedMedia{Type: "image", Cover: article.Image}
	}

	return item
}

func (m *Mapper) FromBackup(record domain.NewsBackup) dto.FeedItem {
	id := record.URL
	if utils.IsBlank(id) {
		id = strconv.FormatInt(record.ID, 10)
	} else {
		id = hashHex(id)
	}

	tag := record.Summary
	if utils.IsBlank(tag) {
		tag = defaultTag
	}
	content := record.Content
	if utils.IsBlank(content) {
		content = record.Title
	}
	source := record.Source
	if utils.IsBlank(source) {
		source = defaultSource
	}

	createdAt := justNow
	if record.PublishedAt != nil {
		createdAt = record.PublishedAt.Format(displayTimeLayout)
	}

	return dto.FeedItem{
		ID:        id,
		Tag:       tag,
		Author:    m.author(id, source),
		Content:   content,
		Stats:     m.rollStats(),
		CreatedAt: createdAt,
		Source:    source,
		Link:      record.URL,
	}
}

// Backup turns a mapped live item into its durable record. The source article is
// needed for the title: the item's content concatenates title and description, so
// a title containing a newline cannot be recovered from it.
func (m *Mapper) Backup(article dto.MediastackArticle, item dto.FeedItem, category string) domain.NewsBackup {
	return domain.NewsBackup{
		Title:       titleOrDefault(article.Title),
		Summary:     item.Tag,
		Content:     item.Content,
		Source:      item.Source,
		URL:         item.Link,
		Category:    category,
		PublishedAt: m.backupTime(item.CreatedAt),
	}
}

// backupTime reconstructs a zone-naive publish time from the display string. The
// display format carries no year, so the current year is assumed; the original
// year of a record cached across a year boundary is unrecoverable.
func (m *Mapper) backupTime(createdAt string) *time.Time {
	now := m.now().In(chinaZone)

	parsed, err := time.Parse(displayTimeLayout, createdAt)
	if createdAt == justNow || err != nil {
		return &now
	}

	t := time.Date(now.Year(), parsed.Month(), parsed.Day(), parsed.Hour(), parsed.Minute(), 0, 0, chinaZone)
	return &t
}

func (m *Mapper) articleID(url string) string {
	if utils.IsBlank(url) {
		return strconv.FormatInt(m.now().UnixNano(), 10)
	}
	return hashHex(url)
}

func (m *Mapper) author(id, source string) dto.FeedAuthor {
	return dto.FeedAuthor{
		Name:     source,
		Handle:   "@" + utils.CollapseWhitespace(source),
		Avatar:   fmt.Sprintf("https://i.pravatar.cc/120?img=%d", avatarIndex(id)),
		Verified: true,
		Badge:    authorBadge,
	}
}

func (m *Mapper) rollStats() dto.FeedStats {
	return dto.FeedStats{
		Reposts:  20 + m.intn(100),
		Comments: 40 + m.intn(220),
		Likes:    200 + m.intn(1600),
	}
}

func buildContent(title, description string) string {
	if title == description {
		return title
	}
	return title + "\n" + description
}

func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= tagRuneLimit {
		return title
	}
	return string(runes[:tagRuneLimit])
}

func formatPublishedAt(publishedAt string) string {
	if utils.IsBlank(publishedAt) {
		return justNow
	}
	t, err := time.Parse(time.RFC3339, publishedAt)
	if err != nil {
		return justNow
	}
	return t.In(chinaZone).Format(displayTimeLayout)
}

func titleOrDefault(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return defaultTitle
	}
	return title
}

// hashHex is a portable stand-in for identity-dependent hash codes: FNV-1a over
// the string, rendered as lowercase hex.
func hashHex(s string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return fmt.Sprintf("%x", h.Sum32())
}

func avatarIndex(id string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return int(h.Sum32() % avatarVariants)
}
