package pg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weishuo-labs/weishuo-backend/internal/domain"
)

func backupRecord(url string, publishedAt *time.Time) domain.NewsBackup {
	return domain.NewsBackup{
		Title:       "标题",
		Summary:     "#标题#",
		Content:     "标题\n描述",
		Source:      "S",
		URL:         url,
		Category:    "general",
		PublishedAt: publishedAt,
	}
}

func TestBackupStore_InsertIfAbsent(t *testing.T) {
	truncateTables(t)

	published := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	inserted, err := testBackupStore.InsertIfAbsent(testCtx, backupRecord("http://x", &published))
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = testBackupStore.InsertIfAbsent(testCtx, backupRecord("http://x", &published))
	require.NoError(t, err)
	assert.False(t, inserted)

	records, err := testBackupStore.MostRecent(testCtx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "http://x", records[0].URL)
	assert.Equal(t, "标题", records[0].Title)
	assert.False(t, records[0].CreatedAt.IsZero())
}

func TestBackupStore_InsertIfAbsent_SkipsBlankURL(t *testing.T) {
	truncateTables(t)

	for _, url := range []string{"", "   "} {
		inserted, err := testBackupStore.InsertIfAbsent(testCtx, backupRecord(url, nil))
		require.NoError(t, err)
		assert.False(t, inserted)
	}

	records, err := testBackupStore.MostRecent(testCtx, 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestBackupStore_MostRecentOrdering(t *testing.T) {
	truncateTables(t)

	t1 := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	t3 := time.Date(2024, 5, 3, 9, 0, 0, 0, time.UTC)

	for url, ts := range map[string]*time.Time{
		"http://a": &t1,
		"http://b": &t2,
		"http://c": &t3,
		"http://d": nil,
	} {
		_, err := testBackupStore.InsertIfAbsent(testCtx, backupRecord(url, ts))
		require.NoError(t, err)
	}

	records, err := testBackupStore.MostRecent(testCtx, 10)
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, "http://c", records[0].URL)
	assert.Equal(t, "http://a", records[1].URL)
	assert.Equal(t, "http://b", records[2].URL)
	// Undated records sort after dated ones.
	assert.Equal(t, "http://d", records[3].URL)
	assert.Nil(t, records[3].PublishedAt)
}

func TestBackupStore_MostRecentLimit(t *testing.T) {
	truncateTables(t)

	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		ts := base.Add(time.Duration(i) * time.Hour)
		_, err := testBackupStore.InsertIfAbsent(testCtx, backupRecord("http://"+string(rune('a'+i)), &ts))
		require.NoError(t, err)
	}

	records, err := testBackupStore.MostRecent(testCtx, 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestBackupStore_MostRecentEmpty(t *testing.T) {
	truncateTables(t)

	records, err := testBackupStore.MostRecent(testCtx, 20)
	require.NoError(t, err)
	assert.Empty(t, records)
}
