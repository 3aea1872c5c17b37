package news

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultChannelMap(t *testing.T) {
	m := DefaultChannelMap()

	assert.Equal(t, "general", m.Category("hot"))
	assert.Equal(t, "technology", m.Category("tech"))
	assert.Equal(t, "general", m.Category("video"))
	assert.Equal(t, "general", m.Category("society"))
	assert.Equal(t, "general", m.Category("headline"))
	assert.Equal(t, DefaultCategory, m.Category("no-such-channel"))
}

func TestLoadChannelMap_MergesOverDefaults(t *testing.T) {
	yamlContent := `
sports: sports
tech: science
`
	m, err := LoadChannelMap(strings.NewReader(yamlContent))
	require.NoError(t, err)

	assert.Equal(t, "sports", m.Category("sports"))
	assert.Equal(t, "science", m.Category("tech"))
	// Untouched defaults survive.
	assert.Equal(t, "general", m.Category("hot"))
}

func TestLoadChannelMap_InvalidYAML(t *testing.T) {
	_, err := LoadChannelMap(strings.NewReader("{not yaml"))
	assert.Error(t, err)
}

func TestLoadChannelMapFile_EmptyPathUsesDefaults(t *testing.T) {
	m, err := LoadChannelMapFile("")
	require.NoError(t, err)
	assert.Equal(t, "technology", m.Category("tech"))
}

func TestLoadChannelMapFile_MissingFile(t *testing.T) {
	_, err := LoadChannelMapFile("does/not/exist.yaml")
	assert.Error(t, err)
}
