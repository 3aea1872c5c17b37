package news

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultCategory is the upstream category used for channels without a mapping.
const DefaultCategory = "general"

var defaultChannelCategories = map[string]string{
	"hot":      "general",
	"tech":     "technology",
	"video":    "general",
	"society":  "general",
	"headline": "general",
}

// ChannelMap translates client-side channel names into the upstream category
// vocabulary. Unknown channels degrade to DefaultCategory instead of erroring.
type ChannelMap struct {
	categories map[string]string
}

func DefaultChannelMap() *ChannelMap {
	return &ChannelMap{categories: defaultChannelCategories}
}

// LoadChannelMap reads a channel→category mapping in YAML. Entries merge over the
// built-in defaults, so a file only needs to list overrides.
func LoadChannelMap(reader io.Reader) (*ChannelMap, error) {
	decoder := yaml.NewDecoder(reader)

	var overrides map[string]string
	if err := decoder.Decode(&overrides); err != nil {
		return nil, fmt.Errorf("failed to decode channel map: %w", err)
	}

	categories := make(map[string]string, len(defaultChannelCategories)+len(overrides))
	for channel, category := range defaultChannelCategories {
		categories[channel] = category
	}
	for channel, category := range overrides {
		categories[channel] = category
	}

	return &ChannelMap{categories: categories}, nil
}

// LoadChannelMapFile loads the mapping from path, or the defaults when path is empty.
func LoadChannelMapFile(path string) (*ChannelMap, error) {
	if path == "" {
		return DefaultChannelMap(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open channel map file: %w", err)
	}
	defer f.Close()

	return LoadChannelMap(f)
}

func (m *ChannelMap) Category(channel string) string {
	if category, ok := m.categories[channel]; ok {
		return category
	}
	return DefaultCategory
}
