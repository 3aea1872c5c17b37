package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const (
	defaultNewsBaseURL  = "http://api.mediastack.com/v1"
	defaultNewsCountry  = "cn"
	defaultNewsLanguage = "zh"
	defaultNewsPageSize = 10
)

// News holds the upstream provider settings. The API key is the only field without
// a default; without it the provider is treated as unavailable and the feed serves
// cached records only.
type News struct {
	BaseURL  string
	APIKey   string
	Country  string
	Language string
	PageSize int
}

func LoadNews() *News {
	cfg := &News{
		BaseURL:  os.Getenv("NEWS_API_BASE_URL"),
		APIKey:   os.Getenv("NEWS_API_KEY"),
		Country:  os.Getenv("NEWS_API_COUNTRY"),
		Language: os.Getenv("NEWS_API_LANGUAGE"),
		PageSize: defaultNewsPageSize,
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultNewsBaseURL
	}

	if raw := os.Getenv("NEWS_API_PAGE_SIZE"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			slog.Warn("Invalid NEWS_API_PAGE_SIZE, using default", "value", raw)
		} else {
			cfg.PageSize = size
		}
	}

	return cfg
}

func (c *News) IsConfigured() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

func (c *News) NormalizedCountry() string {
	if strings.TrimSpace(c.Country) == "" {
		return defaultNewsCountry
	}
	return strings.ToLower(c.Country)
}

func (c *News) NormalizedLanguage() string {
	if strings.TrimSpace(c.Language) == "" {
		return defaultNewsLanguage
	}
	return strings.ToLower(c.Language)
}
