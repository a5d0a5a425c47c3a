// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Port           string
	AllowedOrigins []string
	DBPath         string // empty means in-memory stores only
	DefaultUserID  string

	// AutoInsertBreaks writes accepted break proposals to the calendar
	// unless the request says otherwise.
	AutoInsertBreaks bool

	// ProviderTimeoutSec bounds each external provider call.
	ProviderTimeoutSec int

	Calendar CalendarConfig
	Notion   NotionConfig
	Spotify  SpotifyConfig
	YouTube  YouTubeConfig
}

// CalendarConfig holds calendar provider credentials.
type CalendarConfig struct {
	AccessToken string
	CalendarID  string
}

// NotionConfig holds task provider credentials.
type NotionConfig struct {
	Token      string
	DatabaseID string
}

// SpotifyConfig holds music catalog credentials.
type SpotifyConfig struct {
	AccessToken string
}

// YouTubeConfig holds video catalog credentials.
type YouTubeConfig struct {
	APIKey string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "5000"),
		AllowedOrigins: []string{getEnv("ALLOWED_ORIGIN", "*")},
		DBPath:         getEnv("RESPITE_DB", ""),
		DefaultUserID:  getEnv("RESPITE_DEFAULT_USER", "default"),

		AutoInsertBreaks:   getEnvBool("RESPITE_AUTO_INSERT", false),
		ProviderTimeoutSec: getEnvInt("RESPITE_PROVIDER_TIMEOUT_SEC", 10),
		Calendar: CalendarConfig{
			AccessToken: getEnv("GOOGLE_CALENDAR_TOKEN", ""),
			CalendarID:  getEnv("GOOGLE_CALENDAR_ID", "primary"),
		},
		Notion: NotionConfig{
			Token:      getEnv("NOTION_TOKEN", ""),
			DatabaseID: getEnv("NOTION_DATABASE_ID", ""),
		},
		Spotify: SpotifyConfig{
			AccessToken: getEnv("SPOTIFY_ACCESS_TOKEN", ""),
		},
		YouTube: YouTubeConfig{
			APIKey: getEnv("YOUTUBE_API_KEY", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.DefaultUserID == "" {
		return fmt.Errorf("RESPITE_DEFAULT_USER cannot be empty")
	}
	if c.ProviderTimeoutSec <= 0 {
		return fmt.Errorf("RESPITE_PROVIDER_TIMEOUT_SEC must be > 0")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
