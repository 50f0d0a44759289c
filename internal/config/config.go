package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends.
const (
	BackendGCS   = "gcs"
	BackendLocal = "local"
)

type Config struct {
	Port     string
	BotToken string
	LogLevel string

	FontPath        string
	TemplateBaseURL string
	FallbackArtURL  string
	BadgeURL        string
	ScratchDir      string
	FetchTimeout    time.Duration
	// FlattenAllGenres keeps the production behaviour of flattening art
	// transparency for every genre.
	FlattenAllGenres bool

	StorageBackend       string
	StorageBucket        string
	StoragePublicBaseURL string
	StorageLocalDir      string
}

// DefaultTemplateBaseURL hosts the stock templates.
const DefaultTemplateBaseURL = "https://static.mycalinks.io/pos/general/purchase-table/templates/"

func defaults() Config {
	return Config{
		Port:             "8080",
		LogLevel:         "info",
		TemplateBaseURL:  DefaultTemplateBaseURL,
		FallbackArtURL:   "file://resources/noimage.png",
		BadgeURL:         "file://resources/psa_logo.png",
		FetchTimeout:     12 * time.Second,
		FlattenAllGenres: true,
		StorageBackend:   BackendLocal,
		StorageLocalDir:  "out",
	}
}

// Load reads the given .env files (missing files are skipped) without
// overriding variables already set, then parses the environment.
func Load(envFiles ...string) (Config, error) {
	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}
	return Parse(os.Getenv)
}

// Parse builds a Config from getenv, applying defaults for unset keys.
func Parse(getenv func(string) string) (Config, error) {
	cfg := defaults()
	str := func(key string, dst *string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	str("PORT", &cfg.Port)
	str("BOT_TOKEN", &cfg.BotToken)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("FONT_PATH", &cfg.FontPath)
	str("TEMPLATE_BASE_URL", &cfg.TemplateBaseURL)
	str("FALLBACK_ART_URL", &cfg.FallbackArtURL)
	str("BADGE_URL", &cfg.BadgeURL)
	str("SCRATCH_DIR", &cfg.ScratchDir)
	str("STORAGE_BACKEND", &cfg.StorageBackend)
	str("STORAGE_BUCKET", &cfg.StorageBucket)
	str("STORAGE_PUBLIC_BASE_URL", &cfg.StoragePublicBaseURL)
	str("STORAGE_LOCAL_DIR", &cfg.StorageLocalDir)

	cfg.Port = strings.TrimPrefix(cfg.Port, ":")
	cfg.StorageBackend = strings.ToLower(cfg.StorageBackend)

	if v := strings.TrimSpace(getenv("FETCH_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("FETCH_TIMEOUT: invalid duration %q", v)
		}
		cfg.FetchTimeout = d
	}
	if v := strings.TrimSpace(getenv("FLATTEN_ALL_GENRES")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("FLATTEN_ALL_GENRES: %w", err)
		}
		cfg.FlattenAllGenres = b
	}

	switch cfg.StorageBackend {
	case BackendLocal:
	case BackendGCS:
		if cfg.StorageBucket == "" {
			return Config{}, errors.New("STORAGE_BUCKET is required for the gcs backend")
		}
	default:
		return Config{}, fmt.Errorf("STORAGE_BACKEND: unknown backend %q", cfg.StorageBackend)
	}
	return cfg, nil
}
