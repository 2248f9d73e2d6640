package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/foremanhq/foreman/pkg/formatting"
	"github.com/foremanhq/foreman/pkg/middleware"
	"github.com/foremanhq/foreman/pkg/pagination"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "FOREMAN_CORS_ENABLED",
	Origins:          "FOREMAN_CORS_ORIGINS",
	AllowedMethods:   "FOREMAN_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "FOREMAN_CORS_ALLOWED_HEADERS",
	AllowCredentials: "FOREMAN_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "FOREMAN_CORS_MAX_AGE",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "FOREMAN_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "FOREMAN_PAGINATION_MAX_PAGE_SIZE",
}

// APIConfig holds API routing, upload, CORS, and pagination settings.
type APIConfig struct {
	BasePath      string                `toml:"base_path"`
	MaxUploadSize string                `toml:"max_upload_size"`
	SequenceLimit int                   `toml:"sequence_limit"`
	CORS          middleware.CORSConfig `toml:"cors"`
	Pagination    pagination.Config     `toml:"pagination"`
}

// MaxUploadSizeBytes returns MaxUploadSize parsed into bytes.
func (c *APIConfig) MaxUploadSizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxUploadSize)
	if err != nil {
		return 50 * 1024 * 1024 // 50MB fallback
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS and pagination configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if c.SequenceLimit < 1 {
		return fmt.Errorf("invalid sequence_limit: %d", c.SequenceLimit)
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxUploadSize != "" {
		c.MaxUploadSize = overlay.MaxUploadSize
	}
	if overlay.SequenceLimit != 0 {
		c.SequenceLimit = overlay.SequenceLimit
	}

	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "50MB"
	}
	if c.SequenceLimit == 0 {
		c.SequenceLimit = 4
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("FOREMAN_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("FOREMAN_API_MAX_UPLOAD_SIZE"); v != "" {
		c.MaxUploadSize = v
	}
	if v := os.Getenv("FOREMAN_API_SEQUENCE_LIMIT"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil {
			c.SequenceLimit = limit
		}
	}
}
