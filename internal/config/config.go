package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// Supabase
	SupabaseURL            string
	SupabasePublishableKey string
	SupabaseStorageBucket  string
	SupabaseRecordsTable   string

	// Database (optional direct Postgres connection for records and migrations)
	DatabaseURL string

	// Camera
	CameraSource string
	CameraFacing string

	// Location (optional fixed position for kiosks without a browser)
	LocationLatitude  string
	LocationLongitude string

	// Compression
	CompressMaxSizeMB    float64
	CompressMaxDimension int

	// Logging
	LogLevel  string
	LogFormat string

	// Server
	Port        string
	Environment string
	BaseURL     string
}

func Load() (*Config, error) {
	cfg := &Config{
		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabasePublishableKey: getEnv("SUPABASE_PUBLISHABLE_KEY", ""),
		SupabaseStorageBucket:  getEnv("SUPABASE_STORAGE_BUCKET", "user_added_images"),
		SupabaseRecordsTable:   getEnv("SUPABASE_RECORDS_TABLE", "user_added_art"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		CameraSource: getEnv("CAMERA_SOURCE", ""),
		CameraFacing: getEnv("CAMERA_FACING", "environment"),

		LocationLatitude:  getEnv("LOCATION_LATITUDE", ""),
		LocationLongitude: getEnv("LOCATION_LONGITUDE", ""),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", ""),
	}

	var err error
	if cfg.CompressMaxSizeMB, err = strconv.ParseFloat(getEnv("COMPRESS_MAX_SIZE_MB", "1"), 64); err != nil {
		return nil, fmt.Errorf("invalid COMPRESS_MAX_SIZE_MB: %w", err)
	}
	if cfg.CompressMaxDimension, err = strconv.Atoi(getEnv("COMPRESS_MAX_DIMENSION", "1920")); err != nil {
		return nil, fmt.Errorf("invalid COMPRESS_MAX_DIMENSION: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabasePublishableKey == "" {
		return fmt.Errorf("SUPABASE_PUBLISHABLE_KEY is required")
	}
	if c.SupabaseStorageBucket == "" {
		return fmt.Errorf("SUPABASE_STORAGE_BUCKET must not be empty")
	}
	if c.SupabaseRecordsTable == "" {
		return fmt.Errorf("SUPABASE_RECORDS_TABLE must not be empty")
	}
	if c.CompressMaxSizeMB <= 0 {
		return fmt.Errorf("COMPRESS_MAX_SIZE_MB must be positive")
	}
	if c.CompressMaxDimension <= 0 {
		return fmt.Errorf("COMPRESS_MAX_DIMENSION must be positive")
	}
	if (c.LocationLatitude == "") != (c.LocationLongitude == "") {
		return fmt.Errorf("LOCATION_LATITUDE and LOCATION_LONGITUDE must be set together")
	}
	return nil
}

// HasFixedLocation reports whether a static position was configured.
func (c *Config) HasFixedLocation() bool {
	return c.LocationLatitude != "" && c.LocationLongitude != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
