package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"streetart-capture/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("SUPABASE_PUBLISHABLE_KEY", "anon-key")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "user_added_images", cfg.SupabaseStorageBucket)
	assert.Equal(t, "user_added_art", cfg.SupabaseRecordsTable)
	assert.Equal(t, "environment", cfg.CameraFacing)
	assert.Equal(t, 1.0, cfg.CompressMaxSizeMB)
	assert.Equal(t, 1920, cfg.CompressMaxDimension)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.HasFixedLocation())
}

func TestLoad_MissingSupabaseURL(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_PUBLISHABLE_KEY", "anon-key")

	_, err := config.Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "SUPABASE_URL is required")
}

func TestLoad_InvalidCompressionSize(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("SUPABASE_PUBLISHABLE_KEY", "anon-key")
	t.Setenv("COMPRESS_MAX_SIZE_MB", "one")

	_, err := config.Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "COMPRESS_MAX_SIZE_MB")
}

func TestValidate_PartialLocation(t *testing.T) {
	cfg := &config.Config{
		SupabaseURL:            "https://example.supabase.co",
		SupabasePublishableKey: "anon-key",
		SupabaseStorageBucket:  "user_added_images",
		SupabaseRecordsTable:   "user_added_art",
		CompressMaxSizeMB:      1,
		CompressMaxDimension:   1920,
		LocationLatitude:       "40.730610",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be set together")

	cfg.LocationLongitude = "-73.935242"
	assert.NoError(t, cfg.Validate())
	assert.True(t, cfg.HasFixedLocation())
}
