package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"streetart-capture/internal/database"
)

func TestMigrations_Ordered(t *testing.T) {
	names, err := database.Migrations()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"001_create_user_added_art.sql",
		"002_allow_anonymous_inserts.sql",
	}, names)
}
