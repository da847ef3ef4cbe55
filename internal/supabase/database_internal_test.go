package supabase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertRecordQuery_QuotesTable(t *testing.T) {
	q := insertRecordQuery("user_added_art")
	assert.Contains(t, q, `INSERT INTO "user_added_art"`)
	assert.Contains(t, q, "user_id, artist_name, latitude, longitude, image")

	q = insertRecordQuery(`art"; DROP TABLE x; --`)
	assert.Contains(t, q, `"art""; DROP TABLE x; --"`)
}
