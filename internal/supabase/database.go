package supabase

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"streetart-capture/internal/models"
)

// DatabaseClient writes upload records over a direct Postgres connection.
type DatabaseClient struct {
	db    *sql.DB
	table string
}

func NewDatabaseClient(connectionString, table string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db, table: table}, nil
}

func insertRecordQuery(table string) string {
	return fmt.Sprintf(`
		INSERT INTO %s (user_id, artist_name, latitude, longitude, image)
		VALUES ($1, $2, $3, $4, $5)
	`, pq.QuoteIdentifier(table))
}

func (d *DatabaseClient) InsertRecord(ctx context.Context, record models.UploadRecord) error {
	var userID sql.NullString
	if record.UserID != nil {
		userID = sql.NullString{String: *record.UserID, Valid: true}
	}

	_, err := d.db.ExecContext(ctx, insertRecordQuery(d.table),
		userID, record.ArtistName, record.Latitude, record.Longitude, record.Image)
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}
	return nil
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}
