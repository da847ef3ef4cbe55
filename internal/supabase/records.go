package supabase

import (
	"context"
	"fmt"

	"github.com/supabase-community/supabase-go"
	"streetart-capture/internal/models"
)

// RecordClient inserts upload records through the PostgREST API.
type RecordClient struct {
	client *supabase.Client
	table  string
}

func NewRecordClient(client *Client, table string) *RecordClient {
	return &RecordClient{
		client: client.Supabase,
		table:  table,
	}
}

func (r *RecordClient) InsertRecord(ctx context.Context, record models.UploadRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, _, err := r.client.From(r.table).
		Insert([]models.UploadRecord{record}, false, "", "minimal", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to insert into %s: %w", r.table, err)
	}
	return nil
}
