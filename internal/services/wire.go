package services

import (
	"fmt"

	"streetart-capture/internal/config"
	"streetart-capture/internal/database"
	"streetart-capture/internal/logger"
	"streetart-capture/internal/supabase"
)

// NewFromConfig wires the Supabase storage bucket and a record store. With
// DATABASE_URL set records go straight to Postgres after migrations run;
// otherwise they go through PostgREST. The migrations only create
// database.RecordsTable, so the direct path requires that table name. The
// returned func releases connections.
func NewFromConfig(cfg *config.Config) (*UploadService, func() error, error) {
	log := logger.Component("services")

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, cfg.SupabaseStorageBucket)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize storage client: %w", err)
	}

	if cfg.DatabaseURL != "" {
		if cfg.SupabaseRecordsTable != database.RecordsTable {
			return nil, nil, fmt.Errorf("SUPABASE_RECORDS_TABLE must be %q when DATABASE_URL is set, got %q", database.RecordsTable, cfg.SupabaseRecordsTable)
		}
		migrator, err := database.NewMigrator(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize migrator: %w", err)
		}
		err = migrator.Run()
		migrator.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("migration failed: %w", err)
		}

		dbClient, err := supabase.NewDatabaseClient(cfg.DatabaseURL, cfg.SupabaseRecordsTable)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database client: %w", err)
		}
		log.Info().Str("table", cfg.SupabaseRecordsTable).Msg("records go to postgres")
		return NewUploadService(storageClient, dbClient), dbClient.Close, nil
	}

	client, err := supabase.NewClient(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize Supabase client: %w", err)
	}
	log.Info().Str("table", cfg.SupabaseRecordsTable).Msg("records go to postgrest")
	return NewUploadService(storageClient, supabase.NewRecordClient(client, cfg.SupabaseRecordsTable)), func() error { return nil }, nil
}
