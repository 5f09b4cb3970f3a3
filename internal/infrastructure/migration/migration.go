package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")

	migrations := []Migration{
		{
			Name: "create_cv_renders",
			Up: func(ctx context.Context, pool *pgxpool.Pool) error {
				return createCVRenders(ctx, pool)
			},
		},
		{
			Name: "add_status_to_cv_renders",
			Up: func(ctx context.Context, pool *pgxpool.Pool) error {
				return addStatusToCVRenders(ctx, pool)
			},
		},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// createCVRenders creates the render history table if it doesn't exist
func createCVRenders(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS cv_renders (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			style TEXT NOT NULL,
			file_name TEXT NOT NULL,
			file_size BIGINT NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'completed',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`

	if _, err := pool.Exec(ctx, query); err != nil {
		slog.Warn("Error creating cv_renders table (may already exist)", "error", err)
		return nil
	}

	slog.Info("Successfully ensured cv_renders table")
	return nil
}

// addStatusToCVRenders adds the status column for rows created before it existed
func addStatusToCVRenders(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		ALTER TABLE cv_renders
		ADD COLUMN IF NOT EXISTS status TEXT NOT NULL DEFAULT 'completed';
	`

	if _, err := pool.Exec(ctx, query); err != nil {
		slog.Warn("Error adding status column (may already exist)", "error", err)
		return nil
	}

	return nil
}
