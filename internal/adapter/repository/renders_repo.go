package repository

import (
	"context"

	"cv-builder/internal/domain"

	"github.com/jackc/pgx/v4/pgxpool"
)

// RendersRepo persists CV render history rows. A nil pool turns every
// operation into a no-op so the service still runs without a database.
type RendersRepo struct {
	pool *pgxpool.Pool
}

func NewRendersRepo(pool *pgxpool.Pool) *RendersRepo {
	return &RendersRepo{pool: pool}
}

func (r *RendersRepo) Save(ctx context.Context, rec *domain.RenderRecord) error {
	if r.pool == nil {
		return nil
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO cv_renders (id, user_id, style, file_name, file_size, status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET style = EXCLUDED.style, file_name = EXCLUDED.file_name, file_size = EXCLUDED.file_size, status = EXCLUDED.status, updated_at = EXCLUDED.updated_at`,
		rec.ID, rec.UserID, rec.Style, rec.FileName, rec.FileSize, rec.Status, rec.CreatedAt, rec.UpdatedAt)
	return err
}
