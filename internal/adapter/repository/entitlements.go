package repository

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// EntitlementsRepo answers whether a user may use premium export
// styles, based on the latest completed payment row. The payment
// provider flow itself lives elsewhere; this only reads its outcome.
type EntitlementsRepo struct {
	pool *pgxpool.Pool
}

func NewEntitlementsRepo(pool *pgxpool.Pool) *EntitlementsRepo {
	return &EntitlementsRepo{pool: pool}
}

// HasPremium reports whether the user has a succeeded payment on file.
// Without a database every user is treated as premium, which keeps
// local development and tests unblocked.
func (r *EntitlementsRepo) HasPremium(ctx context.Context, userID string) (bool, error) {
	if r.pool == nil {
		return true, nil
	}
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM payments WHERE user_id::text=$1 AND status='succeeded'`, userID).Scan(&n)
	if err != nil {
		slog.Warn("entitlement lookup failed, denying premium", "user_id", userID, "error", err)
		return false, err
	}
	return n > 0, nil
}
