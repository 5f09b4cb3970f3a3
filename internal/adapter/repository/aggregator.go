package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// CVData is the generic aggregate assembled from the per-section
// tables, in the shape the render core's model.FromMap expects.
type CVData map[string]interface{}

// CVAggregator bundles the pool so callers can depend on a method
// instead of a free function.
type CVAggregator struct {
	pool *pgxpool.Pool
}

func NewCVAggregator(pool *pgxpool.Pool) *CVAggregator {
	return &CVAggregator{pool: pool}
}

func (a *CVAggregator) AggregateCV(ctx context.Context, userID string) (map[string]interface{}, error) {
	return AggregateCV(ctx, a.pool, userID)
}

// queryJSON runs a SQL statement that returns a single json value and
// unmarshals it.
func queryJSON(ctx context.Context, pool *pgxpool.Pool, sql string, args ...interface{}) (interface{}, error) {
	var raw []byte
	if err := pool.QueryRow(ctx, sql, args...).Scan(&raw); err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AggregateCV collects every CV section stored for the user into one
// document map. It is intentionally best-effort: a missing table or
// column skips that section and the rest is still returned, mirroring
// the render engine's own tolerance for absent data.
func AggregateCV(ctx context.Context, pool *pgxpool.Pool, userID string) (CVData, error) {
	data := CVData{}
	if pool == nil {
		return data, nil
	}

	// Identity fields live on a single personal_details row; merge it
	// into the top level of the document.
	if v, err := queryJSON(ctx, pool,
		`SELECT to_jsonb(p) FROM personal_details p WHERE p.user_id::text=$1 LIMIT 1`, userID); err == nil {
		if m, ok := v.(map[string]interface{}); ok {
			for k, val := range m {
				data[k] = val
			}
		}
	} else {
		slog.Debug("aggregate: personal_details unavailable", "error", err)
	}

	collections := []struct {
		key string
		sql string
	}{
		{"educations", `SELECT coalesce(json_agg(row_to_json(e) ORDER BY e.end_date DESC NULLS LAST), '[]') FROM educations e WHERE e.user_id::text=$1`},
		{"work_experiences", `SELECT coalesce(json_agg(row_to_json(w) ORDER BY w.start_date DESC NULLS LAST), '[]') FROM work_experiences w WHERE w.user_id::text=$1`},
		{"projects", `SELECT coalesce(json_agg(row_to_json(p)), '[]') FROM projects p WHERE p.user_id::text=$1`},
		{"certificates", `SELECT coalesce(json_agg(row_to_json(c)), '[]') FROM certificates c WHERE c.user_id::text=$1`},
		{"languages", `SELECT coalesce(json_agg(row_to_json(l)), '[]') FROM languages l WHERE l.user_id::text=$1`},
		{"references", `SELECT coalesce(json_agg(row_to_json(r) ORDER BY r.name), '[]') FROM "references" r WHERE r.user_id::text=$1`},
	}
	for _, c := range collections {
		if v, err := queryJSON(ctx, pool, c.sql, userID); err == nil {
			data[c.key] = v
		} else {
			slog.Debug("aggregate: section unavailable", "section", c.key, "error", err)
		}
	}

	// Flat string collections.
	if v, err := queryJSON(ctx, pool,
		`SELECT coalesce(json_agg(a.value), '[]') FROM achievements a WHERE a.user_id::text=$1`, userID); err == nil {
		data["achievements"] = v
	}
	if v, err := queryJSON(ctx, pool,
		`SELECT coalesce(json_agg(s.value), '[]') FROM skills s WHERE s.user_id::text=$1 AND s.kind='technical'`, userID); err == nil {
		data["technical_skills"] = v
	}
	if v, err := queryJSON(ctx, pool,
		`SELECT coalesce(json_agg(s.value), '[]') FROM skills s WHERE s.user_id::text=$1 AND s.kind='soft'`, userID); err == nil {
		data["soft_skills"] = v
	}
	if v, err := queryJSON(ctx, pool,
		`SELECT to_jsonb(o.career_objective) FROM career_objectives o WHERE o.user_id::text=$1 ORDER BY o.created_at DESC LIMIT 1`, userID); err == nil {
		data["career_objective"] = v
	}

	return data, nil
}
