package lead

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository archives completed leads in Postgres so specialists can work
// them after the handoff. The archive is optional; the funnel itself only
// needs the slot store.
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Insert stores a completed MoveIntent.
func (r *Repository) Insert(ctx context.Context, intent MoveIntent) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO leads (
			id, session_id, intent, name, email, phone,
			from_zip, to_zip, from_city, to_city,
			move_date, home_size, has_vehicle, needs_packing, captured_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id) DO NOTHING`,
		intent.ID, intent.SessionID, string(intent.Intent), intent.Name, intent.Email, intent.Phone,
		intent.FromZip, intent.ToZip, intent.FromCity, intent.ToCity,
		intent.MoveDate, intent.HomeSize, intent.HasVehicle, intent.NeedsPacking, intent.CapturedAt,
	)
	return err
}

// ListRecent returns the newest archived leads, most recent first.
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]MoveIntent, error) {
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, session_id, intent, name, email, phone,
			from_zip, to_zip, from_city, to_city,
			move_date, home_size, has_vehicle, needs_packing, captured_at
		FROM leads
		ORDER BY captured_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []MoveIntent
	for rows.Next() {
		var m MoveIntent
		var intent string
		if err := rows.Scan(
			&m.ID, &m.SessionID, &intent, &m.Name, &m.Email, &m.Phone,
			&m.FromZip, &m.ToZip, &m.FromCity, &m.ToCity,
			&m.MoveDate, &m.HomeSize, &m.HasVehicle, &m.NeedsPacking, &m.CapturedAt,
		); err != nil {
			return nil, err
		}
		m.Intent = Intent(intent)
		leads = append(leads, m)
	}
	return leads, rows.Err()
}
