package hours

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	ListByBusiness(ctx context.Context, businessID int64) ([]Entry, error)
	Upsert(ctx context.Context, e *Entry) error
	Delete(ctx context.Context, businessID int64, weekday int) error
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Store {
	return &Repository{db: db}
}

func (r *Repository) ListByBusiness(ctx context.Context, businessID int64) ([]Entry, error) {
	query := `
        SELECT id, business_id, weekday, open_time, close_time, closed, created_at, updated_at
        FROM business_hours
        WHERE business_id = $1
        ORDER BY weekday
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := r.db.Query(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		err := rows.Scan(
			&e.ID, &e.BusinessID, &e.Weekday, &e.OpenTime, &e.CloseTime,
			&e.Closed, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Upsert writes one weekday's window, replacing any existing row for the
// same (business, weekday).
func (r *Repository) Upsert(ctx context.Context, e *Entry) error {
	query := `
        INSERT INTO business_hours (business_id, weekday, open_time, close_time, closed)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (business_id, weekday)
        DO UPDATE SET open_time = EXCLUDED.open_time,
                      close_time = EXCLUDED.close_time,
                      closed = EXCLUDED.closed,
                      updated_at = now()
        RETURNING id, created_at, updated_at
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return r.db.QueryRow(ctx, query,
		e.BusinessID, e.Weekday, e.OpenTime, e.CloseTime, e.Closed,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (r *Repository) Delete(ctx context.Context, businessID int64, weekday int) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	result, err := r.db.Exec(ctx,
		`DELETE FROM business_hours WHERE business_id = $1 AND weekday = $2`,
		businessID, weekday,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
