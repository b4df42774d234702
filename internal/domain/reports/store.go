package reports

import (
	"context"
	"errors"

	"lokal/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	Create(ctx context.Context, report *Report) error
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Store {
	return &Repository{db: db}
}

// Create records the report and flags the review as reported, atomically.
// One report per (review, user) is enforced by the unique index; the reported
// flag is one-way, there is no un-report.
func (r *Repository) Create(ctx context.Context, report *Report) error {
	return database.WithTx(r.db, ctx, func(tx pgx.Tx) error {
		query := `
            INSERT INTO review_reports (review_id, user_id, reason)
            VALUES ($1, $2, $3)
            ON CONFLICT (review_id, user_id) DO NOTHING
            RETURNING id, created_at
        `

		ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
		defer cancel()

		err := tx.QueryRow(ctx, query, report.ReviewID, report.UserID, report.Reason).
			Scan(&report.ID, &report.CreatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrAlreadyReported
			}
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return ErrReviewNotFound
			}
			return err
		}

		_, err = tx.Exec(ctx, `UPDATE reviews SET reported = TRUE WHERE id = $1`, report.ReviewID)
		return err
	})
}
