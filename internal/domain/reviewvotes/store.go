package reviewvotes

import (
	"context"
	"errors"

	"lokal/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	Add(ctx context.Context, reviewID, userID int64) (int, error)
	Remove(ctx context.Context, reviewID, userID int64) (int, error)
	Count(ctx context.Context, reviewID int64) (int, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Store {
	return &Repository{db: db}
}

// Add records the vote and refreshes the review's denormalized count in one
// transaction. One vote per (review, user) is the table's unique index; a
// duplicate insert affects zero rows and maps to ErrAlreadyVoted.
func (r *Repository) Add(ctx context.Context, reviewID, userID int64) (int, error) {
	var count int
	err := database.WithTx(r.db, ctx, func(tx pgx.Tx) error {
		ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
		defer cancel()

		var exists bool
		err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM reviews WHERE id = $1)`, reviewID).Scan(&exists)
		if err != nil {
			return err
		}
		if !exists {
			return ErrReviewNotFound
		}

		var voteID int64
		err = tx.QueryRow(ctx, `
            INSERT INTO review_helpful_votes (review_id, user_id)
            VALUES ($1, $2)
            ON CONFLICT (review_id, user_id) DO NOTHING
            RETURNING id
        `, reviewID, userID).Scan(&voteID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrAlreadyVoted
			}
			return err
		}

		count, err = syncCount(ctx, tx, reviewID)
		return err
	})
	return count, err
}

// Remove deletes the vote if present. Removing a vote that does not exist is
// a no-op success, unlike Add.
func (r *Repository) Remove(ctx context.Context, reviewID, userID int64) (int, error) {
	var count int
	err := database.WithTx(r.db, ctx, func(tx pgx.Tx) error {
		ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
		defer cancel()

		_, err := tx.Exec(ctx,
			`DELETE FROM review_helpful_votes WHERE review_id = $1 AND user_id = $2`,
			reviewID, userID,
		)
		if err != nil {
			return err
		}

		count, err = syncCount(ctx, tx, reviewID)
		return err
	})
	return count, err
}

// syncCount recounts the ledger and writes the result onto the review row.
// Always derived from COUNT rather than incremented, so it self-heals from
// drift.
func syncCount(ctx context.Context, tx pgx.Tx, reviewID int64) (int, error) {
	var count int
	err := tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM review_helpful_votes WHERE review_id = $1`,
		reviewID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}

	_, err = tx.Exec(ctx, `UPDATE reviews SET helpful_votes = $2 WHERE id = $1`, reviewID, count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repository) Count(ctx context.Context, reviewID int64) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM review_helpful_votes WHERE review_id = $1`,
		reviewID,
	).Scan(&count)
	return count, err
}
