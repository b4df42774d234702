package responses

import (
	"context"
	"errors"

	"lokal/internal/domain/users"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	Get(ctx context.Context, reviewID int64) (*Response, error)
	Create(ctx context.Context, resp *Response) error
	Update(ctx context.Context, reviewID int64, content string) (*Response, error)
	Delete(ctx context.Context, reviewID int64) error
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Store {
	return &Repository{db: db}
}

// Get returns the review's response joined with its author, or nil when the
// review has none.
func (r *Repository) Get(ctx context.Context, reviewID int64) (*Response, error) {
	query := `
        SELECT resp.id, resp.review_id, resp.user_id, resp.content,
               resp.created_at, resp.updated_at,
               u.id, u.username, u.full_name, u.avatar_url
        FROM review_responses resp
        JOIN users u ON u.id = resp.user_id
        WHERE resp.review_id = $1
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	resp := &Response{User: &users.Profile{}}
	err := r.db.QueryRow(ctx, query, reviewID).Scan(
		&resp.ID, &resp.ReviewID, &resp.UserID, &resp.Content,
		&resp.CreatedAt, &resp.UpdatedAt,
		&resp.User.ID, &resp.User.Username, &resp.User.FullName, &resp.User.AvatarURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return resp, nil
}

// Create inserts the response. The unique index on review_id keeps it to one
// per review; a conflicting insert affects zero rows.
func (r *Repository) Create(ctx context.Context, resp *Response) error {
	query := `
        INSERT INTO review_responses (review_id, user_id, content)
        VALUES ($1, $2, $3)
        ON CONFLICT (review_id) DO NOTHING
        RETURNING id, created_at, updated_at
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := r.db.QueryRow(ctx, query, resp.ReviewID, resp.UserID, resp.Content).
		Scan(&resp.ID, &resp.CreatedAt, &resp.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrConflict
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrReviewNotFound
		}
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, reviewID int64, content string) (*Response, error) {
	query := `
        UPDATE review_responses
        SET content = $2, updated_at = now()
        WHERE review_id = $1
        RETURNING id, review_id, user_id, content, created_at, updated_at
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	resp := &Response{}
	err := r.db.QueryRow(ctx, query, reviewID, content).Scan(
		&resp.ID, &resp.ReviewID, &resp.UserID, &resp.Content,
		&resp.CreatedAt, &resp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return resp, nil
}

func (r *Repository) Delete(ctx context.Context, reviewID int64) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	result, err := r.db.Exec(ctx, `DELETE FROM review_responses WHERE review_id = $1`, reviewID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
