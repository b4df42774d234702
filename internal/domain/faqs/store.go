package faqs

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	ListByBusiness(ctx context.Context, businessID int64) ([]FAQ, error)
	Create(ctx context.Context, f *FAQ) error
	Update(ctx context.Context, f *FAQ) error
	Delete(ctx context.Context, id, businessID int64) error
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Store {
	return &Repository{db: db}
}

func (r *Repository) ListByBusiness(ctx context.Context, businessID int64) ([]FAQ, error) {
	query := `
        SELECT id, business_id, question, answer, created_at, updated_at
        FROM business_faqs
        WHERE business_id = $1
        ORDER BY created_at
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := r.db.Query(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FAQ
	for rows.Next() {
		var f FAQ
		if err := rows.Scan(&f.ID, &f.BusinessID, &f.Question, &f.Answer, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *Repository) Create(ctx context.Context, f *FAQ) error {
	query := `
        INSERT INTO business_faqs (business_id, question, answer)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return r.db.QueryRow(ctx, query, f.BusinessID, f.Question, f.Answer).
		Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
}

func (r *Repository) Update(ctx context.Context, f *FAQ) error {
	query := `
        UPDATE business_faqs
        SET question = $3, answer = $4, updated_at = now()
        WHERE id = $1 AND business_id = $2
        RETURNING updated_at
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := r.db.QueryRow(ctx, query, f.ID, f.BusinessID, f.Question, f.Answer).Scan(&f.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *Repository) Delete(ctx context.Context, id, businessID int64) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	result, err := r.db.Exec(ctx,
		`DELETE FROM business_faqs WHERE id = $1 AND business_id = $2`,
		id, businessID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
