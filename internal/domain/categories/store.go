package categories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	List(ctx context.Context) ([]Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	Create(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id int64) error
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Store {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context) ([]Category, error) {
	query := `
        SELECT c.id, c.name, c.slug, c.description, c.image_url,
               c.created_at, c.updated_at,
               COUNT(b.id) AS business_count
        FROM categories c
        LEFT JOIN businesses b ON b.category_id = c.id
        GROUP BY c.id
        ORDER BY c.created_at DESC
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var c Category
		err := rows.Scan(
			&c.ID, &c.Name, &c.Slug, &c.Description, &c.ImageURL,
			&c.CreatedAt, &c.UpdatedAt, &c.BusinessCount,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repository) GetBySlug(ctx context.Context, slug string) (*Category, error) {
	query := `
        SELECT c.id, c.name, c.slug, c.description, c.image_url,
               c.created_at, c.updated_at,
               (SELECT COUNT(*) FROM businesses b WHERE b.category_id = c.id)
        FROM categories c
        WHERE c.slug = $1
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var c Category
	err := r.db.QueryRow(ctx, query, slug).Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.ImageURL,
		&c.CreatedAt, &c.UpdatedAt, &c.BusinessCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Create(ctx context.Context, c *Category) error {
	query := `
        INSERT INTO categories (name, slug, description, image_url)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := r.db.QueryRow(ctx, query, c.Name, c.Slug, c.Description, c.ImageURL).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateSlug
	}
	return err
}

func (r *Repository) Update(ctx context.Context, c *Category) error {
	query := `
        UPDATE categories
        SET name = $2, slug = $3, description = $4, image_url = $5, updated_at = now()
        WHERE id = $1
        RETURNING updated_at
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := r.db.QueryRow(ctx, query, c.ID, c.Name, c.Slug, c.Description, c.ImageURL).
		Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateSlug
		}
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	result, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
