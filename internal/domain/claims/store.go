package claims

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	Create(ctx context.Context, c *Claim) error
	ListByUser(ctx context.Context, userID int64) ([]Claim, error)
	RoleFor(ctx context.Context, businessID, userID int64) (Role, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Store {
	return &Repository{db: db}
}

// Create inserts the claim. Uniqueness per (business_id, user_id) is enforced
// by the table's unique index; a conflicting insert affects zero rows.
func (r *Repository) Create(ctx context.Context, c *Claim) error {
	query := `
        INSERT INTO business_claims (business_id, user_id, business_role, document_url)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (business_id, user_id) DO NOTHING
        RETURNING id, created_at, updated_at
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := r.db.QueryRow(ctx, query, c.BusinessID, c.UserID, c.Role, c.DocumentURL).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrConflict
	}
	return err
}

func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]Claim, error) {
	query := `
        SELECT cl.id, cl.business_id, cl.user_id, cl.business_role,
               cl.document_url, cl.created_at, cl.updated_at, b.name
        FROM business_claims cl
        JOIN businesses b ON b.id = cl.business_id
        WHERE cl.user_id = $1
        ORDER BY cl.created_at DESC
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Claim
	for rows.Next() {
		var c Claim
		err := rows.Scan(
			&c.ID, &c.BusinessID, &c.UserID, &c.Role,
			&c.DocumentURL, &c.CreatedAt, &c.UpdatedAt, &c.BusinessName,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// RoleFor returns the caller's claimed role for a business, or "" when the
// user holds no claim there.
func (r *Repository) RoleFor(ctx context.Context, businessID, userID int64) (Role, error) {
	query := `
        SELECT business_role
        FROM business_claims
        WHERE business_id = $1 AND user_id = $2
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var role Role
	err := r.db.QueryRow(ctx, query, businessID, userID).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return role, nil
}
