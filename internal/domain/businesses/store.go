package businesses

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	List(ctx context.Context) ([]Business, error)
	GetByID(ctx context.Context, id int64) (*Business, error)
	GetBySlug(ctx context.Context, slug string) (*Business, error)
	Search(ctx context.Context, term string) ([]Business, error)
	Create(ctx context.Context, b *Business) error
	Update(ctx context.Context, id, ownerID int64, updates map[string]any) error
	Delete(ctx context.Context, id, ownerID int64) error
	SetImage(ctx context.Context, id, ownerID int64, url string) error
	IsOwner(ctx context.Context, id, userID int64) (bool, error)
	AddPhoto(ctx context.Context, p *Photo) error
	ListPhotos(ctx context.Context, businessID int64) ([]Photo, error)
	DeletePhotoByURL(ctx context.Context, businessID int64, url string) error
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Store {
	return &Repository{db: db}
}

const businessColumns = `
    b.id, b.owner_id, b.category_id, b.name, b.slug, b.description, b.status,
    b.image_url, b.phone, b.email, b.website, b.address, b.city, b.state,
    b.postal_code, b.country, b.avg_rating, b.review_count,
    b.created_at, b.updated_at, c.name
`

func scanBusiness(row pgx.Row) (*Business, error) {
	var b Business
	err := row.Scan(
		&b.ID, &b.OwnerID, &b.CategoryID, &b.Name, &b.Slug, &b.Description,
		&b.Status, &b.ImageURL, &b.Phone, &b.Email, &b.Website, &b.Address,
		&b.City, &b.State, &b.PostalCode, &b.Country,
		&b.Stats.AvgRating, &b.Stats.ReviewCount,
		&b.CreatedAt, &b.UpdatedAt, &b.CategoryName,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) List(ctx context.Context) ([]Business, error) {
	query := `
        SELECT ` + businessColumns + `
        FROM businesses b
        JOIN categories c ON c.id = b.category_id
        ORDER BY b.created_at DESC
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collect(rows)
}

func collect(rows pgx.Rows) ([]Business, error) {
	var out []Business
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Business, error) {
	query := `
        SELECT ` + businessColumns + `
        FROM businesses b
        JOIN categories c ON c.id = b.category_id
        WHERE b.id = $1
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	b, err := scanBusiness(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *Repository) GetBySlug(ctx context.Context, slug string) (*Business, error) {
	query := `
        SELECT ` + businessColumns + `
        FROM businesses b
        JOIN categories c ON c.id = b.category_id
        WHERE b.slug = $1
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	b, err := scanBusiness(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *Repository) Search(ctx context.Context, term string) ([]Business, error) {
	query := `
        SELECT ` + businessColumns + `
        FROM businesses b
        JOIN categories c ON c.id = b.category_id
        WHERE b.status = 'active'
          AND (b.name ILIKE '%' || $1 || '%' OR b.city ILIKE '%' || $1 || '%')
        ORDER BY b.review_count DESC, b.created_at DESC
        LIMIT 50
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := r.db.Query(ctx, query, term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collect(rows)
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the name and collapses every non-alphanumeric run into a
// single hyphen, capped at 64 characters.
func Slugify(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > 64 {
		slug = strings.Trim(slug[:64], "-")
	}
	return slug
}

// nextSlug finds a free slug by suffixing -1, -2, ... when the base is taken.
func (r *Repository) nextSlug(ctx context.Context, base string) (string, error) {
	rows, err := r.db.Query(ctx, `SELECT slug FROM businesses WHERE slug ILIKE $1 || '%'`, base)
	if err != nil {
		return "", err
	}
	defer rows.Close()

	taken := map[string]bool{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return "", err
		}
		taken[s] = true
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	slug := base
	for counter := 1; taken[slug]; counter++ {
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
	return slug, nil
}

func (r *Repository) Create(ctx context.Context, b *Business) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	slug, err := r.nextSlug(ctx, Slugify(b.Name))
	if err != nil {
		return err
	}
	b.Slug = slug
	b.Status = "pending"

	query := `
        INSERT INTO businesses (
            owner_id, category_id, name, slug, description, status, image_url,
            phone, email, website, address, city, state, postal_code, country
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
        RETURNING id, avg_rating, review_count, created_at, updated_at
    `

	return r.db.QueryRow(ctx, query,
		b.OwnerID, b.CategoryID, b.Name, b.Slug, b.Description, b.Status,
		b.ImageURL, b.Phone, b.Email, b.Website, b.Address, b.City, b.State,
		b.PostalCode, b.Country,
	).Scan(&b.ID, &b.Stats.AvgRating, &b.Stats.ReviewCount, &b.CreatedAt, &b.UpdatedAt)
}

var updatableFields = map[string]bool{
	"category_id": true,
	"name":        true,
	"description": true,
	"phone":       true,
	"email":       true,
	"website":     true,
	"address":     true,
	"city":        true,
	"state":       true,
	"postal_code": true,
	"country":     true,
}

func (r *Repository) Update(ctx context.Context, id, ownerID int64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}

	setClauses := make([]string, 0, len(updates)+1)
	args := []any{id, ownerID}
	for field, value := range updates {
		if !updatableFields[field] {
			return fmt.Errorf("field %q cannot be updated", field)
		}
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", field, len(args)))
	}
	setClauses = append(setClauses, "updated_at = now()")

	query := fmt.Sprintf(
		`UPDATE businesses SET %s WHERE id = $1 AND owner_id = $2`,
		strings.Join(setClauses, ", "),
	)

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id, ownerID int64) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	result, err := r.db.Exec(ctx, `DELETE FROM businesses WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) SetImage(ctx context.Context, id, ownerID int64, url string) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	result, err := r.db.Exec(ctx,
		`UPDATE businesses SET image_url = $3, updated_at = now() WHERE id = $1 AND owner_id = $2`,
		id, ownerID, url,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) IsOwner(ctx context.Context, id, userID int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM businesses WHERE id = $1 AND owner_id = $2)`,
		id, userID,
	).Scan(&exists)
	return exists, err
}

func (r *Repository) AddPhoto(ctx context.Context, p *Photo) error {
	query := `
        INSERT INTO business_photos (business_id, url, caption)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return r.db.QueryRow(ctx, query, p.BusinessID, p.URL, p.Caption).Scan(&p.ID, &p.CreatedAt)
}

func (r *Repository) ListPhotos(ctx context.Context, businessID int64) ([]Photo, error) {
	query := `
        SELECT id, business_id, url, caption, created_at
        FROM business_photos
        WHERE business_id = $1
        ORDER BY created_at DESC
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := r.db.Query(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photos []Photo
	for rows.Next() {
		var p Photo
		if err := rows.Scan(&p.ID, &p.BusinessID, &p.URL, &p.Caption, &p.CreatedAt); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func (r *Repository) DeletePhotoByURL(ctx context.Context, businessID int64, url string) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	result, err := r.db.Exec(ctx,
		`DELETE FROM business_photos WHERE business_id = $1 AND url = $2`,
		businessID, url,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
