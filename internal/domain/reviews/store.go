package reviews

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lokal/internal/database"
	"lokal/internal/domain/ratings"
	"lokal/internal/domain/users"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	List(ctx context.Context, f Filter) ([]Review, error)
	GetByID(ctx context.Context, id int64) (*Review, error)
	GetBusinessID(ctx context.Context, reviewID int64) (int64, error)
	Create(ctx context.Context, review *Review, photoURLs []string) error
	Update(ctx context.Context, id, userID int64, rating *int, content *string, photoURLs []string) (*Review, error)
	Delete(ctx context.Context, id, userID int64) error
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Store {
	return &Repository{db: db}
}

var sortableColumns = map[string]bool{
	"created_at": true,
	"rating":     true,
}

func (r *Repository) List(ctx context.Context, f Filter) ([]Review, error) {
	sortBy := f.SortBy
	if !sortableColumns[sortBy] {
		sortBy = "created_at"
	}
	direction := "DESC"
	if f.SortOrder == "asc" {
		direction = "ASC"
	}

	limit, offset := f.Window()

	// sortBy and direction come from allowlists above, never from input.
	query := fmt.Sprintf(`
        SELECT r.id, r.business_id, r.user_id, r.rating, r.content, r.status,
               r.reported, r.helpful_votes, r.created_at, r.updated_at,
               u.id, u.username, u.full_name, u.avatar_url,
               b.id, b.name, b.slug,
               resp.id, resp.content, resp.created_at,
               ru.id, ru.username, ru.full_name, ru.avatar_url
        FROM reviews r
        JOIN users u ON u.id = r.user_id
        JOIN businesses b ON b.id = r.business_id
        LEFT JOIN review_responses resp ON resp.review_id = r.id
        LEFT JOIN users ru ON ru.id = resp.user_id
        WHERE r.status = 'approved'
          AND ($1::bigint IS NULL OR r.business_id = $1)
          AND ($2::bigint IS NULL OR r.user_id = $2)
        ORDER BY r.%s %s
        LIMIT $3 OFFSET $4
    `, sortBy, direction)

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := r.db.Query(ctx, query, f.BusinessID, f.UserID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Review
	for rows.Next() {
		var rv Review
		var author users.Profile
		var business BusinessRef
		var respID *int64
		var respContent *string
		var respCreated *time.Time
		var respUser struct {
			id       *int64
			username *string
			fullName *string
			avatar   *string
		}

		err := rows.Scan(
			&rv.ID, &rv.BusinessID, &rv.UserID, &rv.Rating, &rv.Content,
			&rv.Status, &rv.Reported, &rv.HelpfulVotes, &rv.CreatedAt, &rv.UpdatedAt,
			&author.ID, &author.Username, &author.FullName, &author.AvatarURL,
			&business.ID, &business.Name, &business.Slug,
			&respID, &respContent, &respCreated,
			&respUser.id, &respUser.username, &respUser.fullName, &respUser.avatar,
		)
		if err != nil {
			return nil, err
		}

		rv.User = &author
		rv.Business = &business
		if respID != nil {
			info := &ResponseInfo{ID: *respID, Content: *respContent, CreatedAt: *respCreated}
			if respUser.id != nil {
				info.User = &users.Profile{
					ID:        *respUser.id,
					Username:  *respUser.username,
					FullName:  *respUser.fullName,
					AvatarURL: respUser.avatar,
				}
			}
			rv.Response = info
		}

		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachPhotos(ctx, out); err != nil {
		return nil, err
	}
	if err := r.attachVotes(ctx, out, f.ViewerID); err != nil {
		return nil, err
	}

	return out, nil
}

func reviewIDs(rs []Review) []int64 {
	ids := make([]int64, len(rs))
	for i := range rs {
		ids[i] = rs[i].ID
	}
	return ids
}

func (r *Repository) attachPhotos(ctx context.Context, rs []Review) error {
	if len(rs) == 0 {
		return nil
	}

	rows, err := r.db.Query(ctx, `
        SELECT id, review_id, url
        FROM review_photos
        WHERE review_id = ANY($1)
        ORDER BY id
    `, reviewIDs(rs))
	if err != nil {
		return err
	}
	defer rows.Close()

	byReview := map[int64][]Photo{}
	for rows.Next() {
		var p Photo
		if err := rows.Scan(&p.ID, &p.ReviewID, &p.URL); err != nil {
			return err
		}
		byReview[p.ReviewID] = append(byReview[p.ReviewID], p)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range rs {
		rs[i].Photos = byReview[rs[i].ID]
	}
	return nil
}

func (r *Repository) attachVotes(ctx context.Context, rs []Review, viewerID *int64) error {
	if len(rs) == 0 {
		return nil
	}

	rows, err := r.db.Query(ctx, `
        SELECT id, review_id, user_id
        FROM review_helpful_votes
        WHERE review_id = ANY($1)
    `, reviewIDs(rs))
	if err != nil {
		return err
	}
	defer rows.Close()

	byReview := map[int64][]Vote{}
	for rows.Next() {
		var v Vote
		var reviewID int64
		if err := rows.Scan(&v.ID, &reviewID, &v.UserID); err != nil {
			return err
		}
		byReview[reviewID] = append(byReview[reviewID], v)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range rs {
		votes := byReview[rs[i].ID]
		rs[i].Votes = votes
		if viewerID != nil {
			for _, v := range votes {
				if v.UserID == *viewerID {
					rs[i].CurrentUserVotedHelpful = true
					break
				}
			}
		}
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Review, error) {
	query := `
        SELECT id, business_id, user_id, rating, content, status, reported,
               helpful_votes, created_at, updated_at
        FROM reviews
        WHERE id = $1
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var rv Review
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rv.ID, &rv.BusinessID, &rv.UserID, &rv.Rating, &rv.Content,
		&rv.Status, &rv.Reported, &rv.HelpfulVotes, &rv.CreatedAt, &rv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rv, nil
}

func (r *Repository) GetBusinessID(ctx context.Context, reviewID int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var businessID int64
	err := r.db.QueryRow(ctx, `SELECT business_id FROM reviews WHERE id = $1`, reviewID).Scan(&businessID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return businessID, nil
}

// Create inserts the review, its photo rows and the refreshed business
// snapshot as one transaction. One review per (business, user) is enforced by
// the unique index; a duplicate insert affects zero rows and surfaces as
// ErrConflict with no read-then-write window.
func (r *Repository) Create(ctx context.Context, review *Review, photoURLs []string) error {
	return database.WithTx(r.db, ctx, func(tx pgx.Tx) error {
		query := `
            INSERT INTO reviews (business_id, user_id, rating, content, status)
            VALUES ($1, $2, $3, $4, 'approved')
            ON CONFLICT (business_id, user_id) DO NOTHING
            RETURNING id, status, reported, helpful_votes, created_at, updated_at
        `

		ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
		defer cancel()

		err := tx.QueryRow(ctx, query,
			review.BusinessID, review.UserID, review.Rating, review.Content,
		).Scan(
			&review.ID, &review.Status, &review.Reported,
			&review.HelpfulVotes, &review.CreatedAt, &review.UpdatedAt,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrConflict
			}
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return ErrBusinessNotFound
			}
			return err
		}

		if err := insertPhotos(ctx, tx, review.ID, photoURLs); err != nil {
			return err
		}

		_, err = ratings.Recompute(ctx, tx, review.BusinessID)
		return err
	})
}

func insertPhotos(ctx context.Context, tx pgx.Tx, reviewID int64, urls []string) error {
	for _, url := range urls {
		_, err := tx.Exec(ctx,
			`INSERT INTO review_photos (review_id, url) VALUES ($1, $2)`,
			reviewID, url,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// Update applies a partial edit scoped to the author. A nil rating or content
// leaves the column untouched; a non-nil photoURLs replaces the full photo
// set. The refreshed snapshot lands in the same transaction.
func (r *Repository) Update(ctx context.Context, id, userID int64, rating *int, content *string, photoURLs []string) (*Review, error) {
	review := &Review{}

	err := database.WithTx(r.db, ctx, func(tx pgx.Tx) error {
		query := `
            UPDATE reviews
            SET rating = COALESCE($3, rating),
                content = COALESCE($4, content),
                updated_at = now()
            WHERE id = $1 AND user_id = $2
            RETURNING id, business_id, user_id, rating, content, status,
                      reported, helpful_votes, created_at, updated_at
        `

		ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
		defer cancel()

		err := tx.QueryRow(ctx, query, id, userID, rating, content).Scan(
			&review.ID, &review.BusinessID, &review.UserID, &review.Rating,
			&review.Content, &review.Status, &review.Reported,
			&review.HelpfulVotes, &review.CreatedAt, &review.UpdatedAt,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}

		if photoURLs != nil {
			if _, err := tx.Exec(ctx, `DELETE FROM review_photos WHERE review_id = $1`, id); err != nil {
				return err
			}
			if err := insertPhotos(ctx, tx, id, photoURLs); err != nil {
				return err
			}
		}

		_, err = ratings.Recompute(ctx, tx, review.BusinessID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

// Delete removes the author's review; dependent photos, votes, responses and
// reports go with it via ON DELETE CASCADE.
func (r *Repository) Delete(ctx context.Context, id, userID int64) error {
	return database.WithTx(r.db, ctx, func(tx pgx.Tx) error {
		ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
		defer cancel()

		var businessID int64
		err := tx.QueryRow(ctx,
			`DELETE FROM reviews WHERE id = $1 AND user_id = $2 RETURNING business_id`,
			id, userID,
		).Scan(&businessID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}

		_, err = ratings.Recompute(ctx, tx, businessID)
		return err
	})
}
