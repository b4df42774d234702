package users

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"lokal/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	GetByID(context.Context, int64) (*User, error)
	GetByEmail(context.Context, string) (*User, error)
	GetProfileByUsername(context.Context, string) (*Profile, error)
	CreateAndInvite(ctx context.Context, user *User, token string, exp time.Duration) error
	Activate(context.Context, string) error
	Delete(context.Context, int64) error
	UpdateProfile(ctx context.Context, userID int64, fullName, bio *string) error
	SetAvatar(ctx context.Context, userID int64, url string) error
	GetAvatarURL(ctx context.Context, userID int64) (*string, error)
	SaveRefreshToken(ctx context.Context, userID int64, refreshToken string) error
	DeleteRefreshToken(ctx context.Context, userID int64) error
	GetRefreshToken(ctx context.Context, userID int64) (string, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Store {
	return &Repository{db: db}
}

func (r *Repository) create(ctx context.Context, tx pgx.Tx, user *User) error {
	query := `
        INSERT INTO users (username, full_name, email, password)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := tx.QueryRow(
		ctx, query, user.Username, user.FullName, user.Email, user.Password.hash,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "users_email_key":
			return ErrDuplicateEmail
		case "users_username_key":
			return ErrDuplicateUsername
		}
	}
	return err
}

// CreateAndInvite stores the user together with their activation invitation
// in one transaction.
func (r *Repository) CreateAndInvite(ctx context.Context, user *User, token string, exp time.Duration) error {
	return database.WithTx(r.db, ctx, func(tx pgx.Tx) error {
		if err := r.create(ctx, tx, user); err != nil {
			return err
		}
		return r.createInvitation(ctx, tx, token, exp, user.ID)
	})
}

func (r *Repository) createInvitation(ctx context.Context, tx pgx.Tx, token string, exp time.Duration, userID int64) error {
	query := `INSERT INTO user_invitations (token, user_id, expiry) VALUES ($1, $2, $3)`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	_, err := tx.Exec(ctx, query, token, userID, time.Now().Add(exp))
	return err
}

func (r *Repository) Activate(ctx context.Context, token string) error {
	return database.WithTx(r.db, ctx, func(tx pgx.Tx) error {
		user, err := r.getUserFromInvitation(ctx, tx, token)
		if err != nil {
			return err
		}

		// idempotent: already active means success
		if user.IsActive {
			return nil
		}

		ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
		defer cancel()

		_, err = tx.Exec(ctx, `UPDATE users SET is_active = TRUE WHERE id = $1`, user.ID)
		return err
	})
}

func (r *Repository) getUserFromInvitation(ctx context.Context, tx pgx.Tx, token string) (*User, error) {
	query := `
        SELECT u.id, u.username, u.email, u.is_active
        FROM users u
        JOIN user_invitations ui ON u.id = ui.user_id
        WHERE ui.token = $1 AND ui.expiry > $2
    `

	hash := sha256.Sum256([]byte(token))
	hashToken := hex.EncodeToString(hash[:])

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	user := &User{}
	err := tx.QueryRow(ctx, query, hashToken, time.Now()).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return user, nil
}

func (r *Repository) GetByID(ctx context.Context, userID int64) (*User, error) {
	query := `
        SELECT id, username, full_name, email, password, avatar_url, bio, is_active, created_at, updated_at
        FROM users
        WHERE id = $1
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	user := &User{}
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&user.ID,
		&user.Username,
		&user.FullName,
		&user.Email,
		&user.Password.hash,
		&user.AvatarURL,
		&user.Bio,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return user, nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `
        SELECT id, username, full_name, email, password, is_active, created_at, updated_at
        FROM users
        WHERE email = $1 AND is_active = TRUE
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	user := &User{}
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Username,
		&user.FullName,
		&user.Email,
		&user.Password.hash,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return user, nil
}

func (r *Repository) GetProfileByUsername(ctx context.Context, username string) (*Profile, error) {
	query := `
        SELECT id, username, full_name, avatar_url
        FROM users
        WHERE username = $1 AND is_active = TRUE
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	p := &Profile{}
	err := r.db.QueryRow(ctx, query, username).Scan(&p.ID, &p.Username, &p.FullName, &p.AvatarURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *Repository) UpdateProfile(ctx context.Context, userID int64, fullName, bio *string) error {
	query := `
        UPDATE users
        SET full_name = COALESCE($2, full_name),
            bio = COALESCE($3, bio),
            updated_at = now()
        WHERE id = $1
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	result, err := r.db.Exec(ctx, query, userID, fullName, bio)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) SetAvatar(ctx context.Context, userID int64, url string) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	_, err := r.db.Exec(ctx, `UPDATE users SET avatar_url = $1, updated_at = now() WHERE id = $2`, url, userID)
	return err
}

func (r *Repository) GetAvatarURL(ctx context.Context, userID int64) (*string, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var url *string
	err := r.db.QueryRow(ctx, `SELECT avatar_url FROM users WHERE id = $1`, userID).Scan(&url)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return url, nil
}

func (r *Repository) Delete(ctx context.Context, userID int64) error {
	return database.WithTx(r.db, ctx, func(tx pgx.Tx) error {
		ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
		defer cancel()

		if _, err := tx.Exec(ctx, `DELETE FROM user_invitations WHERE user_id = $1`, userID); err != nil {
			return err
		}

		result, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
		if err != nil {
			return err
		}
		if result.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *Repository) SaveRefreshToken(ctx context.Context, userID int64, refreshToken string) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	_, err := r.db.Exec(ctx, `UPDATE users SET refresh_token = $1 WHERE id = $2`, refreshToken, userID)
	return err
}

func (r *Repository) DeleteRefreshToken(ctx context.Context, userID int64) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	_, err := r.db.Exec(ctx, `UPDATE users SET refresh_token = NULL WHERE id = $1`, userID)
	return err
}

func (r *Repository) GetRefreshToken(ctx context.Context, userID int64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var token *string
	err := r.db.QueryRow(ctx, `SELECT refresh_token FROM users WHERE id = $1`, userID).Scan(&token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	if token == nil {
		return "", nil
	}
	return *token, nil
}
