package responses

import (
	"errors"
	"time"

	"lokal/internal/domain/users"
)

var (
	ErrNotFound          = errors.New("response not found")
	ErrConflict          = errors.New("a response already exists for this review")
	ErrReviewNotFound    = errors.New("review not found")
	QueryTimeoutDuration = time.Second * 5
)

// Response is a business's reply to a review. At most one exists per review.
type Response struct {
	ID        int64     `json:"id"`
	ReviewID  int64     `json:"review_id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Joined fields
	User *users.Profile `json:"user,omitempty"`
}
