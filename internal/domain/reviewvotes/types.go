package reviewvotes

import (
	"errors"
	"time"
)

var (
	ErrReviewNotFound    = errors.New("review not found")
	ErrAlreadyVoted      = errors.New("you have already voted for this review")
	QueryTimeoutDuration = time.Second * 5
)

type Vote struct {
	ID        int64     `json:"id"`
	ReviewID  int64     `json:"review_id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
