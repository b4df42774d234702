package reports

import (
	"errors"
	"time"
)

var (
	ErrReviewNotFound    = errors.New("review not found")
	ErrAlreadyReported   = errors.New("you have already reported this review")
	QueryTimeoutDuration = time.Second * 5
)

type Report struct {
	ID        int64     `json:"id"`
	ReviewID  int64     `json:"review_id"`
	UserID    int64     `json:"user_id"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}
