package faqs

import (
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("faq not found")
	QueryTimeoutDuration = time.Second * 5
)

type FAQ struct {
	ID         int64     `json:"id"`
	BusinessID int64     `json:"business_id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
