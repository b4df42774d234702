package categories

import (
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("category not found")
	ErrDuplicateSlug     = errors.New("a category with that slug already exists")
	QueryTimeoutDuration = time.Second * 5
)

type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	ImageURL    *string   `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Joined fields
	BusinessCount int `json:"business_count"`
}
