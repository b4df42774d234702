package businesses

import (
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("business not found")
	ErrConflict          = errors.New("business already exists")
	QueryTimeoutDuration = time.Second * 5
)

// Stats is the denormalized rating snapshot maintained by the ratings
// aggregator. No other code writes these columns.
type Stats struct {
	AvgRating   float64 `json:"avg_rating"`
	ReviewCount int     `json:"review_count"`
}

type Business struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	CategoryID  int64     `json:"category_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	Status      string    `json:"status"` // active | inactive | pending
	ImageURL    *string   `json:"image,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Website     *string   `json:"website,omitempty"`
	Address     *string   `json:"address,omitempty"`
	City        *string   `json:"city,omitempty"`
	State       *string   `json:"state,omitempty"`
	PostalCode  *string   `json:"postal_code,omitempty"`
	Country     *string   `json:"country,omitempty"`
	Stats       Stats     `json:"stats"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Joined fields
	CategoryName string `json:"category_name,omitempty"`
}

type Photo struct {
	ID         int64     `json:"id"`
	BusinessID int64     `json:"business_id"`
	URL        string    `json:"url"`
	Caption    *string   `json:"caption,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
