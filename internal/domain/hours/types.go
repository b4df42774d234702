package hours

import (
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("business hours not found")
	QueryTimeoutDuration = time.Second * 5
)

// Entry is one weekday's opening window for a business. Weekday follows
// time.Weekday numbering (0 = Sunday).
type Entry struct {
	ID         int64     `json:"id"`
	BusinessID int64     `json:"business_id"`
	Weekday    int       `json:"weekday"`
	OpenTime   *string   `json:"open_time,omitempty"`  // "09:00", nil when closed
	CloseTime  *string   `json:"close_time,omitempty"` // "17:30"
	Closed     bool      `json:"closed"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
