package reviews

import (
	"errors"
	"time"

	"lokal/internal/domain/users"
)

var (
	ErrNotFound          = errors.New("review not found")
	ErrConflict          = errors.New("you have already reviewed this business")
	ErrBusinessNotFound  = errors.New("business not found")
	QueryTimeoutDuration = time.Second * 5
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Only approved reviews are listed publicly and counted by the ratings
// aggregator. Creation auto-approves; pending/rejected exist for a moderation
// workflow that flips status out of band.
type Review struct {
	ID           int64     `json:"id"`
	BusinessID   int64     `json:"business_id"`
	UserID       int64     `json:"user_id"`
	Rating       int       `json:"rating"` // 1-5
	Content      *string   `json:"content,omitempty"`
	Status       Status    `json:"status"`
	Reported     bool      `json:"reported"`
	HelpfulVotes int       `json:"helpful_votes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Joined fields
	User                    *users.Profile `json:"user,omitempty"`
	Business                *BusinessRef   `json:"business,omitempty"`
	Photos                  []Photo        `json:"photos,omitempty"`
	Response                *ResponseInfo  `json:"response,omitempty"`
	Votes                   []Vote         `json:"votes,omitempty"`
	CurrentUserVotedHelpful bool           `json:"current_user_voted_helpful"`
}

type Photo struct {
	ID       int64  `json:"id"`
	ReviewID int64  `json:"review_id"`
	URL      string `json:"url"`
}

type Vote struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`
}

type BusinessRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ResponseInfo struct {
	ID        int64          `json:"id"`
	Content   string         `json:"content"`
	CreatedAt time.Time      `json:"created_at"`
	User      *users.Profile `json:"user,omitempty"`
}

// Filter narrows List. With neither BusinessID nor UserID set the listing is
// "recent activity" mode: capped to the 5 newest approved reviews, offset
// ignored.
type Filter struct {
	BusinessID *int64
	UserID     *int64
	Limit      int
	Offset     int
	SortBy     string
	SortOrder  string
	ViewerID   *int64
}

// RecentOnly reports whether the filter selects the recent-activity mode.
func (f Filter) RecentOnly() bool {
	return f.BusinessID == nil && f.UserID == nil
}

// recentLimit caps the unfiltered "recent activity" listing.
const recentLimit = 5

// Window resolves the effective limit and offset: in recent-activity mode the
// limit is capped at recentLimit and the offset forced to zero, whatever the
// caller asked for.
func (f Filter) Window() (limit, offset int) {
	if f.RecentOnly() {
		return recentLimit, 0
	}
	return f.Limit, f.Offset
}
