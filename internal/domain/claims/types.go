package claims

import (
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("claim not found")
	ErrConflict          = errors.New("claim already exists")
	QueryTimeoutDuration = time.Second * 5
)

type Role string

const (
	RoleOwner   Role = "owner"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// Authorized reports whether the role may manage review responses for the
// claimed business.
func (r Role) Authorized() bool {
	switch r {
	case RoleOwner, RoleManager, RoleAdmin:
		return true
	}
	return false
}

type Claim struct {
	ID          int64     `json:"id"`
	BusinessID  int64     `json:"business_id"`
	UserID      int64     `json:"user_id"`
	Role        Role      `json:"business_role"`
	DocumentURL *string   `json:"document_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Joined fields
	BusinessName string `json:"business_name,omitempty"`
}
