package models

import (
	"fmt"
	"strings"
	"time"
)

// Like is a unique (user, school) pairing. Creating an existing pair is benign
// and deleting an absent one succeeds, so the entity needs no state machine.
type Like struct {
	UserID    string    `json:"userId" db:"user_id" validate:"required"`
	SchoolID  string    `json:"schoolId" db:"school_id" validate:"required"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// NewLike creates a like with its creation timestamp set.
func NewLike(userID, schoolID string) *Like {
	return &Like{
		UserID:    userID,
		SchoolID:  schoolID,
		CreatedAt: time.Now().UTC(),
	}
}

// Validate validates the like data
func (l *Like) Validate() error {
	if strings.TrimSpace(l.UserID) == "" {
		return fmt.Errorf("user ID is required")
	}
	if strings.TrimSpace(l.SchoolID) == "" {
		return fmt.Errorf("school ID is required")
	}
	return nil
}
