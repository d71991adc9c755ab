package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// ReviewRole determines which collection a review lands in
type ReviewRole string

const (
	ReviewRoleParent ReviewRole = "parent"
	ReviewRoleChild  ReviewRole = "child"
)

// MaxCommentLength bounds review comments, counted in characters
const MaxCommentLength = 1000

// DefaultTargetType is assumed when a by-target query omits the type.
const DefaultTargetType = "school"

// Review is an append-only rating + comment posted against a lesson by either
// a parent or a child account. Reviews are never updated or deleted.
type Review struct {
	LessonID  string     `json:"lessonId" db:"lesson_id" validate:"required"`
	CreatedAt string     `json:"createdAt" db:"created_at"`
	ReviewID  string     `json:"reviewId" db:"review_id" validate:"required,uuid"`
	UserID    string     `json:"userId" db:"user_id" validate:"required"`
	Rating    Number     `json:"rating" db:"rating" validate:"gte=1,lte=5"`
	Comment   string     `json:"comment" db:"comment" validate:"required,max=1000"`
	Role      ReviewRole `json:"role" db:"role" validate:"required,oneof=parent child"`
	TargetKey *string    `json:"targetKey,omitempty" db:"target_key"`
}

// TargetKeyFor builds the composite secondary key used for by-target queries.
func TargetKeyFor(targetType, targetID string) string {
	if targetType == "" {
		targetType = DefaultTargetType
	}
	return targetType + "#" + targetID
}

// NewReview creates a review with a generated ID and a millisecond-precision
// UTC creation timestamp, which doubles as the newest-first sort key.
func NewReview(lessonID, userID string, rating float64, comment string, role ReviewRole) *Review {
	return &Review{
		LessonID:  lessonID,
		CreatedAt: time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
		ReviewID:  uuid.New().String(),
		UserID:    userID,
		Rating:    Number(rating),
		Comment:   strings.TrimSpace(comment),
		Role:      role,
	}
}

// Validate validates the review data
func (r *Review) Validate() error {
	if strings.TrimSpace(r.LessonID) == "" {
		return fmt.Errorf("lesson ID is required")
	}
	if strings.TrimSpace(r.ReviewID) == "" {
		return fmt.Errorf("review ID is required")
	}
	if strings.TrimSpace(r.UserID) == "" {
		return fmt.Errorf("user ID is required")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	if strings.TrimSpace(r.Comment) == "" {
		return fmt.Errorf("comment is required")
	}
	if utf8.RuneCountInString(r.Comment) > MaxCommentLength {
		return fmt.Errorf("comment too long (<=%d)", MaxCommentLength)
	}
	if r.Role != ReviewRoleParent && r.Role != ReviewRoleChild {
		return fmt.Errorf("role must be 'parent' or 'child'")
	}
	return nil
}
