package services

import (
	"context"

	"naraigoto-api/internal/models"
)

// BookingService defines the interface for booking business logic operations
type BookingService interface {
	// CreateBooking reserves a lesson slot and returns the persisted record.
	CreateBooking(ctx context.Context, req *CreateBookingRequest) (*models.Booking, error)

	// CancelBooking transitions a booking from reserved to canceled exactly
	// once; a second cancellation (or a missing booking) is a conflict.
	CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error)

	// GetMyBookings returns a user's bookings, newest first.
	GetMyBookings(ctx context.Context, userID string) ([]*models.Booking, error)
}

// LessonService defines the interface for lesson catalog reads
type LessonService interface {
	GetLesson(ctx context.Context, lessonID string) (*models.Lesson, error)
	ListLessons(ctx context.Context) ([]*models.Lesson, error)
}

// ReviewService defines the interface for review operations
type ReviewService interface {
	// PostReview validates and stores a review in the role's collection.
	PostReview(ctx context.Context, req *PostReviewRequest) (*models.Review, error)

	// GetReviewsByLesson returns the newest parent and child reviews for a lesson.
	GetReviewsByLesson(ctx context.Context, lessonID string) (*ReviewFeed, error)

	// GetReviewsByTarget returns the newest parent and child reviews for a
	// composite target key; targetType defaults to "school".
	GetReviewsByTarget(ctx context.Context, targetType, targetID string) (*ReviewFeed, error)
}

// LikeService defines the interface for school like operations
type LikeService interface {
	// LikeSchool records the pair. AlreadyLiked is set instead of an error
	// when the pair exists.
	LikeSchool(ctx context.Context, req *LikeRequest) (*LikeResult, error)

	// UnlikeSchool removes the pair; removing an absent pair still succeeds.
	UnlikeSchool(ctx context.Context, userID, schoolID string) error

	// ListLikes returns all likes recorded for a user.
	ListLikes(ctx context.Context, userID string) ([]*models.Like, error)
}

// Request and response types for service operations

// CreateBookingRequest carries the booking creation payload. Schedule and
// ConsumedTickets are optional and fall back to the documented defaults.
type CreateBookingRequest struct {
	UserID          string `json:"userId" validate:"required"`
	LessonID        string `json:"lessonId" validate:"required"`
	Schedule        string `json:"schedule,omitempty"`
	ConsumedTickets *int   `json:"consumedTickets,omitempty" validate:"omitempty,gte=0"`
}

// PostReviewRequest carries the review creation payload. LessonsID is the
// legacy alias some clients still send; CanonicalLessonID resolves it.
type PostReviewRequest struct {
	LessonID   string  `json:"lessonId"`
	LessonsID  string  `json:"lessonsId"`
	UserID     string  `json:"userId" validate:"required"`
	Rating     float64 `json:"rating" validate:"gte=1,lte=5"`
	Comment    string  `json:"comment" validate:"required,max=1000"`
	Role       string  `json:"role" validate:"required,oneof=parent child"`
	TargetType string  `json:"targetType,omitempty"`
	TargetID   string  `json:"targetId,omitempty"`
}

// CanonicalLessonID returns the lesson identifier regardless of which field
// name the client used.
func (r *PostReviewRequest) CanonicalLessonID() string {
	if r.LessonID != "" {
		return r.LessonID
	}
	return r.LessonsID
}

// ReviewFeed is the two-collection result every review read returns.
type ReviewFeed struct {
	TargetType string           `json:"targetType,omitempty"`
	TargetID   string           `json:"targetId,omitempty"`
	Parents    []*models.Review `json:"parents"`
	Children   []*models.Review `json:"children"`
}

// LikeRequest carries the like creation payload.
type LikeRequest struct {
	UserID   string `json:"userId" validate:"required"`
	SchoolID string `json:"schoolId" validate:"required"`
}

// LikeResult reports whether the like was created or already present.
type LikeResult struct {
	Like         *models.Like
	AlreadyLiked bool
}
