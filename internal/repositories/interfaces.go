package repositories

import (
	"context"

	"naraigoto-api/internal/models"
)

// Query limits. The listing endpoints are hard-capped; callers cannot page past
// these bounds.
const (
	MaxLessonsPerScan  = 50
	MaxBookingsPerUser = 100
	MaxReviewsByLesson = 20
	MaxReviewsByTarget = 50
)

// BookingRepository persists bookings and owns the single conditional write in
// the system: the reserved -> canceled transition.
type BookingRepository interface {
	// Create persists a new booking unconditionally.
	Create(ctx context.Context, booking *models.Booking) error

	// GetByID retrieves a booking by its ID.
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)

	// Cancel atomically transitions status from reserved to canceled and
	// returns the updated record. The check-and-set is a single statement
	// against the store; when the record is missing or not reserved the call
	// fails with ErrConflict and has no side effects.
	Cancel(ctx context.Context, bookingID string) (*models.Booking, error)

	// ListByUser returns the user's bookings newest-first, via the user index,
	// capped at MaxBookingsPerUser.
	ListByUser(ctx context.Context, userID string) ([]*models.Booking, error)
}

// LessonRepository reads the read-only lesson catalog.
type LessonRepository interface {
	// GetByID retrieves a single lesson document.
	GetByID(ctx context.Context, lessonID string) (*models.Lesson, error)

	// List returns up to MaxLessonsPerScan lessons in storage order.
	List(ctx context.Context) ([]*models.Lesson, error)
}

// ReviewRepository persists append-only reviews, split by role into the parent
// and child collections.
type ReviewRepository interface {
	// Create inserts a review; the generated review ID is enforced unique.
	Create(ctx context.Context, review *models.Review) error

	// ListByLesson returns the newest reviews for a lesson from one role
	// collection, capped at MaxReviewsByLesson.
	ListByLesson(ctx context.Context, role models.ReviewRole, lessonID string) ([]*models.Review, error)

	// ListByTarget returns the newest reviews matching a composite target key
	// from one role collection, capped at MaxReviewsByTarget.
	ListByTarget(ctx context.Context, role models.ReviewRole, targetKey string) ([]*models.Review, error)
}

// LikeRepository persists unique (user, school) pairs.
type LikeRepository interface {
	// Create inserts the pair; a duplicate fails with ErrDuplicateEntry.
	Create(ctx context.Context, like *models.Like) error

	// Delete removes the pair. Deleting an absent pair is not an error.
	Delete(ctx context.Context, userID, schoolID string) error

	// ListByUser returns all likes recorded for a user.
	ListByUser(ctx context.Context, userID string) ([]*models.Like, error)
}

// RepositoryContainer bundles all repositories for dependency injection
type RepositoryContainer struct {
	BookingRepo BookingRepository
	LessonRepo  LessonRepository
	ReviewRepo  ReviewRepository
	LikeRepo    LikeRepository
}
