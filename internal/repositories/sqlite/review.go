package sqlite

import (
	"context"
	"database/sql"

	"naraigoto-api/internal/models"
	"naraigoto-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// ReviewRepository implements the ReviewRepository interface for SQLite.
// Parent and child reviews live in separate tables, mirroring the upstream
// collections; the role on the review selects the table.
type ReviewRepository struct {
	baseRepository
}

// NewReviewRepository creates a new SQLite review repository
func NewReviewRepository(db *sql.DB, logger *logrus.Logger) repositories.ReviewRepository {
	return &ReviewRepository{
		baseRepository: newBaseRepository(db, "reviews", logger),
	}
}

const reviewColumns = "lesson_id, created_at, review_id, user_id, rating, comment, role, target_key"

func tableForRole(role models.ReviewRole) string {
	if role == models.ReviewRoleChild {
		return "child_reviews"
	}
	return "parent_reviews"
}

// Create inserts a review; review_id carries a unique index so a duplicate
// generated ID fails loudly instead of silently overwriting.
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	if err := review.Validate(); err != nil {
		return repositories.ValidationError("review", review.ReviewID, err)
	}

	query := `
		INSERT INTO ` + tableForRole(review.Role) + ` (` + reviewColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.executeExec(ctx, "create", query,
		review.LessonID,
		review.CreatedAt,
		review.ReviewID,
		review.UserID,
		float64(review.Rating),
		review.Comment,
		review.Role,
		review.TargetKey,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return repositories.DuplicateError("review", "review_id", review.ReviewID)
		}
		return err
	}

	return nil
}

// ListByLesson returns the newest reviews for a lesson from one role collection
func (r *ReviewRepository) ListByLesson(ctx context.Context, role models.ReviewRole, lessonID string) ([]*models.Review, error) {
	if err := r.validateID(lessonID); err != nil {
		return nil, err
	}

	query := `
		SELECT ` + reviewColumns + `
		FROM ` + tableForRole(role) + `
		WHERE lesson_id = ?
		ORDER BY created_at DESC
		LIMIT ?`

	return r.queryReviews(ctx, "list_by_lesson", query, lessonID, repositories.MaxReviewsByLesson)
}

// ListByTarget returns the newest reviews matching a composite target key
func (r *ReviewRepository) ListByTarget(ctx context.Context, role models.ReviewRole, targetKey string) ([]*models.Review, error) {
	if err := r.validateID(targetKey); err != nil {
		return nil, err
	}

	query := `
		SELECT ` + reviewColumns + `
		FROM ` + tableForRole(role) + `
		WHERE target_key = ?
		ORDER BY created_at DESC
		LIMIT ?`

	return r.queryReviews(ctx, "list_by_target", query, targetKey, repositories.MaxReviewsByTarget)
}

func (r *ReviewRepository) queryReviews(ctx context.Context, op, query string, args ...interface{}) ([]*models.Review, error) {
	rows, err := r.executeQuery(ctx, op, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []*models.Review
	for rows.Next() {
		review := &models.Review{}
		var rating float64
		err := rows.Scan(
			&review.LessonID,
			&review.CreatedAt,
			&review.ReviewID,
			&review.UserID,
			&rating,
			&review.Comment,
			&review.Role,
			&review.TargetKey,
		)
		if err != nil {
			return nil, repositories.NewRepositoryError(op, "review", "", err)
		}
		review.Rating = models.Number(rating)
		reviews = append(reviews, review)
	}

	if err = rows.Err(); err != nil {
		return nil, repositories.NewRepositoryError(op, "review", "", err)
	}

	return reviews, nil
}
