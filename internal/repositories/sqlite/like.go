package sqlite

import (
	"context"
	"database/sql"

	"naraigoto-api/internal/models"
	"naraigoto-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// LikeRepository implements the LikeRepository interface for SQLite
type LikeRepository struct {
	baseRepository
}

// NewLikeRepository creates a new SQLite like repository
func NewLikeRepository(db *sql.DB, logger *logrus.Logger) repositories.LikeRepository {
	return &LikeRepository{
		baseRepository: newBaseRepository(db, "likes", logger),
	}
}

// Create inserts the (user, school) pair. The composite primary key enforces
// uniqueness on insert; the duplicate surfaces as ErrDuplicateEntry for the
// service layer to treat as a benign "already liked".
func (r *LikeRepository) Create(ctx context.Context, like *models.Like) error {
	if err := like.Validate(); err != nil {
		return repositories.ValidationError("like", like.UserID, err)
	}

	query := `
		INSERT INTO likes (user_id, school_id, created_at)
		VALUES (?, ?, ?)`

	_, err := r.executeExec(ctx, "create", query, like.UserID, like.SchoolID, like.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return repositories.DuplicateError("like", "user_id/school_id", like.UserID+"/"+like.SchoolID)
		}
		return err
	}

	return nil
}

// Delete removes the pair; deleting an absent pair succeeds.
func (r *LikeRepository) Delete(ctx context.Context, userID, schoolID string) error {
	if err := r.validateID(userID); err != nil {
		return err
	}
	if err := r.validateID(schoolID); err != nil {
		return err
	}

	query := `DELETE FROM likes WHERE user_id = ? AND school_id = ?`
	_, err := r.executeExec(ctx, "delete", query, userID, schoolID)
	return err
}

// ListByUser returns all likes recorded for a user
func (r *LikeRepository) ListByUser(ctx context.Context, userID string) ([]*models.Like, error) {
	if err := r.validateID(userID); err != nil {
		return nil, err
	}

	query := `
		SELECT user_id, school_id, created_at
		FROM likes
		WHERE user_id = ?
		ORDER BY created_at DESC`

	rows, err := r.executeQuery(ctx, "list_by_user", query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var likes []*models.Like
	for rows.Next() {
		like := &models.Like{}
		if err := rows.Scan(&like.UserID, &like.SchoolID, &like.CreatedAt); err != nil {
			return nil, repositories.NewRepositoryError("list_by_user", "like", userID, err)
		}
		likes = append(likes, like)
	}

	if err = rows.Err(); err != nil {
		return nil, repositories.NewRepositoryError("list_by_user", "like", userID, err)
	}

	return likes, nil
}
