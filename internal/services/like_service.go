package services

import (
	"context"
	"fmt"
	"strings"

	"naraigoto-api/internal/models"
	"naraigoto-api/internal/repositories"
)

// likeService implements the LikeService interface
type likeService struct {
	likeRepo repositories.LikeRepository
}

// NewLikeService creates a new like service instance
func NewLikeService(likeRepo repositories.LikeRepository) LikeService {
	return &likeService{
		likeRepo: likeRepo,
	}
}

// LikeSchool records the (user, school) pair. An existing pair is reported as
// AlreadyLiked, not as an error.
func (s *likeService) LikeSchool(ctx context.Context, req *LikeRequest) (*LikeResult, error) {
	if req == nil {
		return nil, NewValidationError("request body required")
	}
	if strings.TrimSpace(req.UserID) == "" {
		return nil, MissingFieldError("userId")
	}
	if strings.TrimSpace(req.SchoolID) == "" {
		return nil, MissingFieldError("schoolId")
	}

	like := models.NewLike(req.UserID, req.SchoolID)
	if err := s.likeRepo.Create(ctx, like); err != nil {
		if repositories.IsDuplicate(err) {
			return &LikeResult{Like: like, AlreadyLiked: true}, nil
		}
		return nil, fmt.Errorf("failed to create like: %w", err)
	}

	return &LikeResult{Like: like}, nil
}

// UnlikeSchool removes the pair; absent pairs succeed silently
func (s *likeService) UnlikeSchool(ctx context.Context, userID, schoolID string) error {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(schoolID) == "" {
		return NewValidationError("userId and schoolId required")
	}

	if err := s.likeRepo.Delete(ctx, userID, schoolID); err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

// ListLikes returns all likes recorded for a user
func (s *likeService) ListLikes(ctx context.Context, userID string) ([]*models.Like, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, NewValidationError("userId required")
	}

	likes, err := s.likeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list likes: %w", err)
	}

	if likes == nil {
		likes = []*models.Like{}
	}
	return likes, nil
}
