package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"naraigoto-api/internal/models"
	"naraigoto-api/internal/repositories"
)

// reviewService implements the ReviewService interface
type reviewService struct {
	reviewRepo        repositories.ReviewRepository
	defaultTargetType string
	maxCommentLength  int
}

// ReviewOptions tunes the comment length limit and the target type assumed
// when a request omits one. Zero values fall back to the model defaults.
type ReviewOptions struct {
	DefaultTargetType string
	MaxCommentLength  int
}

// NewReviewService creates a new review service instance
func NewReviewService(reviewRepo repositories.ReviewRepository, opts ReviewOptions) ReviewService {
	if opts.DefaultTargetType == "" {
		opts.DefaultTargetType = models.DefaultTargetType
	}
	if opts.MaxCommentLength <= 0 {
		opts.MaxCommentLength = models.MaxCommentLength
	}
	return &reviewService{
		reviewRepo:        reviewRepo,
		defaultTargetType: opts.DefaultTargetType,
		maxCommentLength:  opts.MaxCommentLength,
	}
}

// PostReview validates and stores a review
func (s *reviewService) PostReview(ctx context.Context, req *PostReviewRequest) (*models.Review, error) {
	if req == nil {
		return nil, NewValidationError("invalid_json")
	}

	// Collect every problem in one pass so the client sees the full list.
	var details []string
	lessonID := req.CanonicalLessonID()
	if lessonID == "" {
		details = append(details, "lessonsId required")
	}
	if strings.TrimSpace(req.UserID) == "" {
		details = append(details, "userId required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		details = append(details, "rating must be between 1 and 5")
	}
	if strings.TrimSpace(req.Comment) == "" {
		details = append(details, "comment required")
	} else if utf8.RuneCountInString(req.Comment) > s.maxCommentLength {
		// The limit counts characters, not bytes, so multibyte comments
		// get the full length.
		details = append(details, fmt.Sprintf("comment too long (<=%d)", s.maxCommentLength))
	}
	role := models.ReviewRole(req.Role)
	if role != models.ReviewRoleParent && role != models.ReviewRoleChild {
		details = append(details, "role must be 'parent' or 'child'")
	}
	if len(details) > 0 {
		return nil, NewValidationError(details...)
	}

	review := models.NewReview(lessonID, req.UserID, req.Rating, req.Comment, role)
	if req.TargetID != "" {
		targetType := req.TargetType
		if targetType == "" {
			targetType = s.defaultTargetType
		}
		key := models.TargetKeyFor(targetType, req.TargetID)
		review.TargetKey = &key
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	return review, nil
}

// GetReviewsByLesson returns the two newest-first collections for a lesson
func (s *reviewService) GetReviewsByLesson(ctx context.Context, lessonID string) (*ReviewFeed, error) {
	if strings.TrimSpace(lessonID) == "" {
		return nil, NewValidationError("lessonsId required")
	}

	parents, err := s.reviewRepo.ListByLesson(ctx, models.ReviewRoleParent, lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list parent reviews: %w", err)
	}
	children, err := s.reviewRepo.ListByLesson(ctx, models.ReviewRoleChild, lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list child reviews: %w", err)
	}

	return &ReviewFeed{
		Parents:  emptyIfNil(parents),
		Children: emptyIfNil(children),
	}, nil
}

// GetReviewsByTarget returns the two collections for a composite target key
func (s *reviewService) GetReviewsByTarget(ctx context.Context, targetType, targetID string) (*ReviewFeed, error) {
	if strings.TrimSpace(targetID) == "" {
		return nil, NewValidationError("targetId required")
	}
	if targetType == "" {
		targetType = s.defaultTargetType
	}

	key := models.TargetKeyFor(targetType, targetID)

	parents, err := s.reviewRepo.ListByTarget(ctx, models.ReviewRoleParent, key)
	if err != nil {
		return nil, fmt.Errorf("failed to list parent reviews: %w", err)
	}
	children, err := s.reviewRepo.ListByTarget(ctx, models.ReviewRoleChild, key)
	if err != nil {
		return nil, fmt.Errorf("failed to list child reviews: %w", err)
	}

	return &ReviewFeed{
		TargetType: targetType,
		TargetID:   targetID,
		Parents:    emptyIfNil(parents),
		Children:   emptyIfNil(children),
	}, nil
}

func emptyIfNil(reviews []*models.Review) []*models.Review {
	if reviews == nil {
		return []*models.Review{}
	}
	return reviews
}
