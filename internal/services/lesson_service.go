package services

import (
	"context"
	"fmt"
	"strings"

	"naraigoto-api/internal/models"
	"naraigoto-api/internal/repositories"
)

// lessonService implements the LessonService interface
type lessonService struct {
	lessonRepo repositories.LessonRepository
}

// NewLessonService creates a new lesson service instance
func NewLessonService(lessonRepo repositories.LessonRepository) LessonService {
	return &lessonService{
		lessonRepo: lessonRepo,
	}
}

// GetLesson retrieves a single lesson document
func (s *lessonService) GetLesson(ctx context.Context, lessonID string) (*models.Lesson, error) {
	if strings.TrimSpace(lessonID) == "" {
		return nil, NewValidationError("lessonId required")
	}

	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		return nil, err
	}

	return lesson, nil
}

// ListLessons returns the capped catalog scan
func (s *lessonService) ListLessons(ctx context.Context) ([]*models.Lesson, error) {
	lessons, err := s.lessonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}

	if lessons == nil {
		lessons = []*models.Lesson{}
	}
	return lessons, nil
}
