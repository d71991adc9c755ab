package services

import (
	"fmt"

	"naraigoto-api/internal/repositories"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	BookingService BookingService
	LessonService  LessonService
	ReviewService  ReviewService
	LikeService    LikeService
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(repos *repositories.RepositoryContainer, reviewOpts ReviewOptions) (*ServiceContainer, error) {
	if repos == nil {
		return nil, fmt.Errorf("repository container cannot be nil")
	}

	return &ServiceContainer{
		BookingService: NewBookingService(repos.BookingRepo),
		LessonService:  NewLessonService(repos.LessonRepo),
		ReviewService:  NewReviewService(repos.ReviewRepo, reviewOpts),
		LikeService:    NewLikeService(repos.LikeRepo),
	}, nil
}

// Validate validates that all services are properly initialized
func (sc *ServiceContainer) Validate() error {
	if sc.BookingService == nil {
		return fmt.Errorf("booking service is nil")
	}
	if sc.LessonService == nil {
		return fmt.Errorf("lesson service is nil")
	}
	if sc.ReviewService == nil {
		return fmt.Errorf("review service is nil")
	}
	if sc.LikeService == nil {
		return fmt.Errorf("like service is nil")
	}
	return nil
}

// Close performs cleanup for all services
func (sc *ServiceContainer) Close() error {
	// Services hold no resources of their own; the container that owns the
	// database connection closes it.
	return nil
}
