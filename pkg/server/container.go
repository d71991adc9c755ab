package server

import (
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"

	"naraigoto-api/internal/config"
	"naraigoto-api/internal/database"
	"naraigoto-api/internal/repositories"
	"naraigoto-api/internal/repositories/sqlite"
	"naraigoto-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	BookingService services.BookingService
	LessonService  services.LessonService
	ReviewService  services.ReviewService
	LikeService    services.LikeService

	// Internal dependencies
	db       *sql.DB
	connMgr  *database.ConnectionManager
	services *services.ServiceContainer
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	logger := logrus.StandardLogger()

	if err := cfg.Database.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to prepare database directories: %w", err)
	}

	connMgr := database.NewConnectionManager(cfg.Database.ToConnectionConfig(logger))
	if err := connMgr.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	db := connMgr.GetDB()

	repos := &repositories.RepositoryContainer{
		BookingRepo: sqlite.NewBookingRepository(db, logger),
		LessonRepo:  sqlite.NewLessonRepository(db, logger),
		ReviewRepo:  sqlite.NewReviewRepository(db, logger),
		LikeRepo:    sqlite.NewLikeRepository(db, logger),
	}

	serviceContainer, err := services.NewServiceContainer(repos, services.ReviewOptions{
		DefaultTargetType: cfg.Review.DefaultTargetType,
		MaxCommentLength:  cfg.Review.MaxCommentLength,
	})
	if err != nil {
		connMgr.Close()
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	container := &Container{
		Config:         cfg,
		BookingService: serviceContainer.BookingService,
		LessonService:  serviceContainer.LessonService,
		ReviewService:  serviceContainer.ReviewService,
		LikeService:    serviceContainer.LikeService,
		db:             db,
		connMgr:        connMgr,
		services:       serviceContainer,
	}

	return container, nil
}

// HealthCheck verifies the container's database connection
func (c *Container) HealthCheck() error {
	if c.connMgr == nil {
		return fmt.Errorf("container not initialized")
	}
	return c.connMgr.HealthCheck()
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.services != nil {
		if err := c.services.Close(); err != nil {
			return fmt.Errorf("failed to close services: %w", err)
		}
	}

	if c.connMgr != nil {
		if err := c.connMgr.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
