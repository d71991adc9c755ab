package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"naraigoto-api/internal/middleware"
	"naraigoto-api/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	BookingService services.BookingService
	LessonService  services.LessonService
	ReviewService  services.ReviewService
	LikeService    services.LikeService
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	// Create handlers
	bookingHandler := NewBookingHandler(config.BookingService)
	lessonHandler := NewLessonHandler(config.LessonService)
	reviewHandler := NewReviewHandler(config.ReviewService)
	likeHandler := NewLikeHandler(config.LikeService)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "naraigoto-api",
			"version": "1.0.0",
		})
	})

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Booking routes
	bookings := router.Group("/bookings")
	{
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.GET("", bookingHandler.GetMyBookings)
		bookings.POST("/:id/cancel", bookingHandler.CancelBooking)
	}

	// Lesson catalog routes
	lessons := router.Group("/lessons")
	{
		lessons.GET("", lessonHandler.ListLessons)
		lessons.GET("/:lessonId", lessonHandler.GetLesson)
		lessons.GET("/:lessonId/reviews", reviewHandler.GetReviewsByLesson)
	}

	// Review routes
	reviews := router.Group("/reviews")
	{
		reviews.POST("", reviewHandler.PostReview)
		reviews.GET("/by-target", reviewHandler.GetReviewsByTarget)
	}

	// Like routes
	likes := router.Group("/likes")
	{
		likes.POST("", likeHandler.LikeSchool)
		likes.GET("/:userId", likeHandler.ListLikes)
		likes.DELETE("/:userId/:schoolId", likeHandler.UnlikeSchool)
	}
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine) {
	// Request ID
	router.Use(middleware.RequestID())

	// CORS
	router.Use(middleware.CORS())

	// Security headers
	router.Use(middleware.SecurityHeaders())

	// Request size limit (1MB)
	router.Use(middleware.RequestSizeLimit(1 * 1024 * 1024))

	// Content type validation for POST requests
	router.Use(middleware.ContentTypeValidation("application/json"))

	// Rate limiting (100 requests per second, burst of 200)
	router.Use(middleware.RateLimiter(100, 200))

	// Prometheus metrics
	router.Use(middleware.Metrics())

	// Structured logging
	router.Use(middleware.StructuredLogger())

	// Audit logging
	router.Use(middleware.AuditLogger())

	// Error handling
	router.Use(middleware.ErrorHandler())
}
