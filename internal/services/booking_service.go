package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"naraigoto-api/internal/models"
	"naraigoto-api/internal/repositories"
)

// bookingService implements the BookingService interface
type bookingService struct {
	bookingRepo repositories.BookingRepository
	validator   *validator.Validate
}

// NewBookingService creates a new booking service instance
func NewBookingService(bookingRepo repositories.BookingRepository) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		validator:   validator.New(),
	}
}

// CreateBooking reserves a lesson slot
func (s *bookingService) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*models.Booking, error) {
	if req == nil {
		return nil, NewValidationError("request body required")
	}

	// Required fields are reported individually so the client knows which
	// one it dropped.
	if strings.TrimSpace(req.UserID) == "" {
		return nil, MissingFieldError("userId")
	}
	if strings.TrimSpace(req.LessonID) == "" {
		return nil, MissingFieldError("lessonId")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, NewValidationError(err.Error())
	}

	booking := models.NewBooking(req.UserID, req.LessonID, req.Schedule, req.ConsumedTickets)

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return booking, nil
}

// CancelBooking performs the one-way reserved -> canceled transition
func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	if strings.TrimSpace(bookingID) == "" {
		return nil, NewValidationError("bookingId required (path)")
	}

	booking, err := s.bookingRepo.Cancel(ctx, bookingID)
	if err != nil {
		// A failed precondition is an expected, reportable outcome; pass the
		// repository error through so the handler can map it to 409.
		return nil, err
	}

	return booking, nil
}

// GetMyBookings returns a user's bookings newest-first
func (s *bookingService) GetMyBookings(ctx context.Context, userID string) ([]*models.Booking, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, NewValidationError("userId required (query)")
	}

	bookings, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return bookings, nil
}
