package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusReserved BookingStatus = "reserved"
	BookingStatusCanceled BookingStatus = "canceled"
)

// DefaultSchedule is the fallback slot assigned when a booking request carries
// no schedule. The demo catalog runs a single fixed slot.
const DefaultSchedule = "2025-09-30T17:00:00Z"

// DefaultConsumedTickets is the ticket cost applied when the request omits it.
const DefaultConsumedTickets = 1

// Booking represents a reservation of a lesson slot by a user. Only the status
// field ever changes after creation, and only once: reserved -> canceled.
type Booking struct {
	BookingID       string        `json:"bookingId" db:"booking_id" validate:"required,uuid"`
	UserID          string        `json:"userId" db:"user_id" validate:"required"`
	LessonID        string        `json:"lessonId" db:"lesson_id" validate:"required"`
	Schedule        string        `json:"schedule" db:"schedule"`
	Status          BookingStatus `json:"status" db:"status" validate:"required,oneof=reserved canceled"`
	ConsumedTickets int           `json:"consumedTickets" db:"consumed_tickets" validate:"gte=0"`
	CreatedAt       int64         `json:"createdAt" db:"created_at"`
}

// NewBooking creates a reserved booking with a generated ID and the documented
// defaults applied for schedule and ticket cost.
func NewBooking(userID, lessonID, schedule string, consumedTickets *int) *Booking {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	tickets := DefaultConsumedTickets
	if consumedTickets != nil {
		tickets = *consumedTickets
	}
	return &Booking{
		BookingID:       uuid.New().String(),
		UserID:          userID,
		LessonID:        lessonID,
		Schedule:        schedule,
		Status:          BookingStatusReserved,
		ConsumedTickets: tickets,
		CreatedAt:       time.Now().Unix(),
	}
}

// Validate validates the booking data
func (b *Booking) Validate() error {
	if strings.TrimSpace(b.BookingID) == "" {
		return fmt.Errorf("booking ID is required")
	}
	if strings.TrimSpace(b.UserID) == "" {
		return fmt.Errorf("user ID is required")
	}
	if strings.TrimSpace(b.LessonID) == "" {
		return fmt.Errorf("lesson ID is required")
	}
	if b.Status != BookingStatusReserved && b.Status != BookingStatusCanceled {
		return fmt.Errorf("invalid booking status: %s", b.Status)
	}
	if b.ConsumedTickets < 0 {
		return fmt.Errorf("consumed tickets must not be negative")
	}
	return nil
}

// IsReserved returns true while the booking can still be canceled.
func (b *Booking) IsReserved() bool {
	return b.Status == BookingStatusReserved
}
