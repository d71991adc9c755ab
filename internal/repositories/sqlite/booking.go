package sqlite

import (
	"context"
	"database/sql"

	"naraigoto-api/internal/models"
	"naraigoto-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// BookingRepository implements the BookingRepository interface for SQLite
type BookingRepository struct {
	baseRepository
}

// NewBookingRepository creates a new SQLite booking repository
func NewBookingRepository(db *sql.DB, logger *logrus.Logger) repositories.BookingRepository {
	return &BookingRepository{
		baseRepository: newBaseRepository(db, "bookings", logger),
	}
}

const bookingColumns = "booking_id, user_id, lesson_id, schedule, status, consumed_tickets, created_at"

// Create persists a new booking
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	if err := booking.Validate(); err != nil {
		return repositories.ValidationError("booking", booking.BookingID, err)
	}

	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.executeExec(ctx, "create", query,
		booking.BookingID,
		booking.UserID,
		booking.LessonID,
		booking.Schedule,
		booking.Status,
		booking.ConsumedTickets,
		booking.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return repositories.DuplicateError("booking", "booking_id", booking.BookingID)
		}
		return err
	}

	return nil
}

// GetByID retrieves a booking by ID
func (r *BookingRepository) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	if err := r.validateID(bookingID); err != nil {
		return nil, err
	}

	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE booking_id = ?`

	row := r.executeQueryRow(ctx, "get_by_id", query, bookingID)
	return r.scanBooking(row, bookingID)
}

// Cancel performs the atomic reserved -> canceled transition. The status guard
// lives in the WHERE clause, so two racing cancellations resolve inside the
// store: one update, one zero-row result.
func (r *BookingRepository) Cancel(ctx context.Context, bookingID string) (*models.Booking, error) {
	if err := r.validateID(bookingID); err != nil {
		return nil, err
	}

	query := `
		UPDATE bookings
		SET status = ?
		WHERE booking_id = ? AND status = ?`

	result, err := r.executeExec(ctx, "cancel", query,
		models.BookingStatusCanceled,
		bookingID,
		models.BookingStatusReserved,
	)
	if err != nil {
		return nil, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, repositories.NewRepositoryError("cancel", "booking", bookingID, err)
	}
	if affected == 0 {
		// Missing record or not reserved: either way the precondition failed.
		return nil, repositories.ConflictError("booking", bookingID,
			"only reserved bookings can be canceled")
	}

	return r.GetByID(ctx, bookingID)
}

// ListByUser returns the user's bookings newest-first via the user index
func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*models.Booking, error) {
	if err := r.validateID(userID); err != nil {
		return nil, err
	}

	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ?`

	rows, err := r.executeQuery(ctx, "list_by_user", query, userID, repositories.MaxBookingsPerUser)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		booking := &models.Booking{}
		err := rows.Scan(
			&booking.BookingID,
			&booking.UserID,
			&booking.LessonID,
			&booking.Schedule,
			&booking.Status,
			&booking.ConsumedTickets,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, repositories.NewRepositoryError("list_by_user", "booking", userID, err)
		}
		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, repositories.NewRepositoryError("list_by_user", "booking", userID, err)
	}

	return bookings, nil
}

func (r *BookingRepository) scanBooking(row *sql.Row, bookingID string) (*models.Booking, error) {
	booking := &models.Booking{}
	err := row.Scan(
		&booking.BookingID,
		&booking.UserID,
		&booking.LessonID,
		&booking.Schedule,
		&booking.Status,
		&booking.ConsumedTickets,
		&booking.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repositories.NotFoundError("booking", bookingID)
		}
		return nil, repositories.NewRepositoryError("get_by_id", "booking", bookingID, err)
	}
	return booking, nil
}
