package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"naraigoto-api/internal/models"
	"naraigoto-api/internal/repositories"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

func setupTestDB(t *testing.T) (*sql.DB, func()) {
	tempDir, err := os.MkdirTemp("", "sqlite_test_*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	dbPath := filepath.Join(tempDir, "test.db")
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
		CREATE TABLE bookings (
			booking_id       TEXT PRIMARY KEY,
			user_id          TEXT NOT NULL,
			lesson_id        TEXT NOT NULL,
			schedule         TEXT NOT NULL,
			status           TEXT NOT NULL DEFAULT 'reserved',
			consumed_tickets INTEGER NOT NULL DEFAULT 1,
			created_at       INTEGER NOT NULL
		);
		CREATE INDEX idx_bookings_user_created ON bookings (user_id, created_at DESC);

		CREATE TABLE lessons (
			lesson_id TEXT PRIMARY KEY,
			document  TEXT NOT NULL
		);

		CREATE TABLE parent_reviews (
			lesson_id  TEXT NOT NULL,
			created_at TEXT NOT NULL,
			review_id  TEXT NOT NULL UNIQUE,
			user_id    TEXT NOT NULL,
			rating     REAL NOT NULL,
			comment    TEXT NOT NULL,
			role       TEXT NOT NULL,
			target_key TEXT,
			PRIMARY KEY (lesson_id, created_at)
		);

		CREATE TABLE child_reviews (
			lesson_id  TEXT NOT NULL,
			created_at TEXT NOT NULL,
			review_id  TEXT NOT NULL UNIQUE,
			user_id    TEXT NOT NULL,
			rating     REAL NOT NULL,
			comment    TEXT NOT NULL,
			role       TEXT NOT NULL,
			target_key TEXT,
			PRIMARY KEY (lesson_id, created_at)
		);

		CREATE TABLE likes (
			user_id    TEXT NOT NULL,
			school_id  TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (user_id, school_id)
		);
	`)
	if err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	cleanup := func() {
		db.Close()
		os.RemoveAll(tempDir)
	}

	return db, cleanup
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return logger
}

func TestBookingRepository_CreateAndGet(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewBookingRepository(db, testLogger())
	ctx := context.Background()

	booking := models.NewBooking("user-1", "lesson-1", "", nil)
	if err := repo.Create(ctx, booking); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, booking.BookingID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}

	if retrieved.BookingID != booking.BookingID {
		t.Errorf("Retrieved booking ID = %s, want %s", retrieved.BookingID, booking.BookingID)
	}
	if retrieved.Status != models.BookingStatusReserved {
		t.Errorf("Retrieved status = %s, want reserved", retrieved.Status)
	}
	if retrieved.Schedule != models.DefaultSchedule {
		t.Errorf("Retrieved schedule = %s, want %s", retrieved.Schedule, models.DefaultSchedule)
	}
	if retrieved.ConsumedTickets != models.DefaultConsumedTickets {
		t.Errorf("Retrieved consumedTickets = %d, want %d", retrieved.ConsumedTickets, models.DefaultConsumedTickets)
	}
}

func TestBookingRepository_GetByID_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewBookingRepository(db, testLogger())

	_, err := repo.GetByID(context.Background(), "missing")
	if !repositories.IsNotFound(err) {
		t.Errorf("GetByID() error = %v, want not found", err)
	}
}

func TestBookingRepository_Cancel(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewBookingRepository(db, testLogger())
	ctx := context.Background()

	booking := models.NewBooking("user-1", "lesson-1", "", nil)
	if err := repo.Create(ctx, booking); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	canceled, err := repo.Cancel(ctx, booking.BookingID)
	if err != nil {
		t.Fatalf("Cancel() failed: %v", err)
	}
	if canceled.Status != models.BookingStatusCanceled {
		t.Errorf("Canceled status = %s, want canceled", canceled.Status)
	}

	// Second cancel must fail the status guard
	_, err = repo.Cancel(ctx, booking.BookingID)
	if !repositories.IsConflict(err) {
		t.Errorf("Second Cancel() error = %v, want conflict", err)
	}
}

func TestBookingRepository_Cancel_Missing(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewBookingRepository(db, testLogger())

	_, err := repo.Cancel(context.Background(), "missing")
	if !repositories.IsConflict(err) {
		t.Errorf("Cancel() error = %v, want conflict", err)
	}
}

func TestBookingRepository_Cancel_Concurrent(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewBookingRepository(db, testLogger())
	ctx := context.Background()

	booking := models.NewBooking("user-1", "lesson-1", "", nil)
	if err := repo.Create(ctx, booking); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	const attempts = 10
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Cancel(ctx, booking.BookingID)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case repositories.IsConflict(err):
			conflicts++
		default:
			t.Errorf("unexpected Cancel() error: %v", err)
		}
	}

	if successes != 1 {
		t.Errorf("successes = %d, want exactly 1", successes)
	}
	if conflicts != attempts-1 {
		t.Errorf("conflicts = %d, want %d", conflicts, attempts-1)
	}
}

func TestBookingRepository_ListByUser(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewBookingRepository(db, testLogger())
	ctx := context.Background()

	older := models.NewBooking("user-1", "lesson-1", "", nil)
	older.CreatedAt = 1000
	newer := models.NewBooking("user-1", "lesson-2", "", nil)
	newer.CreatedAt = 2000
	other := models.NewBooking("user-2", "lesson-1", "", nil)
	other.CreatedAt = 1500

	for _, b := range []*models.Booking{older, newer, other} {
		if err := repo.Create(ctx, b); err != nil {
			t.Fatalf("Create() failed: %v", err)
		}
	}

	bookings, err := repo.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListByUser() failed: %v", err)
	}

	if len(bookings) != 2 {
		t.Fatalf("ListByUser() returned %d bookings, want 2", len(bookings))
	}
	if bookings[0].BookingID != newer.BookingID {
		t.Errorf("First booking = %s, want newest %s", bookings[0].BookingID, newer.BookingID)
	}
	if bookings[1].BookingID != older.BookingID {
		t.Errorf("Second booking = %s, want oldest %s", bookings[1].BookingID, older.BookingID)
	}
}
