package sqlite

import (
	"context"
	"testing"

	"naraigoto-api/internal/models"
	"naraigoto-api/internal/repositories"
)

func TestLikeRepository_Create(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewLikeRepository(db, testLogger())
	ctx := context.Background()

	like := models.NewLike("user-1", "school-1")
	if err := repo.Create(ctx, like); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	likes, err := repo.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListByUser() failed: %v", err)
	}
	if len(likes) != 1 {
		t.Fatalf("ListByUser() returned %d likes, want 1", len(likes))
	}
	if likes[0].SchoolID != "school-1" {
		t.Errorf("SchoolID = %s, want school-1", likes[0].SchoolID)
	}
}

func TestLikeRepository_Create_Duplicate(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewLikeRepository(db, testLogger())
	ctx := context.Background()

	if err := repo.Create(ctx, models.NewLike("user-1", "school-1")); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	err := repo.Create(ctx, models.NewLike("user-1", "school-1"))
	if !repositories.IsDuplicate(err) {
		t.Errorf("Duplicate Create() error = %v, want duplicate", err)
	}

	// The original row must be untouched
	likes, err := repo.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListByUser() failed: %v", err)
	}
	if len(likes) != 1 {
		t.Errorf("ListByUser() returned %d likes, want 1", len(likes))
	}
}

func TestLikeRepository_Delete_Idempotent(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewLikeRepository(db, testLogger())
	ctx := context.Background()

	if err := repo.Create(ctx, models.NewLike("user-1", "school-1")); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	if err := repo.Delete(ctx, "user-1", "school-1"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}

	// Deleting an absent pair succeeds
	if err := repo.Delete(ctx, "user-1", "school-1"); err != nil {
		t.Errorf("Second Delete() failed: %v", err)
	}

	likes, err := repo.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListByUser() failed: %v", err)
	}
	if len(likes) != 0 {
		t.Errorf("ListByUser() returned %d likes, want 0", len(likes))
	}
}

func TestLikeRepository_DifferentSchools(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewLikeRepository(db, testLogger())
	ctx := context.Background()

	if err := repo.Create(ctx, models.NewLike("user-1", "school-1")); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if err := repo.Create(ctx, models.NewLike("user-1", "school-2")); err != nil {
		t.Fatalf("Create() for second school failed: %v", err)
	}

	likes, err := repo.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListByUser() failed: %v", err)
	}
	if len(likes) != 2 {
		t.Errorf("ListByUser() returned %d likes, want 2", len(likes))
	}
}
