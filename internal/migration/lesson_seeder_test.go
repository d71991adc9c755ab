package migration

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"naraigoto-api/internal/adapters/catalog"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

func setupSeederDB(t *testing.T) *sql.DB {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "seeder_test_*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE lessons (lesson_id TEXT PRIMARY KEY, document TEXT NOT NULL)`); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
		os.RemoveAll(tempDir)
	})

	return db
}

func seederLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

func TestLessonSeeder_Seed(t *testing.T) {
	db := setupSeederDB(t)
	source := catalog.NewMockSource()
	source.Put("single.json", []byte(`{"lessonId":"lesson-1","title":"Piano"}`))
	source.Put("batch.json", []byte(`[{"lessonId":"lesson-2"},{"lessonId":"lesson-3"}]`))

	seeder := NewLessonSeeder(db, source, seederLogger())

	result, err := seeder.Seed(context.Background())
	if err != nil {
		t.Fatalf("Seed() failed: %v", err)
	}

	if result.DocumentsProcessed != 2 {
		t.Errorf("DocumentsProcessed = %d, want 2", result.DocumentsProcessed)
	}
	if result.LessonsSeeded != 3 {
		t.Errorf("LessonsSeeded = %d, want 3", result.LessonsSeeded)
	}
	if len(result.Errors) != 0 {
		t.Errorf("Errors = %v, want none", result.Errors)
	}

	count, err := seeder.ValidateSeed(context.Background())
	if err != nil {
		t.Fatalf("ValidateSeed() failed: %v", err)
	}
	if count != 3 {
		t.Errorf("lessons in table = %d, want 3", count)
	}
}

func TestLessonSeeder_Seed_LegacyKey(t *testing.T) {
	db := setupSeederDB(t)
	source := catalog.NewMockSource()
	source.Put("legacy.json", []byte(`{"lessonsId":"lesson-legacy","title":"Swimming"}`))

	seeder := NewLessonSeeder(db, source, seederLogger())

	result, err := seeder.Seed(context.Background())
	if err != nil {
		t.Fatalf("Seed() failed: %v", err)
	}
	if result.LessonsSeeded != 1 {
		t.Fatalf("LessonsSeeded = %d, want 1", result.LessonsSeeded)
	}

	// The stored document carries the canonical key
	var document string
	if err := db.QueryRow(`SELECT document FROM lessons WHERE lesson_id = ?`, "lesson-legacy").Scan(&document); err != nil {
		t.Fatalf("Failed to read stored document: %v", err)
	}
	if document == "" || document[0] != '{' {
		t.Fatalf("stored document malformed: %s", document)
	}
	if !containsKey(document, `"lessonId":"lesson-legacy"`) {
		t.Errorf("document = %s, want canonical lessonId key", document)
	}
	if containsKey(document, "lessonsId") {
		t.Errorf("document = %s, legacy key survived normalization", document)
	}
}

func TestLessonSeeder_Seed_SkipsInvalidDocuments(t *testing.T) {
	db := setupSeederDB(t)
	source := catalog.NewMockSource()
	source.Put("good.json", []byte(`{"lessonId":"lesson-1"}`))
	source.Put("bad.json", []byte(`not json at all`))
	source.Put("no-id.json", []byte(`{"title":"missing key"}`))

	seeder := NewLessonSeeder(db, source, seederLogger())

	result, err := seeder.Seed(context.Background())
	if err != nil {
		t.Fatalf("Seed() failed: %v", err)
	}

	if result.LessonsSeeded != 1 {
		t.Errorf("LessonsSeeded = %d, want 1", result.LessonsSeeded)
	}
	if len(result.Warnings) != 2 {
		t.Errorf("Warnings = %v, want 2 skip entries", result.Warnings)
	}
}

func TestLessonSeeder_Seed_Replaces(t *testing.T) {
	db := setupSeederDB(t)
	source := catalog.NewMockSource()
	source.Put("lesson.json", []byte(`{"lessonId":"lesson-1","title":"Old"}`))

	seeder := NewLessonSeeder(db, source, seederLogger())
	if _, err := seeder.Seed(context.Background()); err != nil {
		t.Fatalf("First Seed() failed: %v", err)
	}

	source.Put("lesson.json", []byte(`{"lessonId":"lesson-1","title":"New"}`))
	if _, err := seeder.Seed(context.Background()); err != nil {
		t.Fatalf("Second Seed() failed: %v", err)
	}

	count, err := seeder.ValidateSeed(context.Background())
	if err != nil {
		t.Fatalf("ValidateSeed() failed: %v", err)
	}
	if count != 1 {
		t.Errorf("lessons = %d, want 1 after replace", count)
	}

	var document string
	if err := db.QueryRow(`SELECT document FROM lessons WHERE lesson_id = ?`, "lesson-1").Scan(&document); err != nil {
		t.Fatalf("Failed to read stored document: %v", err)
	}
	if !containsKey(document, "New") {
		t.Errorf("document = %s, want the replacement", document)
	}
}

func TestLessonSeeder_Seed_EmptySource(t *testing.T) {
	db := setupSeederDB(t)
	seeder := NewLessonSeeder(db, catalog.NewMockSource(), seederLogger())

	result, err := seeder.Seed(context.Background())
	if err != nil {
		t.Fatalf("Seed() failed: %v", err)
	}
	if result.LessonsSeeded != 0 {
		t.Errorf("LessonsSeeded = %d, want 0", result.LessonsSeeded)
	}
	if len(result.Warnings) != 1 {
		t.Errorf("Warnings = %v, want the empty-source warning", result.Warnings)
	}
}

func containsKey(document, fragment string) bool {
	return strings.Contains(document, fragment)
}
