package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"naraigoto-api/internal/adapters/catalog"
	"naraigoto-api/internal/models"
)

// LessonSeeder imports lesson catalog documents into the lessons table.
// The API never writes lessons, so seeding is the only provisioning path.
type LessonSeeder struct {
	db     *sql.DB
	source catalog.Source
	logger *logrus.Logger
}

// NewLessonSeeder creates a new lesson seeder
func NewLessonSeeder(db *sql.DB, source catalog.Source, logger *logrus.Logger) *LessonSeeder {
	return &LessonSeeder{
		db:     db,
		source: source,
		logger: logger,
	}
}

// SeedResult contains the results of a seed run
type SeedResult struct {
	DocumentsProcessed int
	LessonsSeeded      int
	Errors             []string
	Warnings           []string
}

// Seed imports every document the source lists. A document may hold a single
// lesson object or an array of them. Existing lessons are replaced.
func (s *LessonSeeder) Seed(ctx context.Context) (*SeedResult, error) {
	s.logger.Info("Starting lesson catalog seed...")

	result := &SeedResult{
		Errors:   make([]string, 0),
		Warnings: make([]string, 0),
	}

	keys, err := s.source.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog documents: %w", err)
	}
	if len(keys) == 0 {
		result.Warnings = append(result.Warnings, "no catalog documents found")
		s.logger.Warn("No catalog documents found, nothing to seed")
		return result, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO lessons (lesson_id, document) VALUES (?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare lesson insert statement: %w", err)
	}
	defer stmt.Close()

	for _, key := range keys {
		data, err := s.source.Read(ctx, key)
		if err != nil {
			s.logger.WithError(err).WithField("key", key).Error("Failed to read catalog document")
			result.Errors = append(result.Errors, fmt.Sprintf("read %s: %v", key, err))
			continue
		}
		result.DocumentsProcessed++

		lessons, err := decodeLessonDocuments(data)
		if err != nil {
			s.logger.WithError(err).WithField("key", key).Warn("Invalid catalog document, skipping")
			result.Warnings = append(result.Warnings, fmt.Sprintf("skip %s: %v", key, err))
			continue
		}

		for _, lesson := range lessons {
			if err := s.insertLesson(ctx, stmt, lesson); err != nil {
				s.logger.WithError(err).WithFields(logrus.Fields{
					"key":       key,
					"lesson_id": lesson["lessonId"],
				}).Error("Failed to insert lesson")
				result.Errors = append(result.Errors, fmt.Sprintf("insert from %s: %v", key, err))
				continue
			}
			result.LessonsSeeded++
		}
	}

	if err := tx.Commit(); err != nil {
		return result, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"documents": result.DocumentsProcessed,
		"lessons":   result.LessonsSeeded,
	}).Info("Lesson catalog seed completed")

	return result, nil
}

// insertLesson writes one normalized lesson document
func (s *LessonSeeder) insertLesson(ctx context.Context, stmt *sql.Stmt, lesson map[string]interface{}) error {
	lessonID, _ := lesson["lessonId"].(string)
	if lessonID == "" {
		return fmt.Errorf("lesson document has no lessonId")
	}

	document, err := json.Marshal(lesson)
	if err != nil {
		return fmt.Errorf("failed to marshal lesson document: %w", err)
	}

	if _, err := stmt.ExecContext(ctx, lessonID, string(document)); err != nil {
		return fmt.Errorf("failed to insert lesson %s: %w", lessonID, err)
	}
	return nil
}

// ValidateSeed reports how many lessons the table holds after a seed run
func (s *LessonSeeder) ValidateSeed(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM lessons").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count lessons: %w", err)
	}

	s.logger.WithField("lessons", count).Info("Seed validation completed")
	return count, nil
}

// decodeLessonDocuments parses a document holding one lesson object or an
// array of them, normalizing legacy key spellings on the way in.
func decodeLessonDocuments(data []byte) ([]map[string]interface{}, error) {
	var array []map[string]interface{}
	if err := json.Unmarshal(data, &array); err == nil {
		return normalizeAll(array)
	}

	var single map[string]interface{}
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("document is neither a lesson object nor an array: %w", err)
	}
	return normalizeAll([]map[string]interface{}{single})
}

func normalizeAll(lessons []map[string]interface{}) ([]map[string]interface{}, error) {
	out := make([]map[string]interface{}, 0, len(lessons))
	for _, lesson := range lessons {
		normalized := models.NormalizeLessonKey(lesson)
		if id, _ := normalized["lessonId"].(string); id == "" {
			return nil, fmt.Errorf("lesson document has no lessonId")
		}
		out = append(out, normalized)
	}
	return out, nil
}
