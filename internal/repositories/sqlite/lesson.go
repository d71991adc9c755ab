package sqlite

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"

	"naraigoto-api/internal/models"
	"naraigoto-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// LessonRepository implements the LessonRepository interface for SQLite. The
// catalog is schemaless: everything beyond the key lives in a JSON document
// column imported from the upstream catalog.
type LessonRepository struct {
	baseRepository
}

// NewLessonRepository creates a new SQLite lesson repository
func NewLessonRepository(db *sql.DB, logger *logrus.Logger) repositories.LessonRepository {
	return &LessonRepository{
		baseRepository: newBaseRepository(db, "lessons", logger),
	}
}

// GetByID retrieves a single lesson document
func (r *LessonRepository) GetByID(ctx context.Context, lessonID string) (*models.Lesson, error) {
	if err := r.validateID(lessonID); err != nil {
		return nil, err
	}

	query := `SELECT lesson_id, document FROM lessons WHERE lesson_id = ?`
	row := r.executeQueryRow(ctx, "get_by_id", query, lessonID)

	var (
		id  string
		doc []byte
	)
	if err := row.Scan(&id, &doc); err != nil {
		if err == sql.ErrNoRows {
			return nil, repositories.NotFoundError("lesson", lessonID)
		}
		return nil, repositories.NewRepositoryError("get_by_id", "lesson", lessonID, err)
	}

	return r.decodeLesson(id, doc, "get_by_id")
}

// List returns up to MaxLessonsPerScan lessons in storage order
func (r *LessonRepository) List(ctx context.Context) ([]*models.Lesson, error) {
	query := `SELECT lesson_id, document FROM lessons LIMIT ?`

	rows, err := r.executeQuery(ctx, "list", query, repositories.MaxLessonsPerScan)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lessons []*models.Lesson
	for rows.Next() {
		var (
			id  string
			doc []byte
		)
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, repositories.NewRepositoryError("list", "lesson", "", err)
		}
		lesson, err := r.decodeLesson(id, doc, "list")
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, lesson)
	}

	if err = rows.Err(); err != nil {
		return nil, repositories.NewRepositoryError("list", "lesson", "", err)
	}

	return lessons, nil
}

// decodeLesson unpacks the stored document. Numbers come out of the decoder as
// json.Number and are normalized to native int/float values; the legacy
// lessonsId attribute is folded into the canonical key.
func (r *LessonRepository) decodeLesson(id string, doc []byte, op string) (*models.Lesson, error) {
	attributes := make(map[string]interface{})
	if len(doc) > 0 {
		dec := json.NewDecoder(bytes.NewReader(doc))
		dec.UseNumber()
		if err := dec.Decode(&attributes); err != nil {
			return nil, repositories.NewRepositoryError(op, "lesson", id, err)
		}
		models.NormalizeNumbers(attributes)
		attributes = models.NormalizeLessonKey(attributes)
		delete(attributes, "lessonId")
	}

	return &models.Lesson{
		LessonID:   id,
		Attributes: attributes,
	}, nil
}
