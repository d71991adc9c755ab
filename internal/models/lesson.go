package models

import "encoding/json"

// Lesson is read-only catalog data. The source table is schemaless, so beyond
// the key every attribute lives in a free-form document that is passed through
// to clients unchanged.
type Lesson struct {
	LessonID   string
	Attributes map[string]interface{}
}

// legacyLessonKey is the inconsistent field name some stored records carry.
// NormalizeLessonKey is the single place where the translation happens; no
// handler or repository should touch the raw key.
const (
	lessonKey       = "lessonId"
	legacyLessonKey = "lessonsId"
)

// NormalizeLessonKey rewrites a stored document so the lesson identifier always
// appears under the canonical "lessonId" attribute.
func NormalizeLessonKey(doc map[string]interface{}) map[string]interface{} {
	if doc == nil {
		return nil
	}
	if legacy, ok := doc[legacyLessonKey]; ok {
		if _, ok := doc[lessonKey]; !ok {
			doc[lessonKey] = legacy
		}
		delete(doc, legacyLessonKey)
	}
	return doc
}

// MarshalJSON flattens the lesson into a single object: the canonical key plus
// every stored attribute.
func (l *Lesson) MarshalJSON() ([]byte, error) {
	doc := make(map[string]interface{}, len(l.Attributes)+1)
	for k, v := range l.Attributes {
		doc[k] = v
	}
	doc[lessonKey] = l.LessonID
	return json.Marshal(NormalizeLessonKey(doc))
}

// Title returns the lesson title attribute, if present.
func (l *Lesson) Title() string {
	if t, ok := l.Attributes["title"].(string); ok {
		return t
	}
	return ""
}
