package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewBooking_Defaults(t *testing.T) {
	booking := NewBooking("user-1", "lesson-1", "", nil)

	if booking.BookingID == "" {
		t.Error("BookingID not generated")
	}
	if booking.Status != BookingStatusReserved {
		t.Errorf("Status = %s, want reserved", booking.Status)
	}
	if booking.Schedule != DefaultSchedule {
		t.Errorf("Schedule = %s, want %s", booking.Schedule, DefaultSchedule)
	}
	if booking.ConsumedTickets != DefaultConsumedTickets {
		t.Errorf("ConsumedTickets = %d, want %d", booking.ConsumedTickets, DefaultConsumedTickets)
	}
	if err := booking.Validate(); err != nil {
		t.Errorf("Validate() failed: %v", err)
	}
}

func TestNewBooking_ExplicitValues(t *testing.T) {
	tickets := 2
	booking := NewBooking("user-1", "lesson-1", "2026-03-01T09:00:00Z", &tickets)

	if booking.Schedule != "2026-03-01T09:00:00Z" {
		t.Errorf("Schedule = %s, want explicit value", booking.Schedule)
	}
	if booking.ConsumedTickets != 2 {
		t.Errorf("ConsumedTickets = %d, want 2", booking.ConsumedTickets)
	}
}

func TestBooking_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Booking)
		wantErr bool
	}{
		{"valid", func(b *Booking) {}, false},
		{"empty user", func(b *Booking) { b.UserID = " " }, true},
		{"empty lesson", func(b *Booking) { b.LessonID = "" }, true},
		{"bad status", func(b *Booking) { b.Status = "pending" }, true},
		{"negative tickets", func(b *Booking) { b.ConsumedTickets = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := NewBooking("user-1", "lesson-1", "", nil)
			tt.mutate(booking)
			err := booking.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestReview_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Review)
		wantErr bool
	}{
		{"valid", func(r *Review) {}, false},
		{"rating low", func(r *Review) { r.Rating = 0.5 }, true},
		{"rating high", func(r *Review) { r.Rating = 5.5 }, true},
		{"rating fractional in range", func(r *Review) { r.Rating = 4.5 }, false},
		{"empty comment", func(r *Review) { r.Comment = "" }, true},
		{"multibyte comment at limit", func(r *Review) { r.Comment = strings.Repeat("あ", MaxCommentLength) }, false},
		{"comment over limit", func(r *Review) { r.Comment = strings.Repeat("あ", MaxCommentLength+1) }, true},
		{"bad role", func(r *Review) { r.Role = "teacher" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			review := NewReview("lesson-1", "user-1", 4, "fine", ReviewRoleParent)
			tt.mutate(review)
			err := review.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTargetKeyFor(t *testing.T) {
	if got := TargetKeyFor("school", "school-1"); got != "school#school-1" {
		t.Errorf("TargetKeyFor() = %s, want school#school-1", got)
	}
	// Empty type falls back to the default
	if got := TargetKeyFor("", "school-1"); got != "school#school-1" {
		t.Errorf("TargetKeyFor(empty) = %s, want school#school-1", got)
	}
	if got := TargetKeyFor("teacher", "t-1"); got != "teacher#t-1" {
		t.Errorf("TargetKeyFor(teacher) = %s, want teacher#t-1", got)
	}
}

func TestNumber_MarshalJSON(t *testing.T) {
	tests := []struct {
		value Number
		want  string
	}{
		{Number(4), "4"},
		{Number(4.5), "4.5"},
		{Number(3000), "3000"},
		{Number(0), "0"},
	}

	for _, tt := range tests {
		data, err := json.Marshal(tt.value)
		if err != nil {
			t.Fatalf("Marshal(%v) failed: %v", tt.value, err)
		}
		if string(data) != tt.want {
			t.Errorf("Marshal(%v) = %s, want %s", tt.value, data, tt.want)
		}
	}
}

func TestNormalizeNumbers(t *testing.T) {
	doc := map[string]interface{}{
		"price":  json.Number("3000"),
		"rating": json.Number("4.5"),
		"nested": map[string]interface{}{"count": json.Number("2")},
		"list":   []interface{}{json.Number("1"), "text"},
	}

	normalized := NormalizeNumbers(doc).(map[string]interface{})

	if v, ok := normalized["price"].(int64); !ok || v != 3000 {
		t.Errorf("price = %v (%T), want int64 3000", normalized["price"], normalized["price"])
	}
	if v, ok := normalized["rating"].(float64); !ok || v != 4.5 {
		t.Errorf("rating = %v (%T), want float64 4.5", normalized["rating"], normalized["rating"])
	}
	nested := normalized["nested"].(map[string]interface{})
	if v, ok := nested["count"].(int64); !ok || v != 2 {
		t.Errorf("nested count = %v, want int64 2", nested["count"])
	}
	list := normalized["list"].([]interface{})
	if v, ok := list[0].(int64); !ok || v != 1 {
		t.Errorf("list[0] = %v, want int64 1", list[0])
	}
}

func TestNormalizeLessonKey(t *testing.T) {
	doc := map[string]interface{}{"lessonsId": "lesson-1", "title": "Piano"}
	normalized := NormalizeLessonKey(doc)

	if normalized["lessonId"] != "lesson-1" {
		t.Errorf("lessonId = %v, want lesson-1", normalized["lessonId"])
	}
	if _, ok := normalized["lessonsId"]; ok {
		t.Error("legacy lessonsId key survived")
	}

	// The canonical key wins when both spellings are present
	doc = map[string]interface{}{"lessonId": "canonical", "lessonsId": "legacy"}
	normalized = NormalizeLessonKey(doc)
	if normalized["lessonId"] != "canonical" {
		t.Errorf("lessonId = %v, want canonical", normalized["lessonId"])
	}

	if NormalizeLessonKey(nil) != nil {
		t.Error("NormalizeLessonKey(nil) != nil")
	}
}

func TestLesson_MarshalJSON(t *testing.T) {
	lesson := &Lesson{
		LessonID:   "lesson-1",
		Attributes: map[string]interface{}{"title": "Piano", "price": int64(3000)},
	}

	data, err := json.Marshal(lesson)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if doc["lessonId"] != "lesson-1" {
		t.Errorf("lessonId = %v, want lesson-1", doc["lessonId"])
	}
	if doc["title"] != "Piano" {
		t.Errorf("title = %v, want Piano", doc["title"])
	}
	if doc["price"] != float64(3000) {
		t.Errorf("price = %v, want 3000", doc["price"])
	}
}

func TestLike_Validate(t *testing.T) {
	like := NewLike("user-1", "school-1")
	if err := like.Validate(); err != nil {
		t.Errorf("Validate() failed: %v", err)
	}

	if err := NewLike("", "school-1").Validate(); err == nil {
		t.Error("Validate() passed with empty user ID")
	}
	if err := NewLike("user-1", " ").Validate(); err == nil {
		t.Error("Validate() passed with blank school ID")
	}
}
