package domain

import (
	"time"

	"github.com/google/uuid"
)

// Score bounds shared by focus and satisfaction scores.
const (
	MinScore = 0
	MaxScore = 10
)

// DailyFeedback is the stored result of one successful generation for
// (UserID, Date). Rows are append-only.
type DailyFeedback struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Date              string
	Lesson            string
	Keywords          []string
	Observation       string
	Insight           string
	ActionFeedback    ActionFeedback
	FocusTomorrow     string
	FocusScore        int
	SatisfactionScore int
	CreatedAt         time.Time
}

// ActionFeedback holds what went well and what to improve.
type ActionFeedback struct {
	WellDone  string
	ToImprove string
}

// OutputSchema describes the JSON document a completion must produce.
type OutputSchema struct {
	Name   string
	Strict bool
	// Schema is a JSON Schema document.
	Schema []byte
}
