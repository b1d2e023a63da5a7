package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxRecordContentLength limits the length of a record in characters.
const MaxRecordContentLength = 2000

// Record is a single journal entry written by a user.
// LocalDate is fixed at creation and never recomputed.
type Record struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Kind      RecordKind
	Content   string
	CreatedAt time.Time
	LocalDate string
}

// RecordFilter narrows a record listing. Dates are inclusive.
type RecordFilter struct {
	From   *string
	To     *string
	Kind   *RecordKind
	Limit  int
	Offset int
}

// DaySummary counts a user's records for one local date.
type DaySummary struct {
	Date          string
	InsightCount  int
	FeedbackCount int
}

// Total returns the number of records written that day.
func (d DaySummary) Total() int {
	return d.InsightCount + d.FeedbackCount
}
