package feedback

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/today-record-backend/internal/domain"
)

// GenerateInput identifies the day to summarize.
type GenerateInput struct {
	UserID uuid.UUID
	Date   string
}

// Validate checks all fields and collects all errors.
func (i GenerateInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "required"})
	}

	date := strings.TrimSpace(i.Date)
	switch {
	case date == "":
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	case !domain.IsValidDate(date):
		errs = append(errs, domain.FieldError{Field: "date", Message: "must be a YYYY-MM-DD date"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GetInput identifies the day whose feedback to read.
type GetInput struct {
	Date string
}

// Validate checks all fields and collects all errors.
func (i GetInput) Validate() error {
	if !domain.IsValidDate(strings.TrimSpace(i.Date)) {
		return domain.NewValidationError("date", "must be a YYYY-MM-DD date")
	}
	return nil
}
