package record

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/today-record-backend/internal/domain"
)

// CreateRecordInput holds the parameters for writing a record.
type CreateRecordInput struct {
	Kind    domain.RecordKind
	Content string
}

// Validate checks all fields and collects all errors.
func (i CreateRecordInput) Validate() error {
	var errs []domain.FieldError
	errs = appendKindErrors(errs, i.Kind)
	errs = appendContentErrors(errs, i.Content)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateRecordInput holds a partial record update.
type UpdateRecordInput struct {
	ID      uuid.UUID
	Kind    *domain.RecordKind
	Content *string
}

// Validate checks all fields and collects all errors.
func (i UpdateRecordInput) Validate() error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Kind == nil && i.Content == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one of kind or content is required"})
	}
	if i.Kind != nil {
		errs = appendKindErrors(errs, *i.Kind)
	}
	if i.Content != nil {
		errs = appendContentErrors(errs, *i.Content)
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteRecordInput identifies the record to delete.
type DeleteRecordInput struct {
	ID uuid.UUID
}

// Validate checks all fields.
func (i DeleteRecordInput) Validate() error {
	if i.ID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}

// ListRecordsInput filters and paginates a record listing.
type ListRecordsInput struct {
	From   *string
	To     *string
	Kind   *domain.RecordKind
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListRecordsInput) Validate() error {
	var errs []domain.FieldError
	if i.From != nil && !domain.IsValidDate(*i.From) {
		errs = append(errs, domain.FieldError{Field: "from", Message: "must be a YYYY-MM-DD date"})
	}
	if i.To != nil && !domain.IsValidDate(*i.To) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must be a YYYY-MM-DD date"})
	}
	if i.From != nil && i.To != nil && *i.From > *i.To {
		errs = append(errs, domain.FieldError{Field: "from", Message: "must not be after to"})
	}
	if i.Kind != nil && !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be insight or feedback"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListDaysInput selects the date range for per-day counts.
type ListDaysInput struct {
	From string
	To   string
}

// Validate checks all fields and collects all errors.
func (i ListDaysInput) Validate() error {
	var errs []domain.FieldError

	from, fromErr := domain.ParseDate(i.From)
	if fromErr != nil {
		errs = append(errs, domain.FieldError{Field: "from", Message: "must be a YYYY-MM-DD date"})
	}
	to, toErr := domain.ParseDate(i.To)
	if toErr != nil {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must be a YYYY-MM-DD date"})
	}
	if fromErr == nil && toErr == nil {
		switch days := int(to.Sub(from).Hours()/24) + 1; {
		case days < 1:
			errs = append(errs, domain.FieldError{Field: "from", Message: "must not be after to"})
		case days > MaxDaysRange:
			errs = append(errs, domain.FieldError{Field: "to", Message: "range must not exceed 366 days"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendKindErrors(errs []domain.FieldError, kind domain.RecordKind) []domain.FieldError {
	switch {
	case kind == "":
		return append(errs, domain.FieldError{Field: "kind", Message: "required"})
	case kind.IsReserved():
		return append(errs, domain.FieldError{Field: "kind", Message: "kind is reserved"})
	case !kind.IsValid():
		return append(errs, domain.FieldError{Field: "kind", Message: "must be insight or feedback"})
	}
	return errs
}

func appendContentErrors(errs []domain.FieldError, content string) []domain.FieldError {
	content = strings.TrimSpace(content)
	if content == "" {
		return append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if utf8.RuneCountInString(content) > domain.MaxRecordContentLength {
		return append(errs, domain.FieldError{Field: "content", Message: "max 2000 characters"})
	}
	return errs
}
