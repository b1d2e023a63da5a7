package feedback

import (
	"errors"

	"github.com/heartmarshall/today-record-backend/internal/domain"
)

// Failure kinds of a generation request. Each is terminal; nothing is retried.
var (
	ErrNoRecordsFound       = errors.New("no records found for this date")
	ErrCompletionInvocation = errors.New("completion invocation failed")
	ErrCompletionTimeout    = errors.New("completion timed out")
	ErrEmptyCompletion      = errors.New("completion returned no content")
	ErrMalformedCompletion  = errors.New("completion does not match the response schema")
	ErrPersistence          = errors.New("failed to save feedback")
	ErrDuplicateFeedback    = errors.New("feedback already exists for this date")
)

// Machine-readable error codes returned to API clients.
const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeNoRecordsFound       = "NO_RECORDS_FOUND"
	CodeCompletionInvocation = "COMPLETION_INVOCATION_FAILED"
	CodeCompletionTimeout    = "COMPLETION_TIMEOUT"
	CodeEmptyCompletion      = "EMPTY_COMPLETION"
	CodeMalformedCompletion  = "MALFORMED_COMPLETION"
	CodePersistence          = "PERSISTENCE_FAILED"
	CodeDuplicateFeedback    = "DUPLICATE_FEEDBACK"
	CodeInternal             = "INTERNAL"
)

var codes = []struct {
	err  error
	code string
}{
	{domain.ErrValidation, CodeInvalidRequest},
	{ErrNoRecordsFound, CodeNoRecordsFound},
	{ErrCompletionTimeout, CodeCompletionTimeout},
	{ErrCompletionInvocation, CodeCompletionInvocation},
	{ErrEmptyCompletion, CodeEmptyCompletion},
	{ErrMalformedCompletion, CodeMalformedCompletion},
	{ErrDuplicateFeedback, CodeDuplicateFeedback},
	{ErrPersistence, CodePersistence},
}

// ErrorCode returns the code for a generation failure, or CodeInternal for
// errors outside the generation taxonomy.
func ErrorCode(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeInternal
}
