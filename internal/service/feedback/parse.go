package feedback

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

// payload is the typed form of a schema-valid completion.
type payload struct {
	Date           string   `json:"date"`
	Lesson         string   `json:"lesson"`
	Keywords       []string `json:"keywords"`
	Observation    string   `json:"observation"`
	Insight        string   `json:"insight"`
	ActionFeedback struct {
		WellDone  string `json:"well_done"`
		ToImprove string `json:"to_improve"`
	} `json:"action_feedback"`
	FocusTomorrow     string `json:"focus_tomorrow"`
	FocusScore        int    `json:"focus_score"`
	SatisfactionScore int    `json:"satisfaction_score"`
}

var resolvedSchema = mustResolveSchema(schemaJSON)

func mustResolveSchema(raw []byte) *jsonschema.Resolved {
	var s jsonschema.Schema
	if err := json.Unmarshal(raw, &s); err != nil {
		panic(fmt.Sprintf("feedback: decode response schema: %v", err))
	}
	rs, err := s.Resolve(nil)
	if err != nil {
		panic(fmt.Sprintf("feedback: resolve response schema: %v", err))
	}
	return rs
}

// parseCompletion validates raw completion text against the response schema
// and decodes it. Blank content yields ErrEmptyCompletion; anything else that
// is not a schema-valid document yields ErrMalformedCompletion. Out-of-range
// scores are rejected, never clamped.
func parseCompletion(content string) (*payload, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyCompletion
	}

	var doc any
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCompletion, err)
	}

	if err := resolvedSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCompletion, err)
	}

	// The schema accepts whole-number floats such as 7.0 as integers.
	// Re-encoding the validated document turns them back into 7 so the
	// int fields decode.
	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCompletion, err)
	}

	dec := json.NewDecoder(bytes.NewReader(normalized))
	dec.DisallowUnknownFields()

	var p payload
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCompletion, err)
	}

	return &p, nil
}
