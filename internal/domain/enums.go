package domain

// RecordKind classifies a journal record.
type RecordKind string

const (
	RecordKindInsight  RecordKind = "insight"
	RecordKindFeedback RecordKind = "feedback"

	// RecordKindEmotion is reserved for emotion check-ins. Records of this
	// kind are never accepted by create or update.
	RecordKindEmotion RecordKind = "emotion"
)

func (k RecordKind) String() string { return string(k) }

// IsValid reports whether k can be used for a new or updated record.
func (k RecordKind) IsValid() bool {
	switch k {
	case RecordKindInsight, RecordKindFeedback:
		return true
	}
	return false
}

func (k RecordKind) IsReserved() bool {
	return k == RecordKindEmotion
}
