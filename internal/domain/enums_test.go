package domain

import "testing"

func TestRecordKind_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind RecordKind
		want bool
	}{
		{RecordKindInsight, true},
		{RecordKindFeedback, true},
		{RecordKindEmotion, false},
		{RecordKind(""), false},
		{RecordKind("INSIGHT"), false},
	}
	for _, tt := range tests {
		if got := tt.kind.IsValid(); got != tt.want {
			t.Errorf("RecordKind(%q).IsValid() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestRecordKind_IsReserved(t *testing.T) {
	t.Parallel()

	if !RecordKindEmotion.IsReserved() {
		t.Error("emotion should be reserved")
	}
	if RecordKindInsight.IsReserved() {
		t.Error("insight should not be reserved")
	}
}
