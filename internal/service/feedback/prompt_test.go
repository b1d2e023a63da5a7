package feedback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/today-record-backend/internal/domain"
)

func rec(kind domain.RecordKind, content string) domain.Record {
	return domain.Record{Kind: kind, Content: content, LocalDate: "2025-01-21"}
}

func TestBuildUserPrompt_InsightThenFeedback(t *testing.T) {
	t.Parallel()

	got := BuildUserPrompt([]domain.Record{
		rec(domain.RecordKindInsight, "Finished the report"),
		rec(domain.RecordKindFeedback, "Needed more focus time"),
	}, "2025-01-21")

	want := "아래는 2025-01-21 하루의 기록입니다. 위 스키마에 따라 분석하여 JSON만 출력하세요.\n\n" +
		"=== 인사이트 기록 ===\n" +
		"1. Finished the report\n" +
		"\n" +
		"=== 피드백 기록 ===\n" +
		"1. Needed more focus time\n"
	assert.Equal(t, want, got)

	assert.Contains(t, got, "2025-01-21")
	assert.Contains(t, got, "1. Finished the report")
	assert.Contains(t, got, "1. Needed more focus time")
	assert.Less(t, strings.Index(got, insightHeader), strings.Index(got, feedbackHeader))
}

func TestBuildUserPrompt_PreservesOrderWithinKind(t *testing.T) {
	t.Parallel()

	got := BuildUserPrompt([]domain.Record{
		rec(domain.RecordKindFeedback, "f1"),
		rec(domain.RecordKindInsight, "i1"),
		rec(domain.RecordKindFeedback, "f2"),
		rec(domain.RecordKindInsight, "i2"),
		rec(domain.RecordKindInsight, "i3"),
	}, "2025-01-21")

	assert.Contains(t, got, "=== 인사이트 기록 ===\n1. i1\n2. i2\n3. i3\n\n")
	assert.Contains(t, got, "=== 피드백 기록 ===\n1. f1\n2. f2\n")
	assert.Less(t, strings.Index(got, "i3"), strings.Index(got, "f1"))
}

func TestBuildUserPrompt_OnlyFeedback(t *testing.T) {
	t.Parallel()

	got := BuildUserPrompt([]domain.Record{
		rec(domain.RecordKindFeedback, "Slept late"),
	}, "2025-01-21")

	assert.NotContains(t, got, "인사이트 기록")
	assert.Contains(t, got, "=== 피드백 기록 ===\n1. Slept late\n")
}

func TestBuildUserPrompt_OnlyInsight(t *testing.T) {
	t.Parallel()

	got := BuildUserPrompt([]domain.Record{
		rec(domain.RecordKindInsight, "Morning walks help"),
	}, "2025-01-21")

	assert.NotContains(t, got, "피드백 기록")
	assert.True(t, strings.HasSuffix(got, "1. Morning walks help\n\n"))
}

func TestBuildUserPrompt_IgnoresReservedKind(t *testing.T) {
	t.Parallel()

	got := BuildUserPrompt([]domain.Record{
		rec(domain.RecordKindEmotion, "happy"),
		rec(domain.RecordKindInsight, "x"),
	}, "2025-01-21")

	assert.NotContains(t, got, "happy")
}

func TestBuildUserPrompt_Deterministic(t *testing.T) {
	t.Parallel()

	records := []domain.Record{
		rec(domain.RecordKindInsight, "a"),
		rec(domain.RecordKindFeedback, "b"),
		rec(domain.RecordKindInsight, "c"),
	}

	first := BuildUserPrompt(records, "2025-01-21")
	for range 10 {
		assert.Equal(t, first, BuildUserPrompt(records, "2025-01-21"))
	}
}
