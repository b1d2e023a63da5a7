package feedback

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/today-record-backend/internal/domain"
)

const (
	insightHeader  = "=== 인사이트 기록 ==="
	feedbackHeader = "=== 피드백 기록 ==="
)

// BuildUserPrompt renders one day's records as the user message for the
// completion call. Insight records come first, then feedback records, each
// numbered from 1 in their original order. Empty sections are omitted.
//
// All records are expected to share the given date; this is not checked.
func BuildUserPrompt(records []domain.Record, date string) string {
	var insights, feedbacks []string
	for _, r := range records {
		switch r.Kind {
		case domain.RecordKindInsight:
			insights = append(insights, r.Content)
		case domain.RecordKindFeedback:
			feedbacks = append(feedbacks, r.Content)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "아래는 %s 하루의 기록입니다. 위 스키마에 따라 분석하여 JSON만 출력하세요.\n\n", date)

	if len(insights) > 0 {
		writeSection(&b, insightHeader, insights)
		b.WriteString("\n")
	}
	if len(feedbacks) > 0 {
		writeSection(&b, feedbackHeader, feedbacks)
	}

	return b.String()
}

func writeSection(b *strings.Builder, header string, lines []string) {
	b.WriteString(header)
	b.WriteString("\n")
	for i, line := range lines {
		fmt.Fprintf(b, "%d. %s\n", i+1, line)
	}
}
