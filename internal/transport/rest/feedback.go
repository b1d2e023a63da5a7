package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/today-record-backend/internal/domain"
	"github.com/heartmarshall/today-record-backend/internal/service/feedback"
	"github.com/heartmarshall/today-record-backend/pkg/ctxutil"
)

// feedbackService defines the minimal interface needed by FeedbackHandler.
type feedbackService interface {
	GenerateDailyFeedback(ctx context.Context, input feedback.GenerateInput) (*domain.DailyFeedback, error)
	GetDailyFeedback(ctx context.Context, input feedback.GetInput) (*domain.DailyFeedback, error)
}

// FeedbackHandler serves daily feedback endpoints.
type FeedbackHandler struct {
	svc feedbackService
	log *slog.Logger
}

// NewFeedbackHandler creates a FeedbackHandler.
func NewFeedbackHandler(svc feedbackService, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{svc: svc, log: logger.With("handler", "feedback")}
}

type generateFeedbackRequest struct {
	UserID string `json:"userId"`
	Date   string `json:"date"`
}

type feedbackResponse struct {
	ID                string                 `json:"id"`
	Date              string                 `json:"date"`
	Lesson            string                 `json:"lesson"`
	Keywords          []string               `json:"keywords"`
	Observation       string                 `json:"observation"`
	Insight           string                 `json:"insight"`
	ActionFeedback    actionFeedbackResponse `json:"action_feedback"`
	FocusTomorrow     string                 `json:"focus_tomorrow"`
	FocusScore        int                    `json:"focus_score"`
	SatisfactionScore int                    `json:"satisfaction_score"`
	CreatedAt         time.Time              `json:"created_at"`
}

type actionFeedbackResponse struct {
	WellDone  string `json:"well_done"`
	ToImprove string `json:"to_improve"`
}

type feedbackEnvelope struct {
	Message string           `json:"message,omitempty"`
	Data    feedbackResponse `json:"data"`
}

// Generate handles POST /daily-feedback.
//
// userId may be omitted when the caller is authenticated. When both are
// present they must name the same user.
func (h *FeedbackHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateFeedbackRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeValidationError(w, err)
		return
	}

	userID, err := h.resolveUser(r.Context(), strings.TrimSpace(req.UserID))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	fb, err := h.svc.GenerateDailyFeedback(r.Context(), feedback.GenerateInput{
		UserID: userID,
		Date:   req.Date,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, feedbackEnvelope{
		Message: "Feedback generated and saved successfully",
		Data:    toFeedbackResponse(fb),
	})
}

// Get handles GET /daily-feedback?date=YYYY-MM-DD.
func (h *FeedbackHandler) Get(w http.ResponseWriter, r *http.Request) {
	fb, err := h.svc.GetDailyFeedback(r.Context(), feedback.GetInput{
		Date: r.URL.Query().Get("date"),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, feedbackEnvelope{Data: toFeedbackResponse(fb)})
}

func (h *FeedbackHandler) resolveUser(ctx context.Context, raw string) (uuid.UUID, error) {
	tokenUser, authed := ctxutil.UserIDFromCtx(ctx)

	if raw == "" {
		// Nil falls through to the service's required-field check.
		return tokenUser, nil
	}

	bodyUser, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError("userId", "must be a UUID")
	}
	if authed && bodyUser != tokenUser {
		return uuid.Nil, domain.ErrForbidden
	}
	return bodyUser, nil
}

func (h *FeedbackHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	code := feedback.ErrorCode(err)

	switch code {
	case feedback.CodeInvalidRequest:
		writeValidationError(w, err)
		return
	case feedback.CodeNoRecordsFound:
		writeError(w, http.StatusNotFound, code, feedback.ErrNoRecordsFound.Error())
		return
	case feedback.CodeDuplicateFeedback:
		writeError(w, http.StatusConflict, code, feedback.ErrDuplicateFeedback.Error())
		return
	case feedback.CodeInternal:
		handleError(h.log, w, r, err)
		return
	}

	// Completion and persistence failures. The message names the failure
	// kind only; details stay in the log.
	logInternal(h.log, r, err)
	writeError(w, http.StatusInternalServerError, code, failureMessage(err))
}

func failureMessage(err error) string {
	for _, kind := range []error{
		feedback.ErrCompletionTimeout,
		feedback.ErrCompletionInvocation,
		feedback.ErrEmptyCompletion,
		feedback.ErrMalformedCompletion,
		feedback.ErrPersistence,
	} {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	return "internal server error"
}

func toFeedbackResponse(fb *domain.DailyFeedback) feedbackResponse {
	keywords := fb.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return feedbackResponse{
		ID:          fb.ID.String(),
		Date:        fb.Date,
		Lesson:      fb.Lesson,
		Keywords:    keywords,
		Observation: fb.Observation,
		Insight:     fb.Insight,
		ActionFeedback: actionFeedbackResponse{
			WellDone:  fb.ActionFeedback.WellDone,
			ToImprove: fb.ActionFeedback.ToImprove,
		},
		FocusTomorrow:     fb.FocusTomorrow,
		FocusScore:        fb.FocusScore,
		SatisfactionScore: fb.SatisfactionScore,
		CreatedAt:         fb.CreatedAt,
	}
}
