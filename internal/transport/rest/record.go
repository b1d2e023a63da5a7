package rest

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/today-record-backend/internal/domain"
	"github.com/heartmarshall/today-record-backend/internal/service/record"
)

// recordService defines the minimal interface needed by RecordHandler.
type recordService interface {
	CreateRecord(ctx context.Context, input record.CreateRecordInput) (*domain.Record, error)
	UpdateRecord(ctx context.Context, input record.UpdateRecordInput) (*domain.Record, error)
	DeleteRecord(ctx context.Context, input record.DeleteRecordInput) error
	ListRecords(ctx context.Context, input record.ListRecordsInput) ([]domain.Record, int, error)
	ListDays(ctx context.Context, input record.ListDaysInput) ([]domain.DaySummary, error)
}

// RecordHandler serves journal record endpoints.
type RecordHandler struct {
	svc recordService
	log *slog.Logger
}

// NewRecordHandler creates a RecordHandler.
func NewRecordHandler(svc recordService, logger *slog.Logger) *RecordHandler {
	return &RecordHandler{svc: svc, log: logger.With("handler", "record")}
}

type createRecordRequest struct {
	Kind    string `json:"kind"`
	Content string `json:"content"`
}

type updateRecordRequest struct {
	Kind    *string `json:"kind"`
	Content *string `json:"content"`
}

type recordResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Content   string    `json:"content"`
	LocalDate string    `json:"local_date"`
	CreatedAt time.Time `json:"created_at"`
}

type listRecordsResponse struct {
	Records    []recordResponse `json:"records"`
	TotalCount int              `json:"total_count"`
}

type daySummaryResponse struct {
	Date          string `json:"date"`
	InsightCount  int    `json:"insight"`
	FeedbackCount int    `json:"feedback"`
	Total         int    `json:"total"`
}

// Create handles POST /records.
func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRecordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeValidationError(w, err)
		return
	}

	rec, err := h.svc.CreateRecord(r.Context(), record.CreateRecordInput{
		Kind:    domain.RecordKind(req.Kind),
		Content: req.Content,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]recordResponse{"record": toRecordResponse(rec)})
}

// Update handles PATCH /records/{id}.
func (h *RecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	var req updateRecordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeValidationError(w, err)
		return
	}

	input := record.UpdateRecordInput{ID: id, Content: req.Content}
	if req.Kind != nil {
		kind := domain.RecordKind(*req.Kind)
		input.Kind = &kind
	}

	rec, err := h.svc.UpdateRecord(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]recordResponse{"record": toRecordResponse(rec)})
}

// Delete handles DELETE /records/{id}.
func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	if err := h.svc.DeleteRecord(r.Context(), record.DeleteRecordInput{ID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /records?from=&to=&kind=&limit=&offset=.
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, err := intParam(q, "limit")
	if err != nil {
		writeValidationError(w, err)
		return
	}
	offset, err := intParam(q, "offset")
	if err != nil {
		writeValidationError(w, err)
		return
	}

	input := record.ListRecordsInput{
		From:   optionalParam(q, "from"),
		To:     optionalParam(q, "to"),
		Limit:  limit,
		Offset: offset,
	}
	if kind := optionalParam(q, "kind"); kind != nil {
		k := domain.RecordKind(*kind)
		input.Kind = &k
	}

	records, total, err := h.svc.ListRecords(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := listRecordsResponse{Records: make([]recordResponse, 0, len(records)), TotalCount: total}
	for i := range records {
		resp.Records = append(resp.Records, toRecordResponse(&records[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Days handles GET /records/days?from=&to=.
func (h *RecordHandler) Days(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	days, err := h.svc.ListDays(r.Context(), record.ListDaysInput{
		From: q.Get("from"),
		To:   q.Get("to"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]daySummaryResponse, 0, len(days))
	for _, d := range days {
		resp = append(resp, daySummaryResponse{
			Date:          d.Date,
			InsightCount:  d.InsightCount,
			FeedbackCount: d.FeedbackCount,
			Total:         d.Total(),
		})
	}
	writeJSON(w, http.StatusOK, map[string][]daySummaryResponse{"days": resp})
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a UUID")
	}
	return id, nil
}

func optionalParam(q url.Values, name string) *string {
	if !q.Has(name) {
		return nil
	}
	v := q.Get(name)
	return &v
}

func intParam(q url.Values, name string) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}

func toRecordResponse(rec *domain.Record) recordResponse {
	return recordResponse{
		ID:        rec.ID.String(),
		Kind:      rec.Kind.String(),
		Content:   rec.Content,
		LocalDate: rec.LocalDate,
		CreatedAt: rec.CreatedAt,
	}
}
