// Package record implements the journal record repository using PostgreSQL.
// Every query is scoped to the owning user.
package record

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/today-record-backend/internal/adapter/postgres"
	"github.com/heartmarshall/today-record-backend/internal/domain"
)

const table = "records"

var columns = []string{"id", "user_id", "kind", "content", "created_at", "local_date"}

// Repo provides record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new record repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Kind      string    `db:"kind"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
	LocalDate time.Time `db:"local_date"`
}

func (r row) toDomain() domain.Record {
	return domain.Record{
		ID:        r.ID,
		UserID:    r.UserID,
		Kind:      domain.RecordKind(r.Kind),
		Content:   r.Content,
		CreatedAt: r.CreatedAt.UTC(),
		LocalDate: r.LocalDate.Format(domain.DateLayout),
	}
}

type dayRow struct {
	LocalDate     time.Time `db:"local_date"`
	InsightCount  int       `db:"insight_count"`
	FeedbackCount int       `db:"feedback_count"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByUserAndDate returns the user's records for one local date, oldest first.
func (r *Repo) ListByUserAndDate(ctx context.Context, userID uuid.UUID, date string) ([]domain.Record, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID, "local_date": date}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list records query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list records for %s: %w", date, err)
	}

	return toDomainRecords(rows), nil
}

// GetByID returns a record owned by userID.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Record, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get record query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "record", id)
	}

	rec := rw.toDomain()
	return &rec, nil
}

// List returns a page of the user's records, newest first, with the total
// number of records matching the filter.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.RecordFilter) ([]domain.Record, int, error) {
	where := sq.And{sq.Eq{"user_id": userID}}
	if filter.From != nil {
		where = append(where, sq.GtOrEq{"local_date": *filter.From})
	}
	if filter.To != nil {
		where = append(where, sq.LtOrEq{"local_date": *filter.To})
	}
	if filter.Kind != nil {
		where = append(where, sq.Eq{"kind": string(*filter.Kind)})
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder.Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count records query: %w", err)
	}

	var total int
	if err := pgxscan.Get(ctx, q, &total, countSQL, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count records: %w", err)
	}

	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list records query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list records: %w", err)
	}

	return toDomainRecords(rows), total, nil
}

// CountByDay returns per-day record counts between from and to inclusive,
// ordered by date. Days without records are omitted.
func (r *Repo) CountByDay(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.DaySummary, error) {
	query, args, err := postgres.Builder.
		Select(
			"local_date",
			"count(*) FILTER (WHERE kind = 'insight') AS insight_count",
			"count(*) FILTER (WHERE kind = 'feedback') AS feedback_count",
		).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"local_date": from}).
		Where(sq.LtOrEq{"local_date": to}).
		GroupBy("local_date").
		OrderBy("local_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count by day query: %w", err)
	}

	var rows []dayRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("count records by day: %w", err)
	}

	days := make([]domain.DaySummary, len(rows))
	for i, d := range rows {
		days[i] = domain.DaySummary{
			Date:          d.LocalDate.Format(domain.DateLayout),
			InsightCount:  d.InsightCount,
			FeedbackCount: d.FeedbackCount,
		}
	}

	return days, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a record and returns it as stored. A zero ID is assigned
// by the database.
func (r *Repo) Create(ctx context.Context, rec *domain.Record) (*domain.Record, error) {
	cols := []string{"user_id", "kind", "content", "created_at", "local_date"}
	vals := []any{rec.UserID, string(rec.Kind), rec.Content, rec.CreatedAt, rec.LocalDate}
	if rec.ID != uuid.Nil {
		cols = append([]string{"id"}, cols...)
		vals = append([]any{rec.ID}, vals...)
	}

	query, args, err := postgres.Builder.
		Insert(table).
		Columns(cols...).
		Values(vals...).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert record query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "record", rec.ID)
	}

	created := rw.toDomain()
	return &created, nil
}

// Update changes the kind and/or content of a record. Nil fields are left
// untouched; created_at and local_date are never modified.
// Returns domain.ErrNotFound if the record does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, kind *domain.RecordKind, content *string) (*domain.Record, error) {
	set := map[string]any{}
	if kind != nil {
		set["kind"] = string(*kind)
	}
	if content != nil {
		set["content"] = *content
	}
	if len(set) == 0 {
		return r.GetByID(ctx, userID, id)
	}

	query, args, err := postgres.Builder.
		Update(table).
		SetMap(set).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update record query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "record", id)
	}

	updated := rw.toDomain()
	return &updated, nil
}

// Delete removes a record. Returns domain.ErrNotFound if the record does
// not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query, args, err := postgres.Builder.
		Delete(table).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete record query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "record", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("record %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func toDomainRecords(rows []row) []domain.Record {
	records := make([]domain.Record, len(rows))
	for i, rw := range rows {
		records[i] = rw.toDomain()
	}
	return records
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}
