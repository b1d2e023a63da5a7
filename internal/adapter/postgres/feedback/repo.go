// Package feedback implements the daily feedback repository using PostgreSQL.
package feedback

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

const table = "daily_feedback"

var columns = []string{
	"id", "user_id", "entry_date", "lesson", "keywords", "observation", "insight",
	"action_well_done", "action_to_improve", "focus_tomorrow",
	"focus_score", "satisfaction_score", "created_at",
}

// Repo provides daily feedback persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
	tx *postgres.TxManager
}

// New creates a new feedback repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db, tx: postgres.NewTxManager(db)}
}

type row struct {
	ID                uuid.UUID `db:"id"`
	UserID            uuid.UUID `db:"user_id"`
	EntryDate         time.Time `db:"entry_date"`
	Lesson            string    `db:"lesson"`
	Keywords          []string  `db:"keywords"`
	Observation       string    `db:"observation"`
	Insight           string    `db:"insight"`
	ActionWellDone    string    `db:"action_well_done"`
	ActionToImprove   string    `db:"action_to_improve"`
	FocusTomorrow     string    `db:"focus_tomorrow"`
	FocusScore        int       `db:"focus_score"`
	SatisfactionScore int       `db:"satisfaction_score"`
	CreatedAt         time.Time `db:"created_at"`
}

func (r row) toDomain() domain.DailyFeedback {
	return domain.DailyFeedback{
		ID:          r.ID,
		UserID:      r.UserID,
		Date:        r.EntryDate.Format(domain.DateLayout),
		Lesson:      r.Lesson,
		Keywords:    r.Keywords,
		Observation: r.Observation,
		Insight:     r.Insight,
		ActionFeedback: domain.ActionFeedback{
			WellDone:  r.ActionWellDone,
			ToImprove: r.ActionToImprove,
		},
		FocusTomorrow:     r.FocusTomorrow,
		FocusScore:        r.FocusScore,
		SatisfactionScore: r.SatisfactionScore,
		CreatedAt:         r.CreatedAt.UTC(),
	}
}

func key(userID uuid.UUID, date string) string {
	return userID.String() + "/" + date
}

// GetLatest returns the newest feedback for (userID, date).
// Returns domain.ErrNotFound if none exists.
func (r *Repo) GetLatest(ctx context.Context, userID uuid.UUID, date string) (*domain.DailyFeedback, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID, "entry_date": date}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get feedback query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "daily_feedback", key(userID, date))
	}

	fb := rw.toDomain()
	return &fb, nil
}

// Exists reports whether any feedback is stored for (userID, date).
func (r *Repo) Exists(ctx context.Context, userID uuid.UUID, date string) (bool, error) {
	query, args, err := postgres.Builder.
		Select("1").
		Prefix("SELECT EXISTS (").
		From(table).
		Where(sq.Eq{"user_id": userID, "entry_date": date}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build feedback exists query: %w", err)
	}

	var exists bool
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &exists, query, args...); err != nil {
		return false, postgres.MapError(err, "daily_feedback", key(userID, date))
	}

	return exists, nil
}

// Create stores a feedback row and returns it as persisted.
//
// With exclusive set, the insert holds a transaction-scoped advisory lock on
// (user, date) and fails with domain.ErrAlreadyExists if a row is already
// present, so concurrent generations for the same day yield one row.
func (r *Repo) Create(ctx context.Context, fb *domain.DailyFeedback, exclusive bool) (*domain.DailyFeedback, error) {
	if !exclusive {
		return r.insert(ctx, fb)
	}

	var created *domain.DailyFeedback
	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.db)
		k := key(fb.UserID, fb.Date)

		if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, k); err != nil {
			return postgres.MapError(err, "daily_feedback", k)
		}

		exists, err := r.Exists(ctx, fb.UserID, fb.Date)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("daily_feedback %s: %w", k, domain.ErrAlreadyExists)
		}

		created, err = r.insert(ctx, fb)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (r *Repo) insert(ctx context.Context, fb *domain.DailyFeedback) (*domain.DailyFeedback, error) {
	cols := []string{
		"user_id", "entry_date", "lesson", "keywords", "observation", "insight",
		"action_well_done", "action_to_improve", "focus_tomorrow",
		"focus_score", "satisfaction_score",
	}
	vals := []any{
		fb.UserID, fb.Date, fb.Lesson, fb.Keywords, fb.Observation, fb.Insight,
		fb.ActionFeedback.WellDone, fb.ActionFeedback.ToImprove, fb.FocusTomorrow,
		fb.FocusScore, fb.SatisfactionScore,
	}
	if !fb.CreatedAt.IsZero() {
		cols = append(cols, "created_at")
		vals = append(vals, fb.CreatedAt)
	}

	query, args, err := postgres.Builder.
		Insert(table).
		Columns(cols...).
		Values(vals...).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert feedback query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "daily_feedback", key(fb.UserID, fb.Date))
	}

	created := rw.toDomain()
	return &created, nil
}
