package feedback

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/today-record-backend/internal/domain"
)

var (
	_ recordRepo   = &recordRepoMock{}
	_ feedbackRepo = &feedbackRepoMock{}
	_ completer    = &completerMock{}
)

// ---------------------------------------------------------------------------
// recordRepoMock
// ---------------------------------------------------------------------------

type recordRepoMock struct {
	ListByUserAndDateFunc func(ctx context.Context, userID uuid.UUID, date string) ([]domain.Record, error)

	calls struct {
		ListByUserAndDate []struct {
			UserID uuid.UUID
			Date   string
		}
	}
	lockListByUserAndDate sync.RWMutex
}

func (mock *recordRepoMock) ListByUserAndDate(ctx context.Context, userID uuid.UUID, date string) ([]domain.Record, error) {
	if mock.ListByUserAndDateFunc == nil {
		panic("recordRepoMock.ListByUserAndDateFunc: method is nil but recordRepo.ListByUserAndDate was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Date   string
	}{UserID: userID, Date: date}
	mock.lockListByUserAndDate.Lock()
	mock.calls.ListByUserAndDate = append(mock.calls.ListByUserAndDate, callInfo)
	mock.lockListByUserAndDate.Unlock()
	return mock.ListByUserAndDateFunc(ctx, userID, date)
}

func (mock *recordRepoMock) ListByUserAndDateCalls() []struct {
	UserID uuid.UUID
	Date   string
} {
	mock.lockListByUserAndDate.RLock()
	calls := mock.calls.ListByUserAndDate
	mock.lockListByUserAndDate.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// feedbackRepoMock
// ---------------------------------------------------------------------------

type feedbackRepoMock struct {
	GetLatestFunc func(ctx context.Context, userID uuid.UUID, date string) (*domain.DailyFeedback, error)
	ExistsFunc    func(ctx context.Context, userID uuid.UUID, date string) (bool, error)
	CreateFunc    func(ctx context.Context, fb *domain.DailyFeedback, exclusive bool) (*domain.DailyFeedback, error)

	calls struct {
		GetLatest []struct {
			UserID uuid.UUID
			Date   string
		}
		Exists []struct {
			UserID uuid.UUID
			Date   string
		}
		Create []struct {
			Fb        *domain.DailyFeedback
			Exclusive bool
		}
	}
	lockGetLatest sync.RWMutex
	lockExists    sync.RWMutex
	lockCreate    sync.RWMutex
}

func (mock *feedbackRepoMock) GetLatest(ctx context.Context, userID uuid.UUID, date string) (*domain.DailyFeedback, error) {
	if mock.GetLatestFunc == nil {
		panic("feedbackRepoMock.GetLatestFunc: method is nil but feedbackRepo.GetLatest was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Date   string
	}{UserID: userID, Date: date}
	mock.lockGetLatest.Lock()
	mock.calls.GetLatest = append(mock.calls.GetLatest, callInfo)
	mock.lockGetLatest.Unlock()
	return mock.GetLatestFunc(ctx, userID, date)
}

func (mock *feedbackRepoMock) GetLatestCalls() []struct {
	UserID uuid.UUID
	Date   string
} {
	mock.lockGetLatest.RLock()
	calls := mock.calls.GetLatest
	mock.lockGetLatest.RUnlock()
	return calls
}

func (mock *feedbackRepoMock) Exists(ctx context.Context, userID uuid.UUID, date string) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("feedbackRepoMock.ExistsFunc: method is nil but feedbackRepo.Exists was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Date   string
	}{UserID: userID, Date: date}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, userID, date)
}

func (mock *feedbackRepoMock) ExistsCalls() []struct {
	UserID uuid.UUID
	Date   string
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *feedbackRepoMock) Create(ctx context.Context, fb *domain.DailyFeedback, exclusive bool) (*domain.DailyFeedback, error) {
	if mock.CreateFunc == nil {
		panic("feedbackRepoMock.CreateFunc: method is nil but feedbackRepo.Create was just called")
	}
	callInfo := struct {
		Fb        *domain.DailyFeedback
		Exclusive bool
	}{Fb: fb, Exclusive: exclusive}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, fb, exclusive)
}

func (mock *feedbackRepoMock) CreateCalls() []struct {
	Fb        *domain.DailyFeedback
	Exclusive bool
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// completerMock
// ---------------------------------------------------------------------------

type completerMock struct {
	CompleteFunc func(ctx context.Context, systemPrompt, userPrompt string, schema domain.OutputSchema) (string, error)

	calls struct {
		Complete []struct {
			SystemPrompt string
			UserPrompt   string
			Schema       domain.OutputSchema
		}
	}
	lockComplete sync.RWMutex
}

func (mock *completerMock) Complete(ctx context.Context, systemPrompt, userPrompt string, schema domain.OutputSchema) (string, error) {
	if mock.CompleteFunc == nil {
		panic("completerMock.CompleteFunc: method is nil but completer.Complete was just called")
	}
	callInfo := struct {
		SystemPrompt string
		UserPrompt   string
		Schema       domain.OutputSchema
	}{SystemPrompt: systemPrompt, UserPrompt: userPrompt, Schema: schema}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, systemPrompt, userPrompt, schema)
}

func (mock *completerMock) CompleteCalls() []struct {
	SystemPrompt string
	UserPrompt   string
	Schema       domain.OutputSchema
} {
	mock.lockComplete.RLock()
	calls := mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}
