package record

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/today-record-backend/internal/domain"
)

var _ recordRepo = &recordRepoMock{}

type recordRepoMock struct {
	CreateFunc     func(ctx context.Context, rec *domain.Record) (*domain.Record, error)
	UpdateFunc     func(ctx context.Context, userID, id uuid.UUID, kind *domain.RecordKind, content *string) (*domain.Record, error)
	DeleteFunc     func(ctx context.Context, userID, id uuid.UUID) error
	ListFunc       func(ctx context.Context, userID uuid.UUID, filter domain.RecordFilter) ([]domain.Record, int, error)
	CountByDayFunc func(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.DaySummary, error)

	calls struct {
		Create []struct {
			Rec *domain.Record
		}
		Update []struct {
			UserID  uuid.UUID
			ID      uuid.UUID
			Kind    *domain.RecordKind
			Content *string
		}
		Delete []struct {
			UserID uuid.UUID
			ID     uuid.UUID
		}
		List []struct {
			UserID uuid.UUID
			Filter domain.RecordFilter
		}
		CountByDay []struct {
			UserID uuid.UUID
			From   string
			To     string
		}
	}
	lockCreate     sync.RWMutex
	lockUpdate     sync.RWMutex
	lockDelete     sync.RWMutex
	lockList       sync.RWMutex
	lockCountByDay sync.RWMutex
}

func (mock *recordRepoMock) Create(ctx context.Context, rec *domain.Record) (*domain.Record, error) {
	if mock.CreateFunc == nil {
		panic("recordRepoMock.CreateFunc: method is nil but recordRepo.Create was just called")
	}
	callInfo := struct{ Rec *domain.Record }{Rec: rec}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *recordRepoMock) CreateCalls() []struct{ Rec *domain.Record } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *recordRepoMock) Update(ctx context.Context, userID, id uuid.UUID, kind *domain.RecordKind, content *string) (*domain.Record, error) {
	if mock.UpdateFunc == nil {
		panic("recordRepoMock.UpdateFunc: method is nil but recordRepo.Update was just called")
	}
	callInfo := struct {
		UserID  uuid.UUID
		ID      uuid.UUID
		Kind    *domain.RecordKind
		Content *string
	}{UserID: userID, ID: id, Kind: kind, Content: content}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, id, kind, content)
}

func (mock *recordRepoMock) UpdateCalls() []struct {
	UserID  uuid.UUID
	ID      uuid.UUID
	Kind    *domain.RecordKind
	Content *string
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *recordRepoMock) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("recordRepoMock.DeleteFunc: method is nil but recordRepo.Delete was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		ID     uuid.UUID
	}{UserID: userID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *recordRepoMock) DeleteCalls() []struct {
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *recordRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.RecordFilter) ([]domain.Record, int, error) {
	if mock.ListFunc == nil {
		panic("recordRepoMock.ListFunc: method is nil but recordRepo.List was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Filter domain.RecordFilter
	}{UserID: userID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *recordRepoMock) ListCalls() []struct {
	UserID uuid.UUID
	Filter domain.RecordFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *recordRepoMock) CountByDay(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.DaySummary, error) {
	if mock.CountByDayFunc == nil {
		panic("recordRepoMock.CountByDayFunc: method is nil but recordRepo.CountByDay was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		From   string
		To     string
	}{UserID: userID, From: from, To: to}
	mock.lockCountByDay.Lock()
	mock.calls.CountByDay = append(mock.calls.CountByDay, callInfo)
	mock.lockCountByDay.Unlock()
	return mock.CountByDayFunc(ctx, userID, from, to)
}

func (mock *recordRepoMock) CountByDayCalls() []struct {
	UserID uuid.UUID
	From   string
	To     string
} {
	mock.lockCountByDay.RLock()
	calls := mock.calls.CountByDay
	mock.lockCountByDay.RUnlock()
	return calls
}
