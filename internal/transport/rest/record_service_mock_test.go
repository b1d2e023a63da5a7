package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/today-record-backend/internal/domain"
	"github.com/heartmarshall/today-record-backend/internal/service/record"
)

var _ recordService = &recordServiceMock{}

type recordServiceMock struct {
	CreateRecordFunc func(ctx context.Context, input record.CreateRecordInput) (*domain.Record, error)
	UpdateRecordFunc func(ctx context.Context, input record.UpdateRecordInput) (*domain.Record, error)
	DeleteRecordFunc func(ctx context.Context, input record.DeleteRecordInput) error
	ListRecordsFunc  func(ctx context.Context, input record.ListRecordsInput) ([]domain.Record, int, error)
	ListDaysFunc     func(ctx context.Context, input record.ListDaysInput) ([]domain.DaySummary, error)

	calls struct {
		CreateRecord []struct{ Input record.CreateRecordInput }
		UpdateRecord []struct{ Input record.UpdateRecordInput }
		DeleteRecord []struct{ Input record.DeleteRecordInput }
		ListRecords  []struct{ Input record.ListRecordsInput }
		ListDays     []struct{ Input record.ListDaysInput }
	}
	lockCreateRecord sync.RWMutex
	lockUpdateRecord sync.RWMutex
	lockDeleteRecord sync.RWMutex
	lockListRecords  sync.RWMutex
	lockListDays     sync.RWMutex
}

func (mock *recordServiceMock) CreateRecord(ctx context.Context, input record.CreateRecordInput) (*domain.Record, error) {
	if mock.CreateRecordFunc == nil {
		panic("recordServiceMock.CreateRecordFunc: method is nil but recordService.CreateRecord was just called")
	}
	mock.lockCreateRecord.Lock()
	mock.calls.CreateRecord = append(mock.calls.CreateRecord, struct{ Input record.CreateRecordInput }{Input: input})
	mock.lockCreateRecord.Unlock()
	return mock.CreateRecordFunc(ctx, input)
}

func (mock *recordServiceMock) CreateRecordCalls() []struct{ Input record.CreateRecordInput } {
	mock.lockCreateRecord.RLock()
	calls := mock.calls.CreateRecord
	mock.lockCreateRecord.RUnlock()
	return calls
}

func (mock *recordServiceMock) UpdateRecord(ctx context.Context, input record.UpdateRecordInput) (*domain.Record, error) {
	if mock.UpdateRecordFunc == nil {
		panic("recordServiceMock.UpdateRecordFunc: method is nil but recordService.UpdateRecord was just called")
	}
	mock.lockUpdateRecord.Lock()
	mock.calls.UpdateRecord = append(mock.calls.UpdateRecord, struct{ Input record.UpdateRecordInput }{Input: input})
	mock.lockUpdateRecord.Unlock()
	return mock.UpdateRecordFunc(ctx, input)
}

func (mock *recordServiceMock) UpdateRecordCalls() []struct{ Input record.UpdateRecordInput } {
	mock.lockUpdateRecord.RLock()
	calls := mock.calls.UpdateRecord
	mock.lockUpdateRecord.RUnlock()
	return calls
}

func (mock *recordServiceMock) DeleteRecord(ctx context.Context, input record.DeleteRecordInput) error {
	if mock.DeleteRecordFunc == nil {
		panic("recordServiceMock.DeleteRecordFunc: method is nil but recordService.DeleteRecord was just called")
	}
	mock.lockDeleteRecord.Lock()
	mock.calls.DeleteRecord = append(mock.calls.DeleteRecord, struct{ Input record.DeleteRecordInput }{Input: input})
	mock.lockDeleteRecord.Unlock()
	return mock.DeleteRecordFunc(ctx, input)
}

func (mock *recordServiceMock) DeleteRecordCalls() []struct{ Input record.DeleteRecordInput } {
	mock.lockDeleteRecord.RLock()
	calls := mock.calls.DeleteRecord
	mock.lockDeleteRecord.RUnlock()
	return calls
}

func (mock *recordServiceMock) ListRecords(ctx context.Context, input record.ListRecordsInput) ([]domain.Record, int, error) {
	if mock.ListRecordsFunc == nil {
		panic("recordServiceMock.ListRecordsFunc: method is nil but recordService.ListRecords was just called")
	}
	mock.lockListRecords.Lock()
	mock.calls.ListRecords = append(mock.calls.ListRecords, struct{ Input record.ListRecordsInput }{Input: input})
	mock.lockListRecords.Unlock()
	return mock.ListRecordsFunc(ctx, input)
}

func (mock *recordServiceMock) ListRecordsCalls() []struct{ Input record.ListRecordsInput } {
	mock.lockListRecords.RLock()
	calls := mock.calls.ListRecords
	mock.lockListRecords.RUnlock()
	return calls
}

func (mock *recordServiceMock) ListDays(ctx context.Context, input record.ListDaysInput) ([]domain.DaySummary, error) {
	if mock.ListDaysFunc == nil {
		panic("recordServiceMock.ListDaysFunc: method is nil but recordService.ListDays was just called")
	}
	mock.lockListDays.Lock()
	mock.calls.ListDays = append(mock.calls.ListDays, struct{ Input record.ListDaysInput }{Input: input})
	mock.lockListDays.Unlock()
	return mock.ListDaysFunc(ctx, input)
}

func (mock *recordServiceMock) ListDaysCalls() []struct{ Input record.ListDaysInput } {
	mock.lockListDays.RLock()
	calls := mock.calls.ListDays
	mock.lockListDays.RUnlock()
	return calls
}
