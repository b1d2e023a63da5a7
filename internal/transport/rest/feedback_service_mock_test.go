package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/today-record-backend/internal/domain"
	"github.com/heartmarshall/today-record-backend/internal/service/feedback"
)

var _ feedbackService = &feedbackServiceMock{}

type feedbackServiceMock struct {
	GenerateDailyFeedbackFunc func(ctx context.Context, input feedback.GenerateInput) (*domain.DailyFeedback, error)
	GetDailyFeedbackFunc      func(ctx context.Context, input feedback.GetInput) (*domain.DailyFeedback, error)

	calls struct {
		GenerateDailyFeedback []struct {
			Ctx   context.Context
			Input feedback.GenerateInput
		}
		GetDailyFeedback []struct {
			Ctx   context.Context
			Input feedback.GetInput
		}
	}
	lockGenerateDailyFeedback sync.RWMutex
	lockGetDailyFeedback      sync.RWMutex
}

func (mock *feedbackServiceMock) GenerateDailyFeedback(ctx context.Context, input feedback.GenerateInput) (*domain.DailyFeedback, error) {
	if mock.GenerateDailyFeedbackFunc == nil {
		panic("feedbackServiceMock.GenerateDailyFeedbackFunc: method is nil but feedbackService.GenerateDailyFeedback was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input feedback.GenerateInput
	}{Ctx: ctx, Input: input}
	mock.lockGenerateDailyFeedback.Lock()
	mock.calls.GenerateDailyFeedback = append(mock.calls.GenerateDailyFeedback, callInfo)
	mock.lockGenerateDailyFeedback.Unlock()
	return mock.GenerateDailyFeedbackFunc(ctx, input)
}

func (mock *feedbackServiceMock) GenerateDailyFeedbackCalls() []struct {
	Ctx   context.Context
	Input feedback.GenerateInput
} {
	mock.lockGenerateDailyFeedback.RLock()
	calls := mock.calls.GenerateDailyFeedback
	mock.lockGenerateDailyFeedback.RUnlock()
	return calls
}

func (mock *feedbackServiceMock) GetDailyFeedback(ctx context.Context, input feedback.GetInput) (*domain.DailyFeedback, error) {
	if mock.GetDailyFeedbackFunc == nil {
		panic("feedbackServiceMock.GetDailyFeedbackFunc: method is nil but feedbackService.GetDailyFeedback was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input feedback.GetInput
	}{Ctx: ctx, Input: input}
	mock.lockGetDailyFeedback.Lock()
	mock.calls.GetDailyFeedback = append(mock.calls.GetDailyFeedback, callInfo)
	mock.lockGetDailyFeedback.Unlock()
	return mock.GetDailyFeedbackFunc(ctx, input)
}

func (mock *feedbackServiceMock) GetDailyFeedbackCalls() []struct {
	Ctx   context.Context
	Input feedback.GetInput
} {
	mock.lockGetDailyFeedback.RLock()
	calls := mock.calls.GetDailyFeedback
	mock.lockGetDailyFeedback.RUnlock()
	return calls
}
