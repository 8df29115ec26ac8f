package admin

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ adminReader = &adminReaderMock{}

type adminReaderMock struct {
	IsAdminFunc func(ctx context.Context, id uuid.UUID) (bool, error)

	calls struct {
		IsAdmin []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockIsAdmin sync.RWMutex
}

func (mock *adminReaderMock) IsAdmin(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.IsAdminFunc == nil {
		panic("adminReaderMock.IsAdminFunc: method is nil but adminReader.IsAdmin was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockIsAdmin.Lock()
	mock.calls.IsAdmin = append(mock.calls.IsAdmin, callInfo)
	mock.lockIsAdmin.Unlock()
	return mock.IsAdminFunc(ctx, id)
}

func (mock *adminReaderMock) IsAdminCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockIsAdmin.RLock()
	calls := mock.calls.IsAdmin
	mock.lockIsAdmin.RUnlock()
	return calls
}

var _ userCounter = &userCounterMock{}

type userCounterMock struct {
	CountFunc func(ctx context.Context) (int, error)

	calls struct {
		Count []struct {
			Ctx context.Context
		}
	}
	lockCount sync.RWMutex
}

func (mock *userCounterMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("userCounterMock.CountFunc: method is nil but userCounter.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *userCounterMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

var _ moodCounter = &moodCounterMock{}

type moodCounterMock struct {
	CountByCategoryFunc func(ctx context.Context) (map[string]int, error)

	calls struct {
		CountByCategory []struct {
			Ctx context.Context
		}
	}
	lockCountByCategory sync.RWMutex
}

func (mock *moodCounterMock) CountByCategory(ctx context.Context) (map[string]int, error) {
	if mock.CountByCategoryFunc == nil {
		panic("moodCounterMock.CountByCategoryFunc: method is nil but moodCounter.CountByCategory was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCountByCategory.Lock()
	mock.calls.CountByCategory = append(mock.calls.CountByCategory, callInfo)
	mock.lockCountByCategory.Unlock()
	return mock.CountByCategoryFunc(ctx)
}

func (mock *moodCounterMock) CountByCategoryCalls() []struct {
	Ctx context.Context
} {
	mock.lockCountByCategory.RLock()
	calls := mock.calls.CountByCategory
	mock.lockCountByCategory.RUnlock()
	return calls
}
