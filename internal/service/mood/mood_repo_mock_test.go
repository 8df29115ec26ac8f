package mood

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/mindtrack-backend/internal/domain"
)

var _ moodRepo = &moodRepoMock{}

type moodRepoMock struct {
	CreateFunc              func(ctx context.Context, e domain.MoodEntry) (*domain.MoodEntry, error)
	GetByIdempotencyKeyFunc func(ctx context.Context, userID uuid.UUID, key string) (*domain.MoodEntry, error)
	ListChronologicalFunc   func(ctx context.Context, userID uuid.UUID) ([]domain.MoodEntry, error)
	ListFunc                func(ctx context.Context, userID uuid.UUID, filter domain.MoodEntryFilter) ([]domain.MoodEntry, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   domain.MoodEntry
		}
		GetByIdempotencyKey []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Key    string
		}
		ListChronological []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter domain.MoodEntryFilter
		}
	}
	lockCreate              sync.RWMutex
	lockGetByIdempotencyKey sync.RWMutex
	lockListChronological   sync.RWMutex
	lockList                sync.RWMutex
}

func (mock *moodRepoMock) Create(ctx context.Context, e domain.MoodEntry) (*domain.MoodEntry, error) {
	if mock.CreateFunc == nil {
		panic("moodRepoMock.CreateFunc: method is nil but moodRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.MoodEntry
	}{Ctx: ctx, E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *moodRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   domain.MoodEntry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *moodRepoMock) GetByIdempotencyKey(ctx context.Context, userID uuid.UUID, key string) (*domain.MoodEntry, error) {
	if mock.GetByIdempotencyKeyFunc == nil {
		panic("moodRepoMock.GetByIdempotencyKeyFunc: method is nil but moodRepo.GetByIdempotencyKey was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Key    string
	}{Ctx: ctx, UserID: userID, Key: key}
	mock.lockGetByIdempotencyKey.Lock()
	mock.calls.GetByIdempotencyKey = append(mock.calls.GetByIdempotencyKey, callInfo)
	mock.lockGetByIdempotencyKey.Unlock()
	return mock.GetByIdempotencyKeyFunc(ctx, userID, key)
}

func (mock *moodRepoMock) GetByIdempotencyKeyCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Key    string
} {
	mock.lockGetByIdempotencyKey.RLock()
	calls := mock.calls.GetByIdempotencyKey
	mock.lockGetByIdempotencyKey.RUnlock()
	return calls
}

func (mock *moodRepoMock) ListChronological(ctx context.Context, userID uuid.UUID) ([]domain.MoodEntry, error) {
	if mock.ListChronologicalFunc == nil {
		panic("moodRepoMock.ListChronologicalFunc: method is nil but moodRepo.ListChronological was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListChronological.Lock()
	mock.calls.ListChronological = append(mock.calls.ListChronological, callInfo)
	mock.lockListChronological.Unlock()
	return mock.ListChronologicalFunc(ctx, userID)
}

func (mock *moodRepoMock) ListChronologicalCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListChronological.RLock()
	calls := mock.calls.ListChronological
	mock.lockListChronological.RUnlock()
	return calls
}

func (mock *moodRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.MoodEntryFilter) ([]domain.MoodEntry, error) {
	if mock.ListFunc == nil {
		panic("moodRepoMock.ListFunc: method is nil but moodRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.MoodEntryFilter
	}{Ctx: ctx, UserID: userID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *moodRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Filter domain.MoodEntryFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
