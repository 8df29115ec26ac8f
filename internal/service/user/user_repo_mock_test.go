package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/mindtrack-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateDisplayNameFunc func(ctx context.Context, id uuid.UUID, displayName string) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateDisplayName []struct {
			Ctx         context.Context
			ID          uuid.UUID
			DisplayName string
		}
	}
	lockGetByID           sync.RWMutex
	lockUpdateDisplayName sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateDisplayName(ctx context.Context, id uuid.UUID, displayName string) (*domain.User, error) {
	if mock.UpdateDisplayNameFunc == nil {
		panic("userRepoMock.UpdateDisplayNameFunc: method is nil but userRepo.UpdateDisplayName was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ID          uuid.UUID
		DisplayName string
	}{Ctx: ctx, ID: id, DisplayName: displayName}
	mock.lockUpdateDisplayName.Lock()
	mock.calls.UpdateDisplayName = append(mock.calls.UpdateDisplayName, callInfo)
	mock.lockUpdateDisplayName.Unlock()
	return mock.UpdateDisplayNameFunc(ctx, id, displayName)
}

func (mock *userRepoMock) UpdateDisplayNameCalls() []struct {
	Ctx         context.Context
	ID          uuid.UUID
	DisplayName string
} {
	mock.lockUpdateDisplayName.RLock()
	calls := mock.calls.UpdateDisplayName
	mock.lockUpdateDisplayName.RUnlock()
	return calls
}
