package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/mindtrack-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc                func(ctx context.Context, u domain.User, passwordHash string) (*domain.User, error)
	GetByIDFunc               func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetCredentialsByEmailFunc func(ctx context.Context, email string) (*domain.UserCredentials, error)

	calls struct {
		Create []struct {
			Ctx          context.Context
			U            domain.User
			PasswordHash string
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetCredentialsByEmail []struct {
			Ctx   context.Context
			Email string
		}
	}
	lockCreate                sync.RWMutex
	lockGetByID               sync.RWMutex
	lockGetCredentialsByEmail sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, u domain.User, passwordHash string) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		U            domain.User
		PasswordHash string
	}{Ctx: ctx, U: u, PasswordHash: passwordHash}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, u, passwordHash)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx          context.Context
	U            domain.User
	PasswordHash string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *userRepoMock) GetCredentialsByEmail(ctx context.Context, email string) (*domain.UserCredentials, error) {
	if mock.GetCredentialsByEmailFunc == nil {
		panic("userRepoMock.GetCredentialsByEmailFunc: method is nil but userRepo.GetCredentialsByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetCredentialsByEmail.Lock()
	mock.calls.GetCredentialsByEmail = append(mock.calls.GetCredentialsByEmail, callInfo)
	mock.lockGetCredentialsByEmail.Unlock()
	return mock.GetCredentialsByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetCredentialsByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetCredentialsByEmail.RLock()
	calls := mock.calls.GetCredentialsByEmail
	mock.lockGetCredentialsByEmail.RUnlock()
	return calls
}
