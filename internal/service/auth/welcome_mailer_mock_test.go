package auth

import (
	"context"
	"sync"

	"github.com/heartmarshall/mindtrack-backend/internal/domain"
)

var _ welcomeMailer = &welcomeMailerMock{}

type welcomeMailerMock struct {
	SendWelcomeFunc func(ctx context.Context, u domain.User) error

	calls struct {
		SendWelcome []struct {
			Ctx context.Context
			U   domain.User
		}
	}
	lockSendWelcome sync.RWMutex
}

func (mock *welcomeMailerMock) SendWelcome(ctx context.Context, u domain.User) error {
	if mock.SendWelcomeFunc == nil {
		panic("welcomeMailerMock.SendWelcomeFunc: method is nil but welcomeMailer.SendWelcome was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   domain.User
	}{Ctx: ctx, U: u}
	mock.lockSendWelcome.Lock()
	mock.calls.SendWelcome = append(mock.calls.SendWelcome, callInfo)
	mock.lockSendWelcome.Unlock()
	return mock.SendWelcomeFunc(ctx, u)
}

func (mock *welcomeMailerMock) SendWelcomeCalls() []struct {
	Ctx context.Context
	U   domain.User
} {
	mock.lockSendWelcome.RLock()
	calls := mock.calls.SendWelcome
	mock.lockSendWelcome.RUnlock()
	return calls
}
