package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/mindtrack-backend/internal/domain"
	"github.com/heartmarshall/mindtrack-backend/internal/service/auth"
	"github.com/heartmarshall/mindtrack-backend/internal/service/goal"
	"github.com/heartmarshall/mindtrack-backend/internal/service/mood"
	"github.com/heartmarshall/mindtrack-backend/internal/service/user"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	RegisterFunc func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	LoginFunc    func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	RefreshFunc  func(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
	LogoutFunc   func(ctx context.Context) error

	calls struct {
		Register []struct {
			Ctx   context.Context
			Input auth.RegisterInput
		}
		Login []struct {
			Ctx   context.Context
			Input auth.LoginInput
		}
		Refresh []struct {
			Ctx   context.Context
			Input auth.RefreshInput
		}
		Logout []struct {
			Ctx context.Context
		}
	}
	lockRegister sync.RWMutex
	lockLogin    sync.RWMutex
	lockRefresh  sync.RWMutex
	lockLogout   sync.RWMutex
}

func (mock *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	if mock.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc: method is nil but authService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.RegisterInput
	}{Ctx: ctx, Input: input}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *authServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input auth.RegisterInput
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.LoginInput
	}{Ctx: ctx, Input: input}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *authServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input auth.LoginInput
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *authServiceMock) Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error) {
	if mock.RefreshFunc == nil {
		panic("authServiceMock.RefreshFunc: method is nil but authService.Refresh was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.RefreshInput
	}{Ctx: ctx, Input: input}
	mock.lockRefresh.Lock()
	mock.calls.Refresh = append(mock.calls.Refresh, callInfo)
	mock.lockRefresh.Unlock()
	return mock.RefreshFunc(ctx, input)
}

func (mock *authServiceMock) RefreshCalls() []struct {
	Ctx   context.Context
	Input auth.RefreshInput
} {
	mock.lockRefresh.RLock()
	calls := mock.calls.Refresh
	mock.lockRefresh.RUnlock()
	return calls
}

func (mock *authServiceMock) Logout(ctx context.Context) error {
	if mock.LogoutFunc == nil {
		panic("authServiceMock.LogoutFunc: method is nil but authService.Logout was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockLogout.Lock()
	mock.calls.Logout = append(mock.calls.Logout, callInfo)
	mock.lockLogout.Unlock()
	return mock.LogoutFunc(ctx)
}

func (mock *authServiceMock) LogoutCalls() []struct {
	Ctx context.Context
} {
	mock.lockLogout.RLock()
	calls := mock.calls.Logout
	mock.lockLogout.RUnlock()
	return calls
}

var _ userService = &userServiceMock{}

type userServiceMock struct {
	GetProfileFunc        func(ctx context.Context) (*domain.User, error)
	UpdateDisplayNameFunc func(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
	WelcomeFunc           func(ctx context.Context) (domain.Welcome, error)

	calls struct {
		GetProfile []struct {
			Ctx context.Context
		}
		UpdateDisplayName []struct {
			Ctx   context.Context
			Input user.UpdateProfileInput
		}
		Welcome []struct {
			Ctx context.Context
		}
	}
	lockGetProfile        sync.RWMutex
	lockUpdateDisplayName sync.RWMutex
	lockWelcome           sync.RWMutex
}

func (mock *userServiceMock) GetProfile(ctx context.Context) (*domain.User, error) {
	if mock.GetProfileFunc == nil {
		panic("userServiceMock.GetProfileFunc: method is nil but userService.GetProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetProfile.Lock()
	mock.calls.GetProfile = append(mock.calls.GetProfile, callInfo)
	mock.lockGetProfile.Unlock()
	return mock.GetProfileFunc(ctx)
}

func (mock *userServiceMock) GetProfileCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetProfile.RLock()
	calls := mock.calls.GetProfile
	mock.lockGetProfile.RUnlock()
	return calls
}

func (mock *userServiceMock) UpdateDisplayName(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error) {
	if mock.UpdateDisplayNameFunc == nil {
		panic("userServiceMock.UpdateDisplayNameFunc: method is nil but userService.UpdateDisplayName was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.UpdateProfileInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateDisplayName.Lock()
	mock.calls.UpdateDisplayName = append(mock.calls.UpdateDisplayName, callInfo)
	mock.lockUpdateDisplayName.Unlock()
	return mock.UpdateDisplayNameFunc(ctx, input)
}

func (mock *userServiceMock) UpdateDisplayNameCalls() []struct {
	Ctx   context.Context
	Input user.UpdateProfileInput
} {
	mock.lockUpdateDisplayName.RLock()
	calls := mock.calls.UpdateDisplayName
	mock.lockUpdateDisplayName.RUnlock()
	return calls
}

func (mock *userServiceMock) Welcome(ctx context.Context) (domain.Welcome, error) {
	if mock.WelcomeFunc == nil {
		panic("userServiceMock.WelcomeFunc: method is nil but userService.Welcome was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockWelcome.Lock()
	mock.calls.Welcome = append(mock.calls.Welcome, callInfo)
	mock.lockWelcome.Unlock()
	return mock.WelcomeFunc(ctx)
}

func (mock *userServiceMock) WelcomeCalls() []struct {
	Ctx context.Context
} {
	mock.lockWelcome.RLock()
	calls := mock.calls.Welcome
	mock.lockWelcome.RUnlock()
	return calls
}

var _ moodService = &moodServiceMock{}

type moodServiceMock struct {
	LogMoodFunc func(ctx context.Context, input mood.LogMoodInput) (*domain.MoodEntry, bool, error)
	ListFunc    func(ctx context.Context, input mood.ListInput) ([]domain.MoodEntry, error)
	TrendFunc   func(ctx context.Context) (domain.MoodTrend, error)

	calls struct {
		LogMood []struct {
			Ctx   context.Context
			Input mood.LogMoodInput
		}
		List []struct {
			Ctx   context.Context
			Input mood.ListInput
		}
		Trend []struct {
			Ctx context.Context
		}
	}
	lockLogMood sync.RWMutex
	lockList    sync.RWMutex
	lockTrend   sync.RWMutex
}

func (mock *moodServiceMock) LogMood(ctx context.Context, input mood.LogMoodInput) (*domain.MoodEntry, bool, error) {
	if mock.LogMoodFunc == nil {
		panic("moodServiceMock.LogMoodFunc: method is nil but moodService.LogMood was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input mood.LogMoodInput
	}{Ctx: ctx, Input: input}
	mock.lockLogMood.Lock()
	mock.calls.LogMood = append(mock.calls.LogMood, callInfo)
	mock.lockLogMood.Unlock()
	return mock.LogMoodFunc(ctx, input)
}

func (mock *moodServiceMock) LogMoodCalls() []struct {
	Ctx   context.Context
	Input mood.LogMoodInput
} {
	mock.lockLogMood.RLock()
	calls := mock.calls.LogMood
	mock.lockLogMood.RUnlock()
	return calls
}

func (mock *moodServiceMock) List(ctx context.Context, input mood.ListInput) ([]domain.MoodEntry, error) {
	if mock.ListFunc == nil {
		panic("moodServiceMock.ListFunc: method is nil but moodService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input mood.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *moodServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input mood.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *moodServiceMock) Trend(ctx context.Context) (domain.MoodTrend, error) {
	if mock.TrendFunc == nil {
		panic("moodServiceMock.TrendFunc: method is nil but moodService.Trend was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockTrend.Lock()
	mock.calls.Trend = append(mock.calls.Trend, callInfo)
	mock.lockTrend.Unlock()
	return mock.TrendFunc(ctx)
}

func (mock *moodServiceMock) TrendCalls() []struct {
	Ctx context.Context
} {
	mock.lockTrend.RLock()
	calls := mock.calls.Trend
	mock.lockTrend.RUnlock()
	return calls
}

var _ goalService = &goalServiceMock{}

type goalServiceMock struct {
	ListActiveFunc     func(ctx context.Context) ([]domain.SelfCareGoal, error)
	CreateFunc         func(ctx context.Context, input goal.CreateGoalInput) (*domain.SelfCareGoal, error)
	CompleteFunc       func(ctx context.Context, input goal.CompleteGoalInput) ([]domain.SelfCareGoal, error)
	RecordProgressFunc func(ctx context.Context, input goal.ProgressInput) (*domain.SelfCareGoal, error)

	calls struct {
		ListActive []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx   context.Context
			Input goal.CreateGoalInput
		}
		Complete []struct {
			Ctx   context.Context
			Input goal.CompleteGoalInput
		}
		RecordProgress []struct {
			Ctx   context.Context
			Input goal.ProgressInput
		}
	}
	lockListActive     sync.RWMutex
	lockCreate         sync.RWMutex
	lockComplete       sync.RWMutex
	lockRecordProgress sync.RWMutex
}

func (mock *goalServiceMock) ListActive(ctx context.Context) ([]domain.SelfCareGoal, error) {
	if mock.ListActiveFunc == nil {
		panic("goalServiceMock.ListActiveFunc: method is nil but goalService.ListActive was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx)
}

func (mock *goalServiceMock) ListActiveCalls() []struct {
	Ctx context.Context
} {
	mock.lockListActive.RLock()
	calls := mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}

func (mock *goalServiceMock) Create(ctx context.Context, input goal.CreateGoalInput) (*domain.SelfCareGoal, error) {
	if mock.CreateFunc == nil {
		panic("goalServiceMock.CreateFunc: method is nil but goalService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input goal.CreateGoalInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *goalServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input goal.CreateGoalInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *goalServiceMock) Complete(ctx context.Context, input goal.CompleteGoalInput) ([]domain.SelfCareGoal, error) {
	if mock.CompleteFunc == nil {
		panic("goalServiceMock.CompleteFunc: method is nil but goalService.Complete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input goal.CompleteGoalInput
	}{Ctx: ctx, Input: input}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, input)
}

func (mock *goalServiceMock) CompleteCalls() []struct {
	Ctx   context.Context
	Input goal.CompleteGoalInput
} {
	mock.lockComplete.RLock()
	calls := mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}

func (mock *goalServiceMock) RecordProgress(ctx context.Context, input goal.ProgressInput) (*domain.SelfCareGoal, error) {
	if mock.RecordProgressFunc == nil {
		panic("goalServiceMock.RecordProgressFunc: method is nil but goalService.RecordProgress was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input goal.ProgressInput
	}{Ctx: ctx, Input: input}
	mock.lockRecordProgress.Lock()
	mock.calls.RecordProgress = append(mock.calls.RecordProgress, callInfo)
	mock.lockRecordProgress.Unlock()
	return mock.RecordProgressFunc(ctx, input)
}

func (mock *goalServiceMock) RecordProgressCalls() []struct {
	Ctx   context.Context
	Input goal.ProgressInput
} {
	mock.lockRecordProgress.RLock()
	calls := mock.calls.RecordProgress
	mock.lockRecordProgress.RUnlock()
	return calls
}

var _ gratitudeService = &gratitudeServiceMock{}

type gratitudeServiceMock struct {
	AddFunc        func(ctx context.Context, items []string) (*domain.GratitudeEntry, error)
	ListRecentFunc func(ctx context.Context, limit int) ([]domain.GratitudeEntry, error)

	calls struct {
		Add []struct {
			Ctx   context.Context
			Items []string
		}
		ListRecent []struct {
			Ctx   context.Context
			Limit int
		}
	}
	lockAdd        sync.RWMutex
	lockListRecent sync.RWMutex
}

func (mock *gratitudeServiceMock) Add(ctx context.Context, items []string) (*domain.GratitudeEntry, error) {
	if mock.AddFunc == nil {
		panic("gratitudeServiceMock.AddFunc: method is nil but gratitudeService.Add was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Items []string
	}{Ctx: ctx, Items: items}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, items)
}

func (mock *gratitudeServiceMock) AddCalls() []struct {
	Ctx   context.Context
	Items []string
} {
	mock.lockAdd.RLock()
	calls := mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *gratitudeServiceMock) ListRecent(ctx context.Context, limit int) ([]domain.GratitudeEntry, error) {
	if mock.ListRecentFunc == nil {
		panic("gratitudeServiceMock.ListRecentFunc: method is nil but gratitudeService.ListRecent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, callInfo)
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, limit)
}

func (mock *gratitudeServiceMock) ListRecentCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockListRecent.RLock()
	calls := mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}

var _ statsService = &statsServiceMock{}

type statsServiceMock struct {
	StatsFunc func(ctx context.Context) (domain.AdminStats, error)

	calls struct {
		Stats []struct {
			Ctx context.Context
		}
	}
	lockStats sync.RWMutex
}

func (mock *statsServiceMock) Stats(ctx context.Context) (domain.AdminStats, error) {
	if mock.StatsFunc == nil {
		panic("statsServiceMock.StatsFunc: method is nil but statsService.Stats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx)
}

func (mock *statsServiceMock) StatsCalls() []struct {
	Ctx context.Context
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}
