package share

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
	"github.com/pulseboard/pulseboard-backend/internal/service/access"
)

var _ shareRepo = &shareRepoMock{}

type shareRepoMock struct {
	CreateFunc          func(ctx context.Context, s *domain.DashboardShare) (*domain.DashboardShare, error)
	ListByDashboardFunc func(ctx context.Context, dashboardID uuid.UUID) ([]domain.DashboardShare, error)
	ListByUserFunc      func(ctx context.Context, userID uuid.UUID) ([]domain.DashboardShare, error)
	RevokeFunc          func(ctx context.Context, dashboardID, userID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			S   *domain.DashboardShare
		}
		ListByDashboard []struct {
			Ctx         context.Context
			DashboardID uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Revoke []struct {
			Ctx         context.Context
			DashboardID uuid.UUID
			UserID      uuid.UUID
		}
	}
	lockCreate          sync.RWMutex
	lockListByDashboard sync.RWMutex
	lockListByUser      sync.RWMutex
	lockRevoke          sync.RWMutex
}

func (mock *shareRepoMock) Create(ctx context.Context, s *domain.DashboardShare) (*domain.DashboardShare, error) {
	if mock.CreateFunc == nil {
		panic("shareRepoMock.CreateFunc: method is nil but shareRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.DashboardShare
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *shareRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.DashboardShare
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *shareRepoMock) ListByDashboard(ctx context.Context, dashboardID uuid.UUID) ([]domain.DashboardShare, error) {
	if mock.ListByDashboardFunc == nil {
		panic("shareRepoMock.ListByDashboardFunc: method is nil but shareRepo.ListByDashboard was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		DashboardID uuid.UUID
	}{Ctx: ctx, DashboardID: dashboardID}
	mock.lockListByDashboard.Lock()
	mock.calls.ListByDashboard = append(mock.calls.ListByDashboard, callInfo)
	mock.lockListByDashboard.Unlock()
	return mock.ListByDashboardFunc(ctx, dashboardID)
}

func (mock *shareRepoMock) ListByDashboardCalls() []struct {
	Ctx         context.Context
	DashboardID uuid.UUID
} {
	mock.lockListByDashboard.RLock()
	calls := mock.calls.ListByDashboard
	mock.lockListByDashboard.RUnlock()
	return calls
}

func (mock *shareRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.DashboardShare, error) {
	if mock.ListByUserFunc == nil {
		panic("shareRepoMock.ListByUserFunc: method is nil but shareRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *shareRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *shareRepoMock) Revoke(ctx context.Context, dashboardID, userID uuid.UUID) error {
	if mock.RevokeFunc == nil {
		panic("shareRepoMock.RevokeFunc: method is nil but shareRepo.Revoke was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		DashboardID uuid.UUID
		UserID      uuid.UUID
	}{Ctx: ctx, DashboardID: dashboardID, UserID: userID}
	mock.lockRevoke.Lock()
	mock.calls.Revoke = append(mock.calls.Revoke, callInfo)
	mock.lockRevoke.Unlock()
	return mock.RevokeFunc(ctx, dashboardID, userID)
}

func (mock *shareRepoMock) RevokeCalls() []struct {
	Ctx         context.Context
	DashboardID uuid.UUID
	UserID      uuid.UUID
} {
	mock.lockRevoke.RLock()
	calls := mock.calls.Revoke
	mock.lockRevoke.RUnlock()
	return calls
}

var _ accessService = &accessServiceMock{}

type accessServiceMock struct {
	ResolveFunc func(ctx context.Context, dashboardID, userID uuid.UUID) (access.Resolution, error)

	calls struct {
		Resolve []struct {
			Ctx         context.Context
			DashboardID uuid.UUID
			UserID      uuid.UUID
		}
	}
	lockResolve sync.RWMutex
}

func (mock *accessServiceMock) Resolve(ctx context.Context, dashboardID, userID uuid.UUID) (access.Resolution, error) {
	if mock.ResolveFunc == nil {
		panic("accessServiceMock.ResolveFunc: method is nil but accessService.Resolve was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		DashboardID uuid.UUID
		UserID      uuid.UUID
	}{Ctx: ctx, DashboardID: dashboardID, UserID: userID}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, dashboardID, userID)
}

func (mock *accessServiceMock) ResolveCalls() []struct {
	Ctx         context.Context
	DashboardID uuid.UUID
	UserID      uuid.UUID
} {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}
