package dashboard

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
	"github.com/pulseboard/pulseboard-backend/internal/service/access"
)

var _ dashboardRepo = &dashboardRepoMock{}

type dashboardRepoMock struct {
	CreateFunc      func(ctx context.Context, d *domain.Dashboard) (*domain.Dashboard, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Dashboard, error)
	ListForUserFunc func(ctx context.Context, userID uuid.UUID, includeShared bool) ([]domain.DashboardWithPermission, error)
	UpdateFunc      func(ctx context.Context, id uuid.UUID, params domain.DashboardUpdateParams) (*domain.Dashboard, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			D   *domain.Dashboard
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListForUser []struct {
			Ctx           context.Context
			UserID        uuid.UUID
			IncludeShared bool
		}
		Update []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.DashboardUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockListForUser sync.RWMutex
	lockUpdate      sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *dashboardRepoMock) Create(ctx context.Context, d *domain.Dashboard) (*domain.Dashboard, error) {
	if mock.CreateFunc == nil {
		panic("dashboardRepoMock.CreateFunc: method is nil but dashboardRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   *domain.Dashboard
	}{Ctx: ctx, D: d}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, d)
}

func (mock *dashboardRepoMock) CreateCalls() []struct {
	Ctx context.Context
	D   *domain.Dashboard
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *dashboardRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dashboard, error) {
	if mock.GetByIDFunc == nil {
		panic("dashboardRepoMock.GetByIDFunc: method is nil but dashboardRepo.GetByID was just called")
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

func (mock *dashboardRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *dashboardRepoMock) ListForUser(ctx context.Context, userID uuid.UUID, includeShared bool) ([]domain.DashboardWithPermission, error) {
	if mock.ListForUserFunc == nil {
		panic("dashboardRepoMock.ListForUserFunc: method is nil but dashboardRepo.ListForUser was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		UserID        uuid.UUID
		IncludeShared bool
	}{Ctx: ctx, UserID: userID, IncludeShared: includeShared}
	mock.lockListForUser.Lock()
	mock.calls.ListForUser = append(mock.calls.ListForUser, callInfo)
	mock.lockListForUser.Unlock()
	return mock.ListForUserFunc(ctx, userID, includeShared)
}

func (mock *dashboardRepoMock) ListForUserCalls() []struct {
	Ctx           context.Context
	UserID        uuid.UUID
	IncludeShared bool
} {
	mock.lockListForUser.RLock()
	calls := mock.calls.ListForUser
	mock.lockListForUser.RUnlock()
	return calls
}

func (mock *dashboardRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.DashboardUpdateParams) (*domain.Dashboard, error) {
	if mock.UpdateFunc == nil {
		panic("dashboardRepoMock.UpdateFunc: method is nil but dashboardRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.DashboardUpdateParams
	}{Ctx: ctx, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *dashboardRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Params domain.DashboardUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *dashboardRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("dashboardRepoMock.DeleteFunc: method is nil but dashboardRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *dashboardRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ layoutRepo = &layoutRepoMock{}

type layoutRepoMock struct {
	CreateFunc            func(ctx context.Context, l *domain.DashboardLayout) (*domain.DashboardLayout, error)
	ListByDashboardFunc   func(ctx context.Context, dashboardID uuid.UUID) ([]domain.DashboardLayout, error)
	DeleteByDashboardFunc func(ctx context.Context, dashboardID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			L   *domain.DashboardLayout
		}
		ListByDashboard []struct {
			Ctx         context.Context
			DashboardID uuid.UUID
		}
		DeleteByDashboard []struct {
			Ctx         context.Context
			DashboardID uuid.UUID
		}
	}
	lockCreate            sync.RWMutex
	lockListByDashboard   sync.RWMutex
	lockDeleteByDashboard sync.RWMutex
}

func (mock *layoutRepoMock) Create(ctx context.Context, l *domain.DashboardLayout) (*domain.DashboardLayout, error) {
	if mock.CreateFunc == nil {
		panic("layoutRepoMock.CreateFunc: method is nil but layoutRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   *domain.DashboardLayout
	}{Ctx: ctx, L: l}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *layoutRepoMock) CreateCalls() []struct {
	Ctx context.Context
	L   *domain.DashboardLayout
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *layoutRepoMock) ListByDashboard(ctx context.Context, dashboardID uuid.UUID) ([]domain.DashboardLayout, error) {
	if mock.ListByDashboardFunc == nil {
		panic("layoutRepoMock.ListByDashboardFunc: method is nil but layoutRepo.ListByDashboard was just called")
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

func (mock *layoutRepoMock) ListByDashboardCalls() []struct {
	Ctx         context.Context
	DashboardID uuid.UUID
} {
	mock.lockListByDashboard.RLock()
	calls := mock.calls.ListByDashboard
	mock.lockListByDashboard.RUnlock()
	return calls
}

func (mock *layoutRepoMock) DeleteByDashboard(ctx context.Context, dashboardID uuid.UUID) error {
	if mock.DeleteByDashboardFunc == nil {
		panic("layoutRepoMock.DeleteByDashboardFunc: method is nil but layoutRepo.DeleteByDashboard was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		DashboardID uuid.UUID
	}{Ctx: ctx, DashboardID: dashboardID}
	mock.lockDeleteByDashboard.Lock()
	mock.calls.DeleteByDashboard = append(mock.calls.DeleteByDashboard, callInfo)
	mock.lockDeleteByDashboard.Unlock()
	return mock.DeleteByDashboardFunc(ctx, dashboardID)
}

func (mock *layoutRepoMock) DeleteByDashboardCalls() []struct {
	Ctx         context.Context
	DashboardID uuid.UUID
} {
	mock.lockDeleteByDashboard.RLock()
	calls := mock.calls.DeleteByDashboard
	mock.lockDeleteByDashboard.RUnlock()
	return calls
}

var _ shareRepo = &shareRepoMock{}

type shareRepoMock struct {
	DeleteByDashboardFunc func(ctx context.Context, dashboardID uuid.UUID) error

	calls struct {
		DeleteByDashboard []struct {
			Ctx         context.Context
			DashboardID uuid.UUID
		}
	}
	lockDeleteByDashboard sync.RWMutex
}

func (mock *shareRepoMock) DeleteByDashboard(ctx context.Context, dashboardID uuid.UUID) error {
	if mock.DeleteByDashboardFunc == nil {
		panic("shareRepoMock.DeleteByDashboardFunc: method is nil but shareRepo.DeleteByDashboard was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		DashboardID uuid.UUID
	}{Ctx: ctx, DashboardID: dashboardID}
	mock.lockDeleteByDashboard.Lock()
	mock.calls.DeleteByDashboard = append(mock.calls.DeleteByDashboard, callInfo)
	mock.lockDeleteByDashboard.Unlock()
	return mock.DeleteByDashboardFunc(ctx, dashboardID)
}

func (mock *shareRepoMock) DeleteByDashboardCalls() []struct {
	Ctx         context.Context
	DashboardID uuid.UUID
} {
	mock.lockDeleteByDashboard.RLock()
	calls := mock.calls.DeleteByDashboard
	mock.lockDeleteByDashboard.RUnlock()
	return calls
}

var _ accessService = &accessServiceMock{}

type accessServiceMock struct {
	ResolveFunc   func(ctx context.Context, dashboardID, userID uuid.UUID) (access.Resolution, error)
	AuthorizeFunc func(ctx context.Context, dashboardID, userID uuid.UUID, required domain.PermissionLevel) (access.Resolution, error)

	calls struct {
		Resolve []struct {
			Ctx         context.Context
			DashboardID uuid.UUID
			UserID      uuid.UUID
		}
		Authorize []struct {
			Ctx         context.Context
			DashboardID uuid.UUID
			UserID      uuid.UUID
			Required    domain.PermissionLevel
		}
	}
	lockResolve   sync.RWMutex
	lockAuthorize sync.RWMutex
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

func (mock *accessServiceMock) Authorize(ctx context.Context, dashboardID, userID uuid.UUID, required domain.PermissionLevel) (access.Resolution, error) {
	if mock.AuthorizeFunc == nil {
		panic("accessServiceMock.AuthorizeFunc: method is nil but accessService.Authorize was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		DashboardID uuid.UUID
		UserID      uuid.UUID
		Required    domain.PermissionLevel
	}{Ctx: ctx, DashboardID: dashboardID, UserID: userID, Required: required}
	mock.lockAuthorize.Lock()
	mock.calls.Authorize = append(mock.calls.Authorize, callInfo)
	mock.lockAuthorize.Unlock()
	return mock.AuthorizeFunc(ctx, dashboardID, userID, required)
}

func (mock *accessServiceMock) AuthorizeCalls() []struct {
	Ctx         context.Context
	DashboardID uuid.UUID
	UserID      uuid.UUID
	Required    domain.PermissionLevel
} {
	mock.lockAuthorize.RLock()
	calls := mock.calls.Authorize
	mock.lockAuthorize.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
