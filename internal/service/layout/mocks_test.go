package layout

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
	"github.com/pulseboard/pulseboard-backend/internal/service/access"
)

var _ layoutRepo = &layoutRepoMock{}

type layoutRepoMock struct {
	CreateFunc           func(ctx context.Context, l *domain.DashboardLayout) (*domain.DashboardLayout, error)
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.DashboardLayout, error)
	ListByDashboardFunc  func(ctx context.Context, dashboardID uuid.UUID) ([]domain.DashboardLayout, error)
	CountByDashboardFunc func(ctx context.Context, dashboardID uuid.UUID) (int, error)
	UpdateFunc           func(ctx context.Context, id uuid.UUID, params domain.LayoutUpdateParams) (*domain.DashboardLayout, error)
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
	UpdatePlacementFunc  func(ctx context.Context, dashboardID uuid.UUID, entry domain.LayoutBatchEntry) (*domain.DashboardLayout, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			L   *domain.DashboardLayout
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByDashboard []struct {
			Ctx         context.Context
			DashboardID uuid.UUID
		}
		CountByDashboard []struct {
			Ctx         context.Context
			DashboardID uuid.UUID
		}
		Update []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.LayoutUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdatePlacement []struct {
			Ctx         context.Context
			DashboardID uuid.UUID
			Entry       domain.LayoutBatchEntry
		}
	}
	lockCreate           sync.RWMutex
	lockGetByID          sync.RWMutex
	lockListByDashboard  sync.RWMutex
	lockCountByDashboard sync.RWMutex
	lockUpdate           sync.RWMutex
	lockDelete           sync.RWMutex
	lockUpdatePlacement  sync.RWMutex
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

func (mock *layoutRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.DashboardLayout, error) {
	if mock.GetByIDFunc == nil {
		panic("layoutRepoMock.GetByIDFunc: method is nil but layoutRepo.GetByID was just called")
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

func (mock *layoutRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
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

func (mock *layoutRepoMock) CountByDashboard(ctx context.Context, dashboardID uuid.UUID) (int, error) {
	if mock.CountByDashboardFunc == nil {
		panic("layoutRepoMock.CountByDashboardFunc: method is nil but layoutRepo.CountByDashboard was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		DashboardID uuid.UUID
	}{Ctx: ctx, DashboardID: dashboardID}
	mock.lockCountByDashboard.Lock()
	mock.calls.CountByDashboard = append(mock.calls.CountByDashboard, callInfo)
	mock.lockCountByDashboard.Unlock()
	return mock.CountByDashboardFunc(ctx, dashboardID)
}

func (mock *layoutRepoMock) CountByDashboardCalls() []struct {
	Ctx         context.Context
	DashboardID uuid.UUID
} {
	mock.lockCountByDashboard.RLock()
	calls := mock.calls.CountByDashboard
	mock.lockCountByDashboard.RUnlock()
	return calls
}

func (mock *layoutRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.LayoutUpdateParams) (*domain.DashboardLayout, error) {
	if mock.UpdateFunc == nil {
		panic("layoutRepoMock.UpdateFunc: method is nil but layoutRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.LayoutUpdateParams
	}{Ctx: ctx, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *layoutRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Params domain.LayoutUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *layoutRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("layoutRepoMock.DeleteFunc: method is nil but layoutRepo.Delete was just called")
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

func (mock *layoutRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *layoutRepoMock) UpdatePlacement(ctx context.Context, dashboardID uuid.UUID, entry domain.LayoutBatchEntry) (*domain.DashboardLayout, error) {
	if mock.UpdatePlacementFunc == nil {
		panic("layoutRepoMock.UpdatePlacementFunc: method is nil but layoutRepo.UpdatePlacement was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		DashboardID uuid.UUID
		Entry       domain.LayoutBatchEntry
	}{Ctx: ctx, DashboardID: dashboardID, Entry: entry}
	mock.lockUpdatePlacement.Lock()
	mock.calls.UpdatePlacement = append(mock.calls.UpdatePlacement, callInfo)
	mock.lockUpdatePlacement.Unlock()
	return mock.UpdatePlacementFunc(ctx, dashboardID, entry)
}

func (mock *layoutRepoMock) UpdatePlacementCalls() []struct {
	Ctx         context.Context
	DashboardID uuid.UUID
	Entry       domain.LayoutBatchEntry
} {
	mock.lockUpdatePlacement.RLock()
	calls := mock.calls.UpdatePlacement
	mock.lockUpdatePlacement.RUnlock()
	return calls
}

var _ widgetRepo = &widgetRepoMock{}

type widgetRepoMock struct {
	GetDefinitionByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.WidgetDefinition, error)

	calls struct {
		GetDefinitionByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetDefinitionByID sync.RWMutex
}

func (mock *widgetRepoMock) GetDefinitionByID(ctx context.Context, id uuid.UUID) (*domain.WidgetDefinition, error) {
	if mock.GetDefinitionByIDFunc == nil {
		panic("widgetRepoMock.GetDefinitionByIDFunc: method is nil but widgetRepo.GetDefinitionByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetDefinitionByID.Lock()
	mock.calls.GetDefinitionByID = append(mock.calls.GetDefinitionByID, callInfo)
	mock.lockGetDefinitionByID.Unlock()
	return mock.GetDefinitionByIDFunc(ctx, id)
}

func (mock *widgetRepoMock) GetDefinitionByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetDefinitionByID.RLock()
	calls := mock.calls.GetDefinitionByID
	mock.lockGetDefinitionByID.RUnlock()
	return calls
}

var _ dashboardRepo = &dashboardRepoMock{}

type dashboardRepoMock struct {
	IncrementVersionFunc func(ctx context.Context, id uuid.UUID) (*domain.Dashboard, error)

	calls struct {
		IncrementVersion []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockIncrementVersion sync.RWMutex
}

func (mock *dashboardRepoMock) IncrementVersion(ctx context.Context, id uuid.UUID) (*domain.Dashboard, error) {
	if mock.IncrementVersionFunc == nil {
		panic("dashboardRepoMock.IncrementVersionFunc: method is nil but dashboardRepo.IncrementVersion was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockIncrementVersion.Lock()
	mock.calls.IncrementVersion = append(mock.calls.IncrementVersion, callInfo)
	mock.lockIncrementVersion.Unlock()
	return mock.IncrementVersionFunc(ctx, id)
}

func (mock *dashboardRepoMock) IncrementVersionCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockIncrementVersion.RLock()
	calls := mock.calls.IncrementVersion
	mock.lockIncrementVersion.RUnlock()
	return calls
}

var _ accessService = &accessServiceMock{}

type accessServiceMock struct {
	AuthorizeFunc func(ctx context.Context, dashboardID, userID uuid.UUID, required domain.PermissionLevel) (access.Resolution, error)

	calls struct {
		Authorize []struct {
			Ctx         context.Context
			DashboardID uuid.UUID
			UserID      uuid.UUID
			Required    domain.PermissionLevel
		}
	}
	lockAuthorize sync.RWMutex
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
