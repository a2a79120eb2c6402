package access

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
)

var _ dashboardRepo = &dashboardRepoMock{}

type dashboardRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Dashboard, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
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

var _ shareRepo = &shareRepoMock{}

type shareRepoMock struct {
	ListActiveGrantsFunc func(ctx context.Context, dashboardID, userID uuid.UUID) ([]domain.DashboardShare, error)

	calls struct {
		ListActiveGrants []struct {
			Ctx         context.Context
			DashboardID uuid.UUID
			UserID      uuid.UUID
		}
	}
	lockListActiveGrants sync.RWMutex
}

func (mock *shareRepoMock) ListActiveGrants(ctx context.Context, dashboardID, userID uuid.UUID) ([]domain.DashboardShare, error) {
	if mock.ListActiveGrantsFunc == nil {
		panic("shareRepoMock.ListActiveGrantsFunc: method is nil but shareRepo.ListActiveGrants was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		DashboardID uuid.UUID
		UserID      uuid.UUID
	}{Ctx: ctx, DashboardID: dashboardID, UserID: userID}
	mock.lockListActiveGrants.Lock()
	mock.calls.ListActiveGrants = append(mock.calls.ListActiveGrants, callInfo)
	mock.lockListActiveGrants.Unlock()
	return mock.ListActiveGrantsFunc(ctx, dashboardID, userID)
}

func (mock *shareRepoMock) ListActiveGrantsCalls() []struct {
	Ctx         context.Context
	DashboardID uuid.UUID
	UserID      uuid.UUID
} {
	mock.lockListActiveGrants.RLock()
	calls := mock.calls.ListActiveGrants
	mock.lockListActiveGrants.RUnlock()
	return calls
}
