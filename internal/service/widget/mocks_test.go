package widget

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
)

var _ widgetRepo = &widgetRepoMock{}

type widgetRepoMock struct {
	CreateTypeFunc        func(ctx context.Context, t *domain.WidgetType) (*domain.WidgetType, error)
	GetTypeByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.WidgetType, error)
	ListTypesFunc         func(ctx context.Context) ([]domain.WidgetType, error)
	UpdateTypeFunc        func(ctx context.Context, id uuid.UUID, params domain.WidgetTypeUpdateParams) (*domain.WidgetType, error)
	DeleteTypeFunc        func(ctx context.Context, id uuid.UUID) error
	CreateDefinitionFunc  func(ctx context.Context, d *domain.WidgetDefinition) (*domain.WidgetDefinition, error)
	GetDefinitionByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.WidgetDefinition, error)
	ListDefinitionsFunc   func(ctx context.Context, filter domain.WidgetDefinitionFilter) ([]domain.WidgetDefinition, error)
	UpdateDefinitionFunc  func(ctx context.Context, id uuid.UUID, params domain.WidgetDefinitionUpdateParams) (*domain.WidgetDefinition, error)
	DeleteDefinitionFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		CreateType []struct {
			Ctx context.Context
			T   *domain.WidgetType
		}
		GetTypeByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListTypes []struct {
			Ctx context.Context
		}
		UpdateType []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.WidgetTypeUpdateParams
		}
		DeleteType []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		CreateDefinition []struct {
			Ctx context.Context
			D   *domain.WidgetDefinition
		}
		GetDefinitionByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListDefinitions []struct {
			Ctx    context.Context
			Filter domain.WidgetDefinitionFilter
		}
		UpdateDefinition []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.WidgetDefinitionUpdateParams
		}
		DeleteDefinition []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *widgetRepoMock) CreateType(ctx context.Context, t *domain.WidgetType) (*domain.WidgetType, error) {
	if mock.CreateTypeFunc == nil {
		panic("widgetRepoMock.CreateTypeFunc: method is nil but widgetRepo.CreateType was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateType = append(mock.calls.CreateType, struct {
		Ctx context.Context
		T   *domain.WidgetType
	}{Ctx: ctx, T: t})
	mock.lock.Unlock()
	return mock.CreateTypeFunc(ctx, t)
}

func (mock *widgetRepoMock) CreateTypeCalls() []struct {
	Ctx context.Context
	T   *domain.WidgetType
} {
	mock.lock.RLock()
	calls := mock.calls.CreateType
	mock.lock.RUnlock()
	return calls
}

func (mock *widgetRepoMock) GetTypeByID(ctx context.Context, id uuid.UUID) (*domain.WidgetType, error) {
	if mock.GetTypeByIDFunc == nil {
		panic("widgetRepoMock.GetTypeByIDFunc: method is nil but widgetRepo.GetTypeByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetTypeByID = append(mock.calls.GetTypeByID, struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id})
	mock.lock.Unlock()
	return mock.GetTypeByIDFunc(ctx, id)
}

func (mock *widgetRepoMock) ListTypes(ctx context.Context) ([]domain.WidgetType, error) {
	if mock.ListTypesFunc == nil {
		panic("widgetRepoMock.ListTypesFunc: method is nil but widgetRepo.ListTypes was just called")
	}
	mock.lock.Lock()
	mock.calls.ListTypes = append(mock.calls.ListTypes, struct {
		Ctx context.Context
	}{Ctx: ctx})
	mock.lock.Unlock()
	return mock.ListTypesFunc(ctx)
}

func (mock *widgetRepoMock) UpdateType(ctx context.Context, id uuid.UUID, params domain.WidgetTypeUpdateParams) (*domain.WidgetType, error) {
	if mock.UpdateTypeFunc == nil {
		panic("widgetRepoMock.UpdateTypeFunc: method is nil but widgetRepo.UpdateType was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateType = append(mock.calls.UpdateType, struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.WidgetTypeUpdateParams
	}{Ctx: ctx, ID: id, Params: params})
	mock.lock.Unlock()
	return mock.UpdateTypeFunc(ctx, id, params)
}

func (mock *widgetRepoMock) DeleteType(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteTypeFunc == nil {
		panic("widgetRepoMock.DeleteTypeFunc: method is nil but widgetRepo.DeleteType was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteType = append(mock.calls.DeleteType, struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id})
	mock.lock.Unlock()
	return mock.DeleteTypeFunc(ctx, id)
}

func (mock *widgetRepoMock) DeleteTypeCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lock.RLock()
	calls := mock.calls.DeleteType
	mock.lock.RUnlock()
	return calls
}

func (mock *widgetRepoMock) CreateDefinition(ctx context.Context, d *domain.WidgetDefinition) (*domain.WidgetDefinition, error) {
	if mock.CreateDefinitionFunc == nil {
		panic("widgetRepoMock.CreateDefinitionFunc: method is nil but widgetRepo.CreateDefinition was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateDefinition = append(mock.calls.CreateDefinition, struct {
		Ctx context.Context
		D   *domain.WidgetDefinition
	}{Ctx: ctx, D: d})
	mock.lock.Unlock()
	return mock.CreateDefinitionFunc(ctx, d)
}

func (mock *widgetRepoMock) CreateDefinitionCalls() []struct {
	Ctx context.Context
	D   *domain.WidgetDefinition
} {
	mock.lock.RLock()
	calls := mock.calls.CreateDefinition
	mock.lock.RUnlock()
	return calls
}

func (mock *widgetRepoMock) GetDefinitionByID(ctx context.Context, id uuid.UUID) (*domain.WidgetDefinition, error) {
	if mock.GetDefinitionByIDFunc == nil {
		panic("widgetRepoMock.GetDefinitionByIDFunc: method is nil but widgetRepo.GetDefinitionByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetDefinitionByID = append(mock.calls.GetDefinitionByID, struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id})
	mock.lock.Unlock()
	return mock.GetDefinitionByIDFunc(ctx, id)
}

func (mock *widgetRepoMock) ListDefinitions(ctx context.Context, filter domain.WidgetDefinitionFilter) ([]domain.WidgetDefinition, error) {
	if mock.ListDefinitionsFunc == nil {
		panic("widgetRepoMock.ListDefinitionsFunc: method is nil but widgetRepo.ListDefinitions was just called")
	}
	mock.lock.Lock()
	mock.calls.ListDefinitions = append(mock.calls.ListDefinitions, struct {
		Ctx    context.Context
		Filter domain.WidgetDefinitionFilter
	}{Ctx: ctx, Filter: filter})
	mock.lock.Unlock()
	return mock.ListDefinitionsFunc(ctx, filter)
}

func (mock *widgetRepoMock) ListDefinitionsCalls() []struct {
	Ctx    context.Context
	Filter domain.WidgetDefinitionFilter
} {
	mock.lock.RLock()
	calls := mock.calls.ListDefinitions
	mock.lock.RUnlock()
	return calls
}

func (mock *widgetRepoMock) UpdateDefinition(ctx context.Context, id uuid.UUID, params domain.WidgetDefinitionUpdateParams) (*domain.WidgetDefinition, error) {
	if mock.UpdateDefinitionFunc == nil {
		panic("widgetRepoMock.UpdateDefinitionFunc: method is nil but widgetRepo.UpdateDefinition was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateDefinition = append(mock.calls.UpdateDefinition, struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.WidgetDefinitionUpdateParams
	}{Ctx: ctx, ID: id, Params: params})
	mock.lock.Unlock()
	return mock.UpdateDefinitionFunc(ctx, id, params)
}

func (mock *widgetRepoMock) DeleteDefinition(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteDefinitionFunc == nil {
		panic("widgetRepoMock.DeleteDefinitionFunc: method is nil but widgetRepo.DeleteDefinition was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteDefinition = append(mock.calls.DeleteDefinition, struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id})
	mock.lock.Unlock()
	return mock.DeleteDefinitionFunc(ctx, id)
}

func (mock *widgetRepoMock) DeleteDefinitionCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lock.RLock()
	calls := mock.calls.DeleteDefinition
	mock.lock.RUnlock()
	return calls
}
