// Package widget implements widget catalog management: the platform-wide
// widget types and the user-created widget definitions placed on
// dashboards.
package widget

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
)

type widgetRepo interface {
	CreateType(ctx context.Context, t *domain.WidgetType) (*domain.WidgetType, error)
	GetTypeByID(ctx context.Context, id uuid.UUID) (*domain.WidgetType, error)
	ListTypes(ctx context.Context) ([]domain.WidgetType, error)
	UpdateType(ctx context.Context, id uuid.UUID, params domain.WidgetTypeUpdateParams) (*domain.WidgetType, error)
	DeleteType(ctx context.Context, id uuid.UUID) error

	CreateDefinition(ctx context.Context, d *domain.WidgetDefinition) (*domain.WidgetDefinition, error)
	GetDefinitionByID(ctx context.Context, id uuid.UUID) (*domain.WidgetDefinition, error)
	ListDefinitions(ctx context.Context, filter domain.WidgetDefinitionFilter) ([]domain.WidgetDefinition, error)
	UpdateDefinition(ctx context.Context, id uuid.UUID, params domain.WidgetDefinitionUpdateParams) (*domain.WidgetDefinition, error)
	DeleteDefinition(ctx context.Context, id uuid.UUID) error
}

// Service provides widget catalog operations.
type Service struct {
	widgets widgetRepo
	log     *slog.Logger
}

// NewService creates a new Widget service.
func NewService(log *slog.Logger, widgets widgetRepo) *Service {
	return &Service{
		widgets: widgets,
		log:     log.With("service", "widget"),
	}
}
