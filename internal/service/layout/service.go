// Package layout implements widget placement operations on dashboards:
// listing in display order, adding widgets with merge-over-default configs,
// wholesale placement updates, removal and the atomic bulk reposition.
// Every structural mutation bumps the owning dashboard's version counter.
package layout

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
	"github.com/pulseboard/pulseboard-backend/internal/service/access"
)

type layoutRepo interface {
	Create(ctx context.Context, l *domain.DashboardLayout) (*domain.DashboardLayout, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DashboardLayout, error)
	ListByDashboard(ctx context.Context, dashboardID uuid.UUID) ([]domain.DashboardLayout, error)
	CountByDashboard(ctx context.Context, dashboardID uuid.UUID) (int, error)
	Update(ctx context.Context, id uuid.UUID, params domain.LayoutUpdateParams) (*domain.DashboardLayout, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpdatePlacement(ctx context.Context, dashboardID uuid.UUID, entry domain.LayoutBatchEntry) (*domain.DashboardLayout, error)
}

type widgetRepo interface {
	GetDefinitionByID(ctx context.Context, id uuid.UUID) (*domain.WidgetDefinition, error)
}

type dashboardRepo interface {
	IncrementVersion(ctx context.Context, id uuid.UUID) (*domain.Dashboard, error)
}

type accessService interface {
	Authorize(ctx context.Context, dashboardID, userID uuid.UUID, required domain.PermissionLevel) (access.Resolution, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Limits holds the configurable layout bounds.
type Limits struct {
	MaxWidgetsPerDashboard int
	MaxBulkBatch           int
}

// Service provides layout composition operations.
type Service struct {
	layouts    layoutRepo
	widgets    widgetRepo
	dashboards dashboardRepo
	access     accessService
	tx         txManager
	limits     Limits
	log        *slog.Logger
}

// NewService creates a new Layout service.
func NewService(
	log *slog.Logger,
	layouts layoutRepo,
	widgets widgetRepo,
	dashboards dashboardRepo,
	access accessService,
	tx txManager,
	limits Limits,
) *Service {
	return &Service{
		layouts:    layouts,
		widgets:    widgets,
		dashboards: dashboards,
		access:     access,
		tx:         tx,
		limits:     limits,
		log:        log.With("service", "layout"),
	}
}

// bumpVersion increments the dashboard's structural version after a layout
// mutation has committed. The increment is a separate statement; if it
// fails the layout change stays and the drift is logged rather than rolled
// back, since losing the mutation would be worse than a stale counter.
func (s *Service) bumpVersion(ctx context.Context, dashboardID uuid.UUID) int {
	d, err := s.dashboards.IncrementVersion(ctx, dashboardID)
	if err != nil {
		s.log.ErrorContext(ctx, "version bump failed",
			slog.String("dashboard_id", dashboardID.String()),
			slog.String("error", err.Error()),
		)
		return 0
	}
	return d.Version
}
