// Package dashboard implements dashboard lifecycle operations: create with
// optional initial widgets, fetch with composed layouts, listing, metadata
// update, cascading delete and duplication.
package dashboard

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
	"github.com/pulseboard/pulseboard-backend/internal/service/access"
)

type dashboardRepo interface {
	Create(ctx context.Context, d *domain.Dashboard) (*domain.Dashboard, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Dashboard, error)
	ListForUser(ctx context.Context, userID uuid.UUID, includeShared bool) ([]domain.DashboardWithPermission, error)
	Update(ctx context.Context, id uuid.UUID, params domain.DashboardUpdateParams) (*domain.Dashboard, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type layoutRepo interface {
	Create(ctx context.Context, l *domain.DashboardLayout) (*domain.DashboardLayout, error)
	ListByDashboard(ctx context.Context, dashboardID uuid.UUID) ([]domain.DashboardLayout, error)
	DeleteByDashboard(ctx context.Context, dashboardID uuid.UUID) error
}

type shareRepo interface {
	DeleteByDashboard(ctx context.Context, dashboardID uuid.UUID) error
}

type accessService interface {
	Resolve(ctx context.Context, dashboardID, userID uuid.UUID) (access.Resolution, error)
	Authorize(ctx context.Context, dashboardID, userID uuid.UUID, required domain.PermissionLevel) (access.Resolution, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Limits holds the configurable dashboard bounds.
type Limits struct {
	MaxWidgetsPerDashboard int
}

// Service provides dashboard management operations.
type Service struct {
	dashboards dashboardRepo
	layouts    layoutRepo
	shares     shareRepo
	access     accessService
	tx         txManager
	limits     Limits
	log        *slog.Logger
}

// NewService creates a new Dashboard service.
func NewService(
	log *slog.Logger,
	dashboards dashboardRepo,
	layouts layoutRepo,
	shares shareRepo,
	access accessService,
	tx txManager,
	limits Limits,
) *Service {
	return &Service{
		dashboards: dashboards,
		layouts:    layouts,
		shares:     shares,
		access:     access,
		tx:         tx,
		limits:     limits,
		log:        log.With("service", "dashboard"),
	}
}

// Detail is a dashboard composed with its ordered layouts and the
// requesting user's permission label.
type Detail struct {
	Dashboard  domain.Dashboard
	Permission string
	Layouts    []domain.DashboardLayout
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
