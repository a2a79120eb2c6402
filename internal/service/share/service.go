// Package share implements time-bounded permission grant management.
// Grants are created and revoked by the dashboard owner or a platform
// admin; listings only ever expose active grants.
package share

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
	"github.com/pulseboard/pulseboard-backend/internal/service/access"
	"github.com/pulseboard/pulseboard-backend/pkg/ctxutil"
)

type shareRepo interface {
	Create(ctx context.Context, s *domain.DashboardShare) (*domain.DashboardShare, error)
	ListByDashboard(ctx context.Context, dashboardID uuid.UUID) ([]domain.DashboardShare, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.DashboardShare, error)
	Revoke(ctx context.Context, dashboardID, userID uuid.UUID) error
}

type accessService interface {
	Resolve(ctx context.Context, dashboardID, userID uuid.UUID) (access.Resolution, error)
}

// Service provides share grant management operations.
type Service struct {
	shares shareRepo
	access accessService
	log    *slog.Logger
}

// NewService creates a new Share service.
func NewService(log *slog.Logger, shares shareRepo, access accessService) *Service {
	return &Service{
		shares: shares,
		access: access,
		log:    log.With("service", "share"),
	}
}

// requireManager resolves the caller against the dashboard and requires
// grant-management rights: ownership or the platform admin role. A share
// grant, even at admin rank, does not confer the right to re-share.
func (s *Service) requireManager(ctx context.Context, dashboardID, userID uuid.UUID) error {
	res, err := s.access.Resolve(ctx, dashboardID, userID)
	if err != nil {
		return err
	}
	if !res.IsOwner && !ctxutil.IsAdminCtx(ctx) {
		return fmt.Errorf("only the owner may manage shares: %w", domain.ErrForbidden)
	}
	return nil
}
