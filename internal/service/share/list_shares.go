package share

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
	"github.com/pulseboard/pulseboard-backend/pkg/ctxutil"
)

// ListShares returns the active grants on a dashboard. Restricted to the
// owner or a platform admin, same as granting.
func (s *Service) ListShares(ctx context.Context, dashboardID uuid.UUID) ([]domain.DashboardShare, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := s.requireManager(ctx, dashboardID, userID); err != nil {
		return nil, err
	}

	shares, err := s.shares.ListByDashboard(ctx, dashboardID)
	if err != nil {
		return nil, fmt.Errorf("list shares: %w", err)
	}

	return shares, nil
}

// ListMyShares returns the caller's own active grants across dashboards.
func (s *Service) ListMyShares(ctx context.Context) ([]domain.DashboardShare, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	shares, err := s.shares.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list shares: %w", err)
	}

	return shares, nil
}
