package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
	"github.com/pulseboard/pulseboard-backend/pkg/ctxutil"
)

// GetDashboard returns a dashboard with its ordered layouts and the
// caller's permission label. Requires view permission.
func (s *Service) GetDashboard(ctx context.Context, dashboardID uuid.UUID) (*Detail, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	res, err := s.access.Authorize(ctx, dashboardID, userID, domain.PermissionView)
	if err != nil {
		return nil, err
	}

	d, err := s.dashboards.GetByID(ctx, dashboardID)
	if err != nil {
		return nil, fmt.Errorf("get dashboard: %w", err)
	}

	layouts, err := s.layouts.ListByDashboard(ctx, dashboardID)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}

	return &Detail{
		Dashboard:  *d,
		Permission: res.Label(),
		Layouts:    layouts,
	}, nil
}

// ListDashboards returns the caller's dashboards with permission labels.
// Owned dashboards are always included; includeShared adds dashboards the
// caller holds an active grant on.
func (s *Service) ListDashboards(ctx context.Context, includeShared bool) ([]domain.DashboardWithPermission, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	list, err := s.dashboards.ListForUser(ctx, userID, includeShared)
	if err != nil {
		return nil, fmt.Errorf("list dashboards: %w", err)
	}

	return list, nil
}
