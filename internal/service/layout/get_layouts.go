package layout

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
	"github.com/pulseboard/pulseboard-backend/pkg/ctxutil"
)

// ListLayouts returns a dashboard's layouts in display order. Requires
// view permission.
func (s *Service) ListLayouts(ctx context.Context, dashboardID uuid.UUID) ([]domain.DashboardLayout, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.access.Authorize(ctx, dashboardID, userID, domain.PermissionView); err != nil {
		return nil, err
	}

	layouts, err := s.layouts.ListByDashboard(ctx, dashboardID)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}

	return layouts, nil
}

// GetLayout returns a single layout. The caller needs view permission on
// the owning dashboard; the layout is fetched first so authorization runs
// against the dashboard it actually belongs to.
func (s *Service) GetLayout(ctx context.Context, layoutID uuid.UUID) (*domain.DashboardLayout, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	l, err := s.layouts.GetByID(ctx, layoutID)
	if err != nil {
		return nil, fmt.Errorf("get layout: %w", err)
	}

	if _, err := s.access.Authorize(ctx, l.DashboardID, userID, domain.PermissionView); err != nil {
		return nil, err
	}

	return l, nil
}
