package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
	"github.com/pulseboard/pulseboard-backend/pkg/ctxutil"
)

// UpdateDashboard applies a metadata update. Requires edit permission.
// Metadata changes never increment the structural version; only layout
// mutations do.
func (s *Service) UpdateDashboard(ctx context.Context, input UpdateDashboardInput) (*domain.Dashboard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.access.Authorize(ctx, input.DashboardID, userID, domain.PermissionEdit); err != nil {
		return nil, err
	}

	updated, err := s.dashboards.Update(ctx, input.DashboardID, domain.DashboardUpdateParams{
		Name:        input.Name,
		Description: input.Description,
		IsActive:    input.IsActive,
		GridConfig:  input.GridConfig,
	})
	if err != nil {
		return nil, fmt.Errorf("update dashboard: %w", err)
	}

	s.log.InfoContext(ctx, "dashboard updated",
		slog.String("user_id", userID.String()),
		slog.String("dashboard_id", input.DashboardID.String()),
	)

	return updated, nil
}
