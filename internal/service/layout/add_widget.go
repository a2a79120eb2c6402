package layout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
	"github.com/pulseboard/pulseboard-backend/pkg/ctxutil"
)

// AddWidget places a widget instance on a dashboard. Requires edit
// permission. The widget definition must exist; a partial layout config is
// merged over the default placement. An omitted display order appends
// after the existing widgets. Bumps the dashboard version.
func (s *Service) AddWidget(ctx context.Context, input AddWidgetInput) (*domain.DashboardLayout, error) {
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

	if _, err := s.widgets.GetDefinitionByID(ctx, input.WidgetDefinitionID); err != nil {
		return nil, fmt.Errorf("get widget definition: %w", err)
	}

	count, err := s.layouts.CountByDashboard(ctx, input.DashboardID)
	if err != nil {
		return nil, fmt.Errorf("count layouts: %w", err)
	}
	if s.limits.MaxWidgetsPerDashboard > 0 && count >= s.limits.MaxWidgetsPerDashboard {
		return nil, domain.NewValidationError("widgets",
			fmt.Sprintf("limit reached (max %d)", s.limits.MaxWidgetsPerDashboard))
	}

	cfg := domain.DefaultLayoutConfig()
	if input.LayoutConfig != nil {
		cfg = input.LayoutConfig.MergeOverDefault()
	}

	displayOrder := count
	if input.DisplayOrder != nil {
		displayOrder = *input.DisplayOrder
	}

	created, err := s.layouts.Create(ctx, &domain.DashboardLayout{
		DashboardID:        input.DashboardID,
		WidgetDefinitionID: input.WidgetDefinitionID,
		LayoutConfig:       cfg,
		InstanceConfig:     input.InstanceConfig,
		DisplayOrder:       displayOrder,
	})
	if err != nil {
		return nil, fmt.Errorf("create layout: %w", err)
	}

	version := s.bumpVersion(ctx, input.DashboardID)

	s.log.InfoContext(ctx, "widget added",
		slog.String("user_id", userID.String()),
		slog.String("dashboard_id", input.DashboardID.String()),
		slog.String("layout_id", created.ID.String()),
		slog.Int("version", version),
	)

	return created, nil
}
