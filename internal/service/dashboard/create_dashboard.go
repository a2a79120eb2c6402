package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
	"github.com/pulseboard/pulseboard-backend/pkg/ctxutil"
)

// CreateDashboard creates a dashboard for the authenticated user. An
// omitted grid config gets the standard 12-column default; each entry of
// the optional widgets array becomes a layout row whose display order is
// its array index and whose partial layout config merges over the default
// placement. Dashboard and layouts commit atomically.
func (s *Service) CreateDashboard(ctx context.Context, input CreateDashboardInput) (*Detail, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if s.limits.MaxWidgetsPerDashboard > 0 && len(input.Widgets) > s.limits.MaxWidgetsPerDashboard {
		return nil, domain.NewValidationError("widgets",
			fmt.Sprintf("limit reached (max %d)", s.limits.MaxWidgetsPerDashboard))
	}

	gridConfig := domain.DefaultGridConfig()
	if input.GridConfig != nil {
		gridConfig = *input.GridConfig
	}

	var detail *Detail
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		created, err := s.dashboards.Create(txCtx, &domain.Dashboard{
			Name:        strings.TrimSpace(input.Name),
			Description: trimOrNil(input.Description),
			GridConfig:  gridConfig,
			CreatedBy:   userID,
		})
		if err != nil {
			return fmt.Errorf("create dashboard: %w", err)
		}

		layouts := make([]domain.DashboardLayout, 0, len(input.Widgets))
		for idx, w := range input.Widgets {
			cfg := domain.DefaultLayoutConfig()
			if w.LayoutConfig != nil {
				cfg = w.LayoutConfig.MergeOverDefault()
			}

			l, err := s.layouts.Create(txCtx, &domain.DashboardLayout{
				DashboardID:        created.ID,
				WidgetDefinitionID: w.WidgetDefinitionID,
				LayoutConfig:       cfg,
				InstanceConfig:     w.InstanceConfig,
				DisplayOrder:       idx,
			})
			if err != nil {
				return fmt.Errorf("create layout %d: %w", idx, err)
			}
			layouts = append(layouts, *l)
		}

		detail = &Detail{
			Dashboard:  *created,
			Permission: domain.PermissionLabelOwner,
			Layouts:    layouts,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "dashboard created",
		slog.String("user_id", userID.String()),
		slog.String("dashboard_id", detail.Dashboard.ID.String()),
		slog.Int("widgets", len(detail.Layouts)),
	)

	return detail, nil
}
