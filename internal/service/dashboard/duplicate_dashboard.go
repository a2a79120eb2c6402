package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
	"github.com/pulseboard/pulseboard-backend/pkg/ctxutil"
)

// DuplicateDashboard clones a dashboard the caller can at least view: grid
// config and every layout row are copied under fresh ids, owned by the
// caller, with version reset to 1. The default name is the source name
// suffixed with " (Copy)".
func (s *Service) DuplicateDashboard(ctx context.Context, input DuplicateDashboardInput) (*Detail, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.access.Authorize(ctx, input.DashboardID, userID, domain.PermissionView); err != nil {
		return nil, err
	}

	source, err := s.dashboards.GetByID(ctx, input.DashboardID)
	if err != nil {
		return nil, fmt.Errorf("get dashboard: %w", err)
	}

	name := source.Name + " (Copy)"
	if input.Name != nil {
		name = strings.TrimSpace(*input.Name)
	}

	sourceLayouts, err := s.layouts.ListByDashboard(ctx, input.DashboardID)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}

	var detail *Detail
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		clone, err := s.dashboards.Create(txCtx, &domain.Dashboard{
			Name:        name,
			Description: source.Description,
			GridConfig:  source.GridConfig,
			CreatedBy:   userID,
		})
		if err != nil {
			return fmt.Errorf("create dashboard: %w", err)
		}

		layouts := make([]domain.DashboardLayout, 0, len(sourceLayouts))
		for _, src := range sourceLayouts {
			l, err := s.layouts.Create(txCtx, &domain.DashboardLayout{
				DashboardID:        clone.ID,
				WidgetDefinitionID: src.WidgetDefinitionID,
				LayoutConfig:       src.LayoutConfig,
				InstanceConfig:     src.InstanceConfig,
				DisplayOrder:       src.DisplayOrder,
			})
			if err != nil {
				return fmt.Errorf("clone layout: %w", err)
			}
			layouts = append(layouts, *l)
		}

		detail = &Detail{
			Dashboard:  *clone,
			Permission: domain.PermissionLabelOwner,
			Layouts:    layouts,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "dashboard duplicated",
		slog.String("user_id", userID.String()),
		slog.String("source_id", input.DashboardID.String()),
		slog.String("dashboard_id", detail.Dashboard.ID.String()),
	)

	return detail, nil
}
