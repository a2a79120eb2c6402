package layout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
	"github.com/pulseboard/pulseboard-backend/pkg/ctxutil"
)

// BulkResult is the outcome of a bulk reposition.
type BulkResult struct {
	// Layouts holds the rows actually updated, in batch order. Skipped
	// entries contribute nothing, so the list may be shorter than the
	// batch.
	Layouts []domain.DashboardLayout
	// Updated counts entries that matched a layout on the dashboard.
	Updated int
	// Skipped counts entries referencing unknown layouts or layouts
	// belonging to another dashboard. Skipping is not an error.
	Skipped int
	// Version is the dashboard version after the bump, 0 if nothing was
	// updated.
	Version int
}

// BulkReposition applies a batch of placement updates to one dashboard
// atomically: either every matching entry is applied or none are. Requires
// edit permission. Entries that match no layout on the dashboard are
// skipped without failing the batch; any other per-entry failure rolls the
// whole batch back. The version bump happens once, after the batch
// commits.
func (s *Service) BulkReposition(ctx context.Context, input BulkRepositionInput) (*BulkResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if s.limits.MaxBulkBatch > 0 && len(input.Entries) > s.limits.MaxBulkBatch {
		return nil, domain.NewValidationError("layouts",
			fmt.Sprintf("batch too large (max %d)", s.limits.MaxBulkBatch))
	}

	if _, err := s.access.Authorize(ctx, input.DashboardID, userID, domain.PermissionEdit); err != nil {
		return nil, err
	}

	result := &BulkResult{Layouts: []domain.DashboardLayout{}}
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for idx, entry := range input.Entries {
			updated, err := s.layouts.UpdatePlacement(txCtx, input.DashboardID, entry)
			if err != nil {
				return fmt.Errorf("update layout %d: %w", idx, err)
			}
			if updated == nil {
				result.Skipped++
				continue
			}
			result.Layouts = append(result.Layouts, *updated)
			result.Updated++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Updated > 0 {
		result.Version = s.bumpVersion(ctx, input.DashboardID)
	}

	s.log.InfoContext(ctx, "bulk reposition applied",
		slog.String("user_id", userID.String()),
		slog.String("dashboard_id", input.DashboardID.String()),
		slog.Int("updated", result.Updated),
		slog.Int("skipped", result.Skipped),
		slog.Int("version", result.Version),
	)

	return result, nil
}
