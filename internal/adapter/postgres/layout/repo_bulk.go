package layout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/pulseboard/pulseboard-backend/internal/adapter/postgres"
	"github.com/pulseboard/pulseboard-backend/internal/domain"
)

// updatePlacementSQL is scoped by both id and dashboard_id so a batch can
// never move a layout belonging to another dashboard. COALESCE keeps the
// stored instance_config and display_order when the entry omits them;
// layout_config is always replaced wholesale.
const updatePlacementSQL = `
UPDATE dashboard_layouts
SET layout_config  = $1,
    instance_config = COALESCE($2, instance_config),
    display_order   = COALESCE($3, display_order),
    updated_at      = now()
WHERE id = $4 AND dashboard_id = $5
RETURNING ` + layoutColumns

// UpdatePlacement applies one bulk-reposition entry and returns the row as
// updated. Entries referencing layouts outside the dashboard match nothing;
// the result is then (nil, nil) and the caller skips the entry.
func (r *Repo) UpdatePlacement(ctx context.Context, dashboardID uuid.UUID, entry domain.LayoutBatchEntry) (*domain.DashboardLayout, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	layoutCfg, err := json.Marshal(entry.LayoutConfig)
	if err != nil {
		return nil, fmt.Errorf("marshal layout_config: %w", err)
	}

	var instanceCfg []byte
	if entry.InstanceConfig != nil {
		instanceCfg, err = json.Marshal(entry.InstanceConfig)
		if err != nil {
			return nil, fmt.Errorf("marshal instance_config: %w", err)
		}
	}

	l, err := scanLayout(q.QueryRow(ctx, updatePlacementSQL,
		layoutCfg, instanceCfg, entry.DisplayOrder, entry.ID, dashboardID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, postgres.MapError(err, "layout", entry.ID)
	}

	return l, nil
}
