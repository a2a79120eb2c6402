// Package layout implements the DashboardLayout repository using PostgreSQL.
// A layout row places one widget instance on one dashboard; listing order is
// display_order ascending with created_at as tie-breaker.
package layout

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/pulseboard/pulseboard-backend/internal/adapter/postgres"
	"github.com/pulseboard/pulseboard-backend/internal/domain"
)

// Repo provides layout persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new layout repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const layoutColumns = `id, dashboard_id, widget_definition_id, layout_config, instance_config, display_order, created_at, updated_at`

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO dashboard_layouts (dashboard_id, widget_definition_id, layout_config, instance_config, display_order)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + layoutColumns

const getByIDSQL = `
SELECT ` + layoutColumns + `
FROM dashboard_layouts
WHERE id = $1`

const listByDashboardSQL = `
SELECT ` + layoutColumns + `
FROM dashboard_layouts
WHERE dashboard_id = $1
ORDER BY display_order ASC, created_at ASC`

const deleteSQL = `DELETE FROM dashboard_layouts WHERE id = $1`

const deleteByDashboardSQL = `DELETE FROM dashboard_layouts WHERE dashboard_id = $1`

const countByDashboardSQL = `SELECT count(*) FROM dashboard_layouts WHERE dashboard_id = $1`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create inserts a layout row and returns the persisted record.
// LayoutConfig must already be merged over defaults by the caller.
func (r *Repo) Create(ctx context.Context, l *domain.DashboardLayout) (*domain.DashboardLayout, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	layoutCfg, err := json.Marshal(l.LayoutConfig)
	if err != nil {
		return nil, fmt.Errorf("marshal layout_config: %w", err)
	}
	instanceCfg, err := marshalInstanceConfig(l.InstanceConfig)
	if err != nil {
		return nil, err
	}

	created, err := scanLayout(q.QueryRow(ctx, createSQL,
		l.DashboardID, l.WidgetDefinitionID, layoutCfg, instanceCfg, l.DisplayOrder))
	if err != nil {
		return nil, postgres.MapError(err, "layout", uuid.Nil)
	}

	return created, nil
}

// GetByID returns a layout by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DashboardLayout, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scanLayout(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "layout", id)
	}

	return l, nil
}

// ListByDashboard returns the dashboard's layouts in display order.
func (r *Repo) ListByDashboard(ctx context.Context, dashboardID uuid.UUID) ([]domain.DashboardLayout, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByDashboardSQL, dashboardID)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	defer rows.Close()

	result := []domain.DashboardLayout{}
	for rows.Next() {
		l, err := scanLayoutFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("list layouts: %w", err)
		}
		result = append(result, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}

	return result, nil
}

// CountByDashboard returns the number of layouts on a dashboard.
func (r *Repo) CountByDashboard(ctx context.Context, dashboardID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, countByDashboardSQL, dashboardID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count layouts: %w", err)
	}

	return n, nil
}

// Update applies the allow-listed partial fields. A supplied LayoutConfig
// replaces the stored placement wholesale; there is no deep merge on update.
// Returns domain.ErrValidation when no field is supplied.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.LayoutUpdateParams) (*domain.DashboardLayout, error) {
	if params.Empty() {
		return nil, domain.NewValidationError("update", "no valid fields to update")
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := builder.Update("dashboard_layouts").Set("updated_at", sq.Expr("now()"))
	if params.LayoutConfig != nil {
		cfg, err := json.Marshal(*params.LayoutConfig)
		if err != nil {
			return nil, fmt.Errorf("marshal layout_config: %w", err)
		}
		b = b.Set("layout_config", cfg)
	}
	if params.InstanceConfig != nil {
		cfg, err := json.Marshal(params.InstanceConfig)
		if err != nil {
			return nil, fmt.Errorf("marshal instance_config: %w", err)
		}
		b = b.Set("instance_config", cfg)
	}
	if params.DisplayOrder != nil {
		b = b.Set("display_order", *params.DisplayOrder)
	}

	sql, args, err := b.Where(sq.Eq{"id": id}).Suffix("RETURNING " + layoutColumns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	l, err := scanLayout(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "layout", id)
	}

	return l, nil
}

// Delete removes a layout row.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "layout", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("layout %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteByDashboard removes every layout on a dashboard. Used by the
// cascading dashboard delete; removing zero rows is not an error.
func (r *Repo) DeleteByDashboard(ctx context.Context, dashboardID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deleteByDashboardSQL, dashboardID); err != nil {
		return postgres.MapError(err, "layout", uuid.Nil)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanLayout(row pgx.Row) (*domain.DashboardLayout, error) {
	var (
		l           domain.DashboardLayout
		layoutCfg   []byte
		instanceCfg []byte
	)

	err := row.Scan(&l.ID, &l.DashboardID, &l.WidgetDefinitionID,
		&layoutCfg, &instanceCfg, &l.DisplayOrder, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return finishLayout(&l, layoutCfg, instanceCfg)
}

func scanLayoutFromRows(rows pgx.Rows) (*domain.DashboardLayout, error) {
	var (
		l           domain.DashboardLayout
		layoutCfg   []byte
		instanceCfg []byte
	)

	err := rows.Scan(&l.ID, &l.DashboardID, &l.WidgetDefinitionID,
		&layoutCfg, &instanceCfg, &l.DisplayOrder, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return finishLayout(&l, layoutCfg, instanceCfg)
}

func finishLayout(l *domain.DashboardLayout, layoutCfg, instanceCfg []byte) (*domain.DashboardLayout, error) {
	if len(layoutCfg) > 0 {
		if err := json.Unmarshal(layoutCfg, &l.LayoutConfig); err != nil {
			return nil, fmt.Errorf("unmarshal layout_config: %w", err)
		}
	}
	if len(instanceCfg) > 0 {
		if err := json.Unmarshal(instanceCfg, &l.InstanceConfig); err != nil {
			return nil, fmt.Errorf("unmarshal instance_config: %w", err)
		}
	}
	return l, nil
}

func marshalInstanceConfig(cfg map[string]any) ([]byte, error) {
	if cfg == nil {
		cfg = map[string]any{}
	}
	b, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal instance_config: %w", err)
	}
	return b, nil
}
