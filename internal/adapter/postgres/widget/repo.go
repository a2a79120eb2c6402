// Package widget implements the widget catalog repositories using
// PostgreSQL: widget types (renderable components) and widget definitions
// (configured data-source bindings placed on dashboards).
package widget

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/pulseboard/pulseboard-backend/internal/adapter/postgres"
	"github.com/pulseboard/pulseboard-backend/internal/domain"
)

// Repo provides widget catalog persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new widget catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const typeColumns = `id, name, component_name, default_config, created_at`

const definitionColumns = `id, name, description, widget_type_id, data_source_config, layout_config, created_by, created_at, updated_at`

// ---------------------------------------------------------------------------
// Widget types
// ---------------------------------------------------------------------------

const createTypeSQL = `
INSERT INTO widget_types (name, component_name, default_config)
VALUES ($1, $2, $3)
RETURNING ` + typeColumns

const getTypeByIDSQL = `
SELECT ` + typeColumns + `
FROM widget_types
WHERE id = $1`

const listTypesSQL = `
SELECT ` + typeColumns + `
FROM widget_types
ORDER BY name ASC`

const deleteTypeSQL = `DELETE FROM widget_types WHERE id = $1`

// CreateType inserts a widget type. Type names are unique; a duplicate
// returns domain.ErrAlreadyExists.
func (r *Repo) CreateType(ctx context.Context, t *domain.WidgetType) (*domain.WidgetType, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	cfg, err := marshalConfig(t.DefaultConfig)
	if err != nil {
		return nil, err
	}

	created, err := scanType(q.QueryRow(ctx, createTypeSQL, t.Name, t.ComponentName, cfg))
	if err != nil {
		return nil, postgres.MapError(err, "widget_type", uuid.Nil)
	}

	return created, nil
}

// GetTypeByID returns a widget type by primary key.
func (r *Repo) GetTypeByID(ctx context.Context, id uuid.UUID) (*domain.WidgetType, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanType(q.QueryRow(ctx, getTypeByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "widget_type", id)
	}

	return t, nil
}

// ListTypes returns the full type catalog ordered by name.
func (r *Repo) ListTypes(ctx context.Context) ([]domain.WidgetType, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listTypesSQL)
	if err != nil {
		return nil, fmt.Errorf("list widget types: %w", err)
	}
	defer rows.Close()

	result := []domain.WidgetType{}
	for rows.Next() {
		t, err := scanTypeFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("list widget types: %w", err)
		}
		result = append(result, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list widget types: %w", err)
	}

	return result, nil
}

// UpdateType applies allow-listed partial fields to a widget type.
func (r *Repo) UpdateType(ctx context.Context, id uuid.UUID, params domain.WidgetTypeUpdateParams) (*domain.WidgetType, error) {
	if params.Empty() {
		return nil, domain.NewValidationError("update", "no valid fields to update")
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := builder.Update("widget_types")
	if params.Name != nil {
		b = b.Set("name", *params.Name)
	}
	if params.ComponentName != nil {
		b = b.Set("component_name", *params.ComponentName)
	}
	if params.DefaultConfig != nil {
		cfg, err := marshalConfig(params.DefaultConfig)
		if err != nil {
			return nil, err
		}
		b = b.Set("default_config", cfg)
	}

	sql, args, err := b.Where(sq.Eq{"id": id}).Suffix("RETURNING " + typeColumns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	t, err := scanType(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "widget_type", id)
	}

	return t, nil
}

// DeleteType removes a widget type. The FK from widget_definitions is
// RESTRICT, so a type still referenced by definitions fails with
// domain.ErrConflict rather than orphaning them.
func (r *Repo) DeleteType(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteTypeSQL, id)
	if err != nil {
		return postgres.MapDeleteError(err, "widget_type", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("widget_type %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Widget definitions
// ---------------------------------------------------------------------------

const createDefinitionSQL = `
INSERT INTO widget_definitions (name, description, widget_type_id, data_source_config, layout_config, created_by)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + definitionColumns

const getDefinitionByIDSQL = `
SELECT ` + definitionColumns + `
FROM widget_definitions
WHERE id = $1`

const deleteDefinitionSQL = `DELETE FROM widget_definitions WHERE id = $1`

// CreateDefinition inserts a widget definition. The referenced widget type
// must exist; a missing type surfaces as domain.ErrNotFound via the FK.
func (r *Repo) CreateDefinition(ctx context.Context, d *domain.WidgetDefinition) (*domain.WidgetDefinition, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	dataCfg, err := marshalConfig(d.DataSourceConfig)
	if err != nil {
		return nil, err
	}
	layoutCfg, err := marshalConfig(d.LayoutConfig)
	if err != nil {
		return nil, err
	}

	created, err := scanDefinition(q.QueryRow(ctx, createDefinitionSQL,
		d.Name, d.Description, d.WidgetTypeID, dataCfg, layoutCfg, d.CreatedBy))
	if err != nil {
		return nil, postgres.MapError(err, "widget_definition", uuid.Nil)
	}

	return created, nil
}

// GetDefinitionByID returns a widget definition by primary key.
func (r *Repo) GetDefinitionByID(ctx context.Context, id uuid.UUID) (*domain.WidgetDefinition, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	d, err := scanDefinition(q.QueryRow(ctx, getDefinitionByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "widget_definition", id)
	}

	return d, nil
}

// ListDefinitions returns definitions matching the filter, newest first.
// A zero filter returns the whole catalog.
func (r *Repo) ListDefinitions(ctx context.Context, filter domain.WidgetDefinitionFilter) ([]domain.WidgetDefinition, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := builder.Select(definitionColumns).
		From("widget_definitions").
		OrderBy("created_at DESC", "id")
	if filter.CreatedBy != nil {
		b = b.Where(sq.Eq{"created_by": *filter.CreatedBy})
	}
	if filter.WidgetTypeID != nil {
		b = b.Where(sq.Eq{"widget_type_id": *filter.WidgetTypeID})
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list widget definitions: %w", err)
	}
	defer rows.Close()

	result := []domain.WidgetDefinition{}
	for rows.Next() {
		d, err := scanDefinitionFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("list widget definitions: %w", err)
		}
		result = append(result, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list widget definitions: %w", err)
	}

	return result, nil
}

// UpdateDefinition applies allow-listed partial fields to a definition and
// stamps updated_at.
func (r *Repo) UpdateDefinition(ctx context.Context, id uuid.UUID, params domain.WidgetDefinitionUpdateParams) (*domain.WidgetDefinition, error) {
	if params.Empty() {
		return nil, domain.NewValidationError("update", "no valid fields to update")
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := builder.Update("widget_definitions").Set("updated_at", sq.Expr("now()"))
	if params.Name != nil {
		b = b.Set("name", *params.Name)
	}
	if params.Description != nil {
		if *params.Description == "" {
			b = b.Set("description", nil)
		} else {
			b = b.Set("description", *params.Description)
		}
	}
	if params.DataSourceConfig != nil {
		cfg, err := marshalConfig(params.DataSourceConfig)
		if err != nil {
			return nil, err
		}
		b = b.Set("data_source_config", cfg)
	}
	if params.LayoutConfig != nil {
		cfg, err := marshalConfig(params.LayoutConfig)
		if err != nil {
			return nil, err
		}
		b = b.Set("layout_config", cfg)
	}

	sql, args, err := b.Where(sq.Eq{"id": id}).Suffix("RETURNING " + definitionColumns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	d, err := scanDefinition(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "widget_definition", id)
	}

	return d, nil
}

// DeleteDefinition removes a widget definition. Definitions still placed on
// dashboards are protected by the RESTRICT FK from dashboard_layouts and
// fail with domain.ErrConflict.
func (r *Repo) DeleteDefinition(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteDefinitionSQL, id)
	if err != nil {
		return postgres.MapDeleteError(err, "widget_definition", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("widget_definition %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanType(row pgx.Row) (*domain.WidgetType, error) {
	var (
		t   domain.WidgetType
		cfg []byte
	)

	if err := row.Scan(&t.ID, &t.Name, &t.ComponentName, &cfg, &t.CreatedAt); err != nil {
		return nil, err
	}

	if len(cfg) > 0 {
		if err := json.Unmarshal(cfg, &t.DefaultConfig); err != nil {
			return nil, fmt.Errorf("unmarshal default_config: %w", err)
		}
	}

	return &t, nil
}

func scanTypeFromRows(rows pgx.Rows) (*domain.WidgetType, error) {
	var (
		t   domain.WidgetType
		cfg []byte
	)

	if err := rows.Scan(&t.ID, &t.Name, &t.ComponentName, &cfg, &t.CreatedAt); err != nil {
		return nil, err
	}

	if len(cfg) > 0 {
		if err := json.Unmarshal(cfg, &t.DefaultConfig); err != nil {
			return nil, fmt.Errorf("unmarshal default_config: %w", err)
		}
	}

	return &t, nil
}

func scanDefinition(row pgx.Row) (*domain.WidgetDefinition, error) {
	var (
		d           domain.WidgetDefinition
		description pgtype.Text
		dataCfg     []byte
		layoutCfg   []byte
	)

	err := row.Scan(&d.ID, &d.Name, &description, &d.WidgetTypeID,
		&dataCfg, &layoutCfg, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return finishDefinition(&d, description, dataCfg, layoutCfg)
}

func scanDefinitionFromRows(rows pgx.Rows) (*domain.WidgetDefinition, error) {
	var (
		d           domain.WidgetDefinition
		description pgtype.Text
		dataCfg     []byte
		layoutCfg   []byte
	)

	err := rows.Scan(&d.ID, &d.Name, &description, &d.WidgetTypeID,
		&dataCfg, &layoutCfg, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return finishDefinition(&d, description, dataCfg, layoutCfg)
}

func finishDefinition(d *domain.WidgetDefinition, description pgtype.Text, dataCfg, layoutCfg []byte) (*domain.WidgetDefinition, error) {
	if description.Valid {
		d.Description = &description.String
	}
	if len(dataCfg) > 0 {
		if err := json.Unmarshal(dataCfg, &d.DataSourceConfig); err != nil {
			return nil, fmt.Errorf("unmarshal data_source_config: %w", err)
		}
	}
	if len(layoutCfg) > 0 {
		if err := json.Unmarshal(layoutCfg, &d.LayoutConfig); err != nil {
			return nil, fmt.Errorf("unmarshal layout_config: %w", err)
		}
	}
	return d, nil
}

func marshalConfig(cfg map[string]any) ([]byte, error) {
	if cfg == nil {
		cfg = map[string]any{}
	}
	b, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return b, nil
}
