// Package dashboard implements the Dashboard repository using PostgreSQL.
// It owns the dashboards table: CRUD, the permission-labeled user listing,
// and the structural version counter.
package dashboard

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

// Repo provides dashboard persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new dashboard repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const dashboardColumns = `id, name, description, version, is_active, grid_config, created_by, created_at, updated_at`

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO dashboards (name, description, grid_config, created_by)
VALUES ($1, $2, $3, $4)
RETURNING ` + dashboardColumns

const getByIDSQL = `
SELECT ` + dashboardColumns + `
FROM dashboards
WHERE id = $1`

const listForUserSQL = `
SELECT d.id, d.name, d.description, d.version, d.is_active, d.grid_config,
       d.created_by, d.created_at, d.updated_at,
       ds.permission_level
FROM dashboards d
LEFT JOIN dashboard_shares ds
       ON ds.dashboard_id = d.id
      AND ds.user_id = $1
      AND (ds.expires_at IS NULL OR ds.expires_at > now())
WHERE d.created_by = $1 OR ds.id IS NOT NULL
ORDER BY d.updated_at DESC, d.id`

const listOwnedSQL = `
SELECT ` + dashboardColumns + `
FROM dashboards
WHERE created_by = $1
ORDER BY updated_at DESC, id`

const incrementVersionSQL = `
UPDATE dashboards
SET version = version + 1, updated_at = now()
WHERE id = $1
RETURNING ` + dashboardColumns

const deleteSQL = `DELETE FROM dashboards WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a dashboard by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dashboard, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	d, err := scanDashboard(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "dashboard", id)
	}

	return d, nil
}

// ListForUser returns dashboards the user owns plus, when includeShared is
// set, dashboards with an active share grant for the user. Each row carries
// its permission label: "owner" for owned dashboards, otherwise the share
// rank. Duplicate active grants collapse to the maximum rank.
func (r *Repo) ListForUser(ctx context.Context, userID uuid.UUID, includeShared bool) ([]domain.DashboardWithPermission, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if !includeShared {
		rows, err := q.Query(ctx, listOwnedSQL, userID)
		if err != nil {
			return nil, fmt.Errorf("list dashboards: %w", err)
		}
		defer rows.Close()

		result := []domain.DashboardWithPermission{}
		for rows.Next() {
			d, err := scanDashboardFromRows(rows)
			if err != nil {
				return nil, fmt.Errorf("list dashboards: %w", err)
			}
			result = append(result, domain.DashboardWithPermission{
				Dashboard:  *d,
				Permission: domain.PermissionLabelOwner,
			})
		}
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("list dashboards: %w", err)
		}
		return result, nil
	}

	rows, err := q.Query(ctx, listForUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list dashboards: %w", err)
	}
	defer rows.Close()

	// The join yields one row per active grant; fold duplicates keeping the
	// highest rank. Ownership wins outright.
	result := []domain.DashboardWithPermission{}
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var level pgtype.Text
		d, err := scanDashboardWith(rows, &level)
		if err != nil {
			return nil, fmt.Errorf("list dashboards: %w", err)
		}

		label := domain.PermissionLabelOwner
		if d.CreatedBy != userID {
			label = level.String
		}

		if i, ok := index[d.ID]; ok {
			if result[i].Permission != domain.PermissionLabelOwner {
				held := domain.PermissionLevel(result[i].Permission)
				result[i].Permission = domain.MaxPermission(held, domain.PermissionLevel(label)).String()
			}
			continue
		}

		index[d.ID] = len(result)
		result = append(result, domain.DashboardWithPermission{Dashboard: *d, Permission: label})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list dashboards: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new dashboard and returns the persisted row.
// GridConfig must already be resolved (defaulted) by the caller.
func (r *Repo) Create(ctx context.Context, d *domain.Dashboard) (*domain.Dashboard, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	cfg, err := json.Marshal(d.GridConfig)
	if err != nil {
		return nil, fmt.Errorf("marshal grid_config: %w", err)
	}

	created, err := scanDashboard(q.QueryRow(ctx, createSQL, d.Name, d.Description, cfg, d.CreatedBy))
	if err != nil {
		return nil, postgres.MapError(err, "dashboard", uuid.Nil)
	}

	return created, nil
}

// Update applies the allow-listed partial fields and stamps updated_at.
// It never touches created_by and does not increment version; that is
// IncrementVersion's job. Returns domain.ErrValidation when no allow-listed
// field is supplied and domain.ErrNotFound when the dashboard is absent.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.DashboardUpdateParams) (*domain.Dashboard, error) {
	if params.Empty() {
		return nil, domain.NewValidationError("update", "no valid fields to update")
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := builder.Update("dashboards").Set("updated_at", sq.Expr("now()"))
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
	if params.Version != nil {
		b = b.Set("version", *params.Version)
	}
	if params.IsActive != nil {
		b = b.Set("is_active", *params.IsActive)
	}
	if params.GridConfig != nil {
		cfg, err := json.Marshal(*params.GridConfig)
		if err != nil {
			return nil, fmt.Errorf("marshal grid_config: %w", err)
		}
		b = b.Set("grid_config", cfg)
	}

	sql, args, err := b.Where(sq.Eq{"id": id}).Suffix("RETURNING " + dashboardColumns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	d, err := scanDashboard(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "dashboard", id)
	}

	return d, nil
}

// IncrementVersion atomically bumps version by exactly 1 and stamps
// updated_at. Called once per successful structural layout mutation by the
// orchestrating service.
func (r *Repo) IncrementVersion(ctx context.Context, id uuid.UUID) (*domain.Dashboard, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	d, err := scanDashboard(q.QueryRow(ctx, incrementVersionSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "dashboard", id)
	}

	return d, nil
}

// Delete removes the dashboard row. Dependent layouts and shares must be
// removed first by the orchestrating service; there is no DB-level cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "dashboard", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("dashboard %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanDashboard(row pgx.Row) (*domain.Dashboard, error) {
	var (
		d           domain.Dashboard
		description pgtype.Text
		gridConfig  []byte
	)

	err := row.Scan(&d.ID, &d.Name, &description, &d.Version, &d.IsActive,
		&gridConfig, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return finishDashboard(&d, description, gridConfig)
}

func scanDashboardFromRows(rows pgx.Rows) (*domain.Dashboard, error) {
	var (
		d           domain.Dashboard
		description pgtype.Text
		gridConfig  []byte
	)

	err := rows.Scan(&d.ID, &d.Name, &description, &d.Version, &d.IsActive,
		&gridConfig, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return finishDashboard(&d, description, gridConfig)
}

// scanDashboardWith scans a dashboard row with one trailing extra column.
func scanDashboardWith(rows pgx.Rows, extra any) (*domain.Dashboard, error) {
	var (
		d           domain.Dashboard
		description pgtype.Text
		gridConfig  []byte
	)

	err := rows.Scan(&d.ID, &d.Name, &description, &d.Version, &d.IsActive,
		&gridConfig, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt, extra)
	if err != nil {
		return nil, err
	}

	return finishDashboard(&d, description, gridConfig)
}

func finishDashboard(d *domain.Dashboard, description pgtype.Text, gridConfig []byte) (*domain.Dashboard, error) {
	if description.Valid {
		d.Description = &description.String
	}
	if len(gridConfig) > 0 {
		if err := json.Unmarshal(gridConfig, &d.GridConfig); err != nil {
			return nil, fmt.Errorf("unmarshal grid_config: %w", err)
		}
	}
	return d, nil
}
