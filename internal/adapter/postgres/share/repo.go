// Package share implements the DashboardShare repository using PostgreSQL.
// Shares are time-bounded permission grants; listing operations only return
// active grants (no expiry, or expiry strictly in the future).
package share

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/pulseboard/pulseboard-backend/internal/adapter/postgres"
	"github.com/pulseboard/pulseboard-backend/internal/domain"
)

// Repo provides share persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new share repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const shareColumns = `id, dashboard_id, user_id, permission_level, shared_by, shared_at, expires_at`

const activePredicate = `(expires_at IS NULL OR expires_at > now())`

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO dashboard_shares (dashboard_id, user_id, permission_level, shared_by, expires_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + shareColumns

const getByIDSQL = `
SELECT ` + shareColumns + `
FROM dashboard_shares
WHERE id = $1`

const listByDashboardSQL = `
SELECT ` + shareColumns + `
FROM dashboard_shares
WHERE dashboard_id = $1 AND ` + activePredicate + `
ORDER BY shared_at DESC, id`

const listByUserSQL = `
SELECT ` + shareColumns + `
FROM dashboard_shares
WHERE user_id = $1 AND ` + activePredicate + `
ORDER BY shared_at DESC, id`

const listActiveGrantsSQL = `
SELECT ` + shareColumns + `
FROM dashboard_shares
WHERE dashboard_id = $1 AND user_id = $2 AND ` + activePredicate

const deleteSQL = `DELETE FROM dashboard_shares WHERE id = $1`

const revokeSQL = `DELETE FROM dashboard_shares WHERE dashboard_id = $1 AND user_id = $2`

const deleteByDashboardSQL = `DELETE FROM dashboard_shares WHERE dashboard_id = $1`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create inserts a share grant and returns the persisted row.
func (r *Repo) Create(ctx context.Context, s *domain.DashboardShare) (*domain.DashboardShare, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanShare(q.QueryRow(ctx, createSQL,
		s.DashboardID, s.UserID, s.PermissionLevel.String(), s.SharedBy, s.ExpiresAt))
	if err != nil {
		return nil, postgres.MapError(err, "share", uuid.Nil)
	}

	return created, nil
}

// GetByID returns a share by primary key regardless of expiry.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DashboardShare, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanShare(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "share", id)
	}

	return s, nil
}

// ListByDashboard returns the active grants on a dashboard, newest first.
func (r *Repo) ListByDashboard(ctx context.Context, dashboardID uuid.UUID) ([]domain.DashboardShare, error) {
	return r.list(ctx, listByDashboardSQL, dashboardID)
}

// ListByUser returns the active grants held by a user, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.DashboardShare, error) {
	return r.list(ctx, listByUserSQL, userID)
}

// ListActiveGrants returns every active grant the user holds on the
// dashboard. A user may hold several; permission resolution takes the
// maximum rank across them.
func (r *Repo) ListActiveGrants(ctx context.Context, dashboardID, userID uuid.UUID) ([]domain.DashboardShare, error) {
	return r.list(ctx, listActiveGrantsSQL, dashboardID, userID)
}

// Delete removes a single share by primary key.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "share", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("share %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Revoke removes every grant the user holds on the dashboard.
// Returns domain.ErrNotFound when no grant existed.
func (r *Repo) Revoke(ctx context.Context, dashboardID, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, revokeSQL, dashboardID, userID)
	if err != nil {
		return postgres.MapError(err, "share", uuid.Nil)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("share for user %s: %w", userID, domain.ErrNotFound)
	}

	return nil
}

// DeleteByDashboard removes all grants on a dashboard. Used by the cascading
// dashboard delete; removing zero rows is not an error.
func (r *Repo) DeleteByDashboard(ctx context.Context, dashboardID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deleteByDashboardSQL, dashboardID); err != nil {
		return postgres.MapError(err, "share", uuid.Nil)
	}

	return nil
}

func (r *Repo) list(ctx context.Context, sql string, args ...any) ([]domain.DashboardShare, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list shares: %w", err)
	}
	defer rows.Close()

	result := []domain.DashboardShare{}
	for rows.Next() {
		s, err := scanShareFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("list shares: %w", err)
		}
		result = append(result, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list shares: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanShare(row pgx.Row) (*domain.DashboardShare, error) {
	var (
		s         domain.DashboardShare
		level     string
		expiresAt pgtype.Timestamptz
	)

	err := row.Scan(&s.ID, &s.DashboardID, &s.UserID, &level, &s.SharedBy, &s.SharedAt, &expiresAt)
	if err != nil {
		return nil, err
	}

	s.PermissionLevel = domain.PermissionLevel(level)
	if expiresAt.Valid {
		t := expiresAt.Time
		s.ExpiresAt = &t
	}

	return &s, nil
}

func scanShareFromRows(rows pgx.Rows) (*domain.DashboardShare, error) {
	var (
		s         domain.DashboardShare
		level     string
		expiresAt pgtype.Timestamptz
	)

	err := rows.Scan(&s.ID, &s.DashboardID, &s.UserID, &level, &s.SharedBy, &s.SharedAt, &expiresAt)
	if err != nil {
		return nil, err
	}

	s.PermissionLevel = domain.PermissionLevel(level)
	if expiresAt.Valid {
		t := expiresAt.Time
		s.ExpiresAt = &t
	}

	return &s, nil
}
