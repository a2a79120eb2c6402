package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// TestUser is the seeded users row.
type TestUser struct {
	ID    uuid.UUID
	Email string
	Name  string
	Role  string
}

// SeedUser creates a user row with the default role. Returns the filled TestUser.
func SeedUser(t *testing.T, pool *pgxpool.Pool) TestUser {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	user := TestUser{
		ID:    uuid.New(),
		Email: "testuser-" + suffix + "@example.com",
		Name:  "Test User " + suffix,
		Role:  "user",
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, role) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Email, user.Name, user.Role,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedWidgetType creates a widget type with a unique name.
func SeedWidgetType(t *testing.T, pool *pgxpool.Pool) domain.WidgetType {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	wt := domain.WidgetType{
		ID:            uuid.New(),
		Name:          "chart-" + suffix,
		ComponentName: "ChartWidget",
		DefaultConfig: map[string]any{"refreshInterval": float64(60)},
	}

	cfg, err := json.Marshal(wt.DefaultConfig)
	if err != nil {
		t.Fatalf("testhelper: SeedWidgetType marshal: %v", err)
	}

	err = pool.QueryRow(ctx,
		`INSERT INTO widget_types (id, name, component_name, default_config)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		wt.ID, wt.Name, wt.ComponentName, cfg,
	).Scan(&wt.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedWidgetType: %v", err)
	}

	return wt
}

// SeedWidgetDefinition creates a widget definition owned by the given user,
// seeding a widget type for it.
func SeedWidgetDefinition(t *testing.T, pool *pgxpool.Pool, createdBy uuid.UUID) domain.WidgetDefinition {
	t.Helper()
	ctx := context.Background()

	wt := SeedWidgetType(t, pool)
	suffix := uniqueSuffix()
	def := domain.WidgetDefinition{
		ID:               uuid.New(),
		Name:             "cpu-usage-" + suffix,
		WidgetTypeID:     wt.ID,
		DataSourceConfig: map[string]any{"metric": "cpu.usage"},
		LayoutConfig:     map[string]any{},
		CreatedBy:        createdBy,
	}

	dsCfg, err := json.Marshal(def.DataSourceConfig)
	if err != nil {
		t.Fatalf("testhelper: SeedWidgetDefinition marshal: %v", err)
	}

	err = pool.QueryRow(ctx,
		`INSERT INTO widget_definitions (id, name, widget_type_id, data_source_config, layout_config, created_by)
		 VALUES ($1, $2, $3, $4, '{}'::jsonb, $5)
		 RETURNING created_at, updated_at`,
		def.ID, def.Name, def.WidgetTypeID, dsCfg, def.CreatedBy,
	).Scan(&def.CreatedAt, &def.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedWidgetDefinition: %v", err)
	}

	return def
}

// SeedDashboard creates a dashboard owned by the given user with the default
// grid configuration.
func SeedDashboard(t *testing.T, pool *pgxpool.Pool, createdBy uuid.UUID) domain.Dashboard {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	d := domain.Dashboard{
		ID:         uuid.New(),
		Name:       "Dashboard " + suffix,
		Version:    1,
		IsActive:   true,
		GridConfig: domain.DefaultGridConfig(),
		CreatedBy:  createdBy,
	}

	cfg, err := json.Marshal(d.GridConfig)
	if err != nil {
		t.Fatalf("testhelper: SeedDashboard marshal: %v", err)
	}

	err = pool.QueryRow(ctx,
		`INSERT INTO dashboards (id, name, version, is_active, grid_config, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		d.ID, d.Name, d.Version, d.IsActive, cfg, d.CreatedBy,
	).Scan(&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedDashboard: %v", err)
	}

	return d
}

// SeedShare creates a share grant. A nil expiresAt means permanent.
func SeedShare(t *testing.T, pool *pgxpool.Pool, dashboardID, userID, sharedBy uuid.UUID, level domain.PermissionLevel, expiresAt *time.Time) domain.DashboardShare {
	t.Helper()
	ctx := context.Background()

	s := domain.DashboardShare{
		ID:              uuid.New(),
		DashboardID:     dashboardID,
		UserID:          userID,
		PermissionLevel: level,
		SharedBy:        sharedBy,
		ExpiresAt:       expiresAt,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO dashboard_shares (id, dashboard_id, user_id, permission_level, shared_by, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING shared_at`,
		s.ID, s.DashboardID, s.UserID, string(s.PermissionLevel), s.SharedBy, s.ExpiresAt,
	).Scan(&s.SharedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedShare: %v", err)
	}

	return s
}

// SeedLayout creates a placement with the default geometry and the given
// display order.
func SeedLayout(t *testing.T, pool *pgxpool.Pool, dashboardID, widgetDefinitionID uuid.UUID, displayOrder int) domain.DashboardLayout {
	t.Helper()
	ctx := context.Background()

	l := domain.DashboardLayout{
		ID:                 uuid.New(),
		DashboardID:        dashboardID,
		WidgetDefinitionID: widgetDefinitionID,
		LayoutConfig:       domain.DefaultLayoutConfig(),
		InstanceConfig:     map[string]any{},
		DisplayOrder:       displayOrder,
	}

	cfg, err := json.Marshal(l.LayoutConfig)
	if err != nil {
		t.Fatalf("testhelper: SeedLayout marshal: %v", err)
	}

	err = pool.QueryRow(ctx,
		`INSERT INTO dashboard_layouts (id, dashboard_id, widget_definition_id, layout_config, instance_config, display_order)
		 VALUES ($1, $2, $3, $4, '{}'::jsonb, $5)
		 RETURNING created_at, updated_at`,
		l.ID, l.DashboardID, l.WidgetDefinitionID, cfg, l.DisplayOrder,
	).Scan(&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedLayout: %v", err)
	}

	return l
}
