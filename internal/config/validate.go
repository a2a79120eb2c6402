package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.RateLimitPerMin < 0 {
		return fmt.Errorf("server.rate_limit_per_min must be >= 0 (got %d)", c.Server.RateLimitPerMin)
	}

	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns (%d) must be >= min_conns (%d)", c.Database.MaxConns, c.Database.MinConns)
	}

	if c.Dashboard.MaxWidgetsPerDashboard <= 0 {
		return fmt.Errorf("dashboard.max_widgets_per_dashboard must be > 0 (got %d)", c.Dashboard.MaxWidgetsPerDashboard)
	}
	if c.Dashboard.MaxBulkBatch <= 0 {
		return fmt.Errorf("dashboard.max_bulk_batch must be > 0 (got %d)", c.Dashboard.MaxBulkBatch)
	}

	return nil
}
