package rest

import (
	"net/http"
)

// Handlers bundles every REST handler the router mounts.
type Handlers struct {
	Dashboard *DashboardHandler
	Layout    *LayoutHandler
	Share     *ShareHandler
	Widget    *WidgetHandler
	Health    *HealthHandler
}

// NewRouter builds the route table. Method-qualified patterns; path ids are
// read via Request.PathValue in the handlers.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("GET /api/dashboards", h.Dashboard.List)
	mux.HandleFunc("POST /api/dashboards", h.Dashboard.Create)
	mux.HandleFunc("GET /api/dashboards/{id}", h.Dashboard.Get)
	mux.HandleFunc("PUT /api/dashboards/{id}", h.Dashboard.Update)
	mux.HandleFunc("DELETE /api/dashboards/{id}", h.Dashboard.Delete)
	mux.HandleFunc("POST /api/dashboards/{id}/duplicate", h.Dashboard.Duplicate)

	mux.HandleFunc("GET /api/dashboards/{id}/shares", h.Share.List)
	mux.HandleFunc("POST /api/dashboards/{id}/share", h.Share.Create)
	mux.HandleFunc("DELETE /api/dashboards/{id}/share/{userId}", h.Share.Revoke)
	mux.HandleFunc("GET /api/shares", h.Share.ListMine)

	mux.HandleFunc("GET /api/layouts/dashboard/{dashboardId}", h.Layout.ListByDashboard)
	mux.HandleFunc("PUT /api/layouts/dashboard/{dashboardId}/bulk", h.Layout.BulkUpdate)
	mux.HandleFunc("POST /api/layouts", h.Layout.Create)
	mux.HandleFunc("GET /api/layouts/{id}", h.Layout.Get)
	mux.HandleFunc("PUT /api/layouts/{id}", h.Layout.Update)
	mux.HandleFunc("DELETE /api/layouts/{id}", h.Layout.Delete)

	mux.HandleFunc("GET /api/widget-types", h.Widget.ListTypes)
	mux.HandleFunc("POST /api/widget-types", h.Widget.CreateType)
	mux.HandleFunc("GET /api/widget-types/{id}", h.Widget.GetType)
	mux.HandleFunc("PUT /api/widget-types/{id}", h.Widget.UpdateType)
	mux.HandleFunc("DELETE /api/widget-types/{id}", h.Widget.DeleteType)

	mux.HandleFunc("GET /api/widget-definitions", h.Widget.ListDefinitions)
	mux.HandleFunc("POST /api/widget-definitions", h.Widget.CreateDefinition)
	mux.HandleFunc("GET /api/widget-definitions/{id}", h.Widget.GetDefinition)
	mux.HandleFunc("PUT /api/widget-definitions/{id}", h.Widget.UpdateDefinition)
	mux.HandleFunc("DELETE /api/widget-definitions/{id}", h.Widget.DeleteDefinition)

	return mux
}
