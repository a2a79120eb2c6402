package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
	"github.com/pulseboard/pulseboard-backend/internal/service/dashboard"
)

// dashboardService defines the minimal interface needed by DashboardHandler.
type dashboardService interface {
	CreateDashboard(ctx context.Context, input dashboard.CreateDashboardInput) (*dashboard.Detail, error)
	GetDashboard(ctx context.Context, dashboardID uuid.UUID) (*dashboard.Detail, error)
	ListDashboards(ctx context.Context, includeShared bool) ([]domain.DashboardWithPermission, error)
	UpdateDashboard(ctx context.Context, input dashboard.UpdateDashboardInput) (*domain.Dashboard, error)
	DeleteDashboard(ctx context.Context, dashboardID uuid.UUID) error
	DuplicateDashboard(ctx context.Context, input dashboard.DuplicateDashboardInput) (*dashboard.Detail, error)
}

// DashboardHandler serves dashboard REST endpoints.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

type initialWidgetRequest struct {
	WidgetDefinitionID uuid.UUID                 `json:"widget_definition_id"`
	LayoutConfig       *domain.LayoutConfigPatch `json:"layout_config"`
	InstanceConfig     map[string]any            `json:"instance_config"`
}

type createDashboardRequest struct {
	Name        string                 `json:"name"`
	Description *string                `json:"description"`
	GridConfig  *domain.GridConfig     `json:"grid_config"`
	Widgets     []initialWidgetRequest `json:"widgets"`
}

type updateDashboardRequest struct {
	Name        *string            `json:"name"`
	Description *string            `json:"description"`
	IsActive    *bool              `json:"is_active"`
	GridConfig  *domain.GridConfig `json:"grid_config"`
}

type duplicateDashboardRequest struct {
	Name *string `json:"name"`
}

type dashboardResponse struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Description *string           `json:"description,omitempty"`
	Version     int               `json:"version"`
	IsActive    bool              `json:"is_active"`
	GridConfig  domain.GridConfig `json:"grid_config"`
	CreatedBy   uuid.UUID         `json:"created_by"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	Permission  string            `json:"permission,omitempty"`
}

type dashboardDetailResponse struct {
	dashboardResponse
	Layouts []layoutResponse `json:"layouts"`
}

// List handles GET /api/dashboards.
func (h *DashboardHandler) List(w http.ResponseWriter, r *http.Request) {
	includeShared := r.URL.Query().Get("include_shared") != "false"

	rows, err := h.svc.ListDashboards(r.Context(), includeShared)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]dashboardResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDashboardResponse(row.Dashboard, row.Permission))
	}

	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /api/dashboards.
func (h *DashboardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDashboardRequest
	if !decodeBody(w, r, &req) {
		return
	}

	input := dashboard.CreateDashboardInput{
		Name:        req.Name,
		Description: req.Description,
		GridConfig:  req.GridConfig,
	}
	for _, wr := range req.Widgets {
		input.Widgets = append(input.Widgets, dashboard.InitialWidget{
			WidgetDefinitionID: wr.WidgetDefinitionID,
			LayoutConfig:       wr.LayoutConfig,
			InstanceConfig:     wr.InstanceConfig,
		})
	}

	detail, err := h.svc.CreateDashboard(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDetailResponse(detail))
}

// Get handles GET /api/dashboards/{id}.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.svc.GetDashboard(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDetailResponse(detail))
}

// Update handles PUT /api/dashboards/{id}.
func (h *DashboardHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateDashboardRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateDashboard(r.Context(), dashboard.UpdateDashboardInput{
		DashboardID: id,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
		GridConfig:  req.GridConfig,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDashboardResponse(*updated, ""))
}

// Delete handles DELETE /api/dashboards/{id}.
func (h *DashboardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteDashboard(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Duplicate handles POST /api/dashboards/{id}/duplicate.
func (h *DashboardHandler) Duplicate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	// Body is optional; an absent body means the default copy name.
	var req duplicateDashboardRequest
	if r.Body != nil && r.ContentLength != 0 {
		if !decodeBody(w, r, &req) {
			return
		}
	}

	detail, err := h.svc.DuplicateDashboard(r.Context(), dashboard.DuplicateDashboardInput{
		DashboardID: id,
		Name:        req.Name,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDetailResponse(detail))
}

func toDashboardResponse(d domain.Dashboard, permission string) dashboardResponse {
	return dashboardResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Version:     d.Version,
		IsActive:    d.IsActive,
		GridConfig:  d.GridConfig,
		CreatedBy:   d.CreatedBy,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
		Permission:  permission,
	}
}

func toDetailResponse(detail *dashboard.Detail) dashboardDetailResponse {
	out := dashboardDetailResponse{
		dashboardResponse: toDashboardResponse(detail.Dashboard, detail.Permission),
		Layouts:           make([]layoutResponse, 0, len(detail.Layouts)),
	}
	for _, l := range detail.Layouts {
		out.Layouts = append(out.Layouts, toLayoutResponse(l))
	}
	return out
}
