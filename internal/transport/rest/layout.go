package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
	"github.com/pulseboard/pulseboard-backend/internal/service/layout"
)

// layoutService defines the minimal interface needed by LayoutHandler.
type layoutService interface {
	AddWidget(ctx context.Context, input layout.AddWidgetInput) (*domain.DashboardLayout, error)
	GetLayout(ctx context.Context, layoutID uuid.UUID) (*domain.DashboardLayout, error)
	ListLayouts(ctx context.Context, dashboardID uuid.UUID) ([]domain.DashboardLayout, error)
	UpdateLayout(ctx context.Context, input layout.UpdateLayoutInput) (*domain.DashboardLayout, error)
	RemoveLayout(ctx context.Context, layoutID uuid.UUID) error
	BulkReposition(ctx context.Context, input layout.BulkRepositionInput) (*layout.BulkResult, error)
}

// LayoutHandler serves layout REST endpoints.
type LayoutHandler struct {
	svc layoutService
	log *slog.Logger
}

// NewLayoutHandler creates a LayoutHandler.
func NewLayoutHandler(svc layoutService, logger *slog.Logger) *LayoutHandler {
	return &LayoutHandler{svc: svc, log: logger.With("handler", "layout")}
}

type createLayoutRequest struct {
	DashboardID        uuid.UUID                 `json:"dashboard_id"`
	WidgetDefinitionID uuid.UUID                 `json:"widget_definition_id"`
	LayoutConfig       *domain.LayoutConfigPatch `json:"layout_config"`
	InstanceConfig     map[string]any            `json:"instance_config"`
	DisplayOrder       *int                      `json:"display_order"`
}

type updateLayoutRequest struct {
	LayoutConfig   *domain.LayoutConfig `json:"layout_config"`
	InstanceConfig map[string]any       `json:"instance_config"`
	DisplayOrder   *int                 `json:"display_order"`
}

type bulkEntryRequest struct {
	ID             uuid.UUID           `json:"id"`
	LayoutConfig   domain.LayoutConfig `json:"layout_config"`
	InstanceConfig map[string]any      `json:"instance_config"`
	DisplayOrder   *int                `json:"display_order"`
}

type bulkRepositionRequest struct {
	Layouts []bulkEntryRequest `json:"layouts"`
}

type layoutResponse struct {
	ID                 uuid.UUID           `json:"id"`
	DashboardID        uuid.UUID           `json:"dashboard_id"`
	WidgetDefinitionID uuid.UUID           `json:"widget_definition_id"`
	LayoutConfig       domain.LayoutConfig `json:"layout_config"`
	InstanceConfig     map[string]any      `json:"instance_config"`
	DisplayOrder       int                 `json:"display_order"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

type bulkRepositionResponse struct {
	Layouts []layoutResponse `json:"layouts"`
	Updated int              `json:"updated"`
	Skipped int              `json:"skipped"`
	Version int              `json:"version"`
}

// ListByDashboard handles GET /api/layouts/dashboard/{dashboardId}.
func (h *LayoutHandler) ListByDashboard(w http.ResponseWriter, r *http.Request) {
	dashboardID, ok := pathUUID(w, r, "dashboardId")
	if !ok {
		return
	}

	layouts, err := h.svc.ListLayouts(r.Context(), dashboardID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toLayoutResponses(layouts))
}

// Get handles GET /api/layouts/{id}.
func (h *LayoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	l, err := h.svc.GetLayout(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toLayoutResponse(*l))
}

// Create handles POST /api/layouts.
func (h *LayoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLayoutRequest
	if !decodeBody(w, r, &req) {
		return
	}

	created, err := h.svc.AddWidget(r.Context(), layout.AddWidgetInput{
		DashboardID:        req.DashboardID,
		WidgetDefinitionID: req.WidgetDefinitionID,
		LayoutConfig:       req.LayoutConfig,
		InstanceConfig:     req.InstanceConfig,
		DisplayOrder:       req.DisplayOrder,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toLayoutResponse(*created))
}

// Update handles PUT /api/layouts/{id}.
func (h *LayoutHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateLayoutRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateLayout(r.Context(), layout.UpdateLayoutInput{
		LayoutID:       id,
		LayoutConfig:   req.LayoutConfig,
		InstanceConfig: req.InstanceConfig,
		DisplayOrder:   req.DisplayOrder,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toLayoutResponse(*updated))
}

// Delete handles DELETE /api/layouts/{id}.
func (h *LayoutHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.RemoveLayout(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// BulkUpdate handles PUT /api/layouts/dashboard/{dashboardId}/bulk.
func (h *LayoutHandler) BulkUpdate(w http.ResponseWriter, r *http.Request) {
	dashboardID, ok := pathUUID(w, r, "dashboardId")
	if !ok {
		return
	}

	var req bulkRepositionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	input := layout.BulkRepositionInput{DashboardID: dashboardID}
	for _, e := range req.Layouts {
		input.Entries = append(input.Entries, domain.LayoutBatchEntry{
			ID:             e.ID,
			LayoutConfig:   e.LayoutConfig,
			InstanceConfig: e.InstanceConfig,
			DisplayOrder:   e.DisplayOrder,
		})
	}

	result, err := h.svc.BulkReposition(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, bulkRepositionResponse{
		Layouts: toLayoutResponses(result.Layouts),
		Updated: result.Updated,
		Skipped: result.Skipped,
		Version: result.Version,
	})
}

func toLayoutResponse(l domain.DashboardLayout) layoutResponse {
	return layoutResponse{
		ID:                 l.ID,
		DashboardID:        l.DashboardID,
		WidgetDefinitionID: l.WidgetDefinitionID,
		LayoutConfig:       l.LayoutConfig,
		InstanceConfig:     l.InstanceConfig,
		DisplayOrder:       l.DisplayOrder,
		CreatedAt:          l.CreatedAt,
		UpdatedAt:          l.UpdatedAt,
	}
}

func toLayoutResponses(layouts []domain.DashboardLayout) []layoutResponse {
	out := make([]layoutResponse, 0, len(layouts))
	for _, l := range layouts {
		out = append(out, toLayoutResponse(l))
	}
	return out
}
