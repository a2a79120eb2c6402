package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
	"github.com/pulseboard/pulseboard-backend/internal/service/widget"
)

// widgetService defines the minimal interface needed by WidgetHandler.
type widgetService interface {
	CreateType(ctx context.Context, input widget.CreateTypeInput) (*domain.WidgetType, error)
	GetType(ctx context.Context, typeID uuid.UUID) (*domain.WidgetType, error)
	ListTypes(ctx context.Context) ([]domain.WidgetType, error)
	UpdateType(ctx context.Context, input widget.UpdateTypeInput) (*domain.WidgetType, error)
	DeleteType(ctx context.Context, typeID uuid.UUID) error

	CreateDefinition(ctx context.Context, input widget.CreateDefinitionInput) (*domain.WidgetDefinition, error)
	GetDefinition(ctx context.Context, definitionID uuid.UUID) (*domain.WidgetDefinition, error)
	ListDefinitions(ctx context.Context, filter domain.WidgetDefinitionFilter) ([]domain.WidgetDefinition, error)
	UpdateDefinition(ctx context.Context, input widget.UpdateDefinitionInput) (*domain.WidgetDefinition, error)
	DeleteDefinition(ctx context.Context, definitionID uuid.UUID) error
}

// WidgetHandler serves widget catalog REST endpoints.
type WidgetHandler struct {
	svc widgetService
	log *slog.Logger
}

// NewWidgetHandler creates a WidgetHandler.
func NewWidgetHandler(svc widgetService, logger *slog.Logger) *WidgetHandler {
	return &WidgetHandler{svc: svc, log: logger.With("handler", "widget")}
}

type createTypeRequest struct {
	Name          string         `json:"name"`
	ComponentName string         `json:"component_name"`
	DefaultConfig map[string]any `json:"default_config"`
}

type updateTypeRequest struct {
	Name          *string        `json:"name"`
	ComponentName *string        `json:"component_name"`
	DefaultConfig map[string]any `json:"default_config"`
}

type createDefinitionRequest struct {
	Name             string         `json:"name"`
	Description      *string        `json:"description"`
	WidgetTypeID     uuid.UUID      `json:"widget_type_id"`
	DataSourceConfig map[string]any `json:"data_source_config"`
	LayoutConfig     map[string]any `json:"layout_config"`
}

type updateDefinitionRequest struct {
	Name             *string        `json:"name"`
	Description      *string        `json:"description"`
	DataSourceConfig map[string]any `json:"data_source_config"`
	LayoutConfig     map[string]any `json:"layout_config"`
}

type widgetTypeResponse struct {
	ID            uuid.UUID      `json:"id"`
	Name          string         `json:"name"`
	ComponentName string         `json:"component_name"`
	DefaultConfig map[string]any `json:"default_config"`
	CreatedAt     time.Time      `json:"created_at"`
}

type widgetDefinitionResponse struct {
	ID               uuid.UUID      `json:"id"`
	Name             string         `json:"name"`
	Description      *string        `json:"description,omitempty"`
	WidgetTypeID     uuid.UUID      `json:"widget_type_id"`
	DataSourceConfig map[string]any `json:"data_source_config"`
	LayoutConfig     map[string]any `json:"layout_config"`
	CreatedBy        uuid.UUID      `json:"created_by"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// ListTypes handles GET /api/widget-types.
func (h *WidgetHandler) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.ListTypes(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]widgetTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, toTypeResponse(t))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetType handles GET /api/widget-types/{id}.
func (h *WidgetHandler) GetType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	t, err := h.svc.GetType(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTypeResponse(*t))
}

// CreateType handles POST /api/widget-types.
func (h *WidgetHandler) CreateType(w http.ResponseWriter, r *http.Request) {
	var req createTypeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	created, err := h.svc.CreateType(r.Context(), widget.CreateTypeInput{
		Name:          req.Name,
		ComponentName: req.ComponentName,
		DefaultConfig: req.DefaultConfig,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTypeResponse(*created))
}

// UpdateType handles PUT /api/widget-types/{id}.
func (h *WidgetHandler) UpdateType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateTypeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateType(r.Context(), widget.UpdateTypeInput{
		TypeID:        id,
		Name:          req.Name,
		ComponentName: req.ComponentName,
		DefaultConfig: req.DefaultConfig,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTypeResponse(*updated))
}

// DeleteType handles DELETE /api/widget-types/{id}.
func (h *WidgetHandler) DeleteType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteType(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ListDefinitions handles GET /api/widget-definitions.
// Optional query filters: created_by, widget_type_id.
func (h *WidgetHandler) ListDefinitions(w http.ResponseWriter, r *http.Request) {
	var filter domain.WidgetDefinitionFilter
	if v := r.URL.Query().Get("created_by"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid created_by")
			return
		}
		filter.CreatedBy = &id
	}
	if v := r.URL.Query().Get("widget_type_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid widget_type_id")
			return
		}
		filter.WidgetTypeID = &id
	}

	defs, err := h.svc.ListDefinitions(r.Context(), filter)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]widgetDefinitionResponse, 0, len(defs))
	for _, d := range defs {
		out = append(out, toDefinitionResponse(d))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetDefinition handles GET /api/widget-definitions/{id}.
func (h *WidgetHandler) GetDefinition(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	d, err := h.svc.GetDefinition(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDefinitionResponse(*d))
}

// CreateDefinition handles POST /api/widget-definitions.
func (h *WidgetHandler) CreateDefinition(w http.ResponseWriter, r *http.Request) {
	var req createDefinitionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	created, err := h.svc.CreateDefinition(r.Context(), widget.CreateDefinitionInput{
		Name:             req.Name,
		Description:      req.Description,
		WidgetTypeID:     req.WidgetTypeID,
		DataSourceConfig: req.DataSourceConfig,
		LayoutConfig:     req.LayoutConfig,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDefinitionResponse(*created))
}

// UpdateDefinition handles PUT /api/widget-definitions/{id}.
func (h *WidgetHandler) UpdateDefinition(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateDefinitionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateDefinition(r.Context(), widget.UpdateDefinitionInput{
		DefinitionID:     id,
		Name:             req.Name,
		Description:      req.Description,
		DataSourceConfig: req.DataSourceConfig,
		LayoutConfig:     req.LayoutConfig,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDefinitionResponse(*updated))
}

// DeleteDefinition handles DELETE /api/widget-definitions/{id}.
func (h *WidgetHandler) DeleteDefinition(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteDefinition(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func toTypeResponse(t domain.WidgetType) widgetTypeResponse {
	return widgetTypeResponse{
		ID:            t.ID,
		Name:          t.Name,
		ComponentName: t.ComponentName,
		DefaultConfig: t.DefaultConfig,
		CreatedAt:     t.CreatedAt,
	}
}

func toDefinitionResponse(d domain.WidgetDefinition) widgetDefinitionResponse {
	return widgetDefinitionResponse{
		ID:               d.ID,
		Name:             d.Name,
		Description:      d.Description,
		WidgetTypeID:     d.WidgetTypeID,
		DataSourceConfig: d.DataSourceConfig,
		LayoutConfig:     d.LayoutConfig,
		CreatedBy:        d.CreatedBy,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}
