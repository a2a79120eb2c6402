package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pulseboard/pulseboard-backend/internal/domain"
	"github.com/pulseboard/pulseboard-backend/internal/service/share"
)

// shareService defines the minimal interface needed by ShareHandler.
type shareService interface {
	CreateShare(ctx context.Context, input share.CreateShareInput) (*domain.DashboardShare, error)
	ListShares(ctx context.Context, dashboardID uuid.UUID) ([]domain.DashboardShare, error)
	ListMyShares(ctx context.Context) ([]domain.DashboardShare, error)
	RevokeShare(ctx context.Context, dashboardID, targetUserID uuid.UUID) error
}

// ShareHandler serves dashboard share REST endpoints.
type ShareHandler struct {
	svc shareService
	log *slog.Logger
}

// NewShareHandler creates a ShareHandler.
func NewShareHandler(svc shareService, logger *slog.Logger) *ShareHandler {
	return &ShareHandler{svc: svc, log: logger.With("handler", "share")}
}

type createShareRequest struct {
	UserID          uuid.UUID  `json:"user_id"`
	PermissionLevel string     `json:"permission_level"`
	ExpiresAt       *time.Time `json:"expires_at"`
}

type shareResponse struct {
	ID              uuid.UUID  `json:"id"`
	DashboardID     uuid.UUID  `json:"dashboard_id"`
	UserID          uuid.UUID  `json:"user_id"`
	PermissionLevel string     `json:"permission_level"`
	SharedBy        uuid.UUID  `json:"shared_by"`
	SharedAt        time.Time  `json:"shared_at"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
}

// List handles GET /api/dashboards/{id}/shares.
func (h *ShareHandler) List(w http.ResponseWriter, r *http.Request) {
	dashboardID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	shares, err := h.svc.ListShares(r.Context(), dashboardID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toShareResponses(shares))
}

// ListMine handles GET /api/shares.
func (h *ShareHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	shares, err := h.svc.ListMyShares(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toShareResponses(shares))
}

// Create handles POST /api/dashboards/{id}/share.
func (h *ShareHandler) Create(w http.ResponseWriter, r *http.Request) {
	dashboardID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req createShareRequest
	if !decodeBody(w, r, &req) {
		return
	}

	created, err := h.svc.CreateShare(r.Context(), share.CreateShareInput{
		DashboardID:     dashboardID,
		UserID:          req.UserID,
		PermissionLevel: domain.PermissionLevel(req.PermissionLevel),
		ExpiresAt:       req.ExpiresAt,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toShareResponse(*created))
}

// Revoke handles DELETE /api/dashboards/{id}/share/{userId}.
func (h *ShareHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	dashboardID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}

	if err := h.svc.RevokeShare(r.Context(), dashboardID, userID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "revoked"})
}

func toShareResponse(s domain.DashboardShare) shareResponse {
	return shareResponse{
		ID:              s.ID,
		DashboardID:     s.DashboardID,
		UserID:          s.UserID,
		PermissionLevel: s.PermissionLevel.String(),
		SharedBy:        s.SharedBy,
		SharedAt:        s.SharedAt,
		ExpiresAt:       s.ExpiresAt,
	}
}

func toShareResponses(shares []domain.DashboardShare) []shareResponse {
	out := make([]shareResponse, 0, len(shares))
	for _, s := range shares {
		out = append(out, toShareResponse(s))
	}
	return out
}
