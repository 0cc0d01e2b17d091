package audithandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/audit"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
)

type Handler struct {
	Trail *audit.Trail
}

func NewHandler(trail *audit.Trail) *Handler {
	return &Handler{Trail: trail}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/audit/events", h.handleListEvents)
}

func (h *Handler) handleListEvents(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if !audit.CanReview(identity.Role) {
		api.Fail(w, http.StatusForbidden, "forbidden", "audit trail is restricted to admins and auditors", middleware.GetRequestID(r.Context()))
		return
	}

	filter := audit.Filter{
		Type:    r.URL.Query().Get("type"),
		ActorID: r.URL.Query().Get("actorId"),
	}
	api.Success(w, h.Trail.List(filter), middleware.GetRequestID(r.Context()))
}
