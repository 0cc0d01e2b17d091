package dashboardhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/access"
	"hrms/internal/domain/view"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
)

type Handler struct {
	Stores view.Stores
}

func NewHandler(stores view.Stores) *Handler {
	return &Handler{Stores: stores}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequireView(access.ResourceDashboard)).Get("/dashboard", h.handleDashboard)
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, view.Compose(identity, h.Stores), middleware.GetRequestID(r.Context()))
}
