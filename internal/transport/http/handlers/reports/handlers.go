package reportshandler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/access"
	"hrms/internal/domain/errs"
	"hrms/internal/domain/reports"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
)

type Handler struct {
	Store *reports.Store
}

func NewHandler(store *reports.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.With(middleware.RequireView(access.ResourceReports)).Get("/", h.handleList)
		r.With(middleware.RequireAction(access.ResourceReports, access.ActionReportGenerate)).Post("/{reportID}/generate", h.handleGenerate)
		r.With(middleware.RequireAction(access.ResourceReports, access.ActionReportDownload)).Get("/{reportID}/download", h.handleDownload)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	filter := reports.Filter{
		Search: r.URL.Query().Get("search"),
		Type:   r.URL.Query().Get("type"),
	}
	api.Success(w, h.Store.List(identity.Role, filter), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	rep, err := h.Store.Generate(chi.URLParam(r, "reportID"), identity.Role)
	if err != nil {
		api.FailFromError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, rep, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDownload(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	rep, err := h.Store.Get(chi.URLParam(r, "reportID"))
	if err != nil {
		api.FailFromError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	// the report's own allow-list applies on top of the reports view gate
	if !rep.AccessibleBy(identity.Role) {
		api.FailFromError(w, fmt.Errorf("%w: role %s not on allow-list for report %s", errs.ErrAccessDenied, identity.Role, rep.ID), middleware.GetRequestID(r.Context()))
		return
	}

	data, err := reports.Render(rep)
	if err != nil {
		api.FailFromError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=report-%s.pdf", rep.ID))
	_, _ = w.Write(data)
}
