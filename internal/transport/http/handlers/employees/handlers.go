package employeeshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/access"
	"hrms/internal/domain/employee"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
)

type Handler struct {
	Store *employee.Store
}

func NewHandler(store *employee.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.With(middleware.RequireView(access.ResourceEmployees)).Get("/", h.handleList)
		r.With(middleware.RequireView(access.ResourceEmployees)).Get("/{employeeID}", h.handleGet)
		r.With(middleware.RequireAction(access.ResourceEmployees, access.ActionEmployeeCreate)).Post("/", h.handleCreate)
		r.With(middleware.RequireAction(access.ResourceEmployees, access.ActionEmployeeEdit)).Put("/{employeeID}", h.handleUpdate)
		r.With(middleware.RequireAction(access.ResourceEmployees, access.ActionEmployeeDelete)).Delete("/{employeeID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	filter := employee.Filter{
		Search:     r.URL.Query().Get("search"),
		Status:     r.URL.Query().Get("status"),
		Department: r.URL.Query().Get("department"),
	}
	api.Success(w, h.Store.List(filter), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Store.Get(chi.URLParam(r, "employeeID"))
	if err != nil {
		api.FailFromError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var draft employee.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	emp, err := h.Store.Create(draft)
	if err != nil {
		api.FailFromError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch employee.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	emp, err := h.Store.Update(chi.URLParam(r, "employeeID"), patch)
	if err != nil {
		api.FailFromError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Remove(chi.URLParam(r, "employeeID")); err != nil {
		api.FailFromError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, middleware.GetRequestID(r.Context()))
}
