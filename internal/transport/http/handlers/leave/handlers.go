package leavehandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/access"
	"hrms/internal/domain/leave"
	"hrms/internal/domain/registry"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
)

type Handler struct {
	Store *leave.Store
}

func NewHandler(store *leave.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave", func(r chi.Router) {
		r.With(middleware.RequireView(access.ResourceLeave)).Get("/requests", h.handleListRequests)
		r.With(middleware.RequireView(access.ResourceLeave)).Get("/requests/{requestID}", h.handleGetRequest)
		r.With(middleware.RequireAction(access.ResourceLeave, access.ActionLeaveApply)).Post("/requests", h.handleCreateRequest)
		r.With(middleware.RequireAction(access.ResourceLeave, access.ActionLeaveApprove)).Put("/requests/{requestID}", h.handleUpdateRequest)
		r.With(middleware.RequireAction(access.ResourceLeave, access.ActionLeaveApprove)).Delete("/requests/{requestID}", h.handleDeleteRequest)
		r.With(middleware.RequireAction(access.ResourceLeave, access.ActionLeaveApprove)).Post("/requests/{requestID}/approve", h.handleApproveRequest)
		r.With(middleware.RequireAction(access.ResourceLeave, access.ActionLeaveReject)).Post("/requests/{requestID}/reject", h.handleRejectRequest)
		r.With(middleware.RequireView(access.ResourceLeave)).Get("/balances", h.handleListBalances)
	})
}

func (h *Handler) handleListRequests(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	filter := leave.Filter{
		Search:    r.URL.Query().Get("search"),
		Status:    r.URL.Query().Get("status"),
		LeaveType: r.URL.Query().Get("type"),
	}
	// employees only ever see their own requests
	if identity.Role == registry.RoleEmployee {
		filter.EmployeeID = identity.EmployeeID
	}
	api.Success(w, h.Store.List(filter), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetRequest(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	req, err := h.Store.Get(chi.URLParam(r, "requestID"))
	if err != nil {
		api.FailFromError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	if identity.Role == registry.RoleEmployee && req.EmployeeID != identity.EmployeeID {
		api.Fail(w, http.StatusForbidden, "forbidden", "not your leave request", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, req, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var draft leave.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	// requests are always filed for the caller's own identity
	draft.EmployeeID = identity.EmployeeID
	draft.EmployeeName = identity.Name

	req, err := h.Store.Create(draft)
	if err != nil {
		api.FailFromError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, req, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateRequest(w http.ResponseWriter, r *http.Request) {
	var patch leave.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	req, err := h.Store.Update(chi.URLParam(r, "requestID"), patch)
	if err != nil {
		api.FailFromError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, req, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteRequest(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Remove(chi.URLParam(r, "requestID")); err != nil {
		api.FailFromError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleApproveRequest(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	req, err := h.Store.Approve(chi.URLParam(r, "requestID"), identity.Name)
	if err != nil {
		api.FailFromError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, req, middleware.GetRequestID(r.Context()))
}

type rejectRequest struct {
	Comments string `json:"comments"`
}

func (h *Handler) handleRejectRequest(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload rejectRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&payload)
	}

	req, err := h.Store.Reject(chi.URLParam(r, "requestID"), identity.Name, payload.Comments)
	if err != nil {
		api.FailFromError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, req, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListBalances(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	employeeID := r.URL.Query().Get("employeeId")
	if identity.Role == registry.RoleEmployee {
		employeeID = identity.EmployeeID
	}
	api.Success(w, h.Store.Balances(employeeID), middleware.GetRequestID(r.Context()))
}
