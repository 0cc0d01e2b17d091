package payrollhandler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/access"
	"hrms/internal/domain/payroll"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
)

type Handler struct {
	Store *payroll.Store
}

func NewHandler(store *payroll.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.With(middleware.RequireView(access.ResourcePayroll)).Get("/", h.handleList)
		r.With(middleware.RequireView(access.ResourcePayroll)).Get("/summary", h.handleSummary)
		r.With(middleware.RequireView(access.ResourcePayroll)).Get("/{recordID}", h.handleGet)
		r.With(middleware.RequireAction(access.ResourcePayroll, access.ActionPayrollManage)).Post("/", h.handleCreate)
		r.With(middleware.RequireAction(access.ResourcePayroll, access.ActionPayrollManage)).Put("/{recordID}", h.handleUpdate)
		r.With(middleware.RequireAction(access.ResourcePayroll, access.ActionPayrollManage)).Delete("/{recordID}", h.handleDelete)
		r.With(middleware.RequireAction(access.ResourcePayroll, access.ActionPayrollProcess)).Post("/{recordID}/process", h.handleProcess)
		r.With(middleware.RequireAction(access.ResourcePayroll, access.ActionPayrollPay)).Post("/{recordID}/pay", h.handlePay)
	})

	r.Route("/payslips", func(r chi.Router) {
		r.With(middleware.RequireView(access.ResourceMyPayslips)).Get("/", h.handleMyPayslips)
		r.With(middleware.RequireView(access.ResourceMyPayslips)).Get("/{recordID}/download", h.handleDownloadPayslip)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	filter := payroll.Filter{
		Search:    r.URL.Query().Get("search"),
		Status:    r.URL.Query().Get("status"),
		PayPeriod: r.URL.Query().Get("period"),
	}
	api.Success(w, h.Store.List(filter), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	records := h.Store.List(payroll.Filter{PayPeriod: r.URL.Query().Get("period")})
	api.Success(w, payroll.Summarize(records), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Store.Get(chi.URLParam(r, "recordID"))
	if err != nil {
		api.FailFromError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, rec, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var draft payroll.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	rec, err := h.Store.Create(draft)
	if err != nil {
		api.FailFromError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, rec, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch payroll.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	rec, err := h.Store.Update(chi.URLParam(r, "recordID"), patch)
	if err != nil {
		api.FailFromError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, rec, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Remove(chi.URLParam(r, "recordID")); err != nil {
		api.FailFromError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleProcess(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Store.Process(chi.URLParam(r, "recordID"))
	if err != nil {
		api.FailFromError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, rec, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePay(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Store.Pay(chi.URLParam(r, "recordID"))
	if err != nil {
		api.FailFromError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, rec, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMyPayslips(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, h.Store.List(payroll.Filter{EmployeeID: identity.EmployeeID}), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDownloadPayslip(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	rec, err := h.Store.Get(chi.URLParam(r, "recordID"))
	if err != nil {
		api.FailFromError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	// payslips are personal; payroll-side roles use /payroll instead
	if rec.EmployeeID != identity.EmployeeID && !access.CanView(identity.Role, access.ResourcePayroll) {
		api.Fail(w, http.StatusForbidden, "forbidden", "not your payslip", middleware.GetRequestID(r.Context()))
		return
	}

	data, err := payroll.GeneratePayslipPDF(rec)
	if err != nil {
		api.FailFromError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payslip-%s-%s.pdf", rec.EmployeeID, rec.PayPeriod))
	_, _ = w.Write(data)
}
