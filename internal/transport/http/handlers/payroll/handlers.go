package payrollhandler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrpay/internal/domain/audit"
	"hrpay/internal/domain/payroll"
	"hrpay/internal/domain/salary"
	"hrpay/internal/platform/jobs"
	"hrpay/internal/transport/http/api"
	"hrpay/internal/transport/http/middleware"
	"hrpay/internal/transport/http/shared"
)

type Handler struct {
	Payroll *payroll.Service
	Jobs    *jobs.Service
	Audit   *audit.Service
}

func NewHandler(payrollSvc *payroll.Service, jobsSvc *jobs.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Payroll: payrollSvc, Jobs: jobsSvc, Audit: auditSvc}
}

type generatePayload struct {
	EmployeeID string `json:"employeeId"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Post("/payslips", h.handleGenerate)
		r.Post("/run", h.handleRunBulk)
		r.Get("/payslips", h.handleListPayslips)
		r.Get("/payslips/current", h.handleGetPayslip)
		r.Get("/payslips/current/download", h.handleDownloadPayslip)
	})
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if !user.IsHR() {
		api.Fail(w, http.StatusForbidden, "forbidden", "hr role required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload generatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if payload.EmployeeID == "" || payload.Month < 1 || payload.Month > 12 || payload.Year < 1900 {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "employee id, month and year required", middleware.GetRequestID(r.Context()))
		return
	}

	slip, err := h.Payroll.Generate(r.Context(), payload.EmployeeID, payload.Month, payload.Year)
	if err != nil {
		var validationErr *salary.ValidationError
		var referenceErr *salary.ReferenceError
		switch {
		case errors.Is(err, salary.ErrProfileNotFound):
			api.Fail(w, http.StatusNotFound, "not_found", "salary profile not found", middleware.GetRequestID(r.Context()))
		case errors.As(err, &validationErr):
			api.Fail(w, http.StatusUnprocessableEntity, "validation_error", validationErr.Error(), middleware.GetRequestID(r.Context()))
		case errors.As(err, &referenceErr):
			api.Fail(w, http.StatusUnprocessableEntity, "unknown_component", referenceErr.Error(), middleware.GetRequestID(r.Context()))
		default:
			api.Fail(w, http.StatusInternalServerError, "payslip_generate_failed", "failed to generate payslip", middleware.GetRequestID(r.Context()))
		}
		return
	}

	if err := h.Audit.Record(r.Context(), user.UserID, "payslip.generate", "payslip", slip.ID, middleware.GetRequestID(r.Context()), shared.ClientIP(r), nil, payload); err != nil {
		log.Printf("audit payslip.generate failed: %v", err)
	}
	api.Created(w, slip, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRunBulk(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if !user.IsHR() {
		api.Fail(w, http.StatusForbidden, "forbidden", "hr role required", middleware.GetRequestID(r.Context()))
		return
	}

	month, year, ok := shared.ParseMonthYear(r)
	if !ok {
		var payload struct {
			Month int `json:"month"`
			Year  int `json:"year"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Month < 1 || payload.Month > 12 || payload.Year < 1900 {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "month and year required", middleware.GetRequestID(r.Context()))
			return
		}
		month, year = payload.Month, payload.Year
	}

	details, err := h.Jobs.RunNow(r.Context(), payroll.JobBulkRun, func(ctx context.Context) (any, error) {
		result, err := h.Payroll.GenerateBulk(ctx, month, year)
		var partial *payroll.PartialBatchError
		if errors.As(err, &partial) {
			// Failures ride inside the result; the batch itself completed.
			return result, nil
		}
		return result, err
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_run_failed", "bulk payroll run failed", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Audit.Record(r.Context(), user.UserID, "payroll.run", "payroll", "", middleware.GetRequestID(r.Context()), shared.ClientIP(r), nil, map[string]int{"month": month, "year": year}); err != nil {
		log.Printf("audit payroll.run failed: %v", err)
	}
	api.Success(w, details, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListPayslips(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	employeeID := r.URL.Query().Get("employeeId")
	if employeeID == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "employee id required", middleware.GetRequestID(r.Context()))
		return
	}
	if !user.IsHR() {
		api.Fail(w, http.StatusForbidden, "forbidden", "hr role required", middleware.GetRequestID(r.Context()))
		return
	}

	page := shared.ParsePagination(r, 12, 100)
	slips, err := h.Payroll.List(r.Context(), employeeID, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payslip_list_failed", "failed to list payslips", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, slips, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetPayslip(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if !user.IsHR() {
		api.Fail(w, http.StatusForbidden, "forbidden", "hr role required", middleware.GetRequestID(r.Context()))
		return
	}

	employeeID := r.URL.Query().Get("employeeId")
	month, year, ok := shared.ParseMonthYear(r)
	if employeeID == "" || !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "employee id, month and year required", middleware.GetRequestID(r.Context()))
		return
	}

	slip, err := h.Payroll.Get(r.Context(), employeeID, month, year)
	if errors.Is(err, payroll.ErrPayslipNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "payslip not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payslip_get_failed", "failed to load payslip", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, slip, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDownloadPayslip(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if !user.IsHR() {
		api.Fail(w, http.StatusForbidden, "forbidden", "hr role required", middleware.GetRequestID(r.Context()))
		return
	}

	employeeID := r.URL.Query().Get("employeeId")
	month, year, ok := shared.ParseMonthYear(r)
	if employeeID == "" || !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "employee id, month and year required", middleware.GetRequestID(r.Context()))
		return
	}

	filePath, err := h.Payroll.RenderPayslipPDF(r.Context(), employeeID, month, year)
	if errors.Is(err, payroll.ErrPayslipNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "payslip not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payslip_pdf_failed", "failed to render payslip", middleware.GetRequestID(r.Context()))
		return
	}
	http.ServeFile(w, r, filePath)
}
