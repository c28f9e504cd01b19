package salaryhandler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrpay/internal/domain/audit"
	"hrpay/internal/domain/salary"
	"hrpay/internal/transport/http/api"
	"hrpay/internal/transport/http/middleware"
	"hrpay/internal/transport/http/shared"
)

type Handler struct {
	Salary *salary.Service
	Audit  *audit.Service
}

func NewHandler(salarySvc *salary.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Salary: salarySvc, Audit: auditSvc}
}

type profilePayload struct {
	Components []salary.Assigned `json:"components"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees/{employeeID}/salary", func(r chi.Router) {
		r.Get("/", h.handleGetProfile)
		r.Put("/", h.handleSaveProfile)
		r.Get("/resolved", h.handleResolveProfile)
	})
}

func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if !user.IsHR() {
		api.Fail(w, http.StatusForbidden, "forbidden", "hr role required", middleware.GetRequestID(r.Context()))
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	assigned, err := h.Salary.GetProfile(r.Context(), employeeID)
	if errors.Is(err, salary.ErrProfileNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "salary profile not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "salary_profile_failed", "failed to load salary profile", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, profilePayload{Components: assigned}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if !user.IsHR() {
		api.Fail(w, http.StatusForbidden, "forbidden", "hr role required", middleware.GetRequestID(r.Context()))
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	var payload profilePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if len(payload.Components) == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "at least one component required", middleware.GetRequestID(r.Context()))
		return
	}

	resolved, err := h.Salary.SaveProfile(r.Context(), employeeID, payload.Components)
	if err != nil {
		var validationErr *salary.ValidationError
		var referenceErr *salary.ReferenceError
		switch {
		case errors.As(err, &validationErr):
			api.Fail(w, http.StatusUnprocessableEntity, "validation_error", validationErr.Error(), middleware.GetRequestID(r.Context()))
		case errors.As(err, &referenceErr):
			api.Fail(w, http.StatusUnprocessableEntity, "unknown_component", referenceErr.Error(), middleware.GetRequestID(r.Context()))
		default:
			api.Fail(w, http.StatusInternalServerError, "salary_profile_save_failed", "failed to save salary profile", middleware.GetRequestID(r.Context()))
		}
		return
	}

	if err := h.Audit.Record(r.Context(), user.UserID, "salary.profile.save", "employee", employeeID, middleware.GetRequestID(r.Context()), shared.ClientIP(r), nil, payload); err != nil {
		log.Printf("audit salary.profile.save failed: %v", err)
	}
	api.Success(w, map[string]any{"components": resolved}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleResolveProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if !user.IsHR() {
		api.Fail(w, http.StatusForbidden, "forbidden", "hr role required", middleware.GetRequestID(r.Context()))
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	resolved, err := h.Salary.ResolveProfile(r.Context(), employeeID)
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
			api.Fail(w, http.StatusInternalServerError, "salary_resolve_failed", "failed to resolve salary profile", middleware.GetRequestID(r.Context()))
		}
		return
	}
	api.Success(w, map[string]any{"components": resolved}, middleware.GetRequestID(r.Context()))
}
