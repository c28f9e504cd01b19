package componenthandler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrpay/internal/domain/audit"
	"hrpay/internal/domain/component"
	"hrpay/internal/transport/http/api"
	"hrpay/internal/transport/http/middleware"
	"hrpay/internal/transport/http/shared"
)

type Handler struct {
	Components *component.Service
	Audit      *audit.Service
}

func NewHandler(components *component.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Components: components, Audit: auditSvc}
}

type componentPayload struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	ProRata  bool   `json:"proRata"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/components", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Put("/{componentID}", h.handleUpdate)
		r.Delete("/{componentID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	defs, err := h.Components.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "components_list_failed", "failed to list components", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, defs, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if !user.IsHR() {
		api.Fail(w, http.StatusForbidden, "forbidden", "hr role required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload componentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	id, err := h.Components.Create(r.Context(), payload.Name, payload.Category, payload.ProRata)
	if errors.Is(err, component.ErrDuplicateName) {
		api.Fail(w, http.StatusConflict, "duplicate_name", "component name already exists", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "component_create_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Audit.Record(r.Context(), user.UserID, "component.create", "salary_component", id, middleware.GetRequestID(r.Context()), shared.ClientIP(r), nil, payload); err != nil {
		log.Printf("audit component.create failed: %v", err)
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if !user.IsHR() {
		api.Fail(w, http.StatusForbidden, "forbidden", "hr role required", middleware.GetRequestID(r.Context()))
		return
	}

	componentID := chi.URLParam(r, "componentID")
	var payload componentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	err := h.Components.Update(r.Context(), componentID, payload.Name, payload.Category, payload.ProRata)
	switch {
	case errors.Is(err, component.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "component not found", middleware.GetRequestID(r.Context()))
		return
	case errors.Is(err, component.ErrDuplicateName):
		api.Fail(w, http.StatusConflict, "duplicate_name", "component name already exists", middleware.GetRequestID(r.Context()))
		return
	case err != nil:
		api.Fail(w, http.StatusBadRequest, "component_update_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Audit.Record(r.Context(), user.UserID, "component.update", "salary_component", componentID, middleware.GetRequestID(r.Context()), shared.ClientIP(r), nil, payload); err != nil {
		log.Printf("audit component.update failed: %v", err)
	}
	api.Success(w, map[string]string{"status": "updated"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if !user.IsHR() {
		api.Fail(w, http.StatusForbidden, "forbidden", "hr role required", middleware.GetRequestID(r.Context()))
		return
	}

	componentID := chi.URLParam(r, "componentID")
	err := h.Components.Delete(r.Context(), componentID)
	switch {
	case errors.Is(err, component.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "component not found", middleware.GetRequestID(r.Context()))
		return
	case errors.Is(err, component.ErrInUse):
		api.Fail(w, http.StatusConflict, "component_in_use", "component is referenced by a salary profile", middleware.GetRequestID(r.Context()))
		return
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "component_delete_failed", "failed to delete component", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Audit.Record(r.Context(), user.UserID, "component.delete", "salary_component", componentID, middleware.GetRequestID(r.Context()), shared.ClientIP(r), nil, nil); err != nil {
		log.Printf("audit component.delete failed: %v", err)
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}
