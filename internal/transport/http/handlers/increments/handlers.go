package incrementhandler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrpay/internal/domain/increment"
	"hrpay/internal/transport/http/api"
	"hrpay/internal/transport/http/middleware"
	"hrpay/internal/transport/http/shared"
)

type Handler struct {
	Increments *increment.Service
}

func NewHandler(incrementSvc *increment.Service) *Handler {
	return &Handler{Increments: incrementSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/increments", func(r chi.Router) {
		r.Get("/eligible", h.handleEligible)
	})
}

func (h *Handler) handleEligible(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if !user.IsHR() {
		api.Fail(w, http.StatusForbidden, "forbidden", "hr role required", middleware.GetRequestID(r.Context()))
		return
	}

	today := time.Now().UTC()
	if raw := r.URL.Query().Get("asOf"); raw != "" {
		parsed, err := shared.ParseDate(raw)
		if err != nil || parsed.IsZero() {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid asOf date", middleware.GetRequestID(r.Context()))
			return
		}
		today = parsed
	}

	var (
		eligible []increment.EligibleEmployee
		err      error
	)
	if r.URL.Query().Get("includeRatings") == "true" {
		eligible, err = h.Increments.EvaluateWithRatings(r.Context(), today)
	} else {
		eligible, err = h.Increments.Evaluate(r.Context(), today)
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "increments_failed", "failed to evaluate increments", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, eligible, middleware.GetRequestID(r.Context()))
}
