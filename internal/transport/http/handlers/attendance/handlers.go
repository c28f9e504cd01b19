package attendancehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrpay/internal/domain/attendance"
	"hrpay/internal/transport/http/api"
	"hrpay/internal/transport/http/middleware"
	"hrpay/internal/transport/http/shared"
)

type Handler struct {
	Attendance *attendance.Service
}

func NewHandler(attendanceSvc *attendance.Service) *Handler {
	return &Handler{Attendance: attendanceSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees/{employeeID}/attendance", func(r chi.Router) {
		r.Get("/", h.handleListRange)
		r.Get("/summary", h.handleSummary)
		r.Post("/check-in", h.handleCheckIn)
		r.Post("/check-out", h.handleCheckOut)
		r.Post("/mark", h.handleMarkDay)
	})
}

func (h *Handler) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	id, err := h.Attendance.CheckIn(r.Context(), employeeID, time.Now())
	if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
		api.Fail(w, http.StatusConflict, "already_checked_in", "already checked in today", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "check_in_failed", "failed to check in", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCheckOut(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	err := h.Attendance.CheckOut(r.Context(), employeeID, time.Now())
	if errors.Is(err, attendance.ErrNoCheckIn) {
		api.Fail(w, http.StatusConflict, "no_check_in", "no check-in recorded today", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "check_out_failed", "failed to check out", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "checked_out"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMarkDay(w http.ResponseWriter, r *http.Request) {
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
	var payload struct {
		Date           string  `json:"date"`
		Status         string  `json:"status"`
		LeaveRequestID *string `json:"leaveRequestId,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	day, err := shared.ParseDate(payload.Date)
	if err != nil || day.IsZero() {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid date", middleware.GetRequestID(r.Context()))
		return
	}
	if !attendance.ValidStatus(payload.Status) {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid attendance status", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Attendance.MarkDay(r.Context(), employeeID, day, payload.Status, payload.LeaveRequestID); err != nil {
		api.Fail(w, http.StatusInternalServerError, "mark_day_failed", "failed to mark attendance", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "marked"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListRange(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	start, err := shared.ParseDate(r.URL.Query().Get("start"))
	if err != nil || start.IsZero() {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid start date", middleware.GetRequestID(r.Context()))
		return
	}
	end, err := shared.ParseDate(r.URL.Query().Get("end"))
	if err != nil || end.IsZero() {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid end date", middleware.GetRequestID(r.Context()))
		return
	}

	records, err := h.Attendance.ListRange(r.Context(), employeeID, start, end)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_list_failed", "failed to list attendance", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	month, year, ok := shared.ParseMonthYear(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "month and year required", middleware.GetRequestID(r.Context()))
		return
	}

	summary, err := h.Attendance.SummarizeMonth(r.Context(), employeeID, month, year)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_summary_failed", "failed to summarize attendance", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, summary, middleware.GetRequestID(r.Context()))
}
