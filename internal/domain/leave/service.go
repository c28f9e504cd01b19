package leave

import (
	"context"
	"errors"
	"log"
	"time"

	"hrpay/internal/domain/attendance"
)

var ErrInvalidRange = errors.New("end date before start date")
var ErrNotPending = errors.New("leave request is not pending")

type Service struct {
	Store      *Store
	Attendance *attendance.Service
}

func NewService(store *Store, attendanceSvc *attendance.Service) *Service {
	return &Service{Store: store, Attendance: attendanceSvc}
}

func (s *Service) Types(ctx context.Context) ([]Type, error) {
	return s.Store.ListTypes(ctx)
}

func (s *Service) Balances(ctx context.Context, employeeID string, year int) ([]Balance, error) {
	return s.Store.ListBalances(ctx, employeeID, year)
}

func (s *Service) ApprovedRequests(ctx context.Context, employeeID string) ([]Request, error) {
	return s.Store.ListApprovedRequests(ctx, employeeID)
}

func (s *Service) Apply(ctx context.Context, employeeID, leaveTypeID string, start, end time.Time) (string, error) {
	if _, err := CalculateDays(start, end); err != nil {
		return "", ErrInvalidRange
	}
	return s.Store.CreateRequest(ctx, Request{
		EmployeeID:  employeeID,
		LeaveTypeID: leaveTypeID,
		StartDate:   start,
		EndDate:     end,
	})
}

// Approve moves a pending request to approved, books the days against
// the balance and marks every day of the window on the attendance
// calendar so payroll sees the leave.
func (s *Service) Approve(ctx context.Context, requestID string) error {
	req, err := s.Store.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if req.Status != StatusPending {
		return ErrNotPending
	}

	days, err := CalculateDays(req.StartDate, req.EndDate)
	if err != nil {
		return err
	}
	if err := s.Store.SetRequestStatus(ctx, requestID, StatusApproved); err != nil {
		return err
	}
	if err := s.Store.AddUsage(ctx, req.EmployeeID, req.LeaveTypeID, req.StartDate.Year(), days); err != nil {
		return err
	}

	for day := req.StartDate; !day.After(req.EndDate); day = day.AddDate(0, 0, 1) {
		if err := s.Attendance.MarkDay(ctx, req.EmployeeID, day, attendance.StatusOnLeave, &req.ID); err != nil {
			log.Printf("leave approval attendance mark failed for %s on %s: %v", req.EmployeeID, day.Format("2006-01-02"), err)
		}
	}
	return nil
}

func (s *Service) Reject(ctx context.Context, requestID string) error {
	req, err := s.Store.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if req.Status != StatusPending {
		return ErrNotPending
	}
	return s.Store.SetRequestStatus(ctx, requestID, StatusRejected)
}
