package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devanshg21/face-attendance-backend/dto"
	"github.com/devanshg21/face-attendance-backend/models"
)

// LeaveService owns the Pending→{Approved, Rejected} workflow and the
// reconciliation of approved leave into the attendance timeline.
type LeaveService struct {
	repo     Repository
	notifier Notifier
	log      *zap.Logger
}

func NewLeaveService(repo Repository, notifier Notifier, log *zap.Logger) *LeaveService {
	return &LeaveService{repo: repo, notifier: notifier, log: log}
}

// Submit creates a pending request for an inclusive date span.
func (s *LeaveService) Submit(ctx context.Context, employeeID, startDate, endDate, reason string) (*models.LeaveRequest, error) {
	if _, err := time.Parse("2006-01-02", startDate); err != nil {
		return nil, fmt.Errorf("bad start date %q: %w", startDate, err)
	}
	if _, err := time.Parse("2006-01-02", endDate); err != nil {
		return nil, fmt.Errorf("bad end date %q: %w", endDate, err)
	}
	if startDate > endDate {
		return nil, dto.ErrInvalidLeaveRange
	}

	emp, err := s.repo.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !emp.IsActive() {
		return nil, dto.ErrEmployeeRemoved
	}

	req := &models.LeaveRequest{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     models.LeavePending,
		Reason:     reason,
	}
	if err := s.repo.CreateLeaveRequest(ctx, req); err != nil {
		return nil, err
	}

	s.log.Info("leave submitted",
		zap.String("request_id", req.ID),
		zap.String("employee_id", employeeID),
		zap.String("range", startDate+".."+endDate))
	return req, nil
}

// Approve moves a pending request to approved. A request overlapping an
// already-applied approved span for the same employee is refused: applied
// leave is immutable and re-approval of the same days is a conflict.
func (s *LeaveService) Approve(ctx context.Context, id string) (*models.LeaveRequest, error) {
	req, err := s.repo.GetLeaveRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != models.LeavePending {
		return nil, dto.ErrLeaveNotApprovable
	}

	applied := true
	existing, err := s.repo.ListLeaveRequests(ctx, LeaveFilter{
		EmployeeID: req.EmployeeID,
		Status:     models.LeaveApproved,
		Applied:    &applied,
	})
	if err != nil {
		return nil, err
	}
	for _, other := range existing {
		if other.ID != req.ID && other.Overlaps(req.StartDate, req.EndDate) {
			return nil, dto.ErrLeaveOverlap
		}
	}

	if err := s.repo.UpdateLeaveStatus(ctx, id, models.LeaveApproved); err != nil {
		return nil, err
	}
	req.Status = models.LeaveApproved

	s.log.Info("leave approved", zap.String("request_id", id))
	return req, nil
}

// Reject moves a pending request to rejected.
func (s *LeaveService) Reject(ctx context.Context, id string) (*models.LeaveRequest, error) {
	req, err := s.repo.GetLeaveRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != models.LeavePending {
		return nil, dto.ErrLeaveNotApprovable
	}
	if err := s.repo.UpdateLeaveStatus(ctx, id, models.LeaveRejected); err != nil {
		return nil, err
	}
	req.Status = models.LeaveRejected

	s.log.Info("leave rejected", zap.String("request_id", id))
	return req, nil
}

// Apply reconciles an approved request into the attendance timeline.
// Absent days (implicit or explicit) become on-leave; days the employee
// actually attended are skipped and reported as conflicts. The applied
// flag is flipped with a check-and-set before any day is written, so a
// concurrent second Apply observes the flag and becomes a no-op that
// reconstructs the prior outcome from the record set.
func (s *LeaveService) Apply(ctx context.Context, id string) (*dto.LeaveApplication, error) {
	req, err := s.repo.GetLeaveRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != models.LeaveApproved {
		return nil, dto.ErrLeaveNotApproved
	}

	won, err := s.repo.MarkLeaveApplied(ctx, id)
	if err != nil {
		return nil, err
	}
	if !won {
		result, err := s.summarize(ctx, req)
		if err != nil {
			return nil, err
		}
		result.AlreadyApplied = true
		return result, nil
	}

	result := &dto.LeaveApplication{RequestID: id, Conflicts: []dto.LeaveConflict{}}
	for _, date := range spanDates(req.StartDate, req.EndDate) {
		rec, err := s.repo.GetAttendance(ctx, req.EmployeeID, date)
		if err != nil {
			return nil, err
		}

		if rec != nil && rec.Attended() {
			conflict := dto.LeaveConflict{
				EmployeeID: req.EmployeeID,
				Date:       date,
				State:      rec.State,
			}
			result.Conflicts = append(result.Conflicts, conflict)
			result.DaysSkipped++
			s.notifier.LeaveConflict(ctx, conflict)
			continue
		}

		if rec == nil {
			rec = &models.AttendanceRecord{
				EmployeeID: req.EmployeeID,
				Date:       date,
			}
		}
		rec.State = models.StateOnLeave
		rec.Source = models.SourceAuto
		if err := s.repo.PutAttendance(ctx, rec); err != nil {
			return nil, err
		}
		result.DaysApplied++
	}

	s.log.Info("leave applied",
		zap.String("request_id", id),
		zap.Int("applied", result.DaysApplied),
		zap.Int("skipped", result.DaysSkipped))
	return result, nil
}

// Get and List pass through for the HTTP layer.
func (s *LeaveService) Get(ctx context.Context, id string) (*models.LeaveRequest, error) {
	return s.repo.GetLeaveRequest(ctx, id)
}

func (s *LeaveService) List(ctx context.Context, filter LeaveFilter) ([]models.LeaveRequest, error) {
	return s.repo.ListLeaveRequests(ctx, filter)
}

// summarize rebuilds the outcome of an already-applied request from the
// record set: on-leave days were applied, attended days were conflicts.
func (s *LeaveService) summarize(ctx context.Context, req *models.LeaveRequest) (*dto.LeaveApplication, error) {
	result := &dto.LeaveApplication{RequestID: req.ID, Conflicts: []dto.LeaveConflict{}}
	for _, date := range spanDates(req.StartDate, req.EndDate) {
		rec, err := s.repo.GetAttendance(ctx, req.EmployeeID, date)
		if err != nil {
			return nil, err
		}
		switch {
		case rec == nil:
		case rec.State == models.StateOnLeave:
			result.DaysApplied++
		case rec.Attended():
			result.Conflicts = append(result.Conflicts, dto.LeaveConflict{
				EmployeeID: req.EmployeeID,
				Date:       date,
				State:      rec.State,
			})
			result.DaysSkipped++
		}
	}
	return result, nil
}

// spanDates expands an inclusive [start, end] date-key span. Inputs are
// validated at submission time.
func spanDates(start, end string) []string {
	from, err := time.Parse("2006-01-02", start)
	if err != nil {
		return nil
	}
	to, err := time.Parse("2006-01-02", end)
	if err != nil {
		return nil
	}

	var dates []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format("2006-01-02"))
	}
	return dates
}
