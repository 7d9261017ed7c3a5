package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/devanshg21/face-attendance-backend/dto"
	"github.com/devanshg21/face-attendance-backend/models"
	"github.com/devanshg21/face-attendance-backend/utils"
)

// AttendanceService owns the per-(employee, day) state machine. All writes
// go through the repository's versioned PutAttendance; on dto.ErrStaleWrite
// the caller decides whether to retry.
type AttendanceService struct {
	repo      Repository
	notifier  Notifier
	cal       *utils.Calendar
	workStart string // "15:04"
	grace     time.Duration
	log       *zap.Logger
}

func NewAttendanceService(repo Repository, notifier Notifier, cal *utils.Calendar, workStart string, grace time.Duration, log *zap.Logger) *AttendanceService {
	return &AttendanceService{
		repo:      repo,
		notifier:  notifier,
		cal:       cal,
		workStart: workStart,
		grace:     grace,
		log:       log,
	}
}

// RecordCheckIn registers presence for the day of ts. The first check-in
// of the day wins: duplicate capture events return the existing record
// untouched. Manually overridden days are left alone; the override is the
// authority for that day.
func (s *AttendanceService) RecordCheckIn(ctx context.Context, employeeID string, ts time.Time) (*models.AttendanceRecord, error) {
	emp, err := s.repo.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !emp.IsActive() {
		return nil, dto.ErrEmployeeRemoved
	}

	date := models.DateKey(ts)
	rec, err := s.repo.GetAttendance(ctx, employeeID, date)
	if err != nil {
		return nil, err
	}

	if rec != nil {
		if rec.CheckInTime != nil {
			return rec, nil
		}
		if rec.Source == models.SourceManual {
			return rec, nil
		}
		if rec.State == models.StateOnLeave {
			// Attendance evidence beats an applied leave day.
			s.notifier.LeaveConflict(ctx, dto.LeaveConflict{
				EmployeeID: employeeID,
				Date:       date,
				State:      rec.State,
			})
		}
	} else {
		rec = &models.AttendanceRecord{
			EmployeeID: employeeID,
			Date:       date,
		}
	}

	checkIn := ts
	rec.CheckInTime = &checkIn
	rec.State = s.stateForCheckIn(ts)
	rec.Source = models.SourceAuto
	rec.Actor = ""

	if err := s.repo.PutAttendance(ctx, rec); err != nil {
		return nil, err
	}

	s.log.Info("check-in recorded",
		zap.String("employee_id", employeeID),
		zap.String("date", date),
		zap.String("state", rec.State))
	return rec, nil
}

// RecordCheckOut closes the working day. It requires a present or late
// record with a check-in; a repeated call overwrites the earlier check-out
// so a missed tap can be corrected.
func (s *AttendanceService) RecordCheckOut(ctx context.Context, employeeID string, ts time.Time) (*models.AttendanceRecord, error) {
	date := models.DateKey(ts)
	rec, err := s.repo.GetAttendance(ctx, employeeID, date)
	if err != nil {
		return nil, err
	}
	if rec == nil || !rec.Attended() || rec.CheckInTime == nil {
		return nil, dto.ErrNoActiveCheckIn
	}
	if ts.Before(*rec.CheckInTime) {
		return nil, dto.ErrCheckOutBeforeIn
	}

	checkOut := ts
	rec.CheckOutTime = &checkOut

	if err := s.repo.PutAttendance(ctx, rec); err != nil {
		return nil, err
	}

	s.log.Info("check-out recorded",
		zap.String("employee_id", employeeID),
		zap.String("date", date))
	return rec, nil
}

// SetState is the administrative bypass for days where biometric capture
// was unavailable. It always supersedes the automatic state and stamps the
// record as manually sourced with the acting admin.
func (s *AttendanceService) SetState(ctx context.Context, employeeID, date, state, actor string) (*models.AttendanceRecord, error) {
	switch state {
	case models.StateAbsent, models.StatePresent, models.StateLate, models.StateOnLeave:
	default:
		return nil, dto.ErrInvalidState
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("bad date %q: %w", date, err)
	}
	if _, err := s.repo.GetEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	rec, err := s.repo.GetAttendance(ctx, employeeID, date)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = &models.AttendanceRecord{
			EmployeeID: employeeID,
			Date:       date,
		}
	}

	rec.State = state
	rec.Source = models.SourceManual
	rec.Actor = actor

	if err := s.repo.PutAttendance(ctx, rec); err != nil {
		return nil, err
	}

	s.log.Info("manual override",
		zap.String("employee_id", employeeID),
		zap.String("date", date),
		zap.String("state", state),
		zap.String("actor", actor))
	return rec, nil
}

// EffectiveState resolves the state for a key, falling back to the
// implicit absent for days with no record. Nothing is written on read.
func (s *AttendanceService) EffectiveState(ctx context.Context, employeeID, date string) (string, *models.AttendanceRecord, error) {
	rec, err := s.repo.GetAttendance(ctx, employeeID, date)
	if err != nil {
		return "", nil, err
	}
	if rec == nil {
		return models.StateAbsent, nil, nil
	}
	return rec.State, rec, nil
}

// ListRange returns the explicit records for an employee over [from, to].
func (s *AttendanceService) ListRange(ctx context.Context, from, to, employeeID string) ([]models.AttendanceRecord, error) {
	return s.repo.ListAttendance(ctx, from, to, employeeID)
}

// CloseDay emits a day-closed-absent event for every active employee with
// no record on an elapsed working day. It never mutates records: absence
// stays implicit. Returns how many events were emitted. Today and future
// dates yield ErrDayNotElapsed: a day can only be closed once it has ended.
func (s *AttendanceService) CloseDay(ctx context.Context, date string) (int, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return 0, fmt.Errorf("bad date %q: %w", date, err)
	}
	if date >= models.DateKey(time.Now().UTC()) {
		return 0, dto.ErrDayNotElapsed
	}
	if !s.cal.IsWorkingDay(date) {
		return 0, nil
	}

	employees, err := s.repo.ListEmployees(ctx, EmployeeFilter{Status: models.EmployeeActive})
	if err != nil {
		return 0, err
	}

	emitted := 0
	for _, emp := range employees {
		rec, err := s.repo.GetAttendance(ctx, emp.EmployeeID, date)
		if err != nil {
			return emitted, err
		}
		if rec == nil {
			s.notifier.DayClosedAbsent(ctx, emp.EmployeeID, date)
			emitted++
		}
	}

	s.log.Info("day closed", zap.String("date", date), zap.Int("absent_events", emitted))
	return emitted, nil
}

func (s *AttendanceService) stateForCheckIn(ts time.Time) string {
	start, err := time.Parse("15:04", s.workStart)
	if err != nil {
		// Config is validated at startup; fall back to on-time.
		return models.StatePresent
	}

	dayStart := time.Date(ts.Year(), ts.Month(), ts.Day(), start.Hour(), start.Minute(), 0, 0, ts.Location())
	if ts.After(dayStart.Add(s.grace)) {
		return models.StateLate
	}
	return models.StatePresent
}
