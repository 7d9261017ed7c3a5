package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/devanshg21/face-attendance-backend/dto"
	"github.com/devanshg21/face-attendance-backend/models"
	"github.com/devanshg21/face-attendance-backend/utils"
)

// recordingNotifier keeps every event for assertions.
type recordingNotifier struct {
	conflicts []dto.LeaveConflict
	closed    []string
}

func (n *recordingNotifier) LeaveConflict(_ context.Context, c dto.LeaveConflict) {
	n.conflicts = append(n.conflicts, c)
}

func (n *recordingNotifier) DayClosedAbsent(_ context.Context, employeeID, date string) {
	n.closed = append(n.closed, employeeID+"|"+date)
}

func seedEmployee(t *testing.T, repo *memoryRepo, id, department string) {
	t.Helper()
	require.NoError(t, repo.CreateEmployee(context.Background(), &models.Employee{
		EmployeeID: id,
		Name:       "Employee " + id,
		Department: department,
		Position:   "Junior",
		Status:     models.EmployeeActive,
	}))
}

func newAttendanceService(t *testing.T, repo *memoryRepo, notifier Notifier) *AttendanceService {
	t.Helper()
	cal, err := utils.NewCalendar("Mon,Tue,Wed,Thu,Fri", "")
	require.NoError(t, err)
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return NewAttendanceService(repo, notifier, cal, "09:00", 5*time.Minute, zap.NewNop())
}

// 2025-10-06 is a Monday.
func workday(hour, minute int) time.Time {
	return time.Date(2025, 10, 6, hour, minute, 0, 0, time.UTC)
}

func TestCheckInWithinGraceIsPresent(t *testing.T) {
	repo := newMemoryRepo()
	seedEmployee(t, repo, "E1", "IT")
	svc := newAttendanceService(t, repo, nil)

	rec, err := svc.RecordCheckIn(context.Background(), "E1", workday(9, 5))

	require.NoError(t, err)
	assert.Equal(t, models.StatePresent, rec.State)
	assert.Equal(t, models.SourceAuto, rec.Source)
}

func TestCheckInPastGraceIsLate(t *testing.T) {
	repo := newMemoryRepo()
	seedEmployee(t, repo, "E1", "IT")
	svc := newAttendanceService(t, repo, nil)

	rec, err := svc.RecordCheckIn(context.Background(), "E1", workday(9, 10))

	require.NoError(t, err)
	assert.Equal(t, models.StateLate, rec.State)
}

func TestCheckInIdempotentFirstWins(t *testing.T) {
	repo := newMemoryRepo()
	seedEmployee(t, repo, "E1", "IT")
	svc := newAttendanceService(t, repo, nil)

	first, err := svc.RecordCheckIn(context.Background(), "E1", workday(8, 55))
	require.NoError(t, err)

	second, err := svc.RecordCheckIn(context.Background(), "E1", workday(9, 30))
	require.NoError(t, err)

	assert.Equal(t, first.CheckInTime.Unix(), second.CheckInTime.Unix())
	assert.Equal(t, models.StatePresent, second.State)
}

func TestCheckOutLastWriterWins(t *testing.T) {
	repo := newMemoryRepo()
	seedEmployee(t, repo, "E1", "IT")
	svc := newAttendanceService(t, repo, nil)

	_, err := svc.RecordCheckIn(context.Background(), "E1", workday(9, 0))
	require.NoError(t, err)

	_, err = svc.RecordCheckOut(context.Background(), "E1", workday(17, 0))
	require.NoError(t, err)

	rec, err := svc.RecordCheckOut(context.Background(), "E1", workday(18, 30))
	require.NoError(t, err)

	assert.Equal(t, workday(18, 30).Unix(), rec.CheckOutTime.Unix())
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	repo := newMemoryRepo()
	seedEmployee(t, repo, "E1", "IT")
	svc := newAttendanceService(t, repo, nil)

	_, err := svc.RecordCheckOut(context.Background(), "E1", workday(17, 0))

	assert.ErrorIs(t, err, dto.ErrNoActiveCheckIn)
}

func TestCheckOutBeforeCheckIn(t *testing.T) {
	repo := newMemoryRepo()
	seedEmployee(t, repo, "E1", "IT")
	svc := newAttendanceService(t, repo, nil)

	_, err := svc.RecordCheckIn(context.Background(), "E1", workday(9, 0))
	require.NoError(t, err)

	_, err = svc.RecordCheckOut(context.Background(), "E1", workday(8, 0))

	assert.ErrorIs(t, err, dto.ErrCheckOutBeforeIn)
}

func TestCheckInUnknownEmployee(t *testing.T) {
	svc := newAttendanceService(t, newMemoryRepo(), nil)

	_, err := svc.RecordCheckIn(context.Background(), "ghost", workday(9, 0))

	assert.ErrorIs(t, err, dto.ErrEmployeeNotFound)
}

func TestCheckInRemovedEmployee(t *testing.T) {
	repo := newMemoryRepo()
	seedEmployee(t, repo, "E1", "IT")
	emp, err := repo.GetEmployee(context.Background(), "E1")
	require.NoError(t, err)
	emp.Status = models.EmployeeRemoved
	require.NoError(t, repo.UpdateEmployee(context.Background(), emp))
	svc := newAttendanceService(t, repo, nil)

	_, err = svc.RecordCheckIn(context.Background(), "E1", workday(9, 0))

	assert.ErrorIs(t, err, dto.ErrEmployeeRemoved)
}

func TestManualOverrideSupersedes(t *testing.T) {
	repo := newMemoryRepo()
	seedEmployee(t, repo, "E1", "IT")
	svc := newAttendanceService(t, repo, nil)

	_, err := svc.RecordCheckIn(context.Background(), "E1", workday(9, 30))
	require.NoError(t, err)

	rec, err := svc.SetState(context.Background(), "E1", "2025-10-06", models.StatePresent, "admin-7")
	require.NoError(t, err)

	assert.Equal(t, models.StatePresent, rec.State)
	assert.Equal(t, models.SourceManual, rec.Source)
	assert.Equal(t, "admin-7", rec.Actor)
}

func TestManualOverrideBlocksAutoCheckIn(t *testing.T) {
	repo := newMemoryRepo()
	seedEmployee(t, repo, "E1", "IT")
	svc := newAttendanceService(t, repo, nil)

	_, err := svc.SetState(context.Background(), "E1", "2025-10-06", models.StateAbsent, "admin-7")
	require.NoError(t, err)

	rec, err := svc.RecordCheckIn(context.Background(), "E1", workday(9, 0))
	require.NoError(t, err)

	assert.Equal(t, models.StateAbsent, rec.State)
	assert.Equal(t, models.SourceManual, rec.Source)
}

func TestManualOverrideRejectsUnknownState(t *testing.T) {
	repo := newMemoryRepo()
	seedEmployee(t, repo, "E1", "IT")
	svc := newAttendanceService(t, repo, nil)

	_, err := svc.SetState(context.Background(), "E1", "2025-10-06", "vacationing", "admin-7")

	assert.ErrorIs(t, err, dto.ErrInvalidState)
}

func TestEffectiveStateImplicitAbsent(t *testing.T) {
	repo := newMemoryRepo()
	seedEmployee(t, repo, "E1", "IT")
	svc := newAttendanceService(t, repo, nil)

	state, rec, err := svc.EffectiveState(context.Background(), "E1", "2025-10-06")

	require.NoError(t, err)
	assert.Equal(t, models.StateAbsent, state)
	assert.Nil(t, rec)

	// Lazy resolution writes nothing.
	stored, err := repo.GetAttendance(context.Background(), "E1", "2025-10-06")
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestCloseDayEmitsAbsentEvents(t *testing.T) {
	repo := newMemoryRepo()
	seedEmployee(t, repo, "E1", "IT")
	seedEmployee(t, repo, "E2", "IT")
	notifier := &recordingNotifier{}
	svc := newAttendanceService(t, repo, notifier)

	_, err := svc.RecordCheckIn(context.Background(), "E1", workday(9, 0))
	require.NoError(t, err)

	emitted, err := svc.CloseDay(context.Background(), "2025-10-06")
	require.NoError(t, err)

	assert.Equal(t, 1, emitted)
	assert.Equal(t, []string{"E2|2025-10-06"}, notifier.closed)
}

func TestCloseDaySkipsNonWorkingDay(t *testing.T) {
	repo := newMemoryRepo()
	seedEmployee(t, repo, "E1", "IT")
	notifier := &recordingNotifier{}
	svc := newAttendanceService(t, repo, notifier)

	emitted, err := svc.CloseDay(context.Background(), "2025-10-05") // Sunday
	require.NoError(t, err)

	assert.Zero(t, emitted)
	assert.Empty(t, notifier.closed)
}

func TestCloseDayRejectsUnelapsedDay(t *testing.T) {
	repo := newMemoryRepo()
	seedEmployee(t, repo, "E1", "IT")
	notifier := &recordingNotifier{}
	svc := newAttendanceService(t, repo, notifier)

	today := models.DateKey(time.Now().UTC())
	future := models.DateKey(time.Now().UTC().AddDate(0, 0, 7))

	for _, date := range []string{today, future} {
		emitted, err := svc.CloseDay(context.Background(), date)
		require.ErrorIs(t, err, dto.ErrDayNotElapsed)
		assert.Zero(t, emitted)
	}
	assert.Empty(t, notifier.closed)
}

func TestPutAttendanceStaleVersion(t *testing.T) {
	repo := newMemoryRepo()
	seedEmployee(t, repo, "E1", "IT")
	svc := newAttendanceService(t, repo, nil)

	rec, err := svc.RecordCheckIn(context.Background(), "E1", workday(9, 0))
	require.NoError(t, err)

	stale := *rec
	stale.Version = rec.Version - 1
	err = repo.PutAttendance(context.Background(), &stale)

	assert.ErrorIs(t, err, dto.ErrStaleWrite)
}
