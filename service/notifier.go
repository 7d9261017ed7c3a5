package service

import (
	"context"

	"github.com/devanshg21/face-attendance-backend/dto"
)

// Notifier is the fire-and-forget hook for the external reminder system.
// Implementations must not block attendance processing; delivery failures
// are theirs to log and drop.
type Notifier interface {
	LeaveConflict(ctx context.Context, conflict dto.LeaveConflict)
	DayClosedAbsent(ctx context.Context, employeeID, date string)
}

// NopNotifier discards every event.
type NopNotifier struct{}

func (NopNotifier) LeaveConflict(context.Context, dto.LeaveConflict) {}
func (NopNotifier) DayClosedAbsent(context.Context, string, string)  {}
