package dto

import "errors"

// Core error taxonomy. All of these are value results for the caller to
// branch on; none are process-fatal.
var (
	ErrNoEnrolledIdentities = errors.New("no enrolled identities")
	ErrMalformedEmbedding   = errors.New("probe embedding dimensionality disagrees with enrolled vectors")
	ErrNoActiveCheckIn      = errors.New("no active check-in for that day")
	ErrCheckOutBeforeIn     = errors.New("check-out time precedes check-in time")
	ErrStaleWrite           = errors.New("attendance record was modified concurrently, retry")
	ErrInvalidLeaveRange    = errors.New("leave start date is after end date")
	ErrDayNotElapsed        = errors.New("day has not fully elapsed")
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmployeeExists       = errors.New("employee id already exists")
	ErrEmployeeRemoved      = errors.New("employee is removed")
	ErrIdentityNotFound     = errors.New("no enrolled identity for employee")
	ErrLeaveNotFound        = errors.New("leave request not found")
	ErrLeaveNotApprovable   = errors.New("leave request is not pending")
	ErrLeaveNotApproved     = errors.New("leave request is not approved")
	ErrLeaveOverlap         = errors.New("leave request overlaps an already applied request")
	ErrInvalidState         = errors.New("unknown attendance state")
)

// DomainError pairs a stable code with a message for the HTTP layer.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *DomainError) Error() string {
	return e.Message
}

// CodeOf maps a core error onto its wire code. Unrecognized errors (the
// repository surfacing a storage failure verbatim) map to INTERNAL.
func CodeOf(err error) string {
	switch {
	case errors.Is(err, ErrNoEnrolledIdentities):
		return "NO_ENROLLED_IDENTITIES"
	case errors.Is(err, ErrMalformedEmbedding):
		return "MALFORMED_EMBEDDING"
	case errors.Is(err, ErrNoActiveCheckIn):
		return "NO_ACTIVE_CHECK_IN"
	case errors.Is(err, ErrCheckOutBeforeIn):
		return "CHECK_OUT_BEFORE_IN"
	case errors.Is(err, ErrStaleWrite):
		return "STALE_WRITE"
	case errors.Is(err, ErrInvalidLeaveRange):
		return "INVALID_LEAVE_RANGE"
	case errors.Is(err, ErrDayNotElapsed):
		return "DAY_NOT_ELAPSED"
	case errors.Is(err, ErrEmployeeNotFound), errors.Is(err, ErrIdentityNotFound), errors.Is(err, ErrLeaveNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrEmployeeExists):
		return "ALREADY_EXISTS"
	case errors.Is(err, ErrEmployeeRemoved):
		return "EMPLOYEE_REMOVED"
	case errors.Is(err, ErrLeaveNotApprovable), errors.Is(err, ErrLeaveNotApproved), errors.Is(err, ErrInvalidState):
		return "INVALID_STATE"
	case errors.Is(err, ErrLeaveOverlap):
		return "LEAVE_OVERLAP"
	default:
		return "INTERNAL"
	}
}
