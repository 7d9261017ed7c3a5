package service

import (
	"context"

	"github.com/devanshg21/face-attendance-backend/models"
)

type EmployeeFilter struct {
	Department string
	Status     string
}

type LeaveFilter struct {
	EmployeeID string
	Status     string
	Applied    *bool
}

// Repository is the keyed record store the engine runs against. The gorm
// implementation lives in storage; tests use an in-memory fake.
//
// GetAttendance returns (nil, nil) when no record exists for the key: a day
// with no record is implicitly absent and nothing materializes it on read.
//
// PutAttendance must be atomic per (employee_id, date): creates fail on an
// existing key and updates only land when the stored version matches the
// one the caller read. Both conflicts surface as dto.ErrStaleWrite.
//
// UpdateLeaveStatus only transitions a still-pending request; a request
// already in a terminal status yields dto.ErrLeaveNotApprovable, so two
// racing callers cannot both win the Pending→terminal transition.
//
// MarkLeaveApplied is a check-and-set on the applied flag; it reports false
// when the flag was already set.
type Repository interface {
	GetEmployee(ctx context.Context, id string) (*models.Employee, error)
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]models.Employee, error)
	CreateEmployee(ctx context.Context, emp *models.Employee) error
	UpdateEmployee(ctx context.Context, emp *models.Employee) error

	GetIdentity(ctx context.Context, employeeID string) (*models.EnrolledIdentity, error)
	ListIdentities(ctx context.Context) ([]models.EnrolledIdentity, error)
	PutIdentity(ctx context.Context, identity *models.EnrolledIdentity) error

	GetAttendance(ctx context.Context, employeeID, date string) (*models.AttendanceRecord, error)
	PutAttendance(ctx context.Context, record *models.AttendanceRecord) error
	ListAttendance(ctx context.Context, from, to, employeeID string) ([]models.AttendanceRecord, error)

	GetLeaveRequest(ctx context.Context, id string) (*models.LeaveRequest, error)
	ListLeaveRequests(ctx context.Context, filter LeaveFilter) ([]models.LeaveRequest, error)
	CreateLeaveRequest(ctx context.Context, req *models.LeaveRequest) error
	UpdateLeaveStatus(ctx context.Context, id, status string) error
	MarkLeaveApplied(ctx context.Context, id string) (bool, error)
}
