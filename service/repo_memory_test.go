package service

import (
	"context"
	"sync"
	"time"

	"github.com/devanshg21/face-attendance-backend/dto"
	"github.com/devanshg21/face-attendance-backend/models"
)

// memoryRepo is an in-memory Repository with the same versioning and
// check-and-set semantics as the gorm store.
type memoryRepo struct {
	mu         sync.Mutex
	employees  map[string]models.Employee
	identities map[string]models.EnrolledIdentity
	attendance map[string]models.AttendanceRecord // employee_id|date
	leave      map[string]models.LeaveRequest
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		employees:  make(map[string]models.Employee),
		identities: make(map[string]models.EnrolledIdentity),
		attendance: make(map[string]models.AttendanceRecord),
		leave:      make(map[string]models.LeaveRequest),
	}
}

func (m *memoryRepo) GetEmployee(_ context.Context, id string) (*models.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	emp, ok := m.employees[id]
	if !ok {
		return nil, dto.ErrEmployeeNotFound
	}
	return &emp, nil
}

func (m *memoryRepo) ListEmployees(_ context.Context, filter EmployeeFilter) ([]models.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Employee
	for _, emp := range m.employees {
		if filter.Department != "" && emp.Department != filter.Department {
			continue
		}
		if filter.Status != "" && emp.Status != filter.Status {
			continue
		}
		out = append(out, emp)
	}
	return out, nil
}

func (m *memoryRepo) CreateEmployee(_ context.Context, emp *models.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.employees[emp.EmployeeID]; ok {
		return dto.ErrEmployeeExists
	}
	m.employees[emp.EmployeeID] = *emp
	return nil
}

func (m *memoryRepo) UpdateEmployee(_ context.Context, emp *models.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.employees[emp.EmployeeID]; !ok {
		return dto.ErrEmployeeNotFound
	}
	m.employees[emp.EmployeeID] = *emp
	return nil
}

func (m *memoryRepo) GetIdentity(_ context.Context, employeeID string) (*models.EnrolledIdentity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.identities[employeeID]
	if !ok {
		return nil, dto.ErrIdentityNotFound
	}
	return &id, nil
}

func (m *memoryRepo) ListIdentities(_ context.Context) ([]models.EnrolledIdentity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.EnrolledIdentity
	for _, id := range m.identities {
		out = append(out, id)
	}
	return out, nil
}

func (m *memoryRepo) PutIdentity(_ context.Context, identity *models.EnrolledIdentity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.identities[identity.EmployeeID] = *identity
	return nil
}

func (m *memoryRepo) GetAttendance(_ context.Context, employeeID, date string) (*models.AttendanceRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.attendance[employeeID+"|"+date]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *memoryRepo) PutAttendance(_ context.Context, record *models.AttendanceRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := record.EmployeeID + "|" + record.Date
	existing, ok := m.attendance[key]
	if record.Version == 0 {
		if ok {
			return dto.ErrStaleWrite
		}
	} else if !ok || existing.Version != record.Version {
		return dto.ErrStaleWrite
	}
	record.Version++
	m.attendance[key] = *record
	return nil
}

func (m *memoryRepo) ListAttendance(_ context.Context, from, to, employeeID string) ([]models.AttendanceRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.AttendanceRecord
	for _, rec := range m.attendance {
		if rec.Date < from || rec.Date > to {
			continue
		}
		if employeeID != "" && rec.EmployeeID != employeeID {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (m *memoryRepo) GetLeaveRequest(_ context.Context, id string) (*models.LeaveRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	req, ok := m.leave[id]
	if !ok {
		return nil, dto.ErrLeaveNotFound
	}
	return &req, nil
}

func (m *memoryRepo) ListLeaveRequests(_ context.Context, filter LeaveFilter) ([]models.LeaveRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.LeaveRequest
	for _, req := range m.leave {
		if filter.EmployeeID != "" && req.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && req.Status != filter.Status {
			continue
		}
		if filter.Applied != nil && req.Applied != *filter.Applied {
			continue
		}
		out = append(out, req)
	}
	return out, nil
}

func (m *memoryRepo) CreateLeaveRequest(_ context.Context, req *models.LeaveRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leave[req.ID] = *req
	return nil
}

func (m *memoryRepo) UpdateLeaveStatus(_ context.Context, id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	req, ok := m.leave[id]
	if !ok {
		return dto.ErrLeaveNotFound
	}
	if req.Status != models.LeavePending {
		return dto.ErrLeaveNotApprovable
	}
	req.Status = status
	m.leave[id] = req
	return nil
}

func (m *memoryRepo) MarkLeaveApplied(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	req, ok := m.leave[id]
	if !ok {
		return false, dto.ErrLeaveNotFound
	}
	if req.Applied {
		return false, nil
	}
	now := time.Now()
	req.Applied = true
	req.AppliedAt = &now
	m.leave[id] = req
	return true, nil
}
