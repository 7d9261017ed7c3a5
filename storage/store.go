package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/devanshg21/face-attendance-backend/dto"
	"github.com/devanshg21/face-attendance-backend/models"
	"github.com/devanshg21/face-attendance-backend/service"
)

// Store is the gorm-backed implementation of service.Repository.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetEmployee(ctx context.Context, id string) (*models.Employee, error) {
	var emp models.Employee
	err := s.db.WithContext(ctx).First(&emp, "employee_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, dto.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get employee %s: %w", id, err)
	}
	return &emp, nil
}

func (s *Store) ListEmployees(ctx context.Context, filter service.EmployeeFilter) ([]models.Employee, error) {
	q := s.db.WithContext(ctx).Order("employee_id")
	if filter.Department != "" {
		q = q.Where("department = ?", filter.Department)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var out []models.Employee
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return out, nil
}

func (s *Store) CreateEmployee(ctx context.Context, emp *models.Employee) error {
	err := s.db.WithContext(ctx).Create(emp).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return dto.ErrEmployeeExists
	}
	if err != nil {
		return fmt.Errorf("create employee %s: %w", emp.EmployeeID, err)
	}
	return nil
}

func (s *Store) UpdateEmployee(ctx context.Context, emp *models.Employee) error {
	res := s.db.WithContext(ctx).Model(&models.Employee{}).
		Where("employee_id = ?", emp.EmployeeID).
		Updates(map[string]any{
			"name":       emp.Name,
			"email":      emp.Email,
			"mobile":     emp.Mobile,
			"department": emp.Department,
			"position":   emp.Position,
			"status":     emp.Status,
		})
	if res.Error != nil {
		return fmt.Errorf("update employee %s: %w", emp.EmployeeID, res.Error)
	}
	if res.RowsAffected == 0 {
		return dto.ErrEmployeeNotFound
	}
	return nil
}

func (s *Store) GetIdentity(ctx context.Context, employeeID string) (*models.EnrolledIdentity, error) {
	var identity models.EnrolledIdentity
	err := s.db.WithContext(ctx).First(&identity, "employee_id = ?", employeeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, dto.ErrIdentityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get identity %s: %w", employeeID, err)
	}
	if err := identity.DecodeVector(); err != nil {
		return nil, fmt.Errorf("decode embedding %s: %w", employeeID, err)
	}
	return &identity, nil
}

func (s *Store) ListIdentities(ctx context.Context) ([]models.EnrolledIdentity, error) {
	var out []models.EnrolledIdentity
	if err := s.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list identities: %w", err)
	}
	return out, nil
}

// PutIdentity upserts: re-enrollment replaces the stored embedding, it
// never appends a second one.
func (s *Store) PutIdentity(ctx context.Context, identity *models.EnrolledIdentity) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}},
		UpdateAll: true,
	}).Create(identity).Error
	if err != nil {
		return fmt.Errorf("put identity %s: %w", identity.EmployeeID, err)
	}
	return nil
}

func (s *Store) GetAttendance(ctx context.Context, employeeID, date string) (*models.AttendanceRecord, error) {
	var rec models.AttendanceRecord
	err := s.db.WithContext(ctx).
		First(&rec, "employee_id = ? AND date = ?", employeeID, date).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get attendance %s/%s: %w", employeeID, date, err)
	}
	return &rec, nil
}

// PutAttendance is the per-key atomic write. New records (version 0) are
// inserted and a duplicate key means someone else created the row first.
// Existing records only update when the stored version matches the one
// the caller read; otherwise the write is stale.
func (s *Store) PutAttendance(ctx context.Context, record *models.AttendanceRecord) error {
	if record.Version == 0 {
		record.Version = 1
		err := s.db.WithContext(ctx).Create(record).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			record.Version = 0
			return dto.ErrStaleWrite
		}
		if err != nil {
			record.Version = 0
			return fmt.Errorf("create attendance %s/%s: %w", record.EmployeeID, record.Date, err)
		}
		return nil
	}

	res := s.db.WithContext(ctx).Model(&models.AttendanceRecord{}).
		Where("employee_id = ? AND date = ? AND version = ?", record.EmployeeID, record.Date, record.Version).
		Updates(map[string]any{
			"state":          record.State,
			"check_in_time":  record.CheckInTime,
			"check_out_time": record.CheckOutTime,
			"source":         record.Source,
			"actor":          record.Actor,
			"version":        record.Version + 1,
		})
	if res.Error != nil {
		return fmt.Errorf("update attendance %s/%s: %w", record.EmployeeID, record.Date, res.Error)
	}
	if res.RowsAffected == 0 {
		return dto.ErrStaleWrite
	}
	record.Version++
	return nil
}

func (s *Store) ListAttendance(ctx context.Context, from, to, employeeID string) ([]models.AttendanceRecord, error) {
	q := s.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date, employee_id")
	if employeeID != "" {
		q = q.Where("employee_id = ?", employeeID)
	}

	var out []models.AttendanceRecord
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return out, nil
}

func (s *Store) GetLeaveRequest(ctx context.Context, id string) (*models.LeaveRequest, error) {
	var req models.LeaveRequest
	err := s.db.WithContext(ctx).First(&req, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, dto.ErrLeaveNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get leave request %s: %w", id, err)
	}
	return &req, nil
}

func (s *Store) ListLeaveRequests(ctx context.Context, filter service.LeaveFilter) ([]models.LeaveRequest, error) {
	q := s.db.WithContext(ctx).Order("created_at")
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Applied != nil {
		q = q.Where("applied = ?", *filter.Applied)
	}

	var out []models.LeaveRequest
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list leave requests: %w", err)
	}
	return out, nil
}

func (s *Store) CreateLeaveRequest(ctx context.Context, req *models.LeaveRequest) error {
	if err := s.db.WithContext(ctx).Create(req).Error; err != nil {
		return fmt.Errorf("create leave request: %w", err)
	}
	return nil
}

// UpdateLeaveStatus is the Pending→terminal transition. Like
// MarkLeaveApplied it is a conditional write: only a still-pending row
// transitions, so exactly one of two racing callers wins.
func (s *Store) UpdateLeaveStatus(ctx context.Context, id, status string) error {
	res := s.db.WithContext(ctx).Model(&models.LeaveRequest{}).
		Where("id = ? AND status = ?", id, models.LeavePending).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("update leave status %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.LeaveRequest{}).
			Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("update leave status %s: %w", id, err)
		}
		if count == 0 {
			return dto.ErrLeaveNotFound
		}
		return dto.ErrLeaveNotApprovable
	}
	return nil
}

// MarkLeaveApplied flips the applied flag with a conditional update, so
// exactly one of two racing appliers wins.
func (s *Store) MarkLeaveApplied(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Model(&models.LeaveRequest{}).
		Where("id = ? AND applied = ?", id, false).
		Updates(map[string]any{
			"applied":    true,
			"applied_at": time.Now(),
		})
	if res.Error != nil {
		return false, fmt.Errorf("mark leave applied %s: %w", id, res.Error)
	}
	return res.RowsAffected == 1, nil
}
