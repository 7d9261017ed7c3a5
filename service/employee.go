package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/devanshg21/face-attendance-backend/dto"
	"github.com/devanshg21/face-attendance-backend/models"
	"github.com/devanshg21/face-attendance-backend/utils"
)

// DirectoryService covers the administrative surface: the employee
// directory and biometric enrollment.
type DirectoryService struct {
	repo Repository
	log  *zap.Logger
}

func NewDirectoryService(repo Repository, log *zap.Logger) *DirectoryService {
	return &DirectoryService{repo: repo, log: log}
}

func (s *DirectoryService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*models.Employee, error) {
	emp := &models.Employee{
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Email:      req.Email,
		Mobile:     req.Mobile,
		Department: req.Department,
		Position:   req.Position,
		Status:     models.EmployeeActive,
		JoinDate:   time.Now().Format("2006-01-02"),
	}
	if err := s.repo.CreateEmployee(ctx, emp); err != nil {
		return nil, err
	}

	s.log.Info("employee created",
		zap.String("employee_id", emp.EmployeeID),
		zap.String("department", emp.Department))
	return emp, nil
}

func (s *DirectoryService) Get(ctx context.Context, id string) (*models.Employee, error) {
	return s.repo.GetEmployee(ctx, id)
}

func (s *DirectoryService) List(ctx context.Context, filter EmployeeFilter) ([]models.Employee, error) {
	return s.repo.ListEmployees(ctx, filter)
}

// Update applies the non-nil fields of the request. Promotion is an
// update of Position.
func (s *DirectoryService) Update(ctx context.Context, id string, req *dto.UpdateEmployeeRequest) (*models.Employee, error) {
	emp, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Mobile != nil {
		emp.Mobile = *req.Mobile
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}

	if err := s.repo.UpdateEmployee(ctx, emp); err != nil {
		return nil, err
	}

	s.log.Info("employee updated", zap.String("employee_id", id))
	return emp, nil
}

// Remove flips the status to removed. The row and the attendance history
// behind it stay, so old reports keep resolving.
func (s *DirectoryService) Remove(ctx context.Context, id string) (*models.Employee, error) {
	emp, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp.Status == models.EmployeeRemoved {
		return emp, nil
	}

	emp.Status = models.EmployeeRemoved
	if err := s.repo.UpdateEmployee(ctx, emp); err != nil {
		return nil, err
	}

	s.log.Info("employee removed", zap.String("employee_id", id))
	return emp, nil
}

// Identity returns the employee's current enrollment, vector decoded.
func (s *DirectoryService) Identity(ctx context.Context, employeeID string) (*models.EnrolledIdentity, error) {
	if _, err := s.repo.GetEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	identity, err := s.repo.GetIdentity(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if err := identity.DecodeVector(); err != nil {
		return nil, err
	}
	return identity, nil
}

// Enroll stores the employee's embedding, replacing any previous one.
func (s *DirectoryService) Enroll(ctx context.Context, employeeID string, embedding []float64) (*models.EnrolledIdentity, error) {
	if !utils.ValidEmbedding(embedding) {
		return nil, dto.ErrMalformedEmbedding
	}

	emp, err := s.repo.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !emp.IsActive() {
		return nil, dto.ErrEmployeeRemoved
	}

	identity := &models.EnrolledIdentity{
		EmployeeID: employeeID,
		Vector:     embedding,
		EnrolledAt: time.Now(),
	}
	if err := identity.EncodeVector(); err != nil {
		return nil, err
	}
	if err := s.repo.PutIdentity(ctx, identity); err != nil {
		return nil, err
	}

	s.log.Info("identity enrolled",
		zap.String("employee_id", employeeID),
		zap.Int("dimensions", len(embedding)))
	return identity, nil
}
