package service

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/devanshg21/face-attendance-backend/dto"
	"github.com/devanshg21/face-attendance-backend/models"
	"github.com/devanshg21/face-attendance-backend/utils"
)

// ReportService computes aggregate attendance statistics. It is pure over
// the record snapshot: the only clock input is the caller-supplied range.
type ReportService struct {
	repo Repository
	cal  *utils.Calendar
	log  *zap.Logger
}

func NewReportService(repo Repository, cal *utils.Calendar, log *zap.Logger) *ReportService {
	return &ReportService{repo: repo, cal: cal, log: log}
}

// Aggregate resolves the effective state of every employee for every
// working day in [from, to] and rolls the counts up per employee and per
// department. Attendance percentage counts present, late and on-leave
// days; absenteeism is the mean absence rate over a department's members.
// Removed employees are included so historical ranges stay accurate.
func (s *ReportService) Aggregate(ctx context.Context, from, to, department string) (*dto.AggregateReport, error) {
	days, err := s.cal.WorkingDays(from, to)
	if err != nil {
		return nil, err
	}

	employees, err := s.repo.ListEmployees(ctx, EmployeeFilter{Department: department})
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	records, err := s.repo.ListAttendance(ctx, from, to, "")
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	byKey := make(map[string]string, len(records))
	for _, r := range records {
		byKey[r.EmployeeID+"|"+r.Date] = r.State
	}

	report := &dto.AggregateReport{
		From:        from,
		To:          to,
		Department:  department,
		WorkingDays: len(days),
		Employees:   []dto.EmployeeReport{},
		Departments: []dto.DepartmentReport{},
	}

	type deptAcc struct {
		members    int
		absentRate float64
	}
	depts := make(map[string]*deptAcc)

	for _, emp := range employees {
		row := dto.EmployeeReport{
			EmployeeID:  emp.EmployeeID,
			Name:        emp.Name,
			Department:  emp.Department,
			WorkingDays: len(days),
		}

		for _, date := range days {
			state, ok := byKey[emp.EmployeeID+"|"+date]
			if !ok {
				state = models.StateAbsent
			}
			switch state {
			case models.StatePresent:
				row.PresentDays++
			case models.StateLate:
				row.LateDays++
			case models.StateOnLeave:
				row.LeaveDays++
			default:
				row.AbsentDays++
			}
		}

		if row.WorkingDays > 0 {
			counted := row.PresentDays + row.LateDays + row.LeaveDays
			row.AttendancePercentage = float64(counted) / float64(row.WorkingDays) * 100
		}
		report.Employees = append(report.Employees, row)

		acc, ok := depts[emp.Department]
		if !ok {
			acc = &deptAcc{}
			depts[emp.Department] = acc
		}
		acc.members++
		if row.WorkingDays > 0 {
			acc.absentRate += float64(row.AbsentDays) / float64(row.WorkingDays)
		}
	}

	sort.Slice(report.Employees, func(i, j int) bool {
		return report.Employees[i].EmployeeID < report.Employees[j].EmployeeID
	})

	for name, acc := range depts {
		report.Departments = append(report.Departments, dto.DepartmentReport{
			Department:      name,
			Employees:       acc.members,
			AbsenteeismRate: acc.absentRate / float64(acc.members) * 100,
		})
	}
	sort.Slice(report.Departments, func(i, j int) bool {
		return report.Departments[i].Department < report.Departments[j].Department
	})

	s.log.Debug("report generated",
		zap.String("from", from),
		zap.String("to", to),
		zap.Int("employees", len(report.Employees)))
	return report, nil
}
