package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devanshg21/face-attendance-backend/dto"
)

func TestEncodeReportCSV(t *testing.T) {
	report := &dto.AggregateReport{
		From:        "2025-10-06",
		To:          "2025-10-10",
		WorkingDays: 5,
		Employees: []dto.EmployeeReport{
			{
				EmployeeID:           "E1",
				Name:                 "Asha Verma",
				Department:           "Sales",
				PresentDays:          2,
				LateDays:             1,
				AbsentDays:           1,
				LeaveDays:            1,
				WorkingDays:          5,
				AttendancePercentage: 80.0,
			},
		},
		Departments: []dto.DepartmentReport{
			{Department: "Sales", Employees: 2, AbsenteeismRate: 30.0},
		},
	}

	data, err := EncodeReportCSV(report)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Contains(t, lines[0], "Employee ID")
	assert.Contains(t, lines[1], "E1,Asha Verma,Sales,2,1,1,1,5,80.0")
	assert.Contains(t, string(data), "Sales,2,30.0")
}
