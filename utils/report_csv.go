package utils

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/devanshg21/face-attendance-backend/dto"
)

// EncodeReportCSV renders an aggregate report the way the old export did:
// one row per employee, then department rollups.
func EncodeReportCSV(report *dto.AggregateReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Employee ID", "Name", "Department", "Present", "Late", "Absent", "Leave", "Working Days", "Attendance %"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, e := range report.Employees {
		row := []string{
			e.EmployeeID,
			e.Name,
			e.Department,
			strconv.Itoa(e.PresentDays),
			strconv.Itoa(e.LateDays),
			strconv.Itoa(e.AbsentDays),
			strconv.Itoa(e.LeaveDays),
			strconv.Itoa(e.WorkingDays),
			fmt.Sprintf("%.1f", e.AttendancePercentage),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	if len(report.Departments) > 0 {
		if err := w.Write([]string{}); err != nil {
			return nil, err
		}
		if err := w.Write([]string{"Department", "Employees", "Absenteeism %"}); err != nil {
			return nil, err
		}
		for _, d := range report.Departments {
			row := []string{
				d.Department,
				strconv.Itoa(d.Employees),
				fmt.Sprintf("%.1f", d.AbsenteeismRate),
			}
			if err := w.Write(row); err != nil {
				return nil, fmt.Errorf("write csv department row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
