package dto

import "time"

// MatchResult is ephemeral: consumed by the state machine, never stored.
// Matched is false both when every score is under the threshold and when
// the top scores are too close to call apart.
type MatchResult struct {
	Matched    bool    `json:"matched"`
	EmployeeID string  `json:"employee_id,omitempty"`
	Score      float64 `json:"score"`
	Ambiguous  bool    `json:"ambiguous,omitempty"`
}

// CaptureResponse joins the match outcome with the attendance record it
// produced, if any.
type CaptureResponse struct {
	Match       MatchResult    `json:"match"`
	Attendance  *AttendanceDay `json:"attendance,omitempty"`
	ProcessedAt string         `json:"processed_at"`
}

// AttendanceDay is the wire shape of one (employee, date) record.
type AttendanceDay struct {
	EmployeeID   string     `json:"employee_id"`
	Date         string     `json:"date"`
	State        string     `json:"state"`
	CheckInTime  *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
	Source       string     `json:"source"`
	Actor        string     `json:"actor,omitempty"`
}

// LeaveConflict reports a day where attendance evidence beat a leave grant.
type LeaveConflict struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	State      string `json:"state"`
}

// LeaveApplication is the result of reconciling one approved request.
// Re-applying the same request returns the recorded prior outcome.
type LeaveApplication struct {
	RequestID      string          `json:"request_id"`
	DaysApplied    int             `json:"days_applied"`
	DaysSkipped    int             `json:"days_skipped"`
	Conflicts      []LeaveConflict `json:"conflicts"`
	AlreadyApplied bool            `json:"already_applied"`
}

// EmployeeReport is one row of the aggregate report.
type EmployeeReport struct {
	EmployeeID           string  `json:"employee_id"`
	Name                 string  `json:"name"`
	Department           string  `json:"department"`
	PresentDays          int     `json:"present_days"`
	LateDays             int     `json:"late_days"`
	AbsentDays           int     `json:"absent_days"`
	LeaveDays            int     `json:"leave_days"`
	WorkingDays          int     `json:"working_days"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

// DepartmentReport is the group-by rollup over its members.
type DepartmentReport struct {
	Department      string  `json:"department"`
	Employees       int     `json:"employees"`
	AbsenteeismRate float64 `json:"absenteeism_rate"`
}

// AggregateReport is derived on demand, never persisted.
type AggregateReport struct {
	From        string             `json:"from"`
	To          string             `json:"to"`
	Department  string             `json:"department,omitempty"`
	WorkingDays int                `json:"working_days"`
	Employees   []EmployeeReport   `json:"employees"`
	Departments []DepartmentReport `json:"departments"`
}
