package models

import "time"

const (
	StateAbsent  = "absent"
	StatePresent = "present"
	StateLate    = "late"
	StateOnLeave = "on_leave"
)

const (
	SourceAuto   = "auto"
	SourceManual = "manual"
)

// AttendanceRecord is the one row per (employee, day). Version backs the
// optimistic write at the storage boundary: an update only lands when the
// stored version still matches the one that was read.
type AttendanceRecord struct {
	EmployeeID   string     `gorm:"primaryKey" json:"employee_id"`
	Date         string     `gorm:"primaryKey" json:"date"` // YYYY-MM-DD
	State        string     `gorm:"not null" json:"state"`
	CheckInTime  *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
	Source       string     `gorm:"not null;default:auto" json:"source"`
	Actor        string     `json:"actor,omitempty"`
	Version      int64      `gorm:"not null;default:0" json:"version"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

// Attended reports whether the record carries real presence evidence.
func (r *AttendanceRecord) Attended() bool {
	return r.State == StatePresent || r.State == StateLate
}

// DateKey formats a timestamp as the attendance day key.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
