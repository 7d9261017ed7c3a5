package models

import "time"

const (
	LeavePending  = "pending"
	LeaveApproved = "approved"
	LeaveRejected = "rejected"
)

// LeaveRequest covers an inclusive [StartDate, EndDate] span. Applied is
// flipped exactly once by the reconciler; the flip is a check-and-set so
// concurrent approval processing cannot apply the same request twice.
type LeaveRequest struct {
	ID         string     `gorm:"primaryKey" json:"id"`
	EmployeeID string     `gorm:"index;not null" json:"employee_id"`
	StartDate  string     `gorm:"not null" json:"start_date"` // YYYY-MM-DD
	EndDate    string     `gorm:"not null" json:"end_date"`   // YYYY-MM-DD
	Status     string     `gorm:"index;not null;default:pending" json:"status"`
	Reason     string     `json:"reason,omitempty"`
	Applied    bool       `gorm:"not null;default:false" json:"applied"`
	AppliedAt  *time.Time `json:"applied_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// Overlaps reports whether two date spans share at least one day.
// Date keys compare lexicographically.
func (l *LeaveRequest) Overlaps(start, end string) bool {
	return l.StartDate <= end && start <= l.EndDate
}
