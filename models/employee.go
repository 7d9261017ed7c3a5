package models

import "time"

const (
	EmployeeActive  = "active"
	EmployeeRemoved = "removed"
)

// Employee mirrors the employee directory. Removal flips Status to
// "removed" rather than deleting the row, so historical attendance
// records stay resolvable.
type Employee struct {
	EmployeeID string    `gorm:"primaryKey" json:"employee_id"`
	Name       string    `gorm:"not null" json:"name"`
	Email      string    `json:"email"`
	Mobile     string    `json:"mobile"`
	Department string    `gorm:"index;not null" json:"department"`
	Position   string    `gorm:"not null" json:"position"`
	Status     string    `gorm:"index;not null;default:active" json:"status"`
	JoinDate   string    `json:"join_date"` // YYYY-MM-DD
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e *Employee) IsActive() bool {
	return e.Status == EmployeeActive
}
