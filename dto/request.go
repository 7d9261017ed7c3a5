package dto

import "time"

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Mobile     string `json:"mobile" binding:"required"`
	Department string `json:"department" binding:"required"`
	Position   string `json:"position" binding:"required"`
}

// UpdateEmployeeRequest carries partial updates; nil fields are untouched.
type UpdateEmployeeRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Mobile     *string `json:"mobile"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
}

type EnrollIdentityRequest struct {
	Embedding []float64 `json:"embedding" binding:"required"`
}

// CaptureRequest is what the capture pipeline delivers: a probe embedding
// plus the moment it was taken. The engine never talks to a camera.
type CaptureRequest struct {
	Embedding  []float64  `json:"embedding" binding:"required"`
	CapturedAt *time.Time `json:"captured_at"`
}

type CheckOutRequest struct {
	EmployeeID string     `json:"employee_id" binding:"required"`
	Timestamp  *time.Time `json:"timestamp"`
}

type OverrideRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	State      string `json:"state" binding:"required,oneof=present absent late on_leave"`
	Actor      string `json:"actor" binding:"required"`
}

type SubmitLeaveRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	Reason     string `json:"reason"`
}

type CloseDayRequest struct {
	Date string `json:"date" binding:"required"`
}
