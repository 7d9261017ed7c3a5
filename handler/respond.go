package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devanshg21/face-attendance-backend/dto"
)

// respondError maps a core error to its HTTP status and wire shape.
func respondError(c *gin.Context, err error) {
	code := dto.CodeOf(err)

	status := http.StatusInternalServerError
	switch code {
	case "NOT_FOUND":
		status = http.StatusNotFound
	case "ALREADY_EXISTS", "LEAVE_OVERLAP", "INVALID_STATE", "EMPLOYEE_REMOVED", "STALE_WRITE":
		status = http.StatusConflict
	case "MALFORMED_EMBEDDING", "INVALID_LEAVE_RANGE", "NO_ACTIVE_CHECK_IN", "CHECK_OUT_BEFORE_IN", "NO_ENROLLED_IDENTITIES", "DAY_NOT_ELAPSED":
		status = http.StatusUnprocessableEntity
	}

	c.JSON(status, dto.DomainError{Code: code, Message: err.Error()})
}
