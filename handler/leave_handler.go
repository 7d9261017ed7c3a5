package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devanshg21/face-attendance-backend/dto"
	"github.com/devanshg21/face-attendance-backend/service"
)

type LeaveHandler struct {
	svc *service.LeaveService
}

func NewLeaveHandler(svc *service.LeaveService) *LeaveHandler {
	return &LeaveHandler{svc: svc}
}

func (h *LeaveHandler) Submit(c *gin.Context) {
	var req dto.SubmitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	leave, err := h.svc.Submit(c.Request.Context(), req.EmployeeID, req.StartDate, req.EndDate, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, leave)
}

// Approve transitions the request and immediately reconciles it into the
// attendance timeline, returning both.
func (h *LeaveHandler) Approve(c *gin.Context) {
	id := c.Param("id")

	leave, err := h.svc.Approve(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	application, err := h.svc.Apply(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"request": leave, "application": application})
}

func (h *LeaveHandler) Reject(c *gin.Context) {
	leave, err := h.svc.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, leave)
}

func (h *LeaveHandler) Apply(c *gin.Context) {
	application, err := h.svc.Apply(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

func (h *LeaveHandler) Get(c *gin.Context) {
	leave, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, leave)
}

func (h *LeaveHandler) List(c *gin.Context) {
	filter := service.LeaveFilter{
		EmployeeID: c.Query("employee_id"),
		Status:     c.Query("status"),
	}

	requests, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests, "count": len(requests)})
}
