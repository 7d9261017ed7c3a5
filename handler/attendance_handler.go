package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devanshg21/face-attendance-backend/dto"
	"github.com/devanshg21/face-attendance-backend/service"
)

type AttendanceHandler struct {
	matcher    *service.Matcher
	attendance *service.AttendanceService
	threshold  float64
}

func NewAttendanceHandler(matcher *service.Matcher, attendance *service.AttendanceService, threshold float64) *AttendanceHandler {
	return &AttendanceHandler{
		matcher:    matcher,
		attendance: attendance,
		threshold:  threshold,
	}
}

// Capture is the biometric entry point: match the probe, then check the
// matched employee in at the capture timestamp. A no-match is a normal
// 200 outcome, not an error; the caller inspects match.matched.
func (h *AttendanceHandler) Capture(c *gin.Context) {
	var req dto.CaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ts := time.Now()
	if req.CapturedAt != nil {
		ts = *req.CapturedAt
	}

	match, err := h.matcher.Match(c.Request.Context(), req.Embedding, h.threshold)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.CaptureResponse{
		Match:       match,
		ProcessedAt: time.Now().Format(time.RFC3339),
	}

	if match.Matched {
		rec, err := h.attendance.RecordCheckIn(c.Request.Context(), match.EmployeeID, ts)
		if err != nil {
			respondError(c, err)
			return
		}
		resp.Attendance = &dto.AttendanceDay{
			EmployeeID:   rec.EmployeeID,
			Date:         rec.Date,
			State:        rec.State,
			CheckInTime:  rec.CheckInTime,
			CheckOutTime: rec.CheckOutTime,
			Source:       rec.Source,
			Actor:        rec.Actor,
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	var req dto.CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ts := time.Now()
	if req.Timestamp != nil {
		ts = *req.Timestamp
	}

	rec, err := h.attendance.RecordCheckOut(c.Request.Context(), req.EmployeeID, ts)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

func (h *AttendanceHandler) Override(c *gin.Context) {
	var req dto.OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.attendance.SetState(c.Request.Context(), req.EmployeeID, req.Date, req.State, req.Actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

func (h *AttendanceHandler) List(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters required"})
		return
	}

	records, err := h.attendance.ListRange(c.Request.Context(), from, to, c.Query("employee_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records, "count": len(records)})
}

func (h *AttendanceHandler) CloseDay(c *gin.Context) {
	var req dto.CloseDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	emitted, err := h.attendance.CloseDay(c.Request.Context(), req.Date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": req.Date, "absent_events": emitted})
}
