package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devanshg21/face-attendance-backend/service"
	"github.com/devanshg21/face-attendance-backend/utils"
)

type ReportHandler struct {
	svc *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func (h *ReportHandler) Aggregate(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters required"})
		return
	}

	report, err := h.svc.Aggregate(c.Request.Context(), from, to, c.Query("department"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) AggregateCSV(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters required"})
		return
	}

	report, err := h.svc.Aggregate(c.Request.Context(), from, to, c.Query("department"))
	if err != nil {
		respondError(c, err)
		return
	}

	data, err := utils.EncodeReportCSV(report)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("attendance_%s_to_%s.csv", from, to)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv", data)
}
