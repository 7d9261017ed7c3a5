package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/devanshg21/face-attendance-backend/handler"
)

func NewRouter(
	employees *handler.EmployeeHandler,
	attendance *handler.AttendanceHandler,
	leave *handler.LeaveHandler,
	reports *handler.ReportHandler,
) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Face Attendance Backend",
		})
	})

	api := r.Group("/api/v1")
	{
		emp := api.Group("/employees")
		{
			emp.POST("", employees.Create)
			emp.GET("", employees.List)
			emp.GET("/:id", employees.Get)
			emp.PATCH("/:id", employees.Update)
			emp.DELETE("/:id", employees.Remove)
			emp.POST("/:id/identity", employees.Enroll)
			emp.GET("/:id/identity", employees.GetIdentity)
		}

		att := api.Group("/attendance")
		{
			att.POST("/capture", attendance.Capture)
			att.POST("/check-out", attendance.CheckOut)
			att.PUT("/override", attendance.Override)
			att.GET("", attendance.List)
			att.POST("/close-day", attendance.CloseDay)
		}

		lv := api.Group("/leave")
		{
			lv.POST("", leave.Submit)
			lv.GET("", leave.List)
			lv.GET("/:id", leave.Get)
			lv.POST("/:id/approve", leave.Approve)
			lv.POST("/:id/reject", leave.Reject)
			lv.POST("/:id/apply", leave.Apply)
		}

		rep := api.Group("/reports")
		{
			rep.GET("/attendance", reports.Aggregate)
			rep.GET("/attendance.csv", reports.AggregateCSV)
		}
	}

	return r
}
