package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devanshg21/face-attendance-backend/dto"
	"github.com/devanshg21/face-attendance-backend/service"
)

type EmployeeHandler struct {
	svc *service.DirectoryService
}

func NewEmployeeHandler(svc *service.DirectoryService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	emp, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, emp)
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	emp, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, emp)
}

func (h *EmployeeHandler) List(c *gin.Context) {
	filter := service.EmployeeFilter{
		Department: c.Query("department"),
		Status:     c.Query("status"),
	}

	employees, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"employees": employees, "count": len(employees)})
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	emp, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, emp)
}

func (h *EmployeeHandler) Remove(c *gin.Context) {
	emp, err := h.svc.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, emp)
}

func (h *EmployeeHandler) GetIdentity(c *gin.Context) {
	identity, err := h.svc.Identity(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"employee_id": identity.EmployeeID,
		"dimensions":  len(identity.Vector),
		"enrolled_at": identity.EnrolledAt,
	})
}

func (h *EmployeeHandler) Enroll(c *gin.Context) {
	var req dto.EnrollIdentityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	identity, err := h.svc.Enroll(c.Request.Context(), c.Param("id"), req.Embedding)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"employee_id": identity.EmployeeID,
		"dimensions":  len(identity.Vector),
		"enrolled_at": identity.EnrolledAt,
	})
}
