package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/college-adp-api/internal/service"
	appErrors "github.com/campushq/college-adp-api/pkg/errors"
	"github.com/campushq/college-adp-api/pkg/response"
)

// DirectorHandler exposes the director's department administration.
type DirectorHandler struct {
	departments *service.DepartmentService
}

// NewDirectorHandler builds a new handler.
func NewDirectorHandler(departments *service.DepartmentService) *DirectorHandler {
	return &DirectorHandler{departments: departments}
}

// ListDepartments godoc
// @Summary List departments with their HODs
// @Tags Director
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /director/departments [get]
func (h *DirectorHandler) ListDepartments(c *gin.Context) {
	departments, err := h.departments.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"departments": departments})
}

// CreateDepartment godoc
// @Summary Create a department
// @Tags Director
// @Accept json
// @Produce json
// @Param payload body service.CreateDepartmentRequest true "Department payload"
// @Success 201 {object} map[string]interface{}
// @Router /director/departments [post]
func (h *DirectorHandler) CreateDepartment(c *gin.Context) {
	var req service.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid department payload"))
		return
	}
	dept, err := h.departments.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"department": dept})
}

// DeleteDepartment godoc
// @Summary Delete a department
// @Tags Director
// @Produce json
// @Param id path string true "Department ID"
// @Success 200 {object} map[string]interface{}
// @Router /director/departments/{id} [delete]
func (h *DirectorHandler) DeleteDepartment(c *gin.Context) {
	if err := h.departments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "department deleted")
}

// ListHODCandidates godoc
// @Summary List staff eligible for HOD assignment
// @Tags Director
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /director/hods [get]
func (h *DirectorHandler) ListHODCandidates(c *gin.Context) {
	users, err := h.departments.ListHODCandidates(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"users": users})
}

// AssignHOD godoc
// @Summary Assign a HOD to a department
// @Tags Director
// @Accept json
// @Produce json
// @Param payload body service.AssignHODRequest true "Assignment payload"
// @Success 200 {object} map[string]interface{}
// @Router /director/assign-hod [post]
func (h *DirectorHandler) AssignHOD(c *gin.Context) {
	var req service.AssignHODRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid assignment payload"))
		return
	}
	if err := h.departments.AssignHOD(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "hod assigned")
}
