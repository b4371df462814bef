package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/campushq/college-adp-api/internal/service"
	"github.com/campushq/college-adp-api/pkg/response"
)

// FacultyHandler exposes the faculty's read views.
type FacultyHandler struct {
	faculty *service.FacultyService
}

// NewFacultyHandler builds a new handler.
func NewFacultyHandler(faculty *service.FacultyService) *FacultyHandler {
	return &FacultyHandler{faculty: faculty}
}

// ListSubjects godoc
// @Summary List the faculty's assigned subjects
// @Tags Faculty
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /faculty/subjects [get]
func (h *FacultyHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.faculty.ListSubjects(c.Request.Context(), actorID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"subjects": subjects})
}

// ListStudents godoc
// @Summary List students covered by the faculty's assignments
// @Tags Faculty
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /faculty/students [get]
func (h *FacultyHandler) ListStudents(c *gin.Context) {
	students, err := h.faculty.ListStudents(c.Request.Context(), actorID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"students": students})
}
