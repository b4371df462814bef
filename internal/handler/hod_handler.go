package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/college-adp-api/internal/service"
	appErrors "github.com/campushq/college-adp-api/pkg/errors"
	"github.com/campushq/college-adp-api/pkg/response"
)

// HODHandler exposes the HOD's class and offering administration. Every
// operation is scoped by the department claim in the session token.
type HODHandler struct {
	classes   *service.ClassService
	offerings *service.OfferingService
}

// NewHODHandler builds a new handler.
func NewHODHandler(classes *service.ClassService, offerings *service.OfferingService) *HODHandler {
	return &HODHandler{classes: classes, offerings: offerings}
}

// ListClasses godoc
// @Summary List the department's classes
// @Tags HOD
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /hod/classes [get]
func (h *HODHandler) ListClasses(c *gin.Context) {
	claims := claimsFromContext(c)
	classes, err := h.classes.List(c.Request.Context(), claims.DepartmentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"classes": classes})
}

// CreateClass godoc
// @Summary Create a class
// @Tags HOD
// @Accept json
// @Produce json
// @Param payload body service.CreateClassRequest true "Class payload"
// @Success 201 {object} map[string]interface{}
// @Router /hod/classes [post]
func (h *HODHandler) CreateClass(c *gin.Context) {
	claims := claimsFromContext(c)
	var req service.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid class payload"))
		return
	}
	class, err := h.classes.Create(c.Request.Context(), claims.DepartmentID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"class": class})
}

// UpdateClass godoc
// @Summary Update a class
// @Tags HOD
// @Accept json
// @Produce json
// @Param id path string true "Class ID"
// @Param payload body service.UpdateClassRequest true "Class payload"
// @Success 200 {object} map[string]interface{}
// @Router /hod/classes/{id} [put]
func (h *HODHandler) UpdateClass(c *gin.Context) {
	claims := claimsFromContext(c)
	var req service.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid class payload"))
		return
	}
	class, err := h.classes.Update(c.Request.Context(), claims.DepartmentID, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"class": class})
}

// DeleteClass godoc
// @Summary Delete a class
// @Tags HOD
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} map[string]interface{}
// @Router /hod/classes/{id} [delete]
func (h *HODHandler) DeleteClass(c *gin.Context) {
	claims := claimsFromContext(c)
	if err := h.classes.Delete(c.Request.Context(), claims.DepartmentID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "class deleted")
}

// ListFaculties godoc
// @Summary List the department's teaching staff
// @Tags HOD
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /hod/faculties [get]
func (h *HODHandler) ListFaculties(c *gin.Context) {
	claims := claimsFromContext(c)
	users, err := h.classes.ListFaculties(c.Request.Context(), claims.DepartmentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"faculties": users})
}

// ListClassTeachers godoc
// @Summary List class teacher candidates for the department
// @Tags HOD
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /hod/class-teachers [get]
func (h *HODHandler) ListClassTeachers(c *gin.Context) {
	claims := claimsFromContext(c)
	users, err := h.classes.ListClassTeachers(c.Request.Context(), claims.DepartmentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"class_teachers": users})
}

// ListOfferedSubjects godoc
// @Summary List the department's elective offerings
// @Tags HOD
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /hod/offered-subjects [get]
func (h *HODHandler) ListOfferedSubjects(c *gin.Context) {
	claims := claimsFromContext(c)
	offerings, err := h.offerings.List(c.Request.Context(), claims.DepartmentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"offered_subjects": offerings})
}

// AddOfferedSubject godoc
// @Summary Create a subject and offer it as an elective
// @Tags HOD
// @Accept json
// @Produce json
// @Param payload body service.AddOfferedSubjectRequest true "Offering payload"
// @Success 201 {object} map[string]interface{}
// @Router /hod/add-offered-subject [post]
func (h *HODHandler) AddOfferedSubject(c *gin.Context) {
	claims := claimsFromContext(c)
	var req service.AddOfferedSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid offering payload"))
		return
	}
	offering, err := h.offerings.Add(c.Request.Context(), claims.DepartmentID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"offered_subject": offering})
}

// DeleteOfferedSubject godoc
// @Summary Delete an elective offering
// @Tags HOD
// @Produce json
// @Param id path string true "Offering ID"
// @Success 200 {object} map[string]interface{}
// @Router /hod/offered-subjects/{id} [delete]
func (h *HODHandler) DeleteOfferedSubject(c *gin.Context) {
	claims := claimsFromContext(c)
	if err := h.offerings.Delete(c.Request.Context(), claims.DepartmentID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "offering deleted")
}
