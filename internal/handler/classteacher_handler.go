package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campushq/college-adp-api/internal/service"
	appErrors "github.com/campushq/college-adp-api/pkg/errors"
	"github.com/campushq/college-adp-api/pkg/response"
)

// ClassTeacherHandler exposes the class teacher's roster administration.
// Every operation is scoped by the class claim in the session token.
type ClassTeacherHandler struct {
	roster     *service.RosterService
	importer   *service.ImportService
	exporter   *service.ExportService
	metrics    *service.MetricsService
	uploadsDir string
}

// NewClassTeacherHandler builds a new handler.
func NewClassTeacherHandler(roster *service.RosterService, importer *service.ImportService, exporter *service.ExportService, metrics *service.MetricsService, uploadsDir string) *ClassTeacherHandler {
	return &ClassTeacherHandler{
		roster:     roster,
		importer:   importer,
		exporter:   exporter,
		metrics:    metrics,
		uploadsDir: uploadsDir,
	}
}

// ListStudents godoc
// @Summary List the class roster
// @Tags ClassTeacher
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /classteacher/students [get]
func (h *ClassTeacherHandler) ListStudents(c *gin.Context) {
	claims := claimsFromContext(c)
	students, err := h.roster.ListStudents(c.Request.Context(), claims.ClassID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"students": students})
}

// ListBatches godoc
// @Summary List the class's practical batches
// @Tags ClassTeacher
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /classteacher/batches [get]
func (h *ClassTeacherHandler) ListBatches(c *gin.Context) {
	claims := claimsFromContext(c)
	batches, err := h.roster.ListBatches(c.Request.Context(), claims.ClassID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"batches": batches})
}

// ListFaculties godoc
// @Summary List teaching staff for assignment pickers
// @Tags ClassTeacher
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /classteacher/faculties [get]
func (h *ClassTeacherHandler) ListFaculties(c *gin.Context) {
	users, err := h.roster.ListFaculties(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"faculties": users})
}

// UpdateStudent godoc
// @Summary Update a student of the class
// @Tags ClassTeacher
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param payload body service.UpdateStudentRequest true "Student payload"
// @Success 200 {object} map[string]interface{}
// @Router /classteacher/student/{id} [put]
func (h *ClassTeacherHandler) UpdateStudent(c *gin.Context) {
	claims := claimsFromContext(c)
	var req service.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid student payload"))
		return
	}
	student, err := h.roster.UpdateStudent(c.Request.Context(), claims.ClassID, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"student": student})
}

// DeleteStudent godoc
// @Summary Delete a student of the class
// @Tags ClassTeacher
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} map[string]interface{}
// @Router /classteacher/student/{id} [delete]
func (h *ClassTeacherHandler) DeleteStudent(c *gin.Context) {
	claims := claimsFromContext(c)
	if err := h.roster.DeleteStudent(c.Request.Context(), claims.ClassID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "student deleted")
}

// AssignSubject godoc
// @Summary Create a subject for the class and bind its faculty
// @Tags ClassTeacher
// @Accept json
// @Produce json
// @Param payload body service.AssignSubjectRequest true "Assignment payload"
// @Success 201 {object} map[string]interface{}
// @Router /classteacher/subjects/assign [post]
func (h *ClassTeacherHandler) AssignSubject(c *gin.Context) {
	claims := claimsFromContext(c)
	var req service.AssignSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid assignment payload"))
		return
	}
	subject, err := h.roster.AssignSubject(c.Request.Context(), claims.ClassID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"subject": subject})
}

// CreateBatch godoc
// @Summary Create a practical batch and bind students by roll range
// @Tags ClassTeacher
// @Accept json
// @Produce json
// @Param payload body service.CreateBatchRequest true "Batch payload"
// @Success 201 {object} map[string]interface{}
// @Router /classteacher/create-batch [post]
func (h *ClassTeacherHandler) CreateBatch(c *gin.Context) {
	claims := claimsFromContext(c)
	var req service.CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid batch payload"))
		return
	}
	batch, err := h.roster.CreateBatch(c.Request.Context(), claims.ClassID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"batch": batch})
}

// ImportStudents godoc
// @Summary Bulk import students from a CSV file
// @Tags ClassTeacher
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV roster"
// @Success 200 {object} map[string]interface{}
// @Router /classteacher/import-students [post]
func (h *ClassTeacherHandler) ImportStudents(c *gin.Context) {
	claims := claimsFromContext(c)

	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "csv file is required"))
		return
	}
	if ext := strings.ToLower(filepath.Ext(file.Filename)); ext != ".csv" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "only csv files are accepted"))
		return
	}

	path := filepath.Join(h.uploadsDir, uuid.NewString()+".csv")
	if err := c.SaveUploadedFile(file, path); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, http.StatusInternalServerError, "failed to store upload"))
		return
	}

	result, err := h.importer.ImportStudents(c.Request.Context(), claims.ClassID, path)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.ObserveImport(result.Imported, result.Skipped)
	response.OK(c, gin.H{"result": result})
}

// ExportDefaulters godoc
// @Summary Download the class defaulter report
// @Tags ClassTeacher
// @Produce text/csv,application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /classteacher/defaulters/export [get]
func (h *ClassTeacherHandler) ExportDefaulters(c *gin.Context) {
	claims := claimsFromContext(c)
	format := service.ExportFormat(c.DefaultQuery("format", "csv"))

	file, err := h.exporter.DefaulterReport(c.Request.Context(), claims.ClassID, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
