package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/college-adp-api/internal/service"
	appErrors "github.com/campushq/college-adp-api/pkg/errors"
	"github.com/campushq/college-adp-api/pkg/response"
)

// StudentHandler exposes student self-service endpoints.
type StudentHandler struct {
	electives *service.ElectiveService
}

// NewStudentHandler builds a new handler.
func NewStudentHandler(electives *service.ElectiveService) *StudentHandler {
	return &StudentHandler{electives: electives}
}

// SelectElective godoc
// @Summary Record an elective choice
// @Tags Student
// @Accept json
// @Produce json
// @Param payload body service.SelectElectiveRequest true "Elective payload"
// @Success 200 {object} map[string]interface{}
// @Router /student/select-elective [post]
func (h *StudentHandler) SelectElective(c *gin.Context) {
	var req service.SelectElectiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid elective payload"))
		return
	}
	selection, err := h.electives.Select(c.Request.Context(), actorID(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"selection": selection})
}
