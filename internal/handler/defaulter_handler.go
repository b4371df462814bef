package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/college-adp-api/internal/service"
	appErrors "github.com/campushq/college-adp-api/pkg/errors"
	"github.com/campushq/college-adp-api/pkg/response"
)

type defaulterService interface {
	AssignWork(ctx context.Context, facultyID string, req service.AssignDefaulterWorkRequest) (int, error)
}

// DefaulterHandler exposes the defaulter work fan-out endpoint.
type DefaulterHandler struct {
	service defaulterService
}

// NewDefaulterHandler builds a new handler.
func NewDefaulterHandler(service defaulterService) *DefaulterHandler {
	return &DefaulterHandler{service: service}
}

// AssignWork godoc
// @Summary Fan remedial work out to defaulter students
// @Tags Defaulter
// @Accept json
// @Produce json
// @Param payload body service.AssignDefaulterWorkRequest true "Assignment payload"
// @Success 201 {object} map[string]interface{}
// @Router /defaulter/assign-defaulter-work [post]
func (h *DefaulterHandler) AssignWork(c *gin.Context) {
	var req service.AssignDefaulterWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid assignment payload"))
		return
	}
	count, err := h.service.AssignWork(c.Request.Context(), actorID(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"assigned": count})
}
