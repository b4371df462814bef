package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/college-adp-api/internal/service"
	appErrors "github.com/campushq/college-adp-api/pkg/errors"
	"github.com/campushq/college-adp-api/pkg/response"
)

type submissionService interface {
	Mark(ctx context.Context, markedBy string, req service.MarkSubmissionRequest) error
}

// SubmissionHandler exposes submission status tracking.
type SubmissionHandler struct {
	service submissionService
}

// NewSubmissionHandler builds a new handler.
func NewSubmissionHandler(service submissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// Mark godoc
// @Summary Mark a student submission status
// @Tags Submission
// @Accept json
// @Produce json
// @Param payload body service.MarkSubmissionRequest true "Submission payload"
// @Success 200 {object} map[string]interface{}
// @Router /submission/mark-submission [post]
func (h *SubmissionHandler) Mark(c *gin.Context) {
	var req service.MarkSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid submission payload"))
		return
	}
	if err := h.service.Mark(c.Request.Context(), actorID(c), req); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "submission marked")
}
