package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/college-adp-api/internal/middleware"
	"github.com/campushq/college-adp-api/internal/models"
	"github.com/campushq/college-adp-api/internal/service"
	appErrors "github.com/campushq/college-adp-api/pkg/errors"
)

type submissionServiceMock struct {
	err          error
	called       bool
	lastMarkedBy string
	lastReq      service.MarkSubmissionRequest
}

func (m *submissionServiceMock) Mark(ctx context.Context, markedBy string, req service.MarkSubmissionRequest) error {
	m.called = true
	m.lastMarkedBy = markedBy
	m.lastReq = req
	return m.err
}

func TestSubmissionHandlerMark(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &submissionServiceMock{}
	handler := NewSubmissionHandler(mockSvc)

	payload, _ := json.Marshal(service.MarkSubmissionRequest{
		StudentID:      "s1",
		SubjectID:      "sub1",
		SubmissionType: "TA",
		Status:         "completed",
	})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/submission/mark-submission", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "f1", Role: models.RoleFaculty})

	handler.Mark(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockSvc.called)
	assert.Equal(t, "f1", mockSvc.lastMarkedBy)
	assert.Equal(t, "completed", mockSvc.lastReq.Status)
}

func TestSubmissionHandlerInvalidType(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &submissionServiceMock{err: appErrors.Clone(appErrors.ErrValidation, "invalid submission_type: NOPE")}
	handler := NewSubmissionHandler(mockSvc)

	payload, _ := json.Marshal(service.MarkSubmissionRequest{
		StudentID:      "s1",
		SubjectID:      "sub1",
		SubmissionType: "NOPE",
		Status:         "pending",
	})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/submission/mark-submission", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "f1", Role: models.RoleFaculty})

	handler.Mark(c)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "invalid submission_type: NOPE", body["error"])
}
