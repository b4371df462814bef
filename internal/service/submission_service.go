package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushq/college-adp-api/internal/models"
	appErrors "github.com/campushq/college-adp-api/pkg/errors"
)

type submissionTeachingRepository interface {
	TeachesSubject(ctx context.Context, facultyID, subjectID string) (bool, error)
}

type submissionRepository interface {
	FindTypeByName(ctx context.Context, name string) (*models.SubmissionType, error)
	Find(ctx context.Context, studentID, subjectID, typeID string) (*models.StudentSubmission, error)
	Insert(ctx context.Context, sub *models.StudentSubmission) error
	UpdateStatus(ctx context.Context, id string, status models.SubmissionStatus, markedBy string) error
}

// MarkSubmissionRequest records a submission status for one student.
type MarkSubmissionRequest struct {
	StudentID      string `json:"student_id" validate:"required"`
	SubjectID      string `json:"subject_id" validate:"required"`
	SubmissionType string `json:"submission_type" validate:"required"`
	Status         string `json:"status" validate:"required,oneof=pending completed"`
}

// SubmissionService tracks per-(student, subject, type) submission
// statuses. Marking upserts: at most one row exists per triple.
type SubmissionService struct {
	teaching    submissionTeachingRepository
	submissions submissionRepository
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewSubmissionService constructs a SubmissionService instance.
func NewSubmissionService(teaching submissionTeachingRepository, submissions submissionRepository, validate *validator.Validate, logger *zap.Logger) *SubmissionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &SubmissionService{teaching: teaching, submissions: submissions, validator: validate, logger: logger}
}

// Mark records the submission status, inserting the row on first mark and
// overwriting the status on every subsequent one.
func (s *SubmissionService) Mark(ctx context.Context, markedBy string, req MarkSubmissionRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid submission payload")
	}

	teaches, err := s.teaching.TeachesSubject(ctx, markedBy, req.SubjectID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to verify assignment")
	}
	if !teaches {
		return appErrors.Clone(appErrors.ErrForbidden, "subject is not assigned to this account")
	}

	subType, err := s.submissions.FindTypeByName(ctx, req.SubmissionType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid submission_type: %s", req.SubmissionType))
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve submission type")
	}

	status := models.SubmissionStatus(req.Status)
	existing, err := s.submissions.Find(ctx, req.StudentID, req.SubjectID, subType.ID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch submission")
		}
		sub := &models.StudentSubmission{
			StudentID:        req.StudentID,
			SubjectID:        req.SubjectID,
			SubmissionTypeID: subType.ID,
			Status:           status,
			MarkedBy:         markedBy,
		}
		if err := s.submissions.Insert(ctx, sub); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record submission")
		}
		s.logger.Info("submission recorded", zap.String("student_id", req.StudentID), zap.String("status", req.Status))
		return nil
	}

	if err := s.submissions.UpdateStatus(ctx, existing.ID, status, markedBy); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update submission")
	}
	s.logger.Info("submission updated", zap.String("student_id", req.StudentID), zap.String("status", req.Status))
	return nil
}
