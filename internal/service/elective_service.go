package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushq/college-adp-api/internal/models"
	appErrors "github.com/campushq/college-adp-api/pkg/errors"
)

type electiveTeachingRepository interface {
	TeachesSubject(ctx context.Context, facultyID, subjectID string) (bool, error)
}

type electiveRepository interface {
	FindByStudent(ctx context.Context, studentID string) (*models.ElectiveSelection, error)
	Insert(ctx context.Context, selection *models.ElectiveSelection) error
	Update(ctx context.Context, selection *models.ElectiveSelection) error
}

// SelectElectiveRequest records one elective choice for a student.
type SelectElectiveRequest struct {
	Type      string `json:"type" validate:"required,oneof=MDM OE PE"`
	SubjectID string `json:"subject_id" validate:"required"`
	FacultyID string `json:"faculty_id" validate:"required"`
}

// ElectiveService manages a student's per-category elective slots. Each of
// MDM, OE and PE holds at most one choice; re-selecting overwrites the slot.
type ElectiveService struct {
	teaching  electiveTeachingRepository
	electives electiveRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewElectiveService constructs an ElectiveService instance.
func NewElectiveService(teaching electiveTeachingRepository, electives electiveRepository, validate *validator.Validate, logger *zap.Logger) *ElectiveService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ElectiveService{teaching: teaching, electives: electives, validator: validate, logger: logger}
}

// Select writes the student's choice into the slot for the elective type.
func (s *ElectiveService) Select(ctx context.Context, studentID string, req SelectElectiveRequest) (*models.ElectiveSelection, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid elective payload")
	}
	electiveType := models.ElectiveType(req.Type)
	if !models.ValidElectiveType(electiveType) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown elective type")
	}

	teaches, err := s.teaching.TeachesSubject(ctx, req.FacultyID, req.SubjectID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to verify faculty")
	}
	if !teaches {
		return nil, appErrors.Clone(appErrors.ErrValidation, "faculty does not teach this subject")
	}

	selection, err := s.electives.FindByStudent(ctx, studentID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch selection")
		}
		selection = &models.ElectiveSelection{StudentID: studentID}
		selection.SetSlot(electiveType, req.SubjectID, req.FacultyID)
		if err := s.electives.Insert(ctx, selection); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record selection")
		}
		s.logger.Info("elective selected", zap.String("student_id", studentID), zap.String("type", req.Type))
		return selection, nil
	}

	selection.SetSlot(electiveType, req.SubjectID, req.FacultyID)
	if err := s.electives.Update(ctx, selection); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update selection")
	}
	s.logger.Info("elective updated", zap.String("student_id", studentID), zap.String("type", req.Type))
	return selection, nil
}
