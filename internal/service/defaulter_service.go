package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushq/college-adp-api/internal/models"
	appErrors "github.com/campushq/college-adp-api/pkg/errors"
)

type defaulterTeachingRepository interface {
	FindClassForSubject(ctx context.Context, facultyID, subjectID string) (string, error)
}

type defaulterStudentRepository interface {
	ListDefaulters(ctx context.Context, classID string) ([]models.Student, error)
}

type defaulterSubmissionRepository interface {
	InsertDefaulterWork(ctx context.Context, rows []models.DefaulterSubmission) error
}

// AssignDefaulterWorkRequest fans one work instruction out to every
// defaulter of the class the faculty teaches the subject in.
type AssignDefaulterWorkRequest struct {
	SubjectID      string  `json:"subject_id" validate:"required"`
	SubmissionText string  `json:"submission_text"`
	ReferenceLink  *string `json:"reference_link"`
	Skip           bool    `json:"skip"`
}

// Placeholder texts recorded when the faculty skips the assignment or
// leaves the instructions blank.
const (
	skippedByFacultyText = "Skipped by faculty"
	noInstructionsText   = "No instructions provided."
)

// DefaulterService fans remedial work assignments out to defaulter
// students. Rows accumulate across calls; repeating an assignment adds new
// rows rather than replacing earlier ones.
type DefaulterService struct {
	teaching    defaulterTeachingRepository
	students    defaulterStudentRepository
	submissions defaulterSubmissionRepository
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewDefaulterService constructs a DefaulterService instance.
func NewDefaulterService(teaching defaulterTeachingRepository, students defaulterStudentRepository, submissions defaulterSubmissionRepository, validate *validator.Validate, logger *zap.Logger) *DefaulterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &DefaulterService{teaching: teaching, students: students, submissions: submissions, validator: validate, logger: logger}
}

// AssignWork records one row of work per defaulter in the class the faculty
// teaches the subject in. Returns the number of rows written; zero when the
// class has no defaulters.
func (s *DefaulterService) AssignWork(ctx context.Context, facultyID string, req AssignDefaulterWorkRequest) (int, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}

	classID, err := s.teaching.FindClassForSubject(ctx, facultyID, req.SubjectID)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve class")
	}
	if classID == "" {
		return 0, appErrors.Clone(appErrors.ErrValidation, "no class found for this subject")
	}

	defaulters, err := s.students.ListDefaulters(ctx, classID)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list defaulters")
	}
	if len(defaulters) == 0 {
		return 0, nil
	}

	text := req.SubmissionText
	if req.Skip {
		text = skippedByFacultyText
	} else if text == "" {
		text = noInstructionsText
	}

	rows := make([]models.DefaulterSubmission, 0, len(defaulters))
	for _, student := range defaulters {
		rows = append(rows, models.DefaulterSubmission{
			StudentID:      student.ID,
			SubjectID:      req.SubjectID,
			FacultyID:      facultyID,
			SubmissionText: text,
			ReferenceLink:  req.ReferenceLink,
			Skip:           req.Skip,
		})
	}

	if err := s.submissions.InsertDefaulterWork(ctx, rows); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record defaulter work")
	}

	s.logger.Info("defaulter work assigned",
		zap.String("faculty_id", facultyID),
		zap.String("subject_id", req.SubjectID),
		zap.String("class_id", classID),
		zap.Int("assignments", len(rows)))
	return len(rows), nil
}
