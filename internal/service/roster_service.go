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

type rosterStudentRepository interface {
	ListByClass(ctx context.Context, classID string) ([]models.StudentRosterRow, error)
	FindByID(ctx context.Context, id string) (*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id string) error
	AssignBatchByRollRange(ctx context.Context, classID, batchID string, rollStart, rollEnd int) error
}

type rosterBatchRepository interface {
	ListByClass(ctx context.Context, classID string) ([]models.Batch, error)
	Create(ctx context.Context, batch *models.Batch) error
}

type rosterClassRepository interface {
	FindByID(ctx context.Context, id string) (*models.Class, error)
}

type rosterUserRepository interface {
	ListNonDirectors(ctx context.Context) ([]models.User, error)
}

type rosterSubjectRepository interface {
	ExistsByCode(ctx context.Context, departmentID, code string) (bool, error)
	Create(ctx context.Context, subject *models.Subject) error
}

type rosterFacultySubjectRepository interface {
	InsertMany(ctx context.Context, edges []models.FacultySubject) error
}

// UpdateStudentRequest rewrites a roster entry. The defaulter flag follows
// the attendance threshold unless the payload overrides it explicitly.
type UpdateStudentRequest struct {
	RollNo            string  `json:"roll_no" validate:"required"`
	Name              string  `json:"name" validate:"required"`
	HallTicketNumber  string  `json:"hall_ticket_number" validate:"required"`
	Email             *string `json:"email" validate:"omitempty,email"`
	Mobile            *string `json:"mobile"`
	AttendancePercent float64 `json:"attendance_percent" validate:"min=0,max=100"`
	Defaulter         *bool   `json:"defaulter"`
	BatchID           *string `json:"batch_id"`
}

// BatchAssignment pairs a batch with the faculty teaching a practical in it.
type BatchAssignment struct {
	BatchID   string `json:"batch_id" validate:"required"`
	FacultyID string `json:"faculty_id" validate:"required"`
}

// AssignSubjectRequest creates a subject for the class and binds faculty to
// it. Theory subjects take one class-wide faculty; practicals take one
// faculty per batch.
type AssignSubjectRequest struct {
	SubjectName      string            `json:"subject_name" validate:"required"`
	SubjectCode      string            `json:"subject_code" validate:"required"`
	Type             string            `json:"type" validate:"required,oneof=theory practical"`
	FacultyID        string            `json:"faculty_id"`
	BatchAssignments []BatchAssignment `json:"batch_assignments" validate:"dive"`
}

// CreateBatchRequest creates a practical batch covering a roll number range.
type CreateBatchRequest struct {
	Name      string  `json:"name" validate:"required"`
	RollStart int     `json:"roll_start" validate:"required,min=1"`
	RollEnd   int     `json:"roll_end" validate:"required,min=1"`
	FacultyID string  `json:"faculty_id" validate:"required"`
	SubjectID *string `json:"subject_id"`
}

// RosterService implements the class teacher's roster administration. Every
// operation is scoped to the teacher's own class; touching another class's
// students is refused.
type RosterService struct {
	students  rosterStudentRepository
	batches   rosterBatchRepository
	classes   rosterClassRepository
	users     rosterUserRepository
	subjects  rosterSubjectRepository
	teaching  rosterFacultySubjectRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRosterService constructs a RosterService instance.
func NewRosterService(students rosterStudentRepository, batches rosterBatchRepository, classes rosterClassRepository, users rosterUserRepository, subjects rosterSubjectRepository, teaching rosterFacultySubjectRepository, validate *validator.Validate, logger *zap.Logger) *RosterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &RosterService{
		students:  students,
		batches:   batches,
		classes:   classes,
		users:     users,
		subjects:  subjects,
		teaching:  teaching,
		validator: validate,
		logger:    logger,
	}
}

// ListStudents returns the class roster with batch names.
func (s *RosterService) ListStudents(ctx context.Context, classID string) ([]models.StudentRosterRow, error) {
	rows, err := s.students.ListByClass(ctx, classID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	if rows == nil {
		rows = []models.StudentRosterRow{}
	}
	return rows, nil
}

// ListBatches returns the class's practical batches.
func (s *RosterService) ListBatches(ctx context.Context, classID string) ([]models.Batch, error) {
	batches, err := s.batches.ListByClass(ctx, classID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list batches")
	}
	if batches == nil {
		batches = []models.Batch{}
	}
	return batches, nil
}

// ListFaculties returns every non-director account, for the assignment
// pickers.
func (s *RosterService) ListFaculties(ctx context.Context) ([]models.User, error) {
	users, err := s.users.ListNonDirectors(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list faculties")
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// UpdateStudent rewrites a roster entry of the teacher's class.
func (s *RosterService) UpdateStudent(ctx context.Context, classID, studentID string, req UpdateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}

	student, err := s.ownedStudent(ctx, classID, studentID)
	if err != nil {
		return nil, err
	}

	student.RollNo = req.RollNo
	student.Name = req.Name
	student.HallTicketNumber = req.HallTicketNumber
	student.Email = req.Email
	student.Mobile = req.Mobile
	student.AttendancePercent = req.AttendancePercent
	if req.Defaulter != nil {
		student.Defaulter = *req.Defaulter
	} else {
		student.Defaulter = models.IsDefaulter(req.AttendancePercent)
	}
	student.BatchID = req.BatchID

	if err := s.students.Update(ctx, student); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update student")
	}

	s.logger.Info("student updated", zap.String("student_id", studentID))
	return student, nil
}

// DeleteStudent removes a roster entry of the teacher's class.
func (s *RosterService) DeleteStudent(ctx context.Context, classID, studentID string) error {
	if _, err := s.ownedStudent(ctx, classID, studentID); err != nil {
		return err
	}
	if err := s.students.Delete(ctx, studentID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete student")
	}

	s.logger.Info("student deleted", zap.String("student_id", studentID))
	return nil
}

// AssignSubject creates a subject for the class and binds its faculty. A
// theory subject gets one class-wide edge; a practical gets one edge per
// batch assignment.
func (s *RosterService) AssignSubject(ctx context.Context, classID string, req AssignSubjectRequest) (*models.Subject, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}
	subjectType := models.SubjectType(req.Type)
	if subjectType == models.SubjectTheory && req.FacultyID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "faculty_id is required for theory subjects")
	}
	if subjectType == models.SubjectPractical && len(req.BatchAssignments) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "batch_assignments are required for practical subjects")
	}

	class, err := s.classes.FindByID(ctx, classID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch class")
	}

	exists, err := s.subjects.ExistsByCode(ctx, class.DepartmentID, req.SubjectCode)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check subject code")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "subject code already exists in department")
	}

	subject := &models.Subject{
		Name:         req.SubjectName,
		Code:         req.SubjectCode,
		Type:         subjectType,
		DepartmentID: class.DepartmentID,
		ClassID:      &classID,
	}
	if err := s.subjects.Create(ctx, subject); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create subject")
	}

	var edges []models.FacultySubject
	switch subjectType {
	case models.SubjectTheory:
		edges = append(edges, models.FacultySubject{
			FacultyID: req.FacultyID,
			SubjectID: &subject.ID,
			ClassID:   &classID,
		})
	case models.SubjectPractical:
		for _, ba := range req.BatchAssignments {
			batchID := ba.BatchID
			edges = append(edges, models.FacultySubject{
				FacultyID: ba.FacultyID,
				SubjectID: &subject.ID,
				BatchID:   &batchID,
				ClassID:   &classID,
			})
		}
	}

	if err := s.teaching.InsertMany(ctx, edges); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to assign subject")
	}

	s.logger.Info("subject assigned",
		zap.String("class_id", classID),
		zap.String("subject_id", subject.ID),
		zap.Int("edges", len(edges)))
	return subject, nil
}

// CreateBatch creates a practical batch, binds matching students by roll
// range and optionally links the faculty to a subject for the batch. The
// faculty link is best effort; its failure does not undo the batch.
func (s *RosterService) CreateBatch(ctx context.Context, classID string, req CreateBatchRequest) (*models.Batch, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid batch payload")
	}
	if req.RollEnd < req.RollStart {
		return nil, appErrors.Clone(appErrors.ErrValidation, "roll_end must not precede roll_start")
	}

	batch := &models.Batch{
		Name:      req.Name,
		RollStart: req.RollStart,
		RollEnd:   req.RollEnd,
		FacultyID: req.FacultyID,
		ClassID:   classID,
	}
	if err := s.batches.Create(ctx, batch); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create batch")
	}

	if err := s.students.AssignBatchByRollRange(ctx, classID, batch.ID, req.RollStart, req.RollEnd); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to bind students to batch")
	}

	if req.SubjectID != nil && *req.SubjectID != "" {
		edge := models.FacultySubject{
			FacultyID: req.FacultyID,
			SubjectID: req.SubjectID,
			BatchID:   &batch.ID,
			ClassID:   &classID,
		}
		if err := s.teaching.InsertMany(ctx, []models.FacultySubject{edge}); err != nil {
			s.logger.Warn("failed to link faculty to batch subject",
				zap.String("batch_id", batch.ID), zap.Error(err))
		}
	}

	s.logger.Info("batch created", zap.String("batch_id", batch.ID), zap.String("class_id", classID))
	return batch, nil
}

func (s *RosterService) ownedStudent(ctx context.Context, classID, studentID string) (*models.Student, error) {
	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch student")
	}
	if student.ClassID != classID {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "student belongs to another class")
	}
	return student, nil
}
