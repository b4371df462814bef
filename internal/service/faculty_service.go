package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/campushq/college-adp-api/internal/models"
	appErrors "github.com/campushq/college-adp-api/pkg/errors"
)

type facultySubjectRepository interface {
	ListByFaculty(ctx context.Context, facultyID string) ([]models.FacultySubject, error)
	ListAssignedSubjects(ctx context.Context, facultyID string) ([]models.AssignedSubject, error)
}

type facultyStudentRepository interface {
	ListByClasses(ctx context.Context, classIDs []string) ([]models.StudentRosterRow, error)
}

type facultySubjectLookup interface {
	FindByID(ctx context.Context, id string) (*models.Subject, error)
}

// FacultyService implements the faculty's read views: their assigned
// subjects and the students those assignments cover.
type FacultyService struct {
	teaching facultySubjectRepository
	students facultyStudentRepository
	subjects facultySubjectLookup
	logger   *zap.Logger
}

// NewFacultyService constructs a FacultyService instance.
func NewFacultyService(teaching facultySubjectRepository, students facultyStudentRepository, subjects facultySubjectLookup, logger *zap.Logger) *FacultyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FacultyService{teaching: teaching, students: students, subjects: subjects, logger: logger}
}

// ListSubjects returns the distinct subjects assigned to the faculty.
func (s *FacultyService) ListSubjects(ctx context.Context, facultyID string) ([]models.AssignedSubject, error) {
	subjects, err := s.teaching.ListAssignedSubjects(ctx, facultyID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list subjects")
	}
	if subjects == nil {
		subjects = []models.AssignedSubject{}
	}
	return subjects, nil
}

// ListStudents expands the faculty's assignment edges into student rows. A
// class-wide edge covers the whole roster; a batch-scoped edge covers only
// the students bound to that batch.
func (s *FacultyService) ListStudents(ctx context.Context, facultyID string) ([]models.FacultyStudentRow, error) {
	edges, err := s.teaching.ListByFaculty(ctx, facultyID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list assignments")
	}

	classSet := map[string]struct{}{}
	for _, edge := range edges {
		if edge.ClassID != nil {
			classSet[*edge.ClassID] = struct{}{}
		}
	}
	classIDs := make([]string, 0, len(classSet))
	for id := range classSet {
		classIDs = append(classIDs, id)
	}

	roster, err := s.students.ListByClasses(ctx, classIDs)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	byClass := map[string][]models.StudentRosterRow{}
	for _, row := range roster {
		byClass[row.ClassID] = append(byClass[row.ClassID], row)
	}

	subjectCache := map[string]*models.Subject{}
	rows := []models.FacultyStudentRow{}
	for _, edge := range edges {
		if edge.SubjectID == nil || edge.ClassID == nil {
			continue
		}
		subject, ok := subjectCache[*edge.SubjectID]
		if !ok {
			subject, err = s.subjects.FindByID(ctx, *edge.SubjectID)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					continue
				}
				return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch subject")
			}
			subjectCache[*edge.SubjectID] = subject
		}

		for _, student := range byClass[*edge.ClassID] {
			if edge.BatchID != nil {
				if student.BatchID == nil || *student.BatchID != *edge.BatchID {
					continue
				}
			}
			rows = append(rows, models.FacultyStudentRow{
				StudentRosterRow: student,
				SubjectID:        subject.ID,
				SubjectName:      subject.Name,
				SubjectCode:      subject.Code,
				SubjectType:      subject.Type,
			})
		}
	}
	return rows, nil
}
