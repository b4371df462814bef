package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/campushq/college-adp-api/internal/models"
)

// FacultySubjectRepository manages the "who teaches what" assignment edges.
type FacultySubjectRepository struct {
	db *sqlx.DB
}

// NewFacultySubjectRepository constructs a FacultySubjectRepository.
func NewFacultySubjectRepository(db *sqlx.DB) *FacultySubjectRepository {
	return &FacultySubjectRepository{db: db}
}

// InsertMany inserts the given assignment edges.
func (r *FacultySubjectRepository) InsertMany(ctx context.Context, edges []models.FacultySubject) error {
	if len(edges) == 0 {
		return nil
	}
	for i := range edges {
		if edges[i].ID == "" {
			edges[i].ID = uuid.NewString()
		}
	}
	const query = `INSERT INTO faculty_subjects (id, faculty_id, subject_id, batch_id, class_id)
        VALUES (:id, :faculty_id, :subject_id, :batch_id, :class_id)`
	if _, err := r.db.NamedExecContext(ctx, query, edges); err != nil {
		return fmt.Errorf("insert faculty subjects: %w", err)
	}
	return nil
}

// FindClassID resolves a teaching class for the faculty, used to scope
// faculty session tokens. Returns empty when the faculty has no class-bound
// assignment.
func (r *FacultySubjectRepository) FindClassID(ctx context.Context, facultyID string) (string, error) {
	const query = `SELECT class_id FROM faculty_subjects
        WHERE faculty_id = $1 AND class_id IS NOT NULL LIMIT 1`
	var classID string
	if err := r.db.GetContext(ctx, &classID, query, facultyID); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("find faculty class: %w", err)
	}
	return classID, nil
}

// FindClassForSubject resolves the class a faculty teaches the subject in.
// Returns empty when no assignment edge exists.
func (r *FacultySubjectRepository) FindClassForSubject(ctx context.Context, facultyID, subjectID string) (string, error) {
	const query = `SELECT class_id FROM faculty_subjects
        WHERE faculty_id = $1 AND subject_id = $2 AND class_id IS NOT NULL LIMIT 1`
	var classID string
	if err := r.db.GetContext(ctx, &classID, query, facultyID, subjectID); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("find class for subject: %w", err)
	}
	return classID, nil
}

// TeachesSubject reports whether the faculty has any assignment edge for
// the subject.
func (r *FacultySubjectRepository) TeachesSubject(ctx context.Context, facultyID, subjectID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM faculty_subjects WHERE faculty_id = $1 AND subject_id = $2)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, facultyID, subjectID); err != nil {
		return false, fmt.Errorf("check teaching edge: %w", err)
	}
	return exists, nil
}

// ListByFaculty returns the faculty's assignment edges.
func (r *FacultySubjectRepository) ListByFaculty(ctx context.Context, facultyID string) ([]models.FacultySubject, error) {
	const query = `SELECT id, faculty_id, subject_id, batch_id, class_id
        FROM faculty_subjects WHERE faculty_id = $1`
	var edges []models.FacultySubject
	if err := r.db.SelectContext(ctx, &edges, query, facultyID); err != nil {
		return nil, fmt.Errorf("list faculty subjects: %w", err)
	}
	return edges, nil
}

// ListAssignedSubjects returns the distinct subjects the faculty teaches.
func (r *FacultySubjectRepository) ListAssignedSubjects(ctx context.Context, facultyID string) ([]models.AssignedSubject, error) {
	const query = `SELECT DISTINCT s.id, s.name, s.subject_code, s.type
        FROM faculty_subjects fs
        JOIN subjects s ON s.id = fs.subject_id
        WHERE fs.faculty_id = $1
        ORDER BY s.name ASC`
	var subjects []models.AssignedSubject
	if err := r.db.SelectContext(ctx, &subjects, query, facultyID); err != nil {
		return nil, fmt.Errorf("list assigned subjects: %w", err)
	}
	return subjects, nil
}
