package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/campushq/college-adp-api/internal/models"
)

// OfferedSubjectRepository manages department elective offerings.
type OfferedSubjectRepository struct {
	db *sqlx.DB
}

// NewOfferedSubjectRepository constructs an OfferedSubjectRepository.
func NewOfferedSubjectRepository(db *sqlx.DB) *OfferedSubjectRepository {
	return &OfferedSubjectRepository{db: db}
}

// ListByDepartment returns the department's offerings joined with their
// subject columns, newest first.
func (r *OfferedSubjectRepository) ListByDepartment(ctx context.Context, departmentID string) ([]models.OfferedSubjectRow, error) {
	const query = `SELECT os.id, os.semester, os.year, os.faculty_ids, os.created_at,
            s.subject_code, s.name AS subject_name, s.type
        FROM department_offered_subjects os
        JOIN subjects s ON s.id = os.subject_id
        WHERE os.department_id = $1
        ORDER BY os.created_at DESC`
	var rows []models.OfferedSubjectRow
	if err := r.db.SelectContext(ctx, &rows, query, departmentID); err != nil {
		return nil, fmt.Errorf("list offered subjects: %w", err)
	}
	return rows, nil
}

// Exists reports whether the subject is already offered for the
// semester/year in the department.
func (r *OfferedSubjectRepository) Exists(ctx context.Context, departmentID, subjectID string, semester, year int) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM department_offered_subjects
        WHERE department_id = $1 AND subject_id = $2 AND semester = $3 AND year = $4)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, departmentID, subjectID, semester, year); err != nil {
		return false, fmt.Errorf("check offering: %w", err)
	}
	return exists, nil
}

// Create inserts a new offering.
func (r *OfferedSubjectRepository) Create(ctx context.Context, offering *models.OfferedSubject) error {
	if offering.ID == "" {
		offering.ID = uuid.NewString()
	}
	if offering.CreatedAt.IsZero() {
		offering.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO department_offered_subjects (id, subject_id, department_id, semester, year, faculty_ids, created_at)
        VALUES (:id, :subject_id, :department_id, :semester, :year, :faculty_ids, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, offering); err != nil {
		return fmt.Errorf("create offering: %w", err)
	}
	return nil
}

// ExistsInDepartment reports whether the offering belongs to the department.
func (r *OfferedSubjectRepository) ExistsInDepartment(ctx context.Context, offeringID, departmentID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM department_offered_subjects WHERE id = $1 AND department_id = $2)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, offeringID, departmentID); err != nil {
		return false, fmt.Errorf("check offering ownership: %w", err)
	}
	return exists, nil
}

// Delete removes an offering.
func (r *OfferedSubjectRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM department_offered_subjects WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete offering: %w", err)
	}
	return nil
}
