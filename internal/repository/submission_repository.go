package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/campushq/college-adp-api/internal/models"
)

// SubmissionRepository manages student submission statuses and defaulter
// work assignments.
type SubmissionRepository struct {
	db *sqlx.DB
}

// NewSubmissionRepository constructs a SubmissionRepository.
func NewSubmissionRepository(db *sqlx.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// FindTypeByName resolves a submission type by its name.
func (r *SubmissionRepository) FindTypeByName(ctx context.Context, name string) (*models.SubmissionType, error) {
	const query = `SELECT id, name FROM submission_types WHERE name = $1`
	var t models.SubmissionType
	if err := r.db.GetContext(ctx, &t, query, name); err != nil {
		return nil, err
	}
	return &t, nil
}

// Find fetches the status row for a (student, subject, type) triple, or
// sql.ErrNoRows.
func (r *SubmissionRepository) Find(ctx context.Context, studentID, subjectID, typeID string) (*models.StudentSubmission, error) {
	const query = `SELECT id, student_id, subject_id, submission_type_id, status, marked_by, marked_at
        FROM student_submissions
        WHERE student_id = $1 AND subject_id = $2 AND submission_type_id = $3`
	var sub models.StudentSubmission
	if err := r.db.GetContext(ctx, &sub, query, studentID, subjectID, typeID); err != nil {
		return nil, err
	}
	return &sub, nil
}

// Insert creates a new status row.
func (r *SubmissionRepository) Insert(ctx context.Context, sub *models.StudentSubmission) error {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	if sub.MarkedAt.IsZero() {
		sub.MarkedAt = time.Now().UTC()
	}
	const query = `INSERT INTO student_submissions (id, student_id, subject_id, submission_type_id, status, marked_by, marked_at)
        VALUES (:id, :student_id, :subject_id, :submission_type_id, :status, :marked_by, :marked_at)`
	if _, err := r.db.NamedExecContext(ctx, query, sub); err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

// UpdateStatus overwrites the status of an existing row.
func (r *SubmissionRepository) UpdateStatus(ctx context.Context, id string, status models.SubmissionStatus, markedBy string) error {
	const query = `UPDATE student_submissions SET status = $2, marked_by = $3, marked_at = $4 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, status, markedBy, time.Now().UTC()); err != nil {
		return fmt.Errorf("update submission status: %w", err)
	}
	return nil
}

// InsertDefaulterWork inserts one fan-out batch of defaulter assignments.
func (r *SubmissionRepository) InsertDefaulterWork(ctx context.Context, rows []models.DefaulterSubmission) error {
	if len(rows) == 0 {
		return nil
	}
	now := time.Now().UTC()
	for i := range rows {
		if rows[i].ID == "" {
			rows[i].ID = uuid.NewString()
		}
		if rows[i].CreatedAt.IsZero() {
			rows[i].CreatedAt = now
		}
	}
	const query = `INSERT INTO defaulter_submissions (id, student_id, subject_id, faculty_id, submission_text, reference_link, skip, created_at)
        VALUES (:id, :student_id, :subject_id, :faculty_id, :submission_text, :reference_link, :skip, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, rows); err != nil {
		return fmt.Errorf("insert defaulter work: %w", err)
	}
	return nil
}
