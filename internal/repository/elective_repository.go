package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/campushq/college-adp-api/internal/models"
)

// ElectiveRepository manages student elective selections.
type ElectiveRepository struct {
	db *sqlx.DB
}

// NewElectiveRepository constructs an ElectiveRepository.
func NewElectiveRepository(db *sqlx.DB) *ElectiveRepository {
	return &ElectiveRepository{db: db}
}

// FindByStudent fetches the student's selection row, or sql.ErrNoRows.
func (r *ElectiveRepository) FindByStudent(ctx context.Context, studentID string) (*models.ElectiveSelection, error) {
	const query = `SELECT id, student_id, mdm_id, mdm_faculty_id, oe_id, oe_faculty_id, pe_id, pe_faculty_id
        FROM student_subject_selection WHERE student_id = $1`
	var selection models.ElectiveSelection
	if err := r.db.GetContext(ctx, &selection, query, studentID); err != nil {
		return nil, err
	}
	return &selection, nil
}

// Insert creates the student's selection row.
func (r *ElectiveRepository) Insert(ctx context.Context, selection *models.ElectiveSelection) error {
	if selection.ID == "" {
		selection.ID = uuid.NewString()
	}
	const query = `INSERT INTO student_subject_selection (id, student_id, mdm_id, mdm_faculty_id, oe_id, oe_faculty_id, pe_id, pe_faculty_id)
        VALUES (:id, :student_id, :mdm_id, :mdm_faculty_id, :oe_id, :oe_faculty_id, :pe_id, :pe_faculty_id)`
	if _, err := r.db.NamedExecContext(ctx, query, selection); err != nil {
		return fmt.Errorf("insert elective selection: %w", err)
	}
	return nil
}

// Update rewrites the student's selection slots.
func (r *ElectiveRepository) Update(ctx context.Context, selection *models.ElectiveSelection) error {
	const query = `UPDATE student_subject_selection SET mdm_id = :mdm_id, mdm_faculty_id = :mdm_faculty_id,
        oe_id = :oe_id, oe_faculty_id = :oe_faculty_id, pe_id = :pe_id, pe_faculty_id = :pe_faculty_id
        WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, selection); err != nil {
		return fmt.Errorf("update elective selection: %w", err)
	}
	return nil
}
