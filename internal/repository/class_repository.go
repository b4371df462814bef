package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/campushq/college-adp-api/internal/models"
)

// ClassRepository manages persistence for classes.
type ClassRepository struct {
	db *sqlx.DB
}

// NewClassRepository constructs a ClassRepository.
func NewClassRepository(db *sqlx.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

// ListOverviewByDepartment returns the department's classes with the teacher
// name and the roster size.
func (r *ClassRepository) ListOverviewByDepartment(ctx context.Context, departmentID string) ([]models.ClassOverview, error) {
	const query = `SELECT c.id, c.name, c.year,
            (SELECT COUNT(*) FROM students s WHERE s.class_id = c.id) AS total_students,
            u.name AS teacher, u.id AS teacher_id, c.created_at
        FROM classes c
        LEFT JOIN users u ON u.id = c.class_teacher_id
        WHERE c.department_id = $1
        ORDER BY c.year ASC, c.name ASC`
	var rows []models.ClassOverview
	if err := r.db.SelectContext(ctx, &rows, query, departmentID); err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return rows, nil
}

// FindByID fetches a class by ID.
func (r *ClassRepository) FindByID(ctx context.Context, id string) (*models.Class, error) {
	const query = `SELECT id, name, year, department_id, class_teacher_id, created_at FROM classes WHERE id = $1`
	var class models.Class
	if err := r.db.GetContext(ctx, &class, query, id); err != nil {
		return nil, err
	}
	return &class, nil
}

// FindIDByTeacher returns the class the teacher is homeroom of, if any.
func (r *ClassRepository) FindIDByTeacher(ctx context.Context, teacherID string) (string, error) {
	const query = `SELECT id FROM classes WHERE class_teacher_id = $1 LIMIT 1`
	var id string
	if err := r.db.GetContext(ctx, &id, query, teacherID); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("find class by teacher: %w", err)
	}
	return id, nil
}

// ExistsByNameYear reports whether a class with the same name and year
// already exists in the department.
func (r *ClassRepository) ExistsByNameYear(ctx context.Context, departmentID, name string, year int) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM classes WHERE department_id = $1 AND name = $2 AND year = $3)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, departmentID, name, year); err != nil {
		return false, fmt.Errorf("check class name: %w", err)
	}
	return exists, nil
}

// Create inserts a new class.
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	if class.ID == "" {
		class.ID = uuid.NewString()
	}
	if class.CreatedAt.IsZero() {
		class.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO classes (id, name, year, department_id, class_teacher_id, created_at)
        VALUES (:id, :name, :year, :department_id, :class_teacher_id, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, class); err != nil {
		return fmt.Errorf("create class: %w", err)
	}
	return nil
}

// Update rewrites the class name, year and teacher assignment.
func (r *ClassRepository) Update(ctx context.Context, class *models.Class) error {
	const query = `UPDATE classes SET name = :name, year = :year, class_teacher_id = :class_teacher_id WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, class); err != nil {
		return fmt.Errorf("update class: %w", err)
	}
	return nil
}

// Delete removes a class row.
func (r *ClassRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM classes WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete class: %w", err)
	}
	return nil
}
