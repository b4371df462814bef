package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/campushq/college-adp-api/internal/models"
)

// StudentRepository manages persistence for students.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// ListByClass returns the class roster joined with batch names, ordered by
// roll number.
func (r *StudentRepository) ListByClass(ctx context.Context, classID string) ([]models.StudentRosterRow, error) {
	const query = `SELECT s.id, s.roll_no, s.name, s.hall_ticket_number, s.email, s.mobile,
            s.attendance_percent, s.defaulter, s.class_id, s.batch_id, s.password, s.created_at,
            b.name AS batch_name
        FROM students s
        LEFT JOIN batches b ON b.id = s.batch_id
        WHERE s.class_id = $1
        ORDER BY CAST(s.roll_no AS INTEGER) ASC`
	var rows []models.StudentRosterRow
	if err := r.db.SelectContext(ctx, &rows, query, classID); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return rows, nil
}

// ListByClasses returns roster rows across several classes.
func (r *StudentRepository) ListByClasses(ctx context.Context, classIDs []string) ([]models.StudentRosterRow, error) {
	if len(classIDs) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(`SELECT s.id, s.roll_no, s.name, s.hall_ticket_number, s.email, s.mobile,
            s.attendance_percent, s.defaulter, s.class_id, s.batch_id, s.password, s.created_at,
            b.name AS batch_name
        FROM students s
        LEFT JOIN batches b ON b.id = s.batch_id
        WHERE s.class_id IN (?)`, classIDs)
	if err != nil {
		return nil, fmt.Errorf("build class filter: %w", err)
	}
	query = r.db.Rebind(query)
	var rows []models.StudentRosterRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list students by classes: %w", err)
	}
	return rows, nil
}

// FindByID fetches a student by ID.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	const query = `SELECT id, roll_no, name, hall_ticket_number, email, mobile,
        attendance_percent, defaulter, class_id, batch_id, password, created_at
        FROM students WHERE id = $1`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		return nil, err
	}
	return &student, nil
}

// FindByHallTicket fetches a student by hall ticket number.
func (r *StudentRepository) FindByHallTicket(ctx context.Context, hallTicket string) (*models.Student, error) {
	const query = `SELECT id, roll_no, name, hall_ticket_number, email, mobile,
        attendance_percent, defaulter, class_id, batch_id, password, created_at
        FROM students WHERE hall_ticket_number = $1`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, hallTicket); err != nil {
		return nil, err
	}
	return &student, nil
}

// Update rewrites the student's editable fields, including the derived
// defaulter flag.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	const query = `UPDATE students SET roll_no = :roll_no, name = :name,
        hall_ticket_number = :hall_ticket_number, email = :email, mobile = :mobile,
        attendance_percent = :attendance_percent, defaulter = :defaulter, batch_id = :batch_id
        WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	return nil
}

// Delete removes a student row.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM students WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	return nil
}

// ListCredentials returns the (roll_no, hall_ticket) pairs already present in
// the class, used to deduplicate bulk imports.
func (r *StudentRepository) ListCredentials(ctx context.Context, classID string) ([]models.StudentCredentialPair, error) {
	const query = `SELECT roll_no, hall_ticket_number FROM students WHERE class_id = $1`
	var pairs []models.StudentCredentialPair
	if err := r.db.SelectContext(ctx, &pairs, query, classID); err != nil {
		return nil, fmt.Errorf("list student credentials: %w", err)
	}
	return pairs, nil
}

// InsertMany inserts the given students in one statement.
func (r *StudentRepository) InsertMany(ctx context.Context, students []models.Student) error {
	if len(students) == 0 {
		return nil
	}
	now := time.Now().UTC()
	for i := range students {
		if students[i].ID == "" {
			students[i].ID = uuid.NewString()
		}
		if students[i].CreatedAt.IsZero() {
			students[i].CreatedAt = now
		}
	}
	const query = `INSERT INTO students (id, roll_no, name, hall_ticket_number, email, mobile,
        attendance_percent, defaulter, class_id, batch_id, password, created_at)
        VALUES (:id, :roll_no, :name, :hall_ticket_number, :email, :mobile,
        :attendance_percent, :defaulter, :class_id, :batch_id, :password, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, students); err != nil {
		return fmt.Errorf("insert students: %w", err)
	}
	return nil
}

// AssignBatchByRollRange binds every student of the class whose numeric roll
// number falls inside [rollStart, rollEnd] to the batch.
func (r *StudentRepository) AssignBatchByRollRange(ctx context.Context, classID, batchID string, rollStart, rollEnd int) error {
	const query = `UPDATE students SET batch_id = $2
        WHERE class_id = $1 AND CAST(roll_no AS INTEGER) BETWEEN $3 AND $4`
	if _, err := r.db.ExecContext(ctx, query, classID, batchID, rollStart, rollEnd); err != nil {
		return fmt.Errorf("assign batch by roll range: %w", err)
	}
	return nil
}

// ListDefaulters returns the class's defaulter students ordered by roll
// number.
func (r *StudentRepository) ListDefaulters(ctx context.Context, classID string) ([]models.Student, error) {
	const query = `SELECT id, roll_no, name, hall_ticket_number, email, mobile,
        attendance_percent, defaulter, class_id, batch_id, password, created_at
        FROM students WHERE class_id = $1 AND defaulter = TRUE
        ORDER BY CAST(roll_no AS INTEGER) ASC`
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query, classID); err != nil {
		return nil, fmt.Errorf("list defaulters: %w", err)
	}
	return students, nil
}
