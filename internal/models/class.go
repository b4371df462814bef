package models

import "time"

// Class is a year-level cohort inside a department.
type Class struct {
	ID             string    `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Year           int       `db:"year" json:"year"`
	DepartmentID   string    `db:"department_id" json:"department_id"`
	ClassTeacherID *string   `db:"class_teacher_id" json:"class_teacher_id,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// ClassOverview is the HOD listing row with the teacher name and the
// computed roster size.
type ClassOverview struct {
	ID            string    `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Year          int       `db:"year" json:"year"`
	TotalStudents int       `db:"total_students" json:"total_students"`
	Teacher       *string   `db:"teacher" json:"teacher"`
	TeacherID     *string   `db:"teacher_id" json:"teacher_id"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
