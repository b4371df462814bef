package models

import "time"

// UserRole represents the staff roles recognised by the RBAC layer.
// Students authenticate through their own table but share the role concept.
type UserRole string

const (
	RoleDirector     UserRole = "director"
	RoleHOD          UserRole = "hod"
	RoleClassTeacher UserRole = "class_teacher"
	RoleFaculty      UserRole = "faculty"
	RoleStudent      UserRole = "student"
)

// User represents a staff account stored in the users table.
type User struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password" json:"-"`
	Role         UserRole  `db:"role" json:"role"`
	DepartmentID *string   `db:"department_id" json:"department_id,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
