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

// UserRepository manages persistence for staff accounts.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository constructs a UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new staff account.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO users (id, name, email, password, role, department_id, created_at)
        VALUES (:id, :name, :email, :password, :role, :department_id, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// FindByEmail fetches a user by email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	const query = `SELECT id, name, email, password, role, department_id, created_at FROM users WHERE email = $1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID fetches a user by ID.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	const query = `SELECT id, name, email, password, role, department_id, created_at FROM users WHERE id = $1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListByRoles returns users whose role is one of the given set, by name.
func (r *UserRepository) ListByRoles(ctx context.Context, roles ...models.UserRole) ([]models.User, error) {
	query, args, err := sqlx.In(`SELECT id, name, email, password, role, department_id, created_at
        FROM users WHERE role IN (?) ORDER BY name ASC`, roles)
	if err != nil {
		return nil, fmt.Errorf("build role filter: %w", err)
	}
	query = r.db.Rebind(query)
	var users []models.User
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}
	return users, nil
}

// ListByDepartment returns department members holding one of the roles.
func (r *UserRepository) ListByDepartment(ctx context.Context, departmentID string, roles ...models.UserRole) ([]models.User, error) {
	query, args, err := sqlx.In(`SELECT id, name, email, password, role, department_id, created_at
        FROM users WHERE department_id = ? AND role IN (?) ORDER BY name ASC`, departmentID, roles)
	if err != nil {
		return nil, fmt.Errorf("build department filter: %w", err)
	}
	query = r.db.Rebind(query)
	var users []models.User
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("list department users: %w", err)
	}
	return users, nil
}

// ListAssignable returns class teachers and faculty that are either
// unassigned or already members of the department.
func (r *UserRepository) ListAssignable(ctx context.Context, departmentID string) ([]models.User, error) {
	const query = `SELECT id, name, email, password, role, department_id, created_at
        FROM users
        WHERE role IN ($1, $2) AND (department_id IS NULL OR department_id = $3)
        ORDER BY name ASC`
	var users []models.User
	if err := r.db.SelectContext(ctx, &users, query, models.RoleClassTeacher, models.RoleFaculty, departmentID); err != nil {
		return nil, fmt.Errorf("list assignable teachers: %w", err)
	}
	return users, nil
}

// ListNonDirectors returns every account except directors, by name.
func (r *UserRepository) ListNonDirectors(ctx context.Context) ([]models.User, error) {
	const query = `SELECT id, name, email, password, role, department_id, created_at
        FROM users WHERE role <> $1 ORDER BY name ASC`
	var users []models.User
	if err := r.db.SelectContext(ctx, &users, query, models.RoleDirector); err != nil {
		return nil, fmt.Errorf("list non-directors: %w", err)
	}
	return users, nil
}

// NamesByIDs resolves display names for a set of user ids.
func (r *UserRepository) NamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}
	query, args, err := sqlx.In(`SELECT id, name FROM users WHERE id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("build id filter: %w", err)
	}
	query = r.db.Rebind(query)
	rows := []struct {
		ID   string `db:"id"`
		Name string `db:"name"`
	}{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("resolve user names: %w", err)
	}
	names := make(map[string]string, len(rows))
	for _, row := range rows {
		names[row.ID] = row.Name
	}
	return names, nil
}

// SetDepartment updates a user's department reference; nil clears it.
func (r *UserRepository) SetDepartment(ctx context.Context, userID string, departmentID *string) error {
	const query = `UPDATE users SET department_id = $2 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, userID, departmentID); err != nil {
		return fmt.Errorf("set user department: %w", err)
	}
	return nil
}

// PromoteToHOD sets the user's role to hod and binds the department.
func (r *UserRepository) PromoteToHOD(ctx context.Context, userID, departmentID string) error {
	const query = `UPDATE users SET role = $2, department_id = $3 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, userID, models.RoleHOD, departmentID); err != nil {
		return fmt.Errorf("promote to hod: %w", err)
	}
	return nil
}

// ClearDepartmentHOD removes the department reference from the current HOD
// of the department, if one exists.
func (r *UserRepository) ClearDepartmentHOD(ctx context.Context, departmentID string) error {
	const query = `UPDATE users SET department_id = NULL WHERE department_id = $1 AND role = $2`
	if _, err := r.db.ExecContext(ctx, query, departmentID, models.RoleHOD); err != nil {
		return fmt.Errorf("clear department hod: %w", err)
	}
	return nil
}

// ClearDepartmentMembers nulls the department reference of every member,
// used before deleting a department.
func (r *UserRepository) ClearDepartmentMembers(ctx context.Context, departmentID string) error {
	const query = `UPDATE users SET department_id = NULL WHERE department_id = $1`
	if _, err := r.db.ExecContext(ctx, query, departmentID); err != nil {
		return fmt.Errorf("clear department members: %w", err)
	}
	return nil
}

// ExistsByEmail reports whether an account with the email already exists.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT 1 FROM users WHERE email = $1 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check email: %w", err)
	}
	return true, nil
}
