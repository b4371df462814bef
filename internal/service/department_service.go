package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushq/college-adp-api/internal/models"
	appErrors "github.com/campushq/college-adp-api/pkg/errors"
)

type departmentRepository interface {
	ListOverview(ctx context.Context) ([]models.DepartmentOverview, error)
	FindByID(ctx context.Context, id string) (*models.Department, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, dept *models.Department) error
	Delete(ctx context.Context, id string) error
}

type departmentUserRepository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	ListByRoles(ctx context.Context, roles ...models.UserRole) ([]models.User, error)
	PromoteToHOD(ctx context.Context, userID, departmentID string) error
	ClearDepartmentHOD(ctx context.Context, departmentID string) error
	ClearDepartmentMembers(ctx context.Context, departmentID string) error
}

// CreateDepartmentRequest is the director's payload for a new department.
type CreateDepartmentRequest struct {
	Name string `json:"name" validate:"required"`
}

// AssignHODRequest binds a staff member as HOD of a department.
type AssignHODRequest struct {
	UserID       string `json:"user_id" validate:"required"`
	DepartmentID string `json:"department_id" validate:"required"`
}

// DepartmentService implements the director's department administration.
type DepartmentService struct {
	departments departmentRepository
	users       departmentUserRepository
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewDepartmentService constructs a DepartmentService instance.
func NewDepartmentService(departments departmentRepository, users departmentUserRepository, validate *validator.Validate, logger *zap.Logger) *DepartmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &DepartmentService{departments: departments, users: users, validator: validate, logger: logger}
}

// List returns every department with its current HOD.
func (s *DepartmentService) List(ctx context.Context) ([]models.DepartmentOverview, error) {
	rows, err := s.departments.ListOverview(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list departments")
	}
	if rows == nil {
		rows = []models.DepartmentOverview{}
	}
	return rows, nil
}

// Create adds a new department.
func (s *DepartmentService) Create(ctx context.Context, req CreateDepartmentRequest) (*models.Department, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid department payload")
	}

	exists, err := s.departments.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check department name")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "department already exists")
	}

	dept := &models.Department{Name: req.Name}
	if err := s.departments.Create(ctx, dept); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create department")
	}

	s.logger.Info("department created", zap.String("department_id", dept.ID))
	return dept, nil
}

// Delete removes a department after detaching its members.
func (s *DepartmentService) Delete(ctx context.Context, id string) error {
	if _, err := s.departments.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "department not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch department")
	}

	if err := s.users.ClearDepartmentMembers(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to detach department members")
	}
	if err := s.departments.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete department")
	}

	s.logger.Info("department deleted", zap.String("department_id", id))
	return nil
}

// ListHODCandidates returns staff eligible for an HOD assignment.
func (s *DepartmentService) ListHODCandidates(ctx context.Context) ([]models.User, error) {
	users, err := s.users.ListByRoles(ctx, models.RoleHOD, models.RoleFaculty)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list candidates")
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// AssignHOD makes the user the HOD of the department. Any previously
// assigned HOD is detached first so a department carries at most one.
func (s *DepartmentService) AssignHOD(ctx context.Context, req AssignHODRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}

	if _, err := s.departments.FindByID(ctx, req.DepartmentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "department not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch department")
	}
	if _, err := s.users.FindByID(ctx, req.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch user")
	}

	if err := s.users.ClearDepartmentHOD(ctx, req.DepartmentID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to detach previous hod")
	}
	if err := s.users.PromoteToHOD(ctx, req.UserID, req.DepartmentID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to assign hod")
	}

	s.logger.Info("hod assigned",
		zap.String("department_id", req.DepartmentID),
		zap.String("user_id", req.UserID))
	return nil
}
