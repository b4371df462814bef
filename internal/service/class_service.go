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

type classRepository interface {
	ListOverviewByDepartment(ctx context.Context, departmentID string) ([]models.ClassOverview, error)
	FindByID(ctx context.Context, id string) (*models.Class, error)
	ExistsByNameYear(ctx context.Context, departmentID, name string, year int) (bool, error)
	Create(ctx context.Context, class *models.Class) error
	Update(ctx context.Context, class *models.Class) error
	Delete(ctx context.Context, id string) error
}

type classUserRepository interface {
	ListByDepartment(ctx context.Context, departmentID string, roles ...models.UserRole) ([]models.User, error)
	ListAssignable(ctx context.Context, departmentID string) ([]models.User, error)
	SetDepartment(ctx context.Context, userID string, departmentID *string) error
}

// CreateClassRequest is the HOD's payload for a new class.
type CreateClassRequest struct {
	Name           string  `json:"name" validate:"required"`
	Year           int     `json:"year" validate:"required,min=1,max=4"`
	ClassTeacherID *string `json:"class_teacher_id"`
}

// UpdateClassRequest rewrites a class's name, year and teacher.
type UpdateClassRequest struct {
	Name           string  `json:"name" validate:"required"`
	Year           int     `json:"year" validate:"required,min=1,max=4"`
	ClassTeacherID *string `json:"class_teacher_id"`
}

// ClassService implements the HOD's class administration.
type ClassService struct {
	classes   classRepository
	users     classUserRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClassService constructs a ClassService instance.
func NewClassService(classes classRepository, users classUserRepository, validate *validator.Validate, logger *zap.Logger) *ClassService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ClassService{classes: classes, users: users, validator: validate, logger: logger}
}

// List returns the department's classes with teacher names and roster sizes.
func (s *ClassService) List(ctx context.Context, departmentID string) ([]models.ClassOverview, error) {
	rows, err := s.classes.ListOverviewByDepartment(ctx, departmentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list classes")
	}
	if rows == nil {
		rows = []models.ClassOverview{}
	}
	return rows, nil
}

// ListFaculties returns the department's teaching staff.
func (s *ClassService) ListFaculties(ctx context.Context, departmentID string) ([]models.User, error) {
	users, err := s.users.ListByDepartment(ctx, departmentID, models.RoleClassTeacher, models.RoleFaculty, models.RoleHOD)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list faculties")
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// ListClassTeachers returns class teacher candidates: class teachers and
// faculty that are unassigned or already in the department.
func (s *ClassService) ListClassTeachers(ctx context.Context, departmentID string) ([]models.User, error) {
	users, err := s.users.ListAssignable(ctx, departmentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list class teachers")
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// Create adds a new class to the department.
func (s *ClassService) Create(ctx context.Context, departmentID string, req CreateClassRequest) (*models.Class, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class payload")
	}

	exists, err := s.classes.ExistsByNameYear(ctx, departmentID, req.Name, req.Year)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check class")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "class already exists for this year")
	}

	class := &models.Class{
		Name:           req.Name,
		Year:           req.Year,
		DepartmentID:   departmentID,
		ClassTeacherID: req.ClassTeacherID,
	}
	if err := s.classes.Create(ctx, class); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create class")
	}

	// Pull the teacher into the department. Class creation already
	// succeeded, so a failure here only logs.
	if req.ClassTeacherID != nil {
		if err := s.users.SetDepartment(ctx, *req.ClassTeacherID, &departmentID); err != nil {
			s.logger.Warn("failed to adopt teacher into department",
				zap.String("class_id", class.ID),
				zap.String("teacher_id", *req.ClassTeacherID),
				zap.Error(err))
		}
	}

	s.logger.Info("class created", zap.String("class_id", class.ID), zap.String("department_id", departmentID))
	return class, nil
}

// Update rewrites a class owned by the department.
func (s *ClassService) Update(ctx context.Context, departmentID, classID string, req UpdateClassRequest) (*models.Class, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class payload")
	}

	class, err := s.ownedClass(ctx, departmentID, classID)
	if err != nil {
		return nil, err
	}

	class.Name = req.Name
	class.Year = req.Year
	class.ClassTeacherID = req.ClassTeacherID
	if err := s.classes.Update(ctx, class); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update class")
	}

	s.logger.Info("class updated", zap.String("class_id", classID))
	return class, nil
}

// Delete removes a class owned by the department.
func (s *ClassService) Delete(ctx context.Context, departmentID, classID string) error {
	if _, err := s.ownedClass(ctx, departmentID, classID); err != nil {
		return err
	}
	if err := s.classes.Delete(ctx, classID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete class")
	}

	s.logger.Info("class deleted", zap.String("class_id", classID))
	return nil
}

func (s *ClassService) ownedClass(ctx context.Context, departmentID, classID string) (*models.Class, error) {
	class, err := s.classes.FindByID(ctx, classID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch class")
	}
	if class.DepartmentID != departmentID {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "class belongs to another department")
	}
	return class, nil
}
