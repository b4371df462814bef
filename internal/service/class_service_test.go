package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/college-adp-api/internal/models"
	appErrors "github.com/campushq/college-adp-api/pkg/errors"
)

type classRepoMock struct {
	overview []models.ClassOverview
	class    *models.Class
	findErr  error
	exists   bool
	created  *models.Class
	updated  *models.Class
	deleted  string
}

func (m *classRepoMock) ListOverviewByDepartment(ctx context.Context, departmentID string) ([]models.ClassOverview, error) {
	return m.overview, nil
}

func (m *classRepoMock) FindByID(ctx context.Context, id string) (*models.Class, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.class, nil
}

func (m *classRepoMock) ExistsByNameYear(ctx context.Context, departmentID, name string, year int) (bool, error) {
	return m.exists, nil
}

func (m *classRepoMock) Create(ctx context.Context, class *models.Class) error {
	class.ID = "c-new"
	m.created = class
	return nil
}

func (m *classRepoMock) Update(ctx context.Context, class *models.Class) error {
	m.updated = class
	return nil
}

func (m *classRepoMock) Delete(ctx context.Context, id string) error {
	m.deleted = id
	return nil
}

type classUserRepoMock struct {
	assignable    []models.User
	setUser       string
	setDepartment *string
	setErr        error
}

func (m *classUserRepoMock) ListByDepartment(ctx context.Context, departmentID string, roles ...models.UserRole) ([]models.User, error) {
	return nil, nil
}

func (m *classUserRepoMock) ListAssignable(ctx context.Context, departmentID string) ([]models.User, error) {
	return m.assignable, nil
}

func (m *classUserRepoMock) SetDepartment(ctx context.Context, userID string, departmentID *string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.setUser = userID
	m.setDepartment = departmentID
	return nil
}

func TestCreateClassAdoptsTeacherIntoDepartment(t *testing.T) {
	classes := &classRepoMock{}
	users := &classUserRepoMock{}
	svc := NewClassService(classes, users, nil, nil)

	teacher := "t1"
	class, err := svc.Create(context.Background(), "d1", CreateClassRequest{
		Name:           "CSE-A",
		Year:           2,
		ClassTeacherID: &teacher,
	})
	require.NoError(t, err)
	assert.Equal(t, "c-new", class.ID)
	assert.Equal(t, "t1", users.setUser)
	require.NotNil(t, users.setDepartment)
	assert.Equal(t, "d1", *users.setDepartment)
}

func TestCreateClassAdoptionFailureIsNonFatal(t *testing.T) {
	classes := &classRepoMock{}
	users := &classUserRepoMock{setErr: assert.AnError}
	svc := NewClassService(classes, users, nil, nil)

	teacher := "t1"
	class, err := svc.Create(context.Background(), "d1", CreateClassRequest{
		Name:           "CSE-A",
		Year:           2,
		ClassTeacherID: &teacher,
	})
	require.NoError(t, err)
	assert.NotNil(t, class)
}

func TestCreateClassDuplicateNameYear(t *testing.T) {
	classes := &classRepoMock{exists: true}
	svc := NewClassService(classes, &classUserRepoMock{}, nil, nil)

	_, err := svc.Create(context.Background(), "d1", CreateClassRequest{Name: "CSE-A", Year: 2})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
	assert.Nil(t, classes.created)
}

func TestUpdateClassOtherDepartmentForbidden(t *testing.T) {
	classes := &classRepoMock{class: &models.Class{ID: "c1", DepartmentID: "d2"}}
	svc := NewClassService(classes, &classUserRepoMock{}, nil, nil)

	_, err := svc.Update(context.Background(), "d1", "c1", UpdateClassRequest{Name: "CSE-A", Year: 2})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrForbidden.Status, appErr.Status)
	assert.Nil(t, classes.updated)
}

func TestListClassTeachersUsesAssignablePool(t *testing.T) {
	users := &classUserRepoMock{assignable: []models.User{
		{ID: "u1", Role: models.RoleClassTeacher},
		{ID: "u2", Role: models.RoleFaculty},
	}}
	svc := NewClassService(&classRepoMock{}, users, nil, nil)

	got, err := svc.ListClassTeachers(context.Background(), "d1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
