package service

import (
	"context"
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/campushq/college-adp-api/internal/models"
	appErrors "github.com/campushq/college-adp-api/pkg/errors"
)

type authUserRepoMock struct {
	user      *models.User
	userErr   error
	exists    bool
	created   *models.User
	createErr error
}

func (m *authUserRepoMock) Create(ctx context.Context, user *models.User) error {
	m.created = user
	user.ID = "new-user"
	return m.createErr
}

func (m *authUserRepoMock) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.userErr != nil {
		return nil, m.userErr
	}
	return m.user, nil
}

func (m *authUserRepoMock) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return m.exists, nil
}

type authClassRepoMock struct {
	classID string
}

func (m *authClassRepoMock) FindIDByTeacher(ctx context.Context, teacherID string) (string, error) {
	return m.classID, nil
}

type authTeachingRepoMock struct {
	classID string
}

func (m *authTeachingRepoMock) FindClassID(ctx context.Context, facultyID string) (string, error) {
	return m.classID, nil
}

type authStudentRepoMock struct {
	student *models.Student
	err     error
}

func (m *authStudentRepoMock) FindByHallTicket(ctx context.Context, hallTicket string) (*models.Student, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.student, nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newAuthService(users *authUserRepoMock, classes *authClassRepoMock, teaching *authTeachingRepoMock, students *authStudentRepoMock) *AuthService {
	return NewAuthService(users, classes, teaching, students, nil, nil, AuthConfig{
		Secret:      "test-secret",
		TokenExpiry: time.Hour,
	})
}

func TestLoginClassTeacherScopedByHomeroom(t *testing.T) {
	users := &authUserRepoMock{user: &models.User{
		ID:           "u1",
		Name:         "Asha",
		Email:        "asha@college.edu",
		PasswordHash: hashOf(t, "secret"),
		Role:         models.RoleClassTeacher,
	}}
	svc := newAuthService(users, &authClassRepoMock{classID: "c1"}, &authTeachingRepoMock{}, &authStudentRepoMock{})

	token, info, err := svc.Login(context.Background(), models.LoginRequest{Email: "asha@college.edu", Password: "secret"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	require.NotNil(t, info.ClassID)
	assert.Equal(t, "c1", *info.ClassID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "c1", claims.ClassID)
	assert.Equal(t, models.RoleClassTeacher, claims.Role)
}

func TestLoginClassTeacherFallsBackToTeachingAssignment(t *testing.T) {
	users := &authUserRepoMock{user: &models.User{
		ID:           "u1",
		Email:        "asha@college.edu",
		PasswordHash: hashOf(t, "secret"),
		Role:         models.RoleClassTeacher,
	}}
	svc := newAuthService(users, &authClassRepoMock{}, &authTeachingRepoMock{classID: "c9"}, &authStudentRepoMock{})

	token, _, err := svc.Login(context.Background(), models.LoginRequest{Email: "asha@college.edu", Password: "secret"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "c9", claims.ClassID)
}

func TestLoginRefusedWhenTeacherHasNoClass(t *testing.T) {
	users := &authUserRepoMock{user: &models.User{
		ID:           "u1",
		Email:        "ravi@college.edu",
		PasswordHash: hashOf(t, "secret"),
		Role:         models.RoleFaculty,
	}}
	svc := newAuthService(users, &authClassRepoMock{}, &authTeachingRepoMock{}, &authStudentRepoMock{})

	_, _, err := svc.Login(context.Background(), models.LoginRequest{Email: "ravi@college.edu", Password: "secret"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Status, appErr.Status)
}

func TestLoginRefusedWhenHODHasNoDepartment(t *testing.T) {
	users := &authUserRepoMock{user: &models.User{
		ID:           "u1",
		Email:        "hod@college.edu",
		PasswordHash: hashOf(t, "secret"),
		Role:         models.RoleHOD,
	}}
	svc := newAuthService(users, &authClassRepoMock{}, &authTeachingRepoMock{}, &authStudentRepoMock{})

	_, _, err := svc.Login(context.Background(), models.LoginRequest{Email: "hod@college.edu", Password: "secret"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Status, appErr.Status)
}

func TestLoginHODCarriesDepartmentClaim(t *testing.T) {
	dept := "d1"
	users := &authUserRepoMock{user: &models.User{
		ID:           "u1",
		Email:        "hod@college.edu",
		PasswordHash: hashOf(t, "secret"),
		Role:         models.RoleHOD,
		DepartmentID: &dept,
	}}
	svc := newAuthService(users, &authClassRepoMock{}, &authTeachingRepoMock{}, &authStudentRepoMock{})

	token, _, err := svc.Login(context.Background(), models.LoginRequest{Email: "hod@college.edu", Password: "secret"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "d1", claims.DepartmentID)
	assert.Empty(t, claims.ClassID)
}

func TestLoginWrongPassword(t *testing.T) {
	users := &authUserRepoMock{user: &models.User{
		Email:        "asha@college.edu",
		PasswordHash: hashOf(t, "secret"),
		Role:         models.RoleDirector,
	}}
	svc := newAuthService(users, &authClassRepoMock{}, &authTeachingRepoMock{}, &authStudentRepoMock{})

	_, _, err := svc.Login(context.Background(), models.LoginRequest{Email: "asha@college.edu", Password: "wrong"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Status, appErr.Status)
}

func TestStudentLoginCarriesClassAndBatch(t *testing.T) {
	batch := "b1"
	students := &authStudentRepoMock{student: &models.Student{
		ID:               "s1",
		Name:             "Meera",
		RollNo:           "1",
		HallTicketNumber: "HT001",
		PasswordHash:     hashOf(t, "HT001"),
		ClassID:          "c1",
		BatchID:          &batch,
	}}
	svc := newAuthService(&authUserRepoMock{}, &authClassRepoMock{}, &authTeachingRepoMock{}, students)

	token, info, err := svc.StudentLogin(context.Background(), models.StudentLoginRequest{
		HallTicketNumber: "HT001",
		Password:         "HT001",
	})
	require.NoError(t, err)
	assert.Equal(t, "s1", info.ID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, claims.Role)
	assert.Equal(t, "c1", claims.ClassID)
	assert.Equal(t, "b1", claims.BatchID)
}

func TestStudentLoginUnknownHallTicket(t *testing.T) {
	students := &authStudentRepoMock{err: sql.ErrNoRows}
	svc := newAuthService(&authUserRepoMock{}, &authClassRepoMock{}, &authTeachingRepoMock{}, students)

	_, _, err := svc.StudentLogin(context.Background(), models.StudentLoginRequest{
		HallTicketNumber: "HT999",
		Password:         "HT999",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Status, appErr.Status)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	users := &authUserRepoMock{exists: true}
	svc := newAuthService(users, &authClassRepoMock{}, &authTeachingRepoMock{}, &authStudentRepoMock{})

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@college.edu",
		Password: "secret",
		Role:     "faculty",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
	assert.Nil(t, users.created)
}

func TestRegisterHashesPassword(t *testing.T) {
	users := &authUserRepoMock{}
	svc := newAuthService(users, &authClassRepoMock{}, &authTeachingRepoMock{}, &authStudentRepoMock{})

	user, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@college.edu",
		Password: "secret",
		Role:     "class_teacher",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "secret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")))
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newAuthService(&authUserRepoMock{}, &authClassRepoMock{}, &authTeachingRepoMock{}, &authStudentRepoMock{})

	_, err := svc.ValidateToken("not-a-token")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUnauthorized.Status, appErr.Status)
}
