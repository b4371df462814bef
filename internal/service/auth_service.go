package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/campushq/college-adp-api/internal/models"
	appErrors "github.com/campushq/college-adp-api/pkg/errors"
)

type authUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type authClassRepository interface {
	FindIDByTeacher(ctx context.Context, teacherID string) (string, error)
}

type authFacultySubjectRepository interface {
	FindClassID(ctx context.Context, facultyID string) (string, error)
}

type authStudentRepository interface {
	FindByHallTicket(ctx context.Context, hallTicket string) (*models.Student, error)
}

// AuthConfig defines configuration for session token issuance.
type AuthConfig struct {
	Secret      string
	TokenExpiry time.Duration
}

// AuthService provides registration, login and token validation.
//
// Session tokens carry role-conditional scope claims: class teachers and
// faculty must resolve a class before a token is issued, HODs must have a
// department, and students carry their class and batch. A staff member whose
// scope cannot be resolved is refused login entirely.
type AuthService struct {
	users     authUserRepository
	classes   authClassRepository
	teaching  authFacultySubjectRepository
	students  authStudentRepository
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(users authUserRepository, classes authClassRepository, teaching authFacultySubjectRepository, students authStudentRepository, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if config.TokenExpiry <= 0 {
		config.TokenExpiry = 168 * time.Hour
	}
	return &AuthService{
		users:     users,
		classes:   classes,
		teaching:  teaching,
		students:  students,
		validator: validate,
		logger:    logger,
		config:    config,
	}
}

// Register creates a new staff account.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid registration payload")
	}

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check existing user")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "user already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.UserRole(req.Role),
		DepartmentID: req.DepartmentID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create user")
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID), zap.String("role", req.Role))
	return user, nil
}

// Login authenticates a staff member and issues a scoped session token.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (string, *models.UserInfo, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid email or password")
		}
		return "", nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid email or password")
	}

	claims := models.JWTClaims{
		UserID: user.ID,
		Role:   user.Role,
	}
	info := &models.UserInfo{
		ID:           user.ID,
		Name:         user.Name,
		Role:         user.Role,
		Email:        user.Email,
		DepartmentID: user.DepartmentID,
	}

	switch user.Role {
	case models.RoleClassTeacher, models.RoleFaculty:
		classID, err := s.resolveTeachingClass(ctx, user)
		if err != nil {
			return "", nil, err
		}
		if classID == "" {
			return "", nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "no class assigned to this account")
		}
		claims.ClassID = classID
		info.ClassID = &classID
	case models.RoleHOD:
		if user.DepartmentID == nil || *user.DepartmentID == "" {
			return "", nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "no department assigned to this account")
		}
		claims.DepartmentID = *user.DepartmentID
	}

	token, err := s.issueToken(claims)
	if err != nil {
		return "", nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign token")
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return token, info, nil
}

// resolveTeachingClass finds the class scoping a teacher's session. Homeroom
// assignment wins; otherwise any class-bound teaching assignment counts.
func (s *AuthService) resolveTeachingClass(ctx context.Context, user *models.User) (string, error) {
	if user.Role == models.RoleClassTeacher {
		classID, err := s.classes.FindIDByTeacher(ctx, user.ID)
		if err != nil {
			return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve class")
		}
		if classID != "" {
			return classID, nil
		}
	}
	classID, err := s.teaching.FindClassID(ctx, user.ID)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve teaching class")
	}
	return classID, nil
}

// StudentLogin authenticates a student by hall ticket number. New accounts
// default to the bcrypt hash of the hall ticket itself as password.
func (s *AuthService) StudentLogin(ctx context.Context, req models.StudentLoginRequest) (string, *models.StudentInfo, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	student, err := s.students.FindByHallTicket(ctx, req.HallTicketNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid hall ticket number or password")
		}
		return "", nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch student")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(req.Password)); err != nil {
		return "", nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid hall ticket number or password")
	}

	claims := models.JWTClaims{
		UserID:  student.ID,
		Role:    models.RoleStudent,
		ClassID: student.ClassID,
	}
	if student.BatchID != nil {
		claims.BatchID = *student.BatchID
	}

	token, err := s.issueToken(claims)
	if err != nil {
		return "", nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign token")
	}

	info := &models.StudentInfo{
		ID:               student.ID,
		Name:             student.Name,
		RollNo:           student.RollNo,
		HallTicketNumber: student.HallTicketNumber,
		Email:            student.Email,
		Mobile:           student.Mobile,
		ClassID:          student.ClassID,
		BatchID:          student.BatchID,
		Defaulter:        student.Defaulter,
	}

	s.logger.Info("student logged in", zap.String("student_id", student.ID))
	return token, info, nil
}

// ValidateToken parses and verifies a session token.
func (s *AuthService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	claims := &models.JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, "unexpected signing method")
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid or expired token")
	}
	return claims, nil
}

func (s *AuthService) issueToken(claims models.JWTClaims) (string, error) {
	now := time.Now().UTC()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenExpiry)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Secret))
}
