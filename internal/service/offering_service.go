package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushq/college-adp-api/internal/models"
	appErrors "github.com/campushq/college-adp-api/pkg/errors"
)

type offeredSubjectRepository interface {
	ListByDepartment(ctx context.Context, departmentID string) ([]models.OfferedSubjectRow, error)
	Exists(ctx context.Context, departmentID, subjectID string, semester, year int) (bool, error)
	Create(ctx context.Context, offering *models.OfferedSubject) error
	ExistsInDepartment(ctx context.Context, offeringID, departmentID string) (bool, error)
	Delete(ctx context.Context, id string) error
}

type offeringSubjectRepository interface {
	ExistsByCode(ctx context.Context, departmentID, code string) (bool, error)
	Create(ctx context.Context, subject *models.Subject) error
}

type offeringTeachingRepository interface {
	TeachesSubject(ctx context.Context, facultyID, subjectID string) (bool, error)
	InsertMany(ctx context.Context, edges []models.FacultySubject) error
}

type offeringUserRepository interface {
	NamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}

// AddOfferedSubjectRequest creates a subject and its elective offering in
// one step.
type AddOfferedSubjectRequest struct {
	SubjectName string   `json:"subject_name" validate:"required"`
	SubjectCode string   `json:"subject_code" validate:"required"`
	Type        string   `json:"type" validate:"required,oneof=theory practical"`
	Semester    int      `json:"semester" validate:"required,min=1,max=8"`
	Year        int      `json:"year" validate:"required"`
	FacultyIDs  []string `json:"faculty_ids" validate:"required,min=1"`
}

// OfferingService implements the HOD's elective offering administration.
type OfferingService struct {
	offerings offeredSubjectRepository
	subjects  offeringSubjectRepository
	teaching  offeringTeachingRepository
	users     offeringUserRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewOfferingService constructs an OfferingService instance.
func NewOfferingService(offerings offeredSubjectRepository, subjects offeringSubjectRepository, teaching offeringTeachingRepository, users offeringUserRepository, validate *validator.Validate, logger *zap.Logger) *OfferingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &OfferingService{offerings: offerings, subjects: subjects, teaching: teaching, users: users, validator: validate, logger: logger}
}

// List returns the department's offerings with resolved faculty names.
func (s *OfferingService) List(ctx context.Context, departmentID string) ([]models.OfferedSubjectOverview, error) {
	rows, err := s.offerings.ListByDepartment(ctx, departmentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list offerings")
	}

	idSet := map[string]struct{}{}
	for _, row := range rows {
		for _, id := range row.FacultyIDs {
			idSet[id] = struct{}{}
		}
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	names, err := s.users.NamesByIDs(ctx, ids)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve faculty names")
	}

	overviews := make([]models.OfferedSubjectOverview, 0, len(rows))
	for _, row := range rows {
		faculties := make([]string, 0, len(row.FacultyIDs))
		for _, id := range row.FacultyIDs {
			if name, ok := names[id]; ok {
				faculties = append(faculties, name)
			}
		}
		overviews = append(overviews, models.OfferedSubjectOverview{
			ID:          row.ID,
			SubjectCode: row.SubjectCode,
			SubjectName: row.SubjectName,
			Type:        row.Type,
			Faculties:   faculties,
			Semester:    row.Semester,
			Year:        row.Year,
			CreatedAt:   row.CreatedAt,
		})
	}
	return overviews, nil
}

// Add creates a department elective subject and offers it for the given
// semester and year.
func (s *OfferingService) Add(ctx context.Context, departmentID string, req AddOfferedSubjectRequest) (*models.OfferedSubject, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid offering payload")
	}

	exists, err := s.subjects.ExistsByCode(ctx, departmentID, req.SubjectCode)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check subject code")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "subject code already exists in department")
	}

	subject := &models.Subject{
		Name:         req.SubjectName,
		Code:         req.SubjectCode,
		Type:         models.SubjectType(req.Type),
		DepartmentID: departmentID,
	}
	if err := s.subjects.Create(ctx, subject); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create subject")
	}

	offered, err := s.offerings.Exists(ctx, departmentID, subject.ID, req.Semester, req.Year)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check offering")
	}
	if offered {
		return nil, appErrors.Clone(appErrors.ErrConflict, "subject already offered for this semester")
	}

	offering := &models.OfferedSubject{
		SubjectID:    subject.ID,
		DepartmentID: departmentID,
		Semester:     req.Semester,
		Year:         req.Year,
		FacultyIDs:   req.FacultyIDs,
	}
	if err := s.offerings.Create(ctx, offering); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create offering")
	}

	edges := make([]models.FacultySubject, 0, len(req.FacultyIDs))
	for _, facultyID := range req.FacultyIDs {
		mapped, err := s.teaching.TeachesSubject(ctx, facultyID, subject.ID)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check faculty mapping")
		}
		if !mapped {
			edges = append(edges, models.FacultySubject{FacultyID: facultyID, SubjectID: &subject.ID})
		}
	}
	if err := s.teaching.InsertMany(ctx, edges); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to map faculty")
	}

	s.logger.Info("subject offered",
		zap.String("offering_id", offering.ID),
		zap.String("department_id", departmentID))
	return offering, nil
}

// Delete removes an offering owned by the department.
func (s *OfferingService) Delete(ctx context.Context, departmentID, offeringID string) error {
	owned, err := s.offerings.ExistsInDepartment(ctx, offeringID, departmentID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check offering")
	}
	if !owned {
		return appErrors.Clone(appErrors.ErrNotFound, "offering not found")
	}
	if err := s.offerings.Delete(ctx, offeringID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete offering")
	}

	s.logger.Info("offering deleted", zap.String("offering_id", offeringID))
	return nil
}
