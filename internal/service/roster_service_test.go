package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/college-adp-api/internal/models"
	appErrors "github.com/campushq/college-adp-api/pkg/errors"
)

type rosterStudentRepoMock struct {
	roster      []models.StudentRosterRow
	student     *models.Student
	studentErr  error
	updated     *models.Student
	deleted     string
	rangeCalls  int
	rangeParams [4]interface{}
}

func (m *rosterStudentRepoMock) ListByClass(ctx context.Context, classID string) ([]models.StudentRosterRow, error) {
	return m.roster, nil
}

func (m *rosterStudentRepoMock) FindByID(ctx context.Context, id string) (*models.Student, error) {
	if m.studentErr != nil {
		return nil, m.studentErr
	}
	return m.student, nil
}

func (m *rosterStudentRepoMock) Update(ctx context.Context, student *models.Student) error {
	m.updated = student
	return nil
}

func (m *rosterStudentRepoMock) Delete(ctx context.Context, id string) error {
	m.deleted = id
	return nil
}

func (m *rosterStudentRepoMock) AssignBatchByRollRange(ctx context.Context, classID, batchID string, rollStart, rollEnd int) error {
	m.rangeCalls++
	m.rangeParams = [4]interface{}{classID, batchID, rollStart, rollEnd}
	return nil
}

type rosterBatchRepoMock struct {
	batches []models.Batch
	created *models.Batch
}

func (m *rosterBatchRepoMock) ListByClass(ctx context.Context, classID string) ([]models.Batch, error) {
	return m.batches, nil
}

func (m *rosterBatchRepoMock) Create(ctx context.Context, batch *models.Batch) error {
	batch.ID = "b-new"
	m.created = batch
	return nil
}

type rosterClassRepoMock struct {
	class *models.Class
	err   error
}

func (m *rosterClassRepoMock) FindByID(ctx context.Context, id string) (*models.Class, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.class == nil {
		return &models.Class{ID: id, DepartmentID: "d1"}, nil
	}
	return m.class, nil
}

type rosterUserRepoMock struct {
	users []models.User
}

func (m *rosterUserRepoMock) ListNonDirectors(ctx context.Context) ([]models.User, error) {
	return m.users, nil
}

type rosterSubjectRepoMock struct {
	exists  bool
	created *models.Subject
}

func (m *rosterSubjectRepoMock) ExistsByCode(ctx context.Context, departmentID, code string) (bool, error) {
	return m.exists, nil
}

func (m *rosterSubjectRepoMock) Create(ctx context.Context, subject *models.Subject) error {
	subject.ID = "sub-new"
	m.created = subject
	return nil
}

type rosterTeachingRepoMock struct {
	inserted  [][]models.FacultySubject
	insertErr error
}

func (m *rosterTeachingRepoMock) InsertMany(ctx context.Context, edges []models.FacultySubject) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, edges)
	return nil
}

type rosterMocks struct {
	students *rosterStudentRepoMock
	batches  *rosterBatchRepoMock
	classes  *rosterClassRepoMock
	users    *rosterUserRepoMock
	subjects *rosterSubjectRepoMock
	teaching *rosterTeachingRepoMock
}

func newRosterService(m rosterMocks) *RosterService {
	if m.students == nil {
		m.students = &rosterStudentRepoMock{}
	}
	if m.batches == nil {
		m.batches = &rosterBatchRepoMock{}
	}
	if m.classes == nil {
		m.classes = &rosterClassRepoMock{}
	}
	if m.users == nil {
		m.users = &rosterUserRepoMock{}
	}
	if m.subjects == nil {
		m.subjects = &rosterSubjectRepoMock{}
	}
	if m.teaching == nil {
		m.teaching = &rosterTeachingRepoMock{}
	}
	return NewRosterService(m.students, m.batches, m.classes, m.users, m.subjects, m.teaching, nil, nil)
}

func TestUpdateStudentRecomputesDefaulterFlag(t *testing.T) {
	students := &rosterStudentRepoMock{student: &models.Student{
		ID:                "s1",
		ClassID:           "c1",
		AttendancePercent: 90,
		Defaulter:         false,
	}}
	svc := newRosterService(rosterMocks{students: students})

	updated, err := svc.UpdateStudent(context.Background(), "c1", "s1", UpdateStudentRequest{
		RollNo:            "1",
		Name:              "Meera",
		HallTicketNumber:  "HT001",
		AttendancePercent: 70,
	})
	require.NoError(t, err)
	assert.True(t, updated.Defaulter)
	require.NotNil(t, students.updated)
	assert.Equal(t, 70.0, students.updated.AttendancePercent)
}

func TestUpdateStudentHonoursDefaulterOverride(t *testing.T) {
	students := &rosterStudentRepoMock{student: &models.Student{ID: "s1", ClassID: "c1"}}
	svc := newRosterService(rosterMocks{students: students})

	override := false
	updated, err := svc.UpdateStudent(context.Background(), "c1", "s1", UpdateStudentRequest{
		RollNo:            "1",
		Name:              "Meera",
		HallTicketNumber:  "HT001",
		AttendancePercent: 40,
		Defaulter:         &override,
	})
	require.NoError(t, err)
	assert.False(t, updated.Defaulter)
}

func TestUpdateStudentOtherClassForbidden(t *testing.T) {
	students := &rosterStudentRepoMock{student: &models.Student{ID: "s1", ClassID: "c2"}}
	svc := newRosterService(rosterMocks{students: students})

	_, err := svc.UpdateStudent(context.Background(), "c1", "s1", UpdateStudentRequest{
		RollNo:           "1",
		Name:             "Meera",
		HallTicketNumber: "HT001",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrForbidden.Status, appErr.Status)
	assert.Nil(t, students.updated)
}

func TestDeleteStudentNotFound(t *testing.T) {
	students := &rosterStudentRepoMock{studentErr: sql.ErrNoRows}
	svc := newRosterService(rosterMocks{students: students})

	err := svc.DeleteStudent(context.Background(), "c1", "missing")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Status, appErr.Status)
	assert.Empty(t, students.deleted)
}

func TestAssignSubjectTheoryCreatesClassWideEdge(t *testing.T) {
	subjects := &rosterSubjectRepoMock{}
	teaching := &rosterTeachingRepoMock{}
	svc := newRosterService(rosterMocks{subjects: subjects, teaching: teaching})

	subject, err := svc.AssignSubject(context.Background(), "c1", AssignSubjectRequest{
		SubjectName: "Signals",
		SubjectCode: "EC204",
		Type:        "theory",
		FacultyID:   "f1",
	})
	require.NoError(t, err)
	assert.Equal(t, "sub-new", subject.ID)
	require.NotNil(t, subjects.created)
	assert.Equal(t, "d1", subjects.created.DepartmentID)
	require.NotNil(t, subjects.created.ClassID)
	assert.Equal(t, "c1", *subjects.created.ClassID)

	require.Len(t, teaching.inserted, 1)
	edges := teaching.inserted[0]
	require.Len(t, edges, 1)
	assert.Equal(t, "f1", edges[0].FacultyID)
	assert.Nil(t, edges[0].BatchID)
	require.NotNil(t, edges[0].ClassID)
	assert.Equal(t, "c1", *edges[0].ClassID)
}

func TestAssignSubjectDuplicateCode(t *testing.T) {
	subjects := &rosterSubjectRepoMock{exists: true}
	svc := newRosterService(rosterMocks{subjects: subjects})

	_, err := svc.AssignSubject(context.Background(), "c1", AssignSubjectRequest{
		SubjectName: "Signals",
		SubjectCode: "EC204",
		Type:        "theory",
		FacultyID:   "f1",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Status, appErr.Status)
	assert.Nil(t, subjects.created)
}

func TestAssignSubjectPracticalPerBatch(t *testing.T) {
	teaching := &rosterTeachingRepoMock{}
	svc := newRosterService(rosterMocks{teaching: teaching})

	_, err := svc.AssignSubject(context.Background(), "c1", AssignSubjectRequest{
		SubjectName: "Signals Lab",
		SubjectCode: "EC204L",
		Type:        "practical",
		BatchAssignments: []BatchAssignment{
			{BatchID: "b1", FacultyID: "f1"},
			{BatchID: "b2", FacultyID: "f2"},
		},
	})
	require.NoError(t, err)

	require.Len(t, teaching.inserted, 1)
	edges := teaching.inserted[0]
	require.Len(t, edges, 2)
	assert.Equal(t, "b1", *edges[0].BatchID)
	assert.Equal(t, "f2", edges[1].FacultyID)
}

func TestAssignSubjectTheoryWithoutFaculty(t *testing.T) {
	svc := newRosterService(rosterMocks{})

	_, err := svc.AssignSubject(context.Background(), "c1", AssignSubjectRequest{
		SubjectName: "Signals",
		SubjectCode: "EC204",
		Type:        "theory",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Status, appErr.Status)
}

func TestCreateBatchBindsRollRange(t *testing.T) {
	students := &rosterStudentRepoMock{}
	batches := &rosterBatchRepoMock{}
	teaching := &rosterTeachingRepoMock{}
	svc := newRosterService(rosterMocks{students: students, batches: batches, teaching: teaching})

	subject := "sub1"
	batch, err := svc.CreateBatch(context.Background(), "c1", CreateBatchRequest{
		Name:      "Batch A",
		RollStart: 1,
		RollEnd:   20,
		FacultyID: "f1",
		SubjectID: &subject,
	})
	require.NoError(t, err)
	assert.Equal(t, "b-new", batch.ID)

	assert.Equal(t, 1, students.rangeCalls)
	assert.Equal(t, [4]interface{}{"c1", "b-new", 1, 20}, students.rangeParams)
	require.Len(t, teaching.inserted, 1)
}

func TestCreateBatchFacultyLinkFailureIsNonFatal(t *testing.T) {
	teaching := &rosterTeachingRepoMock{insertErr: assert.AnError}
	svc := newRosterService(rosterMocks{teaching: teaching})

	subject := "sub1"
	batch, err := svc.CreateBatch(context.Background(), "c1", CreateBatchRequest{
		Name:      "Batch A",
		RollStart: 1,
		RollEnd:   20,
		FacultyID: "f1",
		SubjectID: &subject,
	})
	require.NoError(t, err)
	assert.NotNil(t, batch)
}

func TestCreateBatchInvertedRange(t *testing.T) {
	svc := newRosterService(rosterMocks{})

	_, err := svc.CreateBatch(context.Background(), "c1", CreateBatchRequest{
		Name:      "Batch A",
		RollStart: 20,
		RollEnd:   1,
		FacultyID: "f1",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Status, appErr.Status)
}
