package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/college-adp-api/internal/models"
	appErrors "github.com/campushq/college-adp-api/pkg/errors"
)

type defaulterTeachingRepoMock struct {
	classID string
}

func (m *defaulterTeachingRepoMock) FindClassForSubject(ctx context.Context, facultyID, subjectID string) (string, error) {
	return m.classID, nil
}

type defaulterStudentRepoMock struct {
	defaulters []models.Student
}

func (m *defaulterStudentRepoMock) ListDefaulters(ctx context.Context, classID string) ([]models.Student, error) {
	return m.defaulters, nil
}

type defaulterSubmissionRepoMock struct {
	inserted [][]models.DefaulterSubmission
}

func (m *defaulterSubmissionRepoMock) InsertDefaulterWork(ctx context.Context, rows []models.DefaulterSubmission) error {
	m.inserted = append(m.inserted, rows)
	return nil
}

func TestAssignWorkFansOutPerDefaulter(t *testing.T) {
	teaching := &defaulterTeachingRepoMock{classID: "c1"}
	students := &defaulterStudentRepoMock{defaulters: []models.Student{
		{ID: "s1"}, {ID: "s2"}, {ID: "s3"},
	}}
	repo := &defaulterSubmissionRepoMock{}
	svc := NewDefaulterService(teaching, students, repo, nil, nil)

	link := "https://notes.example.com/ch3"
	count, err := svc.AssignWork(context.Background(), "f1", AssignDefaulterWorkRequest{
		SubjectID:      "sub1",
		SubmissionText: "Solve chapter 3",
		ReferenceLink:  &link,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	require.Len(t, repo.inserted, 1)
	rows := repo.inserted[0]
	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, students.defaulters[i].ID, row.StudentID)
		assert.Equal(t, "Solve chapter 3", row.SubmissionText)
		assert.Equal(t, "f1", row.FacultyID)
		assert.Equal(t, "sub1", row.SubjectID)
		require.NotNil(t, row.ReferenceLink)
		assert.Equal(t, link, *row.ReferenceLink)
	}
}

func TestAssignWorkSkipMarker(t *testing.T) {
	teaching := &defaulterTeachingRepoMock{classID: "c1"}
	students := &defaulterStudentRepoMock{defaulters: []models.Student{{ID: "s1"}}}
	repo := &defaulterSubmissionRepoMock{}
	svc := NewDefaulterService(teaching, students, repo, nil, nil)

	_, err := svc.AssignWork(context.Background(), "f1", AssignDefaulterWorkRequest{
		SubjectID:      "sub1",
		SubmissionText: "ignored when skipping",
		Skip:           true,
	})
	require.NoError(t, err)

	rows := repo.inserted[0]
	assert.Equal(t, "Skipped by faculty", rows[0].SubmissionText)
	assert.True(t, rows[0].Skip)
}

func TestAssignWorkDefaultsInstructionText(t *testing.T) {
	teaching := &defaulterTeachingRepoMock{classID: "c1"}
	students := &defaulterStudentRepoMock{defaulters: []models.Student{{ID: "s1"}}}
	repo := &defaulterSubmissionRepoMock{}
	svc := NewDefaulterService(teaching, students, repo, nil, nil)

	_, err := svc.AssignWork(context.Background(), "f1", AssignDefaulterWorkRequest{SubjectID: "sub1"})
	require.NoError(t, err)

	assert.Equal(t, "No instructions provided.", repo.inserted[0][0].SubmissionText)
}

func TestAssignWorkAccumulatesAcrossCalls(t *testing.T) {
	teaching := &defaulterTeachingRepoMock{classID: "c1"}
	students := &defaulterStudentRepoMock{defaulters: []models.Student{{ID: "s1"}, {ID: "s2"}}}
	repo := &defaulterSubmissionRepoMock{}
	svc := NewDefaulterService(teaching, students, repo, nil, nil)

	req := AssignDefaulterWorkRequest{SubjectID: "sub1", SubmissionText: "Redo lab record"}
	first, err := svc.AssignWork(context.Background(), "f1", req)
	require.NoError(t, err)
	second, err := svc.AssignWork(context.Background(), "f1", req)
	require.NoError(t, err)

	assert.Equal(t, 2, first)
	assert.Equal(t, 2, second)
	assert.Len(t, repo.inserted, 2)
}

func TestAssignWorkNoClassFound(t *testing.T) {
	teaching := &defaulterTeachingRepoMock{}
	repo := &defaulterSubmissionRepoMock{}
	svc := NewDefaulterService(teaching, &defaulterStudentRepoMock{}, repo, nil, nil)

	_, err := svc.AssignWork(context.Background(), "f1", AssignDefaulterWorkRequest{SubjectID: "sub1"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Status, appErr.Status)
	assert.Empty(t, repo.inserted)
}

func TestAssignWorkNoDefaultersIsNoOp(t *testing.T) {
	teaching := &defaulterTeachingRepoMock{classID: "c1"}
	repo := &defaulterSubmissionRepoMock{}
	svc := NewDefaulterService(teaching, &defaulterStudentRepoMock{}, repo, nil, nil)

	count, err := svc.AssignWork(context.Background(), "f1", AssignDefaulterWorkRequest{SubjectID: "sub1"})
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, repo.inserted)
}
