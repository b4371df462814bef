package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/college-adp-api/internal/models"
)

type electiveTeachingRepoMock struct {
	teaches bool
}

func (m *electiveTeachingRepoMock) TeachesSubject(ctx context.Context, facultyID, subjectID string) (bool, error) {
	return m.teaches, nil
}

type electiveRepoMock struct {
	existing *models.ElectiveSelection
	findErr  error
	inserted *models.ElectiveSelection
	updated  *models.ElectiveSelection
}

func (m *electiveRepoMock) FindByStudent(ctx context.Context, studentID string) (*models.ElectiveSelection, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.existing, nil
}

func (m *electiveRepoMock) Insert(ctx context.Context, selection *models.ElectiveSelection) error {
	selection.ID = "sel-new"
	m.inserted = selection
	return nil
}

func (m *electiveRepoMock) Update(ctx context.Context, selection *models.ElectiveSelection) error {
	m.updated = selection
	return nil
}

func TestSelectElectiveCreatesRowOnFirstChoice(t *testing.T) {
	repo := &electiveRepoMock{findErr: sql.ErrNoRows}
	svc := NewElectiveService(&electiveTeachingRepoMock{teaches: true}, repo, nil, nil)

	selection, err := svc.Select(context.Background(), "s1", SelectElectiveRequest{
		Type:      "OE",
		SubjectID: "sub1",
		FacultyID: "f1",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.inserted)
	assert.Nil(t, repo.updated)
	require.NotNil(t, selection.OEID)
	assert.Equal(t, "sub1", *selection.OEID)
	assert.Equal(t, "f1", *selection.OEFacultyID)
	assert.Nil(t, selection.MDMID)
}

func TestSelectElectiveOverwritesSlot(t *testing.T) {
	oldSubject, oldFaculty := "old-sub", "old-fac"
	repo := &electiveRepoMock{existing: &models.ElectiveSelection{
		ID:           "sel-1",
		StudentID:    "s1",
		PEID:         &oldSubject,
		PEFacultyID:  &oldFaculty,
		MDMID:        &oldSubject,
		MDMFacultyID: &oldFaculty,
	}}
	svc := NewElectiveService(&electiveTeachingRepoMock{teaches: true}, repo, nil, nil)

	selection, err := svc.Select(context.Background(), "s1", SelectElectiveRequest{
		Type:      "PE",
		SubjectID: "new-sub",
		FacultyID: "new-fac",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.updated)
	assert.Nil(t, repo.inserted)
	assert.Equal(t, "new-sub", *selection.PEID)
	assert.Equal(t, "new-fac", *selection.PEFacultyID)
	// other slots untouched
	assert.Equal(t, "old-sub", *selection.MDMID)
}

func TestSelectElectiveRejectsUnknownType(t *testing.T) {
	svc := NewElectiveService(&electiveTeachingRepoMock{teaches: true}, &electiveRepoMock{}, nil, nil)

	_, err := svc.Select(context.Background(), "s1", SelectElectiveRequest{
		Type:      "HONORS",
		SubjectID: "sub1",
		FacultyID: "f1",
	})
	require.Error(t, err)
}

func TestSelectElectiveRejectsUnassignedFaculty(t *testing.T) {
	repo := &electiveRepoMock{findErr: sql.ErrNoRows}
	svc := NewElectiveService(&electiveTeachingRepoMock{}, repo, nil, nil)

	_, err := svc.Select(context.Background(), "s1", SelectElectiveRequest{
		Type:      "OE",
		SubjectID: "sub1",
		FacultyID: "f1",
	})
	require.Error(t, err)
	assert.Nil(t, repo.inserted)
}
