package repository

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacultySubjectFindClassForSubject(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewFacultySubjectRepository(db)

	mock.ExpectQuery(`SELECT class_id FROM faculty_subjects`).
		WithArgs("f1", "sub1").
		WillReturnRows(sqlmock.NewRows([]string{"class_id"}).AddRow("c1"))

	classID, err := repo.FindClassForSubject(context.Background(), "f1", "sub1")
	require.NoError(t, err)
	assert.Equal(t, "c1", classID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFacultySubjectFindClassForSubjectNone(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewFacultySubjectRepository(db)

	mock.ExpectQuery(`SELECT class_id FROM faculty_subjects`).
		WithArgs("f1", "sub1").
		WillReturnRows(sqlmock.NewRows([]string{"class_id"}))

	classID, err := repo.FindClassForSubject(context.Background(), "f1", "sub1")
	require.NoError(t, err)
	assert.Empty(t, classID)
}

func TestFacultySubjectTeachesSubject(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewFacultySubjectRepository(db)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("f1", "sub1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	teaches, err := repo.TeachesSubject(context.Background(), "f1", "sub1")
	require.NoError(t, err)
	assert.True(t, teaches)
}
