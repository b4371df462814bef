package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/campushq/college-adp-api/internal/models"
	appErrors "github.com/campushq/college-adp-api/pkg/errors"
)

type importStudentRepoMock struct {
	existing []models.StudentCredentialPair
	inserted []models.Student
}

func (m *importStudentRepoMock) ListCredentials(ctx context.Context, classID string) ([]models.StudentCredentialPair, error) {
	return m.existing, nil
}

func (m *importStudentRepoMock) InsertMany(ctx context.Context, students []models.Student) error {
	m.inserted = students
	return nil
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportStudentsDeduplicates(t *testing.T) {
	repo := &importStudentRepoMock{existing: []models.StudentCredentialPair{
		{RollNo: "1", HallTicketNumber: "HT001"},
	}}
	svc := NewImportService(repo, nil)

	path := writeCSV(t, "roll_no,name,hall_ticket_number,attendance_percent\n"+
		"1,Meera,HT001,82\n"+ // duplicate roll and ticket
		"2,Kiran,HT002,60\n"+
		"3,Dev,HT001,90\n"+ // duplicate ticket only
		"4,Nisha,HT004,88\n")

	result, err := svc.ImportStudents(context.Background(), "c1", path)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 2, result.Skipped)

	require.Len(t, repo.inserted, 2)
	assert.Equal(t, "Kiran", repo.inserted[0].Name)
	assert.True(t, repo.inserted[0].Defaulter)
	assert.False(t, repo.inserted[1].Defaulter)
}

func TestImportStudentsDefaultPasswordIsHallTicket(t *testing.T) {
	repo := &importStudentRepoMock{}
	svc := NewImportService(repo, nil)

	path := writeCSV(t, "roll_no,name,hall_ticket_number,attendance_percent\n1,Meera,HT001,91\n")

	_, err := svc.ImportStudents(context.Background(), "c1", path)
	require.NoError(t, err)
	require.Len(t, repo.inserted, 1)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.inserted[0].PasswordHash), []byte("HT001")))
}

func TestImportStudentsMissingColumns(t *testing.T) {
	svc := NewImportService(&importStudentRepoMock{}, nil)

	path := writeCSV(t, "roll_no,name\n1,Meera\n")

	_, err := svc.ImportStudents(context.Background(), "c1", path)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Status, appErr.Status)
	assert.Contains(t, appErr.Message, "hall_ticket_number")
	assert.Contains(t, appErr.Message, "attendance_percent")
}

func TestImportStudentsAllDuplicatesNoWrite(t *testing.T) {
	repo := &importStudentRepoMock{existing: []models.StudentCredentialPair{
		{RollNo: "1", HallTicketNumber: "HT001"},
	}}
	svc := NewImportService(repo, nil)

	path := writeCSV(t, "roll_no,name,hall_ticket_number,attendance_percent\n1,Meera,HT001,82\n")

	result, err := svc.ImportStudents(context.Background(), "c1", path)
	require.NoError(t, err)
	assert.Zero(t, result.Imported)
	assert.Equal(t, "no new students", result.Message)
	assert.Empty(t, repo.inserted)
}

func TestImportStudentsEmptyFile(t *testing.T) {
	svc := NewImportService(&importStudentRepoMock{}, nil)

	path := writeCSV(t, "")

	_, err := svc.ImportStudents(context.Background(), "c1", path)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Status, appErr.Status)
}

func TestImportStudentsHeaderOnly(t *testing.T) {
	svc := NewImportService(&importStudentRepoMock{}, nil)

	path := writeCSV(t, "roll_no,name,hall_ticket_number,attendance_percent\n")

	_, err := svc.ImportStudents(context.Background(), "c1", path)
	require.Error(t, err)
}

func TestImportStudentsRemovesUpload(t *testing.T) {
	svc := NewImportService(&importStudentRepoMock{}, nil)

	path := writeCSV(t, "roll_no,name,hall_ticket_number,attendance_percent\n1,Meera,HT001,80\n")

	_, err := svc.ImportStudents(context.Background(), "c1", path)
	require.NoError(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
