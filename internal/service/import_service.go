package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/campushq/college-adp-api/internal/models"
	appErrors "github.com/campushq/college-adp-api/pkg/errors"
)

type importStudentRepository interface {
	ListCredentials(ctx context.Context, classID string) ([]models.StudentCredentialPair, error)
	InsertMany(ctx context.Context, students []models.Student) error
}

// ImportResult summarises one bulk import run.
type ImportResult struct {
	Total    int    `json:"total"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
	Message  string `json:"message,omitempty"`
}

// ImportService loads class rosters from uploaded CSV files.
//
// Rows are deduplicated against the existing roster: a row whose roll number
// OR hall ticket number is already present in the class is skipped, not
// overwritten. Imported students get the bcrypt hash of their hall ticket
// number as the default login password.
type ImportService struct {
	students importStudentRepository
	logger   *zap.Logger
}

// NewImportService constructs an ImportService instance.
func NewImportService(students importStudentRepository, logger *zap.Logger) *ImportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImportService{students: students, logger: logger}
}

// csv column names recognised in the header row, case-insensitive.
const (
	colRollNo     = "roll_no"
	colName       = "name"
	colHallTicket = "hall_ticket_number"
	colEmail      = "email"
	colMobile     = "mobile"
	colAttendance = "attendance_percent"
)

// ImportStudents parses the CSV at path and inserts new roster entries for
// the class. The uploaded file is removed when the import finishes.
func (s *ImportService) ImportStudents(ctx context.Context, classID, path string) (*ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open upload")
	}
	defer func() {
		f.Close()
		if err := os.Remove(path); err != nil {
			s.logger.Warn("failed to remove upload", zap.String("path", path), zap.Error(err))
		}
	}()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, appErrors.Clone(appErrors.ErrValidation, "csv file is empty")
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "failed to read csv header")
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	var missing []string
	for _, required := range []string{colRollNo, colName, colHallTicket, colAttendance} {
		if _, ok := cols[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", ")))
	}

	existing, err := s.students.ListCredentials(ctx, classID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load existing roster")
	}
	seenRoll := map[string]struct{}{}
	seenTicket := map[string]struct{}{}
	for _, pair := range existing {
		seenRoll[pair.RollNo] = struct{}{}
		seenTicket[pair.HallTicketNumber] = struct{}{}
	}

	result := &ImportResult{}
	var toInsert []models.Student
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "failed to parse csv row")
		}

		rollNo := cell(record, cols, colRollNo)
		name := cell(record, cols, colName)
		hallTicket := cell(record, cols, colHallTicket)
		if rollNo == "" || name == "" || hallTicket == "" {
			result.Skipped++
			result.Total++
			continue
		}
		result.Total++

		if _, dup := seenRoll[rollNo]; dup {
			result.Skipped++
			continue
		}
		if _, dup := seenTicket[hallTicket]; dup {
			result.Skipped++
			continue
		}
		seenRoll[rollNo] = struct{}{}
		seenTicket[hallTicket] = struct{}{}

		attendance := 0.0
		if raw := cell(record, cols, colAttendance); raw != "" {
			if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
				attendance = parsed
			}
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(hallTicket), bcrypt.DefaultCost)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash default password")
		}

		student := models.Student{
			RollNo:            rollNo,
			Name:              name,
			HallTicketNumber:  hallTicket,
			AttendancePercent: attendance,
			Defaulter:         models.IsDefaulter(attendance),
			ClassID:           classID,
			PasswordHash:      string(hash),
		}
		if email := cell(record, cols, colEmail); email != "" {
			student.Email = &email
		}
		if mobile := cell(record, cols, colMobile); mobile != "" {
			student.Mobile = &mobile
		}
		toInsert = append(toInsert, student)
	}

	if result.Total == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "no student rows found")
	}

	if len(toInsert) == 0 {
		result.Message = "no new students"
		s.logger.Info("import skipped every row", zap.String("class_id", classID), zap.Int("skipped", result.Skipped))
		return result, nil
	}

	if err := s.students.InsertMany(ctx, toInsert); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to insert students")
	}
	result.Imported = len(toInsert)

	s.logger.Info("students imported",
		zap.String("class_id", classID),
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped))
	return result, nil
}

func cell(record []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
