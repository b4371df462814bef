package models

import "time"

// DefaulterThreshold is the attendance percentage below which a student is
// flagged as a defaulter.
const DefaulterThreshold = 75.0

// Student is a class roster entry. The hall ticket number doubles as the
// login credential, with its bcrypt hash as the default password.
type Student struct {
	ID                string    `db:"id" json:"id"`
	RollNo            string    `db:"roll_no" json:"roll_no"`
	Name              string    `db:"name" json:"name"`
	HallTicketNumber  string    `db:"hall_ticket_number" json:"hall_ticket_number"`
	Email             *string   `db:"email" json:"email,omitempty"`
	Mobile            *string   `db:"mobile" json:"mobile,omitempty"`
	AttendancePercent float64   `db:"attendance_percent" json:"attendance_percent"`
	Defaulter         bool      `db:"defaulter" json:"defaulter"`
	ClassID           string    `db:"class_id" json:"class_id"`
	BatchID           *string   `db:"batch_id" json:"batch_id,omitempty"`
	PasswordHash      string    `db:"password" json:"-"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

// IsDefaulter derives the defaulter flag from an attendance percentage.
func IsDefaulter(attendancePercent float64) bool {
	return attendancePercent < DefaulterThreshold
}

// StudentRosterRow is a roster entry joined with its batch name.
type StudentRosterRow struct {
	Student
	BatchName *string `db:"batch_name" json:"batch_name"`
}

// StudentCredentialPair is the dedup key loaded before a bulk import.
type StudentCredentialPair struct {
	RollNo           string `db:"roll_no"`
	HallTicketNumber string `db:"hall_ticket_number"`
}

// FacultyStudentRow expands a roster entry per applicable teaching
// assignment for the faculty students view.
type FacultyStudentRow struct {
	StudentRosterRow
	SubjectID   string      `json:"subject_id"`
	SubjectName string      `json:"subject_name"`
	SubjectCode string      `json:"subject_code"`
	SubjectType SubjectType `json:"subject_type"`
}
