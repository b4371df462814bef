package models

import (
	"time"

	"github.com/lib/pq"
)

// SubjectType distinguishes theory subjects from practicals.
type SubjectType string

const (
	SubjectTheory    SubjectType = "theory"
	SubjectPractical SubjectType = "practical"
)

// Subject is a taught unit. ClassID is null for department-offered
// electives that are not bound to a fixed class.
type Subject struct {
	ID           string      `db:"id" json:"id"`
	Name         string      `db:"name" json:"name"`
	Code         string      `db:"subject_code" json:"subject_code"`
	Type         SubjectType `db:"type" json:"type"`
	DepartmentID string      `db:"department_id" json:"department_id"`
	ClassID      *string     `db:"class_id" json:"class_id,omitempty"`
	CreatedAt    time.Time   `db:"created_at" json:"created_at"`
}

// FacultySubject is the assignment edge "who teaches what, to whom".
// A null BatchID scopes the assignment to the whole class.
type FacultySubject struct {
	ID        string  `db:"id" json:"id"`
	FacultyID string  `db:"faculty_id" json:"faculty_id"`
	SubjectID *string `db:"subject_id" json:"subject_id,omitempty"`
	BatchID   *string `db:"batch_id" json:"batch_id,omitempty"`
	ClassID   *string `db:"class_id" json:"class_id,omitempty"`
}

// AssignedSubject is a faculty's view of one of their subjects.
type AssignedSubject struct {
	ID   string      `db:"id" json:"id"`
	Name string      `db:"name" json:"name"`
	Code string      `db:"subject_code" json:"code"`
	Type SubjectType `db:"type" json:"type"`
}

// OfferedSubject records a department elective offering for a
// semester/year together with the faculty eligible to teach it.
type OfferedSubject struct {
	ID           string         `db:"id" json:"id"`
	SubjectID    string         `db:"subject_id" json:"subject_id"`
	DepartmentID string         `db:"department_id" json:"department_id"`
	Semester     int            `db:"semester" json:"semester"`
	Year         int            `db:"year" json:"year"`
	FacultyIDs   pq.StringArray `db:"faculty_ids" json:"faculty_ids"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
}

// OfferedSubjectRow is an offering joined with its subject columns.
type OfferedSubjectRow struct {
	ID          string         `db:"id"`
	Semester    int            `db:"semester"`
	Year        int            `db:"year"`
	FacultyIDs  pq.StringArray `db:"faculty_ids"`
	CreatedAt   time.Time      `db:"created_at"`
	SubjectCode string         `db:"subject_code"`
	SubjectName string         `db:"subject_name"`
	Type        SubjectType    `db:"type"`
}

// OfferedSubjectOverview is the HOD listing row joining the offering with
// its subject and the resolved faculty names.
type OfferedSubjectOverview struct {
	ID          string      `json:"id"`
	SubjectCode string      `json:"subject_code"`
	SubjectName string      `json:"subject_name"`
	Type        SubjectType `json:"type"`
	Faculties   []string    `json:"faculties"`
	Semester    int         `json:"semester"`
	Year        int         `json:"year"`
	CreatedAt   time.Time   `json:"created_at"`
}
