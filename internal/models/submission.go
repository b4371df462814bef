package models

import "time"

// SubmissionStatus is the state of a tracked student submission.
type SubmissionStatus string

const (
	SubmissionPending   SubmissionStatus = "pending"
	SubmissionCompleted SubmissionStatus = "completed"
)

// SubmissionType is a named submission category such as "TA" or "CIE".
type SubmissionType struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// StudentSubmission is the per-(student, subject, type) status record.
// At most one row exists per triple; marking uses upsert semantics.
type StudentSubmission struct {
	ID               string           `db:"id" json:"id"`
	StudentID        string           `db:"student_id" json:"student_id"`
	SubjectID        string           `db:"subject_id" json:"subject_id"`
	SubmissionTypeID string           `db:"submission_type_id" json:"submission_type_id"`
	Status           SubmissionStatus `db:"status" json:"status"`
	MarkedBy         string           `db:"marked_by" json:"marked_by"`
	MarkedAt         time.Time        `db:"marked_at" json:"marked_at"`
}

// DefaulterSubmission is one fan-out work assignment to a defaulter
// student. Rows accumulate; repeated assignment is not deduplicated.
type DefaulterSubmission struct {
	ID             string    `db:"id" json:"id"`
	StudentID      string    `db:"student_id" json:"student_id"`
	SubjectID      string    `db:"subject_id" json:"subject_id"`
	FacultyID      string    `db:"faculty_id" json:"faculty_id"`
	SubmissionText string    `db:"submission_text" json:"submission_text"`
	ReferenceLink  *string   `db:"reference_link" json:"reference_link,omitempty"`
	Skip           bool      `db:"skip" json:"skip"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
