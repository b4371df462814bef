package models

import "time"

// Batch is a roll-number-range subdivision of a class, typically used for
// practical sessions.
type Batch struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	RollStart int       `db:"roll_start" json:"roll_start"`
	RollEnd   int       `db:"roll_end" json:"roll_end"`
	FacultyID string    `db:"faculty_id" json:"faculty_id"`
	ClassID   string    `db:"class_id" json:"class_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
