package models

import "time"

// Department groups classes, subjects and staff under one academic unit.
type Department struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// DepartmentOverview is the director's listing row: a department joined
// with its currently assigned HOD, if any.
type DepartmentOverview struct {
	ID    string  `db:"id" json:"id"`
	Name  string  `db:"name" json:"name"`
	HOD   *string `db:"hod" json:"hod"`
	HODID *string `db:"hod_id" json:"hod_id"`
}
