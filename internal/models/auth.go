package models

import "github.com/golang-jwt/jwt/v5"

// RegisterRequest holds the payload for creating a staff account.
type RegisterRequest struct {
	Name         string  `json:"name" validate:"required"`
	Email        string  `json:"email" validate:"required,email"`
	Password     string  `json:"password" validate:"required"`
	Role         string  `json:"role" validate:"required,oneof=director hod class_teacher faculty"`
	DepartmentID *string `json:"department_id"`
}

// LoginRequest holds staff credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// StudentLoginRequest authenticates a student by hall ticket number.
type StudentLoginRequest struct {
	HallTicketNumber string `json:"hall_ticket_number" validate:"required"`
	Password         string `json:"password" validate:"required"`
}

// JWTClaims is the session token payload. Scope claims are role-conditional:
// class teachers and faculty carry a class id, HODs a department id, and
// students both class and batch ids. Directors carry no extra scope.
type JWTClaims struct {
	UserID       string   `json:"id"`
	Role         UserRole `json:"role"`
	ClassID      string   `json:"class_id,omitempty"`
	DepartmentID string   `json:"department_id,omitempty"`
	BatchID      string   `json:"batch_id,omitempty"`
	jwt.RegisteredClaims
}

// UserInfo describes the authenticated staff member in login responses.
type UserInfo struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Role         UserRole `json:"role"`
	Email        string   `json:"email"`
	ClassID      *string  `json:"class_id"`
	DepartmentID *string  `json:"department_id"`
}

// StudentInfo describes the authenticated student in login responses.
type StudentInfo struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	RollNo           string  `json:"roll_no"`
	HallTicketNumber string  `json:"hall_ticket_number"`
	Email            *string `json:"email"`
	Mobile           *string `json:"mobile"`
	ClassID          string  `json:"class_id"`
	BatchID          *string `json:"batch_id"`
	Defaulter        bool    `json:"defaulter"`
}
