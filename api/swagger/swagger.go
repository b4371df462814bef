package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "College ADP API",
        "description": "Academic department portal backend",
        "version": "0.1.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Registration and login"},
        {"name": "Director", "description": "Department administration"},
        {"name": "HOD", "description": "Class and elective offering administration"},
        {"name": "ClassTeacher", "description": "Roster, batch and import management"},
        {"name": "Faculty", "description": "Assigned subjects and students"},
        {"name": "Defaulter", "description": "Remedial work fan-out"},
        {"name": "Submission", "description": "Submission status tracking"},
        {"name": "Student", "description": "Student self-service"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/auth/register": {
            "post": {
                "tags": ["Auth"],
                "summary": "Register a staff account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/SuccessEnvelope"}},
                    "400": {"description": "User already exists", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Staff login",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Token issued", "schema": {"$ref": "#/definitions/SuccessEnvelope"}},
                    "400": {"description": "Invalid credentials or unscoped account", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/auth/student/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Student login by hall ticket number",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentLoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Token issued", "schema": {"$ref": "#/definitions/SuccessEnvelope"}},
                    "400": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/director/departments": {
            "get": {
                "tags": ["Director"],
                "summary": "List departments with their HODs",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessEnvelope"}}
                }
            },
            "post": {
                "tags": ["Director"],
                "summary": "Create a department",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/SuccessEnvelope"}}
                }
            }
        },
        "/director/departments/{id}": {
            "delete": {
                "tags": ["Director"],
                "summary": "Delete a department",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/SuccessEnvelope"}}
                }
            }
        },
        "/director/hods": {
            "get": {
                "tags": ["Director"],
                "summary": "List staff eligible for HOD assignment",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessEnvelope"}}
                }
            }
        },
        "/director/assign-hod": {
            "post": {
                "tags": ["Director"],
                "summary": "Assign a HOD to a department",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Assigned", "schema": {"$ref": "#/definitions/SuccessEnvelope"}}
                }
            }
        },
        "/hod/classes": {
            "get": {
                "tags": ["HOD"],
                "summary": "List the department's classes",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessEnvelope"}}
                }
            },
            "post": {
                "tags": ["HOD"],
                "summary": "Create a class",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/SuccessEnvelope"}}
                }
            }
        },
        "/hod/classes/{id}": {
            "put": {
                "tags": ["HOD"],
                "summary": "Update a class",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/SuccessEnvelope"}}
                }
            },
            "delete": {
                "tags": ["HOD"],
                "summary": "Delete a class",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/SuccessEnvelope"}}
                }
            }
        },
        "/hod/faculties": {
            "get": {
                "tags": ["HOD"],
                "summary": "List the department's faculty",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessEnvelope"}}
                }
            }
        },
        "/hod/class-teachers": {
            "get": {
                "tags": ["HOD"],
                "summary": "List the department's class teachers",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessEnvelope"}}
                }
            }
        },
        "/hod/offered-subjects": {
            "get": {
                "tags": ["HOD"],
                "summary": "List the department's elective offerings",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessEnvelope"}}
                }
            }
        },
        "/hod/add-offered-subject": {
            "post": {
                "tags": ["HOD"],
                "summary": "Create a subject and offer it as an elective",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/SuccessEnvelope"}}
                }
            }
        },
        "/hod/offered-subjects/{id}": {
            "delete": {
                "tags": ["HOD"],
                "summary": "Delete an elective offering",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/SuccessEnvelope"}}
                }
            }
        },
        "/classteacher/students": {
            "get": {
                "tags": ["ClassTeacher"],
                "summary": "List the class roster",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessEnvelope"}}
                }
            }
        },
        "/classteacher/student/{id}": {
            "put": {
                "tags": ["ClassTeacher"],
                "summary": "Update a student of the class",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/SuccessEnvelope"}},
                    "403": {"description": "Student belongs to another class", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "delete": {
                "tags": ["ClassTeacher"],
                "summary": "Delete a student of the class",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/SuccessEnvelope"}}
                }
            }
        },
        "/classteacher/batches": {
            "get": {
                "tags": ["ClassTeacher"],
                "summary": "List the class's practical batches",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessEnvelope"}}
                }
            }
        },
        "/classteacher/faculties": {
            "get": {
                "tags": ["ClassTeacher"],
                "summary": "List teaching staff for assignment pickers",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessEnvelope"}}
                }
            }
        },
        "/classteacher/subjects/assign": {
            "post": {
                "tags": ["ClassTeacher"],
                "summary": "Create a subject for the class and bind its faculty",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/SuccessEnvelope"}},
                    "400": {"description": "Subject code already exists", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/classteacher/create-batch": {
            "post": {
                "tags": ["ClassTeacher"],
                "summary": "Create a practical batch and bind students by roll range",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/SuccessEnvelope"}}
                }
            }
        },
        "/classteacher/import-students": {
            "post": {
                "tags": ["ClassTeacher"],
                "summary": "Bulk import students from a CSV file",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "200": {"description": "Import summary", "schema": {"$ref": "#/definitions/SuccessEnvelope"}},
                    "400": {"description": "Missing columns or empty file", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/classteacher/defaulters/export": {
            "get": {
                "tags": ["ClassTeacher"],
                "summary": "Download the class defaulter report",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Report file"}
                }
            }
        },
        "/faculty/subjects": {
            "get": {
                "tags": ["Faculty"],
                "summary": "List the faculty's assigned subjects",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessEnvelope"}}
                }
            }
        },
        "/faculty/students": {
            "get": {
                "tags": ["Faculty"],
                "summary": "List students covered by the faculty's assignments",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessEnvelope"}}
                }
            }
        },
        "/defaulter/assign-defaulter-work": {
            "post": {
                "tags": ["Defaulter"],
                "summary": "Fan remedial work out to defaulter students",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Assignments recorded", "schema": {"$ref": "#/definitions/SuccessEnvelope"}}
                }
            }
        },
        "/submission/mark-submission": {
            "post": {
                "tags": ["Submission"],
                "summary": "Mark a student submission status",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Marked", "schema": {"$ref": "#/definitions/SuccessEnvelope"}}
                }
            }
        },
        "/student/select-elective": {
            "post": {
                "tags": ["Student"],
                "summary": "Record an elective choice",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Selection stored", "schema": {"$ref": "#/definitions/SuccessEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "RegisterRequest": {
            "type": "object",
            "required": ["name", "email", "password", "role"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["director", "hod", "class_teacher", "faculty"]},
                "department_id": {"type": "string"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "StudentLoginRequest": {
            "type": "object",
            "required": ["hall_ticket_number", "password"],
            "properties": {
                "hall_ticket_number": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "SuccessEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"}
            }
        },
        "ErrorEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "error": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
