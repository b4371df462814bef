package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/campushq/college-adp-api/internal/middleware"
	"github.com/campushq/college-adp-api/internal/models"
	"github.com/campushq/college-adp-api/internal/service"
)

// Handlers bundles the API's handler set for route registration.
type Handlers struct {
	Auth         *AuthHandler
	Director     *DirectorHandler
	HOD          *HODHandler
	ClassTeacher *ClassTeacherHandler
	Faculty      *FacultyHandler
	Defaulter    *DefaulterHandler
	Submission   *SubmissionHandler
	Student      *StudentHandler
}

// RegisterRoutes wires the API route tree under the given prefix.
func RegisterRoutes(r *gin.Engine, prefix string, auth *service.AuthService, h Handlers) {
	api := r.Group(prefix)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/student/login", h.Auth.StudentLogin)
	}

	protected := api.Group("")
	protected.Use(middleware.JWT(auth))

	director := protected.Group("/director", middleware.RequireRoles(models.RoleDirector))
	{
		director.GET("/departments", h.Director.ListDepartments)
		director.POST("/departments", h.Director.CreateDepartment)
		director.DELETE("/departments/:id", h.Director.DeleteDepartment)
		director.GET("/hods", h.Director.ListHODCandidates)
		director.POST("/assign-hod", h.Director.AssignHOD)
	}

	hod := protected.Group("/hod", middleware.RequireRoles(models.RoleHOD))
	{
		hod.GET("/classes", h.HOD.ListClasses)
		hod.POST("/classes", h.HOD.CreateClass)
		hod.PUT("/classes/:id", h.HOD.UpdateClass)
		hod.DELETE("/classes/:id", h.HOD.DeleteClass)
		hod.GET("/faculties", h.HOD.ListFaculties)
		hod.GET("/class-teachers", h.HOD.ListClassTeachers)
		hod.GET("/offered-subjects", h.HOD.ListOfferedSubjects)
		hod.POST("/add-offered-subject", h.HOD.AddOfferedSubject)
		hod.DELETE("/offered-subjects/:id", h.HOD.DeleteOfferedSubject)
	}

	classTeacher := protected.Group("/classteacher", middleware.RequireRoles(models.RoleClassTeacher, models.RoleFaculty))
	{
		classTeacher.GET("/students", h.ClassTeacher.ListStudents)
		classTeacher.PUT("/student/:id", h.ClassTeacher.UpdateStudent)
		classTeacher.DELETE("/student/:id", h.ClassTeacher.DeleteStudent)
		classTeacher.GET("/batches", h.ClassTeacher.ListBatches)
		classTeacher.GET("/faculties", h.ClassTeacher.ListFaculties)
		classTeacher.POST("/subjects/assign", h.ClassTeacher.AssignSubject)
		classTeacher.POST("/import-students", h.ClassTeacher.ImportStudents)
		classTeacher.GET("/defaulters/export", h.ClassTeacher.ExportDefaulters)
	}
	protected.POST("/classteacher/create-batch",
		middleware.RequireRoles(models.RoleClassTeacher, models.RoleHOD),
		h.ClassTeacher.CreateBatch)

	faculty := protected.Group("/faculty", middleware.RequireRoles(models.RoleFaculty))
	{
		faculty.GET("/subjects", h.Faculty.ListSubjects)
		faculty.GET("/students", h.Faculty.ListStudents)
	}

	defaulter := protected.Group("/defaulter", middleware.RequireRoles(models.RoleFaculty, models.RoleHOD, models.RoleClassTeacher))
	{
		defaulter.POST("/assign-defaulter-work", h.Defaulter.AssignWork)
	}

	submission := protected.Group("/submission", middleware.RequireRoles(models.RoleFaculty, models.RoleClassTeacher, models.RoleHOD))
	{
		submission.POST("/mark-submission", h.Submission.Mark)
	}

	student := protected.Group("/student", middleware.RequireRoles(models.RoleStudent))
	{
		student.POST("/select-elective", h.Student.SelectElective)
	}
}
