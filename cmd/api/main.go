package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/campushq/college-adp-api/api/swagger"
	"github.com/campushq/college-adp-api/internal/handler"
	"github.com/campushq/college-adp-api/internal/middleware"
	"github.com/campushq/college-adp-api/internal/repository"
	"github.com/campushq/college-adp-api/internal/service"
	"github.com/campushq/college-adp-api/pkg/config"
	"github.com/campushq/college-adp-api/pkg/database"
	"github.com/campushq/college-adp-api/pkg/logger"
	corsmiddleware "github.com/campushq/college-adp-api/pkg/middleware/cors"
	reqidmiddleware "github.com/campushq/college-adp-api/pkg/middleware/requestid"
)

// @title College ADP API
// @version 0.1.0
// @description Academic department portal backend
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect database", "error", err)
	}
	defer db.Close()

	if err := os.MkdirAll(cfg.Uploads.Dir, 0o755); err != nil {
		logr.Sugar().Fatalw("failed to create uploads dir", "error", err)
	}

	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	classRepo := repository.NewClassRepository(db)
	batchRepo := repository.NewBatchRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	facultySubjectRepo := repository.NewFacultySubjectRepository(db)
	offeredSubjectRepo := repository.NewOfferedSubjectRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	electiveRepo := repository.NewElectiveRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)

	authSvc := service.NewAuthService(userRepo, classRepo, facultySubjectRepo, studentRepo, validate, logr, service.AuthConfig{
		Secret:      cfg.JWT.Secret,
		TokenExpiry: cfg.JWT.Expiration,
	})
	departmentSvc := service.NewDepartmentService(departmentRepo, userRepo, validate, logr)
	classSvc := service.NewClassService(classRepo, userRepo, validate, logr)
	offeringSvc := service.NewOfferingService(offeredSubjectRepo, subjectRepo, facultySubjectRepo, userRepo, validate, logr)
	rosterSvc := service.NewRosterService(studentRepo, batchRepo, classRepo, userRepo, subjectRepo, facultySubjectRepo, validate, logr)
	importSvc := service.NewImportService(studentRepo, logr)
	facultySvc := service.NewFacultyService(facultySubjectRepo, studentRepo, subjectRepo, logr)
	defaulterSvc := service.NewDefaulterService(facultySubjectRepo, studentRepo, submissionRepo, validate, logr)
	submissionSvc := service.NewSubmissionService(facultySubjectRepo, submissionRepo, validate, logr)
	electiveSvc := service.NewElectiveService(facultySubjectRepo, electiveRepo, validate, logr)
	exportSvc := service.NewExportService(studentRepo, logr)
	metricsSvc := service.NewMetricsService()

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.RegisterRoutes(r, cfg.APIPrefix, authSvc, handler.Handlers{
		Auth:         handler.NewAuthHandler(authSvc),
		Director:     handler.NewDirectorHandler(departmentSvc),
		HOD:          handler.NewHODHandler(classSvc, offeringSvc),
		ClassTeacher: handler.NewClassTeacherHandler(rosterSvc, importSvc, exportSvc, metricsSvc, cfg.Uploads.Dir),
		Faculty:      handler.NewFacultyHandler(facultySvc),
		Defaulter:    handler.NewDefaulterHandler(defaulterSvc),
		Submission:   handler.NewSubmissionHandler(submissionSvc),
		Student:      handler.NewStudentHandler(electiveSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
