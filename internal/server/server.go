package server

import (
	"strings"
	"time"

	"github.com/TheDemonTuan/client-score-management/internal/cache"
	"github.com/TheDemonTuan/client-score-management/internal/cachesync"
	"github.com/TheDemonTuan/client-score-management/internal/collection"
	"github.com/TheDemonTuan/client-score-management/internal/config"
	"github.com/TheDemonTuan/client-score-management/internal/entity"
	"github.com/TheDemonTuan/client-score-management/internal/middleware"
	"github.com/TheDemonTuan/client-score-management/internal/upstream"

	assignmentHttp "github.com/TheDemonTuan/client-score-management/internal/modules/assignment/delivery/http"
	assignmentService "github.com/TheDemonTuan/client-score-management/internal/modules/assignment/service"

	classHttp "github.com/TheDemonTuan/client-score-management/internal/modules/class/delivery/http"
	classService "github.com/TheDemonTuan/client-score-management/internal/modules/class/service"

	departmentHttp "github.com/TheDemonTuan/client-score-management/internal/modules/department/delivery/http"
	departmentService "github.com/TheDemonTuan/client-score-management/internal/modules/department/service"

	instructorHttp "github.com/TheDemonTuan/client-score-management/internal/modules/instructor/delivery/http"
	instructorService "github.com/TheDemonTuan/client-score-management/internal/modules/instructor/service"

	registrationHttp "github.com/TheDemonTuan/client-score-management/internal/modules/registration/delivery/http"
	registrationService "github.com/TheDemonTuan/client-score-management/internal/modules/registration/service"

	studentHttp "github.com/TheDemonTuan/client-score-management/internal/modules/student/delivery/http"
	studentService "github.com/TheDemonTuan/client-score-management/internal/modules/student/service"

	subjectHttp "github.com/TheDemonTuan/client-score-management/internal/modules/subject/delivery/http"
	subjectService "github.com/TheDemonTuan/client-score-management/internal/modules/subject/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	engine *gin.Engine
	store  cache.Store
}

func New(cfg *config.Config, store cache.Store) *Server {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	client := upstream.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)
	syncer := cachesync.NewEngine(store)

	departmentSvc := departmentService.NewDepartmentService(
		collection.NewService(entity.TypeDepartment, upstream.NewResource[entity.Department](client, entity.TypeDepartment), store, syncer))
	departmentHandler := departmentHttp.NewDepartmentHandler(departmentSvc)

	instructorSvc := instructorService.NewInstructorService(
		collection.NewService(entity.TypeInstructor, upstream.NewResource[entity.Instructor](client, entity.TypeInstructor), store, syncer))
	instructorHandler := instructorHttp.NewInstructorHandler(instructorSvc)

	studentSvc := studentService.NewStudentService(
		collection.NewService(entity.TypeStudent, upstream.NewResource[entity.Student](client, entity.TypeStudent), store, syncer))
	studentHandler := studentHttp.NewStudentHandler(studentSvc)

	classSvc := classService.NewClassService(
		collection.NewService(entity.TypeClass, upstream.NewResource[entity.Class](client, entity.TypeClass), store, syncer))
	classHandler := classHttp.NewClassHandler(classSvc)

	subjectSvc := subjectService.NewSubjectService(
		collection.NewService(entity.TypeSubject, upstream.NewResource[entity.Subject](client, entity.TypeSubject), store, syncer))
	subjectHandler := subjectHttp.NewSubjectHandler(subjectSvc)

	assignmentSvc := assignmentService.NewAssignmentService(
		collection.NewService(entity.TypeAssignment, upstream.NewResource[entity.Assignment](client, entity.TypeAssignment), store, syncer))
	assignmentHandler := assignmentHttp.NewAssignmentHandler(assignmentSvc)

	registrationSvc := registrationService.NewRegistrationService(
		collection.NewService(entity.TypeRegistration, upstream.NewResource[entity.Registration](client, entity.TypeRegistration), store, syncer))
	registrationHandler := registrationHttp.NewRegistrationHandler(registrationSvc)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	setupCORS(router, cfg)

	api := router.Group("/api")
	{
		api.GET("/departments", departmentHandler.GetAllDepartments)
		api.POST("/departments", departmentHandler.CreateDepartment)
		api.PUT("/departments/:id", departmentHandler.UpdateDepartment)
		api.DELETE("/departments/:id", departmentHandler.DeleteDepartment)

		api.GET("/instructors", instructorHandler.GetAllInstructors)
		api.POST("/instructors", instructorHandler.CreateInstructor)
		api.PUT("/instructors/:id", instructorHandler.UpdateInstructor)
		api.DELETE("/instructors/:id", instructorHandler.DeleteInstructor)

		api.GET("/students", studentHandler.GetAllStudents)
		api.POST("/students", studentHandler.CreateStudent)
		api.PUT("/students/:id", studentHandler.UpdateStudent)
		api.DELETE("/students/:id", studentHandler.DeleteStudent)

		api.GET("/classes", classHandler.GetAllClasses)
		api.POST("/classes", classHandler.CreateClass)
		api.PUT("/classes/:id", classHandler.UpdateClass)
		api.DELETE("/classes/:id", classHandler.DeleteClass)

		api.GET("/subjects", subjectHandler.GetAllSubjects)
		api.POST("/subjects", subjectHandler.CreateSubject)
		api.PUT("/subjects/:id", subjectHandler.UpdateSubject)
		api.DELETE("/subjects/:id", subjectHandler.DeleteSubject)

		api.GET("/assignments", assignmentHandler.GetAllAssignments)
		api.POST("/assignments", assignmentHandler.CreateAssignment)
		api.PUT("/assignments/:id", assignmentHandler.UpdateAssignment)
		api.DELETE("/assignments/:id", assignmentHandler.DeleteAssignment)

		api.GET("/registrations", registrationHandler.GetAllRegistrations)
		api.POST("/registrations", registrationHandler.CreateRegistration)
		api.DELETE("/registrations/:id", registrationHandler.DeleteRegistration)
	}

	return &Server{
		engine: router,
		store:  store,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, cfg *config.Config) {
	origins := strings.Split(cfg.AllowedOrigins, ",")

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
