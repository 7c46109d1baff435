package main

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/SeanSun10/ProjectManager/internal/config"
	"github.com/SeanSun10/ProjectManager/internal/database"
	"github.com/SeanSun10/ProjectManager/internal/handlers"
	"github.com/SeanSun10/ProjectManager/internal/logger"
	"github.com/SeanSun10/ProjectManager/internal/middleware"
	"github.com/SeanSun10/ProjectManager/internal/repository"
	"github.com/SeanSun10/ProjectManager/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.File); err != nil {
		logger.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the initial superuser
	if err := database.SeedAdmin(&cfg.Admin); err != nil {
		logger.Fatalf("Failed to seed admin user: %v", err)
	}

	db := database.GetDB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	sprintRepo := repository.NewSprintRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	memberRepo := repository.NewTeamMemberRepository(db)
	costRepo := repository.NewCostRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	// Services
	activityService := services.NewActivityService(activityRepo)
	authService := services.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.ExpireHours)
	projectService := services.NewProjectService(projectRepo, activityService)
	sprintService := services.NewSprintService(sprintRepo, activityService)
	taskService := services.NewTaskService(taskRepo, activityService)
	memberService := services.NewTeamMemberService(memberRepo)
	costService := services.NewCostService(costRepo)
	statsService := services.NewStatsService(projectRepo, statsRepo, activityRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	projectHandler := handlers.NewProjectHandler(projectService, statsService)
	sprintHandler := handlers.NewSprintHandler(sprintService, taskService)
	taskHandler := handlers.NewTaskHandler(taskService)
	memberHandler := handlers.NewTeamMemberHandler(memberService)
	costHandler := handlers.NewCostHandler(costService, statsService)
	activityHandler := handlers.NewActivityHandler(activityService)
	statisticsHandler := handlers.NewStatisticsHandler(statsService)

	// Initialize Gin router
	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Project Manager API is running",
		})
	})

	requireAuth := middleware.RequireAuth(cfg.JWT.Secret, userRepo)

	// API routes
	api := r.Group("/api/v1")
	{
		// Auth routes (register/login public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", requireAuth, authHandler.Me)
		}

		// Project routes (protected)
		projects := api.Group("/projects")
		projects.Use(requireAuth)
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.GET("/:id/stats", projectHandler.GetProjectStats)
			projects.GET("/:id/activities", projectHandler.GetProjectActivities)
		}

		// Sprint routes (protected)
		sprints := api.Group("/sprints")
		sprints.Use(requireAuth)
		{
			sprints.POST("", sprintHandler.CreateSprint)
			sprints.GET("", sprintHandler.ListSprints)
			sprints.GET("/:id", sprintHandler.GetSprint)
			sprints.GET("/:id/tasks", sprintHandler.GetSprintTasks)
			sprints.PUT("/:id", sprintHandler.UpdateSprint)
			sprints.DELETE("/:id", sprintHandler.DeleteSprint)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(requireAuth)
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("", taskHandler.ListTasks)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		// Team member routes (protected)
		members := api.Group("/team-members")
		members.Use(requireAuth)
		{
			members.POST("", memberHandler.CreateTeamMember)
			members.GET("", memberHandler.ListTeamMembers)
			members.GET("/:id", memberHandler.GetTeamMember)
			members.PUT("/:id", memberHandler.UpdateTeamMember)
			members.DELETE("/:id", memberHandler.DeleteTeamMember)
			members.POST("/project-members", memberHandler.AddProjectMember)
			members.GET("/projects/:project_id", memberHandler.ListProjectMembers)
		}

		// Cost record routes (protected)
		costs := api.Group("/costs")
		costs.Use(requireAuth)
		{
			costs.POST("", costHandler.CreateCostRecord)
			costs.GET("", costHandler.ListCostRecords)
			costs.GET("/:id", costHandler.GetCostRecord)
			costs.PUT("/:id", costHandler.UpdateCostRecord)
			costs.DELETE("/:id", costHandler.DeleteCostRecord)
			costs.GET("/projects/:project_id", costHandler.ListProjectCostRecords)
			costs.GET("/projects/:project_id/stats", costHandler.GetProjectCostStats)
		}

		// Activity routes (protected)
		activities := api.Group("/activities")
		activities.Use(requireAuth)
		{
			activities.POST("", activityHandler.CreateActivity)
			activities.GET("", activityHandler.ListActivities)
		}

		// System statistics (protected)
		api.GET("/statistics", requireAuth, statisticsHandler.GetSystemStatistics)
	}

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Infof("server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
