package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"planner/backend/internal/cache"
	"planner/backend/internal/config"
	"planner/backend/internal/handlers"
	"planner/backend/internal/middleware"
	"planner/backend/internal/monitoring"
	"planner/backend/internal/services"
	"planner/backend/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := store.Open(cfg.Database)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer db.Close()

	var redisCache *cache.RedisCache
	if cfg.Redis.Enabled {
		rc := cache.NewRedisCache(&cache.CacheConfig{
			Addr:         cfg.GetRedisAddr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			MaxRetries:   cfg.Redis.MaxRetries,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err := rc.Health(); err != nil {
			log.Printf("redis unavailable, continuing without cache: %v", err)
			rc.Close()
		} else {
			redisCache = rc
			defer rc.Close()
		}
	}

	router := setupRouter(cfg, db, redisCache)

	srv := &http.Server{
		Addr:         cfg.GetServerAddr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.WriteTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func setupRouter(cfg *config.Config, db *store.Store, redisCache *cache.RedisCache) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(monitoring.MetricsMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
	}))

	if cfg.RateLimit.Enabled {
		router.Use(middleware.NewRateLimiter(cfg.RateLimit).Middleware())
	}

	var taskService services.TaskService = services.NewTaskService(db)
	if redisCache != nil {
		taskService = services.NewCachedTaskService(taskService, redisCache)
	}

	areaHandler := handlers.NewAreaHandler(services.NewAreaService(db, redisCache))
	projectHandler := handlers.NewProjectHandler(services.NewProjectService(db, redisCache))
	taskHandler := handlers.NewTaskHandler(taskService)
	subtaskHandler := handlers.NewSubtaskHandler(services.NewSubtaskService(db, redisCache))

	monitoring.RegisterHealthCheck("database", db.Ping)

	registerRoutes(router, areaHandler, projectHandler, taskHandler, subtaskHandler)

	return router
}

func registerRoutes(router *gin.Engine, areas *handlers.AreaHandler, projects *handlers.ProjectHandler, tasks *handlers.TaskHandler, subtasks *handlers.SubtaskHandler) {
	router.POST("/areas", areas.CreateArea)
	router.GET("/areas", areas.GetAreas)
	router.GET("/areas/:id", areas.GetAreaByID)
	router.PUT("/areas/:id", areas.UpdateArea)
	router.DELETE("/areas/:id", areas.DeleteArea)
	router.GET("/areas/:id/projects", projects.GetProjectsByArea)

	router.POST("/projects", projects.CreateProject)
	router.GET("/projects", projects.GetProjects)
	router.GET("/projects/:id", projects.GetProjectByID)
	router.PUT("/projects/:id", projects.UpdateProject)
	router.DELETE("/projects/:id", projects.DeleteProject)
	router.GET("/projects/:id/tasks", tasks.GetTasksByProject)

	router.POST("/tasks", tasks.CreateTask)
	router.GET("/tasks", tasks.GetTasks)
	router.GET("/tasks/:id", tasks.GetTaskByID)
	router.PUT("/tasks/:id", tasks.UpdateTask)
	router.PUT("/tasks/:id/complete", tasks.CompleteTask)
	router.PUT("/tasks/:id/not_complete", tasks.NotCompleteTask)
	router.DELETE("/tasks/:id", tasks.DeleteTask)

	router.POST("/tasks/:id/subtasks", subtasks.CreateSubtask)
	router.GET("/tasks/:id/subtasks", subtasks.GetSubtasks)
	// The update route is POST and the delete path is singular; both are
	// part of the published contract.
	router.POST("/subtasks/:id", subtasks.UpdateSubtask)
	router.DELETE("/subtask/:id", subtasks.DeleteSubtask)

	router.GET("/health", monitoring.HealthHandler)
	router.GET("/metrics", monitoring.MetricsHandler)
}
