package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/studyhive/studyhive-api/api/swagger"
	"github.com/studyhive/studyhive-api/internal/handler"
	"github.com/studyhive/studyhive-api/internal/middleware"
	"github.com/studyhive/studyhive-api/internal/repository"
	"github.com/studyhive/studyhive-api/internal/service"
	"github.com/studyhive/studyhive-api/pkg/config"
	"github.com/studyhive/studyhive-api/pkg/database"
	"github.com/studyhive/studyhive-api/pkg/logger"
	corsmiddleware "github.com/studyhive/studyhive-api/pkg/middleware/cors"
	reqidmiddleware "github.com/studyhive/studyhive-api/pkg/middleware/requestid"
)

// @title StudyHive API
// @version 1.0.0
// @description Assignment submission and grading backend
// @BasePath /
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

	ctx := context.Background()

	client, err := database.NewMongo(ctx, cfg.Mongo)
	if err != nil {
		logr.Sugar().Fatalw("failed to construct mongo client", "error", err)
	}

	// Fail-open startup: a failed ping is logged, not fatal. The client
	// reconnects lazily; requests fail per-call until the store is back.
	if err := database.Ping(ctx, client, cfg.Mongo); err != nil {
		logr.Sugar().Errorw("mongo ping failed, serving anyway", "error", err)
	} else {
		logr.Sugar().Infow("connected to mongo", "database", cfg.Mongo.Database)
	}

	db := client.Database(cfg.Mongo.Database)

	assignmentRepo := repository.NewAssignmentRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	userRepo := repository.NewUserRepository(db)

	validate := validator.New()

	authSvc := service.NewAuthService(cfg.JWT, logr)
	assignmentSvc := service.NewAssignmentService(assignmentRepo, userRepo, logr)
	submissionSvc := service.NewSubmissionService(submissionRepo, logr)
	userSvc := service.NewUserService(userRepo, validate, logr)
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

	handlers := handler.Handlers{
		Auth:        handler.NewAuthHandler(authSvc, cfg),
		Assignments: handler.NewAssignmentHandler(assignmentSvc),
		Submissions: handler.NewSubmissionHandler(submissionSvc),
		Users:       handler.NewUserHandler(userSvc),
		Metrics:     handler.NewMetricsHandler(metricsSvc),
	}

	handler.RegisterRoutes(r, cfg.APIPrefix, handlers, middleware.Auth(authSvc, cfg.JWT.CookieName))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
