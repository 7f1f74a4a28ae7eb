package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/okoak/evaluation-api/internal/config"
	"github.com/okoak/evaluation-api/internal/database"
	"github.com/okoak/evaluation-api/internal/handler"
	"github.com/okoak/evaluation-api/internal/middleware"
	"github.com/okoak/evaluation-api/internal/models"
	"github.com/okoak/evaluation-api/internal/repository"
	"github.com/okoak/evaluation-api/internal/router"
	"github.com/okoak/evaluation-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.EvaluationPeriod{},
		&models.EvaluationTopic{},
		&models.Indicator{},
		&models.EvidenceType{},
		&models.IndicatorEvidence{},
		&models.Assignment{},
		&models.EvaluationResult{},
		&models.VocationalCategory{},
		&models.OrgGroup{},
		&models.Department{},
		&models.VocationalField{},
		&models.DeptField{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	} else {
		logger.Warn().Msg("redis url not configured, progress caching disabled")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	periodRepo := repository.NewPeriodRepository(db)
	topicRepo := repository.NewTopicRepository(db)
	indicatorRepo := repository.NewIndicatorRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	resultRepo := repository.NewResultRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	referenceRepo := repository.NewReferenceRepository(db)

	periodService := service.NewPeriodService(periodRepo, validate, logger)
	topicService := service.NewTopicService(topicRepo, validate, logger)
	indicatorService := service.NewIndicatorService(indicatorRepo, referenceRepo, validate, logger)
	assignmentService := service.NewAssignmentService(assignmentRepo, referenceRepo, validate, logger)
	resultService := service.NewResultService(resultRepo, referenceRepo, validate, logger)
	departmentService := service.NewDepartmentService(departmentRepo, logger)
	progressService := service.NewProgressService(assignmentRepo, resultRepo, referenceRepo, redisClient, cfg.ProgressCacheTTL, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		PeriodHandler:     handler.NewPeriodHandler(periodService, logger),
		TopicHandler:      handler.NewTopicHandler(topicService, logger),
		IndicatorHandler:  handler.NewIndicatorHandler(indicatorService, logger),
		AssignmentHandler: handler.NewAssignmentHandler(assignmentService, logger),
		ResultHandler:     handler.NewResultHandler(resultService, logger),
		DepartmentHandler: handler.NewDepartmentHandler(departmentService, logger),
		ProgressHandler:   handler.NewProgressHandler(progressService, logger),
		JWTMiddleware:     middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
