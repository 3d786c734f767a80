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
	"github.com/rs/zerolog"

	"github.com/noah-isme/research-connect-api/internal/config"
	"github.com/noah-isme/research-connect-api/internal/database"
	"github.com/noah-isme/research-connect-api/internal/handler"
	"github.com/noah-isme/research-connect-api/internal/middleware"
	"github.com/noah-isme/research-connect-api/internal/models"
	"github.com/noah-isme/research-connect-api/internal/repository"
	"github.com/noah-isme/research-connect-api/internal/router"
	"github.com/noah-isme/research-connect-api/internal/service"
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
		&models.Student{},
		&models.Faculty{},
		&models.Admin{},
		&models.Skill{},
		&models.Project{},
		&models.ProjectMember{},
		&models.Application{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	validate := validator.New(validator.WithRequiredStructEnabled())

	studentRepo := repository.NewStudentRepository(db)
	facultyRepo := repository.NewFacultyRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	reportRepo := repository.NewReportRepository(db)

	authService := service.NewAuthService(studentRepo, facultyRepo, adminRepo, validate, cfg.JWTSecret, cfg.TokenTTL, logger)
	studentService := service.NewStudentService(studentRepo, skillRepo, validate, logger)
	facultyService := service.NewFacultyService(facultyRepo, validate, logger)
	skillService := service.NewSkillService(skillRepo, validate, logger)
	projectService := service.NewProjectService(projectRepo, skillRepo, validate, logger)
	applicationService := service.NewApplicationService(applicationRepo, projectRepo, validate, logger)
	adminService := service.NewAdminService(reportRepo, studentRepo, facultyRepo, redisClient, cfg.SummaryCacheTTL, logger)

	authHandler := handler.NewAuthHandler(authService, logger)
	studentHandler := handler.NewStudentHandler(studentService, logger)
	facultyHandler := handler.NewFacultyHandler(facultyService, logger)
	skillHandler := handler.NewSkillHandler(skillService, logger)
	projectHandler := handler.NewProjectHandler(projectService, logger)
	applicationHandler := handler.NewApplicationHandler(applicationService, logger)
	adminHandler := handler.NewAdminHandler(adminService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:        authHandler,
		StudentHandler:     studentHandler,
		FacultyHandler:     facultyHandler,
		SkillHandler:       skillHandler,
		ProjectHandler:     projectHandler,
		ApplicationHandler: applicationHandler,
		AdminHandler:       adminHandler,
		JWTMiddleware:      middleware.JWTProtected(cfg.JWTSecret),
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
