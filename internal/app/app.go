package app

import (
	"context"
	"errors"
	"fmt"

	"gemmarket_backend/internal/auth"
	"gemmarket_backend/internal/config"
	"gemmarket_backend/internal/database"
	"gemmarket_backend/internal/email"
	"gemmarket_backend/internal/handlers"
	"gemmarket_backend/internal/logger"
	"gemmarket_backend/internal/middleware"
	"gemmarket_backend/internal/models"
	"gemmarket_backend/internal/repositories"
	"gemmarket_backend/internal/routes"
	"gemmarket_backend/internal/services"
	"gemmarket_backend/internal/storage"
	"gemmarket_backend/internal/validator"
	"gemmarket_backend/internal/workers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Up(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	logger.Info("Schema migrated and reference data seeded")

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	// Background cleanup of expired tokens
	tokenWorker := workers.NewTokenWorker(gormDB)
	tokenWorker.Start(context.Background())

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the Gin engine with all middleware, services and
// routes wired. Tests call it directly against their own database handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	store, err := storage.NewLocalStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize document storage", "error", err)
	}

	serviceContainer := initializeServices(cfg)
	appHandlers := initializeHandlers(serviceContainer, store)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.SMTPHost != "" {
		emailService = email.NewSMTPProvider(cfg)
	} else {
		logger.Warn("SMTP not configured, outgoing email is logged only")
		emailService = &MockEmailProvider{}
	}

	userRepo := repositories.NewUserRepository()
	refreshTokenRepo := repositories.NewRefreshTokenRepository()
	roleRepo := repositories.NewRoleRepository()
	professionalRepo := repositories.NewProfessionalRepository()
	documentRepo := repositories.NewVerificationDocumentRepository()

	authService := services.NewAuthService(userRepo, refreshTokenRepo, emailService)
	registrationService := services.NewRegistrationService(userRepo, professionalRepo, roleRepo, emailService)
	professionalService := services.NewProfessionalService(professionalRepo, userRepo)
	verificationService := services.NewVerificationService(professionalRepo, documentRepo, userRepo, emailService)

	return &services.ServiceContainer{
		AuthService:         authService,
		RegistrationService: registrationService,
		ProfessionalService: professionalService,
		VerificationService: verificationService,
		EmailService:        emailService,
	}
}

func initializeHandlers(serviceContainer *services.ServiceContainer, store storage.Storage) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	roleRepo := repositories.NewRoleRepository()

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, serviceContainer.AuthService),
		RegistrationHandler: handlers.NewRegistrationHandler(baseHandler, serviceContainer.RegistrationService),
		ProfessionalHandler: handlers.NewProfessionalHandler(baseHandler, serviceContainer.ProfessionalService),
		VerificationHandler: handlers.NewVerificationHandler(baseHandler, serviceContainer.VerificationService, store),
		ReferenceHandler:    handlers.NewReferenceHandler(baseHandler, roleRepo),
		StubHandler:         handlers.NewStubHandler(),
	}
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var adminUser models.User
		result := tx.Where("email = ?", adminEmail).First(&adminUser)
		if result.Error == nil {
			logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
			return nil
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for admin user: %w", result.Error)
		}

		logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

		hashedPassword, err := auth.HashPassword(adminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		newAdmin := &models.User{
			Email:        adminEmail,
			PasswordHash: hashedPassword,
			FirstName:    "Admin",
			LastName:     "User",
			IsActive:     true,
			IsVerified:   true,
		}
		if err := tx.Create(newAdmin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		var adminRole models.Role
		if err := tx.Where("name = ?", models.RoleAdmin).First(&adminRole).Error; err != nil {
			return fmt.Errorf("admin role missing, reference data not seeded: %w", err)
		}
		if err := tx.Model(newAdmin).Association("Roles").Append(&adminRole); err != nil {
			return fmt.Errorf("failed to assign admin role: %w", err)
		}

		logger.Info("First admin user created", "email", adminEmail)
		return nil
	})
}

func initializeGinRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: false,
	}))
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.DBMiddleware(gormDB))

	return ginRouter
}
