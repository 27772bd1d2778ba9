package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/serigraf/backoffice-api/internal/application/service"
	"github.com/serigraf/backoffice-api/internal/config"
	"github.com/serigraf/backoffice-api/internal/infrastructure/database"
	"github.com/serigraf/backoffice-api/internal/infrastructure/repository"
	"github.com/serigraf/backoffice-api/internal/presentation/http/handler"
	"github.com/serigraf/backoffice-api/internal/presentation/http/routes"
	"github.com/serigraf/backoffice-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	marginTierRepo := repository.NewMarginTierRepository(db)
	markupTierRepo := repository.NewMarkupTierRepository(db)
	extraOptionRepo := repository.NewExtraOptionRepository(db)
	payrollRepo := repository.NewPayrollRepository(db)
	pricingConfigRepo := repository.NewPricingConfigRepository(db)
	materialRepo := repository.NewMaterialRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	warehouseRepo := repository.NewWarehouseRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	auditService := service.NewAuditService(auditRepo)
	authService := service.NewAuthService(userRepo, roleRepo, jwtManager)
	userService := service.NewUserService(userRepo, roleRepo, permissionRepo)
	tierService := service.NewTierService(marginTierRepo, markupTierRepo, auditService)
	extraOptionService := service.NewExtraOptionService(extraOptionRepo, auditService)
	payrollService := service.NewPayrollService(payrollRepo, auditService)
	pricingConfigService := service.NewPricingConfigService(pricingConfigRepo, auditService)
	formationService := service.NewFormationService(pricingConfigRepo, payrollRepo, extraOptionRepo)
	materialService := service.NewMaterialService(materialRepo, auditService)
	quoteService := service.NewQuoteService(quoteRepo, orderRepo, materialRepo, extraOptionRepo, tierService, auditService)
	orderService := service.NewOrderService(orderRepo, warehouseRepo, materialRepo, extraOptionRepo, auditService)
	warehouseService := service.NewWarehouseService(warehouseRepo, orderRepo, auditService)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Tier:        handler.NewTierHandler(tierService),
		ExtraOption: handler.NewExtraOptionHandler(extraOptionService),
		Payroll:     handler.NewPayrollHandler(payrollService),
		Pricing:     handler.NewPricingHandler(pricingConfigService, formationService),
		Material:    handler.NewMaterialHandler(materialService),
		Quote:       handler.NewQuoteHandler(quoteService),
		Order:       handler.NewOrderHandler(orderService),
		Warehouse:   handler.NewWarehouseHandler(warehouseService),
		Audit:       handler.NewAuditHandler(auditService),
		User:        handler.NewUserHandler(userService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
