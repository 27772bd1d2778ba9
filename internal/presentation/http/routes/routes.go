package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/serigraf/backoffice-api/internal/config"
	domainRepo "github.com/serigraf/backoffice-api/internal/domain/repository"
	"github.com/serigraf/backoffice-api/internal/presentation/http/handler"
	"github.com/serigraf/backoffice-api/internal/presentation/http/middleware"
	"github.com/serigraf/backoffice-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Tier        *handler.TierHandler
	ExtraOption *handler.ExtraOptionHandler
	Payroll     *handler.PayrollHandler
	Pricing     *handler.PricingHandler
	Material    *handler.MaterialHandler
	Quote       *handler.QuoteHandler
	Order       *handler.OrderHandler
	Warehouse   *handler.WarehouseHandler
	Audit       *handler.AuditHandler
	User        *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Cost tiers
	registerTierRoutes(protected, h)

	// Extra options
	registerExtraOptionRoutes(protected, h)

	// Payroll
	registerPayrollRoutes(protected, h)

	// Pricing configuration and formation
	registerPricingRoutes(protected, h)

	// Materials
	registerMaterialRoutes(protected, h)

	// Quotes
	registerQuoteRoutes(protected, h, deps)

	// Orders
	registerOrderRoutes(protected, h, deps)

	// Warehouse
	registerWarehouseRoutes(protected, h, deps)

	// Audit trail
	registerAuditRoutes(protected, h)

	// Users (Admin)
	registerUserRoutes(protected, h)

	// Roles (Admin)
	registerRoleRoutes(protected, h)

	// Permissions (Admin)
	registerPermissionRoutes(protected, h)
}

func registerTierRoutes(protected *gin.RouterGroup, h *Handlers) {
	margin := protected.Group("/tiers/margin")
	margin.Use(middleware.RequirePermission("manage-tiers"))
	{
		margin.GET("", h.Tier.ListMarginTiers)
		margin.POST("", h.Tier.CreateMarginTier)
		margin.GET("/resolve", h.Tier.ResolveMargin)
		margin.PUT("/:id", h.Tier.UpdateMarginTier)
		margin.DELETE("/:id", h.Tier.DeleteMarginTier)
	}

	markup := protected.Group("/tiers/markup")
	markup.Use(middleware.RequirePermission("manage-tiers"))
	{
		markup.GET("", h.Tier.ListMarkupTiers)
		markup.POST("", h.Tier.CreateMarkupTier)
		markup.GET("/resolve", h.Tier.ResolveMarkup)
		markup.PUT("/reorder", h.Tier.ReorderMarkupTiers)
		markup.PUT("/:id", h.Tier.UpdateMarkupTier)
		markup.DELETE("/:id", h.Tier.DeleteMarkupTier)
	}
}

func registerExtraOptionRoutes(protected *gin.RouterGroup, h *Handlers) {
	options := protected.Group("/extra-options")
	options.Use(middleware.RequirePermission("manage-pricing"))
	{
		options.GET("", h.ExtraOption.List)
		options.POST("", h.ExtraOption.Create)
		options.GET("/:id", h.ExtraOption.Get)
		options.PUT("/:id", h.ExtraOption.Update)
		options.DELETE("/:id", h.ExtraOption.Delete)
	}
}

func registerPayrollRoutes(protected *gin.RouterGroup, h *Handlers) {
	payroll := protected.Group("/payroll")
	payroll.Use(middleware.RequirePermission("manage-pricing"))
	{
		payroll.GET("", h.Payroll.List)
		payroll.POST("", h.Payroll.Create)
		payroll.GET("/:id", h.Payroll.Get)
		payroll.PUT("/:id", h.Payroll.Update)
		payroll.DELETE("/:id", h.Payroll.Delete)
	}
}

func registerPricingRoutes(protected *gin.RouterGroup, h *Handlers) {
	pricing := protected.Group("/pricing")
	pricing.Use(middleware.RequirePermission("manage-pricing"))
	{
		pricing.GET("/config", h.Pricing.GetConfig)
		pricing.PUT("/config", h.Pricing.UpdateConfig)
		pricing.POST("/form", h.Pricing.Form)
	}
}

func registerMaterialRoutes(protected *gin.RouterGroup, h *Handlers) {
	materials := protected.Group("/materials")
	materials.Use(middleware.RequirePermission("manage-materials"))
	{
		materials.GET("", h.Material.List)
		materials.POST("", h.Material.Create)
		materials.GET("/:id", h.Material.Get)
		materials.PUT("/:id", h.Material.Update)
		materials.DELETE("/:id", h.Material.Delete)
	}
}

func registerQuoteRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	quotes := protected.Group("/quotes")
	quotes.Use(middleware.RequirePermission("manage-quotes"))
	{
		quotes.GET("", h.Quote.List)
		quotes.POST("", h.Quote.Create)
		quotes.GET("/:id", h.Quote.Get)
		quotes.PUT("/:id", h.Quote.Update)
		quotes.DELETE("/:id", h.Quote.Delete)
		quotes.PUT("/:id/status", h.Quote.UpdateStatus)
		// Approval spawns an order; idempotency keys guard against doubles
		quotes.POST("/:id/approve", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Quote.Approve)
	}
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	orders := protected.Group("/orders")
	orders.Use(middleware.RequirePermission("manage-orders"))
	{
		orders.GET("", h.Order.List)
		// Order creation uses idempotency middleware to prevent duplicates
		orders.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Order.Create)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id/status", h.Order.UpdateStatus)
		orders.GET("/:id/warehouse", h.Order.GetWarehouseRecord)
	}
}

func registerWarehouseRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	warehouse := protected.Group("/warehouse")
	warehouse.Use(middleware.RequirePermission("manage-warehouse"))
	{
		warehouse.GET("/:id", h.Warehouse.Get)
		warehouse.PUT("/:id/actuals", h.Warehouse.EnterActuals)
		warehouse.GET("/:id/report", h.Warehouse.GetReport)
	}

	finalize := protected.Group("/warehouse")
	finalize.Use(middleware.RequirePermission("finalize-warehouse"))
	{
		finalize.POST("/:id/finalize", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Warehouse.Finalize)
	}
}

func registerAuditRoutes(protected *gin.RouterGroup, h *Handlers) {
	audit := protected.Group("/audit")
	audit.Use(middleware.RequirePermission("view-audit"))
	{
		audit.GET("", h.Audit.List)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequirePermission("manage-users"))
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id/roles", h.User.UpdateRoles)
		users.DELETE("/:id", h.User.Delete)
	}
}

func registerRoleRoutes(protected *gin.RouterGroup, h *Handlers) {
	roles := protected.Group("/roles")
	roles.Use(middleware.RequirePermission("manage-users"))
	{
		roles.GET("", h.User.ListRoles)
	}
}

func registerPermissionRoutes(protected *gin.RouterGroup, h *Handlers) {
	permissions := protected.Group("/permissions")
	permissions.Use(middleware.RequirePermission("manage-users"))
	{
		permissions.GET("", h.User.ListPermissions)
	}
}
