package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"

	"github.com/SscSPs/books_ledger/cmd/docs"
	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
	"github.com/SscSPs/books_ledger/internal/middleware"
	"github.com/SscSPs/books_ledger/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// A nil rateLimiter leaves the API unthrottled.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupSwaggerRoutes(r, cfg)

	setupAPIV1Routes(r, cfg, services, rateLimiter)
}

// setupSwaggerRoutes serves the API documentation outside production.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the per-area route registrations.
// Every ledger route is scoped to one company.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	if rateLimiter != nil {
		v1.Use(middleware.RateLimit(rateLimiter))
	}

	company := v1.Group("/companies/:companyID")
	registerStagingRoutes(company, services.Staging)
	registerTransactionRoutes(company, services.Confirmation, services.Transactions)
	registerJournalRoutes(company, services.Journal)
	registerReportingRoutes(company, services.Reporting)
}
