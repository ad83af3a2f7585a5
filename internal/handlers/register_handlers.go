package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/opsledger/fixed_asset_app/cmd/docs"
	portssvc "github.com/opsledger/fixed_asset_app/internal/core/ports/services"
	"github.com/opsledger/fixed_asset_app/internal/middleware"
	"github.com/opsledger/fixed_asset_app/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Setup API v1 routes, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	// Authentication happens upstream at the gateway; the acting user arrives
	// as a trusted header.
	v1 := r.Group("/api/v1", middleware.UserContextMiddleware())

	// Delegate route registration to specific handlers, passing required services
	registerAssetRoutes(v1, service.Asset)
	registerEntryRoutes(v1, service.Entry)
	registerDepreciationRoutes(v1, service.Depreciation)
	registerUsageRoutes(v1, service.Usage)
	registerImprovementRoutes(v1, service.Improvement)
	registerConservationRoutes(v1, service.Conservation)
	registerParameterChangeRoutes(v1, service.ParameterChange)
	registerSaleRoutes(v1, service.SalePreparation, service.Sale)
	registerWriteOffRoutes(v1, service.WriteOff)
	registerJournalRoutes(v1, service.Journal, service.Account)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
