package handlers

import (
	"github.com/fleetvision/fleet_backoffice/cmd/docs"
	portssvc "github.com/fleetvision/fleet_backoffice/internal/core/ports/services"
	"github.com/fleetvision/fleet_backoffice/internal/middleware"
	"github.com/fleetvision/fleet_backoffice/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	tokenSvc portssvc.APITokenSvc,
) {
	// Health check route
	r.GET("/health", healthCheck)

	setupAPIV1Routes(r, cfg, services, tokenSvc)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the tenant-scoped /api/v1 group and
// delegates to specific entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	tokenSvc portssvc.APITokenSvc,
) {
	v1 := r.Group("/api/v1",
		middleware.APITokenAuth(tokenSvc),
		middleware.AuthMiddleware(cfg.JWTSecret),
	)

	// Every resource lives under a tenant; the guard checks the URL
	// tenant against the token's grants before any handler runs.
	tenant := v1.Group("/tenants/:tenant_id", middleware.TenantGuard())

	registerAccountRoutes(tenant, services.Account, services.Ledger)
	registerJournalRoutes(tenant, services.Journal)
	registerCostCenterRoutes(tenant, services.CostCenter)
	registerReportingRoutes(tenant, services.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
