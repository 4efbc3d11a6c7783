package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/tablestack/resto_ledger_app/cmd/docs"
	portssvc "github.com/tablestack/resto_ledger_app/internal/core/ports/services"
	"github.com/tablestack/resto_ledger_app/pkg/config"
)

// RegisterRoutes sets up all application routes.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and the nested outlet routes.
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1")

	outletH := newOutletHandler(services.OutletSvc)
	accountH := newAccountHandler(services.AccountSvc)
	journalH := newJournalHandler(services.LedgerSvc)
	reportingH := newReportingHandler(services.ReportingSvc)

	outlets := v1.Group("/outlets")
	{
		outlets.POST("", outletH.createOutlet)
		outlets.GET("", outletH.listOutlets)
		outlets.GET("/:outlet_id", outletH.getOutlet)
		outlets.DELETE("/:outlet_id", outletH.deactivateOutlet)

		accounts := outlets.Group("/:outlet_id/accounts")
		{
			accounts.POST("", accountH.createAccount)
			accounts.GET("", accountH.listAccounts)
			accounts.GET("/:account_id", accountH.getAccount)
			accounts.PUT("/:account_id", accountH.updateAccount)
			accounts.DELETE("/:account_id", accountH.deactivateAccount)
			accounts.GET("/:account_id/lines", journalH.listAccountLines)
		}

		entries := outlets.Group("/:outlet_id/entries")
		{
			entries.POST("", journalH.postEntry)
			entries.GET("", journalH.listEntries)
			entries.GET("/:entry_id", journalH.getEntry)
			entries.POST("/:entry_id/reverse", journalH.reverseEntry)
		}

		reports := outlets.Group("/:outlet_id/reports")
		{
			reports.GET("/trial-balance", reportingH.getTrialBalance)
		}
	}
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
