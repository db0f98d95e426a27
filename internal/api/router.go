package api

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/lumelec/backoffice/internal/api/v1"
	"github.com/lumelec/backoffice/internal/config"
	"github.com/lumelec/backoffice/internal/logger"
	"github.com/lumelec/backoffice/internal/rest/middleware"
	"github.com/lumelec/backoffice/internal/sentry"
	"github.com/lumelec/backoffice/internal/types"
)

type Handlers struct {
	Health    *v1.HealthHandler
	Project   *v1.ProjectHandler
	Client    *v1.ClientHandler
	Catalog   *v1.CatalogHandler
	Invoice   *v1.InvoiceHandler
	Settings  *v1.SettingsHandler
	Dashboard *v1.DashboardHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, log *logger.Logger, sentrySvc *sentry.Service) *gin.Engine {
	if cfg.Deployment.Mode != types.ModeLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware(log),
		middleware.RecoveryMiddleware(log),
		middleware.SentryMiddleware(cfg),
		middleware.ErrorHandler(log, sentrySvc),
	)

	router.GET("/health", handlers.Health.Health)

	api := router.Group("/api")

	projects := api.Group("/projects")
	{
		projects.GET("", handlers.Project.ListProjects)
		projects.POST("", handlers.Project.CreateProject)
		projects.GET("/:id", handlers.Project.GetProject)
		projects.PUT("/:id", handlers.Project.UpdateProject)
		projects.DELETE("/:id", handlers.Project.DeleteProject)
	}

	clients := api.Group("/clients")
	{
		clients.GET("", handlers.Client.ListClients)
		clients.POST("", handlers.Client.CreateClient)
		clients.GET("/:id", handlers.Client.GetClient)
		clients.PUT("/:id", handlers.Client.UpdateClient)
		clients.DELETE("/:id", handlers.Client.DeleteClient)
	}

	services := api.Group("/services")
	{
		services.GET("", handlers.Catalog.ListServices)
		services.POST("", handlers.Catalog.CreateService)
		services.GET("/:id", handlers.Catalog.GetService)
		services.PUT("/:id", handlers.Catalog.UpdateService)
		services.DELETE("/:id", handlers.Catalog.DeleteService)
	}

	invoices := api.Group("/invoices")
	{
		invoices.GET("", handlers.Invoice.ListInvoices)
		invoices.POST("", handlers.Invoice.CreateInvoice)
		invoices.GET("/:id", handlers.Invoice.GetInvoice)
		invoices.PUT("/:id", handlers.Invoice.UpdateInvoice)
		invoices.DELETE("/:id", handlers.Invoice.DeleteInvoice)
	}

	settings := api.Group("/settings")
	{
		settings.GET("", handlers.Settings.GetSettings)
		settings.PUT("", handlers.Settings.UpdateSettings)
	}

	api.GET("/dashboard", handlers.Dashboard.GetDashboard)

	return router
}
