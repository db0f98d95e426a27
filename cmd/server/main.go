package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lumelec/backoffice/internal/api"
	v1 "github.com/lumelec/backoffice/internal/api/v1"
	"github.com/lumelec/backoffice/internal/config"
	"github.com/lumelec/backoffice/internal/logger"
	"github.com/lumelec/backoffice/internal/notification"
	"github.com/lumelec/backoffice/internal/repository"
	"github.com/lumelec/backoffice/internal/sentry"
	"github.com/lumelec/backoffice/internal/service"
	"github.com/lumelec/backoffice/internal/validator"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// @title Back-office API
// @version 1.0
// @description Projects, clients, services, invoices and company settings
// @BasePath /api
// @schemes http https

func init() {
	time.Local = time.UTC
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:          "backoffice",
		Short:        "Back-office API server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(configFile)
		},
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to a config file (defaults to config.yaml in the search paths)")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve(configFile)
			},
		},
		&cobra.Command{
			Use:   "config",
			Short: "Print the effective configuration",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := config.LoadConfig(configFile)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(cfg.Redacted())
			},
		},
	)

	return root
}

func serve(configFile string) error {
	app := fx.New(
		fx.Provide(
			func() (*config.Configuration, error) {
				return config.LoadConfig(configFile)
			},
			logger.NewLogger,
		),
		fx.WithLogger(func(log *logger.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Desugar()}
		}),

		sentry.Module(),
		notification.Module,

		fx.Provide(
			// Repositories
			repository.NewProjectRepository,
			repository.NewClientRepository,
			repository.NewCatalogRepository,
			repository.NewInvoiceRepository,
			repository.NewSettingsRepository,

			// Services
			service.NewServiceParams,
			service.NewProjectService,
			service.NewClientService,
			service.NewCatalogService,
			service.NewInvoiceService,
			service.NewSettingsService,
			service.NewDashboardService,

			// API
			provideHandlers,
			api.NewRouter,
		),

		fx.Invoke(func() { validator.NewValidator() }),
		fx.Invoke(startAPIServer),
	)

	if err := app.Err(); err != nil {
		return err
	}
	app.Run()
	return nil
}

func provideHandlers(
	log *logger.Logger,
	projectService service.ProjectService,
	clientService service.ClientService,
	catalogService service.CatalogService,
	invoiceService service.InvoiceService,
	settingsService service.SettingsService,
	dashboardService service.DashboardService,
) api.Handlers {
	return api.Handlers{
		Health:    v1.NewHealthHandler(),
		Project:   v1.NewProjectHandler(projectService, log),
		Client:    v1.NewClientHandler(clientService, log),
		Catalog:   v1.NewCatalogHandler(catalogService, log),
		Invoice:   v1.NewInvoiceHandler(invoiceService, log),
		Settings:  v1.NewSettingsHandler(settingsService, log),
		Dashboard: v1.NewDashboardHandler(dashboardService, log),
	}
}

func startAPIServer(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Infow("starting API server", "address", srv.Addr)
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Errorw("API server stopped", "error", err)
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down API server")
			return srv.Shutdown(ctx)
		},
	})
}
