package service

import (
	"github.com/lumelec/backoffice/internal/config"
	"github.com/lumelec/backoffice/internal/domain/catalog"
	"github.com/lumelec/backoffice/internal/domain/client"
	"github.com/lumelec/backoffice/internal/domain/invoice"
	"github.com/lumelec/backoffice/internal/domain/project"
	"github.com/lumelec/backoffice/internal/domain/settings"
	"github.com/lumelec/backoffice/internal/logger"
	"github.com/lumelec/backoffice/internal/notification/publisher"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	// Repositories
	ProjectRepo  project.Repository
	ClientRepo   client.Repository
	CatalogRepo  catalog.Repository
	InvoiceRepo  invoice.Repository
	SettingsRepo settings.Repository

	// Publishers
	EventPublisher publisher.EventPublisher
}

// Common service params
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	projectRepo project.Repository,
	clientRepo client.Repository,
	catalogRepo catalog.Repository,
	invoiceRepo invoice.Repository,
	settingsRepo settings.Repository,
	eventPublisher publisher.EventPublisher,
) ServiceParams {
	return ServiceParams{
		Logger:         logger,
		Config:         config,
		ProjectRepo:    projectRepo,
		ClientRepo:     clientRepo,
		CatalogRepo:    catalogRepo,
		InvoiceRepo:    invoiceRepo,
		SettingsRepo:   settingsRepo,
		EventPublisher: eventPublisher,
	}
}
