package repository

import (
	"github.com/lumelec/backoffice/internal/domain/catalog"
	"github.com/lumelec/backoffice/internal/domain/client"
	"github.com/lumelec/backoffice/internal/domain/invoice"
	"github.com/lumelec/backoffice/internal/domain/project"
	"github.com/lumelec/backoffice/internal/domain/settings"
	"github.com/lumelec/backoffice/internal/logger"
	"github.com/lumelec/backoffice/internal/repository/memory"
)

type RepositoryType string

const (
	// MemoryRepo is the only backend: data lives for the process lifetime
	MemoryRepo RepositoryType = "memory"
)

func NewProjectRepository(log *logger.Logger) project.Repository {
	log.Debugw("seeding project repository", "type", MemoryRepo)
	return memory.NewProjectStore(memory.SeedProjects()...)
}

func NewClientRepository(log *logger.Logger) client.Repository {
	log.Debugw("seeding client repository", "type", MemoryRepo)
	return memory.NewClientStore(memory.SeedClients()...)
}

func NewCatalogRepository(log *logger.Logger) catalog.Repository {
	log.Debugw("seeding service repository", "type", MemoryRepo)
	return memory.NewCatalogStore(memory.SeedServices()...)
}

func NewInvoiceRepository(log *logger.Logger) invoice.Repository {
	log.Debugw("seeding invoice repository", "type", MemoryRepo)
	return memory.NewInvoiceStore(memory.SeedInvoices()...)
}

func NewSettingsRepository(log *logger.Logger) settings.Repository {
	log.Debugw("seeding settings repository", "type", MemoryRepo)
	return memory.NewSettingsStore(memory.SeedSettings())
}
