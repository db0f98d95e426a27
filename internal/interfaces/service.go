package interfaces

import (
	"context"

	"github.com/lumelec/backoffice/internal/api/dto"
)

// ProjectService defines the interface for project operations
type ProjectService interface {
	CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetProject(ctx context.Context, id int) (*dto.ProjectResponse, error)
	ListProjects(ctx context.Context) ([]*dto.ProjectResponse, error)
	UpdateProject(ctx context.Context, id int, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	DeleteProject(ctx context.Context, id int) error
}

// ClientService defines the interface for client operations
type ClientService interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error)
	GetClient(ctx context.Context, id int) (*dto.ClientResponse, error)
	ListClients(ctx context.Context) ([]*dto.ClientResponse, error)
	UpdateClient(ctx context.Context, id int, req dto.UpdateClientRequest) (*dto.ClientResponse, error)
	DeleteClient(ctx context.Context, id int) error
}

// CatalogService defines the interface for operations on the services
// the company sells
type CatalogService interface {
	CreateService(ctx context.Context, req dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	GetService(ctx context.Context, id int) (*dto.ServiceResponse, error)
	ListServices(ctx context.Context) ([]*dto.ServiceResponse, error)
	UpdateService(ctx context.Context, id int, req dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	DeleteService(ctx context.Context, id int) error
}

// InvoiceService defines the interface for invoice operations. Every
// read carries the current client name.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	GetInvoice(ctx context.Context, id int) (*dto.InvoiceResponse, error)
	ListInvoices(ctx context.Context) ([]*dto.InvoiceResponse, error)
	UpdateInvoice(ctx context.Context, id int, req dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error)
	DeleteInvoice(ctx context.Context, id int) error
}

// SettingsService defines the interface for the settings singleton
type SettingsService interface {
	GetSettings(ctx context.Context) (*dto.SettingsResponse, error)
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)
}

// DashboardService computes the back-office summary
type DashboardService interface {
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
}
