package memory

import (
	"github.com/lumelec/backoffice/internal/domain/catalog"
	"github.com/lumelec/backoffice/internal/domain/client"
	"github.com/lumelec/backoffice/internal/domain/invoice"
	"github.com/lumelec/backoffice/internal/domain/project"
)

// ProjectStore is the in-memory project.Repository
type ProjectStore struct {
	*entityRepository[*project.Project]
}

func NewProjectStore(seed ...*project.Project) *ProjectStore {
	return &ProjectStore{&entityRepository[*project.Project]{
		store:  NewInMemoryStore((*project.Project).Copy, seed...),
		entity: "Project",
		setID:  func(p *project.Project, id int) { p.ID = id },
	}}
}

// ClientStore is the in-memory client.Repository
type ClientStore struct {
	*entityRepository[*client.Client]
}

func NewClientStore(seed ...*client.Client) *ClientStore {
	return &ClientStore{&entityRepository[*client.Client]{
		store:  NewInMemoryStore((*client.Client).Copy, seed...),
		entity: "Client",
		setID:  func(c *client.Client, id int) { c.ID = id },
	}}
}

// CatalogStore is the in-memory catalog.Repository
type CatalogStore struct {
	*entityRepository[*catalog.Service]
}

func NewCatalogStore(seed ...*catalog.Service) *CatalogStore {
	return &CatalogStore{&entityRepository[*catalog.Service]{
		store:  NewInMemoryStore((*catalog.Service).Copy, seed...),
		entity: "Service",
		setID:  func(s *catalog.Service, id int) { s.ID = id },
	}}
}

// InvoiceStore is the in-memory invoice.Repository
type InvoiceStore struct {
	*entityRepository[*invoice.Invoice]
}

func NewInvoiceStore(seed ...*invoice.Invoice) *InvoiceStore {
	return &InvoiceStore{&entityRepository[*invoice.Invoice]{
		store:  NewInMemoryStore((*invoice.Invoice).Copy, seed...),
		entity: "Invoice",
		setID:  func(inv *invoice.Invoice, id int) { inv.ID = id },
	}}
}

var (
	_ project.Repository = (*ProjectStore)(nil)
	_ client.Repository  = (*ClientStore)(nil)
	_ catalog.Repository = (*CatalogStore)(nil)
	_ invoice.Repository = (*InvoiceStore)(nil)
)
