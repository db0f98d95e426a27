package memory

import (
	"github.com/lumelec/backoffice/internal/domain/catalog"
	"github.com/lumelec/backoffice/internal/domain/client"
	"github.com/lumelec/backoffice/internal/domain/invoice"
	"github.com/lumelec/backoffice/internal/domain/project"
	"github.com/lumelec/backoffice/internal/domain/settings"
	"github.com/lumelec/backoffice/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// The data every store starts from. Each call returns fresh values.

func SeedProjects() []*project.Project {
	return []*project.Project{
		{ID: 1, Name: "Installation électrique usine A", Client: "Client Industrie X", Status: "Terminé", StartDate: "2023-01-15", EndDate: lo.ToPtr("2023-06-30")},
		{ID: 2, Name: "Mise à niveau éclairage ferme B", Client: "Client Agriculture Y", Status: "En cours", StartDate: "2023-09-01"},
		{ID: 3, Name: "Système de sécurité hôtel C", Client: "Client Tertiaire Z", Status: "Planifié", StartDate: "2024-03-10"},
	}
}

func SeedClients() []*client.Client {
	return []*client.Client{
		{ID: 1, Name: "Client Industrie X", ContactPerson: "Jean Dupont", Email: "jean.dupont@industrie-x.com", Phone: lo.ToPtr("0123456789"), Address: lo.ToPtr("1 Rue de l'Industrie, 75001 Paris")},
		{ID: 2, Name: "Client Agriculture Y", ContactPerson: "Marie Curie", Email: "marie.curie@agriculture-y.fr", Address: lo.ToPtr("La Ferme, 31000 Toulouse")},
	}
}

func SeedServices() []*catalog.Service {
	return []*catalog.Service{
		{ID: 1, Name: "Installation de tableau électrique", Description: lo.ToPtr("Installation et raccordement de tableaux divisionnaires et principaux."), Price: decimal.NewFromInt(500)},
		{ID: 2, Name: "Mise aux normes électriques", Description: lo.ToPtr("Vérification et mise en conformité des installations selon les normes en vigueur."), Price: decimal.NewFromInt(300)},
	}
}

func SeedInvoices() []*invoice.Invoice {
	return []*invoice.Invoice{
		{ID: 1, InvoiceNumber: "INV-001", ClientID: 1, DateIssued: "2023-07-01", DueDate: "2023-08-01", Amount: decimal.RequireFromString("1500.00"), Status: types.InvoiceStatusPaid},
		{ID: 2, InvoiceNumber: "INV-002", ClientID: 2, DateIssued: "2023-10-15", DueDate: "2023-11-15", Amount: decimal.RequireFromString("750.50"), Status: types.InvoiceStatusPending},
	}
}

func SeedSettings() *settings.Settings {
	return &settings.Settings{
		CompanyName:                 "Mon Entreprise Inc.",
		Address:                     lo.ToPtr("123 Rue Principale"),
		City:                        lo.ToPtr("Ville"),
		PostalCode:                  lo.ToPtr("10001"),
		Country:                     lo.ToPtr("Pays"),
		DefaultVatRate:              decimal.NewFromInt(20),
		EmailNotificationsEnabled:   true,
		ProjectNotificationsEnabled: true,
		InvoiceNotificationsEnabled: false,
		Theme:                       types.ThemeLight,
		Language:                    "fr",
	}
}
