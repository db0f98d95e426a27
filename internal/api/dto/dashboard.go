package dto

import (
	"github.com/lumelec/backoffice/internal/types"
	"github.com/shopspring/decimal"
)

// DashboardResponse summarises the back-office data at request time
type DashboardResponse struct {
	Projects ProjectSummary `json:"projects"`
	Clients  int            `json:"clients"`
	Services int            `json:"services"`
	Invoices InvoiceSummary `json:"invoices"`
}

type ProjectSummary struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
}

type InvoiceSummary struct {
	Total int `json:"total"`
	// Totals holds the summed amount per status, every status present
	Totals             map[types.InvoiceStatus]decimal.Decimal `json:"totals"`
	Outstanding        decimal.Decimal                         `json:"outstanding"`
	DefaultVatRate     decimal.Decimal                         `json:"defaultVatRate"`
	OutstandingWithVat decimal.Decimal                         `json:"outstandingWithVat"`
}
