package invoice

import (
	"github.com/lumelec/backoffice/internal/types"
	"github.com/shopspring/decimal"
)

// Invoice represents the invoice domain model. ClientID refers to a
// client.Client but nothing enforces it: invoices outlive their clients.
type Invoice struct {
	ID            int                 `json:"id"`
	InvoiceNumber string              `json:"invoiceNumber"`
	ClientID      int                 `json:"clientId"`
	DateIssued    string              `json:"dateIssued"`
	DueDate       string              `json:"dueDate"`
	Amount        decimal.Decimal     `json:"amount"`
	Status        types.InvoiceStatus `json:"status"`
}

func (i *Invoice) GetID() int {
	return i.ID
}

// Copy returns a copy of the invoice
func (i *Invoice) Copy() *Invoice {
	if i == nil {
		return nil
	}
	c := *i
	return &c
}
