package dto

import (
	"github.com/lumelec/backoffice/internal/domain/invoice"
	"github.com/lumelec/backoffice/internal/types"
	"github.com/lumelec/backoffice/internal/validator"
)

type CreateInvoiceRequest struct {
	InvoiceNumber string              `json:"invoiceNumber" validate:"required"`
	ClientID      *int                `json:"clientId" validate:"required"`
	DateIssued    string              `json:"dateIssued" validate:"required,datetime=2006-01-02"`
	DueDate       string              `json:"dueDate" validate:"required,datetime=2006-01-02"`
	Amount        *types.Number       `json:"amount" validate:"required"`
	Status        types.InvoiceStatus `json:"status" validate:"required,oneof=Pending Paid Cancelled"`
}

func (r *CreateInvoiceRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return nonNegative("amount", "Amount", r.Amount.Decimal)
}

// ToInvoice builds the invoice to store. A missing status means Pending.
func (r *CreateInvoiceRequest) ToInvoice() *invoice.Invoice {
	status := r.Status
	if status == "" {
		status = types.InvoiceStatusPending
	}
	return &invoice.Invoice{
		InvoiceNumber: r.InvoiceNumber,
		ClientID:      *r.ClientID,
		DateIssued:    r.DateIssued,
		DueDate:       r.DueDate,
		Amount:        r.Amount.Decimal,
		Status:        status,
	}
}

type UpdateInvoiceRequest struct {
	InvoiceNumber types.Optional[string]              `json:"invoiceNumber"`
	ClientID      types.Optional[int]                 `json:"clientId"`
	DateIssued    types.Optional[string]              `json:"dateIssued"`
	DueDate       types.Optional[string]              `json:"dueDate"`
	Amount        types.Optional[types.Number]        `json:"amount"`
	Status        types.Optional[types.InvoiceStatus] `json:"status"`
}

func (r *UpdateInvoiceRequest) Validate() error {
	if amount, ok := r.Amount.Get(); ok {
		if err := nonNegative("amount", "Amount", amount.Decimal); err != nil {
			return err
		}
	}
	errs := fieldErrors{}
	notNull(errs, "invoiceNumber", r.InvoiceNumber)
	notNull(errs, "clientId", r.ClientID)
	notNull(errs, "dateIssued", r.DateIssued)
	notNull(errs, "dueDate", r.DueDate)
	notNull(errs, "amount", r.Amount)
	notNull(errs, "status", r.Status)
	matches(errs, "dateIssued", r.DateIssued, "datetime="+dateLayout, "must be a date formatted as "+dateLayout)
	matches(errs, "dueDate", r.DueDate, "datetime="+dateLayout, "must be a date formatted as "+dateLayout)
	if status, ok := r.Status.Get(); ok && status.Validate() != nil {
		errs["status"] = "must be one of Pending Paid Cancelled"
	}
	return errs.err()
}

// Apply merges everything but the client id, which the caller resolves
// against the client list first
func (r *UpdateInvoiceRequest) Apply(inv *invoice.Invoice) {
	types.Apply(&inv.InvoiceNumber, r.InvoiceNumber)
	types.Apply(&inv.DateIssued, r.DateIssued)
	types.Apply(&inv.DueDate, r.DueDate)
	types.ApplyNumber(&inv.Amount, r.Amount)
	types.Apply(&inv.Status, r.Status)
}

// InvoiceResponse is an invoice joined with the name of its client
type InvoiceResponse struct {
	*invoice.Invoice
	ClientName string `json:"clientName"`
}
