package types

import (
	ierr "github.com/lumelec/backoffice/internal/errors"
	"github.com/samber/lo"
)

// InvoiceStatus is the payment state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "Pending"
	InvoiceStatusPaid      InvoiceStatus = "Paid"
	InvoiceStatusCancelled InvoiceStatus = "Cancelled"
)

// InvoiceStatuses lists every accepted status in display order
var InvoiceStatuses = []InvoiceStatus{
	InvoiceStatusPending,
	InvoiceStatusPaid,
	InvoiceStatusCancelled,
}

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) Validate() error {
	if !lo.Contains(InvoiceStatuses, s) {
		return ierr.NewError("invalid invoice status").
			WithHint("Status must be one of Pending, Paid or Cancelled").
			WithReportableDetails(map[string]any{
				"allowed": InvoiceStatuses,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// UnknownClientName is shown for invoices whose client no longer exists
const UnknownClientName = "Unknown Client"
