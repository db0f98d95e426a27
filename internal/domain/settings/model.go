package settings

import (
	"github.com/lumelec/backoffice/internal/types"
	"github.com/shopspring/decimal"
)

// Settings is the company-wide configuration edited from the back-office.
// There is always exactly one.
type Settings struct {
	CompanyName string  `json:"companyName"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	PostalCode  *string `json:"postalCode"`
	Country     *string `json:"country"`

	// DefaultVatRate is a percentage, 20 means 20%
	DefaultVatRate decimal.Decimal `json:"defaultVatRate"`

	EmailNotificationsEnabled   bool `json:"emailNotificationsEnabled"`
	ProjectNotificationsEnabled bool `json:"projectNotificationsEnabled"`
	InvoiceNotificationsEnabled bool `json:"invoiceNotificationsEnabled"`

	Theme    types.Theme `json:"theme"`
	Language string      `json:"language"`
}

// Copy returns a deep copy of the settings
func (s *Settings) Copy() *Settings {
	if s == nil {
		return nil
	}
	c := *s
	c.Address = types.CopyString(s.Address)
	c.City = types.CopyString(s.City)
	c.PostalCode = types.CopyString(s.PostalCode)
	c.Country = types.CopyString(s.Country)
	return &c
}

// NotifiesFor reports whether an event of the given family should produce
// a notification. Email is the master switch; projects and invoices have
// their own toggle on top of it.
func (s *Settings) NotifiesFor(family string) bool {
	if !s.EmailNotificationsEnabled {
		return false
	}
	switch family {
	case types.EventFamilyProject:
		return s.ProjectNotificationsEnabled
	case types.EventFamilyInvoice:
		return s.InvoiceNotificationsEnabled
	default:
		return true
	}
}

// VatMultiplier returns 1 + rate/100
func (s *Settings) VatMultiplier() decimal.Decimal {
	return decimal.NewFromInt(1).Add(s.DefaultVatRate.Div(decimal.NewFromInt(100)))
}
