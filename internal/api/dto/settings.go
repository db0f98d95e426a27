package dto

import (
	"github.com/lumelec/backoffice/internal/domain/settings"
	"github.com/lumelec/backoffice/internal/types"
)

type UpdateSettingsRequest struct {
	CompanyName                 types.Optional[string]       `json:"companyName"`
	Address                     types.Optional[string]       `json:"address"`
	City                        types.Optional[string]       `json:"city"`
	PostalCode                  types.Optional[string]       `json:"postalCode"`
	Country                     types.Optional[string]       `json:"country"`
	DefaultVatRate              types.Optional[types.Number] `json:"defaultVatRate"`
	EmailNotificationsEnabled   types.Optional[bool]         `json:"emailNotificationsEnabled"`
	ProjectNotificationsEnabled types.Optional[bool]         `json:"projectNotificationsEnabled"`
	InvoiceNotificationsEnabled types.Optional[bool]         `json:"invoiceNotificationsEnabled"`
	Theme                       types.Optional[types.Theme]  `json:"theme"`
	Language                    types.Optional[string]       `json:"language"`
}

func (r *UpdateSettingsRequest) Validate() error {
	if rate, ok := r.DefaultVatRate.Get(); ok {
		if err := nonNegative("defaultVatRate", "Default VAT Rate", rate.Decimal); err != nil {
			return err
		}
	}
	errs := fieldErrors{}
	notNull(errs, "companyName", r.CompanyName)
	notNull(errs, "defaultVatRate", r.DefaultVatRate)
	notNull(errs, "emailNotificationsEnabled", r.EmailNotificationsEnabled)
	notNull(errs, "projectNotificationsEnabled", r.ProjectNotificationsEnabled)
	notNull(errs, "invoiceNotificationsEnabled", r.InvoiceNotificationsEnabled)
	notNull(errs, "theme", r.Theme)
	notNull(errs, "language", r.Language)
	if theme, ok := r.Theme.Get(); ok && theme.Validate() != nil {
		errs["theme"] = "must be one of light dark system"
	}
	return errs.err()
}

func (r *UpdateSettingsRequest) Apply(s *settings.Settings) {
	types.Apply(&s.CompanyName, r.CompanyName)
	types.ApplyNullableString(&s.Address, r.Address)
	types.ApplyNullableString(&s.City, r.City)
	types.ApplyNullableString(&s.PostalCode, r.PostalCode)
	types.ApplyNullableString(&s.Country, r.Country)
	types.ApplyNumber(&s.DefaultVatRate, r.DefaultVatRate)
	types.Apply(&s.EmailNotificationsEnabled, r.EmailNotificationsEnabled)
	types.Apply(&s.ProjectNotificationsEnabled, r.ProjectNotificationsEnabled)
	types.Apply(&s.InvoiceNotificationsEnabled, r.InvoiceNotificationsEnabled)
	types.Apply(&s.Theme, r.Theme)
	types.Apply(&s.Language, r.Language)
}

type SettingsResponse struct {
	*settings.Settings
}
