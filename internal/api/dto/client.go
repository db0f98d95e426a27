package dto

import (
	"github.com/lumelec/backoffice/internal/domain/client"
	"github.com/lumelec/backoffice/internal/types"
	"github.com/lumelec/backoffice/internal/validator"
)

type CreateClientRequest struct {
	Name          string `json:"name" validate:"required"`
	ContactPerson string `json:"contactPerson" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}

func (r *CreateClientRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateClientRequest) ToClient() *client.Client {
	return &client.Client{
		Name:          r.Name,
		ContactPerson: r.ContactPerson,
		Email:         r.Email,
		Phone:         types.NullableString(r.Phone),
		Address:       types.NullableString(r.Address),
	}
}

type UpdateClientRequest struct {
	Name          types.Optional[string] `json:"name"`
	ContactPerson types.Optional[string] `json:"contactPerson"`
	Email         types.Optional[string] `json:"email"`
	Phone         types.Optional[string] `json:"phone"`
	Address       types.Optional[string] `json:"address"`
}

func (r *UpdateClientRequest) Validate() error {
	errs := fieldErrors{}
	notNull(errs, "name", r.Name)
	notNull(errs, "contactPerson", r.ContactPerson)
	notNull(errs, "email", r.Email)
	matches(errs, "email", r.Email, "email", "must be a valid email address")
	return errs.err()
}

func (r *UpdateClientRequest) Apply(c *client.Client) {
	types.Apply(&c.Name, r.Name)
	types.Apply(&c.ContactPerson, r.ContactPerson)
	types.Apply(&c.Email, r.Email)
	types.ApplyNullableString(&c.Phone, r.Phone)
	types.ApplyNullableString(&c.Address, r.Address)
}

type ClientResponse struct {
	*client.Client
}
