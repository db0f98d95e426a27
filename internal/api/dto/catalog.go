package dto

import (
	"github.com/lumelec/backoffice/internal/domain/catalog"
	"github.com/lumelec/backoffice/internal/types"
	"github.com/lumelec/backoffice/internal/validator"
)

type CreateServiceRequest struct {
	Name        string        `json:"name" validate:"required"`
	Description string        `json:"description"`
	Price       *types.Number `json:"price" validate:"required"`
}

func (r *CreateServiceRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return nonNegative("price", "Price", r.Price.Decimal)
}

func (r *CreateServiceRequest) ToService() *catalog.Service {
	return &catalog.Service{
		Name:        r.Name,
		Description: types.NullableString(r.Description),
		Price:       r.Price.Decimal,
	}
}

type UpdateServiceRequest struct {
	Name        types.Optional[string]       `json:"name"`
	Description types.Optional[string]       `json:"description"`
	Price       types.Optional[types.Number] `json:"price"`
}

func (r *UpdateServiceRequest) Validate() error {
	if price, ok := r.Price.Get(); ok {
		if err := nonNegative("price", "Price", price.Decimal); err != nil {
			return err
		}
	}
	errs := fieldErrors{}
	notNull(errs, "name", r.Name)
	notNull(errs, "price", r.Price)
	return errs.err()
}

func (r *UpdateServiceRequest) Apply(s *catalog.Service) {
	types.Apply(&s.Name, r.Name)
	types.ApplyNullableString(&s.Description, r.Description)
	types.ApplyNumber(&s.Price, r.Price)
}

type ServiceResponse struct {
	*catalog.Service
}
