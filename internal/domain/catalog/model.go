// Package catalog holds the services the company sells. The package is
// not named after the entity to keep it apart from the service layer.
package catalog

import (
	"github.com/lumelec/backoffice/internal/types"
	"github.com/shopspring/decimal"
)

// Service is an offering from the catalog with its list price
type Service struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

func (s *Service) GetID() int {
	return s.ID
}

// Copy returns a deep copy of the service
func (s *Service) Copy() *Service {
	if s == nil {
		return nil
	}
	c := *s
	c.Description = types.CopyString(s.Description)
	return &c
}
