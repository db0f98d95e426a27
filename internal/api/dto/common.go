package dto

import (
	ierr "github.com/lumelec/backoffice/internal/errors"
	"github.com/lumelec/backoffice/internal/types"
	"github.com/lumelec/backoffice/internal/validator"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// SuccessResponse represents a generic success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// fieldErrors collects problems found in a partial update body
type fieldErrors map[string]any

// notNull flags an explicit null sent for a field that cannot be cleared
func notNull[T any](errs fieldErrors, field string, o types.Optional[T]) {
	if o.Present && o.Null {
		errs[field] = "must not be null"
	}
}

// matches runs a validator tag against a present string value
func matches(errs fieldErrors, field string, o types.Optional[string], tag, msg string) {
	v, ok := o.Get()
	if !ok {
		return
	}
	if err := validator.GetValidator().Var(v, tag); err != nil {
		errs[field] = msg
	}
}

func (errs fieldErrors) err() error {
	if len(errs) == 0 {
		return nil
	}
	return ierr.NewError("invalid field types").
		WithHint("Invalid field types.").
		WithReportableDetails(errs).
		Mark(ierr.ErrValidation)
}

// nonNegative rejects amounts below zero. label is the field name as
// shown to users, e.g. "Price".
func nonNegative(field, label string, d decimal.Decimal) error {
	if !d.IsNegative() {
		return nil
	}
	return ierr.NewErrorf("%s is negative", field).
		WithHintf("%s must be a non-negative number.", label).
		WithReportableDetails(map[string]any{field: "must be a non-negative number"}).
		Mark(ierr.ErrValidation)
}
