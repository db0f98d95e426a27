package validator

import (
	"testing"

	"github.com/cockroachdb/errors"
	ierr "github.com/lumelec/backoffice/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Date  string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
}

func TestValidateRequest(t *testing.T) {
	require.NoError(t, ValidateRequest(&sample{Name: "a", Email: "a@b.fr", Date: "2024-01-01"}))

	err := ValidateRequest(&sample{Email: "not-an-email"})
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
	assert.Contains(t, errors.GetAllHints(err), "Missing required fields: name.")

	err = ValidateRequest(&sample{Name: "a", Email: "a@b.fr", Date: "01/02/2024"})
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}
