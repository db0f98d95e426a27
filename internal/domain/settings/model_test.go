package settings

import (
	"testing"

	"github.com/lumelec/backoffice/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNotifiesFor(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		family   string
		expected bool
	}{
		{
			name:     "email off silences everything",
			settings: Settings{ProjectNotificationsEnabled: true, InvoiceNotificationsEnabled: true},
			family:   types.EventFamilyProject,
			expected: false,
		},
		{
			name:     "project toggle on",
			settings: Settings{EmailNotificationsEnabled: true, ProjectNotificationsEnabled: true},
			family:   types.EventFamilyProject,
			expected: true,
		},
		{
			name:     "invoice toggle off",
			settings: Settings{EmailNotificationsEnabled: true, ProjectNotificationsEnabled: true},
			family:   types.EventFamilyInvoice,
			expected: false,
		},
		{
			name:     "clients only need email",
			settings: Settings{EmailNotificationsEnabled: true},
			family:   types.EventFamilyClient,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.settings.NotifiesFor(tt.family))
		})
	}
}

func TestCopyAndVat(t *testing.T) {
	s := &Settings{City: types.NullableString("Ville"), DefaultVatRate: decimal.NewFromInt(20)}
	c := s.Copy()
	*c.City = "Lyon"
	assert.Equal(t, "Ville", *s.City)
	assert.True(t, s.VatMultiplier().Equal(decimal.RequireFromString("1.2")))
}
