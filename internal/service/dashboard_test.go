package service

import (
	"testing"

	"github.com/lumelec/backoffice/internal/api/dto"
	"github.com/lumelec/backoffice/internal/testutil"
	"github.com/lumelec/backoffice/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DashboardServiceSuite struct {
	testutil.BaseServiceTestSuite
	service        DashboardService
	invoiceService InvoiceService
}

func TestDashboardService(t *testing.T) {
	suite.Run(t, new(DashboardServiceSuite))
}

func (s *DashboardServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newTestParams(&s.BaseServiceTestSuite)
	s.service = NewDashboardService(params)
	s.invoiceService = NewInvoiceService(params)
}

func (s *DashboardServiceSuite) TestSeedSummary() {
	d, err := s.service.GetDashboard(s.GetContext())
	s.Require().NoError(err)

	s.Equal(3, d.Projects.Total)
	s.Equal(map[string]int{"Terminé": 1, "En cours": 1, "Planifié": 1}, d.Projects.ByStatus)
	s.Equal(2, d.Clients)
	s.Equal(2, d.Services)
	s.Equal(2, d.Invoices.Total)
	s.True(d.Invoices.Totals[types.InvoiceStatusPaid].Equal(decimal.RequireFromString("1500")))
	s.True(d.Invoices.Totals[types.InvoiceStatusCancelled].IsZero())
	s.True(d.Invoices.Outstanding.Equal(decimal.RequireFromString("750.50")))
	s.True(d.Invoices.OutstandingWithVat.Equal(decimal.RequireFromString("900.60")))
}

func (s *DashboardServiceSuite) TestReflectsNewInvoices() {
	_, err := s.invoiceService.CreateInvoice(s.GetContext(), dto.CreateInvoiceRequest{
		InvoiceNumber: "INV-003",
		ClientID:      lo.ToPtr(1),
		DateIssued:    "2024-01-01",
		DueDate:       "2024-02-01",
		Amount:        lo.ToPtr(types.NewNumber(decimal.NewFromInt(1000))),
		Status:        types.InvoiceStatusPending,
	})
	s.Require().NoError(err)

	d, err := s.service.GetDashboard(s.GetContext())
	s.Require().NoError(err)
	s.Equal(3, d.Invoices.Total)
	s.True(d.Invoices.Outstanding.Equal(decimal.RequireFromString("1750.50")))
}
