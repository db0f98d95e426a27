package service

import (
	"context"

	"github.com/lumelec/backoffice/internal/api/dto"
	"github.com/lumelec/backoffice/internal/domain/project"
	"github.com/lumelec/backoffice/internal/interfaces"
	"github.com/lumelec/backoffice/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type DashboardService = interfaces.DashboardService

type dashboardService struct {
	ServiceParams
}

func NewDashboardService(params ServiceParams) DashboardService {
	return &dashboardService{
		ServiceParams: params,
	}
}

// GetDashboard is computed from the stores on every call
func (s *dashboardService) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	projects, err := s.ProjectRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := s.ClientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	services, err := s.CatalogRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	invoices, err := s.InvoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	st, err := s.SettingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	byStatus := lo.MapValues(
		lo.GroupBy(projects, func(p *project.Project) string { return p.Status }),
		func(group []*project.Project, _ string) int { return len(group) },
	)

	totals := make(map[types.InvoiceStatus]decimal.Decimal, len(types.InvoiceStatuses))
	for _, status := range types.InvoiceStatuses {
		totals[status] = decimal.Zero
	}
	for _, inv := range invoices {
		totals[inv.Status] = totals[inv.Status].Add(inv.Amount)
	}

	outstanding := totals[types.InvoiceStatusPending]

	return &dto.DashboardResponse{
		Projects: dto.ProjectSummary{
			Total:    len(projects),
			ByStatus: byStatus,
		},
		Clients:  len(clients),
		Services: len(services),
		Invoices: dto.InvoiceSummary{
			Total:              len(invoices),
			Totals:             totals,
			Outstanding:        outstanding,
			DefaultVatRate:     st.DefaultVatRate,
			OutstandingWithVat: outstanding.Mul(st.VatMultiplier()).Round(2),
		},
	}, nil
}
