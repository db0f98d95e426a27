package service

import (
	"github.com/lumelec/backoffice/internal/testutil"
)

// newTestParams wires services to the suite's seeded stores
func newTestParams(s *testutil.BaseServiceTestSuite) ServiceParams {
	stores := s.GetStores()
	return NewServiceParams(
		s.GetLogger(),
		s.GetConfig(),
		stores.ProjectRepo,
		stores.ClientRepo,
		stores.CatalogRepo,
		stores.InvoiceRepo,
		stores.SettingsRepo,
		s.GetPublisher(),
	)
}
