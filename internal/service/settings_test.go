package service

import (
	"testing"

	"github.com/lumelec/backoffice/internal/api/dto"
	ierr "github.com/lumelec/backoffice/internal/errors"
	"github.com/lumelec/backoffice/internal/testutil"
	"github.com/lumelec/backoffice/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SettingsServiceSuite struct {
	testutil.BaseServiceTestSuite
	service SettingsService
}

func TestSettingsService(t *testing.T) {
	suite.Run(t, new(SettingsServiceSuite))
}

func (s *SettingsServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewSettingsService(newTestParams(&s.BaseServiceTestSuite))
}

func (s *SettingsServiceSuite) TestGetSeed() {
	st, err := s.service.GetSettings(s.GetContext())
	s.Require().NoError(err)
	s.Equal("Mon Entreprise Inc.", st.CompanyName)
	s.True(st.DefaultVatRate.Equal(decimal.NewFromInt(20)))
	s.False(st.InvoiceNotificationsEnabled)
	s.Equal(types.ThemeLight, st.Theme)
}

func (s *SettingsServiceSuite) TestNegativeVatIsRejected() {
	_, err := s.service.UpdateSettings(s.GetContext(), dto.UpdateSettingsRequest{
		CompanyName:    types.Some("Autre"),
		DefaultVatRate: types.Some(types.NewNumber(decimal.NewFromInt(-1))),
	})
	s.True(ierr.IsValidation(err))

	st, err := s.service.GetSettings(s.GetContext())
	s.Require().NoError(err)
	s.Equal("Mon Entreprise Inc.", st.CompanyName)
	s.True(st.DefaultVatRate.Equal(decimal.NewFromInt(20)))
}

func (s *SettingsServiceSuite) TestPartialUpdate() {
	st, err := s.service.UpdateSettings(s.GetContext(), dto.UpdateSettingsRequest{
		Theme:                       types.Some(types.ThemeDark),
		InvoiceNotificationsEnabled: types.Some(true),
		City:                        types.Some(""),
	})
	s.Require().NoError(err)
	s.Equal(types.ThemeDark, st.Theme)
	s.True(st.InvoiceNotificationsEnabled)
	s.Nil(st.City)
	s.Equal("10001", *st.PostalCode)
	s.Equal("fr", st.Language)

	s.Equal([]string{types.EventSettingsUpdated}, s.GetPublisher().EventNames())
}

func (s *SettingsServiceSuite) TestEmptyUpdateLeavesSettingsUnchanged() {
	before, err := s.GetStores().SettingsRepo.Get(s.GetContext())
	s.Require().NoError(err)

	_, err = s.service.UpdateSettings(s.GetContext(), dto.UpdateSettingsRequest{})
	s.Require().NoError(err)

	after, err := s.GetStores().SettingsRepo.Get(s.GetContext())
	s.Require().NoError(err)
	s.Equal(before, after)
}
