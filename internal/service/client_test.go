package service

import (
	"testing"

	"github.com/lumelec/backoffice/internal/api/dto"
	ierr "github.com/lumelec/backoffice/internal/errors"
	"github.com/lumelec/backoffice/internal/testutil"
	"github.com/lumelec/backoffice/internal/types"
	"github.com/stretchr/testify/suite"
)

type ClientServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ClientService
}

func TestClientService(t *testing.T) {
	suite.Run(t, new(ClientServiceSuite))
}

func (s *ClientServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewClientService(newTestParams(&s.BaseServiceTestSuite))
}

func (s *ClientServiceSuite) TestCreateClient() {
	created, err := s.service.CreateClient(s.GetContext(), dto.CreateClientRequest{
		Name:          "Client Hôtellerie W",
		ContactPerson: "Paul Martin",
		Email:         "paul.martin@hotel-w.fr",
	})
	s.Require().NoError(err)
	s.Equal(3, created.ID)
	s.Nil(created.Phone)
	s.Nil(created.Address)

	events := s.GetPublisher().Events()
	s.Require().Len(events, 1)
	s.Equal(3, events[0].EntityID)
	s.Equal(types.GetRequestID(s.GetContext()), events[0].RequestID)
}

func (s *ClientServiceSuite) TestCreateRejectsInvalidEmail() {
	_, err := s.service.CreateClient(s.GetContext(), dto.CreateClientRequest{
		Name:          "A",
		ContactPerson: "B",
		Email:         "nope",
	})
	s.True(ierr.IsValidation(err))
}

func (s *ClientServiceSuite) TestUpdatePhone() {
	updated, err := s.service.UpdateClient(s.GetContext(), 2, dto.UpdateClientRequest{Phone: types.Some("0600000000")})
	s.Require().NoError(err)
	s.Equal("0600000000", *updated.Phone)

	updated, err = s.service.UpdateClient(s.GetContext(), 2, dto.UpdateClientRequest{Phone: types.Null[string]()})
	s.Require().NoError(err)
	s.Nil(updated.Phone)
	s.Equal("marie.curie@agriculture-y.fr", updated.Email)
}

func (s *ClientServiceSuite) TestUpdateRejectsNullName() {
	_, err := s.service.UpdateClient(s.GetContext(), 1, dto.UpdateClientRequest{Name: types.Null[string]()})
	s.True(ierr.IsValidation(err))

	c, err := s.service.GetClient(s.GetContext(), 1)
	s.Require().NoError(err)
	s.Equal("Client Industrie X", c.Name)
}

func (s *ClientServiceSuite) TestEmptyUpdateLeavesClientUnchanged() {
	before, err := s.GetStores().ClientRepo.Get(s.GetContext(), 1)
	s.Require().NoError(err)

	_, err = s.service.UpdateClient(s.GetContext(), 1, dto.UpdateClientRequest{})
	s.Require().NoError(err)

	after, err := s.GetStores().ClientRepo.Get(s.GetContext(), 1)
	s.Require().NoError(err)
	s.Equal(before, after)
}
