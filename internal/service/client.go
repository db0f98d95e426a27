package service

import (
	"context"

	"github.com/lumelec/backoffice/internal/api/dto"
	"github.com/lumelec/backoffice/internal/domain/client"
	"github.com/lumelec/backoffice/internal/interfaces"
	"github.com/lumelec/backoffice/internal/types"
	"github.com/samber/lo"
)

type ClientService = interfaces.ClientService

type clientService struct {
	ServiceParams
}

func NewClientService(params ServiceParams) ClientService {
	return &clientService{
		ServiceParams: params,
	}
}

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c := req.ToClient()
	if err := s.ClientRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.Logger.Infow("client created", "client_id", c.ID, "name", c.Name)
	s.publishEvent(ctx, types.EventClientCreated, c.ID, c)
	return &dto.ClientResponse{Client: c}, nil
}

func (s *clientService) GetClient(ctx context.Context, id int) (*dto.ClientResponse, error) {
	c, err := s.ClientRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ClientResponse{Client: c}, nil
}

func (s *clientService) ListClients(ctx context.Context) ([]*dto.ClientResponse, error) {
	clients, err := s.ClientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(clients, func(c *client.Client, _ int) *dto.ClientResponse {
		return &dto.ClientResponse{Client: c}
	}), nil
}

func (s *clientService) UpdateClient(ctx context.Context, id int, req dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.ClientRepo.Update(ctx, id, func(current *client.Client) error {
		req.Apply(current)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, types.EventClientUpdated, c.ID, c)
	return &dto.ClientResponse{Client: c}, nil
}

func (s *clientService) DeleteClient(ctx context.Context, id int) error {
	if err := s.ClientRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.Logger.Infow("client deleted", "client_id", id)
	s.publishEvent(ctx, types.EventClientDeleted, id, map[string]int{"id": id})
	return nil
}
