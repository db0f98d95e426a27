package service

import (
	"context"

	"github.com/lumelec/backoffice/internal/api/dto"
	"github.com/lumelec/backoffice/internal/domain/catalog"
	"github.com/lumelec/backoffice/internal/interfaces"
	"github.com/lumelec/backoffice/internal/types"
	"github.com/samber/lo"
)

type CatalogService = interfaces.CatalogService

type catalogService struct {
	ServiceParams
}

func NewCatalogService(params ServiceParams) CatalogService {
	return &catalogService{
		ServiceParams: params,
	}
}

func (s *catalogService) CreateService(ctx context.Context, req dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	svc := req.ToService()
	if err := s.CatalogRepo.Create(ctx, svc); err != nil {
		return nil, err
	}

	s.Logger.Infow("service created", "service_id", svc.ID, "name", svc.Name, "price", svc.Price)
	s.publishEvent(ctx, types.EventServiceCreated, svc.ID, svc)
	return &dto.ServiceResponse{Service: svc}, nil
}

func (s *catalogService) GetService(ctx context.Context, id int) (*dto.ServiceResponse, error) {
	svc, err := s.CatalogRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ServiceResponse{Service: svc}, nil
}

func (s *catalogService) ListServices(ctx context.Context) ([]*dto.ServiceResponse, error) {
	services, err := s.CatalogRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(services, func(svc *catalog.Service, _ int) *dto.ServiceResponse {
		return &dto.ServiceResponse{Service: svc}
	}), nil
}

func (s *catalogService) UpdateService(ctx context.Context, id int, req dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	svc, err := s.CatalogRepo.Update(ctx, id, func(current *catalog.Service) error {
		req.Apply(current)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, types.EventServiceUpdated, svc.ID, svc)
	return &dto.ServiceResponse{Service: svc}, nil
}

func (s *catalogService) DeleteService(ctx context.Context, id int) error {
	if err := s.CatalogRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.Logger.Infow("service deleted", "service_id", id)
	s.publishEvent(ctx, types.EventServiceDeleted, id, map[string]int{"id": id})
	return nil
}
