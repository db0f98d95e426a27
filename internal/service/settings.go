package service

import (
	"context"

	"github.com/lumelec/backoffice/internal/api/dto"
	"github.com/lumelec/backoffice/internal/domain/settings"
	"github.com/lumelec/backoffice/internal/interfaces"
	"github.com/lumelec/backoffice/internal/types"
)

type SettingsService = interfaces.SettingsService

type settingsService struct {
	ServiceParams
}

func NewSettingsService(params ServiceParams) SettingsService {
	return &settingsService{
		ServiceParams: params,
	}
}

func (s *settingsService) GetSettings(ctx context.Context) (*dto.SettingsResponse, error) {
	st, err := s.SettingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SettingsResponse{Settings: st}, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	st, err := s.SettingsRepo.Update(ctx, func(current *settings.Settings) error {
		req.Apply(current)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("settings updated",
		"theme", st.Theme,
		"language", st.Language,
		"default_vat_rate", st.DefaultVatRate,
	)
	s.publishEvent(ctx, types.EventSettingsUpdated, 0, st)
	return &dto.SettingsResponse{Settings: st}, nil
}
