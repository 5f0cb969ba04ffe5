package service

import (
	"context"

	"showroom/internal/dto"
	"showroom/internal/repository"
)

// maxLogoBytes caps the stored logo data URI at 2MB.
const maxLogoBytes = 2 << 20

type SettingsService interface {
	Get(ctx context.Context) (*dto.SettingsResponse, error)
	Update(ctx context.Context, req dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)
}

type settingsService struct {
	settings repository.SettingsRepository
}

func NewSettingsService(settings repository.SettingsRepository) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	current, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SettingsResponse{
		CompanyName:    current.CompanyName,
		CompanyAddress: current.CompanyAddress,
		CompanyLogo:    current.CompanyLogo,
	}, nil
}

// Update applies only the fields present in the request, so a logo upload
// does not clobber the name and vice versa.
func (s *settingsService) Update(ctx context.Context, req dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	current, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	if req.CompanyName != nil {
		current.CompanyName = *req.CompanyName
	}
	if req.CompanyAddress != nil {
		current.CompanyAddress = *req.CompanyAddress
	}
	if req.CompanyLogo != nil {
		if len(*req.CompanyLogo) > maxLogoBytes {
			return nil, invalidInput("logo exceeds the %dMB limit", maxLogoBytes>>20)
		}
		current.CompanyLogo = *req.CompanyLogo
	}
	if err := s.settings.Save(ctx, current); err != nil {
		return nil, err
	}
	return &dto.SettingsResponse{
		CompanyName:    current.CompanyName,
		CompanyAddress: current.CompanyAddress,
		CompanyLogo:    current.CompanyLogo,
	}, nil
}
