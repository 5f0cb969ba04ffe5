package service_test

import (
	"context"
	"strings"
	"testing"

	"showroom/internal/dto"
	"showroom/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_DefaultsWhenUnset(t *testing.T) {
	svc := service.NewSettingsService(&stubSettingsRepo{})

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Your Brand Name", resp.CompanyName)
	assert.Contains(t, resp.CompanyAddress, "Dhaka")
}

func TestUpdateSettings_PartialUpdate(t *testing.T) {
	svc := service.NewSettingsService(&stubSettingsRepo{})

	name := "Stitch & Thread"
	resp, err := svc.Update(context.Background(), dto.UpdateSettingsRequest{CompanyName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Stitch & Thread", resp.CompanyName)
	// untouched field keeps the default
	assert.Contains(t, resp.CompanyAddress, "Dhaka")
}

func TestUpdateSettings_LogoSizeLimit(t *testing.T) {
	svc := service.NewSettingsService(&stubSettingsRepo{})

	huge := "data:image/png;base64," + strings.Repeat("A", 3<<20)
	_, err := svc.Update(context.Background(), dto.UpdateSettingsRequest{CompanyLogo: &huge})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}
