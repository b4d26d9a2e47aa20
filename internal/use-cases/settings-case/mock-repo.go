package settings_case

import (
	"context"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	"github.com/stretchr/testify/mock"
)

type MockSettingsRepo struct {
	mock.Mock
}

func (m *MockSettingsRepo) GetByCompany(ctx context.Context, companyID string) (*entity.IntegrationSettingsEntity, *app_errors.AppError) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(*entity.IntegrationSettingsEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockSettingsRepo) InsertIfAbsent(ctx context.Context, settings *entity.IntegrationSettingsEntity) (bool, *app_errors.AppError) {
	args := m.Called(ctx, settings)
	return args.Bool(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockSettingsRepo) Update(ctx context.Context, settings *entity.IntegrationSettingsEntity) *app_errors.AppError {
	args := m.Called(ctx, settings)
	return args.Get(0).(*app_errors.AppError)
}
