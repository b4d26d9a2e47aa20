package settings_case

import (
	"context"

	settings_dto "github.com/Xenn-00/arbeitsplatz-meister/internal/dtos/settings-dto"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
)

type SettingsServiceContract interface {
	GetOrCreate(ctx context.Context, companyID string) (*entity.IntegrationSettingsEntity, *app_errors.AppError)
	GetSettings(ctx context.Context, principal *entity.Principal) (*settings_dto.SettingsResponse, *app_errors.AppError)
	UpdateSettings(ctx context.Context, principal *entity.Principal, req *settings_dto.UpdateSettingsRequest) (*settings_dto.SettingsResponse, *app_errors.AppError)
}
