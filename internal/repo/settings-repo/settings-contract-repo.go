package settings_repo

import (
	"context"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
)

type SettingsRepoContract interface {
	// GetByCompany liefert (nil, nil), wenn für das Unternehmen noch keine Zeile existiert.
	GetByCompany(ctx context.Context, companyID string) (*entity.IntegrationSettingsEntity, *app_errors.AppError)
	// InsertIfAbsent legt die Zeile an; false, wenn bereits eine existiert.
	InsertIfAbsent(ctx context.Context, settings *entity.IntegrationSettingsEntity) (bool, *app_errors.AppError)
	Update(ctx context.Context, settings *entity.IntegrationSettingsEntity) *app_errors.AppError
}
