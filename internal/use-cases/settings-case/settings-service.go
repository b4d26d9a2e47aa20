package settings_case

import (
	"context"
	"time"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/abstraction/cache"
	settings_dto "github.com/Xenn-00/arbeitsplatz-meister/internal/dtos/settings-dto"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	settings_repo "github.com/Xenn-00/arbeitsplatz-meister/internal/repo/settings-repo"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/utils"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type SettingsService struct {
	repo     settings_repo.SettingsRepoContract
	cache    cache.Cache
	defaults entity.SettingsDefaults
	ttl      time.Duration
	now      func() time.Time
}

func NewSettingsService(db *pgxpool.Pool, redis *redis.Client, defaults entity.SettingsDefaults, ttl time.Duration) SettingsServiceContract {
	return &SettingsService{
		repo:     settings_repo.NewSettingsRepo(db),
		cache:    cache.NewRedisCache(redis),
		defaults: defaults,
		ttl:      ttl,
		now:      time.Now,
	}
}

// GetOrCreate liefert die Einstellungen eines Unternehmens und legt sie beim ersten Zugriff an.
// Parallele Erstzugriffe enden bei genau einer Zeile; der Verlierer liest die Zeile des Gewinners.
func (s *SettingsService) GetOrCreate(ctx context.Context, companyID string) (*entity.IntegrationSettingsEntity, *app_errors.AppError) {
	cacheKey := utils.SettingsCacheKey(companyID)

	var cached entity.IntegrationSettingsEntity
	hit, cacheErr := s.cache.Get(ctx, cacheKey, &cached)
	if cacheErr != nil {
		log.Warn().Err(cacheErr).Str("company_id", companyID).Msg("Settings-Cache nicht lesbar")
	} else if hit {
		return &cached, nil
	}

	settings, err := s.load(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, settings, s.ttl); err != nil {
		log.Warn().Err(err).Str("company_id", companyID).Msg("Settings-Cache nicht schreibbar")
	}

	return settings, nil
}

// load liest die Zeile aus der Datenbank; fehlt sie, wird sie mit ON CONFLICT DO NOTHING angelegt und erneut gelesen.
func (s *SettingsService) load(ctx context.Context, companyID string) (*entity.IntegrationSettingsEntity, *app_errors.AppError) {
	settings, err := s.repo.GetByCompany(ctx, companyID)
	if err != nil || settings != nil {
		return settings, err
	}

	fresh := s.defaults.ForCompany(uuid.Must(uuid.NewV7()).String(), companyID, s.now())
	inserted, err := s.repo.InsertIfAbsent(ctx, fresh)
	if err != nil {
		return nil, err
	}
	if inserted {
		log.Info().Str("company_id", companyID).Msg("Standard-Einstellungen angelegt")
	}

	settings, err = s.repo.GetByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, app_errors.NewNotFound("settings.not_found")
	}
	return settings, nil
}

func (s *SettingsService) GetSettings(ctx context.Context, principal *entity.Principal) (*settings_dto.SettingsResponse, *app_errors.AppError) {
	if principal.Role != entity.RoleAdmin {
		return nil, app_errors.NewPermissionDenied("Only admins can view settings")
	}

	settings, err := s.GetOrCreate(ctx, principal.CompanyID)
	if err != nil {
		return nil, err
	}
	return settings_dto.ToSettingsResponse(settings), nil
}

func (s *SettingsService) UpdateSettings(ctx context.Context, principal *entity.Principal, req *settings_dto.UpdateSettingsRequest) (*settings_dto.SettingsResponse, *app_errors.AppError) {
	if principal.Role != entity.RoleAdmin {
		return nil, app_errors.NewPermissionDenied("Only admins can update settings")
	}

	patch := entity.SettingsPatch{
		AllowEmployeeTaskCreation:       req.AllowEmployeeTaskCreation,
		AllowEmployeeTaskAssignment:     req.AllowEmployeeTaskAssignment,
		AllowIntraDepartmentAssignments: req.AllowIntraDepartmentAssignments,
		AllowMultiTaskAssignment:        req.AllowMultiTaskAssignment,
		AllowTimelinePriorityEditing:    req.AllowTimelinePriorityEditing,
		UpdatedBy:                       principal.ID,
	}
	if req.CrossDepartmentRedirection != nil {
		policy := entity.RedirectionPolicy(*req.CrossDepartmentRedirection)
		if !policy.IsValid() {
			return nil, app_errors.NewInvalidInput("Invalid cross department redirection policy")
		}
		patch.CrossDepartmentRedirection = &policy
	}

	settings, err := s.load(ctx, principal.CompanyID)
	if err != nil {
		return nil, err
	}

	patch.Apply(settings, s.now())

	if err := s.repo.Update(ctx, settings); err != nil {
		return nil, err
	}

	if err := s.cache.Del(ctx, utils.SettingsCacheKey(principal.CompanyID)); err != nil {
		log.Warn().Err(err).Msg("Settings-Cache nicht invalidierbar")
	}

	log.Info().Str("company_id", principal.CompanyID).Str("updated_by", principal.ID).Msg("Einstellungen aktualisiert")
	return settings_dto.ToSettingsResponse(settings), nil
}
