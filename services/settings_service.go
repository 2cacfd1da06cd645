package services

import (
	"context"
	"lahmah_server/database"
	"lahmah_server/lib"
	"lahmah_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type SettingsService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewSettingsService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *SettingsService {
	return &SettingsService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// GetSettings returns the single app_settings row, or (nil, nil) when the
// store has never been configured.
func (ss *SettingsService) GetSettings(ctx context.Context) (*tables.AppSettings, error) {
	var cached tables.AppSettings
	if hit, err := ss.cacheService.GetJSON(settingsCacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	settings, err := database.Query[tables.AppSettings](ss.db).
		Limit(1).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if settings == nil {
		return nil, nil
	}

	if err := ss.cacheService.SetJSON(settingsCacheKey, settings, ss.cacheService.config.Cache.SettingsTTL); err != nil {
		ss.logger.Warn("Failed to cache settings", gecho.Field("error", err))
	}
	return settings, nil
}

// UpdateSettings writes the settings singleton: it reads the current row's
// id and either inserts the first row or updates the existing one. The read
// and the write are separate statements; with a single admin writer the
// race window is accepted.
func (ss *SettingsService) UpdateSettings(ctx context.Context, incoming *tables.AppSettings) (*tables.AppSettings, error) {
	current, err := database.Query[tables.AppSettings](ss.db).
		Select("id").
		Limit(1).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	var saved *tables.AppSettings
	if current == nil {
		if incoming.Id == uuid.Nil {
			incoming.Id = uuid.New()
		}
		saved, err = database.Create(ss.db, ctx, incoming)
		if err != nil {
			return nil, lib.MapPgError(err)
		}
	} else {
		rows, err := database.Query[tables.AppSettings](ss.db).
			Where("id", current.Id).
			UpdateReturning(ctx, map[string]any{
				"delivery_fee":   incoming.DeliveryFee,
				"tax_percentage": incoming.TaxPercentage,
				"contact_phone":  incoming.ContactPhone,
				"is_app_active":  incoming.IsAppActive,
			})
		if err != nil {
			return nil, lib.MapPgError(err)
		}
		if len(rows) == 0 {
			return nil, lib.ErrNotFound
		}
		saved = &rows[0]
	}

	ss.cacheService.InvalidateSettings()
	return saved, nil
}

// SetAppActive toggles the storefront on or off. Unlike UpdateSettings it
// refuses to run before the settings row exists.
func (ss *SettingsService) SetAppActive(ctx context.Context, active bool) (*tables.AppSettings, error) {
	current, err := database.Query[tables.AppSettings](ss.db).
		Select("id").
		Limit(1).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if current == nil {
		return nil, lib.ErrNotFound
	}

	rows, err := database.Query[tables.AppSettings](ss.db).
		Where("id", current.Id).
		UpdateReturning(ctx, map[string]any{"is_app_active": active})
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if len(rows) == 0 {
		return nil, lib.ErrNotFound
	}

	ss.cacheService.InvalidateSettings()
	return &rows[0], nil
}
