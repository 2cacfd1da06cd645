package services

import (
	"context"
	"lahmah_server/database"
	"lahmah_server/lib"
	"lahmah_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type BannerService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewBannerService(logger *gecho.Logger, db *database.DB) *BannerService {
	return &BannerService{
		logger: logger,
		db:     db,
	}
}

// GetBanners lists banners by display order. Pass activeOnly for the
// storefront view; the admin list shows everything.
func (bs *BannerService) GetBanners(ctx context.Context, activeOnly bool) ([]tables.Banner, error) {
	query := database.Query[tables.Banner](bs.db).
		OrderBy("display_order", database.ASC)

	if activeOnly {
		query = query.Where("is_active", true)
	}

	banners, err := query.All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return banners, nil
}

func (bs *BannerService) GetBannerByID(ctx context.Context, id uuid.UUID) (*tables.Banner, error) {
	banner, err := database.FindByID[tables.Banner](bs.db, ctx, id)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if banner == nil {
		return nil, lib.ErrNotFound
	}
	return banner, nil
}

func (bs *BannerService) CreateBanner(ctx context.Context, banner *tables.Banner) (*tables.Banner, error) {
	if banner.Id == uuid.Nil {
		banner.Id = uuid.New()
	}

	created, err := database.Create(bs.db, ctx, banner)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return created, nil
}

func (bs *BannerService) UpdateBanner(ctx context.Context, id uuid.UUID, fields map[string]any) (*tables.Banner, error) {
	rows, err := database.Query[tables.Banner](bs.db).
		Where("id", id).
		UpdateReturning(ctx, fields)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if len(rows) == 0 {
		return nil, lib.ErrNotFound
	}
	return &rows[0], nil
}

func (bs *BannerService) DeleteBanner(ctx context.Context, id uuid.UUID) error {
	affected, err := database.DeleteByID[tables.Banner](bs.db, ctx, id)
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}
	return nil
}
