package services

import (
	"context"
	"lahmah_server/database"
	"lahmah_server/lib"
	"lahmah_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

type CuttingService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewCuttingService(logger *gecho.Logger, db *database.DB) *CuttingService {
	return &CuttingService{
		logger: logger,
		db:     db,
	}
}

func (cs *CuttingService) GetCuttingMethods(ctx context.Context) ([]tables.CuttingMethod, error) {
	methods, err := database.Query[tables.CuttingMethod](cs.db).
		OrderBy("id", database.ASC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return methods, nil
}

func (cs *CuttingService) GetCuttingMethodByID(ctx context.Context, id int) (*tables.CuttingMethod, error) {
	method, err := database.Query[tables.CuttingMethod](cs.db).
		Where("id", id).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if method == nil {
		return nil, lib.ErrNotFound
	}
	return method, nil
}

func (cs *CuttingService) CreateCuttingMethod(ctx context.Context, method *tables.CuttingMethod) (*tables.CuttingMethod, error) {
	created, err := database.Create(cs.db, ctx, method)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return created, nil
}

func (cs *CuttingService) UpdateCuttingMethod(ctx context.Context, id int, nameAr string) (*tables.CuttingMethod, error) {
	rows, err := database.Query[tables.CuttingMethod](cs.db).
		Where("id", id).
		UpdateReturning(ctx, map[string]any{"name_ar": nameAr})
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if len(rows) == 0 {
		return nil, lib.ErrNotFound
	}
	return &rows[0], nil
}

// DeleteCuttingMethod removes the method and its product links. The link
// table has no cascade, so the links go first; the two deletes are
// independent statements and a failure between them leaves orphan-free
// links at worst.
func (cs *CuttingService) DeleteCuttingMethod(ctx context.Context, id int) error {
	if _, err := database.Query[tables.ProductCuttingMethod](cs.db).
		Where("cutting_method_id", id).
		Delete(ctx); err != nil {
		return lib.MapPgError(err)
	}

	affected, err := database.Query[tables.CuttingMethod](cs.db).
		Where("id", id).
		Delete(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}
	return nil
}
