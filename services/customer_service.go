package services

import (
	"context"
	"lahmah_server/database"
	"lahmah_server/lib"
	"lahmah_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type CustomerService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewCustomerService(logger *gecho.Logger, db *database.DB) *CustomerService {
	return &CustomerService{
		logger: logger,
		db:     db,
	}
}

// GetCustomers lists all profiles newest first.
func (cs *CustomerService) GetCustomers(ctx context.Context) ([]tables.Profile, error) {
	profiles, err := database.Query[tables.Profile](cs.db).
		OrderBy("created_at", database.DESC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	for i := range profiles {
		profiles[i].PasswordHash = ""
	}
	return profiles, nil
}

func (cs *CustomerService) GetCustomerByID(ctx context.Context, id uuid.UUID) (*tables.Profile, error) {
	profile, err := database.FindByID[tables.Profile](cs.db, ctx, id)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if profile == nil {
		return nil, lib.ErrNotFound
	}

	profile.PasswordHash = ""
	return profile, nil
}

// UpdateCustomer applies a partial update to a profile. Role and password
// are managed elsewhere and never pass through here.
func (cs *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, fields map[string]any) (*tables.Profile, error) {
	allowed := map[string]bool{
		"full_name": true,
		"phone":     true,
		"email":     true,
	}
	updates := make(map[string]any, len(fields))
	for key, value := range fields {
		if allowed[key] {
			updates[key] = value
		}
	}
	if len(updates) == 0 {
		return cs.GetCustomerByID(ctx, id)
	}

	rows, err := database.Query[tables.Profile](cs.db).
		Where("id", id).
		UpdateReturning(ctx, updates)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if len(rows) == 0 {
		return nil, lib.ErrNotFound
	}

	profile := &rows[0]
	profile.PasswordHash = ""
	return profile, nil
}

func (cs *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	affected, err := database.DeleteByID[tables.Profile](cs.db, ctx, id)
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}
	return nil
}

// SearchCustomers substring-matches name, phone and email, capped at 20.
func (cs *CustomerService) SearchCustomers(ctx context.Context, term string) ([]tables.Profile, error) {
	pattern := "%" + term + "%"

	profiles, err := database.Query[tables.Profile](cs.db).
		Or().
		WhereILike("full_name", pattern).
		WhereILike("phone", pattern).
		WhereILike("email", pattern).
		End().
		OrderBy("created_at", database.DESC).
		Limit(20).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	for i := range profiles {
		profiles[i].PasswordHash = ""
	}
	return profiles, nil
}

func (cs *CustomerService) CountCustomers(ctx context.Context) (int, error) {
	count, err := database.Query[tables.Profile](cs.db).Count(ctx)
	if err != nil {
		return 0, lib.MapPgError(err)
	}
	return count, nil
}
