package handling

import (
	"lahmah_server/services"
	"net/http"
	"strconv"
	"strings"
)

// ParseProductListOptions parses HTTP query parameters into ProductListOptions
func ParseProductListOptions(r *http.Request) (*services.ProductListOptions, error) {
	query := r.URL.Query()

	// Early return if no query params
	if len(query) == 0 {
		return &services.ProductListOptions{}, nil
	}

	opts := &services.ProductListOptions{}

	if categoryID := query.Get("category_id"); categoryID != "" {
		opts.CategoryID = categoryID
	}

	if isActive := query.Get("is_active"); isActive != "" {
		valBool, err := strconv.ParseBool(isActive)
		if err != nil {
			return nil, err
		}
		opts.IsActive = &valBool
	}

	if searchTerm := query.Get("search"); searchTerm != "" {
		opts.SearchTerm = searchTerm
	}

	if page := query.Get("page"); page != "" {
		valInt, err := strconv.Atoi(page)
		if err != nil {
			return nil, err
		}
		opts.Page = valInt
	}

	if pageSize := query.Get("page_size"); pageSize != "" {
		valInt, err := strconv.Atoi(pageSize)
		if err != nil {
			return nil, err
		}
		opts.PageSize = valInt
	}

	if sortBy := query.Get("sort_by"); sortBy != "" {
		opts.SortBy = sortBy
	}

	if sortDirection := query.Get("sort_direction"); sortDirection != "" {
		opts.SortDirection = strings.ToUpper(sortDirection)
	}

	return opts, nil
}

// ParseOrderListOptions parses HTTP query parameters into OrderListOptions
func ParseOrderListOptions(r *http.Request) *services.OrderListOptions {
	query := r.URL.Query()

	opts := &services.OrderListOptions{}

	if status := query.Get("status"); status != "" {
		opts.Status = status
	}

	if limit := query.Get("limit"); limit != "" {
		if valInt, err := strconv.Atoi(limit); err == nil && valInt > 0 {
			opts.Limit = valInt
		}
	}

	return opts
}
