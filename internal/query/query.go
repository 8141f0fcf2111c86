// Package query applies filter, sort and pagination parameters to list
// queries.
package query

import (
	"net/url"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/validation"
)

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 1000
)

// Params describes an optional filter predicate, sort order and page window.
// Field-name matching is case-insensitive; an unrecognized filter or sort
// field is a silent no-op rather than an error.
type Params struct {
	FilterOn    string
	FilterQuery string
	SortBy      string
	IsAscending bool
	PageNumber  int
	PageSize    int
}

// Parse reads list parameters from the URL query string. A page number below
// one or a non-positive page size is a validation error, never a clamp.
func Parse(values url.Values) (Params, validation.Violations) {
	params := Params{
		FilterOn:    values.Get("filterOn"),
		FilterQuery: values.Get("filterQuery"),
		SortBy:      values.Get("sortBy"),
		IsAscending: true,
		PageNumber:  DefaultPageNumber,
		PageSize:    DefaultPageSize,
	}

	violations := validation.Violations{}

	if raw := values.Get("isAscending"); raw != "" {
		ascending, err := strconv.ParseBool(raw)
		if err != nil {
			violations["isAscending"] = append(violations["isAscending"], "isAscending has to be a boolean")
		} else {
			params.IsAscending = ascending
		}
	}

	if raw := values.Get("pageNumber"); raw != "" {
		number, err := strconv.Atoi(raw)
		if err != nil || number < 1 {
			violations["pageNumber"] = append(violations["pageNumber"], "pageNumber has to be a positive integer")
		} else {
			params.PageNumber = number
		}
	}

	if raw := values.Get("pageSize"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			violations["pageSize"] = append(violations["pageSize"], "pageSize has to be a positive integer")
		} else {
			params.PageSize = size
		}
	}

	if len(violations) > 0 {
		return params, violations
	}
	return params, nil
}

// FilterColumn resolves the filter field name to a column, or "" when the
// field is unrecognized or no query string was given.
func (p Params) FilterColumn() string {
	if p.FilterQuery == "" {
		return ""
	}
	if strings.EqualFold(p.FilterOn, "Name") {
		return "name"
	}
	return ""
}

// SortColumn resolves the sort field name to a column, or "" when the field
// is unrecognized.
func (p Params) SortColumn() string {
	switch {
	case strings.EqualFold(p.SortBy, "Name"):
		return "name"
	case strings.EqualFold(p.SortBy, "LengthInKm"):
		return "length_in_km"
	}
	return ""
}

// Offset is the number of rows skipped before the requested page.
func (p Params) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}

// Apply chains the filter, sort and page window onto a collection query.
// Filtering is a case-insensitive substring match. Pagination always runs
// after filtering and sorting.
func (p Params) Apply(db *gorm.DB) *gorm.DB {
	if column := p.FilterColumn(); column != "" {
		db = db.Where(column+" ILIKE ?", "%"+p.FilterQuery+"%")
	}

	if column := p.SortColumn(); column != "" {
		direction := "asc"
		if !p.IsAscending {
			direction = "desc"
		}
		db = db.Order(column + " " + direction)
	}

	return db.Offset(p.Offset()).Limit(p.PageSize)
}
