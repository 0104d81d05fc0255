package http

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/travel-booking-client/internal/catalog"
	"github.com/flight-search/travel-booking-client/internal/domain"
)

// ParseListQuery reads page, size, sortBy, sortDir and searchTerm from the
// query string. Absent values take the listing defaults.
func ParseListQuery(c echo.Context) (domain.ListQuery, *domain.ValidationErrors) {
	errs := &domain.ValidationErrors{}
	q := domain.ListQuery{
		SortBy:     c.QueryParam("sortBy"),
		SearchTerm: c.QueryParam("searchTerm"),
	}

	q.Page = intParam(c, errs, "page", 0)
	if q.Page < 0 {
		errs.Add("page", "page must not be negative")
	}

	q.Size = intParam(c, errs, "size", domain.DefaultPageSize)
	if q.Size < 1 || q.Size > catalog.MaxPageSize {
		errs.Add("size", "size must be between 1 and "+strconv.Itoa(catalog.MaxPageSize))
	}

	if q.SortBy != "" && !catalog.IsSortable(q.SortBy) {
		errs.Add("sortBy", "sortBy is not a sortable field")
	}

	switch dir := strings.ToLower(c.QueryParam("sortDir")); dir {
	case "", string(domain.SortAsc):
		q.SortDir = domain.SortAsc
	case string(domain.SortDesc):
		q.SortDir = domain.SortDesc
	default:
		errs.Add("sortDir", "sortDir must be asc or desc")
	}

	return q.Normalize(), errs
}

// ParseFlightID reads the :id path parameter.
func ParseFlightID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func intParam(c echo.Context, errs *domain.ValidationErrors, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		errs.Add(name, name+" must be a number")
		return def
	}
	return v
}
