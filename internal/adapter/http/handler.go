// Package http is the echo handler layer of the stub API. It parses and
// validates requests, calls the catalog and writes envelope responses.
package http

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/travel-booking-client/internal/adapter/http/response"
	"github.com/flight-search/travel-booking-client/internal/domain"
	"github.com/flight-search/travel-booking-client/internal/infrastructure/logger"
)

// FlightCatalog is the flight inventory the handlers serve.
type FlightCatalog interface {
	Search(ctx context.Context, req domain.SearchRequest) (domain.SearchResultSet, error)
	Locations() []domain.Location
	Destinations() domain.LocationPair
	List(q domain.ListQuery) domain.FlightPage
	Get(id int64) (domain.AdminFlight, error)
	Create(in domain.FlightInput) domain.AdminFlight
	Update(id int64, in domain.FlightInput) (domain.AdminFlight, error)
	Delete(id int64) error
}

// FlightHandler handles the /flights endpoints.
type FlightHandler struct {
	catalog   FlightCatalog
	validator *domain.Validator
	log       *logger.Logger
}

// NewFlightHandler creates a FlightHandler.
func NewFlightHandler(cat FlightCatalog, v *domain.Validator, log *logger.Logger) *FlightHandler {
	return &FlightHandler{
		catalog:   cat,
		validator: v,
		log:       logger.OrNop(log).WithComponent("stubapi"),
	}
}

// SearchFlights handles POST /flights/search.
func (h *FlightHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	criteria, errs := ToDomainCriteria(&req)
	if errs.HasErrors() {
		return validationFailed(c, errs)
	}
	if err := h.validator.ValidateCriteria(criteria); err != nil {
		return h.handleError(c, err)
	}

	result, err := h.catalog.Search(c.Request().Context(), criteria.ToRequest())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, result, fmt.Sprintf("Found %d flights", result.TotalFlights()))
}

// Locations handles GET /flights/locations.
func (h *FlightHandler) Locations(c echo.Context) error {
	return response.OK(c, h.catalog.Locations(), "")
}

// Destinations handles GET /flights/locations/destinations.
func (h *FlightHandler) Destinations(c echo.Context) error {
	return response.OK(c, h.catalog.Destinations(), "")
}

// ListFlights handles GET /flights/admin and GET /flights/search/admin.
// Both accept the same parameters; searchTerm filters either.
func (h *FlightHandler) ListFlights(c echo.Context) error {
	q, errs := ParseListQuery(c)
	if errs.HasErrors() {
		return validationFailed(c, errs)
	}
	return response.OK(c, h.catalog.List(q), "")
}

// GetFlight handles GET /flights/admin/{id}.
func (h *FlightHandler) GetFlight(c echo.Context) error {
	id, ok := ParseFlightID(c)
	if !ok {
		return response.BadRequest(c, msgInvalidFlightID)
	}
	f, err := h.catalog.Get(id)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, f, "")
}

// CreateFlight handles POST /flights/admin.
func (h *FlightHandler) CreateFlight(c echo.Context) error {
	in, ok, err := h.bindFlight(c)
	if !ok {
		return err
	}
	f := h.catalog.Create(in)
	h.log.Info().Int64("id", f.ID).Str("flight_number", f.FlightNumber).Msg("flight created")
	return response.Created(c, f, "Flight created successfully")
}

// UpdateFlight handles PUT /flights/admin/{id}.
func (h *FlightHandler) UpdateFlight(c echo.Context) error {
	id, ok := ParseFlightID(c)
	if !ok {
		return response.BadRequest(c, msgInvalidFlightID)
	}
	in, ok, err := h.bindFlight(c)
	if !ok {
		return err
	}
	f, err := h.catalog.Update(id, in)
	if err != nil {
		return h.handleError(c, err)
	}
	h.log.Info().Int64("id", id).Msg("flight updated")
	return response.OK(c, f, "Flight updated successfully")
}

// DeleteFlight handles DELETE /flights/admin/{id}.
func (h *FlightHandler) DeleteFlight(c echo.Context) error {
	id, ok := ParseFlightID(c)
	if !ok {
		return response.BadRequest(c, msgInvalidFlightID)
	}
	if err := h.catalog.Delete(id); err != nil {
		return h.handleError(c, err)
	}
	h.log.Info().Int64("id", id).Msg("flight deleted")
	return response.OK(c, domain.DeleteResult{ID: id}, "Flight deleted successfully")
}

// bindFlight decodes and validates an admin flight body. When ok is false
// the response has been written and err is what the handler returns.
func (h *FlightHandler) bindFlight(c echo.Context) (in domain.FlightInput, ok bool, err error) {
	var req FlightRequest
	if bindErr := c.Bind(&req); bindErr != nil {
		return in, false, response.InvalidRequestBody(c)
	}
	in, errs := ToDomainFlightInput(&req)
	if errs.HasErrors() {
		return in, false, validationFailed(c, errs)
	}
	if vErr := h.validator.ValidateFlight(in); vErr != nil {
		return in, false, h.handleError(c, vErr)
	}
	return in, true, nil
}

// Health handles GET /health.
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c)
}
