package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/travel-booking-client/internal/adapter/http/response"
	"github.com/flight-search/travel-booking-client/internal/catalog"
	"github.com/flight-search/travel-booking-client/internal/domain"
)

const msgInvalidFlightID = "Flight id must be a positive integer"

// validationFailed writes a 422 carrying every field message.
func validationFailed(c echo.Context, errs *domain.ValidationErrors) error {
	return response.ValidationError(c, errs.Error(), errs.ToMap())
}

// handleError maps catalog and domain errors to responses.
//
// A missing flight is answered with success=false on a 200, the contract
// the booking client expects for rejected admin operations.
func (h *FlightHandler) handleError(c echo.Context, err error) error {
	var verrs *domain.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return validationFailed(c, verrs)
	case errors.Is(err, domain.ErrInvalidRequest):
		return response.ValidationError(c, err.Error(), nil)
	case errors.Is(err, catalog.ErrFlightNotFound):
		return response.Rejected(c, response.MsgFlightNotFound)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return response.RequestCancelled(c)
	}

	h.log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
	return response.InternalServerError(c)
}
