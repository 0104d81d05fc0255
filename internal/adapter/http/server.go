package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-search/travel-booking-client/internal/adapter/http/middleware"
	"github.com/flight-search/travel-booking-client/internal/catalog"
	"github.com/flight-search/travel-booking-client/internal/domain"
	"github.com/flight-search/travel-booking-client/internal/infrastructure/logger"
)

// Server bundles what the stub API serves from.
type Server struct {
	Catalog   *catalog.Catalog
	Accounts  *catalog.Accounts
	Validator *domain.Validator
	Log       *logger.Logger
}

// NewEcho builds an Echo instance with the global middleware and every
// route registered.
func (s Server) NewEcho() *echo.Echo {
	log := logger.OrNop(s.Log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.Setup(e, log.WithComponent("http").Logger)

	flights := NewFlightHandler(s.Catalog, s.Validator, log)
	auth := NewAuthHandler(s.Accounts, s.Validator, log)
	RegisterRoutes(e, flights, auth, s.Accounts)
	return e
}
