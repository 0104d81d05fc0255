package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/travel-booking-client/internal/adapter/http/middleware"
	"github.com/flight-search/travel-booking-client/internal/adapter/http/response"
)

// BasePath prefixes every API route.
const BasePath = "/api"

// RegisterRoutes registers the stub API routes:
//
//	GET    /health
//	POST   /api/flights/search
//	GET    /api/flights/locations
//	GET    /api/flights/locations/destinations
//	GET    /api/flights/admin                  (admin)
//	POST   /api/flights/admin                  (admin)
//	GET    /api/flights/search/admin           (admin)
//	GET    /api/flights/admin/:id              (admin)
//	PUT    /api/flights/admin/:id              (admin)
//	DELETE /api/flights/admin/:id              (admin)
//	POST   /api/auth/login
//	POST   /api/auth/logout
//	GET    /api/auth/me                        (authenticated)
//	POST   /api/auth/refresh                   (authenticated)
func RegisterRoutes(e *echo.Echo, flights *FlightHandler, auth *AuthHandler, accounts middleware.Authenticator) {
	e.GET("/health", flights.Health)

	api := e.Group(BasePath)
	requireAuth := middleware.RequireAuth(accounts)
	adminOnly := []echo.MiddlewareFunc{requireAuth, middleware.RequireAdmin()}

	f := api.Group("/flights")
	f.POST("/search", flights.SearchFlights)
	f.GET("/locations", flights.Locations)
	f.GET("/locations/destinations", flights.Destinations)
	f.GET("/search/admin", flights.ListFlights, adminOnly...)

	admin := f.Group("/admin", adminOnly...)
	admin.GET("", flights.ListFlights)
	admin.POST("", flights.CreateFlight)
	admin.GET("/:id", flights.GetFlight)
	admin.PUT("/:id", flights.UpdateFlight)
	admin.DELETE("/:id", flights.DeleteFlight)

	a := api.Group("/auth")
	a.POST("/login", auth.Login)
	a.POST("/logout", auth.Logout)
	a.GET("/me", auth.Me, requireAuth)
	a.POST("/refresh", auth.Refresh, requireAuth)

	e.HTTPErrorHandler = ErrorHandler(e.HTTPErrorHandler)
}

// ErrorHandler writes echo's own errors (unknown route, wrong method) as
// envelopes and defers everything else to next.
func ErrorHandler(next echo.HTTPErrorHandler) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		he, ok := err.(*echo.HTTPError)
		if !ok {
			next(err, c)
			return
		}
		msg, _ := he.Message.(string)
		if he.Code == http.StatusNotFound {
			msg = response.MsgRouteNotFound
		}
		if msg == "" {
			msg = response.MsgInternalError
		}
		_ = response.JSON(c, he.Code, response.Failure(msg, nil))
	}
}
