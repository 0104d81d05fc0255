package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/flight-search/travel-booking-client/internal/domain"
)

// SearchFlights calls POST /flights/search.
func (c *Client) SearchFlights(ctx context.Context, req domain.SearchRequest) (domain.Envelope[domain.SearchResultSet], error) {
	return do[domain.SearchResultSet](ctx, c, request{
		method:   http.MethodPost,
		path:     "/flights/search",
		body:     req,
		fallback: "Search failed",
	})
}

// Locations calls GET /flights/locations.
func (c *Client) Locations(ctx context.Context) (domain.Envelope[[]domain.Location], error) {
	return do[[]domain.Location](ctx, c, request{
		method:   http.MethodGet,
		path:     "/flights/locations",
		fallback: "Error loading available origins",
	})
}

// Destinations calls GET /flights/locations/destinations.
func (c *Client) Destinations(ctx context.Context) (domain.Envelope[domain.LocationPair], error) {
	return do[domain.LocationPair](ctx, c, request{
		method:   http.MethodGet,
		path:     "/flights/locations/destinations",
		fallback: "Error loading available destinations",
	})
}

// ListAdminFlights calls GET /flights/admin.
func (c *Client) ListAdminFlights(ctx context.Context, q domain.ListQuery) (domain.Envelope[domain.FlightPage], error) {
	return do[domain.FlightPage](ctx, c, request{
		method:   http.MethodGet,
		path:     "/flights/admin",
		query:    listParams(q),
		fallback: "Failed to fetch flights",
	})
}

// SearchAdminFlights calls GET /flights/search/admin.
func (c *Client) SearchAdminFlights(ctx context.Context, q domain.ListQuery) (domain.Envelope[domain.FlightPage], error) {
	return do[domain.FlightPage](ctx, c, request{
		method:   http.MethodGet,
		path:     "/flights/search/admin",
		query:    listParams(q),
		fallback: "Failed to fetch flights",
	})
}

// GetFlight calls GET /flights/admin/{id}.
func (c *Client) GetFlight(ctx context.Context, id int64) (domain.Envelope[domain.AdminFlight], error) {
	return do[domain.AdminFlight](ctx, c, request{
		method:   http.MethodGet,
		path:     flightPath(id),
		fallback: "Failed to fetch flight",
	})
}

// CreateFlight calls POST /flights/admin.
func (c *Client) CreateFlight(ctx context.Context, in domain.FlightInput) (domain.Envelope[domain.AdminFlight], error) {
	return do[domain.AdminFlight](ctx, c, request{
		method:   http.MethodPost,
		path:     "/flights/admin",
		body:     newFlightBody(in),
		fallback: "Failed to create flight",
	})
}

// UpdateFlight calls PUT /flights/admin/{id}.
func (c *Client) UpdateFlight(ctx context.Context, id int64, in domain.FlightInput) (domain.Envelope[domain.AdminFlight], error) {
	return do[domain.AdminFlight](ctx, c, request{
		method:   http.MethodPut,
		path:     flightPath(id),
		body:     newFlightBody(in),
		fallback: "Failed to update flight",
	})
}

// DeleteFlight calls DELETE /flights/admin/{id}.
func (c *Client) DeleteFlight(ctx context.Context, id int64) (domain.Envelope[domain.DeleteResult], error) {
	return do[domain.DeleteResult](ctx, c, request{
		method:   http.MethodDelete,
		path:     flightPath(id),
		fallback: "Failed to delete flight",
	})
}

func flightPath(id int64) string {
	return "/flights/admin/" + strconv.FormatInt(id, 10)
}

// listParams encodes a listing query. searchTerm is sent only when set.
func listParams(q domain.ListQuery) url.Values {
	q = q.Normalize()
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("size", strconv.Itoa(q.Size))
	v.Set("sortBy", q.SortBy)
	v.Set("sortDir", string(q.SortDir))
	if q.HasSearchTerm() {
		v.Set("searchTerm", q.SearchTerm)
	}
	return v
}

// flightBody is the wire form of FlightInput. Date-times are sent as local
// date-times without a zone, the way the admin form submits them.
type flightBody struct {
	FlightNumber   string            `json:"flightNumber"`
	Airline        string            `json:"airline"`
	Origin         string            `json:"origin"`
	Destination    string            `json:"destination"`
	DepartureTime  string            `json:"departureTime"`
	ArrivalTime    string            `json:"arrivalTime"`
	Duration       string            `json:"duration"`
	Price          float64           `json:"price"`
	AircraftType   string            `json:"aircraftType"`
	AvailableSeats int               `json:"availableSeats"`
	CabinClass     domain.CabinClass `json:"cabinClass"`
	Active         bool              `json:"active"`
}

const localDateTime = "2006-01-02T15:04:05"

func newFlightBody(in domain.FlightInput) flightBody {
	return flightBody{
		FlightNumber:   in.FlightNumber,
		Airline:        in.Airline,
		Origin:         in.Origin,
		Destination:    in.Destination,
		DepartureTime:  in.DepartureTime.Format(localDateTime),
		ArrivalTime:    in.ArrivalTime.Format(localDateTime),
		Duration:       in.Duration,
		Price:          in.Price,
		AircraftType:   in.AircraftType,
		AvailableSeats: in.AvailableSeats,
		CabinClass:     in.CabinClass,
		Active:         in.Active,
	}
}
