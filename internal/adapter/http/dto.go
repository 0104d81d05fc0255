package http

import "github.com/flight-search/travel-booking-client/internal/domain"

// SearchFlightsRequest is the body of POST /flights/search.
type SearchFlightsRequest struct {
	// Origin is a location code or name (e.g. "BOG")
	Origin string `json:"origin"`

	// Destination is a location code or name (e.g. "MIA")
	Destination string `json:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the inbound date; null for one-way trips
	ReturnDate *string `json:"returnDate"`

	// TripType is "oneway" or "roundtrip"
	TripType domain.TripType `json:"tripType"`

	// Passengers is the party size (1-9)
	Passengers int `json:"passengers"`
}

// FlightRequest is the body of POST /flights/admin and PUT
// /flights/admin/{id}. Date-times are zone-less local date-times, with
// RFC3339 accepted too.
type FlightRequest struct {
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
	Active         *bool             `json:"active"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
