package domain

import (
	"time"
)

// DateLayout is the date-only wire format used for search dates.
const DateLayout = "2006-01-02"

// MaxPassengers is the largest party a single search may request.
const MaxPassengers = 9

// TripType distinguishes one-way from round-trip searches.
type TripType string

// Supported trip types.
const (
	TripOneWay    TripType = "oneway"
	TripRoundTrip TripType = "roundtrip"
)

// IsValid reports whether the trip type is supported.
func (t TripType) IsValid() bool {
	return t == TripOneWay || t == TripRoundTrip
}

// SearchCriteria holds the user-entered search parameters.
// ReturnDate is required, and not before DepartureDate, only for round trips.
type SearchCriteria struct {
	Origin        string     `json:"origin" validate:"required,min=2"`
	Destination   string     `json:"destination" validate:"required,min=2"`
	DepartureDate time.Time  `json:"departureDate" validate:"required"`
	ReturnDate    *time.Time `json:"returnDate,omitempty"`
	TripType      TripType   `json:"tripType" validate:"required,oneof=oneway roundtrip"`
	Passengers    int        `json:"passengers" validate:"required,min=1,max=9"`
}

// IsRoundTrip reports whether the criteria describe a round trip.
func (c SearchCriteria) IsRoundTrip() bool {
	return c.TripType == TripRoundTrip
}

// SearchRequest is the wire body of POST /flights/search.
type SearchRequest struct {
	Origin        string   `json:"origin"`
	Destination   string   `json:"destination"`
	DepartureDate string   `json:"departureDate"`
	ReturnDate    *string  `json:"returnDate"`
	TripType      TripType `json:"tripType"`
	Passengers    int      `json:"passengers"`
}

// ToRequest converts criteria to the wire body. A one-way search always
// sends a null return date, whatever the criteria still carry.
func (c SearchCriteria) ToRequest() SearchRequest {
	req := SearchRequest{
		Origin:        c.Origin,
		Destination:   c.Destination,
		DepartureDate: c.DepartureDate.Format(DateLayout),
		TripType:      c.TripType,
		Passengers:    c.Passengers,
	}
	if c.IsRoundTrip() && c.ReturnDate != nil {
		rd := c.ReturnDate.Format(DateLayout)
		req.ReturnDate = &rd
	}
	return req
}

// SearchMetadata describes a completed search.
type SearchMetadata struct {
	SearchID     string    `json:"searchId"`
	SearchTime   Timestamp `json:"searchTime"`
	TotalResults int       `json:"totalResults"`
	Currency     string    `json:"currency"`
}

// SearchResultSet is the outcome of one search, split by leg. Flight order
// is the server's ranking and is never re-sorted by the client.
type SearchResultSet struct {
	OutboundFlights []Flight       `json:"outboundFlights"`
	ReturnFlights   []Flight       `json:"returnFlights"`
	Metadata        SearchMetadata `json:"metadata"`
}

// TotalFlights returns the number of flights across both legs.
func (r *SearchResultSet) TotalFlights() int {
	if r == nil {
		return 0
	}
	return len(r.OutboundFlights) + len(r.ReturnFlights)
}

// Location is an airport or city offered by the location lookup endpoints.
type Location struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// LocationPair is the payload of GET /flights/locations/destinations.
type LocationPair struct {
	Origins      []Location `json:"origins"`
	Destinations []Location `json:"destinations"`
}
