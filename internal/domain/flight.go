// Package domain contains the core entities shared by the booking client, its
// state stores and the stub API. Flights are owned by the remote API; the
// client only ever holds cached copies.
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// CabinClass is the travel class of a flight.
type CabinClass string

// Supported cabin classes.
const (
	CabinEconomy  CabinClass = "Economy"
	CabinBusiness CabinClass = "Business"
	CabinFirst    CabinClass = "First"
)

// IsValid reports whether the cabin class is one of the supported values.
func (c CabinClass) IsValid() bool {
	switch c {
	case CabinEconomy, CabinBusiness, CabinFirst:
		return true
	default:
		return false
	}
}

// Flight is a single read-only flight offering returned by the search API.
// The price currency is implied by the surrounding SearchMetadata.
type Flight struct {
	FlightNumber   string     `json:"flightNumber"`
	Airline        string     `json:"airline"`
	Origin         string     `json:"origin"`
	Destination    string     `json:"destination"`
	DepartureTime  Timestamp  `json:"departureTime"`
	ArrivalTime    Timestamp  `json:"arrivalTime"`
	Duration       string     `json:"duration"`
	Price          float64    `json:"price"`
	AircraftType   string     `json:"aircraftType"`
	AvailableSeats int        `json:"availableSeats"`
	CabinClass     CabinClass `json:"cabinClass"`
}

// AdminFlight is a flight record as exposed by the admin API.
// It is the only mutable entity; the server owns and versions it.
type AdminFlight struct {
	Flight
	ID        int64     `json:"id"`
	Active    bool      `json:"active"`
	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt"`
}

// FlightInput is the payload for creating or updating an admin flight.
// Constraints mirror the admin form schema.
type FlightInput struct {
	FlightNumber   string     `json:"flightNumber" validate:"required,min=2,max=10"`
	Airline        string     `json:"airline" validate:"required,min=2,max=50"`
	Origin         string     `json:"origin" validate:"required,min=2,max=50"`
	Destination    string     `json:"destination" validate:"required,min=2,max=50"`
	DepartureTime  time.Time  `json:"departureTime" validate:"required"`
	ArrivalTime    time.Time  `json:"arrivalTime" validate:"required,gtfield=DepartureTime"`
	Duration       string     `json:"duration" validate:"required,flightduration"`
	Price          float64    `json:"price" validate:"required,gt=0,lte=999999"`
	AircraftType   string     `json:"aircraftType" validate:"required,min=2,max=50"`
	AvailableSeats int        `json:"availableSeats" validate:"required,min=1,max=500"`
	CabinClass     CabinClass `json:"cabinClass" validate:"required,oneof=Economy Business First"`
	Active         bool       `json:"active"`
}

// NewFlightInput returns the defaults the admin form starts from.
func NewFlightInput() FlightInput {
	return FlightInput{
		AvailableSeats: 100,
		CabinClass:     CabinEconomy,
		Active:         true,
	}
}

// InputFromFlight builds an update payload pre-filled from an existing record.
func InputFromFlight(f AdminFlight) FlightInput {
	return FlightInput{
		FlightNumber:   f.FlightNumber,
		Airline:        f.Airline,
		Origin:         f.Origin,
		Destination:    f.Destination,
		DepartureTime:  f.DepartureTime.Time,
		ArrivalTime:    f.ArrivalTime.Time,
		Duration:       f.Duration,
		Price:          f.Price,
		AircraftType:   f.AircraftType,
		AvailableSeats: f.AvailableSeats,
		CabinClass:     f.CabinClass,
		Active:         f.Active,
	}
}

// FormatDuration renders minutes in the "Xh Ym" form used by the API.
func FormatDuration(totalMinutes int) string {
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	return fmt.Sprintf("%dh %dm", totalMinutes/60, totalMinutes%60)
}

// timestampLayouts are tried in order when decoding a Timestamp. The remote
// API emits zone-less local date-times; RFC3339 is accepted as well.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	DateLayout,
}

// Timestamp is a time.Time that tolerates the date-time formats produced by
// the remote API.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// ParseTimestamp parses s using the accepted layouts.
func ParseTimestamp(s string) (Timestamp, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("unsupported timestamp %q", s)
}

// MarshalJSON encodes the zero value as null and everything else as RFC3339
// with sub-second precision, so values survive a round trip unchanged.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339Nano))
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = Timestamp{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*t = Timestamp{}
		return nil
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
