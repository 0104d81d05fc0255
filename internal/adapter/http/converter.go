package http

import (
	"strings"
	"time"

	"github.com/flight-search/travel-booking-client/internal/domain"
)

// ToDomainCriteria converts a search body to criteria. Unparseable dates
// are reported as field errors.
func ToDomainCriteria(req *SearchFlightsRequest) (domain.SearchCriteria, *domain.ValidationErrors) {
	errs := &domain.ValidationErrors{}
	c := domain.SearchCriteria{
		Origin:      strings.TrimSpace(req.Origin),
		Destination: strings.TrimSpace(req.Destination),
		TripType:    req.TripType,
		Passengers:  req.Passengers,
	}

	if req.DepartureDate != "" {
		d, err := time.Parse(domain.DateLayout, req.DepartureDate)
		if err != nil {
			errs.Add("departureDate", "departureDate must be in YYYY-MM-DD format")
		} else {
			c.DepartureDate = d
		}
	}

	if req.ReturnDate != nil && *req.ReturnDate != "" {
		d, err := time.Parse(domain.DateLayout, *req.ReturnDate)
		if err != nil {
			errs.Add("returnDate", "returnDate must be in YYYY-MM-DD format")
		} else {
			c.ReturnDate = &d
		}
	}

	return c, errs
}

// ToDomainFlightInput converts an admin flight body. A missing active flag
// defaults to true, like the admin form.
func ToDomainFlightInput(req *FlightRequest) (domain.FlightInput, *domain.ValidationErrors) {
	errs := &domain.ValidationErrors{}
	in := domain.FlightInput{
		FlightNumber:   strings.TrimSpace(req.FlightNumber),
		Airline:        strings.TrimSpace(req.Airline),
		Origin:         strings.TrimSpace(req.Origin),
		Destination:    strings.TrimSpace(req.Destination),
		Duration:       strings.TrimSpace(req.Duration),
		Price:          req.Price,
		AircraftType:   strings.TrimSpace(req.AircraftType),
		AvailableSeats: req.AvailableSeats,
		CabinClass:     req.CabinClass,
		Active:         req.Active == nil || *req.Active,
	}

	in.DepartureTime = parseDateTime(errs, "departureTime", req.DepartureTime)
	in.ArrivalTime = parseDateTime(errs, "arrivalTime", req.ArrivalTime)
	return in, errs
}

// ToDomainCredentials converts a login body.
func ToDomainCredentials(req *LoginRequest) domain.Credentials {
	return domain.Credentials{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	}
}

func parseDateTime(errs *domain.ValidationErrors, field, value string) time.Time {
	if strings.TrimSpace(value) == "" {
		return time.Time{}
	}
	ts, err := domain.ParseTimestamp(value)
	if err != nil {
		errs.Add(field, field+" must be a date-time like 2025-06-01T06:00:00")
		return time.Time{}
	}
	return ts.Time
}
