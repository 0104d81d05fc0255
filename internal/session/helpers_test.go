package session

import (
	"fmt"
	"time"

	"github.com/flight-search/travel-booking-client/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func flights(n int, origin, destination string) []domain.Flight {
	out := make([]domain.Flight, n)
	for i := range out {
		dep := time.Date(2025, 6, 1, 6+i, 0, 0, 0, time.UTC)
		out[i] = domain.Flight{
			FlightNumber:   fmt.Sprintf("AV%03d", 200+i),
			Airline:        "Avianca",
			Origin:         origin,
			Destination:    destination,
			DepartureTime:  domain.NewTimestamp(dep),
			ArrivalTime:    domain.NewTimestamp(dep.Add(4*time.Hour + 15*time.Minute)),
			Duration:       "4h 15m",
			Price:          float64(300 + 25*i),
			AircraftType:   "Airbus A320",
			AvailableSeats: 40,
			CabinClass:     domain.CabinEconomy,
		}
	}
	return out
}

func resultSet(outbound, inbound int) domain.SearchResultSet {
	return domain.SearchResultSet{
		OutboundFlights: flights(outbound, "BOG", "MIA"),
		ReturnFlights:   flights(inbound, "MIA", "BOG"),
		Metadata: domain.SearchMetadata{
			SearchID:     "search-1",
			SearchTime:   domain.NewTimestamp(time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)),
			TotalResults: outbound + inbound,
			Currency:     "USD",
		},
	}
}

func bogMiaOneWay() domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:        "BOG",
		Destination:   "MIA",
		DepartureDate: date(2025, 6, 1),
		TripType:      domain.TripOneWay,
		Passengers:    2,
	}
}

func bogMiaRoundTrip() domain.SearchCriteria {
	c := bogMiaOneWay()
	ret := date(2025, 6, 8)
	c.TripType = domain.TripRoundTrip
	c.ReturnDate = &ret
	return c
}
