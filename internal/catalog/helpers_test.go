package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/flight-search/travel-booking-client/internal/domain"
	"github.com/flight-search/travel-booking-client/internal/infrastructure/timeutil"
)

var testNow = time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)

func newTestCatalog(t *testing.T) (*Catalog, *timeutil.MockClock) {
	t.Helper()
	clock := timeutil.NewMockClock(testNow)
	c := New(WithClock(clock))
	c.AddLocation(domain.Location{Name: "Bogota", Code: "BOG"})
	c.AddLocation(domain.Location{Name: "Miami", Code: "MIA"})
	return c, clock
}

func newTestAccounts(t *testing.T) (*Accounts, *timeutil.MockClock) {
	t.Helper()
	clock := timeutil.NewMockClock(testNow)
	return NewAccounts(WithAccountsClock(clock), WithHashCost(bcrypt.MinCost)), clock
}

// flightInput builds an active input departing on day at hour.
func flightInput(number, origin, dest string, day time.Time, hour int, price float64, minutes int) domain.FlightInput {
	dep := day.Add(time.Duration(hour) * time.Hour)
	return domain.FlightInput{
		FlightNumber:   number,
		Airline:        "Avianca",
		Origin:         origin,
		Destination:    dest,
		DepartureTime:  dep,
		ArrivalTime:    dep.Add(time.Duration(minutes) * time.Minute),
		Duration:       domain.FormatDuration(minutes),
		Price:          price,
		AircraftType:   "Airbus A320",
		AvailableSeats: 50,
		CabinClass:     domain.CabinEconomy,
		Active:         true,
	}
}

func june(day int) time.Time {
	return time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC)
}

func publicNumbers(in []domain.Flight) []string {
	out := make([]string, len(in))
	for i, f := range in {
		out[i] = f.FlightNumber
	}
	return out
}

func adminNumbers(in []domain.AdminFlight) []string {
	out := make([]string, len(in))
	for i, f := range in {
		out[i] = f.FlightNumber
	}
	return out
}

func mustCreate(t *testing.T, c *Catalog, in domain.FlightInput) domain.AdminFlight {
	t.Helper()
	f := c.Create(in)
	require.NotZero(t, f.ID)
	return f
}
