package catalog

import (
	"fmt"
	"time"

	"github.com/flight-search/travel-booking-client/internal/domain"
	"github.com/flight-search/travel-booking-client/internal/infrastructure/timeutil"
)

// Demo account credentials loaded by Seed.
const (
	DemoAdminEmail    = "admin@amadeus.com"
	DemoAdminPassword = "password123"
	DemoUserEmail     = "user@amadeus.com"
	DemoUserPassword  = "password123"
)

// SeedDays is how many days of schedule Seed generates.
const SeedDays = 14

var demoLocations = []domain.Location{
	{Name: "Bogota", Code: "BOG"},
	{Name: "Miami", Code: "MIA"},
	{Name: "Medellin", Code: "MDE"},
	{Name: "Madrid", Code: "MAD"},
	{Name: "New York", Code: "JFK"},
	{Name: "Cartagena", Code: "CTG"},
}

type route struct {
	airline  string
	prefix   string
	origin   string
	dest     string
	minutes  int
	price    float64
	aircraft string
	hours    []int
}

var demoRoutes = []route{
	{"Avianca", "AV", "BOG", "MIA", 255, 420, "Airbus A320", []int{6, 11, 18}},
	{"American Airlines", "AA", "MIA", "BOG", 240, 455, "Boeing 737-800", []int{8, 16}},
	{"Avianca", "AV", "BOG", "MDE", 55, 95, "Airbus A319", []int{7, 13}},
	{"LATAM", "LA", "MDE", "BOG", 55, 89, "Airbus A320", []int{9, 19}},
	{"Iberia", "IB", "MAD", "BOG", 630, 890, "Airbus A350-900", []int{12}},
	{"Avianca", "AV", "BOG", "MAD", 600, 865, "Boeing 787-8", []int{21}},
	{"JetBlue", "B6", "JFK", "CTG", 305, 380, "Airbus A321", []int{10}},
}

// Seed loads the demo locations, a schedule of SeedDays days starting the
// day after now, and the demo accounts.
func Seed(c *Catalog, a *Accounts, now time.Time) error {
	for _, loc := range demoLocations {
		c.AddLocation(loc)
	}

	start := timeutil.StartOfDay(now).AddDate(0, 0, 1)
	for day := 0; day < SeedDays; day++ {
		base := start.AddDate(0, 0, day)
		for ri, r := range demoRoutes {
			for hi, hour := range r.hours {
				dep := base.Add(time.Duration(hour) * time.Hour)
				c.Create(domain.FlightInput{
					FlightNumber:   fmt.Sprintf("%s%d", r.prefix, 100+ri*10+hi),
					Airline:        r.airline,
					Origin:         r.origin,
					Destination:    r.dest,
					DepartureTime:  dep,
					ArrivalTime:    dep.Add(time.Duration(r.minutes) * time.Minute),
					Duration:       domain.FormatDuration(r.minutes),
					Price:          r.price + float64((day*7+hi*13)%60),
					AircraftType:   r.aircraft,
					AvailableSeats: 20 + (day*11+ri*5)%130,
					CabinClass:     domain.CabinEconomy,
					Active:         true,
				})
			}
		}
	}

	if _, err := a.Register(domain.User{Email: DemoAdminEmail, Name: "Admin", Role: domain.RoleAdmin}, DemoAdminPassword); err != nil {
		return fmt.Errorf("seed admin account: %w", err)
	}
	if _, err := a.Register(domain.User{Email: DemoUserEmail, Name: "Traveler", Role: domain.RoleUser}, DemoUserPassword); err != nil {
		return fmt.Errorf("seed user account: %w", err)
	}
	return nil
}
