// Package catalog is the in-memory flight inventory served by the stub API.
// It owns flight records, the location table and the demo accounts, and
// implements search, listing and CRUD over them.
package catalog

import (
	"errors"
	"strings"
	"sync"

	"github.com/flight-search/travel-booking-client/internal/domain"
	"github.com/flight-search/travel-booking-client/internal/infrastructure/logger"
	"github.com/flight-search/travel-booking-client/internal/infrastructure/timeutil"
)

// ErrFlightNotFound is returned when no flight has the requested id.
var ErrFlightNotFound = errors.New("flight not found")

// DefaultCurrency is reported in search metadata.
const DefaultCurrency = "USD"

// Catalog is a concurrency-safe flight inventory.
type Catalog struct {
	mu        sync.RWMutex
	flights   map[int64]domain.AdminFlight
	nextID    int64
	locations []domain.Location

	clock    timeutil.Clock
	currency string
	log      *logger.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithClock sets the clock used for timestamps.
func WithClock(c timeutil.Clock) Option {
	return func(cat *Catalog) { cat.clock = c }
}

// WithLogger sets the catalog logger.
func WithLogger(l *logger.Logger) Option {
	return func(cat *Catalog) { cat.log = l }
}

// WithCurrency sets the currency reported by searches.
func WithCurrency(code string) Option {
	return func(cat *Catalog) { cat.currency = code }
}

// New creates an empty catalog.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		flights:  make(map[int64]domain.AdminFlight),
		nextID:   1,
		currency: DefaultCurrency,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.clock = timeutil.OrReal(c.clock)
	c.log = logger.OrNop(c.log).WithComponent("catalog")
	return c
}

// Len returns the number of stored flights.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.flights)
}

// Get returns the flight with the given id.
func (c *Catalog) Get(id int64) (domain.AdminFlight, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, ok := c.flights[id]
	if !ok {
		return domain.AdminFlight{}, ErrFlightNotFound
	}
	return f, nil
}

// Create stores a new flight and returns it with its assigned id.
// Unknown origins and destinations are added to the location table.
func (c *Catalog) Create(in domain.FlightInput) domain.AdminFlight {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := domain.NewTimestamp(c.clock.Now())
	f := domain.AdminFlight{
		Flight:    flightFromInput(in),
		ID:        c.nextID,
		Active:    in.Active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	c.nextID++
	c.flights[f.ID] = f
	c.registerLocationLocked(f.Origin)
	c.registerLocationLocked(f.Destination)

	c.log.Debug().Int64("id", f.ID).Str("flight_number", f.FlightNumber).Msg("flight created")
	return f
}

// Update replaces every editable field of the flight with the given id.
func (c *Catalog) Update(id int64, in domain.FlightInput) (domain.AdminFlight, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	existing, ok := c.flights[id]
	if !ok {
		return domain.AdminFlight{}, ErrFlightNotFound
	}
	existing.Flight = flightFromInput(in)
	existing.Active = in.Active
	existing.UpdatedAt = domain.NewTimestamp(c.clock.Now())
	c.flights[id] = existing
	c.registerLocationLocked(existing.Origin)
	c.registerLocationLocked(existing.Destination)

	c.log.Debug().Int64("id", id).Msg("flight updated")
	return existing, nil
}

// Delete removes the flight with the given id.
func (c *Catalog) Delete(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.flights[id]; !ok {
		return ErrFlightNotFound
	}
	delete(c.flights, id)

	c.log.Debug().Int64("id", id).Msg("flight deleted")
	return nil
}

// AddLocation registers a location. Codes are unique, case-insensitively.
func (c *Catalog) AddLocation(loc domain.Location) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addLocationLocked(loc)
}

func (c *Catalog) addLocationLocked(loc domain.Location) {
	for _, existing := range c.locations {
		if strings.EqualFold(existing.Code, loc.Code) {
			return
		}
	}
	c.locations = append(c.locations, loc)
}

// registerLocationLocked adds place to the table unless it already names a
// known location by code or name.
func (c *Catalog) registerLocationLocked(place string) {
	place = strings.TrimSpace(place)
	if place == "" || c.lookupLocked(place) != nil {
		return
	}
	c.locations = append(c.locations, domain.Location{Name: place, Code: strings.ToUpper(place)})
}

func (c *Catalog) lookupLocked(place string) *domain.Location {
	for i := range c.locations {
		loc := &c.locations[i]
		if strings.EqualFold(loc.Code, place) || strings.EqualFold(loc.Name, place) {
			return loc
		}
	}
	return nil
}

func (c *Catalog) snapshotLocked() []domain.AdminFlight {
	out := make([]domain.AdminFlight, 0, len(c.flights))
	for _, f := range c.flights {
		out = append(out, f)
	}
	return out
}

func flightFromInput(in domain.FlightInput) domain.Flight {
	return domain.Flight{
		FlightNumber:   strings.TrimSpace(in.FlightNumber),
		Airline:        strings.TrimSpace(in.Airline),
		Origin:         strings.TrimSpace(in.Origin),
		Destination:    strings.TrimSpace(in.Destination),
		DepartureTime:  domain.NewTimestamp(in.DepartureTime),
		ArrivalTime:    domain.NewTimestamp(in.ArrivalTime),
		Duration:       in.Duration,
		Price:          in.Price,
		AircraftType:   in.AircraftType,
		AvailableSeats: in.AvailableSeats,
		CabinClass:     in.CabinClass,
	}
}
