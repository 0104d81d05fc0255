package catalog

import (
	"sort"
	"strings"

	"github.com/flight-search/travel-booking-client/internal/domain"
)

// MaxPageSize caps the admin listing page size.
const MaxPageSize = 100

// lessFuncs orders flights by each sortable field, ascending.
var lessFuncs = map[string]func(a, b domain.AdminFlight) bool{
	"id":             func(a, b domain.AdminFlight) bool { return a.ID < b.ID },
	"flightNumber":   func(a, b domain.AdminFlight) bool { return a.FlightNumber < b.FlightNumber },
	"airline":        func(a, b domain.AdminFlight) bool { return a.Airline < b.Airline },
	"origin":         func(a, b domain.AdminFlight) bool { return a.Origin < b.Origin },
	"destination":    func(a, b domain.AdminFlight) bool { return a.Destination < b.Destination },
	"departureTime":  func(a, b domain.AdminFlight) bool { return a.DepartureTime.Before(b.DepartureTime.Time) },
	"arrivalTime":    func(a, b domain.AdminFlight) bool { return a.ArrivalTime.Before(b.ArrivalTime.Time) },
	"price":          func(a, b domain.AdminFlight) bool { return a.Price < b.Price },
	"availableSeats": func(a, b domain.AdminFlight) bool { return a.AvailableSeats < b.AvailableSeats },
	"createdAt":      func(a, b domain.AdminFlight) bool { return a.CreatedAt.Before(b.CreatedAt.Time) },
}

// IsSortable reports whether field can be used as sortBy.
func IsSortable(field string) bool {
	_, ok := lessFuncs[field]
	return ok
}

// List returns one page of flights matching q.SearchTerm, sorted by
// q.SortBy in q.SortDir. Unknown sort fields fall back to departure time.
// Pages past the end are empty but still report the totals.
func (c *Catalog) List(q domain.ListQuery) domain.FlightPage {
	q = q.Normalize()
	if q.Size > MaxPageSize {
		q.Size = MaxPageSize
	}

	c.mu.RLock()
	all := c.snapshotLocked()
	c.mu.RUnlock()

	matched := make([]domain.AdminFlight, 0, len(all))
	for _, f := range all {
		if matchesTerm(f, q.SearchTerm) {
			matched = append(matched, f)
		}
	}
	sortFlights(matched, q.SortBy, q.SortDir)

	total := len(matched)
	start := q.Page * q.Size
	if start > total {
		start = total
	}
	end := start + q.Size
	if end > total {
		end = total
	}

	content := make([]domain.AdminFlight, end-start)
	copy(content, matched[start:end])

	return domain.FlightPage{
		Content:       content,
		TotalElements: int64(total),
		TotalPages:    (total + q.Size - 1) / q.Size,
		Pageable:      domain.Pageable{PageNumber: q.Page, PageSize: q.Size},
	}
}

// sortFlights sorts in place. Ties are broken by id so pages are stable.
func sortFlights(flights []domain.AdminFlight, sortBy string, dir domain.SortDir) {
	less, ok := lessFuncs[sortBy]
	if !ok {
		less = lessFuncs[domain.DefaultSortBy]
	}
	sort.SliceStable(flights, func(i, j int) bool {
		a, b := flights[i], flights[j]
		if dir == domain.SortDesc {
			a, b = b, a
		}
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
		return flights[i].ID < flights[j].ID
	})
}

// Locations returns every known location.
func (c *Catalog) Locations() []domain.Location {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Location, len(c.locations))
	copy(out, c.locations)
	return out
}

// Destinations returns the locations that active flights depart from and
// arrive at, each list in table order.
func (c *Catalog) Destinations() domain.LocationPair {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pair := domain.LocationPair{Origins: []domain.Location{}, Destinations: []domain.Location{}}
	for _, loc := range c.locations {
		if c.servesLocked(loc, func(f domain.AdminFlight) string { return f.Origin }) {
			pair.Origins = append(pair.Origins, loc)
		}
		if c.servesLocked(loc, func(f domain.AdminFlight) string { return f.Destination }) {
			pair.Destinations = append(pair.Destinations, loc)
		}
	}
	return pair
}

func (c *Catalog) servesLocked(loc domain.Location, field func(domain.AdminFlight) string) bool {
	for _, f := range c.flights {
		if !f.Active {
			continue
		}
		v := strings.TrimSpace(field(f))
		if strings.EqualFold(v, loc.Code) || strings.EqualFold(v, loc.Name) {
			return true
		}
	}
	return false
}
