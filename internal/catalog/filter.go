package catalog

import (
	"strings"
	"time"

	"github.com/flight-search/travel-booking-client/internal/domain"
)

// legFilter selects the flights that can serve one leg of a search.
type legFilter struct {
	origin      []string
	destination []string
	day         time.Time
	passengers  int
}

// matches reports whether f passes every criterion of the leg:
//   - the flight is active
//   - origin and destination match by code or name, case-insensitively
//   - it departs on the requested calendar day
//   - it has a seat for every passenger
func (lf legFilter) matches(f domain.AdminFlight) bool {
	if !f.Active {
		return false
	}
	if !matchesAny(f.Origin, lf.origin) || !matchesAny(f.Destination, lf.destination) {
		return false
	}
	if !sameDay(f.DepartureTime.Time, lf.day) {
		return false
	}
	return f.AvailableSeats >= lf.passengers
}

// applyLegFilter returns the flights of all that match lf, without mutating all.
func applyLegFilter(all []domain.AdminFlight, lf legFilter) []domain.AdminFlight {
	result := make([]domain.AdminFlight, 0, len(all))
	for _, f := range all {
		if lf.matches(f) {
			result = append(result, f)
		}
	}
	return result
}

// matchesTerm reports whether any text field of f contains term,
// case-insensitively. An empty term matches everything.
func matchesTerm(f domain.AdminFlight, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, field := range []string{f.FlightNumber, f.Airline, f.Origin, f.Destination, f.AircraftType} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// aliases returns the spellings a place may appear under in flight records:
// the place itself plus the code and name of the location it resolves to.
func (c *Catalog) aliases(place string) []string {
	place = strings.TrimSpace(place)
	out := []string{place}
	if loc := c.lookupLocked(place); loc != nil {
		out = append(out, loc.Code, loc.Name)
	}
	return out
}

func matchesAny(value string, candidates []string) bool {
	for _, c := range candidates {
		if c != "" && strings.EqualFold(strings.TrimSpace(value), c) {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
