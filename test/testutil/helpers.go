// Package testutil provides helpers for integration tests: a seeded stub
// API served over real HTTP and small date helpers.
package testutil

import (
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	flighthttp "github.com/flight-search/travel-booking-client/internal/adapter/http"
	"github.com/flight-search/travel-booking-client/internal/catalog"
	"github.com/flight-search/travel-booking-client/internal/domain"
	"github.com/flight-search/travel-booking-client/internal/infrastructure/timeutil"
)

// Stub is a running stub API.
type Stub struct {
	Server   *httptest.Server
	Catalog  *catalog.Catalog
	Accounts *catalog.Accounts
	// Now is the instant the demo schedule was seeded from.
	Now time.Time
}

// BaseURL is the API root the REST client should be pointed at.
func (s *Stub) BaseURL() string {
	return s.Server.URL + flighthttp.BasePath
}

// StartStub serves a catalog seeded with the demo schedule and accounts.
// The server is closed when the test ends.
func StartStub(t *testing.T) *Stub {
	t.Helper()

	now := time.Now().UTC()
	cat := catalog.New()
	accounts := catalog.NewAccounts(catalog.WithHashCost(bcrypt.MinCost))
	if err := catalog.Seed(cat, accounts, now); err != nil {
		t.Fatalf("Failed to seed catalog: %v", err)
	}

	e := flighthttp.Server{
		Catalog:   cat,
		Accounts:  accounts,
		Validator: domain.MustNewValidator(nil),
	}.NewEcho()

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	return &Stub{Server: srv, Catalog: cat, Accounts: accounts, Now: now}
}

// DaysAhead returns midnight UTC of the day n days after s.Now. Day 1 is
// the first seeded day.
func (s *Stub) DaysAhead(n int) time.Time {
	return Midnight(s.Now).AddDate(0, 0, n)
}

// Midnight truncates t to the start of its day, in UTC.
func Midnight(t time.Time) time.Time {
	return timeutil.StartOfDay(t.UTC())
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(domain.DateLayout, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
