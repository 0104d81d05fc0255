package session

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/flight-search/travel-booking-client/internal/domain"
	"github.com/flight-search/travel-booking-client/internal/notify"
)

// Locations holds the airports offered by the search form.
type Locations struct {
	Origins      []domain.Location
	Destinations []domain.Location
}

// LoadLocations fetches origins and destinations concurrently. Each list
// fails independently: the other one is still returned, and each failure
// is notified. The returned error is the first failure.
func LoadLocations(ctx context.Context, client domain.FlightSearchClient, notifier notify.Sink) (Locations, error) {
	notifier = notify.OrNop(notifier)

	var (
		out Locations
		g   errgroup.Group
	)
	g.Go(func() error {
		env, err := client.Locations(ctx)
		if err != nil {
			notifier.Error("Error loading available origins")
			return err
		}
		out.Origins = env.Data
		return nil
	})
	g.Go(func() error {
		env, err := client.Destinations(ctx)
		if err != nil {
			notifier.Error("Error loading available destinations")
			return err
		}
		out.Destinations = env.Data.Destinations
		return nil
	})
	err := g.Wait()
	return out, err
}
