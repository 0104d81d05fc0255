package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/flight-search/travel-booking-client/internal/domain"
)

// Search finds the flights serving req. Outbound flights go origin to
// destination on the departure date; for a round trip with a return date,
// return flights go the other way on that date. Each leg is ranked by
// best value.
func (c *Catalog) Search(ctx context.Context, req domain.SearchRequest) (domain.SearchResultSet, error) {
	if err := ctx.Err(); err != nil {
		return domain.SearchResultSet{}, err
	}

	departure, err := time.Parse(domain.DateLayout, req.DepartureDate)
	if err != nil {
		return domain.SearchResultSet{}, domain.WrapInvalidRequest("departureDate must be YYYY-MM-DD")
	}
	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" {
		return domain.SearchResultSet{}, domain.WrapInvalidRequest("origin and destination are required")
	}
	passengers := req.Passengers
	if passengers < 1 {
		passengers = 1
	}

	var returnDay *time.Time
	if req.TripType == domain.TripRoundTrip && req.ReturnDate != nil {
		d, err := time.Parse(domain.DateLayout, *req.ReturnDate)
		if err != nil {
			return domain.SearchResultSet{}, domain.WrapInvalidRequest("returnDate must be YYYY-MM-DD")
		}
		returnDay = &d
	}

	c.mu.RLock()
	all := c.snapshotLocked()
	origin := c.aliases(req.Origin)
	destination := c.aliases(req.Destination)
	now := c.clock.Now()
	c.mu.RUnlock()

	outbound := RankBestValue(applyLegFilter(all, legFilter{
		origin:      origin,
		destination: destination,
		day:         departure,
		passengers:  passengers,
	}))

	inbound := []domain.AdminFlight{}
	if returnDay != nil {
		inbound = RankBestValue(applyLegFilter(all, legFilter{
			origin:      destination,
			destination: origin,
			day:         *returnDay,
			passengers:  passengers,
		}))
	}

	result := domain.SearchResultSet{
		OutboundFlights: publicFlights(outbound),
		ReturnFlights:   publicFlights(inbound),
		Metadata: domain.SearchMetadata{
			SearchID:     uuid.NewString(),
			SearchTime:   domain.NewTimestamp(now),
			TotalResults: len(outbound) + len(inbound),
			Currency:     c.currency,
		},
	}

	c.log.Debug().
		Str("origin", req.Origin).
		Str("destination", req.Destination).
		Int("outbound", len(result.OutboundFlights)).
		Int("return", len(result.ReturnFlights)).
		Msg("search served")

	return result, nil
}

func publicFlights(in []domain.AdminFlight) []domain.Flight {
	out := make([]domain.Flight, len(in))
	for i, f := range in {
		out[i] = f.Flight
	}
	return out
}
