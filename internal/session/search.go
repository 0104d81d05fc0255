package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/flight-search/travel-booking-client/internal/adapter/storage"
	"github.com/flight-search/travel-booking-client/internal/domain"
	"github.com/flight-search/travel-booking-client/internal/infrastructure/logger"
	"github.com/flight-search/travel-booking-client/internal/notify"
)

const searchFailedMessage = "Failed to search flights. Please try again."

// SearchState is a snapshot of the search session. Results is shared with
// the store and must be treated as read-only.
type SearchState struct {
	Results      *domain.SearchResultSet
	Loading      bool
	Error        string
	HasSearched  bool
	LastCriteria *domain.SearchCriteria
}

// SearchStore owns the criteria and results of the traveller's last search.
//
// Calls may overlap. The lock is never held across an API call, so
// overlapping searches resolve in arrival order unless the store was built
// WithStaleResponseGuard.
type SearchStore struct {
	client   domain.FlightSearchClient
	notifier notify.Sink
	log      *logger.Logger
	guard    bool
	out      *writer

	mu       sync.Mutex
	state    SearchState
	inFlight int
	issued   uint64 // searches started
	snapshot uint64 // persisted snapshots taken
}

// NewSearchStore creates the store and rehydrates any persisted session.
func NewSearchStore(ctx context.Context, client domain.FlightSearchClient, store storage.Store, opts ...Option) *SearchStore {
	o := buildOptions("search", opts)
	s := &SearchStore{
		client:   client,
		notifier: o.notifier,
		log:      o.log,
		guard:    o.guard,
		out:      newWriter(store, SearchStorageKey, o.log),
	}
	if saved, ok := load[persistedSearch](ctx, store, SearchStorageKey, o.log); ok {
		s.state = saved.restore(o.log)
	}
	return s
}

// SearchFlights runs a search and makes its outcome the current session.
// Criteria are sent as given; validation belongs to the caller. A failed
// search keeps the previous results, records the error and notifies.
func (s *SearchStore) SearchFlights(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResultSet, error) {
	s.mu.Lock()
	s.issued++
	seq := s.issued
	s.inFlight++
	s.state.Loading = true
	s.state.Error = ""
	s.persistLocked(ctx)
	s.mu.Unlock()

	start := time.Now()
	env, err := s.client.SearchFlights(ctx, criteria.ToRequest())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight--
	s.state.Loading = s.inFlight > 0

	if s.guard && seq != s.issued {
		s.log.Debug().Uint64("seq", seq).Uint64("latest", s.issued).Msg("discarding superseded search response")
		s.persistLocked(ctx)
		if err != nil {
			return nil, err
		}
		return &env.Data, nil
	}

	s.state.HasSearched = true
	if err != nil {
		msg := domain.Message(err, searchFailedMessage)
		s.state.Error = msg
		s.persistLocked(ctx)
		s.log.Warn().Err(err).
			Str("origin", criteria.Origin).
			Str("destination", criteria.Destination).
			Msg("flight search failed")
		s.notifier.Error(msg)
		return nil, err
	}

	results := env.Data
	saved := criteria
	s.state.Results = &results
	s.state.LastCriteria = &saved
	s.state.Error = ""
	s.persistLocked(ctx)

	s.log.Info().
		Str("origin", criteria.Origin).
		Str("destination", criteria.Destination).
		Int("outbound", len(results.OutboundFlights)).
		Int("return", len(results.ReturnFlights)).
		Dur("took", time.Since(start)).
		Msg("flight search completed")

	msg := env.Message
	if msg == "" {
		msg = fmt.Sprintf("Found %d flights for your search from %s to %s",
			results.TotalFlights(), criteria.Origin, criteria.Destination)
	}
	s.notifier.Success(msg)
	return &results, nil
}

// ClearSearch resets the session to its initial empty state.
func (s *SearchStore) ClearSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = SearchState{Loading: s.inFlight > 0}
	s.persistLocked(context.Background())
}

// ClearError clears the error message and keeps everything else.
func (s *SearchStore) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = ""
	s.persistLocked(context.Background())
}

// State returns a snapshot of the session.
func (s *SearchStore) State() SearchState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	if st.LastCriteria != nil {
		c := *st.LastCriteria
		st.LastCriteria = &c
	}
	return st
}

// persistLocked writes the persisted subset of the state. Called with mu held.
func (s *SearchStore) persistLocked(ctx context.Context) {
	s.snapshot++
	s.out.write(ctx, s.snapshot, newPersistedSearch(s.state))
}

// persistedSearch is the stored subset of SearchState. Dates are kept as
// ISO-8601 strings and parsed back on load.
type persistedSearch struct {
	SearchResults  *domain.SearchResultSet `json:"searchResults"`
	HasSearched    bool                    `json:"hasSearched"`
	LastSearchData *persistedCriteria      `json:"lastSearchData"`
}

type persistedCriteria struct {
	Origin        string          `json:"origin"`
	Destination   string          `json:"destination"`
	DepartureDate string          `json:"departureDate"`
	ReturnDate    *string         `json:"returnDate"`
	TripType      domain.TripType `json:"tripType"`
	Passengers    int             `json:"passengers"`
}

func newPersistedSearch(st SearchState) persistedSearch {
	p := persistedSearch{SearchResults: st.Results, HasSearched: st.HasSearched}
	if c := st.LastCriteria; c != nil {
		pc := &persistedCriteria{
			Origin:        c.Origin,
			Destination:   c.Destination,
			DepartureDate: c.DepartureDate.Format(time.RFC3339Nano),
			TripType:      c.TripType,
			Passengers:    c.Passengers,
		}
		if c.ReturnDate != nil {
			rd := c.ReturnDate.Format(time.RFC3339Nano)
			pc.ReturnDate = &rd
		}
		p.LastSearchData = pc
	}
	return p
}

// restore rebuilds the in-memory state. Criteria whose dates cannot be
// parsed are dropped; the results are kept.
func (p persistedSearch) restore(log *logger.Logger) SearchState {
	st := SearchState{Results: p.SearchResults, HasSearched: p.HasSearched}
	if p.LastSearchData == nil {
		return st
	}

	c, err := p.LastSearchData.criteria()
	if err != nil {
		log.Warn().Err(err).Msg("dropping persisted search criteria")
		return st
	}
	st.LastCriteria = &c
	return st
}

func (p persistedCriteria) criteria() (domain.SearchCriteria, error) {
	c := domain.SearchCriteria{
		Origin:      p.Origin,
		Destination: p.Destination,
		TripType:    p.TripType,
		Passengers:  p.Passengers,
	}
	if p.DepartureDate != "" {
		dep, err := domain.ParseTimestamp(p.DepartureDate)
		if err != nil {
			return c, fmt.Errorf("departure date: %w", err)
		}
		c.DepartureDate = dep.Time
	}
	if p.ReturnDate != nil && *p.ReturnDate != "" {
		ret, err := domain.ParseTimestamp(*p.ReturnDate)
		if err != nil {
			return c, fmt.Errorf("return date: %w", err)
		}
		c.ReturnDate = &ret.Time
	}
	return c, nil
}
