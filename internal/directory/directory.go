// Package directory is the admin flight directory: a server-paginated,
// server-searched listing of flight records with create, update and delete
// operations that refetch the listing after every successful mutation.
package directory

import (
	"context"
	"strings"
	"sync"

	"github.com/flight-search/travel-booking-client/internal/domain"
	"github.com/flight-search/travel-booking-client/internal/infrastructure/logger"
	"github.com/flight-search/travel-booking-client/internal/notify"
)

// Fallback messages used when a failure carries no message of its own.
const (
	msgFetchFailed  = "Failed to fetch flights"
	msgGetFailed    = "Failed to fetch flight"
	msgCreateFailed = "Failed to create flight"
	msgUpdateFailed = "Failed to update flight"
	msgDeleteFailed = "Failed to delete flight"

	msgCreated = "Flight created successfully"
	msgUpdated = "Flight updated successfully"
	msgDeleted = "Flight deleted successfully"
)

// State is a snapshot of the listing. Flights must be treated as read-only.
type State struct {
	Flights       []domain.AdminFlight
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
	SearchTerm    string

	Loading  bool
	Creating bool
	Updating bool
	Deleting bool

	Error string
}

// Controller owns one listing. Its lock is never held across an API call:
// overlapping fetches resolve in arrival order unless the controller was
// built WithStaleResponseGuard.
type Controller struct {
	client   domain.AdminFlightClient
	notifier notify.Sink
	log      *logger.Logger
	guard    bool
	sortBy   string
	sortDir  domain.SortDir

	mu       sync.Mutex
	state    State
	fetching int
	issued   uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithNotifier sets the notification sink.
func WithNotifier(n notify.Sink) Option {
	return func(c *Controller) { c.notifier = n }
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithPageSize sets the initial page size.
func WithPageSize(size int) Option {
	return func(c *Controller) {
		if size > 0 {
			c.state.Size = size
		}
	}
}

// WithSort sets the listing order used by every fetch.
func WithSort(sortBy string, dir domain.SortDir) Option {
	return func(c *Controller) {
		c.sortBy = sortBy
		c.sortDir = dir
	}
}

// WithStaleResponseGuard discards listing responses of fetches that were
// superseded by a later fetch.
func WithStaleResponseGuard() Option {
	return func(c *Controller) { c.guard = true }
}

// New creates a Controller with an empty listing.
func New(client domain.AdminFlightClient, opts ...Option) *Controller {
	c := &Controller{
		client:  client,
		sortBy:  domain.DefaultSortBy,
		sortDir: domain.SortAsc,
		state:   State{Size: domain.DefaultPageSize},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.notifier = notify.OrNop(c.notifier)
	c.log = logger.OrNop(c.log).WithComponent("directory")
	return c
}

// State returns a snapshot of the listing.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := c.state
	st.Loading = c.fetching > 0
	return st
}

// ClearError clears the error message.
func (c *Controller) ClearError() {
	c.mu.Lock()
	c.state.Error = ""
	c.mu.Unlock()
}

// FetchFlights loads one page. A query with a search term goes to the admin
// search endpoint, and on success that term becomes the active filter so the
// state always describes the rows it holds. On failure the previous rows and
// filter stay in place.
func (c *Controller) FetchFlights(ctx context.Context, q domain.ListQuery) error {
	if q.SortBy == "" {
		q.SortBy = c.sortBy
		q.SortDir = c.sortDir
	}
	q = q.Normalize()

	c.mu.Lock()
	c.issued++
	seq := c.issued
	c.fetching++
	c.state.Error = ""
	c.mu.Unlock()

	var (
		env domain.Envelope[domain.FlightPage]
		err error
	)
	if q.HasSearchTerm() {
		env, err = c.client.SearchAdminFlights(ctx, q)
	} else {
		env, err = c.client.ListAdminFlights(ctx, q)
	}

	c.mu.Lock()
	c.fetching--
	if c.guard && seq != c.issued {
		c.mu.Unlock()
		c.log.Debug().Uint64("seq", seq).Int("page", q.Page).Msg("discarding superseded listing response")
		return err
	}

	if err != nil {
		msg := domain.Message(err, msgFetchFailed)
		c.state.Error = msg
		c.mu.Unlock()
		c.log.Warn().Err(err).Int("page", q.Page).Str("term", q.SearchTerm).Msg("fetch flights failed")
		c.notifier.Error(msg)
		return err
	}

	page := env.Data
	c.state.SearchTerm = q.SearchTerm
	c.state.Flights = page.Content
	c.state.TotalElements = page.TotalElements
	c.state.TotalPages = page.TotalPages
	c.state.Page = page.Pageable.PageNumber
	c.state.Size = page.Pageable.PageSize
	if c.state.Size <= 0 {
		c.state.Size = q.Size
	}
	c.mu.Unlock()

	c.log.Debug().
		Int("page", page.Pageable.PageNumber).
		Int("rows", len(page.Content)).
		Int64("total", page.TotalElements).
		Msg("flights fetched")
	return nil
}

// SearchFlights makes term the active filter and fetches its first page.
// Callers typing interactively should debounce before calling.
func (c *Controller) SearchFlights(ctx context.Context, term string) error {
	term = strings.TrimSpace(term)
	c.mu.Lock()
	c.state.SearchTerm = term
	c.state.Page = 0
	size := c.state.Size
	c.mu.Unlock()

	return c.FetchFlights(ctx, domain.ListQuery{Page: 0, Size: size, SearchTerm: term})
}

// ClearSearch drops the filter and fetches the first unfiltered page.
func (c *Controller) ClearSearch(ctx context.Context) error {
	c.mu.Lock()
	c.state.SearchTerm = ""
	c.state.Page = 0
	size := c.state.Size
	c.mu.Unlock()

	return c.FetchFlights(ctx, domain.ListQuery{Page: 0, Size: size})
}

// ChangePage fetches another page within the active filter. A size of
// zero keeps the current page size.
func (c *Controller) ChangePage(ctx context.Context, page, size int) error {
	q := c.currentQuery()
	q.Page = page
	if size > 0 {
		q.Size = size
	}
	return c.FetchFlights(ctx, q)
}

// Refresh refetches the current page within the active filter.
func (c *Controller) Refresh(ctx context.Context) error {
	return c.FetchFlights(ctx, c.currentQuery())
}

func (c *Controller) currentQuery() domain.ListQuery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.ListQuery{
		Page:       c.state.Page,
		Size:       c.state.Size,
		SearchTerm: c.state.SearchTerm,
	}
}
