package directory

import (
	"context"

	"github.com/flight-search/travel-booking-client/internal/domain"
)

// mutation describes one create, update or delete for run.
type mutation struct {
	name     string
	flag     func(st *State) *bool
	fallback string
	success  string
}

var (
	createMutation = mutation{"create", func(st *State) *bool { return &st.Creating }, msgCreateFailed, msgCreated}
	updateMutation = mutation{"update", func(st *State) *bool { return &st.Updating }, msgUpdateFailed, msgUpdated}
	deleteMutation = mutation{"delete", func(st *State) *bool { return &st.Deleting }, msgDeleteFailed, msgDeleted}
)

// run drives a mutation's flag idle -> in flight -> idle around call. On
// success it notifies and refetches with the query that was active when
// the mutation started.
func (c *Controller) run(ctx context.Context, m mutation, call func() error) bool {
	c.mu.Lock()
	*m.flag(&c.state) = true
	c.state.Error = ""
	scope := domain.ListQuery{
		Page:       c.state.Page,
		Size:       c.state.Size,
		SearchTerm: c.state.SearchTerm,
	}
	c.mu.Unlock()

	err := call()

	c.mu.Lock()
	*m.flag(&c.state) = false
	if err != nil {
		msg := domain.Message(err, m.fallback)
		c.state.Error = msg
		c.mu.Unlock()
		c.log.Warn().Err(err).Str("op", m.name).Msg("flight mutation failed")
		c.notifier.Error(msg)
		return false
	}
	c.mu.Unlock()

	c.log.Info().Str("op", m.name).Msg("flight mutation succeeded")
	c.notifier.Success(m.success)
	_ = c.FetchFlights(ctx, scope)
	return true
}

// CreateFlight creates a flight. It returns nil on failure; the error is
// recorded in State and notified.
func (c *Controller) CreateFlight(ctx context.Context, in domain.FlightInput) *domain.AdminFlight {
	var created domain.AdminFlight
	ok := c.run(ctx, createMutation, func() error {
		env, err := c.client.CreateFlight(ctx, in)
		created = env.Data
		return err
	})
	if !ok {
		return nil
	}
	return &created
}

// UpdateFlight replaces flight id. It returns nil on failure.
func (c *Controller) UpdateFlight(ctx context.Context, id int64, in domain.FlightInput) *domain.AdminFlight {
	var updated domain.AdminFlight
	ok := c.run(ctx, updateMutation, func() error {
		env, err := c.client.UpdateFlight(ctx, id, in)
		updated = env.Data
		return err
	})
	if !ok {
		return nil
	}
	return &updated
}

// DeleteFlight deletes flight id and reports whether it succeeded.
// Confirmation is the caller's job.
func (c *Controller) DeleteFlight(ctx context.Context, id int64) bool {
	return c.run(ctx, deleteMutation, func() error {
		_, err := c.client.DeleteFlight(ctx, id)
		return err
	})
}

// GetFlightByID looks up one flight without touching the listing.
// Failures are notified and yield nil.
func (c *Controller) GetFlightByID(ctx context.Context, id int64) *domain.AdminFlight {
	env, err := c.client.GetFlight(ctx, id)
	if err != nil {
		c.log.Warn().Err(err).Int64("id", id).Msg("get flight failed")
		c.notifier.Error(domain.Message(err, msgGetFailed))
		return nil
	}
	f := env.Data
	return &f
}
