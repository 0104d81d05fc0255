package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/travel-booking-client/internal/directory"
	"github.com/flight-search/travel-booking-client/internal/domain"
	"github.com/flight-search/travel-booking-client/internal/notify"
)

func newFlightInput(env *Env) domain.FlightInput {
	dep := env.Stub.DaysAhead(5).Add(14 * time.Hour)
	in := domain.NewFlightInput()
	in.FlightNumber = "AV999"
	in.Airline = "Avianca"
	in.Origin = "BOG"
	in.Destination = "CTG"
	in.DepartureTime = dep
	in.ArrivalTime = dep.Add(90 * time.Minute)
	in.Duration = "1h 30m"
	in.Price = 150
	in.AircraftType = "Airbus A320"
	return in
}

func TestDirectory_Pagination(t *testing.T) {
	env := NewEnv(t)
	c := env.NewClient(t)
	c.LoginAdmin(t)
	dir := c.Directory(directory.WithPageSize(10))
	ctx := context.Background()

	require.NoError(t, dir.FetchFlights(ctx, domain.ListQuery{Page: 0, Size: 10}))
	st := dir.State()
	assert.Len(t, st.Flights, 10)
	assert.Equal(t, int64(env.Stub.Catalog.Len()), st.TotalElements)
	assert.Equal(t, (env.Stub.Catalog.Len()+9)/10, st.TotalPages)

	require.NoError(t, dir.ChangePage(ctx, 1, 0))
	st = dir.State()
	assert.Equal(t, 1, st.Page)
	assert.Equal(t, 10, st.Size)

	prev := st.Flights[0].DepartureTime
	for _, f := range st.Flights[1:] {
		assert.False(t, f.DepartureTime.Before(prev.Time), "default sort is departure ascending")
		prev = f.DepartureTime
	}
}

func TestDirectory_SearchAndClear(t *testing.T) {
	env := NewEnv(t)
	c := env.NewClient(t)
	c.LoginAdmin(t)
	dir := c.Directory()
	ctx := context.Background()

	require.NoError(t, dir.SearchFlights(ctx, "jetblue"))
	st := dir.State()
	assert.Equal(t, "jetblue", st.SearchTerm)
	require.NotEmpty(t, st.Flights)
	for _, f := range st.Flights {
		assert.Equal(t, "JetBlue", f.Airline)
	}

	require.NoError(t, dir.ClearSearch(ctx))
	assert.Empty(t, dir.State().SearchTerm)
	assert.Equal(t, int64(env.Stub.Catalog.Len()), dir.State().TotalElements)
}

func TestDirectory_CreateUpdateDelete(t *testing.T) {
	env := NewEnv(t)
	c := env.NewClient(t)
	c.LoginAdmin(t)
	dir := c.Directory()
	ctx := context.Background()
	total := env.Stub.Catalog.Len()

	require.NoError(t, dir.SearchFlights(ctx, "AV999"))
	assert.Empty(t, dir.State().Flights)

	created := dir.CreateFlight(ctx, newFlightInput(env))
	require.NotNil(t, created)
	assert.Positive(t, created.ID)
	assert.True(t, created.Active)
	assert.Equal(t, total+1, env.Stub.Catalog.Len())

	st := dir.State()
	require.Len(t, st.Flights, 1, "the refetch keeps the active search term")
	assert.Equal(t, created.ID, st.Flights[0].ID)

	in := domain.InputFromFlight(*created)
	in.Price = 175
	in.Active = false
	updated := dir.UpdateFlight(ctx, created.ID, in)
	require.NotNil(t, updated)
	assert.Equal(t, 175.0, updated.Price)
	assert.False(t, updated.Active)

	got := dir.GetFlightByID(ctx, created.ID)
	require.NotNil(t, got)
	assert.Equal(t, 175.0, got.Price)

	assert.True(t, dir.DeleteFlight(ctx, created.ID))
	assert.Empty(t, dir.State().Flights)
	assert.Equal(t, total, env.Stub.Catalog.Len())

	assert.Equal(t,
		[]string{"Flight created successfully", "Flight updated successfully", "Flight deleted successfully"},
		c.Notifier.Messages(notify.LevelSuccess)[1:])
}

func TestDirectory_DeleteMissingFlightKeepsRows(t *testing.T) {
	env := NewEnv(t)
	c := env.NewClient(t)
	c.LoginAdmin(t)
	dir := c.Directory()
	ctx := context.Background()

	require.NoError(t, dir.FetchFlights(ctx, domain.ListQuery{}))
	before := dir.State().Flights
	c.Notifier.Reset()

	assert.False(t, dir.DeleteFlight(ctx, 99999))

	st := dir.State()
	assert.Equal(t, "Flight not found", st.Error)
	assert.False(t, st.Deleting)
	assert.Equal(t, before, st.Flights)
	assert.Equal(t, []string{"Flight not found"}, c.Notifier.Messages(notify.LevelError))
}

func TestDirectory_CreateRejectedByServerValidation(t *testing.T) {
	env := NewEnv(t)
	c := env.NewClient(t)
	c.LoginAdmin(t)
	dir := c.Directory()

	in := newFlightInput(env)
	in.Duration = "ninety minutes"

	assert.Nil(t, dir.CreateFlight(context.Background(), in))
	assert.NotEmpty(t, dir.State().Error)
	assert.False(t, dir.State().Creating)
}
