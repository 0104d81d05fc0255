package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/travel-booking-client/internal/domain"
	"github.com/flight-search/travel-booking-client/test/testutil"
)

type cli struct {
	t    *testing.T
	stub *testutil.Stub
}

func newCLI(t *testing.T) *cli {
	stub := testutil.StartStub(t)
	t.Setenv("API_BASE_URL", stub.BaseURL())
	t.Setenv("STORAGE_BACKEND", "file")
	t.Setenv("STORAGE_DIR", t.TempDir())
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FORMAT", "json")
	return &cli{t: t, stub: stub}
}

// exec runs one travelctl invocation and returns stdout and stderr.
func (c *cli) exec(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func (c *cli) mustExec(args ...string) string {
	c.t.Helper()
	out, errOut, err := c.exec(args...)
	require.NoError(c.t, err, errOut)
	return out
}

func (c *cli) day(n int) string {
	return c.stub.DaysAhead(n).Format(domain.DateLayout)
}

func TestCLI_SearchThenResults(t *testing.T) {
	c := newCLI(t)

	out, notices, err := c.exec("search", "--from", "BOG", "--to", "MIA", "--depart", c.day(1))
	require.NoError(t, err)
	assert.Contains(t, out, "Outbound (3)")
	assert.Contains(t, notices, "[success] Found 3 flights")

	out = c.mustExec("results")
	assert.Contains(t, out, "BOG to MIA on "+c.day(1))
	assert.Contains(t, out, "Outbound (3)")

	c.mustExec("clear")
	assert.Contains(t, c.mustExec("results"), "No search yet.")
}

func TestCLI_RoundTripSearch(t *testing.T) {
	c := newCLI(t)

	out := c.mustExec("search", "--from", "BOG", "--to", "MIA", "--depart", c.day(1), "--return", c.day(3), "--passengers", "2")

	assert.Contains(t, out, "Outbound (3)")
	assert.Contains(t, out, "Return (2)")
}

func TestCLI_SearchValidation(t *testing.T) {
	c := newCLI(t)

	_, _, err := c.exec("search", "--from", "BOG", "--to", "BOG", "--depart", c.day(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "destination")

	_, _, err = c.exec("search", "--from", "BOG", "--to", "MIA", "--depart", "tomorrow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--depart")
}

func TestCLI_LoginWhoamiLogout(t *testing.T) {
	c := newCLI(t)

	assert.Contains(t, c.mustExec("whoami"), "Not signed in.")

	out := c.mustExec("login", "--email", "admin@amadeus.com", "--password", "password123")
	assert.Contains(t, out, "Signed in as Admin <admin@amadeus.com> (ADMIN)")

	assert.Contains(t, c.mustExec("whoami"), "admin@amadeus.com")

	_, notices, err := c.exec("logout")
	require.NoError(t, err)
	assert.Contains(t, notices, "You have been logged out")
	assert.Contains(t, c.mustExec("whoami"), "Not signed in.")
}

func TestCLI_LoginRejected(t *testing.T) {
	c := newCLI(t)

	_, _, err := c.exec("login", "--email", "admin@amadeus.com", "--password", "wrong-password")
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", err.Error())

	_, _, err = c.exec("login", "--email", "not-an-email", "--password", "password123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
}

func TestCLI_AdminNeedsAdminSession(t *testing.T) {
	c := newCLI(t)

	_, _, err := c.exec("admin", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not signed in")

	c.mustExec("login", "--email", "user@amadeus.com", "--password", "password123")
	_, _, err = c.exec("admin", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "admin access required")
}

func TestCLI_AdminLifecycle(t *testing.T) {
	c := newCLI(t)
	c.mustExec("login", "--email", "admin@amadeus.com", "--password", "password123")

	out := c.mustExec("admin", "list", "--size", "5", "--sort", "price", "--dir", "desc")
	assert.Contains(t, out, "Page 1 of")

	depart := c.day(6) + "T09:00"
	arrive := c.day(6) + "T10:30"
	out = c.mustExec("admin", "create",
		"--number", "AV777", "--airline", "Avianca", "--from", "BOG", "--to", "CTG",
		"--depart", depart, "--arrive", arrive, "--price", "199", "--aircraft", "Airbus A320")
	assert.Contains(t, out, "AV777")
	assert.Contains(t, out, "1h 30m", "duration is derived from the times")

	out = c.mustExec("admin", "search", "AV777")
	assert.Contains(t, out, "1 flights matching \"AV777\"")
	id := strings.Fields(strings.Split(out, "\n")[1])[0]

	out = c.mustExec("admin", "update", id, "--price", "249.5")
	assert.Contains(t, out, "249.50")
	assert.Contains(t, out, "AV777", "unset flags keep their values")

	assert.Contains(t, c.mustExec("admin", "get", id), "249.50")

	_, notices, err := c.exec("admin", "delete", id)
	require.NoError(t, err)
	assert.Contains(t, notices, "[success] Flight deleted successfully")

	_, _, err = c.exec("admin", "delete", id)
	require.Error(t, err)
	assert.Equal(t, "Flight not found", err.Error())
}

func TestCLI_Locations(t *testing.T) {
	c := newCLI(t)

	out := c.mustExec("locations")

	assert.Contains(t, out, "Origins:")
	assert.Contains(t, out, "BOG")
	assert.Contains(t, out, "Destinations:")
}

func TestCLI_Usage(t *testing.T) {
	c := newCLI(t)

	_, _, err := c.exec("fly")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "fly"`)

	_, _, err = c.exec()
	assert.Error(t, err)

	_, help, err := c.exec("--help")
	require.NoError(t, err)
	assert.Contains(t, help, "admin")

	_, _, err = c.exec("admin", "get")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid arguments")

	_, _, err = c.exec("admin", "get", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive integer")
}
