package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/flight-search/travel-booking-client/internal/directory"
	"github.com/flight-search/travel-booking-client/internal/domain"
)

// flightTimeLayouts are accepted by --depart and --arrive.
var flightTimeLayouts = []string{"2006-01-02T15:04", "2006-01-02T15:04:05", time.RFC3339}

func adminCommand() *command {
	return &command{
		name:    "admin",
		usage:   "travelctl admin <command> [flags]",
		summary: "Manage flights (requires an admin session)",
		subcommands: []*command{
			{
				name:    "list",
				usage:   "travelctl admin list [--page 0] [--size 20] [--sort departureTime] [--dir asc]",
				summary: "List flights one page at a time",
				flags:   listFlags,
				run: func(ctx context.Context, e *env, fs *pflag.FlagSet, args []string) error {
					if len(args) > 0 {
						return errUsage
					}
					return runAdminList(ctx, e, fs, "")
				},
			},
			{
				name:    "search",
				usage:   "travelctl admin search <term> [--page 0] [--size 20]",
				summary: "Search flights by number, airline, route or aircraft",
				flags:   listFlags,
				run: func(ctx context.Context, e *env, fs *pflag.FlagSet, args []string) error {
					if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
						return errUsage
					}
					return runAdminList(ctx, e, fs, args[0])
				},
			},
			{
				name:    "get",
				usage:   "travelctl admin get <id>",
				summary: "Show one flight",
				run:     runAdminGet,
			},
			{
				name:    "create",
				usage:   "travelctl admin create --number AV204 --airline Avianca --from BOG --to MIA --depart 2025-06-01T06:00 --arrive 2025-06-01T10:15 --price 420 --aircraft \"Airbus A320\"",
				summary: "Create a flight",
				flags:   flightFlags,
				run:     runAdminCreate,
			},
			{
				name:    "update",
				usage:   "travelctl admin update <id> [flight flags]",
				summary: "Update a flight; unset flags keep their current value",
				flags:   flightFlags,
				run:     runAdminUpdate,
			},
			{
				name:    "delete",
				usage:   "travelctl admin delete <id>",
				summary: "Delete a flight",
				run:     runAdminDelete,
			},
		},
	}
}

func listFlags(fs *pflag.FlagSet) {
	fs.Int("page", 0, "zero-based page number")
	fs.Int("size", 0, "page size (default: DIRECTORY_PAGE_SIZE)")
	fs.String("sort", "", "sort field, e.g. price or departureTime")
	fs.String("dir", "asc", "sort direction: asc or desc")
}

func runAdminList(ctx context.Context, e *env, fs *pflag.FlagSet, term string) error {
	q := domain.ListQuery{SearchTerm: term}
	q.Page, _ = fs.GetInt("page")
	q.Size, _ = fs.GetInt("size")
	q.SortBy, _ = fs.GetString("sort")
	direction, _ := fs.GetString("dir")
	q.SortDir = domain.SortDir(strings.ToLower(direction))
	if q.Size == 0 {
		q.Size = e.cfg.Directory.PageSize
	}

	return withApp(ctx, e, func(a *app) error {
		dir, err := a.directory(ctx)
		if err != nil {
			return err
		}
		if err := dir.FetchFlights(ctx, q); err != nil {
			return err
		}
		printListing(a.out, dir.State())
		return nil
	})
}

func runAdminGet(ctx context.Context, e *env, _ *pflag.FlagSet, args []string) error {
	id, err := flightID(args)
	if err != nil {
		return err
	}
	return withApp(ctx, e, func(a *app) error {
		dir, err := a.directory(ctx)
		if err != nil {
			return err
		}
		f := dir.GetFlightByID(ctx, id)
		if f == nil {
			return fmt.Errorf("flight %d could not be loaded", id)
		}
		printFlight(a.out, *f)
		return nil
	})
}

func runAdminCreate(ctx context.Context, e *env, fs *pflag.FlagSet, args []string) error {
	if len(args) > 0 {
		return errUsage
	}
	in := domain.NewFlightInput()
	if err := applyFlightFlags(fs, &in); err != nil {
		return err
	}

	return withApp(ctx, e, func(a *app) error {
		if err := a.validator.ValidateFlight(in); err != nil {
			return describeInvalid("create", err)
		}
		dir, err := a.directory(ctx)
		if err != nil {
			return err
		}
		created := dir.CreateFlight(ctx, in)
		if created == nil {
			return mutationError(dir)
		}
		printFlight(a.out, *created)
		return nil
	})
}

func runAdminUpdate(ctx context.Context, e *env, fs *pflag.FlagSet, args []string) error {
	id, err := flightID(args)
	if err != nil {
		return err
	}

	return withApp(ctx, e, func(a *app) error {
		dir, err := a.directory(ctx)
		if err != nil {
			return err
		}
		current := dir.GetFlightByID(ctx, id)
		if current == nil {
			return fmt.Errorf("flight %d could not be loaded", id)
		}

		in := domain.InputFromFlight(*current)
		if err := applyFlightFlags(fs, &in); err != nil {
			return err
		}
		if err := a.validator.ValidateFlight(in); err != nil {
			return describeInvalid("update", err)
		}

		updated := dir.UpdateFlight(ctx, id, in)
		if updated == nil {
			return mutationError(dir)
		}
		printFlight(a.out, *updated)
		return nil
	})
}

func runAdminDelete(ctx context.Context, e *env, _ *pflag.FlagSet, args []string) error {
	id, err := flightID(args)
	if err != nil {
		return err
	}
	return withApp(ctx, e, func(a *app) error {
		dir, err := a.directory(ctx)
		if err != nil {
			return err
		}
		if !dir.DeleteFlight(ctx, id) {
			return mutationError(dir)
		}
		return nil
	})
}

func flightID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, errUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("flight id must be a positive integer, got %q", args[0])
	}
	return id, nil
}

func mutationError(dir *directory.Controller) error {
	if msg := dir.State().Error; msg != "" {
		return errors.New(msg)
	}
	return errors.New("request failed")
}

func flightFlags(fs *pflag.FlagSet) {
	fs.String("number", "", "flight number, e.g. AV204")
	fs.String("airline", "", "airline name")
	fs.String("from", "", "origin city or airport code")
	fs.String("to", "", "destination city or airport code")
	fs.String("depart", "", "departure time (YYYY-MM-DDTHH:MM)")
	fs.String("arrive", "", "arrival time (YYYY-MM-DDTHH:MM)")
	fs.String("duration", "", `duration as "Xh Ym" (default: arrival minus departure)`)
	fs.Float64("price", 0, "price per passenger")
	fs.String("aircraft", "", "aircraft type")
	fs.Int("seats", 100, "available seats")
	fs.String("cabin", string(domain.CabinEconomy), "cabin class: Economy, Business or First")
	fs.Bool("active", true, "whether the flight is bookable")
}

// applyFlightFlags overwrites the fields of in whose flags were set. The
// duration is derived from the times when it is not given explicitly.
func applyFlightFlags(fs *pflag.FlagSet, in *domain.FlightInput) error {
	str := func(name string, dst *string) {
		if fs.Changed(name) {
			v, _ := fs.GetString(name)
			*dst = strings.TrimSpace(v)
		}
	}
	str("number", &in.FlightNumber)
	str("airline", &in.Airline)
	str("from", &in.Origin)
	str("to", &in.Destination)
	str("aircraft", &in.AircraftType)
	str("duration", &in.Duration)

	timesChanged := false
	for name, dst := range map[string]*time.Time{"depart": &in.DepartureTime, "arrive": &in.ArrivalTime} {
		if !fs.Changed(name) {
			continue
		}
		raw, _ := fs.GetString(name)
		t, err := parseFlightTime(raw)
		if err != nil {
			return fmt.Errorf("--%s: %w", name, err)
		}
		*dst = t
		timesChanged = true
	}
	if !fs.Changed("duration") && (timesChanged || in.Duration == "") &&
		!in.DepartureTime.IsZero() && in.ArrivalTime.After(in.DepartureTime) {
		in.Duration = domain.FormatDuration(int(in.ArrivalTime.Sub(in.DepartureTime).Minutes()))
	}

	if fs.Changed("price") {
		in.Price, _ = fs.GetFloat64("price")
	}
	if fs.Changed("seats") || in.AvailableSeats == 0 {
		in.AvailableSeats, _ = fs.GetInt("seats")
	}
	if fs.Changed("cabin") || in.CabinClass == "" {
		cabin, _ := fs.GetString("cabin")
		in.CabinClass = domain.CabinClass(cabin)
	}
	if fs.Changed("active") {
		in.Active, _ = fs.GetBool("active")
	}
	return nil
}

func parseFlightTime(raw string) (time.Time, error) {
	for _, layout := range flightTimeLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(raw)); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("expected YYYY-MM-DDTHH:MM, got %q", raw)
}
