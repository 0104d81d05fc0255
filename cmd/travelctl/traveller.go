package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/flight-search/travel-booking-client/internal/domain"
	"github.com/flight-search/travel-booking-client/internal/session"
)

func searchCommand() *command {
	return &command{
		name:    "search",
		usage:   "travelctl search --from BOG --to MIA --depart 2025-06-01 [--return 2025-06-08] [--passengers 2]",
		summary: "Search flights and keep the results as the current search",
		flags: func(fs *pflag.FlagSet) {
			fs.String("from", "", "origin city or airport code")
			fs.String("to", "", "destination city or airport code")
			fs.String("depart", "", "departure date (YYYY-MM-DD)")
			fs.String("return", "", "return date (YYYY-MM-DD); implies a round trip")
			fs.String("trip", "", "trip type: oneway or roundtrip (default: inferred from --return)")
			fs.Int("passengers", 1, "number of passengers (1-9)")
		},
		run: runSearch,
	}
}

func runSearch(ctx context.Context, e *env, fs *pflag.FlagSet, args []string) error {
	if len(args) > 0 {
		return errUsage
	}
	criteria, err := criteriaFromFlags(fs)
	if err != nil {
		return err
	}

	return withApp(ctx, e, func(a *app) error {
		if err := a.validator.ValidateCriteria(criteria); err != nil {
			return describeInvalid("search", err)
		}

		results, err := a.searchStore(ctx).SearchFlights(ctx, criteria)
		if err != nil {
			return err
		}
		printResults(a.out, results)
		return nil
	})
}

func criteriaFromFlags(fs *pflag.FlagSet) (domain.SearchCriteria, error) {
	from, _ := fs.GetString("from")
	to, _ := fs.GetString("to")
	depart, _ := fs.GetString("depart")
	ret, _ := fs.GetString("return")
	trip, _ := fs.GetString("trip")
	passengers, _ := fs.GetInt("passengers")

	c := domain.SearchCriteria{
		Origin:      strings.TrimSpace(from),
		Destination: strings.TrimSpace(to),
		TripType:    domain.TripType(trip),
		Passengers:  passengers,
	}
	if c.TripType == "" {
		c.TripType = domain.TripOneWay
		if ret != "" {
			c.TripType = domain.TripRoundTrip
		}
	}

	if depart != "" {
		d, err := time.Parse(domain.DateLayout, depart)
		if err != nil {
			return c, fmt.Errorf("--depart must be YYYY-MM-DD, got %q", depart)
		}
		c.DepartureDate = d
	}
	if ret != "" {
		d, err := time.Parse(domain.DateLayout, ret)
		if err != nil {
			return c, fmt.Errorf("--return must be YYYY-MM-DD, got %q", ret)
		}
		c.ReturnDate = &d
	}
	return c, nil
}

func resultsCommand() *command {
	return &command{
		name:    "results",
		usage:   "travelctl results",
		summary: "Show the results of the last search",
		run: func(ctx context.Context, e *env, _ *pflag.FlagSet, args []string) error {
			if len(args) > 0 {
				return errUsage
			}
			return withApp(ctx, e, func(a *app) error {
				printSearchState(a.out, a.searchStore(ctx).State())
				return nil
			})
		},
	}
}

func clearCommand() *command {
	return &command{
		name:    "clear",
		usage:   "travelctl clear",
		summary: "Forget the last search",
		run: func(ctx context.Context, e *env, _ *pflag.FlagSet, args []string) error {
			if len(args) > 0 {
				return errUsage
			}
			return withApp(ctx, e, func(a *app) error {
				a.searchStore(ctx).ClearSearch()
				fmt.Fprintln(a.out, "Search cleared.")
				return nil
			})
		},
	}
}

func loginCommand() *command {
	return &command{
		name:    "login",
		usage:   "travelctl login --email admin@amadeus.com --password password123",
		summary: "Sign in and keep the session for later commands",
		flags: func(fs *pflag.FlagSet) {
			fs.String("email", "", "account email")
			fs.String("password", "", "account password")
		},
		run: func(ctx context.Context, e *env, fs *pflag.FlagSet, args []string) error {
			if len(args) > 0 {
				return errUsage
			}
			email, _ := fs.GetString("email")
			password, _ := fs.GetString("password")
			creds := domain.Credentials{Email: strings.TrimSpace(email), Password: password}

			return withApp(ctx, e, func(a *app) error {
				if err := a.validator.ValidateCredentials(creds); err != nil {
					return describeInvalid("login", err)
				}
				user, err := a.authStore(ctx).Login(ctx, creds)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Signed in as %s <%s> (%s)\n", user.Name, user.Email, user.Role)
				return nil
			})
		},
	}
}

func logoutCommand() *command {
	return &command{
		name:    "logout",
		usage:   "travelctl logout",
		summary: "Sign out and drop the stored session",
		run: func(ctx context.Context, e *env, _ *pflag.FlagSet, args []string) error {
			if len(args) > 0 {
				return errUsage
			}
			return withApp(ctx, e, func(a *app) error {
				a.authStore(ctx).Logout(ctx)
				return nil
			})
		},
	}
}

func whoamiCommand() *command {
	return &command{
		name:    "whoami",
		usage:   "travelctl whoami",
		summary: "Check the stored session against the server",
		run: func(ctx context.Context, e *env, _ *pflag.FlagSet, args []string) error {
			if len(args) > 0 {
				return errUsage
			}
			return withApp(ctx, e, func(a *app) error {
				auth := a.authStore(ctx)
				auth.Initialize(ctx)
				st := auth.State()
				if !st.Authenticated {
					fmt.Fprintln(a.out, "Not signed in.")
					return nil
				}
				fmt.Fprintf(a.out, "%s <%s> (%s)\n", st.User.Name, st.User.Email, st.User.Role)
				return nil
			})
		},
	}
}

func locationsCommand() *command {
	return &command{
		name:    "locations",
		usage:   "travelctl locations",
		summary: "List the origins and destinations served",
		run: func(ctx context.Context, e *env, _ *pflag.FlagSet, args []string) error {
			if len(args) > 0 {
				return errUsage
			}
			return withApp(ctx, e, func(a *app) error {
				locs, err := session.LoadLocations(ctx, a.client, a.notifier)
				printLocations(a.out, locs)
				return err
			})
		},
	}
}
