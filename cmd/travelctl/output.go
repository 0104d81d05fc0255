package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/flight-search/travel-booking-client/internal/directory"
	"github.com/flight-search/travel-booking-client/internal/domain"
	"github.com/flight-search/travel-booking-client/internal/session"
)

const displayTime = "2006-01-02 15:04"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func printResults(w io.Writer, r *domain.SearchResultSet) {
	if r == nil {
		return
	}
	fmt.Fprintf(w, "Outbound (%d)\n", len(r.OutboundFlights))
	printFlights(w, r.OutboundFlights, r.Metadata.Currency)
	if len(r.ReturnFlights) > 0 {
		fmt.Fprintf(w, "\nReturn (%d)\n", len(r.ReturnFlights))
		printFlights(w, r.ReturnFlights, r.Metadata.Currency)
	}
	if r.Metadata.SearchID != "" {
		fmt.Fprintf(w, "\nSearch %s, %d results\n", r.Metadata.SearchID, r.Metadata.TotalResults)
	}
}

func printFlights(w io.Writer, flights []domain.Flight, currency string) {
	if len(flights) == 0 {
		fmt.Fprintln(w, "  no flights")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "  FLIGHT\tAIRLINE\tROUTE\tDEPARTS\tARRIVES\tDURATION\tPRICE\tSEATS\tCABIN")
	for _, f := range flights {
		fmt.Fprintf(tw, "  %s\t%s\t%s-%s\t%s\t%s\t%s\t%.2f %s\t%d\t%s\n",
			f.FlightNumber, f.Airline, f.Origin, f.Destination,
			f.DepartureTime.Format(displayTime), f.ArrivalTime.Format(displayTime),
			f.Duration, f.Price, currency, f.AvailableSeats, f.CabinClass)
	}
	tw.Flush()
}

func printSearchState(w io.Writer, st session.SearchState) {
	switch {
	case !st.HasSearched:
		fmt.Fprintln(w, "No search yet.")
		return
	case st.Error != "":
		fmt.Fprintf(w, "Last search failed: %s\n", st.Error)
	}

	if c := st.LastCriteria; c != nil {
		fmt.Fprintf(w, "%s to %s on %s", c.Origin, c.Destination, c.DepartureDate.Format(domain.DateLayout))
		if c.IsRoundTrip() && c.ReturnDate != nil {
			fmt.Fprintf(w, ", returning %s", c.ReturnDate.Format(domain.DateLayout))
		}
		fmt.Fprintf(w, ", %d passenger(s)\n\n", c.Passengers)
	}
	printResults(w, st.Results)
}

func printLocations(w io.Writer, locs session.Locations) {
	section := func(title string, list []domain.Location) {
		fmt.Fprintf(w, "%s:\n", title)
		tw := newTable(w)
		for _, l := range list {
			fmt.Fprintf(tw, "  %s\t%s\n", l.Code, l.Name)
		}
		tw.Flush()
	}
	section("Origins", locs.Origins)
	section("Destinations", locs.Destinations)
}

func printListing(w io.Writer, st directory.State) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tFLIGHT\tAIRLINE\tROUTE\tDEPARTS\tPRICE\tSEATS\tACTIVE")
	for _, f := range st.Flights {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s-%s\t%s\t%.2f\t%d\t%t\n",
			f.ID, f.FlightNumber, f.Airline, f.Origin, f.Destination,
			f.DepartureTime.Format(displayTime), f.Price, f.AvailableSeats, f.Active)
	}
	tw.Flush()

	pages := st.TotalPages
	if pages == 0 {
		pages = 1
	}
	fmt.Fprintf(w, "\nPage %d of %d, %d flights", st.Page+1, pages, st.TotalElements)
	if st.SearchTerm != "" {
		fmt.Fprintf(w, " matching %q", st.SearchTerm)
	}
	fmt.Fprintln(w)
}

func printFlight(w io.Writer, f domain.AdminFlight) {
	tw := newTable(w)
	rows := [][2]string{
		{"ID", fmt.Sprint(f.ID)},
		{"Flight", f.FlightNumber},
		{"Airline", f.Airline},
		{"Route", f.Origin + " - " + f.Destination},
		{"Departs", f.DepartureTime.Format(displayTime)},
		{"Arrives", f.ArrivalTime.Format(displayTime)},
		{"Duration", f.Duration},
		{"Price", fmt.Sprintf("%.2f", f.Price)},
		{"Aircraft", f.AircraftType},
		{"Seats", fmt.Sprint(f.AvailableSeats)},
		{"Cabin", string(f.CabinClass)},
		{"Active", fmt.Sprint(f.Active)},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s:\t%s\n", r[0], r[1])
	}
	tw.Flush()
}

// describeInvalid turns form validation failures into one error listing
// every failing field.
func describeInvalid(action string, err error) error {
	var verrs *domain.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%s: %w", action, err)
	}
	msgs := verrs.ToMap()
	parts := make([]string, 0, len(msgs))
	for _, field := range verrs.Fields() {
		parts = append(parts, field+": "+msgs[field])
	}
	return fmt.Errorf("%s: invalid input (%s)", action, strings.Join(parts, "; "))
}
