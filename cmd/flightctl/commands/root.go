package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Domenick1991/skybooking/config"
	"github.com/Domenick1991/skybooking/internal/auth"
	"github.com/Domenick1991/skybooking/internal/catalog"
	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/pricing"
	"github.com/Domenick1991/skybooking/internal/repository"
	"github.com/Domenick1991/skybooking/internal/service/dashboard"
	"github.com/Domenick1991/skybooking/internal/service/flights"
	"github.com/spf13/cobra"
)

// NewRootCmd builds flightctl. Search and quote run against the built-in
// catalog; token signs a bearer token with the configured secret.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:           "flightctl",
		Short:         "Search flights, price seats and mint API tokens",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")

	repo := repository.NewFlightRepository(catalog.DefaultFlights())
	root.AddCommand(newSearchCmd(repo), newQuoteCmd(repo), newTokenCmd(&cfgFile))
	return root
}

func newSearchCmd(repo repository.FlightRepository) *cobra.Command {
	var (
		filters domain.SearchFilters
		class   string
		sortBy  string
		precise bool
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			seatClass, err := domain.ParseSeatClass(class)
			if err != nil {
				return err
			}
			key, err := flights.ParseSortKey(sortBy)
			if err != nil {
				return err
			}
			mode := flights.SortLegacy
			if precise {
				mode = flights.SortPrecise
			}
			filters.SeatClass = seatClass
			filters.TripType = domain.TripTypeOneWay

			service := flights.NewFlightService(repo, flights.WithSortMode(mode))
			found, err := service.Search(context.Background(), flights.SearchRequest{Filters: filters, SortBy: key})
			if err != nil {
				return err
			}
			return printFlights(cmd.OutOrStdout(), found, seatClass, filters.Passengers)
		},
	}
	cmd.Flags().StringVar(&filters.Departure, "from", "", "departure city")
	cmd.Flags().StringVar(&filters.Destination, "to", "", "destination city")
	cmd.Flags().StringVar(&filters.DepartureDate, "date", "", "departure date, YYYY-MM-DD")
	cmd.Flags().IntVar(&filters.Passengers, "passengers", 1, "number of passengers")
	cmd.Flags().StringVar(&class, "class", "economy", "economy, business or first")
	cmd.Flags().StringVar(&sortBy, "sort", "price", "price, duration or departure")
	cmd.Flags().BoolVar(&precise, "precise", false, "compare full durations and day offsets")
	return cmd
}

func printFlights(out io.Writer, found []domain.Flight, class domain.SeatClass, passengers int) error {
	if len(found) == 0 {
		_, err := fmt.Fprintln(out, "No flights found")
		return err
	}
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tFlight\tAirline\tDeparts\tArrives\tDuration\tStops\tPer passenger\tSubtotal")
	for _, f := range found {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s %s\t%s %s\t%s\t%d\t%s\t%s\n",
			f.ID,
			f.FlightNumber,
			f.Airline,
			f.Departure.Airport, f.Departure.Time,
			f.Arrival.Airport, f.Arrival.Time,
			f.Duration,
			f.Stops,
			dashboard.FormatCurrency(f.Price.Get(class)),
			dashboard.FormatCurrency(pricing.Subtotal(f, class, passengers)),
		)
	}
	return w.Flush()
}

func newQuoteCmd(repo repository.FlightRepository) *cobra.Command {
	var (
		class      string
		passengers int
	)
	cmd := &cobra.Command{
		Use:   "quote <flight-id>",
		Short: "Price a seat selection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seatClass, err := domain.ParseSeatClass(class)
			if err != nil {
				return err
			}
			flight, ok := repo.GetByID(context.Background(), args[0])
			if !ok {
				return fmt.Errorf("flight %q not found", args[0])
			}
			quote, err := pricing.NewQuote(flight, seatClass, passengers)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Flight\t%s %s\n", flight.FlightNumber, strings.ToUpper(quote.SeatClass.String()))
			fmt.Fprintf(w, "Price per passenger\t%s\n", dashboard.FormatCurrency(quote.PerPassenger))
			fmt.Fprintf(w, "Passengers\t%d\n", quote.Passengers)
			fmt.Fprintf(w, "Subtotal\t%s\n", dashboard.FormatCurrency(quote.Subtotal))
			fmt.Fprintf(w, "Taxes & fees\t%s\n", dashboard.FormatCurrency(quote.Fees))
			fmt.Fprintf(w, "Total\t%s\n", dashboard.FormatCurrency(quote.Total))
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&class, "class", "economy", "economy, business or first")
	cmd.Flags().IntVar(&passengers, "passengers", 1, "number of passengers")
	return cmd
}

func newTokenCmd(cfgFile *string) *cobra.Command {
	var user domain.User
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign a bearer token for the API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if user.ID == "" {
				return fmt.Errorf("--user-id is required")
			}
			cfg, err := config.LoadConfig(*cfgFile)
			if err != nil {
				return err
			}
			token, err := auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL).IssueToken(user)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&user.ID, "user-id", "", "subject of the token")
	cmd.Flags().StringVar(&user.Email, "email", "", "email claim")
	cmd.Flags().StringVar(&user.FirstName, "first-name", "", "first name claim")
	cmd.Flags().StringVar(&user.LastName, "last-name", "", "last name claim")
	cmd.Flags().BoolVar(&user.IsAdmin, "admin", false, "grant admin access")
	return cmd
}
