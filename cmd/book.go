package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"cineplex-booking-cli/model"
	"cineplex-booking-cli/service"
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Book seats on a showtime",
	Long:  `Book seats on a showtime. Omitted flags are prompted interactively; the charged tier is resolved before the price is shown and peak overrides are final.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		customer, _ := cmd.Flags().GetString("customer")
		if customer == "" {
			return fmt.Errorf("--customer is required")
		}

		showtimeID, _ := cmd.Flags().GetString("showtime")
		if showtimeID == "" {
			if showtimeID, err = promptSelectShowtime(app); err != nil {
				return err
			}
		}
		showtime, err := app.Showtimes.Get(showtimeID)
		if err != nil {
			return err
		}

		rawSeats, _ := cmd.Flags().GetString("seats")
		if rawSeats == "" {
			prompt := promptui.Prompt{Label: "Seats (e.g. A1,A2)"}
			if rawSeats, err = prompt.Run(); err != nil {
				return err
			}
		}
		seats, err := model.ParseSeatList(rawSeats)
		if err != nil {
			return err
		}

		raw, _ := cmd.Flags().GetString("tier")
		requested, err := model.ParseTicketType(raw)
		if err != nil {
			return err
		}
		tier := app.Pricing.ResolveTier(showtime.Datetime, requested)
		if tier != requested {
			fmt.Printf("note: this slot prices as %s\n", tier)
		}

		booking, err := app.Bookings.Create(customer, showtimeID, seats, tier)
		if err != nil {
			return err
		}
		printReceipt(booking)
		return nil
	},
}

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "List bookings",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		customer, _ := cmd.Flags().GetString("customer")

		bookings := app.Bookings.List()
		if customer != "" {
			bookings = app.Bookings.ByCustomer(customer)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Transaction", "Customer", "Showtime", "Seats", "Tier", "Total"})
		for _, booking := range bookings {
			labels := make([]string, len(booking.Seats))
			for i, seat := range booking.Seats {
				labels[i] = model.SeatLabel(seat)
			}
			t.AppendRow(table.Row{
				booking.TransactionID,
				booking.CustomerID,
				booking.ShowtimeID,
				strings.Join(labels, ","),
				booking.TicketType,
				booking.TotalPrice.StringFixed(2),
			})
		}
		t.Render()
		return nil
	},
}

var cancelCmd = &cobra.Command{
	Use:   "cancel <transaction-id>",
	Short: "Cancel a booking and release its seats",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		return app.Bookings.Cancel(args[0])
	},
}

func promptSelectShowtime(app *service.App) (string, error) {
	showtimes := app.Showtimes.List()
	if len(showtimes) == 0 {
		return "", fmt.Errorf("no showtimes scheduled")
	}

	labels := make([]string, len(showtimes))
	for i, showtime := range showtimes {
		title := fmt.Sprintf("movie #%d", showtime.MovieID)
		if movie, err := app.Movies.Movie(showtime.MovieID); err == nil {
			title = movie.Title
		}
		labels[i] = fmt.Sprintf("%s • %s • cinema %d • %d seats free",
			showtime.Datetime.Format(showtimeLayout), title, showtime.CinemaID, showtime.Seats.CountAvailable())
	}

	selectShowtime := promptui.Select{
		Label: "Select Showtime",
		Items: labels,
		Size:  10,
	}
	i, _, err := selectShowtime.Run()
	if err != nil {
		return "", err
	}
	return showtimes[i].ID, nil
}

func printReceipt(booking model.Booking) {
	labels := make([]string, len(booking.Seats))
	for i, seat := range booking.Seats {
		labels[i] = model.SeatLabel(seat)
	}
	fmt.Printf("booked %s\n", booking.TransactionID)
	fmt.Printf("  seats: %s\n", strings.Join(labels, ", "))
	fmt.Printf("  tier:  %s\n", booking.TicketType)
	fmt.Printf("  total: %s\n", booking.TotalPrice.StringFixed(2))
}

func init() {
	bookCmd.Flags().String("customer", "", "customer id or email")
	bookCmd.Flags().String("showtime", "", "showtime id (prompted when omitted)")
	bookCmd.Flags().String("seats", "", "comma-separated seat labels, e.g. A1,A2")
	bookCmd.Flags().String("tier", string(model.TicketNonPeak), "requested ticket tier")
	bookingsCmd.Flags().String("customer", "", "filter by customer")
}
