package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"

	"cineplex-booking-cli/model"
	"cineplex-booking-cli/service"
)

const showtimeLayout = "2006-01-02 15:04"

var showtimeCmd = &cobra.Command{
	Use:   "showtime",
	Short: "Manage showtimes",
}

var showtimeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List showtimes, optionally filtered by movie or cinema",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		movieID, _ := cmd.Flags().GetInt("movie")
		cinemaID, _ := cmd.Flags().GetInt("cinema")

		var showtimes []model.Showtime
		switch {
		case movieID > 0:
			showtimes = app.Showtimes.ByMovie(movieID)
		case cinemaID > 0:
			showtimes = app.Showtimes.ByCinema(cinemaID)
		default:
			showtimes = app.Showtimes.List()
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Movie", "Cinema", "When", "Type", "Seats free"})
		for _, showtime := range showtimes {
			title := fmt.Sprintf("#%d", showtime.MovieID)
			if movie, err := app.Movies.Movie(showtime.MovieID); err == nil {
				title = movie.Title
			}
			t.AppendRow(table.Row{
				showtime.ID,
				title,
				showtime.CinemaID,
				showtime.Datetime.Format(showtimeLayout),
				showtime.ShowType,
				fmt.Sprintf("%d/%d", showtime.Seats.CountAvailable(), showtime.Seats.CountTotal()),
			})
		}
		t.Render()
		return nil
	},
}

var showtimeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Schedule a showtime",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		movieID, _ := cmd.Flags().GetInt("movie")
		if movieID == 0 {
			if movieID, err = promptSelectMovie(app); err != nil {
				return err
			}
		}
		cinemaID, _ := cmd.Flags().GetInt("cinema")
		if cinemaID == 0 {
			if cinemaID, err = promptSelectCinema(app); err != nil {
				return err
			}
		}
		when, _ := cmd.Flags().GetString("datetime")
		datetime, err := time.ParseInLocation(showtimeLayout, when, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --datetime, want %q: %w", showtimeLayout, err)
		}
		showType, _ := cmd.Flags().GetString("type")

		showtime, err := app.Showtimes.Add(cinemaID, movieID, datetime, model.ShowType(showType))
		if err != nil {
			return err
		}
		fmt.Printf("scheduled showtime %s\n", showtime.ID)
		return nil
	},
}

var showtimeMoveCmd = &cobra.Command{
	Use:   "move <id>",
	Short: "Move a showtime to another cinema or slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		var update service.ShowtimeUpdate
		if when, _ := cmd.Flags().GetString("datetime"); when != "" {
			datetime, err := time.ParseInLocation(showtimeLayout, when, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --datetime, want %q: %w", showtimeLayout, err)
			}
			update.Datetime = &datetime
		}
		if cinemaID, _ := cmd.Flags().GetInt("cinema"); cinemaID > 0 {
			update.CinemaID = &cinemaID
		}
		if movieID, _ := cmd.Flags().GetInt("movie"); movieID > 0 {
			update.MovieID = &movieID
		}
		if showType, _ := cmd.Flags().GetString("type"); showType != "" {
			st := model.ShowType(showType)
			update.ShowType = &st
		}
		return app.Showtimes.Update(args[0], update)
	},
}

var showtimeRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a showtime with no bookings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		return app.Showtimes.Remove(args[0])
	},
}

func promptSelectMovie(app *service.App) (int, error) {
	idByTitle := make(map[string]int)
	for _, movie := range app.Movies.List() {
		idByTitle[movie.Title] = movie.ID
	}
	if len(idByTitle) == 0 {
		return 0, fmt.Errorf("no movies in the catalog")
	}

	selectMovie := promptui.Select{
		Label: "Select Movie",
		Items: maps.Keys(idByTitle),
		Size:  10,
	}
	_, title, err := selectMovie.Run()
	if err != nil {
		return 0, err
	}
	return idByTitle[title], nil
}

func promptSelectCinema(app *service.App) (int, error) {
	idByLabel := make(map[string]int)
	for _, cinema := range app.Cinemas.List() {
		idByLabel[fmt.Sprintf("%d • %s %s", cinema.ID, cinema.CineplexCode, cinema.Class)] = cinema.ID
	}
	if len(idByLabel) == 0 {
		return 0, fmt.Errorf("no cinemas configured")
	}

	selectCinema := promptui.Select{
		Label: "Select Cinema",
		Items: maps.Keys(idByLabel),
		Size:  10,
	}
	_, label, err := selectCinema.Run()
	if err != nil {
		return 0, err
	}
	return idByLabel[label], nil
}

func init() {
	showtimeListCmd.Flags().Int("movie", 0, "filter by movie id")
	showtimeListCmd.Flags().Int("cinema", 0, "filter by cinema id")
	showtimeAddCmd.Flags().Int("movie", 0, "movie id (prompted when omitted)")
	showtimeAddCmd.Flags().Int("cinema", 0, "cinema id (prompted when omitted)")
	showtimeAddCmd.Flags().String("datetime", "", "slot, e.g. \"2026-09-12 19:30\"")
	showtimeAddCmd.Flags().String("type", string(model.ShowDigital), "DIGITAL or 3D")
	showtimeMoveCmd.Flags().String("datetime", "", "new slot")
	showtimeMoveCmd.Flags().Int("cinema", 0, "new cinema id")
	showtimeMoveCmd.Flags().Int("movie", 0, "new movie id (only without bookings)")
	showtimeMoveCmd.Flags().String("type", "", "new show type (only without bookings)")
	showtimeCmd.AddCommand(showtimeListCmd, showtimeAddCmd, showtimeMoveCmd, showtimeRemoveCmd)
}
