package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"cineplex-booking-cli/model"
)

var movieCmd = &cobra.Command{
	Use:   "movie",
	Short: "Manage the movie catalog",
}

var movieListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every movie",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Title", "Blockbuster", "Status"})
		for _, movie := range app.Movies.List() {
			blockbuster := ""
			if movie.Blockbuster {
				blockbuster = "yes"
			}
			t.AppendRow(table.Row{movie.ID, movie.Title, blockbuster, movie.Status})
		}
		t.Render()
		return nil
	},
}

var movieAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a movie to the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		blockbuster, _ := cmd.Flags().GetBool("blockbuster")
		status, _ := cmd.Flags().GetString("status")

		movie, err := app.Movies.Add(args[0], blockbuster, model.ShowStatus(status))
		if err != nil {
			return err
		}
		fmt.Printf("added movie %d: %s\n", movie.ID, movie.Title)
		return nil
	},
}

var movieStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Move a movie through its release lifecycle",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return app.Movies.SetStatus(id, model.ShowStatus(args[1]))
	},
}

func init() {
	movieAddCmd.Flags().Bool("blockbuster", false, "flat surcharge applies to every ticket")
	movieAddCmd.Flags().String("status", string(model.StatusNowShowing), "COMING_SOON, PREVIEW, NOW_SHOWING or END_OF_SHOWING")
	movieCmd.AddCommand(movieListCmd, movieAddCmd, movieStatusCmd)
}
