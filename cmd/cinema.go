package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"cineplex-booking-cli/model"
)

var cinemaCmd = &cobra.Command{
	Use:   "cinema",
	Short: "Manage cinemas",
}

var cinemaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every cinema",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Cineplex", "Class", "Showtimes"})
		for _, cinema := range app.Cinemas.List() {
			t.AppendRow(table.Row{cinema.ID, cinema.CineplexCode, cinema.Class, len(app.Showtimes.ByCinema(cinema.ID))})
		}
		t.Render()
		return nil
	},
}

var cinemaAddCmd = &cobra.Command{
	Use:   "add <cineplex-code>",
	Short: "Add a batch of cinemas under one cineplex code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		classNames, _ := cmd.Flags().GetStringSlice("class")
		classes := make([]model.ClassType, 0, len(classNames))
		for _, name := range classNames {
			classes = append(classes, model.ClassType(name))
		}

		created, err := app.Cinemas.AddBatch(args[0], classes...)
		if err != nil {
			return err
		}
		for _, cinema := range created {
			fmt.Printf("added cinema %d (%s, %s)\n", cinema.ID, cinema.CineplexCode, cinema.Class)
		}
		return nil
	},
}

var cinemaRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a cinema and its showtimes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return app.Cinemas.Remove(id)
	},
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func init() {
	cinemaAddCmd.Flags().StringSlice("class", []string{string(model.ClassNormal)}, "one cinema per class: NORMAL or PREMIUM")
	cinemaCmd.AddCommand(cinemaListCmd, cinemaAddCmd, cinemaRemoveCmd)
}
