// Package cmd wires the staff and customer commands. The root command with no
// arguments opens the interactive booking TUI; subcommands cover scripted use
// and staff administration.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cineplex-booking-cli/config"
	"cineplex-booking-cli/service"
	"cineplex-booking-cli/store"
	"cineplex-booking-cli/tui"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Cineplex CLI",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Cineplex CLI v0.1 -- HEAD")
	},
}

var rootCmd = &cobra.Command{
	Use:   "cineplex",
	Short: "Cineplex booking CLI",
	Long:  `Browse movies, pick seats and book tickets from the terminal; staff manage cinemas, showtimes and pricing with the subcommands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		_, err = tea.NewProgram(tui.New(app), tea.WithAltScreen()).Run()
		return err
	},
}

// newApp loads config, opens the store and hydrates the service registries.
func newApp() (*service.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	return service.NewApp(store.New(cfg.DataDir), cfg, log)
}

// newLogger writes structured logs to a file so they never bleed into the
// terminal UI.
func newLogger(cfg config.Config) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{cfg.LogFile}
	zcfg.ErrorOutputPaths = []string{cfg.LogFile}
	return zcfg.Build()
}

func Execute() {
	rootCmd.AddCommand(movieCmd, cinemaCmd, showtimeCmd, pricingCmd, bookCmd, bookingsCmd, cancelCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
