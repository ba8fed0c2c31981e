package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"cineplex-booking-cli/model"
)

var pricingCmd = &cobra.Command{
	Use:   "pricing",
	Short: "Inspect and edit the pricing scheme",
}

var pricingShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current pricing scheme",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		scheme := app.Settings.Scheme()

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Component", "Amount"})
		t.AppendRow(table.Row{"Base adult price", scheme.BaseAdultPrice.StringFixed(2)})
		t.AppendRow(table.Row{"Blockbuster surcharge", scheme.BlockbusterSurcharge.StringFixed(2)})
		for _, showType := range model.AllShowTypes() {
			if surcharge, ok := scheme.ShowTypeSurcharge[showType]; ok {
				t.AppendRow(table.Row{fmt.Sprintf("Show type %s", showType), surcharge.StringFixed(2)})
			}
		}
		for _, class := range model.AllClassTypes() {
			if surcharge, ok := scheme.CinemaClassSurcharge[class]; ok {
				t.AppendRow(table.Row{fmt.Sprintf("Cinema class %s", class), surcharge.StringFixed(2)})
			}
		}
		for _, tier := range model.AllTicketTypes() {
			if surcharge, ok := scheme.TicketTypeSurcharge[tier]; ok {
				t.AppendRow(table.Row{fmt.Sprintf("Ticket %s", tier), surcharge.StringFixed(2)})
			}
		}
		t.Render()

		if len(scheme.Holidays) > 0 {
			fmt.Println("Holidays:")
			for _, holiday := range scheme.Holidays {
				fmt.Printf("  %s\n", holiday)
			}
		}
		return nil
	},
}

var pricingSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change one component of the pricing scheme",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		scheme := app.Settings.Scheme()

		changed := false
		if raw, _ := cmd.Flags().GetString("base"); raw != "" {
			if scheme.BaseAdultPrice, err = decimal.NewFromString(raw); err != nil {
				return fmt.Errorf("invalid --base: %w", err)
			}
			changed = true
		}
		if raw, _ := cmd.Flags().GetString("blockbuster"); raw != "" {
			if scheme.BlockbusterSurcharge, err = decimal.NewFromString(raw); err != nil {
				return fmt.Errorf("invalid --blockbuster: %w", err)
			}
			changed = true
		}
		if raw, _ := cmd.Flags().GetString("ticket"); raw != "" {
			tier, amount, err := splitSurcharge(raw)
			if err != nil {
				return err
			}
			scheme.TicketTypeSurcharge[model.TicketType(tier)] = amount
			changed = true
		}
		if raw, _ := cmd.Flags().GetString("show-type"); raw != "" {
			showType, amount, err := splitSurcharge(raw)
			if err != nil {
				return err
			}
			scheme.ShowTypeSurcharge[model.ShowType(showType)] = amount
			changed = true
		}
		if raw, _ := cmd.Flags().GetString("class"); raw != "" {
			class, amount, err := splitSurcharge(raw)
			if err != nil {
				return err
			}
			scheme.CinemaClassSurcharge[model.ClassType(class)] = amount
			changed = true
		}

		if !changed {
			return fmt.Errorf("nothing to change, see --help")
		}
		return app.Settings.SetScheme(scheme)
	},
}

// splitSurcharge parses "KEY=AMOUNT" pairs like "PEAK=1.50".
func splitSurcharge(raw string) (string, decimal.Decimal, error) {
	for i := range raw {
		if raw[i] == '=' {
			amount, err := decimal.NewFromString(raw[i+1:])
			if err != nil {
				return "", decimal.Zero, fmt.Errorf("invalid amount in %q: %w", raw, err)
			}
			return raw[:i], amount, nil
		}
	}
	return "", decimal.Zero, fmt.Errorf("expected KEY=AMOUNT, got %q", raw)
}

var pricingHolidayCmd = &cobra.Command{
	Use:   "holiday <add|remove> <date>",
	Short: "Manage super-peak holiday dates (2006-01-02 layout)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		switch args[0] {
		case "add":
			return app.Settings.AddHoliday(args[1])
		case "remove":
			return app.Settings.RemoveHoliday(args[1])
		default:
			return fmt.Errorf("unknown action %q, want add or remove", args[0])
		}
	},
}

func init() {
	pricingSetCmd.Flags().String("base", "", "base adult price")
	pricingSetCmd.Flags().String("blockbuster", "", "blockbuster surcharge")
	pricingSetCmd.Flags().String("ticket", "", "ticket surcharge, e.g. PEAK=1.50 (negative values discount)")
	pricingSetCmd.Flags().String("show-type", "", "show type surcharge, e.g. 3D=3.00")
	pricingSetCmd.Flags().String("class", "", "cinema class surcharge, e.g. PREMIUM=4.00")
	pricingCmd.AddCommand(pricingShowCmd, pricingSetCmd, pricingHolidayCmd)
}
