package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerkit/money"
)

var (
	invertRate   string
	combineRate  string
	combineOther string
)

var invertCmd = &cobra.Command{
	Use:   "invert",
	Short: "Invert an exchange rate",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		rate, err := money.ParseExchRate(cat, invertRate)
		if err != nil {
			return err
		}
		conv, err := newConverter(rate)
		if err != nil {
			return err
		}
		inv, err := conv.Invert()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), inv)
		return nil
	},
}

var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Combine two exchange rates through their shared currency",
	Long: `Combine derives the rate between the two currencies that the given rates do
not share. For example, combining "USD/PLN 3.50" with "EUR/PLN 4.00" yields
"USD/EUR 0.875".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		rate, err := money.ParseExchRate(cat, combineRate)
		if err != nil {
			return err
		}
		other, err := money.ParseExchRate(cat, combineOther)
		if err != nil {
			return err
		}
		conv, err := newConverter(rate)
		if err != nil {
			return err
		}
		res, err := conv.Combine(other)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), res)
		return nil
	},
}

func init() {
	invertCmd.Flags().StringVar(&invertRate, "rate", "", "exchange rate, e.g. \"USD/PLN 3.50\"")
	_ = invertCmd.MarkFlagRequired("rate")

	combineCmd.Flags().StringVar(&combineRate, "rate", "", "held exchange rate")
	combineCmd.Flags().StringVar(&combineOther, "with", "", "exchange rate to combine with")
	_ = combineCmd.MarkFlagRequired("rate")
	_ = combineCmd.MarkFlagRequired("with")

	rootCmd.AddCommand(invertCmd)
	rootCmd.AddCommand(combineCmd)
}
