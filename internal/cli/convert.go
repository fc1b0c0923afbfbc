package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerkit/money"
)

var convertRate string

var convertCmd = &cobra.Command{
	Use:   "convert \"USD 100.00\"",
	Short: "Convert an amount with an exchange rate",
	Long: `Convert an amount to the other side of the given exchange rate. The amount
may be denominated in either the base or the counter currency; the result is
rounded to the scale of the target currency with the configured rounding
mode.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		rate, err := money.ParseExchRate(cat, convertRate)
		if err != nil {
			return err
		}
		amount, err := parseAmountArg(cat, args[0])
		if err != nil {
			return err
		}
		conv, err := newConverter(rate)
		if err != nil {
			return err
		}
		res, err := conv.Exchange(amount)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), res)
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertRate, "rate", "", "exchange rate, e.g. \"USD/PLN 3.50\"")
	_ = convertCmd.MarkFlagRequired("rate")
	rootCmd.AddCommand(convertCmd)
}
