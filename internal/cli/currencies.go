package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var currenciesCmd = &cobra.Command{
	Use:   "currencies",
	Short: "List the currencies registered in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		for _, c := range cat.Currencies() {
			places := "-"
			if !c.IsPseudo() {
				places = fmt.Sprintf("%d", c.DecimalPlaces())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %3s  %s\n", c.Code(), c.Num(), places)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(currenciesCmd)
}
