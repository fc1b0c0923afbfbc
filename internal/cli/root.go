// Package cli implements the moneyctl command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ledgerkit/money"
	"github.com/ledgerkit/money/isodata"
)

var (
	// Global flags
	configFile string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "moneyctl",
	Short: "moneyctl - currency catalog and exchange-rate calculator",
	Long: `moneyctl loads a currency catalog from ISO 4217 data and performs exact
monetary calculations on it: listing currencies, converting amounts with an
exchange rate, and deriving rates by inversion or combination through a
shared currency.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().String("data", "", "primary currency CSV path (empty uses built-in ISO 4217 data)")
	rootCmd.PersistentFlags().String("extra", "", "optional secondary currency CSV overriding the primary")
	rootCmd.PersistentFlags().Int("scale", 4, "scale for derived exchange rates")
	rootCmd.PersistentFlags().String("rounding", "half-even", "rounding mode: half-even, half-up, down, up, ceil, floor")

	for _, name := range []string{"data", "extra", "scale", "rounding"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

// initConfig reads in the config file and MONEYCTL_* environment variables.
func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("moneyctl")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix("moneyctl")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger returns the process logger. Warnings about skipped currency
// records are only interesting with --verbose.
func newLogger() *slog.Logger {
	level := slog.LevelError
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadCatalog builds the currency catalog from the configured sources.
func loadCatalog() (*money.Catalog, error) {
	cat := money.NewCatalog()
	logger := newLogger()
	if path := viper.GetString("data"); path != "" {
		if _, err := isodata.LoadFiles(cat, path, viper.GetString("extra"), logger); err != nil {
			return nil, err
		}
		return cat, nil
	}
	if _, err := isodata.Bootstrap(cat, logger); err != nil {
		return nil, err
	}
	return cat, nil
}

// newConverter wraps the rate in a converter using the configured scale and
// rounding mode.
func newConverter(rate money.ExchangeRate) (*money.Converter, error) {
	rounding, err := money.ParseRounding(viper.GetString("rounding"))
	if err != nil {
		return nil, err
	}
	return money.NewConverter(rate, viper.GetInt("scale"), rounding)
}

// parseAmountArg parses a positional amount argument like "USD 100.00".
func parseAmountArg(cat *money.Catalog, arg string) (money.Amount, error) {
	curr, value, ok := strings.Cut(arg, " ")
	if !ok {
		return money.Amount{}, fmt.Errorf("amount %q must have the form \"USD 100.00\"", arg)
	}
	return money.ParseAmount(cat, curr, value)
}
