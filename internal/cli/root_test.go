package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerkit/money"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	out, err := execute(t, "convert", "--rate", "USD/PLN 3.50", "USD 100.00")
	require.NoError(t, err)
	assert.Equal(t, "PLN 350.00\n", out)
}

func TestInvertCommand(t *testing.T) {
	out, err := execute(t, "invert", "--rate", "USD/PLN 3.50")
	require.NoError(t, err)
	assert.Equal(t, "PLN/USD 0.2857\n", out)
}

func TestCombineCommand(t *testing.T) {
	out, err := execute(t, "combine", "--rate", "USD/PLN 3.50", "--with", "EUR/PLN 4.00")
	require.NoError(t, err)
	assert.Equal(t, "USD/EUR 0.875\n", out)
}

func TestCurrenciesCommand(t *testing.T) {
	out, err := execute(t, "currencies")
	require.NoError(t, err)
	assert.Contains(t, out, "USD  840  2")
	assert.Contains(t, out, "JPY  392  0")
}

func TestConvertCommand_UnknownCurrency(t *testing.T) {
	_, err := execute(t, "convert", "--rate", "USD/PLN 3.50", "ZZZ 100.00")
	assert.Error(t, err)
}

func TestParseAmountArg(t *testing.T) {
	cat := money.NewCatalog()
	cat.MustRegister("USD", 840, 2)

	a, err := parseAmountArg(cat, "USD 100.00")
	require.NoError(t, err)
	assert.Equal(t, "USD 100.00", a.String())

	_, err = parseAmountArg(cat, "USD100.00")
	assert.Error(t, err)
}
