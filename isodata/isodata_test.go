package isodata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerkit/money"
)

func TestBootstrap(t *testing.T) {
	cat := money.NewCatalog()
	n, err := Bootstrap(cat, nil)
	require.NoError(t, err)
	assert.Equal(t, cat.Len(), n)
	assert.Greater(t, n, 30)

	usd, err := cat.Resolve("USD")
	require.NoError(t, err)
	assert.Equal(t, 840, usd.NumericCode())
	assert.Equal(t, 2, usd.DecimalPlaces())

	byCountry, err := cat.ResolveCountry("US")
	require.NoError(t, err)
	assert.Same(t, usd, byCountry)

	xau, err := cat.Resolve("XAU")
	require.NoError(t, err)
	assert.True(t, xau.IsPseudo())
}

func TestLoad(t *testing.T) {
	t.Run("nil primary", func(t *testing.T) {
		_, err := Load(money.NewCatalog(), nil, nil, nil)
		assert.Error(t, err)
	})

	t.Run("malformed rows skipped", func(t *testing.T) {
		src := strings.NewReader(strings.Join([]string{
			"USD,840,2,US",
			"EUR,978,2",        // too few fields
			"GBP,eight,2,GB",   // bad numeric code
			"PLN,985,many,PL",  // bad decimal places
			"JPY,392,0,JP",
		}, "\n"))
		cat := money.NewCatalog()
		n, err := Load(cat, src, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, 2, cat.Len())
	})

	t.Run("colliding registration skipped", func(t *testing.T) {
		src := strings.NewReader(strings.Join([]string{
			"USD,840,2,US",
			"USN,840,2,", // numeric code taken
		}, "\n"))
		cat := money.NewCatalog()
		n, err := Load(cat, src, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("secondary overrides and extends", func(t *testing.T) {
		primary := strings.NewReader(strings.Join([]string{
			"USD,840,2,US",
			"EUR,978,2,DE FR",
		}, "\n"))
		secondary := strings.NewReader(strings.Join([]string{
			"EUR,978,2,DE FR IT", // override with more countries
			"GBP,826,2,GB",       // extension
		}, "\n"))
		cat := money.NewCatalog()
		n, err := Load(cat, primary, secondary, nil)
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		eur, err := cat.ResolveCountry("IT")
		require.NoError(t, err)
		assert.Equal(t, "EUR", eur.Code())

		_, err = cat.Resolve("GBP")
		assert.NoError(t, err)
	})
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	primaryPath := filepath.Join(dir, "currencies.csv")
	require.NoError(t, os.WriteFile(primaryPath, []byte("USD,840,2,US\n"), 0o644))

	t.Run("missing secondary tolerated", func(t *testing.T) {
		cat := money.NewCatalog()
		n, err := LoadFiles(cat, primaryPath, filepath.Join(dir, "nope.csv"), nil)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("empty secondary path tolerated", func(t *testing.T) {
		cat := money.NewCatalog()
		n, err := LoadFiles(cat, primaryPath, "", nil)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("missing primary is an error", func(t *testing.T) {
		cat := money.NewCatalog()
		_, err := LoadFiles(cat, filepath.Join(dir, "missing.csv"), "", nil)
		assert.Error(t, err)
	})

	t.Run("with secondary", func(t *testing.T) {
		secondaryPath := filepath.Join(dir, "extra.csv")
		require.NoError(t, os.WriteFile(secondaryPath, []byte("GBP,826,2,GB\n"), 0o644))
		cat := money.NewCatalog()
		n, err := LoadFiles(cat, primaryPath, secondaryPath, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}
