package money

// testCatalog returns a catalog with a private currency set used across the
// tests in this package.
func testCatalog() *Catalog {
	cat := NewCatalog()
	cat.MustRegister("USD", 840, 2, "US")
	cat.MustRegister("EUR", 978, 2, "DE", "FR")
	cat.MustRegister("PLN", 985, 2, "PL")
	cat.MustRegister("JPY", 392, 0, "JP")
	cat.MustRegister("OMR", 512, 3, "OM")
	cat.MustRegister("XAU", 959, -1)
	return cat
}
