package money_test

import (
	"bytes"
	"fmt"

	"github.com/govalues/decimal"

	"github.com/ledgerkit/money"
)

// In this example, a small private catalog is populated at startup and used
// to parse an invoice total and split it into three equal payments, with the
// remainder going to the first payment.
func Example_invoiceSplit() {
	cat := money.NewCatalog()
	cat.MustRegister("USD", 840, 2, "US")

	total := money.MustParseAmount(cat, "USD", "100.00")

	part, err := total.QuoRound(decimal.MustParse("3"), money.RoundDown)
	if err != nil {
		panic(err)
	}
	twice, err := part.Mul(decimal.MustParse("2"))
	if err != nil {
		panic(err)
	}
	first, err := total.Sub(twice)
	if err != nil {
		panic(err)
	}

	fmt.Println(first, part, part)
	// Output: USD 33.34 USD 33.33 USD 33.33
}

// In this example, an amount is converted in both directions with a single
// held rate, then a cross rate is derived from two rates quoted against the
// same counter currency.
func Example_currencyConversion() {
	cat := money.NewCatalog()
	cat.MustRegister("USD", 840, 2, "US")
	cat.MustRegister("EUR", 978, 2, "DE")
	cat.MustRegister("PLN", 985, 2, "PL")

	conv, err := money.NewConverter(money.MustParseExchRate(cat, "USD/PLN 3.50"), 4, money.RoundHalfEven)
	if err != nil {
		panic(err)
	}

	pln, err := conv.Exchange(money.MustParseAmount(cat, "USD", "100.00"))
	if err != nil {
		panic(err)
	}
	usd, err := conv.Exchange(money.MustParseAmount(cat, "PLN", "100.00"))
	if err != nil {
		panic(err)
	}
	cross, err := conv.Combine(money.MustParseExchRate(cat, "EUR/PLN 4.00"))
	if err != nil {
		panic(err)
	}

	fmt.Println(pln)
	fmt.Println(usd)
	fmt.Println(cross)
	// Output:
	// PLN 350.00
	// USD 28.57
	// USD/EUR 0.875
}

func ExampleCatalog_Register() {
	cat := money.NewCatalog()
	usd, err := cat.Register("USD", 840, 2, "US")
	if err != nil {
		panic(err)
	}
	fmt.Println(usd.Code(), usd.Num(), usd.DecimalPlaces())
	// Output: USD 840 2
}

func ExampleAmount_Add() {
	cat := money.NewCatalog()
	cat.MustRegister("USD", 840, 2)
	a := money.MustParseAmount(cat, "USD", "5.67")
	b := money.MustParseAmount(cat, "USD", "23")
	c, err := a.Add(b)
	if err != nil {
		panic(err)
	}
	fmt.Println(c)
	// Output: USD 28.67
}

func ExampleConverter_Invert() {
	cat := money.NewCatalog()
	cat.MustRegister("USD", 840, 2)
	cat.MustRegister("PLN", 985, 2)
	conv, err := money.NewConverter(money.MustParseExchRate(cat, "USD/PLN 3.50"), 4, money.RoundHalfEven)
	if err != nil {
		panic(err)
	}
	inv, err := conv.Invert()
	if err != nil {
		panic(err)
	}
	fmt.Println(inv)
	// Output: PLN/USD 0.2857
}

func ExampleEncoder_EncodeAmount() {
	cat := money.NewCatalog()
	cat.MustRegister("USD", 840, 2)
	a := money.MustParseAmount(cat, "USD", "12.34")

	var buf bytes.Buffer
	if err := money.NewEncoder(&buf).EncodeAmount(a); err != nil {
		panic(err)
	}
	b, err := money.NewDecoder(&buf, cat).DecodeAmount()
	if err != nil {
		panic(err)
	}
	fmt.Println(b)
	// Output: USD 12.34
}
