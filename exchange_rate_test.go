package money

import (
	"errors"
	"testing"

	"github.com/govalues/decimal"
)

func TestNewExchRate(t *testing.T) {
	cat := testCatalog()
	usd := cat.MustResolve("USD")
	eur := cat.MustResolve("EUR")

	t.Run("valid", func(t *testing.T) {
		r, err := NewExchRate(usd, eur, decimal.MustParse("0.9"))
		if err != nil {
			t.Fatalf("NewExchRate(USD, EUR, 0.9) failed: %v", err)
		}
		if r.Base() != usd || r.Counter() != eur {
			t.Errorf("NewExchRate(USD, EUR, 0.9) = %v/%v, want USD/EUR", r.Base(), r.Counter())
		}
		if r.IsIdentity() {
			t.Errorf("%v.IsIdentity() = true, want false", r)
		}
	})

	t.Run("identity", func(t *testing.T) {
		r, err := NewExchRate(usd, usd, decimal.MustNew(1, 0))
		if err != nil {
			t.Fatalf("NewExchRate(USD, USD, 1) failed: %v", err)
		}
		if !r.IsIdentity() {
			t.Errorf("%v.IsIdentity() = false, want true", r)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		tests := []struct {
			base, counter *Currency
			rate          string
			want          error
		}{
			{nil, eur, "1", ErrInvalidCurrency},
			{usd, nil, "1", ErrInvalidCurrency},
			{usd, eur, "0", ErrInvalidRate},
			{usd, eur, "-1", ErrInvalidRate},
			{usd, usd, "2", ErrInvalidRate}, // identity pair must carry rate 1
		}
		for _, tt := range tests {
			_, err := NewExchRate(tt.base, tt.counter, decimal.MustParse(tt.rate))
			if !errors.Is(err, tt.want) {
				t.Errorf("NewExchRate(%v, %v, %v) = %v, want %v", tt.base, tt.counter, tt.rate, err, tt.want)
			}
		}
	})
}

func TestParseExchRate(t *testing.T) {
	cat := testCatalog()

	t.Run("round-trip", func(t *testing.T) {
		tests := []string{
			"USD/PLN 3.50",
			"EUR/PLN 4.00",
			"USD/EUR 0.875",
			"EUR/JPY 160.1234",
			"USD/USD 1",
		}
		for _, s := range tests {
			r, err := ParseExchRate(cat, s)
			if err != nil {
				t.Errorf("ParseExchRate(%q) failed: %v", s, err)
				continue
			}
			if got := r.String(); got != s {
				t.Errorf("ParseExchRate(%q).String() = %q, want %q", s, got, s)
			}
		}
	})

	t.Run("invalid", func(t *testing.T) {
		tests := []struct {
			s    string
			want error
		}{
			{"USDPLN 3.50", ErrInvalidRate},
			{"USD/PLN", ErrInvalidRate},
			{"USD/ZZZ 3.50", ErrUnknownCurrency},
			{"ZZZ/PLN 3.50", ErrUnknownCurrency},
			{"USD/PLN -3.50", ErrInvalidRate},
			{"USD/PLN 0", ErrInvalidRate},
			{"USD/USD 2", ErrInvalidRate},
		}
		for _, tt := range tests {
			_, err := ParseExchRate(cat, tt.s)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseExchRate(%q) = %v, want %v", tt.s, err, tt.want)
			}
		}
	})

	t.Run("malformed decimal", func(t *testing.T) {
		if _, err := ParseExchRate(cat, "USD/PLN x"); err == nil {
			t.Errorf("ParseExchRate(\"USD/PLN x\") did not fail")
		}
	})
}

func TestExchangeRate_Conv(t *testing.T) {
	cat := testCatalog()
	rate := MustParseExchRate(cat, "USD/PLN 3.50")

	t.Run("unrounded", func(t *testing.T) {
		tests := []struct {
			amount, want string
		}{
			{"100.00", "PLN 350.0000"},
			{"1.01", "PLN 3.5350"},
			{"0.00", "PLN 0.0000"},
			{"-2.00", "PLN -7.0000"},
		}
		for _, tt := range tests {
			a := MustParseAmount(cat, "USD", tt.amount)
			if !rate.CanConv(a) {
				t.Errorf("%v.CanConv(%v) = false, want true", rate, a)
				continue
			}
			got, err := rate.Conv(a)
			if err != nil {
				t.Errorf("%v.Conv(%v) failed: %v", rate, a, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%v.Conv(%v) = %v, want %v", rate, a, got, tt.want)
			}
		}
	})

	t.Run("not exchangeable", func(t *testing.T) {
		for _, curr := range []string{"PLN", "EUR"} {
			a := MustParseAmount(cat, curr, "100.00")
			if rate.CanConv(a) {
				t.Errorf("%v.CanConv(%v) = true, want false", rate, a)
			}
			if _, err := rate.Conv(a); !errors.Is(err, ErrNotExchangeable) {
				t.Errorf("%v.Conv(%v) did not fail with ErrNotExchangeable, got %v", rate, a, err)
			}
		}
	})
}

func TestExchangeRate_Involves(t *testing.T) {
	cat := testCatalog()
	rate := MustParseExchRate(cat, "USD/PLN 3.50")

	if !rate.Involves(cat.MustResolve("USD")) || !rate.Involves(cat.MustResolve("PLN")) {
		t.Errorf("%v does not involve its own currencies", rate)
	}
	if rate.Involves(cat.MustResolve("EUR")) {
		t.Errorf("%v.Involves(EUR) = true, want false", rate)
	}
	if rate.Involves(nil) {
		t.Errorf("%v.Involves(nil) = true, want false", rate)
	}
}

func TestExchangeRate_SameCurr(t *testing.T) {
	cat := testCatalog()
	a := MustParseExchRate(cat, "USD/PLN 3.50")
	b := MustParseExchRate(cat, "USD/PLN 3.60")
	c := MustParseExchRate(cat, "PLN/USD 0.29")

	if !a.SameCurr(b) {
		t.Errorf("%v.SameCurr(%v) = false, want true", a, b)
	}
	if a.SameCurr(c) {
		t.Errorf("%v.SameCurr(%v) = true, want false", a, c)
	}
}

func TestExchangeRate_MarshalText(t *testing.T) {
	cat := testCatalog()
	r := MustParseExchRate(cat, "USD/PLN 3.50")
	got, err := r.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() failed: %v", err)
	}
	if string(got) != "USD/PLN 3.50" {
		t.Errorf("MarshalText() = %q, want %q", got, "USD/PLN 3.50")
	}
}
