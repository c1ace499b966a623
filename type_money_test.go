package expenselog

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"$0.01", "0.01"},
		{"$5", "5"},
		{"-$12.50", "-12.5"},
		{"$1,000", "1000"},
		{"-$1,234.56", "-1234.56"},
		{"$1,234,567.89", "1234567.89"},
	}
	for _, tc := range tests {
		got, err := ParseAmount(tc.in)
		if err != nil {
			t.Errorf("ParseAmount(%q) returned an unexpected error: %v", tc.in, err)
			continue
		}
		want := decimal.RequireFromString(tc.want)
		if !got.Decimal().Equal(want) {
			t.Errorf("ParseAmount(%q) = %s, want %s", tc.in, got.Decimal(), want)
		}
	}
}

func TestParseAmountRejectsMalformedInput(t *testing.T) {
	tests := []string{
		"",          // empty
		"12.00",     // missing currency marker
		"$",         // nothing after the marker
		"$abc",      // non numeric
		"$1.2.3",    // multiple decimal points
		"$-5",       // sign after the marker
		"x$5",       // garbage before the marker
		"--$5",      // doubled sign
		"$1 000.00", // wrong thousands separator
	}
	for _, in := range tests {
		if _, err := ParseAmount(in); err == nil {
			t.Errorf("ParseAmount(%q) succeeded, want error", in)
		}
	}
}

func TestParseAmountIsExact(t *testing.T) {
	// a value that is not representable in binary floating point
	got, err := ParseAmount("$0.10")
	if err != nil {
		t.Fatalf("ParseAmount returned an unexpected error: %v", err)
	}
	sum := M(decimal.Zero)
	for range 3 {
		sum = sum.Add(got)
	}
	if want := decimal.RequireFromString("0.3"); !sum.Decimal().Equal(want) {
		t.Errorf("3 x $0.10 = %s, want %s", sum.Decimal(), want)
	}
}

func TestMoneyString(t *testing.T) {
	m, err := ParseAmount("-$1,234.56")
	if err != nil {
		t.Fatalf("ParseAmount returned an unexpected error: %v", err)
	}
	if got, want := m.String(), "-$1,234.56"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMoneyMarshalJSONIsANumber(t *testing.T) {
	m, err := ParseAmount("-$12.50")
	if err != nil {
		t.Fatalf("ParseAmount returned an unexpected error: %v", err)
	}
	b, err := m.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON returned an unexpected error: %v", err)
	}
	if got, want := string(b), "-12.5"; got != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
}
