package currency

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		code   string
		want   string
	}{
		{name: "rupees", amount: "1500", code: "INR", want: "₹1,500.00"},
		{name: "dollars", amount: "42.50", code: "USD", want: "$42.50"},
		{name: "euro", amount: "9.99", code: "EUR", want: "€9.99"},
		{name: "negative", amount: "-200", code: "USD", want: "-$200.00"},
		{name: "yen has no fraction", amount: "1200", code: "JPY", want: "¥1,200"},
		{name: "unknown code falls back", amount: "12.3", code: "ZZZ", want: "12.30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(decimal.RequireFromString(tt.amount), tt.code)
			if got != tt.want {
				t.Errorf("Format(%s, %s) = %q, want %q", tt.amount, tt.code, got, tt.want)
			}
		})
	}
}

func TestFormatSigned(t *testing.T) {
	if got := FormatSigned(decimal.NewFromInt(10), "USD"); got != "+$10.00" {
		t.Errorf("positive = %q, want +$10.00", got)
	}
	if got := FormatSigned(decimal.NewFromInt(-10), "USD"); got != "-$10.00" {
		t.Errorf("negative = %q, want -$10.00", got)
	}
}
