package currency

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCentsToDecimal(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "0"},
		{1, "0.01"},
		{100, "1"},
		{5000, "50"},
		{123456, "1234.56"},
	}

	for _, tt := range tests {
		got := CentsToDecimal(tt.cents)
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("CentsToDecimal(%d) = %s, want %s", tt.cents, got, tt.want)
		}
	}
}

func TestDollarsToCents(t *testing.T) {
	tests := []struct {
		dollars float64
		want    int64
	}{
		{0, 0},
		{50, 5000},
		{12.34, 1234},
		{0.01, 1},
		// Exact half cents round half to even.
		{0.125, 12},
		{0.375, 38},
		{10.625, 1062},
	}

	for _, tt := range tests {
		if got := DollarsToCents(tt.dollars); got != tt.want {
			t.Errorf("DollarsToCents(%v) = %d, want %d", tt.dollars, got, tt.want)
		}
	}
}

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"50", "$50.00"},
		{"0.5", "$0.50"},
		{"1234.56", "$1234.56"},
	}

	for _, tt := range tests {
		if got := FormatUSD(decimal.RequireFromString(tt.amount)); got != tt.want {
			t.Errorf("FormatUSD(%s) = %s, want %s", tt.amount, got, tt.want)
		}
	}
}
