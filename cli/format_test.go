package cli

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	t.Run("SymbolCurrency", func(t *testing.T) {
		assert.Equal(t, "$1,234.56", formatMoney(decimal.RequireFromString("1234.56"), "USD"))
		assert.Equal(t, "€0.99", formatMoney(decimal.RequireFromString("0.99"), "EUR"))
	})

	t.Run("SuffixCurrency", func(t *testing.T) {
		assert.Equal(t, "1,000.00 SEK", formatMoney(decimal.NewFromInt(1000), "SEK"))
	})

	t.Run("NoCurrency", func(t *testing.T) {
		assert.Equal(t, "42.00", formatMoney(decimal.NewFromInt(42), ""))
	})

	t.Run("Negative", func(t *testing.T) {
		assert.Equal(t, "$-1,234.56", formatMoney(decimal.RequireFromString("-1234.56"), "USD"))
	})

	t.Run("RoundsToCents", func(t *testing.T) {
		assert.Equal(t, "$0.10", formatMoney(decimal.RequireFromString("0.1"), "USD"))
	})
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.00", "0.00"},
		{"999.99", "999.99"},
		{"1000.00", "1,000.00"},
		{"123456.78", "123,456.78"},
		{"1234567.00", "1,234,567.00"},
		{"1000000", "1,000,000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, groupThousands(tt.in))
	}
}

func TestCheckFlag(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		var flag CheckFlag
		err := flag.UnmarshalText([]byte("1042=125.00"))
		assert.NoError(t, err)
		assert.Equal(t, "1042", flag.Number)
		assert.True(t, flag.Amount.Equal(decimal.RequireFromString("125.00")))
	})

	t.Run("TrimsWhitespace", func(t *testing.T) {
		var flag CheckFlag
		err := flag.UnmarshalText([]byte(" 1042 = 125.00 "))
		assert.NoError(t, err)
		assert.Equal(t, "1042", flag.Number)
	})

	t.Run("MissingSeparator", func(t *testing.T) {
		var flag CheckFlag
		err := flag.UnmarshalText([]byte("1042"))
		assert.Error(t, err)
	})

	t.Run("BadAmount", func(t *testing.T) {
		var flag CheckFlag
		err := flag.UnmarshalText([]byte("1042=abc"))
		assert.Error(t, err)
	})
}

func TestPayeeAmountFlag(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		var flag PayeeAmountFlag
		err := flag.UnmarshalText([]byte("Electric Co=120.50"))
		assert.NoError(t, err)
		assert.Equal(t, "Electric Co", flag.Payee)
		assert.True(t, flag.Amount.Equal(decimal.RequireFromString("120.50")))
	})

	t.Run("PayeeContainingDigits", func(t *testing.T) {
		var flag PayeeAmountFlag
		err := flag.UnmarshalText([]byte("7-Eleven=5.25"))
		assert.NoError(t, err)
		assert.Equal(t, "7-Eleven", flag.Payee)
	})

	t.Run("MissingSeparator", func(t *testing.T) {
		var flag PayeeAmountFlag
		err := flag.UnmarshalText([]byte("Electric Co"))
		assert.Error(t, err)
	})
}
