package cli

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// formatMoney renders an amount for display: "$1,234.56" for symbol
// currencies, "1,234.56 SEK" otherwise.
func formatMoney(amount decimal.Decimal, currency string) string {
	fixed := amount.Abs().StringFixed(2)
	grouped := groupThousands(fixed)
	if amount.Sign() < 0 {
		grouped = "-" + grouped
	}

	if symbol, ok := currencySymbols[currency]; ok {
		return symbol + grouped
	}
	if currency == "" {
		return grouped
	}
	return grouped + " " + currency
}

// groupThousands inserts comma separators into the integer part of a
// fixed-point number string.
func groupThousands(fixed string) string {
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	n := len(intPart)
	if n <= 3 {
		if fracPart == "" {
			return intPart
		}
		return intPart + "." + fracPart
	}

	var b strings.Builder
	first := n % 3
	if first > 0 {
		b.WriteString(intPart[:first])
	}
	for i := first; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	if fracPart != "" {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}

// CheckFlag parses a repeatable "number=amount" flag into a deposited check
// line, e.g. --check 1042=125.00.
type CheckFlag struct {
	Number string
	Amount decimal.Decimal
}

// UnmarshalText implements encoding.TextUnmarshaler for kong.
func (c *CheckFlag) UnmarshalText(text []byte) error {
	number, amount, ok := strings.Cut(string(text), "=")
	if !ok {
		return fmt.Errorf("expected NUMBER=AMOUNT, got %q", text)
	}

	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return fmt.Errorf("invalid check amount %q: %w", amount, err)
	}

	c.Number = strings.TrimSpace(number)
	c.Amount = d
	return nil
}

// PayeeAmountFlag parses a repeatable "payee=amount" flag into one group
// check line, e.g. --payment "Electric Co=120.00".
type PayeeAmountFlag struct {
	Payee  string
	Amount decimal.Decimal
}

// UnmarshalText implements encoding.TextUnmarshaler for kong.
func (p *PayeeAmountFlag) UnmarshalText(text []byte) error {
	payee, amount, ok := strings.Cut(string(text), "=")
	if !ok {
		return fmt.Errorf("expected PAYEE=AMOUNT, got %q", text)
	}

	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	p.Payee = strings.TrimSpace(payee)
	p.Amount = d
	return nil
}
