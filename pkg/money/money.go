// Package money implements fixed-point financial arithmetic. All amounts are
// integer micro-dollars (10,000 per dollar) and all rates integer basis
// points (1 bp = 0.01%); floating point never touches a stored amount.
package money

import "fmt"

const (
	// MicrosPerDollar is the money scale: 10,000 micro-units per dollar.
	MicrosPerDollar = 10_000
	// BpsPerUnit converts basis points to a plain ratio: 550 bps = 0.0550.
	BpsPerUnit = 10_000
	// MonthsPerYear for annual-to-monthly conversions.
	MonthsPerYear = 12
)

// CeilDiv returns ceil(a/b) for positive b, staying in integer arithmetic.
func CeilDiv(a, b int64) int64 {
	if a >= 0 {
		return (a + b - 1) / b
	}
	return a / b
}

// FormatDollars renders micros as a dollar string with two decimals and
// thousands separators, e.g. 12345678900 -> "$1,234,567.89".
func FormatDollars(micros int64) string {
	neg := micros < 0
	if neg {
		micros = -micros
	}
	dollars := micros / MicrosPerDollar
	cents := (micros % MicrosPerDollar) / (MicrosPerDollar / 100)
	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(dollars), cents)
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
