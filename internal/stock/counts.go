// Package stock holds the egg arithmetic the rest of the system trusts:
// pack-count normalization, branch stock aggregation and dispatch
// reconciliation. Everything here is pure; persistence and alert
// delivery live elsewhere.
package stock

import "strconv"

// Unit sizes for the pack denominations used across the business.
const (
	TrayOf30 = 30
	PackOf30 = 30
	PackOf10 = 10
	PackOf06 = 6
)

// ParseCount converts a user-entered quantity to an int. The entry
// forms submit blanks for untouched fields, so empty and non-numeric
// values count as zero rather than erroring. Negative values pass
// through unchanged.
func ParseCount(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// PackCounts is one record's quantities across all denominations.
type PackCounts struct {
	Tray30 int
	Pack30 int
	Pack10 int
	Pack06 int
	Loose  int
}

// Units normalizes the pack counts to a single egg count.
func (p PackCounts) Units() int {
	return p.Tray30*TrayOf30 + p.Pack30*PackOf30 + p.Pack10*PackOf10 + p.Pack06*PackOf06 + p.Loose
}

// ParsePackCounts builds PackCounts from form strings.
func ParsePackCounts(tray30, pack30, pack10, pack06, loose string) PackCounts {
	return PackCounts{
		Tray30: ParseCount(tray30),
		Pack30: ParseCount(pack30),
		Pack10: ParseCount(pack10),
		Pack06: ParseCount(pack06),
		Loose:  ParseCount(loose),
	}
}
