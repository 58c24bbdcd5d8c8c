// Package sales holds pure helpers for the order flow: purchase code
// formatting and day-bounded date ranges.
package sales

import (
	"fmt"
	"strconv"
	"strings"
)

// PurchaseCodePrefix is the human-readable order code prefix.
const PurchaseCodePrefix = "PO"

// FormatPurchaseCode renders a sequence number as PO-nnnnn. Numbers beyond
// five digits keep all their digits rather than wrapping.
func FormatPurchaseCode(n int) string {
	return fmt.Sprintf("%s-%05d", PurchaseCodePrefix, n)
}

// ParsePurchaseCode extracts the sequence number from a PO-nnnnn code.
// Returns 0 for anything that does not look like a purchase code, which makes
// the next generated code PO-00001.
func ParsePurchaseCode(code string) int {
	parts := strings.SplitN(code, "-", 2)
	if len(parts) != 2 || parts[0] != PurchaseCodePrefix {
		return 0
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// NextPurchaseCode returns the code following the given one.
func NextPurchaseCode(last string) string {
	return FormatPurchaseCode(ParsePurchaseCode(last) + 1)
}
