package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrVendorCodeUnparseable is returned when the tail of the persisted vendor
// list holds a non-numeric code and no successor can be derived.
var ErrVendorCodeUnparseable = errors.New("vendor code is not numeric")

// Buyer and vendor codes are allocated with deliberately different rules.
// Buyers take the maximum numeric prefix across the whole list; vendors
// increment the last element regardless of whether it is the maximum. The
// asymmetry is long-standing observed behavior and is kept as-is pending
// product clarification.

const firstCodeNumber = 101

// NextBuyerCode computes the next buyer code, format "{n}A". An empty list
// seeds at "101A". Entries whose code does not parse count as 100, so the
// result is always strictly greater than every parseable code in the list.
func NextBuyerCode(existing []BuyerRecord) string {
	if len(existing) == 0 {
		return fmt.Sprintf("%dA", firstCodeNumber)
	}
	max := 0
	for _, rec := range existing {
		n, err := strconv.Atoi(strings.TrimSuffix(rec.Code, "A"))
		if err != nil {
			n = firstCodeNumber - 1
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%dA", max+1)
}

// FallbackBuyerCode derives a buyer code from the last three digits of the
// current timestamp. Used when the persisted buyer list cannot be decoded at
// all, so that code generation never fails outright. The uniqueness guarantee
// is deliberately weak and documented as such.
func FallbackBuyerCode(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	return ms[len(ms)-3:] + "A"
}

// NextVendorCode computes the next vendor code, a bare integer string. An
// empty list seeds at "101". Otherwise the code of the last element (list
// order, not numeric maximum) is parsed and incremented. An unparseable
// tail is a data corruption condition and is reported as an error rather
// than propagated as a garbage code.
func NextVendorCode(existing []VendorRecord) (string, error) {
	if len(existing) == 0 {
		return strconv.Itoa(firstCodeNumber), nil
	}
	last := existing[len(existing)-1]
	n, err := strconv.Atoi(last.Code)
	if err != nil {
		return "", fmt.Errorf("last vendor code %q: %w", last.Code, ErrVendorCodeUnparseable)
	}
	return strconv.Itoa(n + 1), nil
}
