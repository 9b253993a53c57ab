package stats

import (
	"math"
	"strconv"
	"strings"

	"agent-dashboard/model"
)

// Field aliases seen across backend versions for booking money totals.
var (
	totalsParents = []string{"costing", "pricing"}
	saleAliases   = []string{"sellTotal", "saleTotal", "sellingPrice"}
	costAliases   = []string{"costTotal", "netCost", "cost"}
	flatAliases   = []string{"totalAmount", "amount"}
)

// Profit computes a signed monetary figure for a booking using a strict
// fallback chain; the first applicable tier wins:
//
//  1. an explicit profit field inside the costing/pricing totals object
//  2. sale total minus cost total, when either is present and non-zero
//  3. a flat numeric revenue total (totalAmount/amount)
//  4. the same flat fields given as numeric strings
//  5. zero
//
// The lower tiers report gross revenue, not profit. That conflation is
// deliberate: when cost data is missing the figure degrades from true profit
// to revenue rather than disappearing, and callers knowingly accept it.
func Profit(r model.Record) float64 {
	for _, parent := range totalsParents {
		totals, ok := totalsOf(r, parent)
		if !ok {
			continue
		}
		if p, ok := toNumber(totals["profit"]); ok {
			return finiteOrZero(p)
		}
	}

	for _, parent := range totalsParents {
		totals, ok := totalsOf(r, parent)
		if !ok {
			continue
		}
		sale, _ := firstNumber(totals, saleAliases)
		cost, _ := firstNumber(totals, costAliases)
		if sale != 0 || cost != 0 {
			return finiteOrZero(sale - cost)
		}
	}

	for _, key := range flatAliases {
		if n, ok := toNumber(r[key]); ok {
			return finiteOrZero(n)
		}
	}

	for _, key := range flatAliases {
		if s, ok := r[key].(string); ok {
			if n, ok := parseMoney(s); ok {
				return finiteOrZero(n)
			}
		}
	}

	return 0
}

func totalsOf(r model.Record, parent string) (map[string]any, bool) {
	p, ok := asMap(r[parent])
	if !ok {
		return nil, false
	}
	return asMap(p["totals"])
}

func firstNumber(m map[string]any, keys []string) (float64, bool) {
	for _, key := range keys {
		if n, ok := toNumber(m[key]); ok {
			return n, true
		}
	}
	return 0, false
}

// toNumber coerces the numeric types produced by JSON and BSON decoding.
// Strings are not numbers here; they belong to a lower fallback tier.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// parseMoney extracts a number from a monetary string such as "$1,250.00".
// Currency symbols and thousands separators are stripped; sign and decimal
// point survive.
func parseMoney(s string) (float64, bool) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '+' || r == '-' || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func finiteOrZero(n float64) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}
