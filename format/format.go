// Package format renders emission figures for people.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Number rounds v to places decimals and groups thousands, e.g. 19260 -> "19,260".
func Number(v float64, places int32) string {
	fixed := decimal.NewFromFloat(v).StringFixed(places)

	intPart, frac, hasFrac := strings.Cut(fixed, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil || intPart == "-0" {
		return fixed
	}

	grouped := printer.Sprintf("%d", n)
	if hasFrac {
		return grouped + "." + frac
	}
	return grouped
}

// Units formats an emission value the way the results page shows it.
func Units(v float64) string {
	return Number(v, 0) + " units"
}

// SignedPercent formats a delta such as "+12.5%" or "-19.8%".
func SignedPercent(v float64) string {
	r := decimal.NewFromFloat(v).Round(1).InexactFloat64()
	return fmt.Sprintf("%+.1f%%", r)
}

// Ratio returns v as a percentage of max, capped to [0, 100].
func Ratio(v, max float64) float64 {
	if max <= 0 || v <= 0 {
		return 0
	}
	if v >= max {
		return 100
	}
	return decimal.NewFromFloat(v / max * 100).Round(1).InexactFloat64()
}
