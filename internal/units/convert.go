package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// System selects the target unit family for conversion.
type System string

const (
	Metric   System = "metric"
	Imperial System = "imperial"
)

// ParseSystem validates a target system string. Anything outside
// metric/imperial is a batch-level input error, not a per-line failure.
func ParseSystem(s string) (System, error) {
	switch System(strings.ToLower(strings.TrimSpace(s))) {
	case Metric:
		return Metric, nil
	case Imperial:
		return Imperial, nil
	}
	return "", fmt.Errorf("invalid target system %q: use %q or %q", s, Metric, Imperial)
}

// toBase maps each convertible unit to its base magnitude: milliliters
// for volume, grams for mass. Factors follow US customary definitions.
var toBase = map[Unit]float64{
	Teaspoon:   4.92892159375,
	Tablespoon: 14.78676478125,
	Cup:        236.5882365,
	FluidOunce: 29.5735295625,
	Milliliter: 1,
	Liter:      1000,
	Gram:       1,
	Kilogram:   1000,
	Ounce:      28.349523125,
	Pound:      453.59237,
}

// target describes the output unit for one system and dimension.
type target struct {
	label    string
	fromBase float64
}

var targets = map[System]map[Dimension]target{
	Metric: {
		DimVolume: {label: "ml", fromBase: 1},
		DimMass:   {label: "g", fromBase: 1},
	},
	Imperial: {
		DimVolume: {label: "cup", fromBase: 1 / 236.5882365},
		DimMass:   {label: "oz", fromBase: 1 / 28.349523125},
	},
}

// Convert renders a parsed quantity in the target system. It reports
// ok=false when the quantity is not convertible (count dimension,
// unrecognized unit); the caller then passes the original line through.
func Convert(q Quantity, sys System) (string, bool) {
	t, ok := targets[sys][DimensionOf(q.Unit)]
	if !ok {
		return "", false
	}
	base, ok := toBase[q.Unit]
	if !ok {
		return "", false
	}
	out := FormatMagnitude(q.Amount*base*t.fromBase) + " " + t.label
	if q.Description != "" {
		out += " " + q.Description
	}
	return out, true
}

// FormatMagnitude emits an integer string when the value is within 1e-6
// of its nearest integer, else rounds to two decimals and strips
// trailing zeros. Deterministic so converted lines round-trip exactly.
func FormatMagnitude(v float64) string {
	if r := math.Round(v); math.Abs(v-r) < 1e-6 {
		return strconv.FormatFloat(r, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// ConvertLine converts a single ingredient line, returning the original
// line verbatim whenever parsing or conversion declines it.
func ConvertLine(line string, sys System) string {
	q, ok := ParseLine(line)
	if !ok {
		return line
	}
	out, ok := Convert(q, sys)
	if !ok {
		return line
	}
	return out
}

// ConvertAll converts an ordered list of ingredient lines to the target
// system. The system is validated once up front; on a bad system the
// input is returned unchanged alongside the error. Each line is
// processed independently, so one line's failure never affects another,
// and output order matches input order 1:1.
func ConvertAll(lines []string, system string) ([]string, error) {
	sys, err := ParseSystem(system)
	if err != nil {
		out := make([]string, len(lines))
		copy(out, lines)
		return out, err
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, ConvertLine(line, sys))
	}
	return out, nil
}
