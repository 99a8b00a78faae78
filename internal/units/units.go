// Package units parses free-text ingredient lines and converts their
// quantities between the metric and imperial systems. All tables are
// package-level immutable data, so the package is safe for concurrent use.
package units

import "strings"

// Unit is the canonical identifier every accepted spelling or
// abbreviation of a unit maps to. Tokens that match no alias keep their
// lowercase spelling and are treated as unrecognized downstream.
type Unit string

const (
	Teaspoon   Unit = "teaspoon"
	Tablespoon Unit = "tablespoon"
	Cup        Unit = "cup"
	FluidOunce Unit = "fluidounce"
	Milliliter Unit = "milliliter"
	Liter      Unit = "liter"
	Gram       Unit = "gram"
	Kilogram   Unit = "kilogram"
	Ounce      Unit = "ounce"
	Pound      Unit = "pound"
	Count      Unit = "count"
)

// Dimension classifies a canonical unit for conversion purposes.
type Dimension int

const (
	DimCount Dimension = iota
	DimVolume
	DimMass
)

// aliases maps accepted spellings to canonical units. Every alias maps
// to exactly one unit.
var aliases = map[string]Unit{
	"tsp": Teaspoon, "teaspoon": Teaspoon, "teaspoons": Teaspoon,
	"tbs": Tablespoon, "tbsp": Tablespoon, "tbl": Tablespoon,
	"tablespoon": Tablespoon, "tablespoons": Tablespoon,
	"cup": Cup, "cups": Cup,
	"floz": FluidOunce, "fl-oz": FluidOunce,
	"ml": Milliliter, "milliliter": Milliliter, "milliliters": Milliliter,
	"millilitre": Milliliter, "millilitres": Milliliter, "cc": Milliliter,
	"l": Liter, "liter": Liter, "liters": Liter, "litre": Liter, "litres": Liter,
	"g": Gram, "gram": Gram, "grams": Gram, "gramme": Gram, "grammes": Gram,
	"kg": Kilogram, "kilogram": Kilogram, "kilograms": Kilogram,
	"oz": Ounce, "ounce": Ounce, "ounces": Ounce,
	"lb": Pound, "lbs": Pound, "pound": Pound, "pounds": Pound,
	"clove": Count, "cloves": Count, "slice": Count, "slices": Count,
	"pinch": Count, "pinches": Count, "piece": Count, "pieces": Count,
	"each": Count,
}

// dimensions maps every canonical unit to exactly one dimension class.
// Units absent from the map are dimensionless and never converted.
var dimensions = map[Unit]Dimension{
	Teaspoon:   DimVolume,
	Tablespoon: DimVolume,
	Cup:        DimVolume,
	FluidOunce: DimVolume,
	Milliliter: DimVolume,
	Liter:      DimVolume,
	Gram:       DimMass,
	Kilogram:   DimMass,
	Ounce:      DimMass,
	Pound:      DimMass,
	Count:      DimCount,
}

// Normalize maps a lowercase, punctuation-stripped unit token to its
// canonical unit. Unknown tokens pass through as their own lowercase
// form so the conversion stage can reject them.
func Normalize(token string) Unit {
	token = strings.ToLower(token)
	if u, ok := aliases[token]; ok {
		return u
	}
	return Unit(token)
}

// DimensionOf reports the dimension class of a unit. Unrecognized units
// classify as count and are passed through unchanged by conversion.
func DimensionOf(u Unit) Dimension {
	if d, ok := dimensions[u]; ok {
		return d
	}
	return DimCount
}
