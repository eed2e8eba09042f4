package unitconverter

import (
	"fmt"
	"sort"
	"strings"
)

type Category int

const (
	Length Category = iota
	Weight
	Temperature
)

func (c Category) String() string {
	switch c {
	case Length:
		return "length"
	case Weight:
		return "weight"
	case Temperature:
		return "temperature"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// UnitTable maps a unit symbol to its factor: 1 unit = factor canonical units.
type UnitTable map[string]float64

const (
	UnitMeter      = "m"
	UnitKilogram   = "kg"
	UnitCelsius    = "C"
	UnitFahrenheit = "F"
	UnitKelvin     = "K"
)

// LengthUnits are relative to meters.
var LengthUnits = UnitTable{
	UnitMeter: 1.0,
	"km":      1000.0,
	"cm":      0.01,
	"mm":      0.001,
	"mi":      1609.344,
	"yd":      0.9144,
	"ft":      0.3048,
	"in":      0.0254,
}

// WeightUnits are relative to kilograms.
var WeightUnits = UnitTable{
	UnitKilogram: 1.0,
	"g":          0.001,
	"mg":         0.000001,
	"lb":         0.45359237,
	"oz":         0.028349523125,
	"ton":        1000.0,
}

// TemperatureUnits is the fixed set of temperature symbols, uppercase.
var TemperatureUnits = []string{UnitCelsius, UnitFahrenheit, UnitKelvin}

func init() {
	if err := ValidateTables(LengthUnits, WeightUnits, TemperatureUnits); err != nil {
		panic(err)
	}
}

func (t UnitTable) Factor(symbol string) (float64, bool) {
	f, ok := t[symbol]
	return f, ok
}

func (t UnitTable) Has(symbol string) bool {
	_, ok := t[symbol]
	return ok
}

// Symbols returns the table's symbols in sorted order.
func (t UnitTable) Symbols() []string {
	out := make([]string, 0, len(t))
	for s := range t {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// ScaleFactor looks up symbol in the table of the given category.
// Temperature has no scale factor and always reports false.
func ScaleFactor(category Category, symbol string) (float64, bool) {
	switch category {
	case Length:
		return LengthUnits.Factor(symbol)
	case Weight:
		return WeightUnits.Factor(symbol)
	}
	return 0, false
}

func isTemperature(symbol string) bool {
	up := strings.ToUpper(symbol)
	for _, s := range TemperatureUnits {
		if s == up {
			return true
		}
	}
	return false
}

// ValidateTables checks that every factor is strictly positive and that no
// symbol belongs to more than one category. Temperature symbols are
// compared after uppercasing, scale symbols as written.
func ValidateTables(length, weight UnitTable, temperature []string) error {
	for name, table := range map[string]UnitTable{"length": length, "weight": weight} {
		for sym, f := range table {
			if !(f > 0) {
				return fmt.Errorf("%s unit %q: scale factor %v must be positive", name, sym, f)
			}
		}
	}
	for sym := range length {
		if weight.Has(sym) {
			return fmt.Errorf("unit %q is both a length and a weight unit", sym)
		}
	}
	temps := make(map[string]bool, len(temperature))
	for _, s := range temperature {
		temps[strings.ToUpper(s)] = true
	}
	for _, table := range []UnitTable{length, weight} {
		for sym := range table {
			if temps[strings.ToUpper(sym)] {
				return fmt.Errorf("unit %q clashes with temperature unit %q", sym, strings.ToUpper(sym))
			}
		}
	}
	return nil
}
