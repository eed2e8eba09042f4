package unitconverter

import (
	"fmt"
	"strings"
)

type tempPair struct{ from, to string }

func celsiusToFahrenheit(c float64) float64 { return c*9.0/5.0 + 32.0 }
func fahrenheitToCelsius(f float64) float64 { return (f - 32.0) * 5.0 / 9.0 }
func celsiusToKelvin(c float64) float64     { return c + 273.15 }
func kelvinToCelsius(k float64) float64     { return k - 273.15 }
func identity(v float64) float64            { return v }

// F<->K goes through Celsius so both paths share the same constants.
var temperatureFuncs = map[tempPair]func(float64) float64{
	{UnitCelsius, UnitCelsius}:       identity,
	{UnitCelsius, UnitFahrenheit}:    celsiusToFahrenheit,
	{UnitCelsius, UnitKelvin}:        celsiusToKelvin,
	{UnitFahrenheit, UnitFahrenheit}: identity,
	{UnitFahrenheit, UnitCelsius}:    fahrenheitToCelsius,
	{UnitFahrenheit, UnitKelvin}:     func(f float64) float64 { return celsiusToKelvin(fahrenheitToCelsius(f)) },
	{UnitKelvin, UnitKelvin}:         identity,
	{UnitKelvin, UnitCelsius}:        kelvinToCelsius,
	{UnitKelvin, UnitFahrenheit}:     func(k float64) float64 { return celsiusToFahrenheit(kelvinToCelsius(k)) },
}

// ConvertTemperature converts between C, F and K. Symbols are case-insensitive.
func ConvertTemperature(value float64, from, to string) (float64, error) {
	fn, ok := temperatureFuncs[tempPair{strings.ToUpper(from), strings.ToUpper(to)}]
	if !ok {
		return 0, fmt.Errorf("temperature %s -> %s: %w", from, to, ErrUnsupportedUnit)
	}
	return fn(value), nil
}
