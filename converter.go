package unitconverter

import "fmt"

// ConvertScaled converts value through the table's canonical unit. The
// same-unit case takes the same path as every other pair.
func ConvertScaled(table UnitTable, value float64, from, to string) (float64, error) {
	toCanonical, ok := table.Factor(from)
	if !ok {
		return 0, fmt.Errorf("%q: %w", from, ErrUnsupportedUnit)
	}
	fromCanonical, ok := table.Factor(to)
	if !ok {
		return 0, fmt.Errorf("%q: %w", to, ErrUnsupportedUnit)
	}
	canonical := value * toCanonical
	return canonical / fromCanonical, nil
}

// DetectCategory reports the single category both symbols belong to.
// Length and weight are matched first and case-sensitively, temperature last.
func DetectCategory(from, to string) (Category, error) {
	switch {
	case LengthUnits.Has(from) && LengthUnits.Has(to):
		return Length, nil
	case WeightUnits.Has(from) && WeightUnits.Has(to):
		return Weight, nil
	case isTemperature(from) && isTemperature(to):
		return Temperature, nil
	}
	return 0, ErrIncompatibleUnits
}

// ConvertCategory converts within a known category.
func ConvertCategory(category Category, value float64, from, to string) (float64, error) {
	switch category {
	case Length:
		return ConvertScaled(LengthUnits, value, from, to)
	case Weight:
		return ConvertScaled(WeightUnits, value, from, to)
	case Temperature:
		return ConvertTemperature(value, from, to)
	}
	return 0, fmt.Errorf("%s: %w", category, ErrUnsupportedUnit)
}

// Convert detects the category of the unit pair and converts value. Any
// failure is reported as ErrIncompatibleUnits.
func Convert(value float64, from, to string) (float64, error) {
	_, out, err := dispatch(value, from, to)
	return out, err
}

func dispatch(value float64, from, to string) (Category, float64, error) {
	category, err := DetectCategory(from, to)
	if err != nil {
		return 0, 0, err
	}
	out, err := ConvertCategory(category, value, from, to)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", err, ErrIncompatibleUnits)
	}
	return category, out, nil
}
