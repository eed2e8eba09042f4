package unitconverter

import "errors"

var (
	ErrInvalidNumber     = errors.New("invalid number")
	ErrUnsupportedUnit   = errors.New("unsupported unit")
	ErrIncompatibleUnits = errors.New("units belong to different categories or are unsupported")
)
