package unitconverter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		from, to string
		want     float64
	}{
		{"cm to m", 100, "cm", "m", 1.0},
		{"mi to ft", 1, "mi", "ft", 5280.0},
		{"km to mi", 1.609344, "km", "mi", 1.0},
		{"kg to lb", 2, "kg", "lb", 4.4092452436975},
		{"ton to g", 1, "ton", "g", 1e6},
		{"C to F", 100, "C", "F", 212},
		{"lowercase temperature", 32, "f", "c", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.InEpsilon(t, tt.want, got, 1e-9)
		})
	}
}

func TestConvertExactValues(t *testing.T) {
	got, err := Convert(0, "C", "F")
	require.NoError(t, err)
	assert.Equal(t, 32.0, got)

	got, err = Convert(100, "C", "F")
	require.NoError(t, err)
	assert.Equal(t, 212.0, got)

	got, err = Convert(32, "F", "C")
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	got, err = Convert(0, "C", "K")
	require.NoError(t, err)
	assert.Equal(t, 273.15, got)

	got, err = Convert(273.15, "K", "C")
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	got, err = Convert(100, "cm", "m")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestConvertSameUnitRoundTrips(t *testing.T) {
	values := []float64{0, 1, -3.5, 1e-9, 123456.789, 1e12}
	for _, table := range []UnitTable{LengthUnits, WeightUnits} {
		for _, u := range table.Symbols() {
			for _, v := range values {
				got, err := Convert(v, u, u)
				require.NoError(t, err)
				assertClose(t, v, got, u+"->"+u)
			}
		}
	}
}

func TestConvertIsInvertible(t *testing.T) {
	values := []float64{1, -42.25, 0.001, 98765.4321}
	for _, table := range []UnitTable{LengthUnits, WeightUnits} {
		for _, u1 := range table.Symbols() {
			for _, u2 := range table.Symbols() {
				for _, v := range values {
					there, err := Convert(v, u1, u2)
					require.NoError(t, err)
					back, err := Convert(there, u2, u1)
					require.NoError(t, err)
					assertClose(t, v, back, u1+"<->"+u2)
				}
			}
		}
	}
}

func assertClose(t *testing.T, want, got float64, msg string) {
	t.Helper()
	if want == 0 {
		assert.InDelta(t, 0, got, 1e-12, msg)
		return
	}
	assert.LessOrEqual(t, math.Abs(got-want)/math.Abs(want), 1e-12, msg)
}

func TestConvertRejectsIncompatiblePairs(t *testing.T) {
	tests := []struct{ from, to string }{
		{"cm", "kg"},
		{"xx", "m"},
		{"m", "xx"},
		{"C", "m"},
		{"kg", "K"},
		{"M", "km"},
		{"KG", "g"},
		{"", ""},
	}
	for _, tt := range tests {
		_, err := Convert(1, tt.from, tt.to)
		require.ErrorIs(t, err, ErrIncompatibleUnits, "%s -> %s", tt.from, tt.to)
	}
}

func TestDetectCategory(t *testing.T) {
	c, err := DetectCategory("ft", "in")
	require.NoError(t, err)
	assert.Equal(t, Length, c)

	c, err = DetectCategory("oz", "lb")
	require.NoError(t, err)
	assert.Equal(t, Weight, c)

	c, err = DetectCategory("k", "F")
	require.NoError(t, err)
	assert.Equal(t, Temperature, c)

	_, err = DetectCategory("m", "g")
	require.ErrorIs(t, err, ErrIncompatibleUnits)
}

func TestConvertScaledUnsupportedUnit(t *testing.T) {
	_, err := ConvertScaled(LengthUnits, 1, "kg", "m")
	require.ErrorIs(t, err, ErrUnsupportedUnit)
	_, err = ConvertScaled(WeightUnits, 1, "kg", "m")
	require.ErrorIs(t, err, ErrUnsupportedUnit)
}

func TestDispatchCrossCategory(t *testing.T) {
	_, _, err := dispatch(1, "cm", "kg")
	require.ErrorIs(t, err, ErrIncompatibleUnits)
	assert.NotErrorIs(t, err, ErrUnsupportedUnit)
}
