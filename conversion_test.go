package unitconverter

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	req, err := ParseRequest([]string{"2.5", "kg", "lb", "ignored"})
	require.NoError(t, err)
	assert.Equal(t, 2.5, req.Value)
	assert.Equal(t, "kg", req.From)
	assert.Equal(t, "lb", req.To)
	_, err = uuid.Parse(req.ID)
	assert.NoError(t, err)
	assert.False(t, req.Timestamp.IsZero())
}

func TestParseRequestInvalidNumber(t *testing.T) {
	for _, tok := range []string{"abc", "", "1,5", "12cm", "0x1p4", "-0x10", "+0X1"} {
		_, err := ParseRequest([]string{tok, "cm", "m"})
		require.ErrorIs(t, err, ErrInvalidNumber, "token %q", tok)
	}
}

func TestParseRequestTooFewTokens(t *testing.T) {
	_, err := ParseRequest([]string{"1", "cm"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidNumber)
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue("-40")
	require.NoError(t, err)
	assert.Equal(t, -40.0, v)

	v, err = ParseValue("1e3")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, v)

	v, err = ParseValue("1e400")
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))
}

func TestRequestDo(t *testing.T) {
	res, err := NewConversionRequest(1, "mi", "km").Do()
	require.NoError(t, err)
	assert.Equal(t, Length, res.Category)
	assert.InDelta(t, 1.609344, res.Value, 1e-12)
	assert.Equal(t, "mi", res.Request.From)

	_, err = NewConversionRequest(1, "mi", "lb").Do()
	require.ErrorIs(t, err, ErrIncompatibleUnits)
}
