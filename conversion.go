package unitconverter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ConversionRequest struct {
	ID        string
	Value     float64
	From      string
	To        string
	Timestamp time.Time
}

type ConversionResult struct {
	Request  ConversionRequest
	Category Category
	Value    float64
}

func NewConversionRequest(value float64, from, to string) ConversionRequest {
	return ConversionRequest{
		ID:        uuid.New().String(),
		Value:     value,
		From:      from,
		To:        to,
		Timestamp: time.Now(),
	}
}

// ParseValue parses a number token the way the command line accepts it.
func ParseValue(token string) (float64, error) {
	token = strings.TrimSpace(token)
	if isHexFloat(token) {
		return 0, fmt.Errorf("%q: %w", token, ErrInvalidNumber)
	}
	v, err := strconv.ParseFloat(token, 64)
	if errors.Is(err, strconv.ErrRange) {
		// overflow yields ±Inf, underflow yields ±0
		return v, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%q: %w", token, ErrInvalidNumber)
	}
	return v, nil
}

// isHexFloat reports Go hex-float syntax such as "0x1p4", which ParseFloat
// accepts but plain decimal input does not.
func isHexFloat(token string) bool {
	t := strings.TrimLeft(token, "+-")
	return len(t) >= 2 && t[0] == '0' && (t[1] == 'x' || t[1] == 'X')
}

// ParseRequest builds a request from value, from-unit and to-unit tokens.
// Tokens past the third are ignored.
func ParseRequest(tokens []string) (ConversionRequest, error) {
	if len(tokens) < 3 {
		return ConversionRequest{}, fmt.Errorf("want <value> <from_unit> <to_unit>, got %d tokens", len(tokens))
	}
	v, err := ParseValue(tokens[0])
	if err != nil {
		return ConversionRequest{}, err
	}
	return NewConversionRequest(v, tokens[1], tokens[2]), nil
}

// Do runs the request through the category dispatcher.
func (r ConversionRequest) Do() (ConversionResult, error) {
	category, out, err := dispatch(r.Value, r.From, r.To)
	if err != nil {
		return ConversionResult{}, err
	}
	return ConversionResult{Request: r, Category: category, Value: out}, nil
}
