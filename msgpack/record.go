package unitconvmsgpack

import (
	"io"
	"time"
	"unitconverter"

	"github.com/vmihailenco/msgpack/v5"
)

type Record struct {
	UUID       string  `msgpack:"uuid,omitempty"`
	Value      float64 `msgpack:"value"`
	FromUnit   string  `msgpack:"from_unit,omitempty"`
	ToUnit     string  `msgpack:"to_unit,omitempty"`
	Category   string  `msgpack:"category,omitempty"`
	Result     float64 `msgpack:"result"`
	DatetimeMs int64   `msgpack:"date,omitempty"`
}

func NewRecord(res unitconverter.ConversionResult) Record {
	return Record{
		UUID:       res.Request.ID,
		Value:      res.Request.Value,
		FromUnit:   res.Request.From,
		ToUnit:     res.Request.To,
		Category:   res.Category.String(),
		Result:     res.Value,
		DatetimeMs: res.Request.Timestamp.UnixMilli(),
	}
}

// ToResult rebuilds the conversion result. The category is detected again
// from the unit pair, so a record with an unknown pair returns an error.
func ToResult(r *Record) (unitconverter.ConversionResult, error) {
	category, err := unitconverter.DetectCategory(r.FromUnit, r.ToUnit)
	if err != nil {
		return unitconverter.ConversionResult{}, err
	}
	return unitconverter.ConversionResult{
		Request: unitconverter.ConversionRequest{
			ID:        r.UUID,
			Value:     r.Value,
			From:      r.FromUnit,
			To:        r.ToUnit,
			Timestamp: time.UnixMilli(r.DatetimeMs),
		},
		Category: category,
		Value:    r.Result,
	}, nil
}

// EncodeSession writes every result of s to w as a stream of records.
func EncodeSession(w io.Writer, s *unitconverter.Session) error {
	enc := msgpack.NewEncoder(w)
	for _, res := range s.Results() {
		rec := NewRecord(res)
		if err := enc.Encode(&rec); err != nil {
			return err
		}
	}
	return nil
}
