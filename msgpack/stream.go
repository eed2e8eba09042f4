package unitconvmsgpack

import (
	"bytes"
	"errors"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// RecordBuffer decodes records from data that may arrive in pieces.
type RecordBuffer struct {
	buf bytes.Buffer
}

// Feed appends data and returns every record that is now complete. Bytes of
// a trailing partial record stay buffered for the next call.
func (rb *RecordBuffer) Feed(data []byte) ([]*Record, error) {
	rb.buf.Write(data)

	var results []*Record
	for rb.buf.Len() > 0 {
		pending := rb.buf.Bytes()
		rd := bytes.NewReader(pending)
		v := new(Record)
		if err := msgpack.NewDecoder(rd).Decode(v); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				// not enough data yet, stop
				break
			}
			return results, err
		}
		rb.buf.Next(len(pending) - rd.Len())
		results = append(results, v)
	}
	return results, nil
}

// Pending is the number of buffered bytes not yet decoded.
func (rb *RecordBuffer) Pending() int {
	return rb.buf.Len()
}
