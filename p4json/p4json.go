// Package p4json decodes the line-delimited JSON record stream produced by
// the p4 client's `-Mj -ztag` output mode. Each line is one flat JSON object
// with the same field conventions as the marshal dialect (code, data, level,
// severity, and per-command fields).
//
// JSON mode is output-only: spec forms written to p4 standard input are not
// JSON, so this codec has no encoder. Use it for read-style commands.
package p4json

import (
	"bytes"
	"fmt"

	"github.com/buger/jsonparser"

	"github.com/goforce/goforce/p4marshal"
)

// Codec decodes JSON record streams. It is stateless and safe for
// concurrent use.
type Codec struct{}

// New returns a Codec.
func New() *Codec {
	return &Codec{}
}

// Unmarshal decodes every non-empty line of data as one record, preserving
// each object's key order.
func (c *Codec) Unmarshal(data []byte) ([]*p4marshal.Record, error) {
	return Unmarshal(data)
}

// Unmarshal decodes every non-empty line of data as one record.
func Unmarshal(data []byte) ([]*p4marshal.Record, error) {
	records := make([]*p4marshal.Record, 0, 1)
	for i, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		record, err := decodeObject(line)
		if err != nil {
			return nil, fmt.Errorf("p4json: line %d: %w", i+1, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func decodeObject(line []byte) (*p4marshal.Record, error) {
	record := p4marshal.NewRecord()
	err := jsonparser.ObjectEach(line, func(key, value []byte, vt jsonparser.ValueType, _ int) error {
		name := string(key)
		switch vt {
		case jsonparser.String:
			s, err := jsonparser.ParseString(value)
			if err != nil {
				return fmt.Errorf("field %q: %w", name, err)
			}
			record.SetString(name, s)
		case jsonparser.Number:
			n, err := jsonparser.ParseInt(value)
			if err == nil && n == int64(int32(n)) {
				record.SetInt(name, int32(n))
				return nil
			}
			// Out-of-range or fractional numbers keep their literal text,
			// matching how the marshal path stringifies unknown shapes.
			record.SetString(name, string(value))
		default:
			return fmt.Errorf("field %q: unsupported JSON value type %s", name, vt)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}
