package p4marshal

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Type markers of the marshal version 0 dialect, shared by CPython and the
// p4 client.
const (
	typeDict    = '{'
	typeString  = 's'
	typeUnicode = 'u'
	typeInt     = 'i'
	typeNull    = '0'
)

var errEmptyKey = errors.New("p4marshal: record key must not be empty")

// Marshal returns the encoding of r: a dict marker, each key/value pair in
// insertion order, and a terminator. The output is deterministic for a given
// record and depends on nothing but its contents.
func Marshal(r *Record) ([]byte, error) {
	size := 2 // marker + terminator
	for _, k := range r.keys {
		size += 5 + len(k) // marker + length + bytes
		if v := r.values[k]; v.kind == KindInt {
			size += 5
		} else {
			size += 5 + len(v.str)
		}
	}
	return Append(make([]byte, 0, size), r)
}

// Append appends the encoding of r to dst and returns the extended buffer.
func Append(dst []byte, r *Record) ([]byte, error) {
	dst = append(dst, typeDict)
	for _, k := range r.keys {
		if k == "" {
			return nil, errEmptyKey
		}
		var err error
		if dst, err = appendString(dst, k); err != nil {
			return nil, err
		}
		v := r.values[k]
		switch v.kind {
		case KindInt:
			dst = append(dst, typeInt)
			dst = binary.LittleEndian.AppendUint32(dst, uint32(v.num))
		case KindString:
			if dst, err = appendString(dst, v.str); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("p4marshal: key %q holds a value of no kind", k)
		}
	}
	return append(dst, typeNull), nil
}

func appendString(dst []byte, s string) ([]byte, error) {
	if len(s) > math.MaxUint32 {
		return nil, fmt.Errorf("p4marshal: string of %d bytes exceeds the wire limit", len(s))
	}
	dst = append(dst, typeString)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(s)))
	return append(dst, s...), nil
}

// Encoder writes marshal records to an output stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the encoding of r to the stream.
func (e *Encoder) Encode(r *Record) error {
	data, err := Marshal(r)
	if err != nil {
		return err
	}
	_, err = e.w.Write(data)
	return err
}
