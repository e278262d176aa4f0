// Package p4marshal implements the Python-marshal compatible binary format
// that the Perforce command-line client speaks in its tagged scripting mode
// (`p4 -G`).
//
// # Wire format
//
// A stream is a sequence of zero or more records laid out back to back with
// no outer framing. Each record is a flat, ordered dictionary:
//
//	| Field            | Size     | Encoding                          |
//	|------------------|----------|-----------------------------------|
//	| Record magic     | 1 byte   | '{' (TYPE_DICT)                   |
//	| Key marker       | 1 byte   | 's' (TYPE_STRING)                 |
//	| Key length       | 4 bytes  | little-endian unsigned            |
//	| Key bytes        | variable | raw bytes                         |
//	| Value marker     | 1 byte   | 's', 'u' or 'i'                   |
//	| Value length     | 4 bytes  | little-endian unsigned ('s', 'u') |
//	| Value bytes      | variable | raw bytes, or int32 LE for 'i'    |
//	| Record terminator| 1 byte   | '0' (TYPE_NULL)                   |
//
// Integers carry no length field: an 'i' marker is followed directly by a
// 4-byte little-endian signed value, exactly as CPython's marshal version 0
// writes them. Unicode items ('u') appear in output from some server and
// client combinations and are decoded as strings; the encoder always emits
// 's', which is what the p4 client itself produces.
//
// # Why our own marshal implementation?
//
// The format is CPython's marshal version 0 restricted to flat dictionaries
// of byte strings and 32-bit integers. No Go library speaks it, and the p4
// client rejects anything newer, so the codec here matches the reference
// byte for byte for that subset and nothing more.
package p4marshal

import "io"

// Codec encodes and decodes p4 marshal record streams. It is stateless and
// safe for concurrent use.
type Codec struct{}

// New returns a Codec.
func New() *Codec {
	return &Codec{}
}

// Marshal returns the encoding of a single record.
func (c *Codec) Marshal(r *Record) ([]byte, error) {
	return Marshal(r)
}

// Unmarshal decodes every record in data, in stream order. An empty buffer
// yields an empty, non-nil slice.
func (c *Codec) Unmarshal(data []byte) ([]*Record, error) {
	return Unmarshal(data)
}

// NewEncoder returns an Encoder writing to w.
func (c *Codec) NewEncoder(w io.Writer) *Encoder {
	return NewEncoder(w)
}

// NewDecoder returns a Decoder reading from r.
func (c *Codec) NewDecoder(r io.Reader) *Decoder {
	return NewDecoder(r)
}
