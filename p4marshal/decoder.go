package p4marshal

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"strings"
)

// Unmarshal decodes every record in data, in stream order. The buffer must
// contain a whole number of records: trailing or embedded garbage fails with
// a *FormatError. An empty buffer is a valid empty stream.
func Unmarshal(data []byte) ([]*Record, error) {
	d := NewDecoder(bytes.NewReader(data))
	records := make([]*Record, 0, 1)
	for {
		r, err := d.Next()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
}

// Decoder reads marshal records from an input stream. It consumes the stream
// strictly forward; records are yielded one at a time as their terminator is
// reached.
type Decoder struct {
	r   *bufio.Reader
	off int64
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Decoder{r: br}
}

// InputOffset returns the number of bytes consumed so far.
func (d *Decoder) InputOffset() int64 {
	return d.off
}

// Next decodes and returns the next record. It returns io.EOF when the
// stream ends exactly on a record boundary; input ending anywhere else, an
// unexpected dict marker or an unrecognized type marker fail with a
// *FormatError carrying the byte offset of the fault.
func (d *Decoder) Next() (*Record, error) {
	magic, err := d.r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, err
	}
	d.off++
	if magic != typeDict {
		return nil, errBadMarker(d.off-1, typeDict, magic)
	}

	record := NewRecord()
	for {
		marker, err := d.readByte("item marker")
		if err != nil {
			return nil, err
		}
		if marker == typeNull {
			return record, nil
		}

		// Keys are always written as strings.
		if marker != typeString && marker != typeUnicode {
			return nil, errBadType(d.off-1, marker)
		}
		key, err := d.readString("key")
		if err != nil {
			return nil, err
		}

		marker, err = d.readByte("value marker")
		if err != nil {
			return nil, err
		}
		switch marker {
		case typeString, typeUnicode:
			value, err := d.readString("value")
			if err != nil {
				return nil, err
			}
			record.Set(key, String(value))
		case typeInt:
			n, err := d.readInt32("value")
			if err != nil {
				return nil, err
			}
			record.Set(key, Int(n))
		default:
			return nil, errBadType(d.off-1, marker)
		}
	}
}

func (d *Decoder) readByte(what string) (byte, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, errTruncated(d.off, what)
		}
		return 0, err
	}
	d.off++
	return b, nil
}

func (d *Decoder) readInt32(what string) (int32, error) {
	var buf [4]byte
	n, err := io.ReadFull(d.r, buf[:])
	d.off += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, errTruncated(d.off, what)
		}
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(buf[:])), nil
}

// readString reads a 4-byte length followed by that many raw bytes. Copying
// through CopyN keeps a corrupt length from allocating the declared size up
// front; truncated input fails at the real end of the stream.
func (d *Decoder) readString(what string) (string, error) {
	length, err := d.readInt32(what + " length")
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	n, err := io.CopyN(&sb, d.r, int64(uint32(length)))
	d.off += n
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return "", errTruncated(d.off, what)
		}
		return "", err
	}
	return sb.String(), nil
}
