// Package codec defines the encoding interfaces the connection layer uses to
// talk to the p4 client, decoupling it from the concrete wire dialect
// (marshal by default, line-delimited JSON with -Mj).
package codec

import (
	"github.com/goforce/goforce/p4marshal"
)

type Encoder interface {
	Encode(r *p4marshal.Record) error
}

type Decoder interface {
	Next() (*p4marshal.Record, error)
}

type Marshaler interface {
	Marshal(r *p4marshal.Record) ([]byte, error)
}

type Unmarshaler interface {
	Unmarshal(data []byte) ([]*p4marshal.Record, error)
}
