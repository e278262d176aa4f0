package connection

import (
	"log/slog"
	"os"

	"github.com/goforce/goforce/internal/codec"
	"github.com/goforce/goforce/p4json"
	"github.com/goforce/goforce/p4marshal"
	"github.com/goforce/goforce/pkg/logger"
)

// Format selects the tagged output dialect requested from the p4 client.
type Format int

const (
	// FormatMarshal decodes `p4 -G` output, the Python-marshal dialect.
	// It is the default and the only format that supports writing spec
	// forms to standard input.
	FormatMarshal Format = iota

	// FormatJSON decodes `p4 -Mj -ztag` output, one JSON object per line.
	FormatJSON
)

// Config carries everything needed to invoke the p4 client. The zero value
// is not usable; build one with NewConfig or FromEnv.
type Config struct {
	// Port is the server address (P4PORT), for example "ssl:p4:1666".
	Port string

	// User is the username to run commands as (P4USER). Optional.
	User string

	// Client is the client workspace name (P4CLIENT). Optional.
	Client string

	// Binary is the p4 executable to spawn. Defaults to "p4", resolved
	// through PATH.
	Binary string

	// Format selects the output dialect. Defaults to FormatMarshal.
	Format Format

	Logger logger.Logger

	// Marshaler encodes spec forms written to p4 standard input.
	Marshaler codec.Marshaler

	// Unmarshaler decodes FormatMarshal output.
	Unmarshaler codec.Unmarshaler

	// JSONUnmarshaler decodes FormatJSON output.
	JSONUnmarshaler codec.Unmarshaler
}

// NewConfig returns a Config for the given server address with the default
// binary, codecs and a text logger on standard output.
func NewConfig(port string) *Config {
	mcodec := p4marshal.New()
	return &Config{
		Port:            port,
		Binary:          "p4",
		Logger:          logger.New(slog.NewTextHandler(os.Stdout, nil)),
		Marshaler:       mcodec,
		Unmarshaler:     mcodec,
		JSONUnmarshaler: p4json.New(),
	}
}

// FromEnv returns a Config populated from the standard P4PORT, P4USER and
// P4CLIENT environment variables.
func FromEnv() *Config {
	config := NewConfig(os.Getenv("P4PORT"))
	config.User = os.Getenv("P4USER")
	config.Client = os.Getenv("P4CLIENT")
	return config
}
