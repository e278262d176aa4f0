// Package zerolog adapts github.com/rs/zerolog to the logger.Logger
// interface.
package zerolog

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

type Handler struct {
	logger zerolog.Logger
}

// New returns a Logger writing structured events to w.
func New(w io.Writer) *Handler {
	return &Handler{logger: zerolog.New(w).With().Timestamp().Logger()}
}

// From wraps an existing zerolog.Logger.
func From(l zerolog.Logger) *Handler {
	return &Handler{logger: l}
}

func (h *Handler) Error(msg string, args ...any) {
	emit(h.logger.Error(), msg, args)
}

func (h *Handler) Warn(msg string, args ...any) {
	emit(h.logger.Warn(), msg, args)
}

func (h *Handler) Info(msg string, args ...any) {
	emit(h.logger.Info(), msg, args)
}

func (h *Handler) Debug(msg string, args ...any) {
	emit(h.logger.Debug(), msg, args)
}

// emit applies slog-convention key/value pairs as zerolog fields. A trailing
// key with no value is logged under the "!BADKEY" field, same as slog.
func emit(e *zerolog.Event, msg string, args []any) {
	for len(args) > 0 {
		if len(args) == 1 {
			e = e.Interface("!BADKEY", args[0])
			break
		}
		key, ok := args[0].(string)
		if !ok {
			key = fmt.Sprint(args[0])
		}
		e = e.Interface(key, args[1])
		args = args[2:]
	}
	e.Msg(msg)
}
