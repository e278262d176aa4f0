// Package logger defines the leveled logging interface used across the
// module and a default adapter over log/slog. A zerolog-backed adapter lives
// in the zerolog subpackage.
package logger

import "log/slog"

// Logger accepts alternating key/value pairs after the message, in the
// log/slog argument convention.
type Logger interface {
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
}

// Discard returns a Logger that drops everything.
func Discard() Logger {
	return discard{}
}

type discard struct{}

func (discard) Error(string, ...any) {}
func (discard) Warn(string, ...any)  {}
func (discard) Info(string, ...any)  {}
func (discard) Debug(string, ...any) {}

type SlogHandler struct {
	logger *slog.Logger
}

// New returns a Logger backed by the given slog handler.
func New(h slog.Handler) *SlogHandler {
	return &SlogHandler{logger: slog.New(h)}
}

func (handler *SlogHandler) Error(msg string, args ...any) {
	handler.logger.Error(msg, args...)
}

func (handler *SlogHandler) Warn(msg string, args ...any) {
	handler.logger.Warn(msg, args...)
}

func (handler *SlogHandler) Info(msg string, args ...any) {
	handler.logger.Info(msg, args...)
}

func (handler *SlogHandler) Debug(msg string, args ...any) {
	handler.logger.Debug(msg, args...)
}
