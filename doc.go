// The [goforce] package is a typed scripting interface over the Perforce
// command-line client, the Go way.
//
// # Connection
//
// Commands run through a [pkg/connection.Connection], which spawns the p4
// binary in tagged-output mode and decodes its records. Build one from a
// [pkg/connection.Config], usually via [pkg/connection.FromEnv] which reads
// the standard P4PORT, P4USER and P4CLIENT variables.
//
// # Wire formats
//
// The default output dialect is `p4 -G`, a stream of Python-marshal
// dictionaries implemented by [github.com/goforce/goforce/p4marshal]. It is
// the only dialect the server accepts on standard input, so spec forms
// (change -i and friends) always travel marshaled. The alternative
// `p4 -Mj -ztag` line-delimited JSON dialect is available through
// [pkg/connection.FormatJSON] for output-only commands.
//
// # Typed commands
//
// Each wrapper method ([P4.User], [P4.Change], [P4.Sync], ...) maps one p4
// command to models from [github.com/goforce/goforce/pkg/models]. For
// commands without a wrapper, [P4.Run] returns the raw decoded records.
//
// # Errors
//
// Failures reported by the server or client surface as
// [pkg/connection.CommandError]; malformed output streams surface as
// [p4marshal.FormatError]. The two are never conflated. Well-known failures
// additionally match sentinels such as [ErrUserNotFound] and
// [ErrSessionExpired] via [errors.Is].
package goforce
