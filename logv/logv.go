//
// logv.go
// Distributed under terms of the MIT license.
//

// Package logv is the structured-logging facade the rest of the module logs
// through: a zerolog logger with an optional lumberjack-backed rotating
// file sink, replacing what would otherwise be an ad-hoc debug boolean.
package logv

import (
	"os"

	"github.com/rs/zerolog"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

const (
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
)

var base = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: false}).With().Timestamp().Logger()

// Configure points the logger at a rotating file (via lumberjack) instead of
// stderr. An empty path leaves the logger unchanged and pretty is then
// ignored; with a path, pretty selects uncolored console-formatted lines and
// false selects JSON lines.
func Configure(path string, pretty bool) {
	if path == "" {
		return
	}
	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    100, // megabytes
		MaxBackups: 5,
		MaxAge:     28, // days
		Compress:   true,
	}
	if pretty {
		base = zerolog.New(zerolog.ConsoleWriter{Out: writer, NoColor: true}).With().Timestamp().Logger()
	} else {
		base = zerolog.New(writer).With().Timestamp().Logger()
	}
}

func SetLevel(l zerolog.Level) {
	base = base.Level(l)
}

func Debug() *zerolog.Event { return base.Debug().Caller(1) }
func Info() *zerolog.Event  { return base.Info().Caller(1) }
func Warn() *zerolog.Event  { return base.Warn().Caller(1) }
func Error() *zerolog.Event { return base.Error().Caller(1) }
func Fatal() *zerolog.Event { return base.Fatal().Caller(1) }

// callerSkip is a thin view over the base logger that adjusts (or drops)
// the caller annotation, mirroring the "no caller" / "deep caller" call
// sites used throughout the router and server code.
type callerSkip struct {
	skip    int
	disable bool
}

// WithNoCaller omits the caller annotation entirely — used for log lines
// emitted on a hot path (e.g. the per-request access line) where the call
// site is always the same and therefore uninformative.
var WithNoCaller = callerSkip{disable: true}

// WithDeepCaller walks one extra frame up, for helpers that log on behalf
// of their caller's caller (e.g. a registration helper logging a warning
// that should point at the application code that registered the route).
var WithDeepCaller = callerSkip{skip: 3}

func (c callerSkip) event(e *zerolog.Event) *zerolog.Event {
	if c.disable {
		return e
	}
	return e.Caller(c.skip)
}

func (c callerSkip) Debug() *zerolog.Event { return c.event(base.Debug()) }
func (c callerSkip) Info() *zerolog.Event  { return c.event(base.Info()) }
func (c callerSkip) Warn() *zerolog.Event  { return c.event(base.Warn()) }
func (c callerSkip) Error() *zerolog.Event { return c.event(base.Error()) }
func (c callerSkip) Fatal() *zerolog.Event { return c.event(base.Fatal()) }

// Assert is a startup-time invariant check: it logs at Fatal (which exits
// the process) when cond is false. Used for registration-time contract
// violations that should never survive past development.
func Assert(cond bool, msg string) {
	if !cond {
		base.Fatal().Msg(msg)
	}
}
