package common

import "sync/atomic"

const (
	Product = `sortbot`
)

var (
	Version        = `v0.3.1`
	LogLinenumbers bool
	LogHides       []string

	debugging atomic.Bool
	tracing   atomic.Bool
	silence   atomic.Bool
)

func DebugFlag() bool {
	return debugging.Load()
}

func TraceFlag() bool {
	return tracing.Load()
}

func Silent() bool {
	return silence.Load()
}

// DefineVerbosity sets the global verbosity. Trace implies debug, and
// silent wins over both.
func DefineVerbosity(silent, debug, trace bool) {
	silence.Store(silent)
	debugging.Store(!silent && (debug || trace))
	tracing.Store(!silent && trace)
}

func VerbosityName() string {
	switch {
	case Silent():
		return "silent"
	case TraceFlag():
		return "trace"
	case DebugFlag():
		return "debug"
	default:
		return "normal"
	}
}
