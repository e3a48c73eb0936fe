package fallible

// ErrBacktraceNotImplemented is the panic value raised by Backtrace.
var ErrBacktraceNotImplemented = NewMessage(NotImplemented, "backtrace capture")

// Backtrace is reserved for attaching a captured backtrace to an Error.
// Capture is not implemented; any call panics so that unfinished
// diagnostics are never silently dropped.
func Backtrace() Error {
	panic(ErrBacktraceNotImplemented)
}
