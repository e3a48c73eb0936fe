// Package kitlog renders fallible errors as go-kit log key/values.
package kitlog

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	fallible "github.com/xgx-io/xgx-fallible"
)

// KeyVals returns the structured fields for err:
//   - a fallible.Error in the chain: "category", plus "message" when present
//   - any other error: "err"
//   - nil: no fields
func KeyVals(err error) []any {
	if err == nil {
		return nil
	}
	e, ok := fallible.AsError(err)
	if !ok {
		return []any{"err", err.Error()}
	}
	kv := []any{"category", string(e.Category())}
	if msg, ok := e.Message(); ok {
		kv = append(kv, "message", msg)
	}
	return kv
}

// Log writes err at error level, followed by any extra keyvals.
func Log(logger log.Logger, err error, keyvals ...any) error {
	kv := append(KeyVals(err), keyvals...)
	return level.Error(logger).Log(kv...)
}

// With returns a logger that carries err's fields on every line.
func With(logger log.Logger, err error) log.Logger {
	kv := KeyVals(err)
	if len(kv) == 0 {
		return logger
	}
	return log.With(logger, kv...)
}
