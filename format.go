// format.go - fmt.Formatter for Error.
//
// Behavior:
//
//	%s, %v   -> category tag (same as Error()).
//	%q       -> quoted category tag.
//	%#v      -> GoString(), a constructor call that rebuilds the value.
//	%+v      -> category=<tag> msg="<message>"
//	            msg is omitted when no message was supplied, so an absent
//	            message and an empty one stay distinguishable in logs.
package fallible

import (
	"fmt"
	"io"
)

// formatVerbose writes the single-line diagnostic form.
func formatVerbose(w io.Writer, e Error) {
	_, _ = fmt.Fprintf(w, "category=%s", e.category)
	if e.hasMessage {
		_, _ = fmt.Fprintf(w, " msg=%q", e.message)
	}
}

// Format implements fmt.Formatter for the verbs listed above.
func (e Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('#') {
			_, _ = io.WriteString(s, e.GoString())
			return
		}
		if s.Flag('+') {
			formatVerbose(s, e)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

// GoString renders a Go-syntax-like form for %#v.
func (e Error) GoString() string {
	if !e.hasMessage {
		return fmt.Sprintf("fallible.New(%q)", string(e.category))
	}
	return fmt.Sprintf("fallible.NewMessage(%q, %q)", string(e.category), e.message)
}
