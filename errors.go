package cui

import "fmt"

// ErrorKind identifies the category of a contract violation.
type ErrorKind int

const (
	// KindCaptureConflict indicates a capture or release on behalf of a
	// widget the arbiter does not attribute it to.
	KindCaptureConflict ErrorKind = iota + 1
	// KindInvalidLayoutContext indicates an unsupported layout variant or a
	// PopLayoutTo target that is not on the stack.
	KindInvalidLayoutContext
	// KindInvalidStyleRule indicates a malformed style literal.
	KindInvalidStyleRule
	// KindInvalidLength indicates a malformed length literal.
	KindInvalidLength
	// KindDebugOverflow indicates the debug overlay did not fit its region.
	KindDebugOverflow
)

func (k ErrorKind) String() string {
	switch k {
	case KindCaptureConflict:
		return "capture conflict"
	case KindInvalidLayoutContext:
		return "invalid layout context"
	case KindInvalidStyleRule:
		return "invalid style rule"
	case KindInvalidLength:
		return "invalid length"
	case KindDebugOverflow:
		return "debug overflow"
	default:
		return "unknown"
	}
}

// Error is a programming-contract violation raised by the engine. Parsers
// return it; frame-scoped operations panic with it and Context.Frame turns
// the panic back into an error.
type Error struct {
	// Op is the operation that failed (e.g. "PopLayoutTo").
	Op string
	// Kind categorizes the violation.
	Kind ErrorKind
	// Err is the underlying error, if any.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cui: %s [%s]: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("cui: %s [%s]", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind. This lets
// errors.Is(err, ErrInvalidLength) match any length failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Err == nil && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrCaptureConflict      = &Error{Kind: KindCaptureConflict}
	ErrInvalidLayoutContext = &Error{Kind: KindInvalidLayoutContext}
	ErrInvalidStyleRule     = &Error{Kind: KindInvalidStyleRule}
	ErrInvalidLength        = &Error{Kind: KindInvalidLength}
	ErrDebugOverflow        = &Error{Kind: KindDebugOverflow}
)

func newError(op string, kind ErrorKind, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

// raise aborts the current frame. Context.Frame recovers it.
func raise(op string, kind ErrorKind, format string, args ...any) {
	panic(newError(op, kind, format, args...))
}
