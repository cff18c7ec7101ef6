package cui

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorIs(t *testing.T) {
	err := newError("ParseLength", KindInvalidLength, "bad %q", "x")
	tests := []struct {
		target error
		want   bool
	}{
		{ErrInvalidLength, true},
		{ErrInvalidStyleRule, false},
		{ErrCaptureConflict, false},
		{&Error{Op: "ParseLength", Kind: KindInvalidLength}, false},
	}
	for _, tt := range tests {
		if got := errors.Is(err, tt.target); got != tt.want {
			t.Errorf("errors.Is(err, %v) = %v, want %v", tt.target, got, tt.want)
		}
	}

	wrapped := fmt.Errorf("loading theme: %w", err)
	if !errors.Is(wrapped, ErrInvalidLength) {
		t.Error("wrapped error lost its kind")
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{newError("Place", KindInvalidLayoutContext, "unsupported layout grid"),
			"cui: Place [invalid layout context]: unsupported layout grid"},
		{&Error{Op: "DrawDebugOverlay", Kind: KindDebugOverflow},
			"cui: DrawDebugOverlay [debug overflow]"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestErrorKindString(t *testing.T) {
	kinds := map[ErrorKind]string{
		KindCaptureConflict:      "capture conflict",
		KindInvalidLayoutContext: "invalid layout context",
		KindInvalidStyleRule:     "invalid style rule",
		KindInvalidLength:        "invalid length",
		KindDebugOverflow:        "debug overflow",
		ErrorKind(0):             "unknown",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}

func TestRaisePanicsWithError(t *testing.T) {
	defer func() {
		e, ok := recover().(*Error)
		if !ok || e.Kind != KindCaptureConflict || e.Op != "capture" {
			t.Errorf("recovered %v, want *Error capture conflict", e)
		}
	}()
	raise("capture", KindCaptureConflict, "owned by %d", 1)
}
