package scsu

import (
	"fmt"
	"strings"
)

// Phase tells whether an error occurred while encoding or decoding.
type Phase string

const (
	PhaseEncode Phase = "encode" // code units to SCSU
	PhaseDecode Phase = "decode" // SCSU to code units
)

// Kind categorizes an error.
type Kind string

const (
	KindUnpairedLowSurrogate  Kind = "unpaired_low_surrogate"
	KindUnpairedHighSurrogate Kind = "unpaired_high_surrogate"
	KindZeroOffset            Kind = "zero_offset"
	KindBadOffset             Kind = "bad_offset"
	KindReservedByte          Kind = "reserved_byte"
	KindTruncatedInput        Kind = "truncated_input"
	KindInternal              Kind = "internal"
)

// Error is the error type returned by all operations of this package.
//
// Pos is the index of the offending code unit (PhaseEncode) or byte
// (PhaseDecode), or -1 if not applicable. Value holds the offending code unit,
// byte or position code.
type Error struct {
	Value  any
	Phase  Phase
	Kind   Kind
	Detail string
	Pos    int
}

// Sentinel errors to be used with errors.Is. They match any *Error of the same
// kind, regardless of phase and position.
var (
	ErrUnpairedLowSurrogate  = &Error{Kind: KindUnpairedLowSurrogate, Pos: -1}
	ErrUnpairedHighSurrogate = &Error{Kind: KindUnpairedHighSurrogate, Pos: -1}
	ErrZeroOffset            = &Error{Kind: KindZeroOffset, Pos: -1}
	ErrBadOffset             = &Error{Kind: KindBadOffset, Pos: -1}
	ErrReservedByte          = &Error{Kind: KindReservedByte, Pos: -1}
	ErrTruncatedInput        = &Error{Kind: KindTruncatedInput, Pos: -1}
)

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("scsu")
	if e.Phase != "" {
		b.WriteString(" [")
		b.WriteString(string(e.Phase))
		b.WriteByte(']')
	}
	b.WriteByte(' ')
	b.WriteString(string(e.Kind))
	if e.Pos >= 0 {
		if e.Phase == PhaseEncode {
			fmt.Fprintf(&b, " at code unit %d", e.Pos)
		} else {
			fmt.Fprintf(&b, " at byte %d", e.Pos)
		}
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Is reports whether target matches this error. Kinds have to be equal, the
// phase is compared only if target has one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && (t.Phase == "" || t.Phase == e.Phase)
}

func errUnpairedLow(pos int, unit uint16) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindUnpairedLowSurrogate,
		Pos:    pos,
		Value:  unit,
		Detail: fmt.Sprintf("low surrogate 0x%04x without preceding high surrogate", unit),
	}
}

func errUnpairedHigh(pos int, unit uint16) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindUnpairedHighSurrogate,
		Pos:    pos,
		Value:  unit,
		Detail: fmt.Sprintf("high surrogate 0x%04x not followed by a low surrogate", unit),
	}
}

func errZeroOffset(pos int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindZeroOffset,
		Pos:    pos,
		Value:  byte(0),
		Detail: "window position code is zero",
	}
}

func errBadOffset(pos int, code byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindBadOffset,
		Pos:    pos,
		Value:  code,
		Detail: fmt.Sprintf("window position code 0x%02x is reserved", code),
	}
}

func errReservedByte(pos int, b byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindReservedByte,
		Pos:    pos,
		Value:  b,
		Detail: fmt.Sprintf("reserved tag 0x%02x", b),
	}
}

func errTruncated(pos int, tag byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindTruncatedInput,
		Pos:    pos,
		Value:  tag,
		Detail: fmt.Sprintf("input ends within arguments of 0x%02x", tag),
	}
}

func errHalfUnit(pos int, hi byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindTruncatedInput,
		Pos:    pos,
		Value:  hi,
		Detail: "input ends within a 2-byte unit",
	}
}

func errInternal(pos int, format string, args ...any) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindInternal,
		Pos:    pos,
		Detail: fmt.Sprintf(format, args...),
	}
}
