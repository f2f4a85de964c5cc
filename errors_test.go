package scsu

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{errTruncated(4, SD0), "scsu [decode] truncated_input at byte 4: input ends within arguments of 0x18"},
		{errHalfUnit(3, 0x41), "scsu [decode] truncated_input at byte 3: input ends within a 2-byte unit"},
		{errUnpairedLow(2, 0xDC01), "scsu [encode] unpaired_low_surrogate at code unit 2: low surrogate 0xdc01 without preceding high surrogate"},
		{errBadOffset(0, 0xA8), "scsu [decode] bad_offset at byte 0: window position code 0xa8 is reserved"},
		{ErrReservedByte, "scsu reserved_byte"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestErrorMatching(t *testing.T) {
	err := fmt.Errorf("reading file: %w", errReservedByte(3, SRS))
	if !errors.Is(err, ErrReservedByte) {
		t.Errorf("wrapped error should match its sentinel")
	}
	if errors.Is(err, ErrTruncatedInput) {
		t.Errorf("error should not match a different kind")
	}
	if !errors.Is(err, &Error{Kind: KindReservedByte, Phase: PhaseDecode}) {
		t.Errorf("error should match kind and phase")
	}
	if errors.Is(err, &Error{Kind: KindReservedByte, Phase: PhaseEncode}) {
		t.Errorf("error should not match a different phase")
	}
	var e *Error
	if !errors.As(err, &e) || e.Value != SRS {
		t.Errorf("expected offending byte in Value, got %v", e)
	}
}
