package scsu

import (
	"errors"
	"testing"
)

func TestPlacement(t *testing.T) {
	tests := []struct {
		ch       rune
		win      int
		offset   rune
		code     uint16
		extended bool
	}{
		{0x00C5, 3, 0x0080, 0x01, false},    // fixed offset 0 is not used
		{0x03B1, 3, 0x0370, 0xFB, false},    // Greek
		{0x0531, 4, 0x0530, 0xFC, false},    // Armenian
		{0x05D0, 5, 0x0580, 0x0B, false},    // Hebrew
		{0x0E01, 6, 0x0E00, 0x1C, false},    // Thai
		{0x33FF, 3, 0x3380, 0x67, false},    // last code point below the gap
		{0xE000, 3, 0xE000, 0x68, false},    // first code point above the gap
		{0xFF61, 3, 0xFF60, 0xFF, false},    // Halfwidth Katakana
		{0xFFFD, 3, 0xFF80, 0xA7, false},    // last position code before the reserved range
		{0x10400, 3, 0x10400, 0x6008, true}, // Deseret
		{0x1F600, 5, 0x1F600, 0xA1EC, true}, // Emoticons
		{0x10400, 0, 0x10400, 0x0008, true},
	}
	for _, tt := range tests {
		offset, code, extended, ok := placement(tt.ch, tt.win)
		if !ok {
			t.Errorf("expected a placement for %#x", tt.ch)
			continue
		}
		if offset != tt.offset || code != tt.code || extended != tt.extended {
			t.Errorf("placement(%#x, %d) = (%#x, %#x, %v), expected (%#x, %#x, %v)",
				tt.ch, tt.win, offset, code, extended, tt.offset, tt.code, tt.extended)
		}
	}
}

func TestPlacementGap(t *testing.T) {
	for _, ch := range []rune{0x3400, 0x4E00, 0x9FFF, 0xAC00, 0xD7A3, 0xD800, 0xDFFF} {
		if _, _, _, ok := placement(ch, 3); ok {
			t.Errorf("no window can be placed at %#x", ch)
		}
	}
}

func TestDefine(t *testing.T) {
	tests := []struct {
		code   byte
		offset rune
	}{
		{0x01, 0x0080},
		{0x08, 0x0400},
		{0x67, 0x3380},
		{0x68, 0xE000},
		{0xA7, 0xFF80},
		{0xF9, 0x00C0},
		{0xFB, 0x0370},
		{0xFF, 0xFF60},
	}
	var w windows
	for _, tt := range tests {
		w.reset()
		if err := w.define(6, tt.code, 0); err != nil {
			t.Fatalf("unexpected error for position code %#x: %v", tt.code, err)
		}
		if w.dynamic[6] != tt.offset {
			t.Errorf("position code %#x should move window to %#x, is %#x", tt.code, tt.offset, w.dynamic[6])
		}
		if w.selected != 6 {
			t.Errorf("define should select window 6, selected is %d", w.selected)
		}
	}
}

func TestDefineRejectsReservedCodes(t *testing.T) {
	var w windows
	w.reset()
	var e *Error
	if err := w.define(1, 0x00, 7); !errors.As(err, &e) || e.Kind != KindZeroOffset || e.Pos != 7 {
		t.Errorf("expected zero offset error at 7, got %v", err)
	}
	for _, code := range []byte{0xA8, 0xC0, 0xF8} {
		if err := w.define(1, code, 0); !errors.Is(err, ErrBadOffset) {
			t.Errorf("expected bad offset error for %#x, got %v", code, err)
		}
	}
	if w.dynamic != initialDynamicOffset || w.selected != 0 {
		t.Errorf("rejected define tags must not change the windows")
	}
}

func TestDefineExtended(t *testing.T) {
	var w windows
	w.reset()
	w.defineExtended(0xA1EC)
	if w.selected != 5 {
		t.Errorf("expected window 5 to be selected, is %d", w.selected)
	}
	if w.dynamic[5] != 0x1F600 {
		t.Errorf("expected window 5 at 0x1f600, is %#x", w.dynamic[5])
	}
}

func TestLocatePrefersSelected(t *testing.T) {
	var w windows
	w.reset()
	w.dynamic[4] = 0x0400 // same as window 2
	w.selected = 4
	if !w.locate(0x0416, w.dynamic[:]) || w.selected != 4 {
		t.Errorf("expected selected window 4 to be kept, is %d", w.selected)
	}
	w.selected = 0
	if !w.locate(0x0416, w.dynamic[:]) || w.selected != 2 {
		t.Errorf("expected first matching window 2, is %d", w.selected)
	}
	if w.locate(0x4E00, w.dynamic[:]) {
		t.Errorf("no window should contain 0x4e00")
	}
	if w.selected != 2 {
		t.Errorf("failed search must not change the selection")
	}
}

func TestWindowCatalog(t *testing.T) {
	ww := Windows()
	if len(ww) != 23 {
		t.Fatalf("expected 23 predefined windows, have %d", len(ww))
	}
	if ww[0].Kind != StaticWindow || ww[8].Kind != DynamicWindow || ww[16].Kind != FixedWindow {
		t.Errorf("windows are not ordered static, dynamic, fixed")
	}
	if s := ww[10].String(); s != "dynamic 2: U+0400..U+047F Cyrillic" {
		t.Errorf("unexpected description %q", s)
	}
	tests := []struct {
		ch    rune
		kind  WindowKind
		index int
	}{
		{0x00E9, DynamicWindow, 0},
		{0x0416, DynamicWindow, 2},
		{0x2026, StaticWindow, 4},
		{0x20AC, StaticWindow, 5},
		{0x03B1, FixedWindow, 2},
		{0xFF90, FixedWindow, 6},
		{0xFF76, DynamicWindow, 7},
	}
	for _, tt := range tests {
		w, ok := WindowFor(tt.ch)
		if !ok {
			t.Errorf("expected a window for %#x", tt.ch)
			continue
		}
		if w.Kind != tt.kind || w.Index != tt.index {
			t.Errorf("%#x should be in %s %d, found %s", tt.ch, tt.kind, tt.index, w)
		}
	}
	if w, ok := WindowFor('A'); ok {
		t.Errorf("ASCII should not be reported, got %s", w)
	}
	if w, _ := WindowFor(0x03B1); w.Code() != 0xFB {
		t.Errorf("position code of the Greek window should be 0xfb, is %#x", w.Code())
	}
}
