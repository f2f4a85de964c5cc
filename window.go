package scsu

// windowSize is the number of code points addressed by a window.
const windowSize = 0x80

// unset marks a window state without a selected dynamic window.
const unset = -1

// staticOffset holds the windows reachable by quote tags only.
var staticOffset = [8]rune{
	0x0000, // ASCII, for quoting tag bytes
	0x0080, // Latin-1 Supplement
	0x0100, // Latin Extended-A
	0x0300, // Combining Diacritical Marks
	0x2000, // General Punctuation
	0x2080, // Currency Symbols
	0x2100, // Letterlike Symbols and Number Forms
	0x3000, // CJK Symbols and Punctuation
}

// initialDynamicOffset is the state of the dynamic windows at the start of
// every call.
var initialDynamicOffset = [8]rune{
	0x0080, // Latin-1 Supplement
	0x00C0, // parts of Latin-1 Supplement and Latin Extended-A
	0x0400, // Cyrillic
	0x0600, // Arabic
	0x0900, // Devanagari
	0x3040, // Hiragana
	0x30A0, // Katakana
	0xFF00, // Fullwidth ASCII
}

// fixedOffset may be referenced by position codes fixedThreshold.. of
// define tags.
var fixedOffset = [7]rune{
	0x00C0, // Latin-1 letters + half of Latin Extended-A
	0x0250, // IPA Extensions
	0x0370, // Greek
	0x0530, // Armenian
	0x3040, // Hiragana
	0x30A0, // Katakana
	0xFF60, // Halfwidth Katakana
}

// windows is the window state shared by encoder and decoder. A fresh copy of
// the dynamic offsets is installed by reset for each call.
type windows struct {
	dynamic  [8]rune
	selected int
}

func (w *windows) reset() {
	w.dynamic = initialDynamicOffset
	w.selected = 0
}

func inWindow(ch, offset rune) bool {
	return ch >= offset && ch < offset+windowSize
}

// locate finds a window in table which contains ch. The selected window is
// preferred, otherwise the first matching window becomes the selected one.
func (w *windows) locate(ch rune, table []rune) bool {
	if w.selected != unset && inWindow(ch, table[w.selected]) {
		return true
	}
	for win, offset := range table {
		if inWindow(ch, offset) {
			w.selected = win
			return true
		}
	}
	return false
}

// placement computes where a dynamic window win has to be moved to contain
// ch, together with the position code of the define tag to announce it.
// ok is false for code points in the range 0x3400..0xDFFF, which cannot be
// covered by a window.
//
// Code points covered by fixed offset 0 get the plain position code, as in
// the reference encoder.
func placement(ch rune, win int) (offset rune, code uint16, extended bool, ok bool) {
	assert(ch >= windowSize, "no window placement for ASCII")
	for i := 1; i < len(fixedOffset); i++ {
		if inWindow(ch, fixedOffset[i]) {
			return fixedOffset[i], uint16(i) + fixedThreshold, false, true
		}
	}
	switch {
	case ch < 0x3400:
		return ch & 0xFF80, uint16(ch >> 7), false, true
	case ch < 0xE000:
		return 0, 0, false, false
	case ch <= 0xFFFF:
		return ch & 0xFF80, uint16((ch - gapOffset) >> 7), false, true
	}
	offset = ((ch - 0x10000) & 0x1FFF80) + 0x10000
	code = uint16((ch-0x10000)>>7) | uint16(win<<13)
	return offset, code, true, true
}

// define moves window win according to the position code of a define tag,
// found at input position pos, and selects it.
func (w *windows) define(win int, code byte, pos int) error {
	switch {
	case code == 0:
		return errZeroOffset(pos)
	case code < gapThreshold:
		w.dynamic[win] = rune(code) << 7
	case code < reservedStart:
		w.dynamic[win] = rune(code)<<7 + gapOffset
	case code < fixedThreshold:
		return errBadOffset(pos, code)
	default:
		w.dynamic[win] = fixedOffset[code-fixedThreshold]
	}
	w.selected = win
	return nil
}

// defineExtended handles the 16 bit argument of SDX/UDX: the top 3 bits
// address the window, the rest is the offset above the BMP in units of 128.
func (w *windows) defineExtended(arg uint16) {
	win := int(arg >> 13)
	w.dynamic[win] = rune(arg&0x1FFF)<<7 + 0x10000
	w.selected = win
}
