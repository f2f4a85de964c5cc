package scsu

import "unicode/utf16"

const (
	// 0xd800-0xdc00 encodes the high 10 bits of a pair.
	// 0xdc00-0xe000 encodes the low 10 bits of a pair.
	// the value is those 20 bits plus 0x10000.
	surr1 = 0xd800
	surr2 = 0xdc00
	surr3 = 0xe000
)

func isHighSurrogate(u uint16) bool { return u >= surr1 && u < surr2 }
func isLowSurrogate(u uint16) bool  { return u >= surr2 && u < surr3 }

// isCompressible is false for the CJK ideographs, Hangul and surrogates in
// the range 0x3400..0xDFFF, which no window can be moved to.
func isCompressible(ch rune) bool {
	return ch < 0x3400 || ch >= 0xE000
}

// isPassThrough is true for characters written as themselves in single-byte
// mode: ASCII without control codes other than TAB, CR, LF.
func isPassThrough(ch rune) bool {
	return (ch >= 0x20 && ch <= 0x7F) || ch == 0x09 || ch == 0x0A || ch == 0x0D
}

// Encoder compresses UTF-16 code units to SCSU.
// The zero value is ready to use. An Encoder must not be used concurrently.
type Encoder struct {
	windows
	src        []uint16
	pos        int // next code unit to encode
	out        []byte
	unicode    bool // in Unicode mode
	scuPos     int  // index of a pending SCU in out, or -1
	nextWindow int  // dynamic window to redefine next, mod 8
}

func (e *Encoder) init(src []uint16, dst []byte) {
	e.windows.reset()
	e.src, e.pos, e.out = src, 0, dst
	e.unicode = false
	e.scuPos = -1
	e.nextWindow = 3
}

// Encode compresses src and appends the result to dst, which may be nil.
// On error the returned slice is nil.
func (e *Encoder) Encode(src []uint16, dst []byte) ([]byte, error) {
	e.init(src, dst)
	err := e.encode()
	out := e.out
	e.src, e.out = nil, nil // do not hold the references
	if err != nil {
		tracer().Errorf("scsu encode: %v", err)
		return nil, err
	}
	return out, nil
}

// Encode compresses a sequence of UTF-16 code units to SCSU.
func Encode(src []uint16) ([]byte, error) {
	var e Encoder
	return e.Encode(src, nil)
}

func (e *Encoder) encode() error {
	for e.pos < len(e.src) {
		var ch rune
		var width int
		var err error
		if e.scuPos != -1 {
			if ch, err = e.unicodeRun(); err != nil {
				return err
			}
			width = 1
			if len(e.out)-e.scuPos == 3 {
				// a run of a single character is written as SQU instead
				tracer().Debugf("single code unit run at %d, SCU becomes SQU", e.scuPos)
				e.out[e.scuPos] = SQU
				e.scuPos = -1
				continue
			}
			e.scuPos = -1
			e.unicode = true
		} else if ch, width, err = e.singleByteRun(); err != nil {
			return err
		}
		if e.pos >= len(e.src) {
			break
		}
		if ch < 0x80 {
			ch = e.windowDecider()
		}
		prevWindow := e.selected
		if ch < 0x80 || e.locate(ch, e.dynamic[:]) {
			// quote instead of select if the character interrupts a run in the
			// current window
			if !e.unicode && e.pos+width < len(e.src) {
				if ch2 := e.peek(e.pos + width); inWindow(ch2, e.dynamic[prevWindow]) {
					if err = e.quote(ch, width); err != nil {
						return err
					}
					e.selected = prevWindow
					continue
				}
			}
			if e.unicode {
				e.out = append(e.out, UC0+byte(e.selected))
			} else {
				e.out = append(e.out, SC0+byte(e.selected))
			}
			e.unicode = false
		} else if !e.unicode && e.locate(ch, staticOffset[:]) {
			// static windows cannot be reached from Unicode mode
			if err = e.quote(ch, width); err != nil {
				return err
			}
			e.selected = prevWindow
		} else if e.position(ch) {
			e.unicode = false
		} else {
			tracer().Debugf("switch to Unicode mode at code unit %d", e.pos)
			e.scuPos = len(e.out)
			e.out = append(e.out, SCU)
		}
	}
	return nil
}

// codePointAt returns the code point starting at code unit i, combining
// surrogate pairs, and the number of code units it occupies.
func (e *Encoder) codePointAt(i int) (rune, int, error) {
	u := e.src[i]
	switch {
	case isLowSurrogate(u):
		return 0, 0, errUnpairedLow(i, u)
	case isHighSurrogate(u):
		if i+1 >= len(e.src) || !isLowSurrogate(e.src[i+1]) {
			return 0, 0, errUnpairedHigh(i, u)
		}
		return utf16.DecodeRune(rune(u), rune(e.src[i+1])), 2, nil
	}
	return rune(u), 1, nil
}

// peek is codePointAt for lookahead. Malformed surrogates are returned as
// they are and reported once the encoder gets there.
func (e *Encoder) peek(i int) rune {
	ch, _, err := e.codePointAt(i)
	if err != nil {
		return rune(e.src[i])
	}
	return ch
}

// windowDecider looks past ASCII for the first non-ASCII character to choose
// a window for. If an incompressible code unit comes first, or the input ends,
// the current character is returned.
func (e *Encoder) windowDecider() rune {
	for i := e.pos; i < len(e.src); i++ {
		u := rune(e.src[i])
		if !isCompressible(u) {
			break
		}
		if u >= 0x80 {
			return u
		}
	}
	return rune(e.src[e.pos])
}

// singleByteRun writes characters as long as they can be represented in
// single-byte mode with the current window. It returns the first character
// which cannot, or 0 if the input is exhausted.
func (e *Encoder) singleByteRun() (rune, int, error) {
	win := e.selected
	for e.pos < len(e.src) {
		ch, width, err := e.codePointAt(e.pos)
		if err != nil {
			return 0, 0, err
		}
		switch {
		case isPassThrough(ch) || ch == 0:
			e.out = append(e.out, byte(ch))
		case ch < 0x20:
			// other control codes collide with tags
			e.out = append(e.out, SQ0, byte(ch))
		case inWindow(ch, e.dynamic[win]):
			e.out = append(e.out, byte(ch-e.dynamic[win])|0x80)
		default:
			return ch, width, nil
		}
		e.pos += width
	}
	return 0, 0, nil
}

// quote writes ch, occupying width code units, from the selected window
// without selecting it for subsequent characters.
func (e *Encoder) quote(ch rune, width int) error {
	win := e.selected
	e.out = append(e.out, SQ0+byte(win))
	if offset := e.dynamic[win]; inWindow(ch, offset) {
		e.out = append(e.out, byte(ch-offset)|0x80)
	} else if offset := staticOffset[win]; inWindow(ch, offset) {
		e.out = append(e.out, byte(ch-offset))
	} else {
		return errInternal(e.pos, "character %#x not in window %d", ch, win)
	}
	e.pos += width
	return nil
}

// unicodeRun writes code units in Unicode mode until two compressible code
// units follow each other. Surrogate pairs are written as a whole. It returns
// the code unit which ended the run.
func (e *Encoder) unicodeRun() (rune, error) {
	var ch rune
	for e.pos < len(e.src) {
		u := e.src[e.pos]
		ch = rune(u)
		if isCompressible(ch) {
			if e.pos+1 < len(e.src) && isCompressible(rune(e.src[e.pos+1])) {
				break
			}
			if u >= 0xE000 && u <= 0xF2FF {
				// high byte collides with a Unicode mode tag
				e.out = append(e.out, UQU)
			}
			e.out = append(e.out, byte(u>>8), byte(u))
			e.pos++
			continue
		}
		switch {
		case isLowSurrogate(u):
			return 0, errUnpairedLow(e.pos, u)
		case isHighSurrogate(u):
			if e.pos+1 >= len(e.src) || !isLowSurrogate(e.src[e.pos+1]) {
				return 0, errUnpairedHigh(e.pos, u)
			}
			lo := e.src[e.pos+1]
			e.out = append(e.out, byte(u>>8), byte(u), byte(lo>>8), byte(lo))
			e.pos += 2
		default:
			e.out = append(e.out, byte(u>>8), byte(u))
			e.pos++
		}
	}
	return ch, nil
}

// position redefines a dynamic window to contain ch. The window to use
// rotates through all eight windows. position fails for characters no window
// can be placed at.
func (e *Encoder) position(ch rune) bool {
	win := e.nextWindow % 8
	offset, code, extended, ok := placement(ch, win)
	if !ok {
		return false
	}
	e.dynamic[win] = offset
	switch {
	case extended && e.unicode:
		e.out = append(e.out, UDX, byte(code>>8), byte(code))
	case extended:
		e.out = append(e.out, SDX, byte(code>>8), byte(code))
	case e.unicode:
		e.out = append(e.out, UD0+byte(win), byte(code))
	default:
		e.out = append(e.out, SD0+byte(win), byte(code))
	}
	tracer().Debugf("window %d moved to %#x for %#x", win, offset, ch)
	e.selected = win
	e.nextWindow++
	return true
}
