package scsu

import "unicode/utf16"

// Decoder expands SCSU to UTF-16 code units.
// The zero value is ready to use. A Decoder must not be used concurrently.
type Decoder struct {
	windows
	out   []uint16
	tally [numEvents]int // tags and characters seen by the last call
}

// Decode expands src and appends the code units to dst, which may be nil.
// On error the returned slice is nil.
func (d *Decoder) Decode(src []byte, dst []uint16) ([]uint16, error) {
	d.windows.reset()
	d.tally = [numEvents]int{}
	d.out = dst
	err := d.decode(src)
	out := d.out
	d.out = nil
	if err != nil {
		tracer().Errorf("scsu decode: %v", err)
		return nil, err
	}
	return out, nil
}

// Decode expands an SCSU byte sequence to UTF-16 code units.
func Decode(src []byte) ([]uint16, error) {
	var d Decoder
	return d.Decode(src, nil)
}

func (d *Decoder) decode(src []byte) error {
	for i := 0; i < len(src); i++ {
		b := src[i]
		switch classify(b) {
		case classQuote:
			if i+1 >= len(src) {
				return errTruncated(i, b)
			}
			// one character from window n: static if < 0x80, dynamic otherwise;
			// the selected window is left alone
			win := int(b - SQ0)
			i++
			d.tally[evQuote]++
			d.emit(src[i], win, win)
		case classSelect:
			d.selected = int(b - SC0)
			d.tally[evSelect]++
		case classDefine:
			if i+1 >= len(src) {
				return errTruncated(i, b)
			}
			if err := d.define(int(b-SD0), src[i+1], i); err != nil {
				return err
			}
			i++
			d.tally[evDefine]++
		case classDefineExtended:
			if i+2 >= len(src) {
				return errTruncated(i, b)
			}
			d.defineExtended(uint16(src[i+1])<<8 | uint16(src[i+2]))
			i += 2
			d.tally[evDefineExtended]++
		case classQuoteUnicode:
			if i+2 >= len(src) {
				return errTruncated(i, b)
			}
			d.out = append(d.out, uint16(src[i+1])<<8|uint16(src[i+2]))
			i += 2
			d.tally[evQuoteUnicode]++
		case classSwitchUnicode:
			d.tally[evSwitchUnicode]++
			last, err := d.unicodeRun(src, i+1)
			if err != nil {
				return err
			}
			i = last
		case classReserved:
			return errReservedByte(i, b)
		default:
			d.tally[evLiteral]++
			d.emit(b, 0, d.selected)
		}
	}
	return nil
}

// emit appends the character for byte b of single-byte mode. Bytes below 0x80
// are taken from static window static, all others from dynamic window
// dynamic. Without a quote these are window 0 and the selected window.
func (d *Decoder) emit(b byte, static, dynamic int) {
	if b < 0x80 {
		d.out = append(d.out, uint16(rune(b)+staticOffset[static]))
		return
	}
	ch := rune(b-0x80) + d.dynamic[dynamic]
	if ch < 0x10000 {
		d.out = append(d.out, uint16(ch))
		return
	}
	r1, r2 := utf16.EncodeRune(ch)
	d.out = append(d.out, uint16(r1), uint16(r2))
}

// unicodeRun reads 2-byte units, starting at src[i], until a select or define
// tag returns to single-byte mode. It returns the index of the last byte
// consumed.
func (d *Decoder) unicodeRun(src []byte, i int) (int, error) {
	for ; i < len(src); i += 2 {
		b := src[i]
		switch {
		case b >= UC0 && b <= UC7:
			d.selected = int(b - UC0)
			d.tally[evSelect]++
			return i, nil
		case b >= UD0 && b <= UD7:
			if i+1 >= len(src) {
				return i, errTruncated(i, b)
			}
			d.tally[evDefine]++
			return i + 1, d.define(int(b-UD0), src[i+1], i)
		case b == UDX:
			if i+2 >= len(src) {
				return i, errTruncated(i, b)
			}
			d.defineExtended(uint16(src[i+1])<<8 | uint16(src[i+2]))
			d.tally[evDefineExtended]++
			return i + 2, nil
		case b == URS:
			return i, errReservedByte(i, b)
		case b == UQU:
			if i+2 >= len(src) {
				return i, errTruncated(i, b)
			}
			d.tally[evQuoteUnicode]++
			i++
		default:
			if i+1 >= len(src) {
				return i, errHalfUnit(i, b)
			}
		}
		d.out = append(d.out, uint16(src[i])<<8|uint16(src[i+1]))
		d.tally[evUnicodeUnit]++
	}
	return i - 1, nil
}
