package scsu

// Tag bytes of single-byte mode.
const (
	SQ0 byte = 0x01 // quote from window 0
	SQ1 byte = 0x02
	SQ2 byte = 0x03
	SQ3 byte = 0x04
	SQ4 byte = 0x05
	SQ5 byte = 0x06
	SQ6 byte = 0x07
	SQ7 byte = 0x08 // quote from window 7

	SDX byte = 0x0B // define a window with an extended (21 bit) offset
	SRS byte = 0x0C // reserved

	SQU byte = 0x0E // quote a single UTF-16 code unit
	SCU byte = 0x0F // switch to Unicode mode

	SC0 byte = 0x10 // select window 0
	SC1 byte = 0x11
	SC2 byte = 0x12
	SC3 byte = 0x13
	SC4 byte = 0x14
	SC5 byte = 0x15
	SC6 byte = 0x16
	SC7 byte = 0x17 // select window 7

	SD0 byte = 0x18 // define and select window 0
	SD1 byte = 0x19
	SD2 byte = 0x1A
	SD3 byte = 0x1B
	SD4 byte = 0x1C
	SD5 byte = 0x1D
	SD6 byte = 0x1E
	SD7 byte = 0x1F // define and select window 7
)

// Tag bytes of Unicode mode. They are recognized in the high byte position
// of a 2-byte unit only.
const (
	UC0 byte = 0xE0 // select window 0 and return to single-byte mode
	UC1 byte = 0xE1
	UC2 byte = 0xE2
	UC3 byte = 0xE3
	UC4 byte = 0xE4
	UC5 byte = 0xE5
	UC6 byte = 0xE6
	UC7 byte = 0xE7

	UD0 byte = 0xE8 // define and select window 0, return to single-byte mode
	UD1 byte = 0xE9
	UD2 byte = 0xEA
	UD3 byte = 0xEB
	UD4 byte = 0xEC
	UD5 byte = 0xED
	UD6 byte = 0xEE
	UD7 byte = 0xEF

	UQU byte = 0xF0 // quote a code unit colliding with a tag byte
	UDX byte = 0xF1 // define a window with an extended offset
	URS byte = 0xF2 // reserved
)

// Window position codes of define tags.
const (
	gapThreshold   = 0x68   // codes below map to code<<7
	gapOffset      = 0xAC00 // added to code<<7 for codes in [gapThreshold, reservedStart)
	reservedStart  = 0xA8   // codes in [reservedStart, fixedThreshold) are invalid
	fixedThreshold = 0xF9   // codes from here on select a fixed offset
)

// tagClass is the role of a byte in single-byte mode.
type tagClass uint8

const (
	classLiteral tagClass = iota
	classQuote
	classSelect
	classDefine
	classDefineExtended
	classQuoteUnicode
	classSwitchUnicode
	classReserved
)

// classify returns the single-byte mode role of b. Literals cover ASCII,
// NUL, TAB, CR, LF and all bytes 0x80..0xFF.
func classify(b byte) tagClass {
	switch {
	case b >= SQ0 && b <= SQ7:
		return classQuote
	case b >= SC0 && b <= SC7:
		return classSelect
	case b >= SD0 && b <= SD7:
		return classDefine
	case b == SDX:
		return classDefineExtended
	case b == SQU:
		return classQuoteUnicode
	case b == SCU:
		return classSwitchUnicode
	case b == SRS:
		return classReserved
	}
	return classLiteral
}
