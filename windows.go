package scsu

import "fmt"

// WindowKind tells the tables of windows apart.
type WindowKind int

const (
	StaticWindow  WindowKind = iota // reachable by quote tags, never moves
	DynamicWindow                   // initial position of a dynamic window
	FixedWindow                     // offset a define tag may refer to by a single position code
)

func (k WindowKind) String() string {
	switch k {
	case StaticWindow:
		return "static"
	case DynamicWindow:
		return "dynamic"
	case FixedWindow:
		return "fixed"
	}
	return fmt.Sprintf("WindowKind(%d)", int(k))
}

// WindowInfo describes one of the predefined windows.
type WindowInfo struct {
	Kind   WindowKind
	Index  int  // window number, or index into the fixed offsets
	Offset rune // first code point of the window
	Name   string
}

// Contains is true if ch lies in the window.
func (w WindowInfo) Contains(ch rune) bool {
	return inWindow(ch, w.Offset)
}

// Code is the position code of a define tag for a fixed window, 0 otherwise.
func (w WindowInfo) Code() byte {
	if w.Kind != FixedWindow {
		return 0
	}
	return byte(w.Index) + fixedThreshold
}

func (w WindowInfo) String() string {
	return fmt.Sprintf("%s %d: U+%04X..U+%04X %s", w.Kind, w.Index, w.Offset, w.Offset+windowSize-1, w.Name)
}

var staticNames = [8]string{
	"Basic Latin",
	"Latin-1 Supplement",
	"Latin Extended-A",
	"Combining Diacritical Marks",
	"General Punctuation",
	"Currency Symbols",
	"Letterlike Symbols",
	"CJK Symbols and Punctuation",
}

var dynamicNames = [8]string{
	"Latin-1 Supplement",
	"Latin-1 Letters",
	"Cyrillic",
	"Arabic",
	"Devanagari",
	"Hiragana",
	"Katakana",
	"Fullwidth Forms",
}

var fixedNames = [7]string{
	"Latin-1 Letters",
	"IPA Extensions",
	"Greek",
	"Armenian",
	"Hiragana",
	"Katakana",
	"Halfwidth Katakana",
}

// Windows lists the static windows, the initial dynamic windows and the
// fixed offsets, in this order.
func Windows() []WindowInfo {
	ww := make([]WindowInfo, 0, len(staticOffset)+len(initialDynamicOffset)+len(fixedOffset))
	for i, offset := range staticOffset {
		ww = append(ww, WindowInfo{Kind: StaticWindow, Index: i, Offset: offset, Name: staticNames[i]})
	}
	for i, offset := range initialDynamicOffset {
		ww = append(ww, WindowInfo{Kind: DynamicWindow, Index: i, Offset: offset, Name: dynamicNames[i]})
	}
	for i, offset := range fixedOffset {
		ww = append(ww, WindowInfo{Kind: FixedWindow, Index: i, Offset: offset, Name: fixedNames[i]})
	}
	return ww
}

// WindowFor returns the first predefined window containing ch, searching the
// initial dynamic windows first, then the static windows, then the fixed
// offsets. Static window 0 is never reported, it is used for quoting tag
// bytes only.
func WindowFor(ch rune) (WindowInfo, bool) {
	ww := Windows()
	for _, kind := range []WindowKind{DynamicWindow, StaticWindow, FixedWindow} {
		for _, w := range ww {
			if w.Kind != kind || (kind == StaticWindow && w.Index == 0) {
				continue
			}
			if w.Contains(ch) {
				return w, true
			}
		}
	}
	return WindowInfo{}, false
}
