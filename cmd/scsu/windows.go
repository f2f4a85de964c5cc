package main

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/derekparker/trie"
	"github.com/spf13/cobra"

	"github.com/npillmayer/scsu"
)

func newWindowsCmd() *cobra.Command {
	var char string
	cmd := &cobra.Command{
		Use:   "windows [prefix]",
		Short: "List the predefined windows",
		Long: `windows lists the static windows, the initial positions of the dynamic
windows and the fixed offsets. A prefix selects windows by any word of their
name, --char finds the window containing a character.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var ww []scsu.WindowInfo
			switch {
			case char != "":
				ch, err := parseCodePoint(char)
				if err != nil {
					return err
				}
				w, ok := scsu.WindowFor(ch)
				if !ok {
					fmt.Fprintf(out, "no predefined window contains U+%04X\n", ch)
					return nil
				}
				ww = append(ww, w)
			case len(args) == 1:
				ww = windowsByName(args[0])
			default:
				ww = scsu.Windows()
			}
			for _, w := range ww {
				fmt.Fprintln(out, w)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&char, "char", "", "character, literally or as U+XXXX")
	return cmd
}

// windowIndex maps every word-initial suffix of the lower-cased window names
// to the windows carrying that name.
var windowIndex = sync.OnceValue(func() *trie.Trie {
	byKey := make(map[string][]scsu.WindowInfo)
	for _, w := range scsu.Windows() {
		name := strings.ToLower(w.Name)
		for i := 0; i < len(name); i++ {
			if i == 0 || name[i-1] == ' ' || name[i-1] == '-' {
				byKey[name[i:]] = append(byKey[name[i:]], w)
			}
		}
	}
	t := trie.New()
	for key, ww := range byKey {
		t.Add(key, ww)
	}
	return t
})

func windowsByName(prefix string) []scsu.WindowInfo {
	t := windowIndex()
	var found []scsu.WindowInfo
	for _, key := range t.PrefixSearch(strings.ToLower(prefix)) {
		node, ok := t.Find(key)
		if !ok {
			continue
		}
		for _, w := range node.Meta().([]scsu.WindowInfo) {
			if !slices.Contains(found, w) {
				found = append(found, w)
			}
		}
	}
	slices.SortFunc(found, func(a, b scsu.WindowInfo) int {
		if a.Kind != b.Kind {
			return cmp.Compare(a.Kind, b.Kind)
		}
		return cmp.Compare(a.Index, b.Index)
	})
	return found
}

// parseCodePoint accepts U+XXXX, 0xXXXX or a single character.
func parseCodePoint(s string) (rune, error) {
	upper := strings.ToUpper(s)
	if hexDigits, ok := strings.CutPrefix(upper, "U+"); ok {
		return parseHexCodePoint(hexDigits)
	}
	if hexDigits, ok := strings.CutPrefix(upper, "0X"); ok {
		return parseHexCodePoint(hexDigits)
	}
	if utf8.RuneCountInString(s) == 1 {
		ch, _ := utf8.DecodeRuneInString(s)
		if ch != utf8.RuneError {
			return ch, nil
		}
	}
	return 0, fmt.Errorf("cannot read %q as a character", s)
}

func parseHexCodePoint(s string) (rune, error) {
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil || n > utf8.MaxRune {
		return 0, fmt.Errorf("invalid code point %q", s)
	}
	return rune(n), nil
}
