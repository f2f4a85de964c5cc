package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/unicode/norm"

	"github.com/npillmayer/scsu/charset"
)

type encodeFlags struct {
	From      string // character set of the input text
	Normalize string // normalization form applied before compression
}

func newEncodeCmd(g *globalFlags) *cobra.Command {
	var flags encodeFlags
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Compress text to SCSU",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, g, flags.From)
			if err != nil {
				return err
			}
			if text, err = normalize(text, flags.Normalize); err != nil {
				return err
			}
			encoded, err := charset.SCSU.NewEncoder().Bytes(text)
			if err != nil {
				return err
			}
			Logger().Debug("encoded text",
				zap.String("from", flags.From),
				zap.Int("text_bytes", len(text)),
				zap.Int("scsu_bytes", len(encoded)))
			return writeSCSU(cmd, g, encoded)
		},
	}
	cmd.Flags().StringVar(&flags.From, "from", "utf-8",
		"character set of the input: "+strings.Join(charset.Names(), ", "))
	cmd.Flags().StringVar(&flags.Normalize, "normalize", "",
		"Unicode normalization before compression: nfc, nfd, nfkc or nfkd")
	return cmd
}

// readText reads the input and converts it from character set from to UTF-8.
func readText(cmd *cobra.Command, g *globalFlags, from string) ([]byte, error) {
	cs, err := charset.Lookup(from)
	if err != nil {
		return nil, err
	}
	if cs.Encoding == charset.SCSU {
		return nil, fmt.Errorf("input is SCSU already, use decode")
	}
	data, err := readInput(cmd, g)
	if err != nil {
		return nil, err
	}
	return cs.Encoding.NewDecoder().Bytes(data)
}

// toCharset converts UTF-8 text to character set to. Characters the target
// cannot represent are an error, or replaced if replace is set.
func toCharset(text []byte, to string, replace bool) ([]byte, error) {
	cs, err := charset.Lookup(to)
	if err != nil {
		return nil, err
	}
	if cs.Encoding == charset.SCSU {
		return nil, fmt.Errorf("output would be SCSU again, use encode")
	}
	enc := cs.Encoding.NewEncoder()
	if replace {
		enc = encoding.ReplaceUnsupported(enc)
	}
	return enc.Bytes(text)
}

func normalize(text []byte, form string) ([]byte, error) {
	switch strings.ToLower(form) {
	case "", "none":
		return text, nil
	case "nfc":
		return norm.NFC.Bytes(text), nil
	case "nfd":
		return norm.NFD.Bytes(text), nil
	case "nfkc":
		return norm.NFKC.Bytes(text), nil
	case "nfkd":
		return norm.NFKD.Bytes(text), nil
	}
	return nil, fmt.Errorf("unknown normalization form %q", form)
}
