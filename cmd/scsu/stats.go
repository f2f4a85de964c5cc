package main

import (
	"bytes"
	"fmt"
	"io"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/npillmayer/scsu"
	"github.com/npillmayer/scsu/corpus"
)

type statsFlags struct {
	Text    bool   // input is text to compress first
	Samples bool   // input is a sample file, report every sample
	From    string // character set of text input
}

func newStatsCmd(g *globalFlags) *cobra.Command {
	var flags statsFlags
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show how an SCSU stream uses tags and windows",
		Long: `stats decodes SCSU input and counts its tags. With --text the input is
text, which is compressed first. With --samples the input is a sample file
(comments start with %, \message{...} names the collection) and every line is
compressed and reported on its own.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if flags.Samples {
				text, err := readText(cmd, g, flags.From)
				if err != nil {
					return err
				}
				return sampleStats(out, text)
			}
			var data []byte
			var err error
			if flags.Text {
				var text []byte
				if text, err = readText(cmd, g, flags.From); err != nil {
					return err
				}
				data, err = scsu.EncodeString(string(text))
			} else {
				data, err = readSCSU(cmd, g)
			}
			if err != nil {
				return err
			}
			stats, err := scsu.Analyze(data)
			if err != nil {
				return err
			}
			return printStats(out, stats)
		},
	}
	cmd.Flags().BoolVar(&flags.Text, "text", false, "input is text instead of SCSU")
	cmd.Flags().BoolVar(&flags.Samples, "samples", false, "input is a sample file (implies --text)")
	cmd.Flags().StringVar(&flags.From, "from", "utf-8", "character set of text input")
	return cmd
}

func printStats(w io.Writer, s scsu.Stats) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "bytes\t%d\n", s.Bytes)
	fmt.Fprintf(tw, "code units\t%d\n", s.CodeUnits)
	fmt.Fprintf(tw, "ratio\t%.3f\n", s.Ratio())
	fmt.Fprintf(tw, "literals\t%d\n", s.Literals)
	fmt.Fprintf(tw, "quotes\t%d\n", s.Quotes)
	fmt.Fprintf(tw, "selects\t%d\n", s.Selects)
	fmt.Fprintf(tw, "defines\t%d\n", s.Defines)
	fmt.Fprintf(tw, "extended defines\t%d\n", s.ExtendedDefines)
	fmt.Fprintf(tw, "unicode switches\t%d\n", s.UnicodeSwitches)
	fmt.Fprintf(tw, "unicode quotes\t%d\n", s.UnicodeQuotes)
	fmt.Fprintf(tw, "unicode units\t%d\n", s.UnicodeUnits)
	fmt.Fprintf(tw, "tag bytes\t%d\n", s.TagBytes())
	return tw.Flush()
}

// sampleStats compresses every sample of a sample file and prints one line
// per sample, followed by the total.
func sampleStats(w io.Writer, text []byte) error {
	r := corpus.NewReader(bytes.NewReader(text))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "utf-8\tutf-16\tscsu\tratio\ttags\tsample")
	var total scsu.Stats
	var totalUTF8, n int
	for {
		sample, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		encoded, err := scsu.EncodeString(sample)
		if err != nil {
			return err
		}
		s, err := scsu.Analyze(encoded)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%.2f\t%d\t%s\n",
			len(sample), 2*s.CodeUnits, s.Bytes, s.Ratio(), s.TagBytes(), abbreviate(sample, 32))
		total.Bytes += s.Bytes
		total.CodeUnits += s.CodeUnits
		totalUTF8 += len(sample)
		n++
	}
	name := r.Identifier()
	if name == "" {
		name = "total"
	}
	fmt.Fprintf(tw, "%d\t%d\t%d\t%.2f\t\t%s (%d samples)\n",
		totalUTF8, 2*total.CodeUnits, total.Bytes, total.Ratio(), name, n)
	Logger().Debug("sample statistics", zap.String("collection", name), zap.Int("samples", n))
	return tw.Flush()
}

func abbreviate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}
