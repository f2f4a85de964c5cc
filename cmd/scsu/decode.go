package main

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/npillmayer/scsu/charset"
)

type decodeFlags struct {
	To      string // character set of the output text
	Replace bool   // replace characters the output character set lacks
}

func newDecodeCmd(g *globalFlags) *cobra.Command {
	var flags decodeFlags
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Expand SCSU to text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readSCSU(cmd, g)
			if err != nil {
				return err
			}
			text, err := charset.SCSU.NewDecoder().Bytes(data)
			if err != nil {
				return err
			}
			out, err := toCharset(text, flags.To, flags.Replace)
			if err != nil {
				return err
			}
			Logger().Debug("decoded text",
				zap.String("to", flags.To),
				zap.Int("scsu_bytes", len(data)),
				zap.Int("text_bytes", len(out)))
			return writeOutput(cmd, g, out)
		},
	}
	cmd.Flags().StringVar(&flags.To, "to", "utf-8",
		"character set of the output: "+strings.Join(charset.Names(), ", "))
	cmd.Flags().BoolVar(&flags.Replace, "replace", false,
		"replace characters which the output character set cannot represent")
	return cmd
}
