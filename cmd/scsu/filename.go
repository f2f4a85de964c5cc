package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/npillmayer/scsu/filename"
)

type filenameFlags struct {
	Encoding string // base32, base64 or base32768
	Huffman  bool
}

func newFilenameCmd() *cobra.Command {
	var flags filenameFlags
	cmd := &cobra.Command{
		Use:   "filename",
		Short: "Store text compactly in file names",
	}
	codec := func() (*filename.Codec, error) {
		enc, err := filename.ParseEncoding(flags.Encoding)
		if err != nil {
			return nil, err
		}
		return filename.New(filename.Options{Encoding: enc, Huffman: flags.Huffman}), nil
	}
	encodeCmd := &cobra.Command{
		Use:   "encode <name>...",
		Short: "Encode names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := codec()
			if err != nil {
				return err
			}
			for _, name := range args {
				encoded, err := c.Encode(name)
				if err != nil {
					return fmt.Errorf("%q: %w", name, err)
				}
				Logger().Debug("encoded file name",
					zap.String("name", name),
					zap.Int("name_bytes", len(name)),
					zap.Int("encoded_bytes", len(encoded)))
				fmt.Fprintln(cmd.OutOrStdout(), encoded)
			}
			return nil
		},
	}
	decodeCmd := &cobra.Command{
		Use:   "decode <encoded>...",
		Short: "Decode names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := codec()
			if err != nil {
				return err
			}
			for _, encoded := range args {
				name, err := c.Decode(encoded)
				if err != nil {
					return fmt.Errorf("%q: %w", encoded, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&flags.Encoding, "encoding", "base32", "file name encoding: base32|base64|base32768")
	encodeCmd.Flags().BoolVar(&flags.Huffman, "huffman", false, "add a Huffman stage if it makes names shorter")
	cmd.AddCommand(encodeCmd, decodeCmd)
	return cmd
}
