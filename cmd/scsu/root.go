package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// globalFlags are shared by all sub-commands.
type globalFlags struct {
	In      string // input file, - for stdin
	Out     string // output file, - for stdout
	Format  string // representation of SCSU data: raw or hex
	Verbose bool
}

func newRootCmd() *cobra.Command {
	var flags globalFlags
	rootCmd := &cobra.Command{
		Use:   "scsu",
		Short: "Standard Compression Scheme for Unicode",
		Long: `scsu compresses Unicode text with SCSU (Unicode Technical Standard #6)
and expands it again. Text written in a small script, like Greek, Cyrillic or
Kana, needs about one byte per character.

Compressed data is read and written as raw bytes or as hex dump (--format hex).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flags.Format != "raw" && flags.Format != "hex" {
				return fmt.Errorf("unknown format %q, use raw or hex", flags.Format)
			}
			SetLogger(newConsoleLogger(flags.Verbose))
			return nil
		},
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.In, "in", "i", "-", "input file (- for stdin)")
	pf.StringVarP(&flags.Out, "out", "o", "-", "output file (- for stdout)")
	pf.StringVarP(&flags.Format, "format", "f", "raw", "format of SCSU data: raw|hex")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "log details to stderr")

	rootCmd.AddCommand(newEncodeCmd(&flags))
	rootCmd.AddCommand(newDecodeCmd(&flags))
	rootCmd.AddCommand(newStatsCmd(&flags))
	rootCmd.AddCommand(newWindowsCmd())
	rootCmd.AddCommand(newFilenameCmd())
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	err := newRootCmd().Execute()
	_ = Logger().Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func readInput(cmd *cobra.Command, flags *globalFlags) ([]byte, error) {
	if flags.In == "" || flags.In == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(flags.In)
}

func writeOutput(cmd *cobra.Command, flags *globalFlags, data []byte) error {
	if flags.Out == "" || flags.Out == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	return os.WriteFile(flags.Out, data, 0o644)
}

// readSCSU reads compressed input. Hex dumps may contain white space.
func readSCSU(cmd *cobra.Command, flags *globalFlags) ([]byte, error) {
	data, err := readInput(cmd, flags)
	if err != nil || flags.Format != "hex" {
		return data, err
	}
	data, err = hex.DecodeString(strings.Join(strings.Fields(string(data)), ""))
	if err != nil {
		return nil, fmt.Errorf("input is not a hex dump: %w", err)
	}
	return data, nil
}

func writeSCSU(cmd *cobra.Command, flags *globalFlags, data []byte) error {
	if flags.Format == "hex" {
		data = []byte(hex.EncodeToString(data) + "\n")
	}
	return writeOutput(cmd, flags, data)
}
