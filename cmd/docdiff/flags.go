package main

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// AppFlags holds the parsed command line.
type AppFlags struct {
	LeftPath    string
	RightPath   string
	Mode        string
	ConfigFile  string
	Formats     []string
	OutputDir   string
	Watch       bool
	History     bool
	Export      bool
	ListHistory int
	LogLevel    string
}

// ParseFlags parses args (without the program name). Usage and errors are
// written to output.
func ParseFlags(args []string, output io.Writer) (AppFlags, error) {
	var flags AppFlags

	fs := pflag.NewFlagSet("docdiff", pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(output, "Usage: docdiff --left <file> --right <file> [options]")
		fs.PrintDefaults()
	}

	fs.StringVarP(&flags.LeftPath, "left", "l", "", "Path to the original document")
	fs.StringVarP(&flags.RightPath, "right", "r", "", "Path to the modified document")
	fs.StringVarP(&flags.Mode, "mode", "m", "", "Comparison mode: word, htmlBlock or markdownBlock (overrides config)")
	fs.StringVarP(&flags.ConfigFile, "config", "c", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	fs.StringSliceVarP(&flags.Formats, "format", "f", nil, "Report format: html, json or text (repeatable, overrides config)")
	fs.StringVarP(&flags.OutputDir, "output", "o", "", "Report output directory (overrides config)")
	fs.BoolVarP(&flags.Watch, "watch", "w", false, "Re-run the comparison whenever either document changes")
	fs.BoolVar(&flags.History, "history", false, "Record the comparison in the history database")
	fs.BoolVar(&flags.Export, "export", false, "Export the change index as a Parquet file")
	fs.IntVar(&flags.ListHistory, "list-history", 0, "Print the N most recent recorded comparisons and exit")
	fs.StringVar(&flags.LogLevel, "log-level", "", "Log level (overrides config)")

	if err := fs.Parse(args); err != nil {
		return flags, err
	}

	if flags.ListHistory < 0 {
		return flags, fmt.Errorf("--list-history must not be negative")
	}
	if flags.ListHistory == 0 && (flags.LeftPath == "" || flags.RightPath == "") {
		fs.Usage()
		return flags, fmt.Errorf("--left and --right are required")
	}
	return flags, nil
}
