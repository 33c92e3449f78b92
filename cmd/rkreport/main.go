// Command rkreport searches a set of example texts with the Rabin-Karp
// matcher, prints a summary line per example and writes a CSV report with the
// matches and the time every search took.
//
// Usage:
//
//	rkreport [-o file.csv] [-config config.json] [-units Bytes|UTF16|Runes] [-v]
//
// The optional JSON configuration may contain the hash options, the code
// unit and the examples:
//
//	{
//	  "Options": {"Base": 257, "Modulus": 1000000007},
//	  "Unit": "UTF16",
//	  "Examples": [{"Text": "abracadabra", "Pattern": "abra"}]
//	}
//
// Without examples the built-in short, medium and long examples are used.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/ulikunitz/rabinkarp"
	"github.com/ulikunitz/rabinkarp/report"
)

const defaultOutput = "matches_with_metrics.csv"

// config is the content of the configuration file.
type config struct {
	Options  rabinkarp.Options  `json:",omitzero"`
	Unit     rabinkarp.CodeUnit `json:",omitzero"`
	Examples []report.Example   `json:",omitempty"`
}

func readConfig(path string) (*config, error) {
	cfg := &config{}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("rkreport", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		output  = fs.String("o", defaultOutput, "CSV output `file`")
		cfgPath = fs.String("config", "", "JSON configuration `file`")
		verbose = fs.Bool("v", false, "log debug messages")
		unit    = rabinkarp.Bytes
	)
	fs.TextVar(&unit, "units", rabinkarp.Bytes,
		"code units to search: Bytes, UTF16 or Runes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments %q", fs.Args())
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr,
		&slog.HandlerOptions{Level: level}))

	cfg, err := readConfig(*cfgPath)
	if err != nil {
		return err
	}
	unitSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "units" {
			unitSet = true
		}
	})
	if !unitSet && cfg.Unit != 0 {
		unit = cfg.Unit
	}
	examples := cfg.Examples
	if len(examples) == 0 {
		examples = report.DefaultExamples()
	}

	m, err := cfg.Options.NewMatcher()
	if err != nil {
		return err
	}
	opts := m.Options()
	log.Debug("matcher configured",
		"base", opts.Base, "modulus", opts.Modulus,
		"unit", unit, "examples", len(examples))

	results, err := report.Run(ctx, m, unit, examples)
	if err != nil {
		return err
	}
	for i := range results {
		r := &results[i]
		fmt.Fprintln(stdout, r.Summary())
		log.Debug("search done", "pattern", r.Pattern,
			"textLen", r.TextLen, "matches", len(r.Matches),
			"elapsed", r.Elapsed)
	}

	if err = report.WriteFile(*output, results); err != nil {
		return err
	}
	log.Info("report written", "file", *output, "rows", len(results))
	return nil
}

// exitCode maps the error returned by run to the exit status. A help
// request is not a failure.
func exitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	default:
		return 1
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	code := exitCode(err)
	if code != 0 {
		slog.Error("rkreport failed", "err", err)
	}
	os.Exit(code)
}
