// Command share-audit checks the shares of one or more test cases against the polynomial
// interpolated from the first k shares of each case, and prints the reconstructed coefficients.
//
//	share-audit -in input.json [-mode auto|single|multi] [-arithmetic float|exact] [-archive out.cbor]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/taurusgroup/share-audit/pkg/audit"
	"github.com/taurusgroup/share-audit/pkg/document"
	"github.com/taurusgroup/share-audit/pkg/report"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "share-audit:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	config := audit.DefaultConfig()
	fs := flag.NewFlagSet("share-audit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&config.Input, "in", config.Input, "JSON document to read, - for stdin")
	fs.StringVar(&config.Mode, "mode", config.Mode, "test cases per document: auto, single or multi")
	fs.StringVar(&config.Arithmetic, "arithmetic", config.Arithmetic, "interpolation arithmetic: float or exact")
	fs.StringVar(&config.Archive, "archive", config.Archive, "write CBOR encoded results to this file")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := config.Validate(); err != nil {
		return err
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339}).
		Level(config.Level()).
		With().Timestamp().Logger()

	runner, err := config.NewRunner(logger)
	if err != nil {
		return err
	}

	in := stdin
	if config.Input != "-" {
		f, err := os.Open(config.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	docs, err := document.Parse(in, config.DocumentMode())
	if err != nil {
		return err
	}
	logger.Debug().Int("cases", len(docs)).Str("input", config.Input).Msg("document parsed")

	cases := runner.RunAll(docs)
	if err = report.NewWriter(stdout).WriteCases(cases); err != nil {
		return err
	}

	if config.Archive != "" {
		data, err := report.MarshalArchive(cases)
		if err != nil {
			return err
		}
		if err = os.WriteFile(config.Archive, data, 0o644); err != nil {
			return err
		}
		logger.Info().Str("path", config.Archive).Int("bytes", len(data)).Msg("archive written")
	}
	return nil
}
