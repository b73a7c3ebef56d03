// Command audiosniff prints the audio container format of each file named on
// the command line.
//
// Usage:
//
//	audiosniff [-config file] [-json] [-strict] [-sniff-size n] [-j n]
//	           [-log-level level] [-version] <files...>
//
// Text output is one tab-separated line per file:
//
//	path	format	extension	lossless|lossy	mime
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"github.com/simonhull/audiosniff"
	"github.com/simonhull/audiosniff/filetypes"
	"github.com/simonhull/audiosniff/internal/config"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// record is one line of -json output.
type record struct {
	Path      string `json:"path"`
	Size      int64  `json:"size"`
	Format    string `json:"format"`
	Extension string `json:"extension"`
	Lossless  bool   `json:"lossless"`
	MIME      string `json:"mime"`
	TagSize   int    `json:"tag_size,omitempty"`
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("audiosniff", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: audiosniff [flags] <files...>")
		fs.PrintDefaults()
	}

	var (
		configPath = fs.String("config", "", "YAML configuration file")
		jsonOut    = fs.Bool("json", false, "print one JSON object per file")
		strict     = fs.Bool("strict", false, "treat unrecognized files as errors")
		sniffSize  = fs.Int("sniff-size", audiosniff.SniffBufferSize, "leading bytes read from each file")
		jobs       = fs.Int("j", 0, "files read concurrently (0 = number of CPUs)")
		logLevel   = fs.String("log-level", "info", "log level (trace, debug, info, warn, error, disabled)")
		version    = fs.Bool("version", false, "print version and exit")
	)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if *version {
		fmt.Fprintln(stdout, audiosniff.GetVersionInfo())
		return exitOK
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "audiosniff: %v\n", err)
			return exitUsage
		}
		cfg = loaded
	}

	// Flags given on the command line win over the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "json":
			if *jsonOut {
				cfg.Output = config.OutputJSON
			} else {
				cfg.Output = config.OutputText
			}
		case "strict":
			cfg.Strict = *strict
		case "sniff-size":
			cfg.SniffSize = *sniffSize
		case "j":
			cfg.Concurrency = *jobs
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "audiosniff: %v\n", err)
		return exitUsage
	}

	paths := fs.Args()
	if len(paths) == 0 {
		fs.Usage()
		return exitUsage
	}

	level, _ := cfg.Level()
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()

	opts := []audiosniff.Option{
		audiosniff.WithSniffSize(cfg.SniffSize),
		audiosniff.WithConcurrency(cfg.Concurrency),
		audiosniff.WithLogger(logger),
	}
	if cfg.Strict {
		opts = append(opts, audiosniff.WithStrictDetection())
	}

	results, err := audiosniff.DetectMany(ctx, paths, opts...)
	if err != nil {
		logger.Error().Err(err).Msg("detection failed")
		return exitError
	}

	enc := json.NewEncoder(stdout)
	for _, res := range results {
		rec := describe(res, cfg.SniffSize, logger)

		if cfg.Output == config.OutputJSON {
			if err := enc.Encode(rec); err != nil {
				logger.Error().Err(err).Msg("write output")
				return exitError
			}
			continue
		}

		quality := "lossy"
		if rec.Lossless {
			quality = "lossless"
		}
		fmt.Fprintf(stdout, "%s\t%s\t%s\t%s\t%s\n", rec.Path, rec.Format, rec.Extension, quality, rec.MIME)
	}

	return exitOK
}

// describe builds the output record for res. Files audiosniff does not
// recognize are offered to filetype's general-purpose matchers so the MIME
// column still says something useful about images, archives and the like.
func describe(res audiosniff.Result, window int, logger zerolog.Logger) record {
	rec := record{
		Path:      res.Path,
		Size:      res.Size,
		Format:    res.Format.String(),
		Extension: res.Extension(),
		Lossless:  res.IsLossless(),
		MIME:      res.MIMEType(),
		TagSize:   res.TagSize,
	}

	if res.Format != audiosniff.FormatUnknown {
		return rec
	}

	if window <= 0 {
		window = audiosniff.SniffBufferSize
	}
	head, err := readHead(res.Path, window)
	if err != nil {
		logger.Debug().Err(err).Str("path", res.Path).Msg("filetype fallback skipped")
		return rec
	}
	if t := filetypes.Match(head); t.MIME.Value != "" {
		rec.MIME = t.MIME.Value
	}
	return rec
}

func readHead(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, n)
	read, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return buf[:read], nil
}
