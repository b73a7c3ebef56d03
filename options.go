package audiosniff

import (
	"runtime"

	"github.com/rs/zerolog"
)

// Option configures file and reader detection.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	res, err := audiosniff.DetectFile("song.bin",
//	    audiosniff.WithSniffSize(64*1024),
//	    audiosniff.WithStrictDetection(),
//	)
type Option func(*detectOptions)

// detectOptions holds configuration for detection.
type detectOptions struct {
	sniffSize   int            // Leading bytes read from each stream
	strict      bool           // Unknown format is an error
	concurrency int            // DetectMany goroutine limit
	logger      zerolog.Logger // Debug trace of detections
}

// defaultOptions returns the default configuration.
func defaultOptions() *detectOptions {
	return &detectOptions{
		sniffSize:   SniffBufferSize,
		strict:      false,
		concurrency: runtime.NumCPU(),
		logger:      zerolog.Nop(),
	}
}

func applyOptions(opts []Option) *detectOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithSniffSize sets how many leading bytes are read from each stream.
//
// A leading tag larger than the window makes the stream undetectable, so
// raise this when files carry large embedded artwork in ID3v2 tags.
// Values <= 0 keep the default of SniffBufferSize.
func WithSniffSize(n int) Option {
	return func(o *detectOptions) {
		if n > 0 {
			o.sniffSize = n
		}
	}
}

// WithStrictDetection turns an unrecognized stream into an error.
//
// By default an unrecognized stream is reported as FormatUnknown with a nil
// error. With strict detection enabled, DetectReader and friends return
// *UnsupportedFormatError instead.
func WithStrictDetection() Option {
	return func(o *detectOptions) {
		o.strict = true
	}
}

// WithConcurrency limits how many files DetectMany reads at once.
//
// Values <= 0 keep the default of runtime.NumCPU().
func WithConcurrency(n int) Option {
	return func(o *detectOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithLogger sets the logger used to trace detections at debug level.
//
// The default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *detectOptions) {
		o.logger = logger
	}
}
