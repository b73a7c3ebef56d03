package audiosniff

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/audiosniff/internal/binary"
	"github.com/simonhull/audiosniff/internal/sniff"
)

// Result describes the detected format of a file or stream.
type Result struct {
	// Path of the file, or the label passed to DetectReader
	Path string

	// Total stream size in bytes
	Size int64

	// Detected format (FormatUnknown if unrecognized)
	Format Format

	// Bytes of leading ID3/APEv2 tag skipped before the payload (0 if none)
	TagSize int
}

// Extension returns the canonical extension of the detected format.
func (r Result) Extension() string {
	return r.Format.Extension()
}

// IsLossless reports whether the detected format is lossless.
func (r Result) IsLossless() bool {
	return r.Format.IsLossless()
}

// MIMEType returns the media type of the detected format.
func (r Result) MIMEType() string {
	return r.Format.MIMEType()
}

// DetectReader detects the format of a stream from its first bytes.
//
// At most the sniff window (SniffBufferSize by default) is read from r.
// An unrecognized stream returns FormatUnknown and a nil error unless
// WithStrictDetection is set. Errors are only returned for failed reads.
//
// Example:
//
//	res, err := audiosniff.DetectReader(bytes.NewReader(data), int64(len(data)), "upload")
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.Format, res.Extension())
func DetectReader(r io.ReaderAt, size int64, path string, opts ...Option) (Result, error) {
	return detectReader(r, size, path, applyOptions(opts))
}

func detectReader(r io.ReaderAt, size int64, path string, options *detectOptions) (Result, error) {
	sr := binary.NewSafeReader(r, size, path)

	head, err := sr.Head(options.sniffSize, "sniff window")
	if err != nil {
		return Result{}, err
	}

	format, tagSize := sniff.DetectWithTag(head)

	options.logger.Debug().
		Str("path", path).
		Int64("size", size).
		Int("window", len(head)).
		Int("tag_size", tagSize).
		Stringer("format", format).
		Msg("sniffed audio format")

	if options.strict && format == FormatUnknown {
		reason := "no known audio signature"
		if tagSize > len(head) {
			reason = fmt.Sprintf("leading tag of %d bytes exceeds sniff window of %d bytes", tagSize, len(head))
		}
		return Result{}, &UnsupportedFormatError{Path: path, Reason: reason}
	}

	return Result{
		Path:    path,
		Size:    size,
		Format:  format,
		TagSize: tagSize,
	}, nil
}

// DetectFile opens path and detects its format.
//
// Only the sniff window is read; the file is closed before returning.
func DetectFile(path string, opts ...Option) (Result, error) {
	return detectFile(path, applyOptions(opts))
}

func detectFile(path string, options *detectOptions) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return Result{}, fmt.Errorf("stat file: %w", err)
	}

	return detectReader(f, stat.Size(), path, options)
}

// DetectFileContext is DetectFile with a cancellation check before any I/O.
func DetectFileContext(ctx context.Context, path string, opts ...Option) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return DetectFile(path, opts...)
}

// DetectMany detects the format of multiple files concurrently.
//
// Files are read using up to runtime.NumCPU() goroutines (see
// WithConcurrency). Results are returned in the same order as the input
// paths. The first failure cancels the remaining work and is returned
// with a nil slice.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	results, err := audiosniff.DetectMany(ctx, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, r := range results {
//		fmt.Printf("%s: %s\n", r.Path, r.Format)
//	}
func DetectMany(ctx context.Context, paths []string, opts ...Option) ([]Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	options := applyOptions(opts)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(options.concurrency)

	results := make([]Result, len(paths))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			res, err := detectFile(path, options)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
