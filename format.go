package audiosniff

import (
	"github.com/simonhull/audiosniff/internal/types"
)

// Format is an alias to types.Format.
// Re-exporting from internal/types to maintain public API.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown = types.FormatUnknown

	FormatOGG = types.FormatOGG
	FormatAAC = types.FormatAAC
	FormatMP3 = types.FormatMP3
	FormatM4A = types.FormatM4A
	FormatM4B = types.FormatM4B
	FormatMP4 = types.FormatMP4
	FormatWMA = types.FormatWMA

	FormatFLAC = types.FormatFLAC
	FormatDFF  = types.FormatDFF
	FormatWAV  = types.FormatWAV
	FormatAPE  = types.FormatAPE
)

// FallbackExtension is the extension reported for FormatUnknown.
const FallbackExtension = types.FallbackExtension

// Formats returns every format Detect can report, excluding FormatUnknown.
func Formats() []Format {
	return types.Formats()
}

// ExtensionFor returns the canonical lowercase extension (without a dot) for f.
//
// FormatUnknown and any unmapped value yield FallbackExtension ("bin").
func ExtensionFor(f Format) string {
	return f.Extension()
}

// IsLossless reports whether f is a lossless format.
func IsLossless(f Format) bool {
	return f.IsLossless()
}
