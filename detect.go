package audiosniff

import (
	"github.com/simonhull/audiosniff/internal/sniff"
	"github.com/simonhull/audiosniff/internal/tagsize"
)

// SniffBufferSize is the recommended number of leading bytes to pass to
// Detect. Shorter buffers are fine; detection degrades to FormatUnknown when
// there is not enough data.
const SniffBufferSize = sniff.BufferSize

// Detect returns the audio format of the bytes at the start of a file.
//
// A leading ID3v1, ID3v2 or APEv2 tag is skipped before the payload is
// examined. Detect never fails: truncated, malformed or unrecognized input
// yields FormatUnknown. buf is not modified or retained.
//
// Example:
//
//	head := make([]byte, audiosniff.SniffBufferSize)
//	n, _ := io.ReadFull(f, head)
//	switch audiosniff.Detect(head[:n]) {
//	case audiosniff.FormatFLAC:
//		...
//	}
func Detect(buf []byte) Format {
	return sniff.Detect(buf)
}

// IsRecognized reports whether Detect(buf) is not FormatUnknown.
func IsRecognized(buf []byte) bool {
	return Detect(buf) != FormatUnknown
}

// DetectExtension returns ExtensionFor(Detect(buf)).
func DetectExtension(buf []byte) string {
	return ExtensionFor(Detect(buf))
}

// TagSize returns the number of leading bytes occupied by an ID3v1, ID3v2 or
// APEv2 tag, or 0 when buf does not start with a well-formed tag.
//
// The returned size may exceed len(buf).
func TagSize(buf []byte) int {
	return tagsize.Size(buf)
}
