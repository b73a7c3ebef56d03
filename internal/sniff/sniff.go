// Package sniff classifies audio payloads by their leading bytes.
//
// Detection never decodes audio and never fails: anything that cannot be
// classified, including truncated or malformed input, is FormatUnknown.
// All functions are pure and safe for concurrent use.
package sniff

import (
	"github.com/simonhull/audiosniff/internal/binary"
	"github.com/simonhull/audiosniff/internal/tagsize"
	"github.com/simonhull/audiosniff/internal/types"
)

// BufferSize is the recommended number of leading bytes to sniff.
const BufferSize = 4096

// Detect returns the audio format of buf.
func Detect(buf []byte) types.Format {
	format, _ := DetectWithTag(buf)
	return format
}

// DetectWithTag returns the audio format of buf and the number of leading
// tag bytes skipped before the payload was examined.
//
// When a tag declares a size larger than buf, the format is Unknown and the
// declared size is still returned.
func DetectWithTag(buf []byte) (types.Format, int) {
	skip := tagsize.Size(buf)
	if skip > len(buf) {
		return types.FormatUnknown, skip
	}
	return detectPayload(buf[skip:]), skip
}

// detectPayload classifies buf, which must already be past any leading tag.
func detectPayload(buf []byte) types.Format {
	if word, ok := binary.BE32(buf, 0); ok {
		if format, found := magics[word]; found {
			return format
		}

		// Frame-based codecs have no file header, only per-frame sync.
		if isAAC(word) {
			return types.FormatAAC
		}
		if isMP3(word) {
			return types.FormatMP3
		}
	}

	return detectFtyp(buf)
}
