// Package tagsize measures metadata tags that prefix audio payloads.
//
// Only the total length of a tag is computed; tag contents are never parsed.
// Malformed tags are reported as size 0, the same as no tag at all.
package tagsize

import (
	"bytes"
	"math"

	"github.com/simonhull/audiosniff/internal/binary"
)

const (
	// ID3MinSize is the number of bytes needed before any ID3 check runs.
	ID3MinSize = 10

	// ID3v1Size is the fixed length of an ID3v1 / ID3v1.1 tag.
	ID3v1Size = 128

	// ID3v2HeaderSize is the length of the ID3v2 header preceding the
	// synchsafe-sized tag body.
	ID3v2HeaderSize = 10

	// APEv2MinSize is the number of bytes needed to read an APEv2 size field.
	APEv2MinSize = 16

	// APEv2HeaderSize is the APEv2 header width, which the size field excludes.
	APEv2HeaderSize = 32
)

var (
	id3v1Magic = []byte("TAG")
	id3v2Magic = []byte("ID3")
	apev2Magic = []byte("APETAGEX")
)

// ID3v2 header layout:
//
//	offset  value
//	     0  "ID3"
//	     3  version major, version minor
//	     5  flags
//	     6  synchsafe uint32 tag body size
//	    10  tag body
const id3v2SizeOffset = 6

// APEv2 header layout: "APETAGEX", uint32 version, uint32 LE tag size
// (items + footer, excluding the header).
const apev2SizeOffset = 12

// Size returns the number of leading bytes of buf occupied by an ID3v1,
// ID3v2 or APEv2 tag, or 0 if buf does not start with a well-formed one.
//
// The result may exceed len(buf); callers must check before skipping.
func Size(buf []byte) int {
	if n := ID3Size(buf); n > 0 {
		return n
	}

	// APEv2 is normally a trailer, but some encoders prepend it.
	if n := APEv2Size(buf); n > 0 {
		return n
	}

	return 0
}

// ID3Size returns the total size of a leading ID3v1 or ID3v2 tag, or 0.
//
// An ID3v2 size field with any high bit set, or one that decodes to zero,
// yields 0.
func ID3Size(buf []byte) int {
	if len(buf) < ID3MinSize {
		return 0
	}

	// ID3v1 and ID3v1.1: flat 128 bytes.
	if bytes.HasPrefix(buf, id3v1Magic) {
		return ID3v1Size
	}

	if bytes.HasPrefix(buf, id3v2Magic) {
		inner, ok := binary.Synchsafe32(buf, id3v2SizeOffset)
		if ok && inner > 0 {
			return ID3v2HeaderSize + int(inner)
		}
	}

	return 0
}

// APEv2Size returns the total size of a leading APEv2 tag (header included),
// or 0.
func APEv2Size(buf []byte) int {
	if len(buf) < APEv2MinSize || !bytes.HasPrefix(buf, apev2Magic) {
		return 0
	}

	size, ok := binary.LE32(buf, apev2SizeOffset)
	if !ok {
		return 0
	}

	total := uint64(size) + APEv2HeaderSize
	if total > math.MaxInt {
		return math.MaxInt
	}
	return int(total)
}
