package sniff

import (
	"github.com/simonhull/audiosniff/internal/binary"
	"github.com/simonhull/audiosniff/internal/types"
)

// ISO base media file (MP4) detection.
//
// A file starts with an ftyp box:
//
//	offset  value
//	     0  uint32 box size
//	     4  "ftyp"
//	     8  major brand
//	    12  minor version
//	    16  compatible brands...
const (
	ftypMinSize = 16

	boxFtyp = 0x66747970 // "ftyp"

	brandIsom = 0x69736F6D // "isom"
	brandIso2 = 0x69736F32 // "iso2"
	brandMSNV = 0x4D534E56 // "MSNV", Sony PSP MP4
	brandNDAS = 0x4E444153 // "NDAS", Nero Digital AAC audio

	// Three-character brand prefixes (brand >> 8); the fourth character
	// varies ("M4A ", "mp41", "mp42", ...).
	prefixM4A = 0x4D3441 // "M4A"
	prefixM4B = 0x4D3442 // "M4B"
	prefixMP4 = 0x6D7034 // "mp4"
)

// detectFtyp classifies an MP4-family container by its major brand.
func detectFtyp(buf []byte) types.Format {
	if len(buf) < ftypMinSize {
		return types.FormatUnknown
	}

	if box, ok := binary.BE32(buf, 4); !ok || box != boxFtyp {
		return types.FormatUnknown
	}

	brand, ok := binary.BE32(buf, 8)
	if !ok {
		return types.FormatUnknown
	}

	switch brand {
	case brandIsom, brandIso2, brandMSNV:
		return types.FormatMP4
	case brandNDAS:
		return types.FormatM4A
	}

	switch brand >> 8 {
	case prefixM4A:
		return types.FormatM4A
	case prefixM4B:
		return types.FormatM4B
	case prefixMP4:
		return types.FormatMP4
	}

	return types.FormatUnknown
}
