package types

import "fmt"

// LosslessMask is the bit set on every lossless Format value.
const LosslessMask Format = 1 << 5

// Format represents the detected audio format.
//
// Values are stable: the lossless bit is part of the value itself, so
// IsLossless never needs a lookup.
type Format uint32

const (
	// FormatUnknown represents an unknown or unsupported format.
	FormatUnknown Format = 0

	// Lossy formats.

	// FormatOGG represents Ogg container files (Vorbis, Opus, ...).
	FormatOGG Format = 1
	// FormatAAC represents raw AAC ADTS streams.
	FormatAAC Format = 2
	// FormatMP3 represents MPEG audio layer III streams.
	FormatMP3 Format = 3
	// FormatM4A represents iTunes-style MPEG-4 audio files.
	FormatM4A Format = 4
	// FormatM4B represents MPEG-4 audiobook files.
	FormatM4B Format = 5
	// FormatMP4 represents generic MPEG-4 containers.
	FormatMP4 Format = 6
	// FormatWMA represents Windows Media Audio (ASF) files.
	FormatWMA Format = 7

	// Lossless formats.

	// FormatFLAC represents FLAC audio files.
	FormatFLAC Format = LosslessMask | 1
	// FormatDFF represents DSDIFF (Direct Stream Digital) files.
	FormatDFF Format = LosslessMask | 2
	// FormatWAV represents RIFF WAVE files.
	FormatWAV Format = LosslessMask | 3
	// FormatAPE represents Monkey's Audio files.
	FormatAPE Format = LosslessMask | 5
)

// FallbackExtension is returned by Extension for Unknown and unmapped values.
const FallbackExtension = "bin"

// FallbackMIMEType is returned by MIMEType for Unknown and unmapped values.
const FallbackMIMEType = "application/octet-stream"

type formatInfo struct {
	name string
	ext  string
	mime string
}

var formatTable = map[Format]formatInfo{
	FormatUnknown: {"Unknown", FallbackExtension, FallbackMIMEType},
	FormatOGG:     {"Ogg", "ogg", "audio/ogg"},
	FormatAAC:     {"AAC", "aac", "audio/aac"},
	FormatMP3:     {"MP3", "mp3", "audio/mpeg"},
	FormatM4A:     {"M4A", "m4a", "audio/mp4"},
	FormatM4B:     {"M4B", "m4b", "audio/mp4"},
	FormatMP4:     {"MP4", "mp4", "video/mp4"},
	FormatWMA:     {"WMA", "wma", "audio/x-ms-wma"},
	FormatFLAC:    {"FLAC", "flac", "audio/flac"},
	FormatDFF:     {"DSDIFF", "dff", "audio/x-dff"},
	FormatWAV:     {"WAV", "wav", "audio/wav"},
	FormatAPE:     {"Monkey's Audio", "ape", "audio/ape"},
}

// formats lists every recognized format in declaration order.
var formats = []Format{
	FormatOGG, FormatAAC, FormatMP3, FormatM4A, FormatM4B, FormatMP4, FormatWMA,
	FormatFLAC, FormatDFF, FormatWAV, FormatAPE,
}

// Formats returns all recognized formats, excluding FormatUnknown.
//
// The returned slice is a copy and may be modified by the caller.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// String returns the display name of the format.
func (f Format) String() string {
	if info, ok := formatTable[f]; ok {
		return info.name
	}
	return fmt.Sprintf("Format(%d)", uint32(f))
}

// Extension returns the canonical lowercase file extension, without the dot.
//
// FormatUnknown and any value not in the table return FallbackExtension.
func (f Format) Extension() string {
	if info, ok := formatTable[f]; ok {
		return info.ext
	}
	return FallbackExtension
}

// MIMEType returns the media type commonly used for the format.
func (f Format) MIMEType() string {
	if info, ok := formatTable[f]; ok {
		return info.mime
	}
	return FallbackMIMEType
}

// IsLossless reports whether the format carries the lossless bit.
func (f Format) IsLossless() bool {
	return f&LosslessMask != 0
}

// IsKnown reports whether f is one of the recognized formats.
func (f Format) IsKnown() bool {
	if f == FormatUnknown {
		return false
	}
	_, ok := formatTable[f]
	return ok
}
