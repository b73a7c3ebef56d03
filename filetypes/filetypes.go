// Package filetypes registers audiosniff's detectors with
// github.com/h2non/filetype.
//
// After Register, filetype.Match reports audiosniff's verdict for any buffer
// audiosniff recognizes, including MP3s behind ID3 tags and formats
// filetype does not know (DSDIFF, WMA, M4B).
//
// Register also replaces filetype's descriptors for the extensions audiosniff
// shares with it (wav, mp3, flac, ...) so GetType agrees with the matchers.
// Importing this package alone changes nothing in filetype.
//
// Registered matchers take precedence over filetype's built-ins. Since
// audiosniff classifies every RIFF file as WAV and every ISO "isom" file as
// MP4, Register also makes filetype report WEBP and AVI as "wav", and
// isom-branded video as "mp4". Call Match instead of Register when that
// matters; it consults audiosniff first and falls back to filetype without
// touching the global registry.
package filetypes

import (
	"sync"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"

	"github.com/simonhull/audiosniff"
)

var (
	registerOnce sync.Once
	byFormat     = buildTypes()
)

func buildTypes() map[audiosniff.Format]types.Type {
	m := make(map[audiosniff.Format]types.Type)
	for _, f := range audiosniff.Formats() {
		m[f] = types.Type{Extension: f.Extension(), MIME: types.NewMIME(f.MIMEType())}
	}
	return m
}

// TypeFor returns the filetype descriptor of f, or filetype.Unknown.
func TypeFor(f audiosniff.Format) types.Type {
	if !f.IsKnown() {
		return filetype.Unknown
	}
	return byFormat[f]
}

// Register adds a filetype type and matcher for every audiosniff format.
// It is safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		for _, f := range audiosniff.Formats() {
			f := f
			t := filetype.AddType(f.Extension(), f.MIMEType())
			filetype.AddMatcher(t, func(buf []byte) bool {
				return audiosniff.Detect(buf) == f
			})
		}
	})
}

// Match returns the audiosniff type of buf when it is recognized audio,
// otherwise whatever filetype's own matchers report.
func Match(buf []byte) types.Type {
	if f := audiosniff.Detect(buf); f != audiosniff.FormatUnknown {
		return byFormat[f]
	}

	t, _ := filetype.Match(buf)
	return t
}
