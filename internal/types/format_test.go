package types

import (
	"strings"
	"testing"
)

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatOGG, "ogg"},
		{FormatAAC, "aac"},
		{FormatMP3, "mp3"},
		{FormatM4A, "m4a"},
		{FormatM4B, "m4b"},
		{FormatMP4, "mp4"},
		{FormatWMA, "wma"},
		{FormatFLAC, "flac"},
		{FormatDFF, "dff"},
		{FormatWAV, "wav"},
		{FormatAPE, "ape"},
		{FormatUnknown, "bin"},
		{Format(0x1F), "bin"},
		{LosslessMask | 0x1F, "bin"},
	}

	for _, tc := range tests {
		if got := tc.format.Extension(); got != tc.want {
			t.Errorf("%v.Extension() = %q, want %q", tc.format, got, tc.want)
		}
	}
}

func TestFormat_IsLossless(t *testing.T) {
	lossless := map[Format]bool{
		FormatFLAC: true,
		FormatDFF:  true,
		FormatWAV:  true,
		FormatAPE:  true,
	}

	for _, f := range Formats() {
		if got := f.IsLossless(); got != lossless[f] {
			t.Errorf("%v.IsLossless() = %v, want %v", f, got, lossless[f])
		}
	}

	if FormatUnknown.IsLossless() {
		t.Error("FormatUnknown.IsLossless() = true, want false")
	}
	if !(LosslessMask | 0x1F).IsLossless() {
		t.Error("unmapped value with lossless bit should report lossless")
	}
}

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatUnknown, "Unknown"},
		{FormatOGG, "Ogg"},
		{FormatDFF, "DSDIFF"},
		{FormatAPE, "Monkey's Audio"},
		{Format(99), "Format(99)"},
	}

	for _, tc := range tests {
		if got := tc.format.String(); got != tc.want {
			t.Errorf("Format(%d).String() = %q, want %q", uint32(tc.format), got, tc.want)
		}
	}
}

func TestFormat_MIMEType(t *testing.T) {
	for _, f := range Formats() {
		mime := f.MIMEType()
		if mime == FallbackMIMEType {
			t.Errorf("%v.MIMEType() returned fallback", f)
		}
		if !strings.Contains(mime, "/") {
			t.Errorf("%v.MIMEType() = %q, not a media type", f, mime)
		}
	}

	if got := Format(99).MIMEType(); got != FallbackMIMEType {
		t.Errorf("Format(99).MIMEType() = %q, want %q", got, FallbackMIMEType)
	}
}

func TestFormats(t *testing.T) {
	all := Formats()
	if len(all) != 11 {
		t.Fatalf("Formats() returned %d formats, want 11", len(all))
	}

	seenExt := make(map[string]Format)
	for _, f := range all {
		if !f.IsKnown() {
			t.Errorf("%v.IsKnown() = false", f)
		}
		ext := f.Extension()
		if prev, dup := seenExt[ext]; dup {
			t.Errorf("extension %q shared by %v and %v", ext, prev, f)
		}
		seenExt[ext] = f
	}

	// Mutating the result must not affect later calls.
	all[0] = FormatUnknown
	if Formats()[0] != FormatOGG {
		t.Error("Formats() returned shared backing array")
	}

	if FormatUnknown.IsKnown() {
		t.Error("FormatUnknown.IsKnown() = true")
	}
}

func TestUnsupportedFormatError_Error(t *testing.T) {
	err := &UnsupportedFormatError{Path: "noise.bin", Reason: "no known signature"}
	msg := err.Error()
	for _, substr := range []string{"noise.bin", "unsupported format", "no known signature"} {
		if !strings.Contains(msg, substr) {
			t.Errorf("error message %q should contain %q", msg, substr)
		}
	}
}
