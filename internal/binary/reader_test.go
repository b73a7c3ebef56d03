package binary

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/simonhull/audiosniff/internal/types"
)

// mockReader implements io.ReaderAt for testing.
type mockReader struct {
	data []byte
}

func (m *mockReader) ReadAt(p []byte, off int64) (n int, err error) {
	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n = copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// failingReader always returns the configured error.
type failingReader struct {
	err error
}

func (f *failingReader) ReadAt(p []byte, off int64) (int, error) {
	return 0, f.err
}

func TestSafeReader_ReadAt_Success(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	mock := &mockReader{data: data}
	sr := NewSafeReader(mock, int64(len(data)), "test.mp3")

	buf := make([]byte, 2)
	err := sr.ReadAt(buf, 0, "test read")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if buf[0] != 0x01 || buf[1] != 0x02 {
		t.Errorf("expected [0x01, 0x02], got [0x%02x, 0x%02x]", buf[0], buf[1])
	}
}

func TestSafeReader_ReadAt_OutOfBounds(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	mock := &mockReader{data: data}
	sr := NewSafeReader(mock, int64(len(data)), "test.mp3")

	tests := []struct {
		name   string
		offset int64
		length int
	}{
		{name: "offset past end", offset: 10, length: 2},
		{name: "read crosses end", offset: 3, length: 2},
		{name: "negative offset", offset: -1, length: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sr.ReadAt(make([]byte, tt.length), tt.offset, "out of bounds read")
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var oob *types.OutOfBoundsError
			if !errors.As(err, &oob) {
				t.Fatalf("expected *types.OutOfBoundsError, got %T", err)
			}

			errMsg := err.Error()
			if !strings.Contains(errMsg, "test.mp3") {
				t.Errorf("error should contain filename: %v", errMsg)
			}
			if !strings.Contains(errMsg, "out of bounds read") {
				t.Errorf("error should contain context: %v", errMsg)
			}
		})
	}
}

func TestSafeReader_ReadAt_UnderlyingError(t *testing.T) {
	sentinel := errors.New("disk on fire")
	sr := NewSafeReader(&failingReader{err: sentinel}, 100, "broken.flac")

	err := sr.ReadAt(make([]byte, 4), 0, "magic")
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped sentinel error, got %v", err)
	}
}

func TestSafeReader_ReadAt_ShortRead(t *testing.T) {
	// Declared size is larger than the data actually available.
	sr := NewSafeReader(&mockReader{data: []byte{0x01, 0x02}}, 10, "truncated.wav")

	err := sr.ReadAt(make([]byte, 4), 0, "magic")
	if err == nil {
		t.Fatal("expected short read error")
	}
	if !strings.Contains(err.Error(), "short read") {
		t.Errorf("error should mention short read: %v", err)
	}
}

func TestSafeReader_Head(t *testing.T) {
	data := []byte("OggS\x00\x02\x00\x00")
	sr := NewSafeReader(&mockReader{data: data}, int64(len(data)), "test.ogg")

	tests := []struct {
		name string
		n    int
		want string
	}{
		{name: "window smaller than stream", n: 4, want: "OggS"},
		{name: "window larger than stream", n: 4096, want: string(data)},
		{name: "zero window", n: 0, want: ""},
		{name: "negative window", n: -5, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sr.Head(tt.n, "sniff window")
			if err != nil {
				t.Fatalf("Head(%d) error = %v", tt.n, err)
			}
			if string(got) != tt.want {
				t.Errorf("Head(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func TestSafeReader_Head_Empty(t *testing.T) {
	sr := NewSafeReader(&mockReader{}, 0, "empty.bin")

	got, err := sr.Head(4096, "sniff window")
	if err != nil {
		t.Fatalf("Head() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Head() returned %d bytes for empty stream", len(got))
	}
	if sr.Size() != 0 || sr.Path() != "empty.bin" {
		t.Errorf("accessors = (%d, %q)", sr.Size(), sr.Path())
	}
}
