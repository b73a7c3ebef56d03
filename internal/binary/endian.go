package binary

import "encoding/binary"

// Endianness represents byte order for multi-byte values.
type Endianness int

const (
	// BigEndian uses big-endian byte order.
	// Used by: magic numbers, MP4 ftyp boxes, ID3v2 headers.
	BigEndian Endianness = iota

	// LittleEndian uses little-endian byte order.
	// Used by: APEv2 tag headers.
	LittleEndian
)

// Uint32At reads a 32-bit value at off with the given byte order.
//
// ok is false when fewer than 4 bytes are available at off; b is never
// indexed out of range.
func Uint32At(b []byte, off int, endian Endianness) (v uint32, ok bool) {
	if off < 0 || off > len(b)-4 {
		return 0, false
	}
	p := b[off : off+4]
	if endian == LittleEndian {
		return binary.LittleEndian.Uint32(p), true
	}
	return binary.BigEndian.Uint32(p), true
}

// BE32 reads a big-endian uint32 at off.
//
// This is a convenience wrapper for Uint32At with BigEndian.
//
// Example:
//
//	magic, ok := binary.BE32(buf, 0)
func BE32(b []byte, off int) (uint32, bool) {
	return Uint32At(b, off, BigEndian)
}

// LE32 reads a little-endian uint32 at off.
//
// This is a convenience wrapper for Uint32At with LittleEndian.
//
// Example:
//
//	size, ok := binary.LE32(buf, 12)
func LE32(b []byte, off int) (uint32, bool) {
	return Uint32At(b, off, LittleEndian)
}

// Synchsafe32 decodes the ID3v2 28-bit "synchsafe" integer stored in the
// 4 bytes at off.
//
// Each byte contributes its low 7 bits, most significant first. ok is false
// when fewer than 4 bytes are available or when any byte has its high bit
// set, which a well-formed synchsafe integer never does. A valid encoding of
// zero returns (0, true).
func Synchsafe32(b []byte, off int) (v uint32, ok bool) {
	raw, ok := BE32(b, off)
	if !ok || raw&0x80808080 != 0 {
		return 0, false
	}
	return (raw&0x7F000000)>>3 |
		(raw&0x007F0000)>>2 |
		(raw&0x00007F00)>>1 |
		(raw & 0x0000007F), true
}
