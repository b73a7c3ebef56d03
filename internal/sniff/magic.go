package sniff

import "github.com/simonhull/audiosniff/internal/types"

// Four-byte file signatures, read big-endian from the start of the payload.
const (
	magicFLAC = 0x664C6143 // "fLaC"
	magicOggS = 0x4F676753 // "OggS"
	magicFRM8 = 0x46524D38 // "FRM8", DSDIFF
	magicRIFF = 0x52494646 // "RIFF"
	magicMAC  = 0x4D414320 // "MAC ", Monkey's Audio
	magicASF  = 0x3026B275 // first word of the ASF header GUID (WMA/WMV)
)

// magics maps exact signatures to formats. Read-only after init.
var magics = map[uint32]types.Format{
	magicFLAC: types.FormatFLAC,
	magicOggS: types.FormatOGG,
	magicFRM8: types.FormatDFF,
	magicRIFF: types.FormatWAV,
	magicMAC:  types.FormatAPE,
	magicASF:  types.FormatWMA,
}

// Frame-sync masks. ADTS (AAC) is 12 sync bits followed by the MPEG
// version bit (don't care) and a 2-bit layer that is always 0; MPEG audio
// frames only guarantee 11 sync bits.
const (
	aacSyncMask = 0xFFF60000
	aacSyncWant = 0xFFF00000

	mp3SyncMask = 0xFFE00000
	mp3SyncWant = 0xFFE00000
)

// isAAC reports whether word starts with an ADTS frame header.
func isAAC(word uint32) bool {
	return word&aacSyncMask == aacSyncWant
}

// isMP3 reports whether word starts with an MPEG audio frame sync.
//
// Every ADTS header also matches, so isAAC must be checked first.
func isMP3(word uint32) bool {
	return word&mp3SyncMask == mp3SyncWant
}
