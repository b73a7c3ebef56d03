// Package audiosniff identifies audio file formats from their leading bytes.
//
// audiosniff answers "what kind of audio file is this?" before a caller picks
// a decoder, tag editor or importer. It inspects magic numbers and frame-sync
// patterns only; no audio is decoded and no tag contents are parsed.
//
// # Quick Start
//
// Detecting a buffer already in memory:
//
//	format := audiosniff.Detect(head)
//	fmt.Println(format, audiosniff.ExtensionFor(format))
//
// Detecting a file on disk:
//
//	res, err := audiosniff.DetectFile("upload.tmp")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%s (.%s, lossless=%v)\n", res.Format, res.Extension(), res.IsLossless())
//
// # Supported Formats
//
// Lossy:
//
//   - Ogg ("OggS")
//   - AAC (ADTS frame sync)
//   - MP3 (MPEG audio frame sync)
//   - M4A, M4B, MP4 (ISO base media "ftyp" major brand)
//   - WMA (ASF header GUID)
//
// Lossless:
//
//   - FLAC ("fLaC")
//   - DSDIFF ("FRM8")
//   - WAV ("RIFF")
//   - Monkey's Audio ("MAC ")
//
// # Leading Tags
//
// Files often begin with metadata rather than audio. Before matching
// signatures, Detect skips a leading ID3v1 tag (128 bytes), ID3v2 tag (10
// byte header plus synchsafe size) or APEv2 tag (32 byte header plus
// declared size). A tag whose size field is malformed is ignored. A tag
// that claims to be larger than the buffer makes the buffer undetectable.
//
// # Error Handling
//
// Detect, IsRecognized and DetectExtension are total: every input yields a
// Format, with FormatUnknown covering noise, truncation and corruption alike.
// The file and reader helpers return errors only for I/O failures, unless
// WithStrictDetection is used to make FormatUnknown an error too.
//
// # Concurrency
//
// All functions are safe for concurrent use. DetectMany sniffs many files in
// parallel:
//
//	results, err := audiosniff.DetectMany(ctx, paths,
//	    audiosniff.WithConcurrency(8),
//	)
//
// # Integration
//
// The filetypes subpackage registers every format with
// github.com/h2non/filetype so existing filetype.Match callers pick up
// audiosniff's detection.
package audiosniff
