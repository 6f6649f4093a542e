// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files so they
// can be summarized by waveform.SummarizeSource just like WAV files.
//
// # Supported Formats
//
//   - Uncompressed AIFF
//   - 8, 16, 24 and 32-bit integer PCM
//   - Any channel count and sample rate
//
// # Decoding AIFF Files
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aif")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	ov, err := waveform.SummarizeSource(source, waveform.Options{SourceName: "audio.aif"})
//
// Samples are normalized by the full scale of their bit depth, the same way
// the WAV decoder treats integer PCM.
//
// # Error Handling
//
//   - ErrNotAiffFile: The input is not a valid AIFF file
//   - ErrUnsupportedBitDepth: Sample width is not 8, 16, 24 or 32 bits
//   - ErrUnsupportedAiffLayout: Missing or invalid format information
//
// # AIFF vs. WAV
//
// AIFF is similar to WAV but:
//   - Uses big-endian byte order (WAV uses little-endian)
//   - Stores sample rate as 80-bit float (WAV uses 32-bit int)
//   - Both are uncompressed PCM formats
package aiff
