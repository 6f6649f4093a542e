// SPDX-License-Identifier: EPL-2.0

// Package wav parses RIFF/WAVE files held entirely in memory.
//
// The package is split along the steps of a parse:
//   - Locate walks the RIFF chunk list and finds the fmt and data chunks
//   - ParseFormat validates the fmt chunk and derives the frame count
//   - ParseHeader combines both and guarantees that every sample is in bounds
//   - DecodeSample turns one sample into a normalized float
//
// # Supported Formats
//
//   - Integer PCM (format 1) at 8, 16, 24 and 32 bits
//   - IEEE float (format 3) at 32 bits
//   - Any channel count and sample rate
//
// Compressed codecs and WAVE_FORMAT_EXTENSIBLE headers are rejected with
// ErrUnsupportedFormat.
//
// # Decoding WAV Files
//
// For a summary of the whole file use the waveform package. To read the
// samples themselves, wrap the buffer in a Source:
//
//	data, _ := os.ReadFile("audio.wav")
//	source, err := wav.NewSource(data)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Writing WAV Files
//
// WritePCM produces a canonical file at any supported depth:
//
//	f := wav.WriteFormat{SampleRate: 8000, Channels: 1, BitsPerSample: 16}
//	err := wav.WritePCM(file, f, []float64{0, 0.5, -0.5})
//
// # Error Handling
//
// Every failure is a *ParseError whose Kind is one of the Err* sentinels:
//
//	_, err := wav.ParseHeader(data)
//	if errors.Is(err, wav.ErrTooShort) {
//	    fmt.Println("not enough bytes for a WAV header")
//	}
//
// A parse never recovers partially: any structural problem aborts it.
package wav
