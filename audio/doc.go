// SPDX-License-Identifier: EPL-2.0

// Package audio defines the interfaces shared by the format decoders.
//
// # Source Interface
//
// Every decoder produces a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32 values, normally in [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// ReadSamples returns io.EOF once the stream is finished; the final call may
// return samples together with io.EOF.
//
// # Format Registry
//
// The registry maps format keys, normally file extensions, to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	registry.Register("aiff", aiff.Decoder{})
//
//	format, decoder, err := registry.ForFile("loop.AIFF")
//
// Lookups are case-insensitive and the registry is safe for concurrent use.
package audio
