// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

type intEncoder interface {
	Write(buf *goaudio.IntBuffer) error
	Close() error
}

// EncodeWAV writes integer PCM through the go-audio WAV encoder and returns
// the file contents. data is interleaved and already scaled to bitDepth.
func EncodeWAV(tb testing.TB, sampleRate, bitDepth, channels int, data []int) []byte {
	tb.Helper()

	return encode(tb, "fixture.wav", sampleRate, bitDepth, channels, data, func(f *os.File) intEncoder {
		return gowav.NewEncoder(f, sampleRate, bitDepth, channels, 1)
	})
}

// EncodeAIFF is EncodeWAV for the go-audio AIFF encoder.
func EncodeAIFF(tb testing.TB, sampleRate, bitDepth, channels int, data []int) []byte {
	tb.Helper()

	return encode(tb, "fixture.aiff", sampleRate, bitDepth, channels, data, func(f *os.File) intEncoder {
		return goaiff.NewEncoder(f, sampleRate, bitDepth, channels)
	})
}

// The encoders need an io.WriteSeeker, so fixtures go through tb.TempDir.
func encode(tb testing.TB, name string, sampleRate, bitDepth, channels int, data []int, newEncoder func(*os.File) intEncoder) []byte {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		tb.Fatalf("create fixture: %v", err)
	}

	enc := newEncoder(f)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		tb.Fatalf("encode fixture: %v", err)
	}
	if err := enc.Close(); err != nil {
		tb.Fatalf("close encoder: %v", err)
	}
	if err := f.Close(); err != nil {
		tb.Fatalf("close fixture: %v", err)
	}

	out, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("read fixture: %v", err)
	}
	return out
}

// ValidWAV reports whether the go-audio decoder accepts b as a WAV file.
func ValidWAV(b []byte) bool {
	return gowav.NewDecoder(bytes.NewReader(b)).IsValidFile()
}
