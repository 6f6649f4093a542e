// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/wavepeaks/audio"
	"github.com/ik5/wavepeaks/internal/audiotest"
	"github.com/ik5/wavepeaks/waveform"
)

// mockAiffReader simulates the aiff.Decoder for testing
type mockAiffReader struct {
	sampleRate   int
	channels     int
	samples      []int
	offset       int
	returnErrors bool
}

func (m *mockAiffReader) Format() *goaudio.Format {
	return &goaudio.Format{
		SampleRate:  m.sampleRate,
		NumChannels: m.channels,
	}
}

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n

	if m.offset >= len(m.samples) {
		return n, io.EOF
	}

	return n, nil
}

func newTestSource(t *testing.T, bitDepth, channels int, samples []int) *source {
	t.Helper()

	scale, ok := fullScale(bitDepth)
	if !ok {
		t.Fatalf("fullScale(%d) not supported", bitDepth)
	}

	return &source{
		dec:        &mockAiffReader{sampleRate: 44100, channels: channels, samples: samples},
		sampleRate: 44100,
		channels:   channels,
		bitDepth:   bitDepth,
		scale:      scale,
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte("This is not AIFF data")))

	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte{}))

	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestDecoder_WAVInputRejected(t *testing.T) {
	t.Parallel()

	wavData := audiotest.MonoPCM16(8000, 0, 0.5, -0.5, 0)

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader(wavData))

	if !errors.Is(err, ErrNotAiffFile) {
		t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
	}
}

func TestDecoder_EncodedFile(t *testing.T) {
	t.Parallel()

	data := audiotest.EncodeAIFF(t, 22050, 16, 2, []int{0, 0, 16384, -16384, -32768, 32767})

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 22050 || src.Channels() != 2 {
		t.Fatalf("got %d Hz, %d channels; want 22050 Hz, 2 channels", src.SampleRate(), src.Channels())
	}

	dst := make([]float32, 16)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 6 {
		t.Fatalf("ReadSamples() n = %d, want 6", n)
	}

	want := []float32{0, 0, 0.5, -0.5, -1, 32767.0 / 32768.0}
	for i, w := range want {
		if diff := dst[i] - w; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("dst[%d] = %f, want %f", i, dst[i], w)
		}
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newTestSource(t, 24, 2, make([]int, 100))

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BitDepth() != 24 {
		t.Errorf("BitDepth() = %d, want 24", src.BitDepth())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}

	var _ audio.BitDepthSource = src
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := newTestSource(t, 16, 1, []int{0, 16384, -16384, 32767, -32768})

	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 5 {
		t.Fatalf("ReadSamples() n = %d, want 5", n)
	}

	expected := []float32{0, 0.5, -0.5, 32767.0 / 32768.0, -1}
	for i, want := range expected {
		if diff := dst[i] - want; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("dst[%d] = %f, want %f", i, dst[i], want)
		}
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := newTestSource(t, 16, 1, []int{1, 2, 3})

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}

func TestSource_ReadSamples_MultipleReads(t *testing.T) {
	t.Parallel()

	samples := make([]int, 10)
	for i := range samples {
		samples[i] = i * 1000
	}
	src := newTestSource(t, 16, 1, samples)

	dst := make([]float32, 4)
	total := 0
	for {
		n, err := src.ReadSamples(dst)
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if total != 10 {
		t.Errorf("read %d samples, want 10", total)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	src := newTestSource(t, 16, 1, nil)
	src.dec = &mockAiffReader{sampleRate: 44100, channels: 1, returnErrors: true}

	_, err := src.ReadSamples(make([]float32, 8))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSource_BufSize(t *testing.T) {
	t.Parallel()

	src := newTestSource(t, 16, 2, make([]int, 100))

	if got := src.BufSize(); got != 4096 {
		t.Errorf("BufSize() = %d, want 4096 (default)", got)
	}

	src.ReadSamples(make([]float32, 100))

	if got := src.BufSize(); got < 100 {
		t.Errorf("BufSize() = %d, want >= 100", got)
	}
}

func TestSource_BitDepthNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
		input    int
		expected float32
	}{
		{"8-bit max", 8, 127, 127.0 / 128.0},
		{"8-bit min", 8, -128, -1.0},
		{"16-bit max", 16, 32767, 32767.0 / 32768.0},
		{"16-bit min", 16, -32768, -1.0},
		{"24-bit", 24, 8388607, 8388607.0 / 8388608.0},
		{"24-bit min", 24, -8388608, -1.0},
		{"32-bit", 32, 2147483647, 2147483647.0 / 2147483648.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := newTestSource(t, tt.bitDepth, 1, []int{tt.input})

			dst := make([]float32, 1)
			n, _ := src.ReadSamples(dst)
			if n != 1 {
				t.Fatalf("ReadSamples() n = %d, want 1", n)
			}

			tolerance := float32(0.001)
			if dst[0] < tt.expected-tolerance || dst[0] > tt.expected+tolerance {
				t.Errorf("ReadSamples() dst[0] = %f, want ~%f", dst[0], tt.expected)
			}
		})
	}
}

func TestSource_Summarize(t *testing.T) {
	t.Parallel()

	// 8 stereo frames of 24-bit data, left channel rising, right falling
	samples := make([]int, 0, 16)
	for i := range 8 {
		v := i * 1048576 // 2^20
		samples = append(samples, v, -v)
	}
	src := newTestSource(t, 24, 2, samples)

	ov, err := waveform.SummarizeSource(src, waveform.Options{SourceName: "loop.aiff", Resolution: 4})
	if err != nil {
		t.Fatalf("SummarizeSource() error = %v", err)
	}

	if ov.BitsPerSample != 24 {
		t.Errorf("BitsPerSample = %d, want 24", ov.BitsPerSample)
	}
	if ov.BucketCount() != 4 {
		t.Fatalf("BucketCount() = %d, want 4", ov.BucketCount())
	}

	// last bucket holds frames 6 and 7: |7*2^20| / 2^23 = 0.875
	if got := ov.Peaks[3]; got < 0.874 || got > 0.876 {
		t.Errorf("Peaks[3] = %f, want 0.875", got)
	}
	if got := ov.MinValues[3]; got > -0.874 || got < -0.876 {
		t.Errorf("MinValues[3] = %f, want -0.875", got)
	}
}

func TestErrors_IsComparison(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"ErrNotAiffFile matches itself", ErrNotAiffFile, ErrNotAiffFile, true},
		{"ErrNotAiffFile doesn't match ErrUnsupportedBitDepth", ErrNotAiffFile, ErrUnsupportedBitDepth, false},
		{"ErrUnsupportedBitDepth matches itself", ErrUnsupportedBitDepth, ErrUnsupportedBitDepth, true},
		{"ErrUnsupportedAiffLayout matches itself", ErrUnsupportedAiffLayout, ErrUnsupportedAiffLayout, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if errors.Is(tt.err, tt.target) != tt.want {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, !tt.want, tt.want)
			}
		})
	}
}

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err     error
		message string
	}{
		{ErrNotAiffFile, "not an AIFF file"},
		{ErrUnsupportedBitDepth, "unsupported AIFF bit depth"},
		{ErrUnsupportedAiffLayout, "unsupported AIFF layout"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			if tt.err.Error() != tt.message {
				t.Errorf("Error message = %q, want %q", tt.err.Error(), tt.message)
			}
		})
	}
}

func TestFullScale(t *testing.T) {
	t.Parallel()

	for _, bits := range []int{8, 16, 24, 32} {
		if _, ok := fullScale(bits); !ok {
			t.Errorf("fullScale(%d) ok = false, want true", bits)
		}
	}
	for _, bits := range []int{0, 12, 20, 64} {
		if _, ok := fullScale(bits); ok {
			t.Errorf("fullScale(%d) ok = true, want false", bits)
		}
	}
}

// Benchmarks

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int, 4096)
	for i := range samples {
		samples[i] = (i % 200) * 100
	}
	dst := make([]float32, 1024)

	b.ReportAllocs()

	for b.Loop() {
		src := &source{
			dec:        &mockAiffReader{sampleRate: 44100, channels: 2, samples: samples},
			sampleRate: 44100,
			channels:   2,
			bitDepth:   16,
			scale:      1.0 / 32768.0,
		}
		for {
			_, err := src.ReadSamples(dst)
			if err != nil {
				break
			}
		}
	}
}
