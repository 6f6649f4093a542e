// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// MockSource generates interleaved float32 samples for tests.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	emitted     int // samples emitted so far, across channels
	chunk       int // max samples per ReadSamples call, 0 means unlimited
	waveform    func(frame int, channel int) float32
}

// NewMockSource creates a source of totalFrames frames whose values come
// from waveform.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewFramesSource replays fixed interleaved samples.
func NewFramesSource(sampleRate, channels int, interleaved []float32) *MockSource {
	return NewMockSource(sampleRate, channels, len(interleaved)/channels, func(frame int, channel int) float32 {
		return interleaved[frame*channels+channel]
	})
}

// NewSineSource creates a mock source that generates a sine wave on every channel.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// WithChunk limits every ReadSamples call to at most n samples, which
// exercises callers that must loop over short reads.
func (m *MockSource) WithChunk(n int) *MockSource {
	m.chunk = n
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() {
	m.emitted = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	total := m.totalFrames * m.channels
	if m.emitted >= total {
		return 0, io.EOF
	}

	n := min(len(dst), total-m.emitted)
	if m.chunk > 0 {
		n = min(n, m.chunk)
	}

	for i := range n {
		idx := m.emitted + i
		dst[i] = m.waveform(idx/m.channels, idx%m.channels)
	}
	m.emitted += n

	if m.emitted >= total {
		return n, io.EOF
	}

	return n, nil
}
