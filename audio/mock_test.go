// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// silentSource emits a fixed number of zero samples.
type silentSource struct {
	sampleRate int
	channels   int
	remaining  int
}

func newSilentSource(sampleRate, channels, frames int) *silentSource {
	return &silentSource{sampleRate: sampleRate, channels: channels, remaining: frames * channels}
}

func (s *silentSource) SampleRate() int { return s.sampleRate }
func (s *silentSource) Channels() int   { return s.channels }
func (s *silentSource) BufSize() int    { return 4096 }
func (s *silentSource) Close() error    { return nil }

func (s *silentSource) ReadSamples(dst []float32) (int, error) {
	if s.remaining == 0 {
		return 0, io.EOF
	}

	n := min(len(dst), s.remaining)
	clear(dst[:n])
	s.remaining -= n

	if s.remaining == 0 {
		return n, io.EOF
	}
	return n, nil
}
