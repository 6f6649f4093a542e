// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/ik5/wavepeaks/audio"
)

type wavSource struct {
	buf    []byte
	header Header
	decode SampleFunc
	frame  int // next frame to emit
	ch     int // next channel within frame
}

func (s *wavSource) SampleRate() int { return s.header.SampleRate }
func (s *wavSource) Channels() int   { return s.header.ChannelCount }
func (s *wavSource) BufSize() int    { return 4096 }
func (s *wavSource) Close() error    { return nil }
func (s *wavSource) BitDepth() int   { return s.header.BitsPerSample }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if s.frame >= s.header.FrameCount {
		return 0, io.EOF
	}

	h := s.header
	bps := h.BytesPerSample()
	n := 0

	for n < len(dst) && s.frame < h.FrameCount {
		off := h.DataOffset + s.frame*h.BlockAlign + s.ch*bps
		dst[n] = float32(s.decode(s.buf, off))
		n++

		s.ch++
		if s.ch == h.ChannelCount {
			s.ch = 0
			s.frame++
		}
	}

	if s.frame >= h.FrameCount {
		return n, io.EOF
	}

	return n, nil
}

// Decoder reads a whole WAV file into memory and exposes its samples as an
// audio.Source of interleaved float32 values.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	return NewSource(buf)
}

// NewSource parses buf and returns a Source over its sample frames. buf must
// not be modified while the source is in use.
func NewSource(buf []byte) (audio.Source, error) {
	h, err := ParseHeader(buf)
	if err != nil {
		return nil, err
	}

	decode, err := SampleDecoder(h.BitsPerSample, h.AudioFormat)
	if err != nil {
		return nil, err
	}

	return &wavSource{buf: buf, header: h, decode: decode}, nil
}
