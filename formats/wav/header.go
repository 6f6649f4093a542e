// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

// Header is a fully validated WAV header. Sample frames start at DataOffset
// and are BlockAlign bytes apart.
type Header struct {
	Format
	DataOffset int
}

// ParseHeader locates and validates the fmt and data chunks of buf. A nil
// error guarantees that every sample of every frame can be decoded from buf
// without reading out of bounds.
func ParseHeader(buf []byte) (Header, error) {
	c, err := Locate(buf)
	if err != nil {
		return Header{}, err
	}

	f, err := ParseFormat(buf[c.FmtOffset:c.FmtOffset+c.FmtSize], c.DataSize)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Offset += c.FmtOffset
		}
		return Header{}, err
	}

	if !SupportedBitDepth(f.BitsPerSample) {
		return Header{}, newParseError(ErrUnsupportedBitDepth, "bitsPerSample", int64(f.BitsPerSample), c.FmtOffset+14)
	}

	h := Header{Format: f, DataOffset: c.DataOffset}

	// blockAlign is trusted as declared, so a value smaller than one full
	// frame can push the final samples past the end of the buffer
	if end := h.sampleEnd(); end > len(buf) {
		return Header{}, newParseError(ErrChunkOutOfBounds, "blockAlign", int64(f.BlockAlign), c.FmtOffset+12)
	}

	return h, nil
}

// DurationSeconds is FrameCount / SampleRate.
func (h Header) DurationSeconds() float64 {
	return float64(h.FrameCount) / float64(h.SampleRate)
}

// sampleEnd is one past the last byte read when decoding the final channel
// of the final frame.
func (h Header) sampleEnd() int {
	bps := h.BytesPerSample()
	return h.DataOffset + (h.FrameCount-1)*h.BlockAlign + h.ChannelCount*bps
}
