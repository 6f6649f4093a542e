// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"

	"github.com/go-audio/riff"
)

const (
	// MinHeaderSize is the size of the canonical 44-byte PCM WAV header.
	MinHeaderSize = 44

	riffPreambleSize = 12
	chunkHeaderSize  = 8
)

// Chunks holds the payload positions of the fmt and data chunks.
type Chunks struct {
	FmtOffset  int
	FmtSize    int
	DataOffset int
	DataSize   int
}

// Locate validates the RIFF/WAVE preamble and walks the chunk list from byte
// 12 until the first data chunk. Chunks following data are never inspected.
// An undersized fmt chunk is reported before a missing or empty data chunk.
func Locate(buf []byte) (Chunks, error) {
	if len(buf) < MinHeaderSize {
		return Chunks{}, newParseError(ErrTooShort, "length", int64(len(buf)), 0)
	}
	if !bytes.Equal(buf[0:4], riff.RiffID[:]) {
		return Chunks{}, newParseError(ErrInvalidRiffHeader, "", 0, 0)
	}
	if !bytes.Equal(buf[8:12], riff.WavFormatID[:]) {
		return Chunks{}, newParseError(ErrInvalidWaveHeader, "", 0, 8)
	}

	c := Chunks{FmtOffset: -1, DataOffset: -1}
	offset := riffPreambleSize

	for offset+chunkHeaderSize <= len(buf) {
		id := buf[offset : offset+4]
		size := int(binary.LittleEndian.Uint32(buf[offset+4 : offset+8]))
		payload := offset + chunkHeaderSize

		if size > len(buf)-payload {
			return Chunks{}, newParseError(ErrChunkOutOfBounds, string(id), int64(size), offset)
		}

		switch {
		case bytes.Equal(id, riff.FmtID[:]):
			if c.FmtOffset < 0 {
				c.FmtOffset = payload
				c.FmtSize = size
			}
		case bytes.Equal(id, riff.DataFormatID[:]):
			c.DataOffset = payload
			c.DataSize = size
		}

		if c.DataOffset >= 0 {
			break
		}

		// word aligned: odd payloads carry one pad byte
		offset = payload + size + size%2
	}

	if c.FmtOffset < 0 {
		return Chunks{}, newParseError(ErrMissingFmtChunk, "", 0, offset)
	}
	if c.FmtSize < minFmtSize {
		return Chunks{}, newParseError(ErrFmtChunkTooSmall, "fmtSize", int64(c.FmtSize), c.FmtOffset)
	}
	if c.DataOffset < 0 {
		return Chunks{}, newParseError(ErrMissingDataChunk, "", 0, offset)
	}
	if c.DataSize == 0 {
		return Chunks{}, newParseError(ErrEmptyDataChunk, "data", 0, c.DataOffset-chunkHeaderSize)
	}

	return c, nil
}
