// SPDX-License-Identifier: EPL-2.0

package wav

import "encoding/binary"

// Format codes accepted in the fmt chunk.
const (
	FormatPCM       = 1
	FormatIEEEFloat = 3
)

const minFmtSize = 16

// Format is the subset of the fmt chunk this package interprets, plus the
// frame count derived from the data chunk size.
type Format struct {
	AudioFormat   int
	ChannelCount  int
	SampleRate    int
	BlockAlign    int
	BitsPerSample int
	FrameCount    int
}

// ParseFormat validates a fmt chunk payload. dataSize is the data chunk
// payload size, used to derive FrameCount.
func ParseFormat(payload []byte, dataSize int) (Format, error) {
	if len(payload) < minFmtSize {
		return Format{}, newParseError(ErrFmtChunkTooSmall, "fmtSize", int64(len(payload)), 0)
	}

	f := Format{
		AudioFormat:  int(binary.LittleEndian.Uint16(payload[0:2])),
		ChannelCount: int(binary.LittleEndian.Uint16(payload[2:4])),
		SampleRate:   int(binary.LittleEndian.Uint32(payload[4:8])),
		// bytes 8..12 hold the byte rate, which is derived and ignored
		BlockAlign:    int(binary.LittleEndian.Uint16(payload[12:14])),
		BitsPerSample: int(binary.LittleEndian.Uint16(payload[14:16])),
	}

	switch {
	case f.AudioFormat != FormatPCM && f.AudioFormat != FormatIEEEFloat:
		return Format{}, newParseError(ErrUnsupportedFormat, "audioFormat", int64(f.AudioFormat), 0)
	case f.ChannelCount < 1:
		return Format{}, newParseError(ErrInvalidChannelCount, "channelCount", int64(f.ChannelCount), 2)
	case f.SampleRate < 1:
		return Format{}, newParseError(ErrInvalidSampleRate, "sampleRate", int64(f.SampleRate), 4)
	case f.BlockAlign < 1:
		return Format{}, newParseError(ErrInvalidBlockAlign, "blockAlign", int64(f.BlockAlign), 12)
	}

	f.FrameCount = dataSize / f.BlockAlign
	if f.FrameCount < 1 {
		return Format{}, newParseError(ErrNoFrames, "dataSize", int64(dataSize), 0)
	}

	return f, nil
}

// BytesPerSample is the width of a single channel sample.
func (f Format) BytesPerSample() int { return f.BitsPerSample / 8 }
