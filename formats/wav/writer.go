// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/riff"
	"github.com/ik5/wavepeaks/utils"
)

// WriteFormat describes the stream produced by WritePCM.
type WriteFormat struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
	// Float selects 32-bit IEEE float samples; BitsPerSample must be 32.
	Float bool
}

// WritePCM writes a canonical 44-byte-header WAV file. samples are
// interleaved floats in [-1, 1]; integer depths clamp and round, float
// output stores the values unchanged. An odd-sized data chunk is followed
// by one pad byte. Formats whose header fields would overflow are rejected
// before anything is written.
func WritePCM(w io.Writer, f WriteFormat, samples []float64) error {
	if !SupportedBitDepth(f.BitsPerSample) || (f.Float && f.BitsPerSample != 32) {
		return newParseError(ErrUnsupportedBitDepth, "bitsPerSample", int64(f.BitsPerSample), 0)
	}
	if f.Channels < 1 {
		return newParseError(ErrInvalidChannelCount, "channelCount", int64(f.Channels), 0)
	}
	if f.SampleRate < 1 {
		return newParseError(ErrInvalidSampleRate, "sampleRate", int64(f.SampleRate), 0)
	}


	bps := f.BitsPerSample / 8
	if f.Channels*bps > math.MaxUint16 {
		return newParseError(ErrInvalidBlockAlign, "blockAlign", int64(f.Channels*bps), 0)
	}
	if uint64(f.SampleRate)*uint64(f.Channels*bps) > math.MaxUint32 {
		return newParseError(ErrInvalidSampleRate, "byteRate", int64(f.SampleRate)*int64(f.Channels*bps), 0)
	}
	if !dataSizeFits(len(samples), bps) {
		return newParseError(ErrChunkOutOfBounds, "dataSize", int64(len(samples))*int64(bps), 0)
	}

	audioFormat := uint16(FormatPCM)
	if f.Float {
		audioFormat = FormatIEEEFloat
	}

	blockAlign := uint16(f.Channels * bps)
	byteRate := uint32(f.SampleRate) * uint32(blockAlign)
	dataSize := uint32(len(samples) * bps)
	pad := dataSize % 2

	header := make([]byte, MinHeaderSize)

	copy(header[0:4], riff.RiffID[:])
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize+pad)
	copy(header[8:12], riff.WavFormatID[:])

	copy(header[12:16], riff.FmtID[:])
	binary.LittleEndian.PutUint32(header[16:20], minFmtSize)
	binary.LittleEndian.PutUint16(header[20:22], audioFormat)
	binary.LittleEndian.PutUint16(header[22:24], uint16(f.Channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(f.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], uint16(f.BitsPerSample))

	copy(header[36:40], riff.DataFormatID[:])
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing wav header: %w", err)
	}

	// write in 8 KiB sample batches
	const chunkSize = 8192
	buf := make([]byte, min(len(samples), chunkSize)*bps)

	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]
		out := buf[:len(chunk)*bps]

		for j, s := range chunk {
			putSample(out[j*bps:], s, f)
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("writing wav samples: %w", err)
		}
	}

	if pad == 1 {
		if _, err := w.Write([]byte{0}); err != nil {
			return fmt.Errorf("writing wav pad byte: %w", err)
		}
	}

	return nil
}

// dataSizeFits reports whether n samples of bps bytes, plus the pad byte,
// fit the 32-bit RIFF size field.
func dataSizeFits(n, bps int) bool {
	size := uint64(n) * uint64(bps)
	return 36+size+size%2 <= math.MaxUint32
}

func putSample(b []byte, s float64, f WriteFormat) {
	if f.Float {
		binary.LittleEndian.PutUint32(b, math.Float32bits(float32(s)))
		return
	}

	v := utils.FloatToPCM(s, f.BitsPerSample)

	switch f.BitsPerSample {
	case 8:
		b[0] = byte(v + 128)
	case 16:
		binary.LittleEndian.PutUint16(b, uint16(int16(v)))
	case 24:
		b[0] = byte(v)
		b[1] = byte(v >> 8)
		b[2] = byte(v >> 16)
	case 32:
		binary.LittleEndian.PutUint32(b, uint32(v))
	}
}
