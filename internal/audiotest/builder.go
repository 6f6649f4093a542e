// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/go-audio/riff"
)

// Fmt is the canonical 16-byte fmt chunk payload.
type Fmt struct {
	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// PCMFmt fills in ByteRate and BlockAlign for a packed layout.
func PCMFmt(audioFormat, channels, sampleRate, bitsPerSample int) Fmt {
	blockAlign := channels * bitsPerSample / 8
	return Fmt{
		AudioFormat:   uint16(audioFormat),
		Channels:      uint16(channels),
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate * blockAlign),
		BlockAlign:    uint16(blockAlign),
		BitsPerSample: uint16(bitsPerSample),
	}
}

// Bytes encodes the payload little-endian.
func (f Fmt) Bytes() []byte {
	b := make([]byte, 16)
	binary.LittleEndian.PutUint16(b[0:2], f.AudioFormat)
	binary.LittleEndian.PutUint16(b[2:4], f.Channels)
	binary.LittleEndian.PutUint32(b[4:8], f.SampleRate)
	binary.LittleEndian.PutUint32(b[8:12], f.ByteRate)
	binary.LittleEndian.PutUint16(b[12:14], f.BlockAlign)
	binary.LittleEndian.PutUint16(b[14:16], f.BitsPerSample)
	return b
}

// Builder assembles RIFF/WAVE files chunk by chunk, including malformed
// ones: sizes are taken from the caller, never validated.
type Builder struct {
	riffID [4]byte
	waveID [4]byte
	body   bytes.Buffer
}

// NewBuilder starts a file with valid RIFF and WAVE identifiers.
func NewBuilder() *Builder {
	return &Builder{riffID: riff.RiffID, waveID: riff.WavFormatID}
}

// RiffID overrides the first four bytes.
func (b *Builder) RiffID(id string) *Builder {
	copy(b.riffID[:], id)
	return b
}

// WaveID overrides bytes 8..12.
func (b *Builder) WaveID(id string) *Builder {
	copy(b.waveID[:], id)
	return b
}

// Chunk appends a chunk with its true size, padding odd payloads.
func (b *Builder) Chunk(id string, payload []byte) *Builder {
	return b.ChunkWithSize(id, uint32(len(payload)), payload)
}

// ChunkWithSize appends a chunk whose declared size may differ from the
// payload actually written. Odd declared sizes get a pad byte.
func (b *Builder) ChunkWithSize(id string, size uint32, payload []byte) *Builder {
	b.body.WriteString(id)
	binary.Write(&b.body, binary.LittleEndian, size)
	b.body.Write(payload)
	if size%2 == 1 && uint32(len(payload)) == size {
		b.body.WriteByte(0)
	}
	return b
}

// Fmt appends a fmt chunk.
func (b *Builder) Fmt(f Fmt) *Builder {
	return b.Chunk("fmt ", f.Bytes())
}

// Data appends a data chunk.
func (b *Builder) Data(payload []byte) *Builder {
	return b.Chunk("data", payload)
}

// Raw appends bytes with no chunk header.
func (b *Builder) Raw(p []byte) *Builder {
	b.body.Write(p)
	return b
}

// Bytes returns the finished file.
func (b *Builder) Bytes() []byte {
	out := make([]byte, 0, 12+b.body.Len())
	out = append(out, b.riffID[:]...)
	out = binary.LittleEndian.AppendUint32(out, uint32(4+b.body.Len()))
	out = append(out, b.waveID[:]...)
	return append(out, b.body.Bytes()...)
}

// PCM16 encodes samples in [-1, 1] as 16-bit little-endian PCM, scaled by
// 32767 and rounded.
func PCM16(samples ...float64) []byte {
	out := make([]byte, 0, len(samples)*2)
	for _, s := range samples {
		s = math.Max(-1, math.Min(1, s))
		out = binary.LittleEndian.AppendUint16(out, uint16(int16(math.Round(s*32767))))
	}
	return out
}

// Float32LE encodes samples as IEEE float, unclamped.
func Float32LE(samples ...float32) []byte {
	out := make([]byte, 0, len(samples)*4)
	for _, s := range samples {
		out = binary.LittleEndian.AppendUint32(out, math.Float32bits(s))
	}
	return out
}

// MonoPCM16 builds a canonical mono 16-bit file.
func MonoPCM16(sampleRate int, samples ...float64) []byte {
	return NewBuilder().
		Fmt(PCMFmt(1, 1, sampleRate, 16)).
		Data(PCM16(samples...)).
		Bytes()
}
