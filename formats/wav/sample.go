// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"math"
)

// SampleFunc decodes the sample starting at buf[offset] into a float.
// The caller guarantees that the whole sample lies inside buf.
type SampleFunc func(buf []byte, offset int) float64

// SupportedBitDepth reports whether samples of the given width can be decoded.
func SupportedBitDepth(bitsPerSample int) bool {
	switch bitsPerSample {
	case 8, 16, 24, 32:
		return true
	}

	return false
}

// SampleDecoder selects the decoder for a bit depth and format code once, so
// per-sample loops avoid dispatching on every call. IEEE float is only
// recognised at 32 bits; any other float depth is decoded as integer PCM of
// that width.
func SampleDecoder(bitsPerSample, audioFormat int) (SampleFunc, error) {
	if audioFormat == FormatIEEEFloat && bitsPerSample == 32 {
		return decodeFloat32, nil
	}

	switch bitsPerSample {
	case 8:
		return decodeUint8, nil
	case 16:
		return decodeInt16, nil
	case 24:
		return decodeInt24, nil
	case 32:
		return decodeInt32, nil
	}

	return nil, newParseError(ErrUnsupportedBitDepth, "bitsPerSample", int64(bitsPerSample), 0)
}

// DecodeSample converts one sample into a float. Integer PCM is normalized
// to roughly [-1, 1); 32-bit IEEE float is passed through without clamping.
// A sample that does not lie entirely inside buf fails ErrChunkOutOfBounds.
func DecodeSample(buf []byte, offset, bitsPerSample, audioFormat int) (float64, error) {
	decode, err := SampleDecoder(bitsPerSample, audioFormat)
	if err != nil {
		return 0, newParseError(ErrUnsupportedBitDepth, "bitsPerSample", int64(bitsPerSample), offset)
	}
	if offset < 0 || offset > len(buf)-bitsPerSample/8 {
		return 0, newParseError(ErrChunkOutOfBounds, "offset", int64(offset), offset)
	}

	return decode(buf, offset), nil
}

func decodeFloat32(buf []byte, offset int) float64 {
	return float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:])))
}

// offset binary, 128 is silence
func decodeUint8(buf []byte, offset int) float64 {
	return (float64(buf[offset]) - 128) / 128
}

func decodeInt16(buf []byte, offset int) float64 {
	return float64(int16(binary.LittleEndian.Uint16(buf[offset:]))) / 32768
}

func decodeInt24(buf []byte, offset int) float64 {
	raw := int32(buf[offset]) | int32(buf[offset+1])<<8 | int32(buf[offset+2])<<16
	if raw&0x800000 != 0 {
		raw |= ^0xffffff
	}

	return float64(raw) / 8388608
}

func decodeInt32(buf []byte, offset int) float64 {
	return float64(int32(binary.LittleEndian.Uint32(buf[offset:]))) / 2147483648
}
