// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
)

// Parse failure kinds. Every error returned by Locate, ParseFormat, ParseHeader
// and DecodeSample matches exactly one of these through errors.Is.
var (
	ErrTooShort            = errors.New("WAV data is too short")
	ErrInvalidRiffHeader   = errors.New("invalid RIFF header")
	ErrInvalidWaveHeader   = errors.New("invalid WAVE header")
	ErrChunkOutOfBounds    = errors.New("chunk exceeds file bounds")
	ErrMissingFmtChunk     = errors.New("missing fmt chunk")
	ErrFmtChunkTooSmall    = errors.New("fmt chunk is too small")
	ErrMissingDataChunk    = errors.New("missing data chunk")
	ErrEmptyDataChunk      = errors.New("data chunk is empty")
	ErrUnsupportedFormat   = errors.New("unsupported WAV format")
	ErrInvalidChannelCount = errors.New("invalid channel count")
	ErrInvalidSampleRate   = errors.New("invalid sample rate")
	ErrInvalidBlockAlign   = errors.New("invalid block align")
	ErrNoFrames            = errors.New("no sample frames in data chunk")
	ErrUnsupportedBitDepth = errors.New("unsupported PCM bit depth")
)

// ParseError describes a single parse failure.
// Kind is one of the Err* sentinels; Field and Value name the offending
// header field (or chunk id) and the value read for it.
type ParseError struct {
	Kind   error
	Field  string
	Value  int64
	Offset int
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return e.Kind.Error()
	}

	return fmt.Sprintf("%s: %s=%d (offset %d)", e.Kind, e.Field, e.Value, e.Offset)
}

func (e *ParseError) Unwrap() error { return e.Kind }

func newParseError(kind error, field string, value int64, offset int) *ParseError {
	return &ParseError{Kind: kind, Field: field, Value: value, Offset: offset}
}

// KindName returns a short stable identifier for the failure kind wrapped in
// err, e.g. "TooShort". It returns an empty string for errors that are not
// WAV parse failures.
func KindName(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}

	return ""
}

var kinds = []struct {
	err  error
	name string
}{
	{ErrTooShort, "TooShort"},
	{ErrInvalidRiffHeader, "InvalidRiffHeader"},
	{ErrInvalidWaveHeader, "InvalidWaveHeader"},
	{ErrChunkOutOfBounds, "ChunkOutOfBounds"},
	{ErrMissingFmtChunk, "MissingFmtChunk"},
	{ErrFmtChunkTooSmall, "FmtChunkTooSmall"},
	{ErrMissingDataChunk, "MissingDataChunk"},
	{ErrEmptyDataChunk, "EmptyDataChunk"},
	{ErrUnsupportedFormat, "UnsupportedFormat"},
	{ErrInvalidChannelCount, "InvalidChannelCount"},
	{ErrInvalidSampleRate, "InvalidSampleRate"},
	{ErrInvalidBlockAlign, "InvalidBlockAlign"},
	{ErrNoFrames, "NoFrames"},
	{ErrUnsupportedBitDepth, "UnsupportedBitDepth"},
}
