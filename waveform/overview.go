// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"math"

	"github.com/ik5/wavepeaks/formats/wav"
)

const (
	// DefaultSourceName labels overviews extracted without a name.
	DefaultSourceName = "WAV Track"
	// DefaultResolution is the requested bucket count. It is wider than most
	// displays so renderers rarely need to re-bucket.
	DefaultResolution = 2400
	// MinBuckets is the lower bound on the bucket count.
	MinBuckets = 4
)

// Overview is a fixed-resolution amplitude summary of an audio file.
// Peaks, MinValues and MaxValues have the same length, one entry per bucket.
type Overview struct {
	SourceName      string    `json:"sourceName"`
	SampleRate      int       `json:"sampleRate"`
	ChannelCount    int       `json:"channelCount"`
	BitsPerSample   int       `json:"bitsPerSample"`
	DurationSeconds float64   `json:"durationSeconds"`
	Peaks           []float64 `json:"peaks"`
	MinValues       []float64 `json:"minValues"`
	MaxValues       []float64 `json:"maxValues"`
}

// BucketCount returns the number of buckets in the overview.
func (o Overview) BucketCount() int { return len(o.Peaks) }

// Options tune Extract. The zero value selects DefaultSourceName and
// DefaultResolution.
type Options struct {
	SourceName string
	Resolution float64
}

func (o Options) withDefaults() Options {
	if o.SourceName == "" {
		o.SourceName = DefaultSourceName
	}
	if o.Resolution == 0 || math.IsNaN(o.Resolution) {
		o.Resolution = DefaultResolution
	}
	return o
}

// ExplicitResolution turns a resolution the caller asked for into an
// Options.Resolution with the same bucketing. Zero would select
// DefaultResolution, so it becomes MinBuckets, which floors and clamps the
// same way.
func ExplicitResolution(r float64) float64 {
	if r == 0 {
		return MinBuckets
	}
	return r
}

// Extract parses a WAV file held in buf and summarizes it. Any parse error
// aborts the whole extraction; there is no partial overview.
func Extract(buf []byte, opts Options) (Overview, error) {
	h, err := wav.ParseHeader(buf)
	if err != nil {
		return Overview{}, err
	}

	return Summarize(buf, h, opts)
}
