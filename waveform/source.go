// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/wavepeaks/audio"
)

// ErrEmptySource is returned by SummarizeSource when src yields no frames.
var ErrEmptySource = errors.New("source has no sample frames")

// SummarizeSource reads src to the end and summarizes it with the same
// bucketing as Summarize. It is meant for decoded formats other than WAV,
// such as AIFF. BitsPerSample is taken from src when it implements
// audio.BitDepthSource and left at zero otherwise.
func SummarizeSource(src audio.Source, opts Options) (Overview, error) {
	opts = opts.withDefaults()

	channels := src.Channels()
	if channels < 1 {
		return Overview{}, fmt.Errorf("summarize source: %d channels", channels)
	}
	rate := src.SampleRate()
	if rate < 1 {
		return Overview{}, fmt.Errorf("summarize source: sample rate %d", rate)
	}

	var bitsPerSample int
	if d, ok := src.(audio.BitDepthSource); ok {
		bitsPerSample = d.BitDepth()
	}

	samples, err := readAll(src)
	if err != nil {
		return Overview{}, fmt.Errorf("summarize source: %w", err)
	}

	frameCount := len(samples) / channels
	if frameCount < 1 {
		return Overview{}, ErrEmptySource
	}

	bucketCount := BucketCount(frameCount, opts.Resolution)
	out := newSeries(bucketCount)

	for b := range bucketCount {
		start, end := bucketRange(b, bucketCount, frameCount)
		r := newReducer()

		for _, v := range samples[start*channels : end*channels] {
			r.add(float64(v))
		}

		out.set(b, r)
	}

	return Overview{
		SourceName:      opts.SourceName,
		SampleRate:      rate,
		ChannelCount:    channels,
		BitsPerSample:   bitsPerSample,
		DurationSeconds: float64(frameCount) / float64(rate),
		Peaks:           out.peaks,
		MinValues:       out.mins,
		MaxValues:       out.maxs,
	}, nil
}

func readAll(src audio.Source) ([]float32, error) {
	channels := src.Channels()
	// whole frames only
	size := max(src.BufSize(), channels)
	size -= size % channels

	var samples []float32
	buf := make([]float32, size)

	for {
		n, err := src.ReadSamples(buf)
		samples = append(samples, buf[:n]...)

		if errors.Is(err, io.EOF) {
			return samples, nil
		}
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return samples, nil
		}
	}
}
