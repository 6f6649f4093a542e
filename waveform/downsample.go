// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"math"

	"github.com/ik5/wavepeaks/formats/wav"
)

// BucketCount clamps floor(resolution) to [MinBuckets, frameCount]. When
// frameCount is below MinBuckets the lower bound wins and buckets share
// frames.
func BucketCount(frameCount int, resolution float64) int {
	r := math.Floor(resolution)

	n := MinBuckets
	switch {
	case r >= float64(frameCount):
		n = frameCount
	case r >= MinBuckets:
		n = int(r)
	}

	return max(MinBuckets, n)
}

// bucketRange returns the half-open frame range of bucket b out of
// bucketCount, bounded by frameCount. Every bucket claims at least one
// frame, and the last one always ends at frameCount so that rounding in
// the real-valued bucket width never drops trailing frames.
func bucketRange(b, bucketCount, frameCount int) (start, end int) {
	framesPerBucket := float64(frameCount) / float64(bucketCount)

	start = int(math.Floor(float64(b) * framesPerBucket))
	end = max(start+1, int(math.Floor(float64(b+1)*framesPerBucket)))
	if b == bucketCount-1 {
		end = frameCount
	}

	return start, min(end, frameCount)
}

// reducer accumulates one bucket.
type reducer struct {
	peak, lo, hi float64
}

func newReducer() reducer { return reducer{peak: 0, lo: 1, hi: -1} }

func (r *reducer) add(v float64) {
	if m := math.Abs(v); m > r.peak {
		r.peak = m
	}
	if v < r.lo {
		r.lo = v
	}
	if v > r.hi {
		r.hi = v
	}
}

// finish clamps the reduction to the representable range. A bucket that saw
// no sample reports zero for both extremes.
func (r reducer) finish() (peak, lo, hi float64) {
	peak = math.Min(1, r.peak)
	if r.hi < r.lo {
		return peak, 0, 0
	}
	return peak, math.Max(-1, r.lo), math.Min(1, r.hi)
}

type series struct {
	peaks, mins, maxs []float64
}

func newSeries(n int) series {
	return series{
		peaks: make([]float64, n),
		mins:  make([]float64, n),
		maxs:  make([]float64, n),
	}
}

func (s series) set(b int, r reducer) {
	s.peaks[b], s.mins[b], s.maxs[b] = r.finish()
}

// Summarize reduces the sample frames described by h to an Overview. h must
// come from wav.ParseHeader on the same buf, which guarantees that every
// sample read here is in bounds.
func Summarize(buf []byte, h wav.Header, opts Options) (Overview, error) {
	opts = opts.withDefaults()

	decode, err := wav.SampleDecoder(h.BitsPerSample, h.AudioFormat)
	if err != nil {
		return Overview{}, err
	}

	bucketCount := BucketCount(h.FrameCount, opts.Resolution)
	bps := h.BytesPerSample()
	out := newSeries(bucketCount)

	for b := range bucketCount {
		start, end := bucketRange(b, bucketCount, h.FrameCount)
		r := newReducer()

		base := h.DataOffset + start*h.BlockAlign
		for frame := start; frame < end; frame++ {
			off := base
			for range h.ChannelCount {
				r.add(decode(buf, off))
				off += bps
			}
			base += h.BlockAlign
		}

		out.set(b, r)
	}

	return Overview{
		SourceName:      opts.SourceName,
		SampleRate:      h.SampleRate,
		ChannelCount:    h.ChannelCount,
		BitsPerSample:   h.BitsPerSample,
		DurationSeconds: h.DurationSeconds(),
		Peaks:           out.peaks,
		MinValues:       out.mins,
		MaxValues:       out.maxs,
	}, nil
}
