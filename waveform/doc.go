// SPDX-License-Identifier: EPL-2.0

// Package waveform reduces decoded audio to a fixed-resolution amplitude
// overview and renders overviews as SVG outline paths.
//
// # Overviews
//
// Extract parses a WAV file held in memory and splits its frames into
// buckets. Each bucket keeps the largest magnitude and the signed minimum and
// maximum across every channel:
//
//	data, _ := os.ReadFile("kick.wav")
//	ov, err := waveform.Extract(data, waveform.Options{SourceName: "kick.wav"})
//	if err != nil {
//	    // err wraps one of the wav.Err* kinds
//	}
//	fmt.Println(ov.DurationSeconds, len(ov.Peaks))
//
// The bucket count is the requested resolution clamped to
// [MinBuckets, frameCount], so short files get one bucket per frame.
// SummarizeSource applies the same bucketing to any audio.Source.
//
// # Paths
//
// BuildOverviewPath draws the unsigned peaks mirrored around the midline.
// BuildViewportPath draws the signed minimum and maximum series over a
// zoomed window, resampling them with linear interpolation:
//
//	v := waveform.DefaultViewport()
//	v.Start, v.End = 0.25, 0.5
//	d := waveform.BuildViewportPath(ov.MinValues, ov.MaxValues, v)
//
// Path builders never fail; empty input yields a flat rectangle on the
// midline.
//
// Every function in this package is pure and safe for concurrent use on
// shared read-only buffers.
package waveform
