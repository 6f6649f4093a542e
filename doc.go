// SPDX-License-Identifier: EPL-2.0

// Package wavepeaks turns audio files into waveform overviews and SVG
// outline paths for display.
//
// The work is split across subpackages:
//   - formats/wav parses RIFF/WAVE files held in memory
//   - formats/aiff decodes AIFF files through go-audio
//   - waveform buckets samples into peak, minimum and maximum series and
//     renders them as paths
//   - audio holds the Source and Decoder interfaces and the format Registry
//
// # Quick Start
//
// Summarize a file on disk with the decoders this module ships:
//
//	reg := wavepeaks.NewRegistry()
//	ov, err := wavepeaks.OverviewFile(reg, "kick.wav", waveform.Options{})
//	if err != nil {
//	    // errors.Is(err, wav.ErrTooShort) and friends
//	}
//
//	d := waveform.BuildOverviewPath(ov.Peaks, 1000, 100)
//
// # Formats
//
// WAV input goes straight from bytes to buckets without an intermediate
// float buffer. Every other registered format is decoded to an audio.Source
// first and summarized with waveform.SummarizeSource.
//
// The cmd/wavepeaks binary exposes the same operations on the command line
// and over HTTP.
package wavepeaks
