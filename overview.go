// SPDX-License-Identifier: EPL-2.0

package wavepeaks

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ik5/wavepeaks/audio"
	"github.com/ik5/wavepeaks/formats/aiff"
	"github.com/ik5/wavepeaks/formats/wav"
	"github.com/ik5/wavepeaks/waveform"
)

// NewRegistry returns a registry with every decoder in this module, keyed by
// file extension.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})

	return reg
}

// Overview summarizes the audio in r using the decoder registered for
// format. WAV data is bucketed directly from its bytes; any other format is
// decoded first.
func Overview(reg *audio.Registry, format string, r io.Reader, opts waveform.Options) (waveform.Overview, error) {
	dec, ok := reg.Get(format)
	if !ok {
		return waveform.Overview{}, fmt.Errorf("%w: %s", audio.ErrUnknownFormat, format)
	}

	if _, ok := dec.(wav.Decoder); ok {
		buf, err := io.ReadAll(r)
		if err != nil {
			return waveform.Overview{}, fmt.Errorf("reading wav data: %w", err)
		}
		return waveform.Extract(buf, opts)
	}

	src, err := dec.Decode(r)
	if err != nil {
		return waveform.Overview{}, err
	}
	defer src.Close()

	return waveform.SummarizeSource(src, opts)
}

// OverviewFile opens path and summarizes it with the decoder matching its
// extension. An empty opts.SourceName is replaced by the file's base name.
func OverviewFile(reg *audio.Registry, path string, opts waveform.Options) (waveform.Overview, error) {
	format, _, err := reg.ForFile(path)
	if err != nil {
		return waveform.Overview{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return waveform.Overview{}, err
	}
	defer f.Close()

	if opts.SourceName == "" {
		opts.SourceName = filepath.Base(path)
	}

	ov, err := Overview(reg, format, f, opts)
	if err != nil {
		return waveform.Overview{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return ov, nil
}
