// SPDX-License-Identifier: EPL-2.0

package wavepeaks

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ik5/wavepeaks/audio"
	"github.com/ik5/wavepeaks/formats/aiff"
	"github.com/ik5/wavepeaks/formats/wav"
	"github.com/ik5/wavepeaks/internal/audiotest"
	"github.com/ik5/wavepeaks/waveform"
)

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()

	if got, want := reg.Formats(), []string{"aif", "aiff", "wav", "wave"}; !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestOverview_WAV(t *testing.T) {
	t.Parallel()

	data := audiotest.MonoPCM16(8, 0, 0.25, 0.5, 0.75, 1, 0.5, 0.25, 0)

	ov, err := Overview(NewRegistry(), "WAV", bytes.NewReader(data), waveform.Options{Resolution: 4})
	if err != nil {
		t.Fatalf("Overview() error = %v", err)
	}

	want, _ := waveform.Extract(data, waveform.Options{Resolution: 4})
	if !slices.Equal(ov.Peaks, want.Peaks) || ov.SourceName != waveform.DefaultSourceName {
		t.Errorf("Overview() = %+v, want %+v", ov, want)
	}
}

func TestOverview_AIFF(t *testing.T) {
	t.Parallel()

	data := audiotest.EncodeAIFF(t, 8000, 16, 1, []int{0, 16384, -16384, 32767})

	ov, err := Overview(NewRegistry(), "aiff", bytes.NewReader(data), waveform.Options{Resolution: 4})
	if err != nil {
		t.Fatalf("Overview() error = %v", err)
	}

	if ov.SampleRate != 8000 || ov.ChannelCount != 1 || ov.BitsPerSample != 16 {
		t.Errorf("format = %d Hz, %d ch, %d bits", ov.SampleRate, ov.ChannelCount, ov.BitsPerSample)
	}

	want := []float64{0, 0.5, 0.5, 32767.0 / 32768}
	for i, w := range want {
		if math.Abs(ov.Peaks[i]-w) > 1e-6 {
			t.Errorf("Peaks[%d] = %v, want %v", i, ov.Peaks[i], w)
		}
	}
}

func TestOverview_Errors(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()

	if _, err := Overview(reg, "mp3", bytes.NewReader(nil), waveform.Options{}); !errors.Is(err, audio.ErrUnknownFormat) {
		t.Errorf("unknown format error = %v, want ErrUnknownFormat", err)
	}

	if _, err := Overview(reg, "wav", bytes.NewReader([]byte("RIFF")), waveform.Options{}); !errors.Is(err, wav.ErrTooShort) {
		t.Errorf("short wav error = %v, want ErrTooShort", err)
	}

	wavData := audiotest.MonoPCM16(8000, 0, 0.5)
	if _, err := Overview(reg, "aiff", bytes.NewReader(wavData), waveform.Options{}); !errors.Is(err, aiff.ErrNotAiffFile) {
		t.Errorf("wav as aiff error = %v, want ErrNotAiffFile", err)
	}
}

func TestOverviewFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "Kick.WAV")
	if err := os.WriteFile(path, audiotest.MonoPCM16(8000, 0.5, -0.5, 0.25, 0), 0o600); err != nil {
		t.Fatal(err)
	}

	reg := NewRegistry()

	ov, err := OverviewFile(reg, path, waveform.Options{})
	if err != nil {
		t.Fatalf("OverviewFile() error = %v", err)
	}
	if ov.SourceName != "Kick.WAV" {
		t.Errorf("SourceName = %q, want base name", ov.SourceName)
	}
	if ov.BucketCount() != 4 {
		t.Errorf("BucketCount() = %d, want 4", ov.BucketCount())
	}

	ov, err = OverviewFile(reg, path, waveform.Options{SourceName: "custom"})
	if err != nil {
		t.Fatalf("OverviewFile() error = %v", err)
	}
	if ov.SourceName != "custom" {
		t.Errorf("SourceName = %q, want custom", ov.SourceName)
	}
}

func TestOverviewFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	reg := NewRegistry()

	if _, err := OverviewFile(reg, filepath.Join(dir, "notes.txt"), waveform.Options{}); !errors.Is(err, audio.ErrUnknownFormat) {
		t.Errorf("txt error = %v, want ErrUnknownFormat", err)
	}

	if _, err := OverviewFile(reg, filepath.Join(dir, "missing.wav"), waveform.Options{}); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}

	broken := filepath.Join(dir, "broken.wav")
	if err := os.WriteFile(broken, make([]byte, 64), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := OverviewFile(reg, broken, waveform.Options{})
	if !errors.Is(err, wav.ErrInvalidRiffHeader) {
		t.Errorf("broken file error = %v, want ErrInvalidRiffHeader", err)
	}
	if err != nil && err.Error() != "broken.wav: invalid RIFF header" {
		t.Errorf("error message = %q", err.Error())
	}
}
