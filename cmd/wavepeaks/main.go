// SPDX-License-Identifier: EPL-2.0

// Command wavepeaks summarizes audio files into waveform overviews.
//
// Usage:
//
//	wavepeaks overview [-resolution N] [-name S] <file>
//	wavepeaks path [-width W] [-height H] [-viewport] [-start S] [-end E] [-samples N] <file>
//	wavepeaks tone [-rate R] [-bits B] [-channels C] [-float] [-freq F] [-seconds S] [-amplitude A] <out.wav>
//	wavepeaks serve [-env FILE]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ik5/wavepeaks"
	"github.com/ik5/wavepeaks/audio"
	"github.com/ik5/wavepeaks/formats/wav"
	"github.com/ik5/wavepeaks/internal/config"
	"github.com/ik5/wavepeaks/internal/server"
	"github.com/ik5/wavepeaks/waveform"
	"github.com/labstack/echo/v4/middleware"
)

const usage = `usage: wavepeaks <command> [flags] [file]

commands:
  overview  print the waveform overview of a file as JSON
  path      print an SVG path for a file
  tone      write a sine test tone as WAV
  serve     start the HTTP server
`

func main() {
	log.SetFlags(0)
	log.SetPrefix("wavepeaks: ")

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	reg := wavepeaks.NewRegistry()
	cmd, args := os.Args[1], os.Args[2:]

	var err error
	switch cmd {
	case "overview":
		err = runOverview(reg, args, os.Stdout)
	case "path":
		err = runPath(reg, args, os.Stdout)
	case "tone":
		err = runTone(args, os.Stdout)
	case "serve":
		err = runServe(reg, args)
	case "help", "-h", "--help":
		fmt.Fprint(os.Stdout, usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", cmd, usage)
		os.Exit(2)
	}

	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// baseConfig reads defaults from the environment for the file commands.
func baseConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("ignoring .env: %v", err)
		return config.FromEnv()
	}
	return cfg
}

func runOverview(reg *audio.Registry, args []string, out io.Writer) error {
	cfg := baseConfig()

	fs := flag.NewFlagSet("overview", flag.ContinueOnError)
	resolution := fs.Float64("resolution", cfg.Resolution, "requested bucket count")
	name := fs.String("name", "", "source name (default: file name)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("overview: expected exactly one file")
	}

	opts := waveform.Options{SourceName: *name, Resolution: waveform.ExplicitResolution(*resolution)}
	ov, err := wavepeaks.OverviewFile(reg, fs.Arg(0), opts)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(ov)
}

func runPath(reg *audio.Registry, args []string, out io.Writer) error {
	cfg := baseConfig()

	fs := flag.NewFlagSet("path", flag.ContinueOnError)
	width := fs.Float64("width", cfg.PathWidth, "drawing width")
	height := fs.Float64("height", cfg.PathHeight, "drawing height")
	viewport := fs.Bool("viewport", false, "draw the signed min/max series instead of peaks")
	start := fs.Float64("start", 0, "viewport start in [0, 1]")
	end := fs.Float64("end", 1, "viewport end in [0, 1]")
	samples := fs.Int("samples", cfg.ViewportSamples, "viewport resolution")
	resolution := fs.Float64("resolution", cfg.Resolution, "requested bucket count")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("path: expected exactly one file")
	}
	if *samples > cfg.MaxViewportSamples {
		return fmt.Errorf("path: -samples exceeds %d", cfg.MaxViewportSamples)
	}

	ov, err := wavepeaks.OverviewFile(reg, fs.Arg(0), waveform.Options{Resolution: waveform.ExplicitResolution(*resolution)})
	if err != nil {
		return err
	}

	var d string
	if *viewport {
		d = waveform.BuildViewportPath(ov.MinValues, ov.MaxValues, waveform.Viewport{
			Width:       *width,
			Height:      *height,
			Start:       *start,
			End:         *end,
			SampleCount: *samples,
		})
	} else {
		d = waveform.BuildOverviewPath(ov.Peaks, *width, *height)
	}

	_, err = fmt.Fprintln(out, d)
	return err
}

func runTone(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("tone", flag.ContinueOnError)
	rate := fs.Int("rate", 44100, "sample rate in Hz")
	bits := fs.Int("bits", 16, "bits per sample: 8, 16, 24 or 32")
	channels := fs.Int("channels", 1, "channel count")
	isFloat := fs.Bool("float", false, "write 32-bit IEEE float samples")
	freq := fs.Float64("freq", 440, "tone frequency in Hz")
	seconds := fs.Float64("seconds", 1, "duration")
	amplitude := fs.Float64("amplitude", 0.8, "peak amplitude in [0, 1]")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("tone: expected exactly one output file")
	}

	f := wav.WriteFormat{SampleRate: *rate, Channels: *channels, BitsPerSample: *bits, Float: *isFloat}
	if f.Float {
		f.BitsPerSample = 32
	}

	samples, err := sine(f, *freq, *seconds, *amplitude)
	if err != nil {
		return err
	}

	path := fs.Arg(0)
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := wav.WritePCM(file, f, samples); err != nil {
		file.Close()
		os.Remove(path)
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, "Wrote:", path)
	return err
}

// sine returns interleaved samples of the same tone on every channel.
func sine(f wav.WriteFormat, freq, seconds, amplitude float64) ([]float64, error) {
	if f.SampleRate < 1 || f.Channels < 1 {
		return nil, fmt.Errorf("tone: invalid format %d Hz, %d channels", f.SampleRate, f.Channels)
	}

	frames := int(math.Round(seconds * float64(f.SampleRate)))
	if frames < 1 {
		return nil, fmt.Errorf("tone: %v seconds at %d Hz has no frames", seconds, f.SampleRate)
	}

	step := 2 * math.Pi * freq / float64(f.SampleRate)
	samples := make([]float64, frames*f.Channels)

	for i := range frames {
		v := amplitude * math.Sin(step*float64(i))
		for ch := range f.Channels {
			samples[i*f.Channels+ch] = v
		}
	}

	return samples, nil
}

func runServe(reg *audio.Registry, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	envFile := fs.String("env", ".env", "optional .env file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv := server.New(cfg, reg)
	srv.Echo().Use(middleware.Logger())

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on :%d (formats %v)", cfg.Port, reg.Formats())
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Println("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	return srv.Shutdown(shutdownCtx)
}
