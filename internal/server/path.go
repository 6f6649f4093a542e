// SPDX-License-Identifier: EPL-2.0

package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ik5/wavepeaks/waveform"
	"github.com/labstack/echo/v4"
)

// Omitted fields take the configured defaults, so every field is a pointer.
type overviewPathRequest struct {
	Peaks  []float64 `json:"peaks"`
	Width  *float64  `json:"width"`
	Height *float64  `json:"height"`
}

type viewportPathRequest struct {
	MinValues     []float64 `json:"minValues"`
	MaxValues     []float64 `json:"maxValues"`
	Width         *float64  `json:"width"`
	Height        *float64  `json:"height"`
	ViewportStart *float64  `json:"viewportStart"`
	ViewportEnd   *float64  `json:"viewportEnd"`
	SampleCount   *int      `json:"sampleCount"`
}

type pathResponse struct {
	Path string `json:"path"`
}

// OverviewPath renders peaks as a mirrored outline.
// POST /api/path/overview
func (s *Server) OverviewPath(c echo.Context) error {
	var req overviewPathRequest
	if err := s.bindPath(c, &req); err != nil {
		return badBody(c, err)
	}

	width := valueOr(req.Width, s.cfg.PathWidth)
	height := valueOr(req.Height, s.cfg.PathHeight)

	return c.JSON(http.StatusOK, pathResponse{
		Path: waveform.BuildOverviewPath(req.Peaks, width, height),
	})
}

// ViewportPath renders a zoomed window of the min/max series.
// POST /api/path/viewport
func (s *Server) ViewportPath(c echo.Context) error {
	var req viewportPathRequest
	if err := s.bindPath(c, &req); err != nil {
		return badBody(c, err)
	}
	if req.SampleCount != nil && *req.SampleCount > s.cfg.MaxViewportSamples {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("sampleCount exceeds %d", s.cfg.MaxViewportSamples),
		})
	}

	v := waveform.Viewport{
		Width:       valueOr(req.Width, s.cfg.PathWidth),
		Height:      valueOr(req.Height, s.cfg.PathHeight),
		Start:       valueOr(req.ViewportStart, 0),
		End:         valueOr(req.ViewportEnd, 1),
		SampleCount: valueOr(req.SampleCount, s.cfg.ViewportSamples),
	}

	return c.JSON(http.StatusOK, pathResponse{
		Path: waveform.BuildViewportPath(req.MinValues, req.MaxValues, v),
	})
}

// bindPath decodes a JSON body of at most MaxPathBodyBytes into req.
func (s *Server) bindPath(c echo.Context, req any) error {
	r := c.Request()
	r.Body = http.MaxBytesReader(c.Response(), r.Body, s.cfg.MaxPathBodyBytes)

	return c.Bind(req)
}

func badBody(c echo.Context, err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return c.JSON(http.StatusRequestEntityTooLarge, map[string]string{"error": "request body too large"})
	}
	return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
}

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
