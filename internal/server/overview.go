// SPDX-License-Identifier: EPL-2.0

package server

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ik5/wavepeaks"
	"github.com/ik5/wavepeaks/formats/wav"
	"github.com/ik5/wavepeaks/waveform"
	"github.com/labstack/echo/v4"
)

// upload is the audio payload of an overview request.
type upload struct {
	name      string
	mimeType  string
	data      []byte
	multipart bool
}

// Overview extracts a waveform overview from an uploaded file.
// POST /api/overview?name=&resolution=
//
// The body is either the raw file or a multipart form with a "file" field.
// Raw bodies are WAV unless name carries another registered extension.
func (s *Server) Overview(c echo.Context) error {
	opts := waveform.Options{
		SourceName: c.QueryParam("name"),
		Resolution: s.cfg.Resolution,
	}
	if v := c.QueryParam("resolution"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid resolution"})
		}
		opts.Resolution = waveform.ExplicitResolution(r)
	}

	req := c.Request()
	req.Body = http.MaxBytesReader(c.Response(), req.Body, s.cfg.MaxUploadBytes)

	var (
		up  upload
		err error
	)
	if strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		up, err = readMultipart(c)
	} else {
		up.name = opts.SourceName
		up.mimeType = req.Header.Get(echo.HeaderContentType)
		up.data, err = io.ReadAll(req.Body)
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return c.JSON(http.StatusRequestEntityTooLarge, map[string]string{"error": "upload too large"})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if opts.SourceName == "" {
		opts.SourceName = up.name
	}

	format, ok := s.format(up)
	if !ok {
		return c.JSON(http.StatusUnsupportedMediaType, map[string]string{"error": "unsupported audio format"})
	}

	ov, err := wavepeaks.Overview(s.registry, format, bytes.NewReader(up.data), opts)
	if err != nil {
		kind := wav.KindName(err)
		if kind == "" {
			kind = "DecodeFailed"
		}
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": err.Error(),
			"kind":  kind,
		})
	}

	return c.JSON(http.StatusOK, ov)
}

func readMultipart(c echo.Context) (upload, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return upload{}, err
	}

	f, err := fh.Open()
	if err != nil {
		return upload{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return upload{}, err
	}

	return upload{
		name:      fh.Filename,
		mimeType:  fh.Header.Get(echo.HeaderContentType),
		data:      data,
		multipart: true,
	}, nil
}

// format picks the registry key for an upload. Multipart files must look
// like WAV or carry a registered extension; raw bodies default to WAV.
func (s *Server) format(up upload) (string, bool) {
	if wav.IsLikelyWav(up.name, up.mimeType) {
		return "wav", true
	}

	if key, _, err := s.registry.ForFile(up.name); err == nil {
		return key, true
	}

	if !up.multipart && filepath.Ext(up.name) == "" {
		return "wav", true
	}

	return "", false
}
