// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"math"
	"strconv"
	"strings"

	"github.com/ik5/wavepeaks/utils"
)

// Default drawing area and viewport resolution for path builders.
const (
	DefaultWidth          = 1000
	DefaultHeight         = 100
	DefaultViewportPoints = 1400
	// MinViewportPoints is the lowest resolution BuildViewportPath resamples to.
	MinViewportPoints = 64

	minViewportSpan = 0.0001
)

// Viewport selects the window [Start, End] of a normalized [0, 1] timeline
// and the number of points it is resampled to.
type Viewport struct {
	Width       float64
	Height      float64
	Start       float64
	End         float64
	SampleCount int
}

// DefaultViewport shows the whole timeline in the default drawing area.
func DefaultViewport() Viewport {
	return Viewport{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Start:       0,
		End:         1,
		SampleCount: DefaultViewportPoints,
	}
}

// BuildOverviewPath renders peaks as a closed SVG outline, mirrored around
// the vertical center of a width x height area. Empty peaks produce a flat
// rectangle on the midline.
func BuildOverviewPath(peaks []float64, width, height float64) string {
	midline, halfHeight := verticalScale(height)
	if len(peaks) == 0 {
		return flatPath(width, midline)
	}

	span := float64(max(1, len(peaks)-1))
	p := newPathWriter(2*len(peaks) + 2)
	p.move(0, midline)

	for i, v := range peaks {
		p.line(float64(i)/span*width, midline-unitPeak(v)*halfHeight)
	}
	for i := len(peaks) - 1; i >= 0; i-- {
		p.line(float64(i)/span*width, midline+unitPeak(peaks[i])*halfHeight)
	}

	return p.close()
}

// BuildViewportPath renders the signed min/max series inside a viewport.
// Both series are linearly resampled at v.SampleCount+1 evenly spaced
// positions of the window, so zooming never shows bucket steps. Empty input
// produces the same flat rectangle as BuildOverviewPath.
func BuildViewportPath(minValues, maxValues []float64, v Viewport) string {
	midline, halfHeight := verticalScale(v.Height)
	if len(minValues) == 0 || len(maxValues) == 0 {
		return flatPath(v.Width, midline)
	}

	start := utils.Clamp(finite(v.Start), 0, 1)
	end := v.End
	if math.IsNaN(end) {
		end = 1
	}
	end = math.Max(start+minViewportSpan, math.Min(1, end))
	count := max(MinViewportPoints, v.SampleCount)

	upper := make([]float64, count+1)
	lower := make([]float64, count+1)

	for i := range count + 1 {
		pos := utils.Lerp(start, end, float64(i)/float64(count))
		hi := utils.Clamp(seriesAt(maxValues, pos), -1, 1)
		lo := utils.Clamp(seriesAt(minValues, pos), -1, 1)

		yA := midline - hi*halfHeight
		yB := midline - lo*halfHeight
		upper[i] = math.Min(yA, yB)
		lower[i] = math.Max(yA, yB)
	}

	p := newPathWriter(2*count + 3)
	p.move(0, upper[0])

	for i := 0; i <= count; i++ {
		p.line(float64(i)/float64(count)*v.Width, upper[i])
	}
	for i := count; i >= 0; i-- {
		p.line(float64(i)/float64(count)*v.Width, lower[i])
	}

	return p.close()
}

// seriesAt samples s at normalized position pos in [0, 1], interpolating
// linearly between neighbouring buckets.
func seriesAt(s []float64, pos float64) float64 {
	switch len(s) {
	case 0:
		return 0
	case 1:
		return finite(s[0])
	}

	scaled := utils.Clamp(pos, 0, 1) * float64(len(s)-1)
	idx := int(scaled)
	frac := scaled - float64(idx)
	next := min(idx+1, len(s)-1)

	return utils.Lerp(finite(s[idx]), finite(s[next]), frac)
}

func verticalScale(height float64) (midline, halfHeight float64) {
	midline = height / 2
	return midline, math.Max(2, midline-2)
}

func unitPeak(v float64) float64 {
	return utils.Clamp(finite(v), 0, 1)
}

// finite maps NaN and infinities to silence.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func flatPath(width, midline float64) string {
	p := newPathWriter(4)
	p.move(0, midline)
	p.line(width, midline)
	p.line(width, midline+0.5)
	p.line(0, midline+0.5)
	return p.close()
}

// pathWriter emits SVG path data in the "M x,y L x,y ... Z" form.
type pathWriter struct {
	sb  strings.Builder
	num []byte
}

func newPathWriter(points int) *pathWriter {
	p := &pathWriter{num: make([]byte, 0, 32)}
	p.sb.Grow(points * 24)
	return p
}

func (p *pathWriter) move(x, y float64) { p.point("M ", x, y) }
func (p *pathWriter) line(x, y float64) { p.point("L ", x, y) }

func (p *pathWriter) point(cmd string, x, y float64) {
	p.sb.WriteString(cmd)
	p.num = strconv.AppendFloat(p.num[:0], x, 'f', -1, 64)
	p.sb.Write(p.num)
	p.sb.WriteByte(',')
	p.num = strconv.AppendFloat(p.num[:0], y, 'f', -1, 64)
	p.sb.Write(p.num)
	p.sb.WriteByte(' ')
}

func (p *pathWriter) close() string {
	p.sb.WriteByte('Z')
	return p.sb.String()
}
