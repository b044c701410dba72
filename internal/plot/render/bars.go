// Derived from https://github.com/gonum/plot/blob/v0.14.0/plotter/barchart.go:
// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"errors"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Bar is one rectangle in data coordinates: centred on X, spanning
// [Base, Base+Height] vertically.
type Bar struct {
	X      float64
	Base   float64
	Height float64
}

// Bars draws vertical bars whose position and width are given in data units,
// unlike plotter.BarChart which offsets bars in canvas units. Grouped bars
// are expressed by shifting X, stacked bars by raising Base.
type Bars struct {
	Bars []Bar

	// Width is the width of every bar in x-axis units.
	Width float64

	// Color is the fill color of the bars.
	Color color.Color

	// LineStyle is the style of the outline of the bars.
	draw.LineStyle
}

func NewBars(bars []Bar, width float64) (*Bars, error) {
	if width <= 0 {
		return nil, errors.New("render: bar width was not positive")
	}
	for _, b := range bars {
		if math.IsNaN(b.Height) || math.IsInf(b.Height, 0) || math.IsNaN(b.Base) || math.IsInf(b.Base, 0) {
			return nil, errors.New("render: bar has a non-finite extent")
		}
	}
	return &Bars{
		Bars:      append([]Bar(nil), bars...),
		Width:     width,
		Color:     color.Black,
		LineStyle: plotter.DefaultLineStyle,
	}, nil
}

// Plot implements the plot.Plotter interface.
func (b *Bars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for _, bar := range b.Bars {
		xMin := trX(bar.X - b.Width/2)
		xMax := trX(bar.X + b.Width/2)
		yMin := trY(bar.Base)
		yMax := trY(bar.Base + bar.Height)

		pts := []vg.Point{
			{X: xMin, Y: yMin},
			{X: xMin, Y: yMax},
			{X: xMax, Y: yMax},
			{X: xMax, Y: yMin},
		}
		c.FillPolygon(b.Color, c.ClipPolygonXY(pts))

		pts = append(pts, vg.Point{X: xMin, Y: yMin})
		c.StrokeLines(b.LineStyle, c.ClipLinesXY(pts)...)
	}
}

// DataRange implements the plot.DataRanger interface.
func (b *Bars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, bar := range b.Bars {
		xmin = math.Min(xmin, bar.X-b.Width/2)
		xmax = math.Max(xmax, bar.X+b.Width/2)
		top := bar.Base + bar.Height
		ymin = math.Min(ymin, math.Min(bar.Base, top))
		ymax = math.Max(ymax, math.Max(bar.Base, top))
	}
	return xmin, xmax, ymin, ymax
}

// Thumbnail implements the plot.Thumbnailer interface.
func (b *Bars) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(b.Color, c.ClipPolygonY(pts))

	pts = append(pts, vg.Point{X: c.Min.X, Y: c.Min.Y})
	c.StrokeLines(b.LineStyle, c.ClipLinesY(pts)...)
}
