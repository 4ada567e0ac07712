// Copyright 2026 The schedlab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotchart renders report charts as PNG images using gonum
// plot.
package plotchart

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/schedlab/timings/report"
)

// Default image geometry.
const (
	DefaultWidth  = 14 * vg.Inch
	DefaultHeight = 8 * vg.Inch
	DefaultDPI    = 150
)

const captionPad = 6 // points around caption text

// A Renderer draws report charts as PNG images.
// The zero value uses the default geometry.
type Renderer struct {
	Width, Height vg.Length
	DPI           int
}

var _ report.Renderer = Renderer{}

// Render draws c and writes it to w as a PNG image.
func (r Renderer) Render(w io.Writer, c *report.Chart) error {
	width, height, dpi := r.Width, r.Height, r.DPI
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}
	if dpi == 0 {
		dpi = DefaultDPI
	}

	p, err := newPlot(c)
	if err != nil {
		return err
	}

	img := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(color.White))
	dc := draw.New(img)

	caption := c.Caption()
	if caption == "" {
		p.Draw(dc)
	} else {
		sty := p.Legend.TextStyle
		sty.Color = color.Black
		sty.Font.Size = vg.Points(10)
		sty.XAlign = draw.XCenter
		sty.YAlign = draw.YCenter

		pad := vg.Points(captionPad)
		boxH := sty.Height(caption) + 2*pad
		boxW := sty.Width(caption) + 2*pad
		bandH := boxH + 2*pad

		p.Draw(draw.Crop(dc, 0, 0, bandH, 0))

		mid := vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Min.Y + bandH/2}
		x0, x1 := mid.X-boxW/2, mid.X+boxW/2
		y0, y1 := mid.Y-boxH/2, mid.Y+boxH/2
		dc.FillPolygon(c.Verdict.Background(), []vg.Point{{X: x0, Y: y0}, {X: x0, Y: y1}, {X: x1, Y: y1}, {X: x1, Y: y0}})
		dc.FillText(sty, mid, caption)
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("writing chart: %w", err)
	}
	return nil
}

func newPlot(c *report.Chart) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = c.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Title.Padding = vg.Points(20)
	p.Y.Label.Text = c.YLabel
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)
	p.X.Tick.Label.Font.Size = vg.Points(11)

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Color = color.Gray{0xB3}
	grid.Horizontal.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(grid)

	if len(c.Bars) == 0 {
		return p, nil
	}

	var names []string
	var tops plotter.XYs
	var values []string
	for i, b := range c.Bars {
		bar, err := plotter.NewBarChart(plotter.Values{b.Mean}, vg.Points(90))
		if err != nil {
			return nil, fmt.Errorf("bar %q: %w", b.Label, err)
		}
		bar.XMin = float64(i)
		bar.Color = b.Color
		bar.LineStyle.Width = 0
		p.Add(bar)

		names = append(names, b.Name)
		tops = append(tops, plotter.XY{X: float64(i), Y: b.Mean})
		values = append(values, b.ValueLabel())
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: tops, Labels: values})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Color = color.Black
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YBottom
		labels.TextStyle[i].Font.Size = vg.Points(10)
	}
	labels.Offset = vg.Point{Y: vg.Points(3)}
	p.Add(labels)

	p.NominalX(names...)
	// Center the bars in their slots.
	p.X.Min = -0.5
	p.X.Max = float64(len(c.Bars)) - 0.5
	if p.Y.Min > 0 {
		p.Y.Min = 0
	}
	return p, nil
}
