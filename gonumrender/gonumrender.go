// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gonumrender draws eda figures using gonum/plot. It supports
// the raster and vector formats of gonum/plot's vg backends.
package gonumrender

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/aclements/edaplot/eda"
	"golang.org/x/image/bmp"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// dpi is the resolution of raster output.
const dpi = 96

// minData is the smallest width and height of a plot's data area.
const minData = 10 * vg.Millimeter

// ErrTooSmall is returned when the image is too small to hold the
// figure's axes and data.
var ErrTooSmall = errors.New("image too small for figure")

// Formats lists the supported values of Renderer.Format.
var Formats = []string{"png", "jpg", "tiff", "bmp", "pdf", "svg", "eps"}

// Renderer is an eda.Renderer backed by gonum/plot.
type Renderer struct {
	// Format is the image format, one of Formats. If empty, it
	// is "png".
	Format string
}

func (r Renderer) Ext() string {
	if r.Format == "" {
		return "png"
	}
	return r.Format
}

// Render draws fig at width x height pixels.
func (r Renderer) Render(w io.Writer, fig eda.Figure, width, height int) error {
	c, err := r.canvas(px(width), px(height))
	if err != nil {
		return err
	}
	dc := draw.New(c)
	if pf, ok := fig.(*eda.PairFigure); ok {
		if err := drawPair(dc, pf); err != nil {
			return err
		}
	} else {
		p, err := Plot(fig)
		if err != nil {
			return err
		}
		if err := checkArea(p, dc); err != nil {
			return err
		}
		p.Draw(dc)
	}
	_, err = c.WriteTo(w)
	return err
}

func (r Renderer) canvas(w, h vg.Length) (vg.CanvasWriterTo, error) {
	if r.Ext() == "bmp" {
		return bmpCanvas{vgimg.New(w, h)}, nil
	}
	return draw.NewFormattedCanvas(w, h, r.Ext())
}

// bmpCanvas is a raster canvas that writes itself as a BMP image.
type bmpCanvas struct {
	*vgimg.Canvas
}

func (c bmpCanvas) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := bmp.Encode(cw, c.Image())
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// checkArea returns an error if p's data area on c is smaller than
// minData. Drawing into a degenerate area does not terminate.
func checkArea(p *plot.Plot, c draw.Canvas) error {
	da := p.DataCanvas(c)
	w, h := da.Max.X-da.Min.X, da.Max.Y-da.Min.Y
	if !(w >= minData && h >= minData) {
		return fmt.Errorf("gonumrender: %w: data area %.0fx%.0f px, need %.0f", ErrTooSmall, w/vg.Inch*dpi, h/vg.Inch*dpi, minData/vg.Inch*dpi)
	}
	return nil
}

func px(n int) vg.Length {
	return vg.Length(n) * vg.Inch / dpi
}

// Plot returns a gonum plot of fig. PairFigures are drawn as a grid of
// plots and are not supported by Plot.
func Plot(fig eda.Figure) (*plot.Plot, error) {
	p := plot.New()
	h := fig.Head()
	p.Title.Text = h.Title
	p.X.Label.Text = h.XLabel
	p.Y.Label.Text = h.YLabel

	var err error
	switch fig := fig.(type) {
	case *eda.HistFigure:
		err = addHist(p, fig.Bins)
	case *eda.BoxFigure:
		err = addBox(p, fig)
	case *eda.BarFigure:
		err = addBars(p, fig)
	case *eda.LineFigure:
		err = addLine(p, fig)
	case *eda.ScatterFigure:
		err = addScatter(p, fig.X, fig.Y, fig.Alpha)
	case *eda.HeatmapFigure:
		err = addHeatmap(p, fig)
	default:
		err = fmt.Errorf("gonumrender: unsupported figure type %T", fig)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func addHist(p *plot.Plot, bins []eda.Bin) error {
	if len(bins) == 0 {
		return fmt.Errorf("gonumrender: histogram has no bins")
	}
	h := &plotter.Histogram{
		Width:     bins[0].Hi - bins[0].Lo,
		FillColor: eda.FillColor,
		LineStyle: plotter.DefaultLineStyle,
	}
	h.LineStyle.Color = eda.EdgeColor
	for _, b := range bins {
		h.Bins = append(h.Bins, plotter.HistogramBin{Min: b.Lo, Max: b.Hi, Weight: float64(b.Count)})
	}
	p.Add(h)
	return nil
}

func segment(x0, y0, x1, y1 float64) (*plotter.Line, error) {
	return plotter.NewLine(plotter.XYs{{X: x0, Y: y0}, {X: x1, Y: y1}})
}

func addBox(p *plot.Plot, f *eda.BoxFigure) error {
	b := f.Box
	box, err := plotter.NewPolygon(plotter.XYs{
		{X: -0.25, Y: b.Q1}, {X: -0.25, Y: b.Q3}, {X: 0.25, Y: b.Q3}, {X: 0.25, Y: b.Q1},
	})
	if err != nil {
		return err
	}
	box.Color = eda.FillColor
	box.LineStyle.Color = eda.EdgeColor
	p.Add(box)

	for _, s := range [][4]float64{
		{-0.25, b.Median, 0.25, b.Median},
		{0, b.Q3, 0, b.Hi},
		{0, b.Q1, 0, b.Lo},
		{-0.1, b.Hi, 0.1, b.Hi},
		{-0.1, b.Lo, 0.1, b.Lo},
	} {
		l, err := segment(s[0], s[1], s[2], s[3])
		if err != nil {
			return err
		}
		l.LineStyle.Color = eda.EdgeColor
		p.Add(l)
	}

	if len(b.Outliers) > 0 {
		xys := make(plotter.XYs, len(b.Outliers))
		for i, y := range b.Outliers {
			xys[i].Y = y
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = eda.EdgeColor
		p.Add(s)
	}
	p.X.Min, p.X.Max = -1, 1
	p.X.Tick.Marker = plot.ConstantTicks([]plot.Tick{{Value: 0, Label: f.Column}})
	return nil
}

func addBars(p *plot.Plot, f *eda.BarFigure) error {
	// Leave a gap of half a bar between bars.
	width := vg.Points(math.Min(40, 600/(1.5*float64(len(f.Values)))))
	bars, err := plotter.NewBarChart(plotter.Values(f.Values), width)
	if err != nil {
		return err
	}
	bars.Color = eda.FillColor
	bars.LineStyle.Color = eda.EdgeColor
	p.Add(bars)
	p.NominalX(f.Categories...)
	return nil
}

func categoryTicks(names []string) plot.ConstantTicks {
	ticks := make([]plot.Tick, len(names))
	for i, n := range names {
		ticks[i] = plot.Tick{Value: float64(i), Label: n}
	}
	return ticks
}

func xys(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(xs))
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
	}
	return pts
}

func addLine(p *plot.Plot, f *eda.LineFigure) error {
	l, s, err := plotter.NewLinePoints(xys(f.X, f.Y))
	if err != nil {
		return err
	}
	l.LineStyle.Color = eda.LineColor
	s.GlyphStyle.Color = eda.LineColor
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(l, s)
	if f.XCategories != nil {
		p.X.Tick.Marker = categoryTicks(f.XCategories)
	}
	if f.YCategories != nil {
		p.Y.Tick.Marker = categoryTicks(f.YCategories)
	}
	return nil
}

func addScatter(p *plot.Plot, xs, ys []float64, alpha float64) error {
	s, err := plotter.NewScatter(xys(xs, ys))
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = eda.Fade(eda.PointColor, alpha)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = vg.Points(2.5)
	p.Add(s)
	return nil
}

// corrGrid is a plotter.GridXYZ over a correlation matrix with row 0
// at the top.
type corrGrid [][]float64

func (g corrGrid) Dims() (c, r int)   { return len(g), len(g) }
func (g corrGrid) Z(c, r int) float64 { return g[len(g)-1-r][c] }
func (g corrGrid) X(c int) float64    { return float64(c) }
func (g corrGrid) Y(r int) float64    { return float64(r) }

// gradient samples eda.Diverging as a gonum palette.Palette.
type gradient int

func (n gradient) Colors() []color.Color {
	cs := make([]color.Color, n)
	for i := range cs {
		cs[i] = eda.Diverging.Map(float64(i) / float64(n-1))
	}
	return cs
}

func addHeatmap(p *plot.Plot, f *eda.HeatmapFigure) error {
	n := len(f.Corr)
	hm := plotter.NewHeatMap(corrGrid(f.Corr), gradient(101))
	hm.Min, hm.Max = -1, 1
	p.Add(hm)

	var labels plotter.XYLabels
	for i, row := range f.Corr {
		for j, r := range row {
			labels.XYs = append(labels.XYs, plotter.XY{X: float64(j), Y: float64(n - 1 - i)})
			labels.Labels = append(labels.Labels, fmt.Sprintf("%.2f", r))
		}
	}
	lb, err := plotter.NewLabels(labels)
	if err != nil {
		return err
	}
	for i := range lb.TextStyle {
		lb.TextStyle[i].XAlign = text.XCenter
		lb.TextStyle[i].YAlign = text.YCenter
	}
	p.Add(lb)

	rev := make([]string, n)
	for i, c := range f.Columns {
		rev[n-1-i] = c
	}
	p.NominalX(f.Columns...)
	p.NominalY(rev...)
	return nil
}

// titleHeight is the space above a pair grid reserved for its title.
const titleHeight = 10 * vg.Millimeter

func drawPair(dc draw.Canvas, f *eda.PairFigure) error {
	n := len(f.Columns)
	plots := make([][]*plot.Plot, n)
	for i := range plots {
		plots[i] = make([]*plot.Plot, n)
		for j := range plots[i] {
			p := plot.New()
			if i == n-1 {
				p.X.Label.Text = f.Columns[j]
			}
			if j == 0 {
				p.Y.Label.Text = f.Columns[i]
			}
			var err error
			if i == j {
				err = addHist(p, f.Diag[i])
			} else {
				err = addScatter(p, f.Data[j], f.Data[i], 0.6)
			}
			if err != nil {
				return err
			}
			plots[i][j] = p
		}
	}

	grid := draw.Crop(dc, 0, 0, 0, -titleHeight)
	tiles := draw.Tiles{
		Rows: n, Cols: n,
		PadX: vg.Millimeter, PadY: vg.Millimeter,
		PadTop: vg.Millimeter, PadBottom: vg.Millimeter,
		PadLeft: vg.Millimeter, PadRight: vg.Millimeter,
	}
	canvases := plot.Align(plots, tiles, grid)
	for i := range plots {
		for j := range plots[i] {
			if err := checkArea(plots[i][j], canvases[i][j]); err != nil {
				return err
			}
		}
	}

	// The title plot also paints the background.
	tp := plot.New()
	tp.Title.Text = f.Title
	tp.HideAxes()
	tp.Draw(dc)

	for i := range plots {
		for j := range plots[i] {
			plots[i][j].Draw(canvases[i][j])
		}
	}
	return nil
}
