// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ggrender draws eda figures as SVG using go-gg.
//
// go-gg has no bar or box geometry, so bars, bins, and boxes are drawn
// as closed paths, one group per rectangle. Categorical axes are
// linear scales over category indexes with a formatter that names the
// integer ticks.
package ggrender

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/aclements/edaplot/eda"
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
)

// Renderer is an eda.Renderer that produces SVG.
type Renderer struct{}

func (Renderer) Ext() string { return "svg" }

func (Renderer) Render(w io.Writer, fig eda.Figure, width, height int) error {
	p, err := Plot(fig)
	if err != nil {
		return err
	}
	return p.WriteSVG(w, width, height)
}

// Plot returns a go-gg plot of fig.
func Plot(fig eda.Figure) (*gg.Plot, error) {
	var p *gg.Plot
	switch fig := fig.(type) {
	case *eda.HistFigure:
		p = histPlot(fig)
	case *eda.BoxFigure:
		p = boxPlot(fig)
	case *eda.BarFigure:
		p = barPlot(fig)
	case *eda.LineFigure:
		p = linePlot(fig)
	case *eda.ScatterFigure:
		p = scatterPlot(fig)
	case *eda.HeatmapFigure:
		p = heatmapPlot(fig)
	case *eda.PairFigure:
		p = pairPlot(fig)
	default:
		return nil, fmt.Errorf("ggrender: unsupported figure type %T", fig)
	}
	h := fig.Head()
	p.Add(gg.Title(h.Title), gg.AxisLabel("x", h.XLabel), gg.AxisLabel("y", h.YLabel))
	return p, nil
}

// rects accumulates closed rectangular paths.
type rects struct {
	x, y []float64
	id   []int
}

func (r *rects) add(x0, x1, y0, y1 float64) {
	id := len(r.id) / 5
	r.x = append(r.x, x0, x0, x1, x1, x0)
	r.y = append(r.y, y0, y1, y1, y0, y0)
	r.id = append(r.id, id, id, id, id, id)
}

func (r *rects) grouping() table.Grouping {
	t := new(table.Builder).Add("x", r.x).Add("y", r.y).Add("rect", r.id).Done()
	return table.GroupBy(t, "rect")
}

// addRects adds a layer drawing the rectangles in p's current data.
func addRects(p *gg.Plot) {
	p.Add(gg.LayerPaths{
		X:     "x",
		Y:     "y",
		Color: p.Const(eda.EdgeColor),
		Fill:  p.Const(eda.FillColor),
	})
}

// indexScale returns a linear scale whose integer ticks are labeled
// with names.
func indexScale(names []string) gg.ContinuousScaler {
	s := gg.NewLinearScaler()
	s.SetFormatter(func(x float64) string {
		i := int(math.Round(x))
		if float64(i) != x || i < 0 || i >= len(names) {
			return ""
		}
		return names[i]
	})
	return s
}

func histPlot(f *eda.HistFigure) *gg.Plot {
	var r rects
	for _, b := range f.Bins {
		r.add(b.Lo, b.Hi, 0, float64(b.Count))
	}
	p := gg.NewPlot(r.grouping())
	p.SetScale("y", gg.NewLinearScaler().Include(0))
	addRects(p)
	return p
}

func barPlot(f *eda.BarFigure) *gg.Plot {
	var r rects
	for i, v := range f.Values {
		x := float64(i)
		r.add(x-0.4, x+0.4, 0, v)
	}
	p := gg.NewPlot(r.grouping())
	p.SetScale("x", indexScale(f.Categories))
	p.SetScale("y", gg.NewLinearScaler().Include(0))
	addRects(p)
	return p
}

func boxPlot(f *eda.BoxFigure) *gg.Plot {
	b := f.Box
	var r rects
	r.add(-0.25, 0.25, b.Q1, b.Q3)
	p := gg.NewPlot(r.grouping())
	p.SetScale("x", indexScale([]string{f.Column}).SetMin(-1).SetMax(1))
	addRects(p)

	// Median, whiskers, and whisker caps.
	segs := new(table.Builder).
		Add("x", []float64{-0.25, 0.25, 0, 0, 0, 0, -0.1, 0.1, -0.1, 0.1}).
		Add("y", []float64{b.Median, b.Median, b.Q3, b.Hi, b.Q1, b.Lo, b.Hi, b.Hi, b.Lo, b.Lo}).
		Add("seg", []int{0, 0, 1, 1, 2, 2, 3, 3, 4, 4}).
		Done()
	p.SetData(table.GroupBy(segs, "seg"))
	p.Add(gg.LayerPaths{X: "x", Y: "y"})

	if len(b.Outliers) > 0 {
		p.SetData(new(table.Builder).
			Add("x", make([]float64, len(b.Outliers))).
			Add("y", b.Outliers).
			Done())
		p.Add(gg.LayerPoints{X: "x", Y: "y", Color: p.Const(eda.EdgeColor)})
	}
	return p
}

func linePlot(f *eda.LineFigure) *gg.Plot {
	p := gg.NewPlot(new(table.Builder).Add("x", f.X).Add("y", f.Y).Done())
	if f.XCategories != nil {
		p.SetScale("x", indexScale(f.XCategories))
	}
	if f.YCategories != nil {
		p.SetScale("y", indexScale(f.YCategories))
	}
	// Points are already in drawing order, so use paths rather
	// than lines.
	p.Add(gg.LayerPaths{X: "x", Y: "y", Color: p.Const(eda.LineColor)})
	p.Add(gg.LayerPoints{X: "x", Y: "y", Color: p.Const(eda.LineColor)})
	return p
}

func scatterPlot(f *eda.ScatterFigure) *gg.Plot {
	p := gg.NewPlot(new(table.Builder).Add("x", f.X).Add("y", f.Y).Done())
	p.Add(gg.LayerPoints{X: "x", Y: "y", Color: p.Const(eda.Fade(eda.PointColor, f.Alpha))})
	return p
}

// A cellText is the annotation of one heatmap cell. LayerTags makes
// one tag per distinct label, so each cell's label must be distinct
// even when the text is not.
type cellText struct {
	cell int
	text string
}

func (c cellText) String() string { return c.text }

func heatmapPlot(f *eda.HeatmapFigure) *gg.Plot {
	n := len(f.Columns)
	var xs, ys []int
	var fills []color.Color
	var labels []string
	var texts []cellText
	for i, row := range f.Corr {
		for j, r := range row {
			// Row 0 at the top.
			xs, ys = append(xs, j), append(ys, n-1-i)
			fills = append(fills, eda.CorrColor(r))
			labels = append(labels, fmt.Sprintf("%s, %s: %.2f", f.Columns[i], f.Columns[j], r))
			texts = append(texts, cellText{len(texts), fmt.Sprintf("%.2f", r)})
		}
	}
	rev := make([]string, n)
	for i, c := range f.Columns {
		rev[n-1-i] = c
	}

	p := gg.NewPlot(new(table.Builder).
		Add("x", xs).Add("y", ys).Add("fill", fills).Add("label", labels).
		Add("text", texts).
		Done())
	p.SetScale("x", indexScale(f.Columns))
	p.SetScale("y", indexScale(rev))
	p.Add(gg.LayerTiles{X: "x", Y: "y", Fill: "fill"})
	// Put the text just right of each cell's center.
	p.Add(gg.LayerTags{X: "x", Y: "y", Label: "text", OffsetX: 1})
	p.Add(gg.LayerTooltips{X: "x", Y: "y", Label: "label"})
	return p
}

// diagHeights scales bin counts into [lo, hi] so a histogram can share
// the y scale of the other panels in its row.
func diagHeights(bins []eda.Bin, lo, hi float64) []float64 {
	max := 0
	for _, b := range bins {
		if b.Count > max {
			max = b.Count
		}
	}
	hs := make([]float64, len(bins))
	for i, b := range bins {
		hs[i] = lo
		if max > 0 {
			hs[i] += (hi - lo) * float64(b.Count) / float64(max)
		}
	}
	return hs
}

func pairPlot(f *eda.PairFigure) *gg.Plot {
	var row, col, rect []int
	var xs, ys []float64
	var diag []bool
	add := func(i, j int, x, y float64, d bool, id int) {
		row, col = append(row, i), append(col, j)
		xs, ys = append(xs, x), append(ys, y)
		diag, rect = append(diag, d), append(rect, id)
	}
	n := len(f.Columns)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				for k, x := range f.Data[j] {
					y := f.Data[i][k]
					if !math.IsNaN(x) && !math.IsNaN(y) {
						add(i, j, x, y, false, -1)
					}
				}
				continue
			}
			bins := f.Diag[i]
			lo, hi := bins[0].Lo, bins[len(bins)-1].Hi
			for k, h := range diagHeights(bins, lo, hi) {
				var r rects
				r.add(bins[k].Lo, bins[k].Hi, lo, h)
				id := len(rect)
				for c := range r.x {
					add(i, j, r.x[c], r.y[c], true, id)
				}
			}
		}
	}
	t := new(table.Builder).
		Add("row", row).Add("col", col).
		Add("x", xs).Add("y", ys).
		Add("diag", diag).Add("rect", rect).
		Done()

	p := gg.NewPlot(t)
	name := func(v interface{}) string { return f.Columns[v.(int)] }
	p.Add(gg.FacetX{Col: "col", SplitXScales: true, Labeler: name})
	p.Add(gg.FacetY{Col: "row", SplitYScales: true, Labeler: name})
	all := p.Data()

	p.SetData(table.FilterEq(all, "diag", false))
	p.Add(gg.LayerPoints{X: "x", Y: "y", Color: p.Const(eda.Fade(eda.PointColor, 0.6))})

	p.SetData(table.GroupBy(table.FilterEq(all, "diag", true), "rect"))
	addRects(p)
	return p
}
