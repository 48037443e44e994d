// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gonumrender

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/aclements/edaplot/eda"
	"github.com/aclements/edaplot/frame"
	"github.com/aclements/go-gg/table"
)

func sample() *frame.Frame {
	return frame.MustNew(new(table.Builder).
		Add("age", []float64{25, 30, math.NaN(), 40, 35, 28}).
		Add("height", []float64{160, 170, 165, 180, 175, 168}).
		Add("weight", []float64{55, 70, 60, 85, 72, 64}).
		Add("city", []string{"NY", "LA", "NY", "SF", "LA", "NY"}).
		Done())
}

func figures(t *testing.T) []eda.Figure {
	f := sample()
	var figs []eda.Figure
	for _, test := range []struct {
		k    eda.Kind
		cols []string
	}{
		{eda.Histogram, []string{"age"}},
		{eda.BoxPlot, []string{"weight"}},
		{eda.CountPlot, []string{"city"}},
		{eda.BarPlot, []string{"city", "weight"}},
		{eda.LinePlot, []string{"city", "height"}},
		{eda.ScatterPlot, []string{"height", "weight"}},
		{eda.Heatmap, []string{"age", "height", "weight"}},
		{eda.PairPlot, []string{"age", "height", "weight"}},
	} {
		g, err := eda.Preprocess(f, test.k, test.cols)
		if err != nil {
			t.Fatal(err)
		}
		fig, err := eda.Build(g, test.k, test.cols)
		if err != nil {
			t.Fatalf("%v %v: %v", test.k, test.cols, err)
		}
		figs = append(figs, fig)
	}
	return figs
}

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestRenderPNG(t *testing.T) {
	for _, fig := range figures(t) {
		w, h := 320, 240
		if _, ok := fig.(*eda.PairFigure); ok {
			w, h = 3*eda.PanelSize, 3*eda.PanelSize
		}
		var buf bytes.Buffer
		if err := (Renderer{}).Render(&buf, fig, w, h); err != nil {
			t.Errorf("%v: %v", fig.Head().Kind, err)
			continue
		}
		if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
			t.Errorf("%v: output is not a PNG", fig.Head().Kind)
		}
	}
}

func TestRenderFormats(t *testing.T) {
	fig := figures(t)[0]
	for _, test := range []struct {
		format string
		magic  string
	}{
		{"svg", "<svg"},
		{"pdf", "%PDF"},
		{"bmp", "BM"},
	} {
		r := Renderer{Format: test.format}
		if r.Ext() != test.format {
			t.Errorf("Ext: want %q; got %q", test.format, r.Ext())
		}
		var buf bytes.Buffer
		if err := r.Render(&buf, fig, 320, 240); err != nil {
			t.Errorf("%s: %v", test.format, err)
			continue
		}
		if !bytes.Contains(buf.Bytes(), []byte(test.magic)) {
			t.Errorf("%s: output missing %q", test.format, test.magic)
		}
	}

	if err := (Renderer{Format: "gif"}).Render(new(bytes.Buffer), fig, 10, 10); err == nil {
		t.Errorf("want error for unsupported format")
	}
	if (Renderer{}).Ext() != "png" {
		t.Errorf("default format should be png")
	}
}

func TestPlotRejectsPair(t *testing.T) {
	figs := figures(t)
	if _, err := Plot(figs[len(figs)-1]); err == nil {
		t.Errorf("Plot should reject pair figures")
	}
}

func TestCorrGrid(t *testing.T) {
	m := corrGrid{{1, 2}, {3, 4}}
	if c, r := m.Dims(); c != 2 || r != 2 {
		t.Errorf("Dims: want 2, 2; got %d, %d", c, r)
	}
	// Row 0 of the matrix is the top of the grid.
	if z := m.Z(0, 1); z != 1 {
		t.Errorf("Z(0, 1): want 1; got %v", z)
	}
	if z := m.Z(1, 0); z != 4 {
		t.Errorf("Z(1, 0): want 4; got %v", z)
	}
	if cs := gradient(5).Colors(); len(cs) != 5 {
		t.Errorf("want 5 colors; got %d", len(cs))
	}
}

func TestCountBars(t *testing.T) {
	fig := figures(t)[2].(*eda.BarFigure)
	p, err := Plot(fig)
	if err != nil {
		t.Fatal(err)
	}
	// NY appears three times.
	if p.Y.Min != 0 || p.Y.Max != 3 {
		t.Errorf("y range: want [0, 3]; got [%v, %v]", p.Y.Min, p.Y.Max)
	}
}

func TestSmallPairGrid(t *testing.T) {
	figs := figures(t)
	pair := figs[len(figs)-1]
	err := (Renderer{}).Render(new(bytes.Buffer), pair, 320, 240)
	if !errors.Is(err, ErrTooSmall) {
		t.Errorf("want ErrTooSmall; got %v", err)
	}
	if err := (Renderer{}).Render(new(bytes.Buffer), figs[0], 20, 20); !errors.Is(err, ErrTooSmall) {
		t.Errorf("20x20 histogram: want ErrTooSmall; got %v", err)
	}
}

func TestHeatmapAnnotations(t *testing.T) {
	fig := figures(t)[6].(*eda.HeatmapFigure)
	var buf bytes.Buffer
	if err := (Renderer{Format: "svg"}).Render(&buf, fig, 600, 400); err != nil {
		t.Fatal(err)
	}
	for _, row := range fig.Corr {
		for _, r := range row {
			if text := fmt.Sprintf(">%.2f</text>", r); !bytes.Contains(buf.Bytes(), []byte(text)) {
				t.Errorf("output missing cell text %q", text)
			}
		}
	}
}
