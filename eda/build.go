// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eda

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/aclements/edaplot/frame"
	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
)

const (
	histogramBins  = 30
	pairBins       = 20
	maxPairColumns = 6
	scatterAlpha   = 0.6
)

// Build validates f for plot kind k and computes the Figure for it.
// The first two available columns are the x and y axes of kinds that
// have them.
//
// Build returns the errors of Validate, a *RequirementError if the
// axis types don't suit k, and a *RenderError if the statistics for
// the figure are undefined on f.
func Build(f *frame.Frame, k Kind, columns []string) (Figure, error) {
	if err := Validate(f, k, columns); err != nil {
		return nil, err
	}
	avail := f.Available(columns)
	nums := f.NumericColumns(avail)

	var fig Figure
	var err error
	switch k {
	case Histogram:
		fig, err = buildHist(f, nums[0])
	case BoxPlot:
		fig, err = buildBox(f, nums[0])
	case CountPlot:
		fig, err = buildCount(f, avail[0])
	case BarPlot:
		fig, err = buildBar(f, avail[0], avail[1])
	case LinePlot:
		fig, err = buildLine(f, avail[0], avail[1])
	case ScatterPlot:
		fig, err = buildScatter(f, avail[0], avail[1])
	case Heatmap:
		fig, err = buildHeatmap(f, nums)
	case PairPlot:
		if len(nums) > maxPairColumns {
			nums = nums[:maxPairColumns]
		}
		fig, err = buildPair(f, nums)
	default:
		return nil, &RenderError{k, ErrUnknownKind}
	}
	if err != nil {
		var re *RequirementError
		if errors.As(err, &re) {
			return nil, err
		}
		return nil, &RenderError{k, err}
	}
	return fig, nil
}

func noValues(col string) error {
	return fmt.Errorf("%w: column %q has no values", ErrDegenerate, col)
}

func buildHist(f *frame.Frame, col string) (Figure, error) {
	xs := f.Present(col)
	if len(xs) == 0 {
		return nil, noValues(col)
	}
	return &HistFigure{
		Header: Header{Histogram, "Histogram of " + col, col, "Frequency"},
		Column: col,
		Bins:   histBins(xs, histogramBins),
		N:      len(xs),
	}, nil
}

func buildBox(f *frame.Frame, col string) (Figure, error) {
	xs := f.Present(col)
	if len(xs) == 0 {
		return nil, noValues(col)
	}
	return &BoxFigure{
		Header: Header{BoxPlot, "Boxplot of " + col, col, "Value"},
		Column: col,
		Box:    boxStats(xs),
		N:      len(xs),
	}, nil
}

func notNaN(v float64) bool { return !math.IsNaN(v) }

func notEmpty(v string) bool { return v != "" }

// present returns the rows of f's table where none of cols are
// missing.
func present(f *frame.Frame, cols ...string) table.Grouping {
	var g table.Grouping = f.Table()
	for _, col := range cols {
		if f.IsNumeric(col) {
			g = table.Filter(g, notNaN, col)
		} else {
			g = table.Filter(g, notEmpty, col)
		}
	}
	return g
}

func rows(g table.Grouping) int {
	n := 0
	for _, gid := range g.Tables() {
		n += g.Table(gid).Len()
	}
	return n
}

func formatValue(v interface{}) string {
	if x, ok := v.(float64); ok {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return fmt.Sprint(v)
}

// categories returns the distinct values of col in g as strings and
// the number of times each occurs. Numeric values are in ascending
// order, others in order of first appearance.
func categories(f *frame.Frame, g table.Grouping, col string) ([]string, []float64) {
	t := table.Flatten(g)
	var keys []string
	if f.IsNumeric(col) {
		var xs []float64
		slice.Convert(&xs, t.MustColumn(col))
		sort.Float64s(xs)
		for _, x := range xs {
			keys = append(keys, formatValue(x))
		}
	} else {
		slice.Convert(&keys, t.MustColumn(col))
	}

	var cats []string
	var counts []float64
	pos := make(map[string]int)
	for _, k := range keys {
		i, ok := pos[k]
		if !ok {
			i = len(cats)
			pos[k] = i
			cats = append(cats, k)
			counts = append(counts, 0)
		}
		counts[i]++
	}
	return cats, counts
}

func buildCount(f *frame.Frame, x string) (Figure, error) {
	g := present(f, x)
	if rows(g) == 0 {
		return nil, noValues(x)
	}
	cats, counts := categories(f, g, x)
	return &BarFigure{
		Header:     Header{CountPlot, "Countplot of " + x, x, "Count"},
		Categories: cats,
		Values:     counts,
	}, nil
}

// buildBar plots the mean of y for each distinct value of x. If x is
// numeric the bars are in ascending order of x; otherwise they are in
// order of first appearance.
func buildBar(f *frame.Frame, x, y string) (Figure, error) {
	if !f.IsNumeric(y) {
		return nil, unmet(BarPlot, "categorical x-axis and numeric y-axis")
	}
	g := present(f, x, y)
	if rows(g) == 0 {
		return nil, fmt.Errorf("%w: no rows with both %q and %q", ErrDegenerate, x, y)
	}
	g = ggstat.Agg(x)(ggstat.AggMean(y)).F(g)
	head := Header{BarPlot, "Barplot: " + x + " vs " + y, x, y}
	if f.IsNumeric(x) {
		g = table.SortBy(g, x)
		head.Title = "Barplot: " + x + " vs Mean " + y
		head.YLabel = "Mean " + y
	}
	t := table.Flatten(g)

	fig := &BarFigure{Header: head}
	if f.IsNumeric(x) {
		var xs []float64
		slice.Convert(&xs, t.MustColumn(x))
		for _, v := range xs {
			fig.Categories = append(fig.Categories, formatValue(v))
		}
	} else {
		slice.Convert(&fig.Categories, t.MustColumn(x))
	}
	slice.Convert(&fig.Values, t.MustColumn("mean "+y))
	return fig, nil
}

// index maps each distinct value of xs to its position in order of
// first appearance.
func index(xs []string) ([]float64, []string) {
	pos := make(map[string]int)
	var cats []string
	out := make([]float64, len(xs))
	for i, x := range xs {
		p, ok := pos[x]
		if !ok {
			p = len(cats)
			pos[x] = p
			cats = append(cats, x)
		}
		out[i] = float64(p)
	}
	return out, cats
}

func buildLine(f *frame.Frame, x, y string) (Figure, error) {
	if !f.IsNumeric(x) && !f.IsNumeric(y) {
		return nil, unmet(LinePlot, "a numeric x-axis or y-axis")
	}
	var idx []int
	for i := 0; i < f.Len(); i++ {
		if !f.Missing(x, i) && !f.Missing(y, i) {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return nil, fmt.Errorf("%w: no rows with both %q and %q", ErrDegenerate, x, y)
	}
	if xs := f.Floats(x); xs != nil {
		sort.SliceStable(idx, func(i, j int) bool {
			return xs[idx[i]] < xs[idx[j]]
		})
	}

	fig := &LineFigure{Header: Header{LinePlot, "Lineplot: " + x + " vs " + y, x, y}}
	axis := func(col string) ([]float64, []string) {
		if vs := f.Floats(col); vs != nil {
			out := make([]float64, len(idx))
			for i, r := range idx {
				out[i] = vs[r]
			}
			return out, nil
		}
		vs := f.Strings(col)
		strs := make([]string, len(idx))
		for i, r := range idx {
			strs[i] = vs[r]
		}
		return index(strs)
	}
	fig.X, fig.XCategories = axis(x)
	fig.Y, fig.YCategories = axis(y)
	return fig, nil
}

func buildScatter(f *frame.Frame, x, y string) (Figure, error) {
	if !f.IsNumeric(x) || !f.IsNumeric(y) {
		return nil, unmet(ScatterPlot, "numeric x-axis and y-axis")
	}
	xs, ys := pairwise(f.Floats(x), f.Floats(y))
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: no rows with both %q and %q", ErrDegenerate, x, y)
	}
	return &ScatterFigure{
		Header: Header{ScatterPlot, "Scatterplot: " + x + " vs " + y, x, y},
		X:      xs,
		Y:      ys,
		Alpha:  scatterAlpha,
	}, nil
}

func buildHeatmap(f *frame.Frame, cols []string) (Figure, error) {
	n := len(cols)
	corr := make([][]float64, n)
	for i := range corr {
		corr[i] = make([]float64, n)
		corr[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r, ok := pearson(f.Floats(cols[i]), f.Floats(cols[j]))
			if !ok {
				return nil, fmt.Errorf("%w: correlation of %q and %q is undefined", ErrDegenerate, cols[i], cols[j])
			}
			corr[i][j], corr[j][i] = r, r
		}
	}
	return &HeatmapFigure{
		Header:  Header{Kind: Heatmap, Title: "Correlation Heatmap"},
		Columns: cols,
		Corr:    corr,
	}, nil
}

func buildPair(f *frame.Frame, cols []string) (Figure, error) {
	fig := &PairFigure{
		Header:  Header{Kind: PairPlot, Title: "Pairplot"},
		Columns: cols,
	}
	for _, col := range cols {
		xs := f.Present(col)
		if len(xs) == 0 {
			return nil, noValues(col)
		}
		fig.Data = append(fig.Data, append([]float64(nil), f.Floats(col)...))
		fig.Diag = append(fig.Diag, histBins(xs, pairBins))
	}
	return fig, nil
}
