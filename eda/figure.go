// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eda

// A Figure is the backend-independent description of one plot. Each
// Kind builds exactly one concrete Figure type:
//
//	Histogram            *HistFigure
//	BoxPlot              *BoxFigure
//	CountPlot, BarPlot   *BarFigure
//	LinePlot             *LineFigure
//	ScatterPlot          *ScatterFigure
//	Heatmap              *HeatmapFigure
//	PairPlot             *PairFigure
type Figure interface {
	Head() *Header
}

// Header holds the parts common to all figures.
type Header struct {
	Kind   Kind
	Title  string
	XLabel string
	YLabel string
}

func (h *Header) Head() *Header {
	return h
}

// A Bin is one fixed-width histogram bin covering [Lo, Hi). The last
// bin of a histogram also includes Hi.
type Bin struct {
	Lo, Hi float64
	Count  int
}

type HistFigure struct {
	Header
	Column string
	Bins   []Bin

	// N is the number of values counted in Bins.
	N int
}

// BoxStats summarizes a sample for a box plot. The whiskers extend to
// the most extreme values within 1.5 IQR of the box.
type BoxStats struct {
	Q1, Median, Q3 float64
	Lo, Hi         float64
	Outliers       []float64
}

type BoxFigure struct {
	Header
	Column string
	Box    BoxStats
	N      int
}

// BarFigure is one bar per category. Countplots use it with Values
// holding frequencies.
type BarFigure struct {
	Header
	Categories []string
	Values     []float64
}

// LineFigure is a sequence of points joined in order. If an axis is
// categorical, its values are indexes into the corresponding
// Categories slice, which are in first-appearance order.
type LineFigure struct {
	Header
	X, Y        []float64
	XCategories []string
	YCategories []string
}

type ScatterFigure struct {
	Header
	X, Y  []float64
	Alpha float64
}

// HeatmapFigure is a symmetric correlation matrix. Corr[i][j] is the
// correlation of Columns[i] and Columns[j].
type HeatmapFigure struct {
	Header
	Columns []string
	Corr    [][]float64
}

// PairFigure is a grid of plots over Columns. The off-diagonal cell
// (i, j) plots Columns[j] against Columns[i] using the rows where both
// are present. Diag[i] is a histogram of Columns[i].
type PairFigure struct {
	Header
	Columns []string
	Data    [][]float64
	Diag    [][]Bin
}
