// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eda

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// histBins counts xs into n equal-width bins spanning the range of xs.
// A constant sample is centered in a range of width 1.
func histBins(xs []float64, n int) []Bin {
	if len(xs) == 0 || n <= 0 {
		return nil
	}
	lo, hi := stats.Bounds(xs)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	edges := vec.Linspace(lo, hi, n+1)
	bins := make([]Bin, n)
	for i := range bins {
		bins[i].Lo, bins[i].Hi = edges[i], edges[i+1]
	}
	width := (hi - lo) / float64(n)
	for _, x := range xs {
		i := int((x - lo) / width)
		if i >= n {
			i = n - 1
		} else if i < 0 {
			i = 0
		}
		bins[i].Count++
	}
	return bins
}

func boxStats(xs []float64) BoxStats {
	s := stats.Sample{Xs: append([]float64(nil), xs...)}
	sort.Float64s(s.Xs)
	s.Sorted = true

	var b BoxStats
	b.Q1, b.Median, b.Q3 = s.Quantile(0.25), s.Quantile(0.5), s.Quantile(0.75)
	iqr := b.Q3 - b.Q1
	loFence, hiFence := b.Q1-1.5*iqr, b.Q3+1.5*iqr
	b.Lo, b.Hi = math.Inf(1), math.Inf(-1)
	for _, x := range s.Xs {
		if x < loFence || x > hiFence {
			b.Outliers = append(b.Outliers, x)
			continue
		}
		b.Lo, b.Hi = math.Min(b.Lo, x), math.Max(b.Hi, x)
	}
	return b
}

// pairwise returns the elements of xs and ys at indexes where neither
// is NaN.
func pairwise(xs, ys []float64) (px, py []float64) {
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		px, py = append(px, xs[i]), append(py, ys[i])
	}
	return
}

// pearson returns the Pearson correlation of xs and ys over the rows
// where both are present. It reports false if the correlation is
// undefined because there are fewer than two such rows or either
// sample has no variance.
func pearson(xs, ys []float64) (float64, bool) {
	xs, ys = pairwise(xs, ys)
	if len(xs) < 2 {
		return math.NaN(), false
	}
	mx, my := stats.Mean(xs), stats.Mean(ys)
	var sxy, sxx, syy float64
	for i := range xs {
		dx, dy := xs[i]-mx, ys[i]-my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return math.NaN(), false
	}
	r := sxy / math.Sqrt(sxx*syy)
	// Rounding can push r just outside [-1, 1].
	return math.Max(-1, math.Min(1, r)), true
}
