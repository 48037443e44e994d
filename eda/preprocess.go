// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eda

import (
	"log"
	"math"
	"os"

	"github.com/aclements/edaplot/frame"
)

// Warning is a logger for conditions that don't prevent producing a
// plot, but may lead to unexpected results.
var Warning = log.New(os.Stderr, "[eda] ", log.Lshortfile)

// Preprocess returns the subset of f that a plot of kind k over
// columns needs.
//
// The result holds the requested columns that exist in f, in the
// requested order, without the rows that are missing in all of them.
// For numeric-oriented kinds, text columns whose values all parse as
// numbers become numeric; other text columns stay categorical. For
// kinds that impute, missing numeric values are replaced with their
// column's median.
//
// Preprocess returns ErrNoValidColumns if none of columns exist in f.
// It never modifies f.
func Preprocess(f *frame.Frame, k Kind, columns []string) (*frame.Frame, error) {
	g := f.Select(columns)
	if len(g.Columns()) == 0 {
		return nil, ErrNoValidColumns
	}
	g = g.DropEmptyRows()

	if k.NumericOriented() {
		for _, col := range g.Columns() {
			if g.IsNumeric(col) {
				continue
			}
			var ok bool
			if g, ok = g.Coerce(col); !ok {
				Warning.Printf("column %q is not numeric; keeping it categorical", col)
			}
		}
	}

	if k.Imputes() {
		for _, col := range g.Columns() {
			if !g.IsNumeric(col) || g.MissingCount(col) == 0 {
				continue
			}
			m := g.Median(col)
			if math.IsNaN(m) {
				// No values to take a median of.
				continue
			}
			g = g.FillMissing(col, m)
		}
	}
	return g, nil
}
