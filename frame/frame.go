// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame implements the in-memory datasets that edaplot
// plots.
//
// A Frame is a go-gg table whose columns are each either numeric or
// categorical. Numeric columns are []float64 and use NaN for missing
// values. Categorical columns are []string and use "" for missing
// values. Frames are immutable: every operation that changes the data
// returns a new Frame and leaves its receiver alone.
package frame

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
)

// A Frame is an immutable table of named, typed columns.
type Frame struct {
	t *table.Table
}

// New returns a Frame backed by t. Columns of any integer or floating
// point element type are converted to []float64. New fails if t has a
// column that is neither numeric nor []string.
func New(t *table.Table) (*Frame, error) {
	if t == nil {
		t = new(table.Table)
	}
	b := table.NewBuilder(t)
	for _, col := range t.Columns() {
		switch data := t.Column(col).(type) {
		case []float64, []string:
		default:
			if !isNumericKind(reflect.TypeOf(data).Elem().Kind()) {
				return nil, fmt.Errorf("column %q has unsupported type %T", col, data)
			}
			var fs []float64
			slice.Convert(&fs, data)
			b.Add(col, fs)
		}
	}
	return &Frame{b.Done()}, nil
}

// MustNew is like New, but panics if t cannot be used as a Frame.
func MustNew(t *table.Table) *Frame {
	f, err := New(t)
	if err != nil {
		panic(err)
	}
	return f
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// Table returns the go-gg table backing f. The caller must not modify
// the returned table's columns.
func (f *Frame) Table() *table.Table {
	return f.t
}

// Len returns the number of rows in f.
func (f *Frame) Len() int {
	return f.t.Len()
}

// Columns returns the names of f's columns in order.
func (f *Frame) Columns() []string {
	return f.t.Columns()
}

// Has reports whether f has a column named col.
func (f *Frame) Has(col string) bool {
	for _, c := range f.t.Columns() {
		if c == col {
			return true
		}
	}
	return false
}

// IsNumeric reports whether col is a numeric column of f.
func (f *Frame) IsNumeric(col string) bool {
	if !f.Has(col) {
		return false
	}
	_, ok := f.t.Column(col).([]float64)
	return ok
}

// Floats returns the data of numeric column col, or nil if col is
// not a numeric column. The caller must not modify the result.
func (f *Frame) Floats(col string) []float64 {
	if !f.Has(col) {
		return nil
	}
	fs, _ := f.t.Column(col).([]float64)
	return fs
}

// Strings returns the data of categorical column col, or nil if col
// is not a categorical column. The caller must not modify the result.
func (f *Frame) Strings(col string) []string {
	if !f.Has(col) {
		return nil
	}
	ss, _ := f.t.Column(col).([]string)
	return ss
}

// Missing reports whether row i of column col is missing.
func (f *Frame) Missing(col string, i int) bool {
	switch data := f.t.MustColumn(col).(type) {
	case []float64:
		return math.IsNaN(data[i])
	case []string:
		return data[i] == ""
	}
	return false
}

// MissingCount returns the number of missing values in column col.
func (f *Frame) MissingCount(col string) int {
	n := 0
	for i := 0; i < f.Len(); i++ {
		if f.Missing(col, i) {
			n++
		}
	}
	return n
}

// Present returns the non-missing values of numeric column col, in
// row order.
func (f *Frame) Present(col string) []float64 {
	var out []float64
	for _, x := range f.Floats(col) {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}
	return out
}

// NumericColumns returns the elements of cols that name numeric
// columns of f, in the order they appear in cols. Duplicates are
// reported once.
func (f *Frame) NumericColumns(cols []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, col := range cols {
		if !seen[col] && f.IsNumeric(col) {
			out = append(out, col)
		}
		seen[col] = true
	}
	return out
}

// Available returns the elements of cols that name columns of f, in
// the order they appear in cols. Duplicates are reported once.
func (f *Frame) Available(cols []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, col := range cols {
		if !seen[col] && f.Has(col) {
			out = append(out, col)
		}
		seen[col] = true
	}
	return out
}

// Select returns a Frame holding only the columns of f named in cols,
// in the order given by cols. Names that are not columns of f are
// ignored.
func (f *Frame) Select(cols []string) *Frame {
	var b table.Builder
	for _, col := range f.Available(cols) {
		b.Add(col, f.t.Column(col))
	}
	return &Frame{b.Done()}
}

// DropEmptyRows returns a Frame without the rows of f in which every
// column is missing.
func (f *Frame) DropEmptyRows() *Frame {
	cols := f.Columns()
	if len(cols) == 0 {
		return f
	}
	keep := make([]bool, f.Len())
	dropped := 0
	for i := range keep {
		for _, col := range cols {
			if !f.Missing(col, i) {
				keep[i] = true
				break
			}
		}
		if !keep[i] {
			dropped++
		}
	}
	if dropped == 0 {
		return f
	}
	return f.filterRows(keep)
}

func (f *Frame) filterRows(keep []bool) *Frame {
	var b table.Builder
	for _, col := range f.Columns() {
		switch data := f.t.Column(col).(type) {
		case []float64:
			out := make([]float64, 0, len(data))
			for i, x := range data {
				if keep[i] {
					out = append(out, x)
				}
			}
			b.Add(col, out)
		case []string:
			out := make([]string, 0, len(data))
			for i, x := range data {
				if keep[i] {
					out = append(out, x)
				}
			}
			b.Add(col, out)
		}
	}
	return &Frame{b.Done()}
}

// ParseFloat parses s as a number. Surrounding white space is ignored.
func ParseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// Coerce converts categorical column col to numeric. It reports false
// and returns f unchanged if col is not categorical or if any
// non-missing value of col does not parse as a number. Missing values
// become NaN.
func (f *Frame) Coerce(col string) (*Frame, bool) {
	ss := f.Strings(col)
	if ss == nil {
		return f, false
	}
	fs := make([]float64, len(ss))
	for i, s := range ss {
		if s == "" {
			fs[i] = math.NaN()
			continue
		}
		x, err := ParseFloat(s)
		if err != nil {
			return f, false
		}
		fs[i] = x
	}
	return f.replace(col, fs), true
}

// FillMissing returns a Frame in which the missing values of numeric
// column col are replaced by v.
func (f *Frame) FillMissing(col string, v float64) *Frame {
	fs := f.Floats(col)
	if fs == nil {
		return f
	}
	out := make([]float64, len(fs))
	for i, x := range fs {
		if math.IsNaN(x) {
			x = v
		}
		out[i] = x
	}
	return f.replace(col, out)
}

// replace returns a copy of f with col's data replaced, keeping the
// column order.
func (f *Frame) replace(col string, data table.Slice) *Frame {
	var b table.Builder
	for _, c := range f.Columns() {
		if c == col {
			b.Add(c, data)
		} else {
			b.Add(c, f.t.Column(c))
		}
	}
	return &Frame{b.Done()}
}

// Median returns the median of the non-missing values of numeric
// column col, or NaN if there are none.
func (f *Frame) Median(col string) float64 {
	xs := f.Present(col)
	if len(xs) == 0 {
		return math.NaN()
	}
	sort.Float64s(xs)
	return stats.Sample{Xs: xs, Sorted: true}.Quantile(0.5)
}
