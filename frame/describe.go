// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
)

// Summary describes the shape and columns of a Frame.
type Summary struct {
	Rows    int
	Columns []ColumnSummary
}

// ColumnSummary describes one column of a Frame.
type ColumnSummary struct {
	Name    string
	Numeric bool

	// Missing is the number of missing values in the column.
	Missing int

	// Min, Median, Mean and Max summarize the non-missing values
	// of a numeric column. They are NaN for categorical columns
	// and for numeric columns with no values.
	Min, Median, Mean, Max float64

	// Unique is the number of distinct non-missing values of a
	// categorical column. Top is the most frequent such value,
	// with ties broken by first appearance, and TopCount is its
	// frequency.
	Unique   int
	Top      string
	TopCount int
}

// Describe summarizes every column of f.
func (f *Frame) Describe() Summary {
	s := Summary{Rows: f.Len()}
	for _, col := range f.Columns() {
		cs := ColumnSummary{Name: col, Numeric: f.IsNumeric(col), Missing: f.MissingCount(col)}
		nan := math.NaN()
		cs.Min, cs.Median, cs.Mean, cs.Max = nan, nan, nan, nan
		if cs.Numeric {
			if xs := f.Present(col); len(xs) > 0 {
				cs.Min, cs.Max = stats.Bounds(xs)
				cs.Mean = stats.Mean(xs)
				cs.Median = f.Median(col)
			}
		} else {
			counts := make(map[string]int)
			for _, v := range f.Strings(col) {
				if v == "" {
					continue
				}
				counts[v]++
				if counts[v] > cs.TopCount {
					cs.Top, cs.TopCount = v, counts[v]
				}
			}
			cs.Unique = len(counts)
		}
		s.Columns = append(s.Columns, cs)
	}
	return s
}

// Table returns s as a table with one row per column.
func (s Summary) Table() *table.Table {
	n := len(s.Columns)
	names, types, missing := make([]string, n), make([]string, n), make([]int, n)
	mins, medians, means := make([]string, n), make([]string, n), make([]string, n)
	maxs, uniques, tops := make([]string, n), make([]string, n), make([]string, n)
	num := func(x float64) string {
		return strconv.FormatFloat(x, 'g', 6, 64)
	}
	for i, c := range s.Columns {
		names[i], missing[i] = c.Name, c.Missing
		if c.Numeric {
			types[i] = "numeric"
			mins[i], medians[i], means[i], maxs[i] = num(c.Min), num(c.Median), num(c.Mean), num(c.Max)
		} else {
			types[i] = "categorical"
			uniques[i] = strconv.Itoa(c.Unique)
			if c.TopCount > 0 {
				tops[i] = fmt.Sprintf("%s (%d)", c.Top, c.TopCount)
			}
		}
	}
	return new(table.Builder).
		Add("column", names).
		Add("type", types).
		Add("missing", missing).
		Add("min", mins).
		Add("median", medians).
		Add("mean", means).
		Add("max", maxs).
		Add("unique", uniques).
		Add("top", tops).
		Done()
}

// Fprint writes a description of s to w. If width is positive,
// trailing summary columns are left out until every line fits in
// width runes. The column names are always printed.
func (s Summary) Fprint(w io.Writer, width int) error {
	t := s.Table()
	cols := t.Columns()
	var buf bytes.Buffer
	for n := len(cols); n > 0; n-- {
		b := new(table.Builder)
		for _, col := range cols[:n] {
			b.Add(col, t.Column(col))
		}
		buf.Reset()
		if err := table.Fprint(&buf, b.Done()); err != nil {
			return err
		}
		if width <= 0 || n == 1 || fits(buf.String(), width) {
			break
		}
	}
	if _, err := fmt.Fprintf(w, "%d rows x %d columns\n", s.Rows, len(s.Columns)); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func fits(text string, width int) bool {
	for _, line := range strings.Split(text, "\n") {
		if utf8.RuneCountInString(line) > width {
			return false
		}
	}
	return true
}
