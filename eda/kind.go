// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eda

import (
	"fmt"
	"strings"
)

// Kind is a supported plot type.
type Kind int

const (
	Histogram Kind = iota
	BoxPlot
	CountPlot
	BarPlot
	LinePlot
	ScatterPlot
	Heatmap
	PairPlot

	numKinds
)

var kindNames = [numKinds]string{
	Histogram:   "histogram",
	BoxPlot:     "boxplot",
	CountPlot:   "countplot",
	BarPlot:     "barplot",
	LinePlot:    "lineplot",
	ScatterPlot: "scatterplot",
	Heatmap:     "heatmap",
	PairPlot:    "pairplot",
}

// Kinds returns all supported plot kinds in order.
func Kinds() []Kind {
	ks := make([]Kind, numKinds)
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}

// Valid reports whether k is one of the supported plot kinds.
func (k Kind) Valid() bool {
	return 0 <= k && k < numKinds
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the Kind named s. Case and surrounding white space
// are ignored.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// NumericOriented reports whether preprocessing for k converts text
// columns to numbers where possible.
func (k Kind) NumericOriented() bool {
	switch k {
	case Histogram, BoxPlot, ScatterPlot, LinePlot, Heatmap, PairPlot:
		return true
	}
	return false
}

// Imputes reports whether preprocessing for k fills missing numeric
// values with the column median.
func (k Kind) Imputes() bool {
	switch k {
	case Histogram, BoxPlot, ScatterPlot, LinePlot:
		return true
	}
	return false
}

// requirement is the minimum shape of the data a kind can plot. Zero
// means no minimum.
type requirement struct {
	columns, numeric int
}

var requirements = [numKinds]requirement{
	Histogram:   {1, 1},
	BoxPlot:     {1, 1},
	CountPlot:   {1, 0},
	BarPlot:     {2, 0},
	LinePlot:    {2, 1},
	ScatterPlot: {2, 2},
	Heatmap:     {0, 2},
	PairPlot:    {0, 2},
}

// Requirement describes the minimum number of columns and numeric
// columns k needs, such as "at least two columns, at least one
// numeric column".
func (k Kind) Requirement() string {
	if !k.Valid() {
		return ""
	}
	r := requirements[k]
	var parts []string
	if r.columns > 0 {
		parts = append(parts, "at least "+count(r.columns, "column"))
	}
	if r.numeric > 0 {
		parts = append(parts, "at least "+count(r.numeric, "numeric column"))
	}
	return strings.Join(parts, ", ")
}

var smallNumbers = []string{"zero", "one", "two", "three", "four", "five", "six"}

func count(n int, noun string) string {
	word := fmt.Sprint(n)
	if n < len(smallNumbers) {
		word = smallNumbers[n]
	}
	if n != 1 {
		noun += "s"
	}
	return word + " " + noun
}
