// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
)

// DefaultMissing is the set of cell values ReadCSV treats as missing
// when CSVOptions.Missing is nil. Matching ignores surrounding white
// space.
var DefaultMissing = []string{"", "NA", "N/A", "n/a", "NaN", "nan", "-NaN", "null", "NULL", "None", "#N/A"}

// ErrEmpty is returned by ReadCSV for input with no data rows.
var ErrEmpty = errors.New("file has no data rows")

// ErrNoColumns is returned by ReadCSV for input without a header.
var ErrNoColumns = errors.New("file has no columns")

// CSVOptions controls ReadCSV.
type CSVOptions struct {
	// Comma is the field delimiter. If it is 0, ReadCSV uses ','.
	Comma rune

	// Missing lists the cell values that mean "no value". If it
	// is nil, ReadCSV uses DefaultMissing.
	Missing []string
}

// ReadCSV reads a CSV file with a header line from r and returns it
// as a Frame.
//
// A column becomes numeric if every non-missing cell parses as a
// number; otherwise it is categorical. Empty header names become
// "Unnamed: N" and repeated names get a ".N" suffix. Rows shorter than
// the header are padded with missing values; longer rows are an
// error.
func ReadCSV(r io.Reader, opts CSVOptions) (*Frame, error) {
	cr := csv.NewReader(r)
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	missing := opts.Missing
	if missing == nil {
		missing = DefaultMissing
	}
	isMissing := make(map[string]bool)
	for _, m := range missing {
		isMissing[strings.TrimSpace(m)] = true
	}

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoColumns
	} else if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	names := headerNames(header)
	if len(names) == 0 {
		return nil, ErrNoColumns
	}

	cells := make([][]string, len(names))
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if len(rec) > len(names) {
			return nil, fmt.Errorf("line %d: %d fields, but header has %d", line, len(rec), len(names))
		}
		for i := range names {
			v := ""
			if i < len(rec) {
				v = strings.TrimSpace(rec[i])
			}
			if isMissing[v] {
				v = ""
			}
			cells[i] = append(cells[i], v)
		}
	}
	if len(cells[0]) == 0 {
		return nil, ErrEmpty
	}

	var b table.Builder
	for i, name := range names {
		b.Add(name, inferColumn(cells[i]))
	}
	return &Frame{b.Done()}, nil
}

func headerNames(header []string) []string {
	names := make([]string, len(header))
	seen := make(map[string]int)
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			h = "Unnamed: " + strconv.Itoa(i)
		}
		name := h
		for seen[name] > 0 {
			name = fmt.Sprintf("%s.%d", h, seen[h])
			seen[h]++
		}
		seen[name]++
		names[i] = name
	}
	return names
}

// inferColumn returns cells as a []float64 if every non-missing cell
// is a number, and as a []string otherwise.
func inferColumn(cells []string) table.Slice {
	fs := make([]float64, len(cells))
	for i, c := range cells {
		if c == "" {
			fs[i] = math.NaN()
			continue
		}
		x, err := ParseFloat(c)
		if err != nil {
			return cells
		}
		fs[i] = x
	}
	return fs
}
