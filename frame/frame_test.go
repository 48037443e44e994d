// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"math"
	"reflect"
	"testing"

	"github.com/aclements/go-gg/table"
)

var nan = math.NaN()

func de(x, y interface{}) bool {
	return reflect.DeepEqual(x, y)
}

// sameFloats is like reflect.DeepEqual for []float64, but considers
// NaN equal to NaN.
func sameFloats(x, y []float64) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if math.IsNaN(x[i]) && math.IsNaN(y[i]) {
			continue
		}
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

func people() *Frame {
	return MustNew(new(table.Builder).
		Add("age", []float64{25, 30, nan, 40}).
		Add("city", []string{"NY", "LA", "NY", "SF"}).
		Add("score", []string{"1.5", "", "2", "x"}).
		Done())
}

func TestNewConvertsNumeric(t *testing.T) {
	f, err := New(new(table.Builder).Add("n", []int{1, 2, 3}).Done())
	if err != nil {
		t.Fatal(err)
	}
	if w, g := []float64{1, 2, 3}, f.Floats("n"); !de(w, g) {
		t.Errorf("want %v; got %v", w, g)
	}

	_, err = New(new(table.Builder).Add("b", []bool{true}).Done())
	if err == nil {
		t.Errorf("want error for []bool column; got nil")
	}
}

func TestColumnAccess(t *testing.T) {
	f := people()
	if !f.IsNumeric("age") || f.IsNumeric("city") || f.IsNumeric("nope") {
		t.Errorf("IsNumeric wrong")
	}
	if f.Floats("city") != nil {
		t.Errorf("Floats(city) should be nil")
	}
	if f.Strings("age") != nil {
		t.Errorf("Strings(age) should be nil")
	}
	if g := f.MissingCount("age"); g != 1 {
		t.Errorf("MissingCount(age): want 1; got %d", g)
	}
	if g := f.MissingCount("score"); g != 1 {
		t.Errorf("MissingCount(score): want 1; got %d", g)
	}
	if w, g := []float64{25, 30, 40}, f.Present("age"); !de(w, g) {
		t.Errorf("Present: want %v; got %v", w, g)
	}
	if w, g := []string{"age"}, f.NumericColumns([]string{"city", "age", "age", "x"}); !de(w, g) {
		t.Errorf("NumericColumns: want %v; got %v", w, g)
	}
}

func TestSelect(t *testing.T) {
	f := people()
	for _, test := range []struct {
		cols []string
		want []string
	}{
		{[]string{"city", "age"}, []string{"city", "age"}},
		{[]string{"age", "missing", "city", "age"}, []string{"age", "city"}},
		{[]string{"missing"}, nil},
		{nil, nil},
	} {
		got := f.Select(test.cols)
		if !de(test.want, got.Columns()) {
			t.Errorf("Select(%v): want %v; got %v", test.cols, test.want, got.Columns())
		}
	}
	if g := f.Columns(); len(g) != 3 {
		t.Errorf("Select modified receiver: %v", g)
	}
}

func TestDropEmptyRows(t *testing.T) {
	f := MustNew(new(table.Builder).
		Add("a", []float64{1, nan, nan, 4}).
		Add("b", []string{"x", "", "y", ""}).
		Done())
	g := f.DropEmptyRows()
	if g.Len() != 3 {
		t.Fatalf("want 3 rows; got %d", g.Len())
	}
	if w := []float64{1, nan, 4}; !sameFloats(w, g.Floats("a")) {
		t.Errorf("want %v; got %v", w, g.Floats("a"))
	}
	if w := []string{"x", "y", ""}; !de(w, g.Strings("b")) {
		t.Errorf("want %v; got %v", w, g.Strings("b"))
	}
	if f.Len() != 4 {
		t.Errorf("DropEmptyRows modified receiver")
	}
	if g.DropEmptyRows() != g {
		t.Errorf("DropEmptyRows without empty rows should return receiver")
	}
}

func TestCoerce(t *testing.T) {
	f := MustNew(new(table.Builder).
		Add("n", []string{"1", " 2.5", "", "-3"}).
		Add("s", []string{"1", "two", "", "3"}).
		Add("f", []float64{1, 2, 3, 4}).
		Done())

	g, ok := f.Coerce("n")
	if !ok {
		t.Fatalf("Coerce(n) failed")
	}
	if w := []float64{1, 2.5, nan, -3}; !sameFloats(w, g.Floats("n")) {
		t.Errorf("want %v; got %v", w, g.Floats("n"))
	}
	if !de(f.Columns(), g.Columns()) {
		t.Errorf("Coerce changed column order: %v", g.Columns())
	}
	if f.IsNumeric("n") {
		t.Errorf("Coerce modified receiver")
	}

	if g, ok := f.Coerce("s"); ok || g != f {
		t.Errorf("Coerce(s) should fail and return receiver")
	}
	if _, ok := f.Coerce("f"); ok {
		t.Errorf("Coerce of numeric column should report false")
	}
}

func TestFillMissingAndMedian(t *testing.T) {
	f := people()
	m := f.Median("age")
	if m != 30 {
		t.Fatalf("median of 25, 30, 40: want 30; got %v", m)
	}
	g := f.FillMissing("age", m)
	if w := []float64{25, 30, 30, 40}; !de(w, g.Floats("age")) {
		t.Errorf("want %v; got %v", w, g.Floats("age"))
	}
	if !math.IsNaN(f.Floats("age")[2]) {
		t.Errorf("FillMissing modified receiver")
	}

	even := MustNew(new(table.Builder).Add("x", []float64{4, 1, 3, 2}).Done())
	if m := even.Median("x"); m != 2.5 {
		t.Errorf("median of 1..4: want 2.5; got %v", m)
	}
	empty := MustNew(new(table.Builder).Add("x", []float64{nan}).Done())
	if m := empty.Median("x"); !math.IsNaN(m) {
		t.Errorf("median of no values: want NaN; got %v", m)
	}
}
