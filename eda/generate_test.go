// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eda

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

func TestGenerate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "plots")
	r := &fakeRenderer{}
	name, err := Generate(people(), Histogram, []string{"age"}, Options{Dir: dir, Renderer: r})
	if err != nil {
		t.Fatal(err)
	}
	if !regexp.MustCompile(`^[0-9a-f]{32}_histogram\.fake$`).MatchString(name) {
		t.Errorf("bad artifact name %q", name)
	}
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	if want := "histogram 1000x600\n"; string(data) != want {
		t.Errorf("want %q; got %q", want, data)
	}

	name2, err := Generate(people(), Histogram, []string{"age"}, Options{Dir: dir, Renderer: r, Width: 10, Height: 20})
	if err != nil {
		t.Fatal(err)
	}
	if name2 == name {
		t.Errorf("artifact names should be unique")
	}
	if r.sizes[1] != [2]int{10, 20} {
		t.Errorf("want 10x20; got %v", r.sizes[1])
	}
}

func TestGenerateFailureLeavesNoFile(t *testing.T) {
	for _, r := range []*fakeRenderer{
		{err: errors.New("backend failed")},
		{panic: true},
	} {
		dir := t.TempDir()
		name, err := Generate(people(), ScatterPlot, []string{"age", "age2"}, Options{Dir: dir, Renderer: r})
		if !IsRequirement(err) {
			t.Errorf("want RequirementError for single numeric column; got %v", err)
		}

		name, err = Generate(people(), BoxPlot, []string{"age"}, Options{Dir: dir, Renderer: r})
		var re *RenderError
		if !errors.As(err, &re) || re.Kind != BoxPlot {
			t.Errorf("want boxplot RenderError; got %q, %v", name, err)
		}
		if r.err != nil && !errors.Is(err, r.err) {
			t.Errorf("RenderError should wrap %v; got %v", r.err, err)
		}
		if es, _ := os.ReadDir(dir); len(es) != 0 {
			t.Errorf("failed render left files: %v", es)
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	r := &fakeRenderer{}
	opts := Options{Dir: t.TempDir(), Renderer: r}
	if _, err := Generate(people(), Histogram, []string{"nope"}, opts); err != ErrNoValidColumns {
		t.Errorf("want ErrNoValidColumns; got %v", err)
	}
	if _, err := Generate(people(), Kind(-1), []string{"age"}, opts); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("want ErrUnknownKind; got %v", err)
	}
	if _, err := Generate(people(), Histogram, []string{"age"}, Options{Dir: opts.Dir}); err == nil {
		t.Errorf("want error without renderer")
	}
	if len(r.figs) != 0 {
		t.Errorf("renderer called on failed requests")
	}
}
