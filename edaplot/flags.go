// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aclements/edaplot/eda"
	"github.com/aclements/edaplot/ggrender"
	"github.com/aclements/edaplot/gonumrender"
)

// parseKinds parses a comma-separated list of plot kinds. "all" means
// every kind. Duplicates are removed.
func parseKinds(s string) ([]eda.Kind, error) {
	if strings.TrimSpace(s) == "all" {
		return eda.Kinds(), nil
	}
	var kinds []eda.Kind
	seen := make(map[eda.Kind]bool)
	for _, name := range strings.Split(s, ",") {
		k, err := eda.ParseKind(name)
		if err != nil {
			return nil, err
		}
		if !seen[k] {
			seen[k] = true
			kinds = append(kinds, k)
		}
	}
	return kinds, nil
}

// looksLikeKinds reports whether s parses as a list of kinds.
func looksLikeKinds(s string) bool {
	_, err := parseKinds(s)
	return err == nil
}

// formats returns the supported -format values. "svg" is drawn with
// go-gg; everything else with gonum/plot.
func formats() []string {
	fs := []string{"svg"}
	for _, f := range gonumrender.Formats {
		if f != "svg" {
			fs = append(fs, f)
		}
	}
	return append(fs, "gonum-svg")
}

func newRenderer(format string) (eda.Renderer, error) {
	switch format {
	case "svg":
		return ggrender.Renderer{}, nil
	case "gonum-svg":
		return gonumrender.Renderer{Format: "svg"}, nil
	}
	for _, f := range gonumrender.Formats {
		if f == format {
			return gonumrender.Renderer{Format: format}, nil
		}
	}
	return nil, fmt.Errorf("unknown format %q; want one of %s", format, strings.Join(formats(), ", "))
}

// parseSep parses a single-character field separator. "\t" and "tab"
// mean a tab.
func parseSep(s string) (rune, error) {
	switch s {
	case `\t`, "tab":
		return '\t', nil
	}
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 || n != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("separator must be a single character, got %q", s)
	}
	return r, nil
}
