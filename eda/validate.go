// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eda

import "github.com/aclements/edaplot/frame"

// Validate checks that the columns of f named by columns satisfy the
// minimums of plot kind k. f is normally the result of Preprocess.
//
// Validate returns ErrNoValidColumns if none of columns exist in f, a
// *RenderError wrapping ErrUnknownKind if k is not valid, and a
// *RequirementError naming the first unmet minimum otherwise. The
// numeric minimum is checked before the column minimum.
func Validate(f *frame.Frame, k Kind, columns []string) error {
	if !k.Valid() {
		return &RenderError{k, ErrUnknownKind}
	}
	avail := f.Available(columns)
	if len(avail) == 0 {
		return ErrNoValidColumns
	}
	r := requirements[k]
	if n := len(f.NumericColumns(avail)); n < r.numeric {
		return unmet(k, "at least %s", count(r.numeric, "numeric column"))
	}
	if len(avail) < r.columns {
		return unmet(k, "at least %s", count(r.columns, "column"))
	}
	return nil
}
