// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eda

import (
	"errors"
	"fmt"
)

// ErrNoValidColumns is returned when none of the requested columns
// exist in the dataset.
var ErrNoValidColumns = errors.New("none of the selected columns exist in the dataset")

// ErrUnknownKind is the cause of a RenderError for a Kind that is not
// one of the supported plot kinds.
var ErrUnknownKind = errors.New("unknown plot kind")

// ErrDegenerate is the cause of a RenderError for data that the
// plot's statistics are undefined on, such as the correlation of a
// constant column.
var ErrDegenerate = errors.New("degenerate data")

// A RequirementError reports that the data does not have the columns
// or column types a plot kind needs.
type RequirementError struct {
	Kind Kind

	// Reason is a human-readable description of the unmet
	// requirement, such as "scatterplot requires at least two
	// numeric columns".
	Reason string
}

func (e *RequirementError) Error() string {
	return e.Reason
}

func unmet(k Kind, format string, args ...interface{}) *RequirementError {
	return &RequirementError{k, k.String() + " requires " + fmt.Sprintf(format, args...)}
}

// IsRequirement reports whether err is or wraps a *RequirementError.
func IsRequirement(err error) bool {
	var re *RequirementError
	return errors.As(err, &re)
}

// A RenderError reports a failure while building or writing a plot
// that validation did not anticipate.
type RenderError struct {
	Kind Kind
	Err  error
}

func (e *RenderError) Error() string {
	return "rendering " + e.Kind.String() + ": " + e.Err.Error()
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
