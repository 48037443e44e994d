// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eda

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aclements/edaplot/frame"
	"github.com/google/uuid"
)

// A Renderer draws Figures in one image format. A Renderer must not
// keep state between calls to Render.
type Renderer interface {
	// Ext returns the file name extension of the format, such as
	// "svg".
	Ext() string

	// Render draws fig on w at the given size in pixels.
	Render(w io.Writer, fig Figure, width, height int) error
}

const (
	DefaultWidth  = 1000
	DefaultHeight = 600

	// PanelSize is the default width and height of each panel of a
	// PairFigure.
	PanelSize = 250
)

// Options control where and how Generate writes artifacts.
type Options struct {
	// Dir is the directory artifacts are written to. It is created
	// if necessary. If empty, the current directory is used.
	Dir string

	Renderer Renderer

	// Width and Height are the size of the image in pixels. Zero
	// means a size chosen by the figure kind.
	Width, Height int
}

func (o Options) size(fig Figure) (int, int) {
	w, h := o.Width, o.Height
	if pf, ok := fig.(*PairFigure); ok {
		side := PanelSize * len(pf.Columns)
		if w == 0 {
			w = side
		}
		if h == 0 {
			h = side
		}
	}
	if w == 0 {
		w = DefaultWidth
	}
	if h == 0 {
		h = DefaultHeight
	}
	return w, h
}

// ArtifactName returns a new file name for a plot of kind k in a
// format with extension ext. The name is unique with high
// probability.
func ArtifactName(k Kind, ext string) string {
	id := uuid.New()
	return hex.EncodeToString(id[:]) + "_" + k.String() + "." + ext
}

// Generate preprocesses f, builds the plot of kind k over columns, and
// writes it to a new file in opts.Dir. It returns the base name of the
// file.
//
// Generate returns ErrNoValidColumns, a *RequirementError, or a
// *RenderError. On error no file is left behind.
func Generate(f *frame.Frame, k Kind, columns []string, opts Options) (string, error) {
	if !k.Valid() {
		return "", &RenderError{k, ErrUnknownKind}
	}
	clean, err := Preprocess(f, k, columns)
	if err != nil {
		return "", err
	}
	fig, err := Build(clean, k, columns)
	if err != nil {
		return "", err
	}
	return Render(fig, opts)
}

// Render writes fig to a new file in opts.Dir using opts.Renderer and
// returns its base name. The file appears only once it is completely
// written.
func Render(fig Figure, opts Options) (string, error) {
	k := fig.Head().Kind
	if opts.Renderer == nil {
		return "", &RenderError{k, errors.New("no renderer")}
	}
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	name := ArtifactName(k, opts.Renderer.Ext())
	w, h := opts.size(fig)
	if err := writeAtomic(dir, name, func(wr io.Writer) error {
		return safeRender(opts.Renderer, wr, fig, w, h)
	}); err != nil {
		return "", &RenderError{k, err}
	}
	return name, nil
}

// writeAtomic calls write with a temporary file in dir and renames it
// to name if write succeeds. Otherwise it removes the temporary file.
func writeAtomic(dir, name string, write func(io.Writer) error) (err error) {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err = write(bw); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return err
	}
	if err = tmp.Chmod(0644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filepath.Join(dir, name))
}

// safeRender calls r.Render, turning a panic into an error.
func safeRender(r Renderer, w io.Writer, fig Figure, width, height int) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return r.Render(w, fig, width, height)
}
