// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command edaplot draws exploratory plots of a CSV dataset.
//
// Usage:
//
//	edaplot [flags] kinds [input.csv]
//
// kinds is a comma-separated list of plot kinds (histogram, boxplot,
// countplot, barplot, lineplot, scatterplot, heatmap, pairplot), or
// "all". The input is read from standard input if it is omitted or
// "-".
//
// Each plot is written to a new file in the output directory and its
// path is printed on standard output. A plot whose data does not suit
// its kind is reported and skipped; edaplot exits with status 1 if any
// plot failed.
//
// With -describe, edaplot prints a summary of each column instead of
// plotting. With -table, it prints the data each plot would be drawn
// from.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"

	"github.com/aclements/edaplot/eda"
	"github.com/aclements/edaplot/frame"
	"github.com/aclements/go-gg/table"
	"github.com/kballard/go-shellquote"
	"golang.org/x/crypto/ssh/terminal"
)

func main() {
	log.SetPrefix("edaplot: ")
	log.SetFlags(0)

	var (
		flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to `file`")
		flagOut        = flag.String("o", "plots", "write plots to `dir`")
		flagFormat     = flag.String("format", "svg", "image `format`: "+strings.Join(formats(), ", "))
		flagCols       = flag.String("cols", "", "plot the shell-quoted `columns` (default: all)")
		flagWidth      = flag.Int("width", 0, "image width in `pixels` (default depends on kind)")
		flagHeight     = flag.Int("height", 0, "image height in `pixels` (default depends on kind)")
		flagSep        = flag.String("sep", ",", "CSV field `separator`")
		flagMissing    = flag.String("missing", "", "shell-quoted `tokens` that mark missing values, in addition to the defaults")
		flagTable      = flag.Bool("table", false, "print the preprocessed data instead of plotting")
		flagDescribe   = flag.Bool("describe", false, "print a summary of each column and exit")
		flagQuiet      = flag.Bool("q", false, "don't log warnings about the data")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] kinds [input.csv]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	if *flagQuiet {
		eda.Warning.SetOutput(io.Discard)
	}

	args := flag.Args()
	if *flagDescribe {
		// The kind list is optional.
		if len(args) == 1 && !looksLikeKinds(args[0]) {
			args = append([]string{"all"}, args...)
		}
	} else if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if len(args) > 2 {
		flag.Usage()
		os.Exit(2)
	}

	var kinds []eda.Kind
	if len(args) > 0 {
		var err error
		if kinds, err = parseKinds(args[0]); err != nil {
			log.Fatal(err)
		}
	}
	renderer, err := newRenderer(*flagFormat)
	if err != nil {
		log.Fatal(err)
	}
	sep, err := parseSep(*flagSep)
	if err != nil {
		log.Fatal(err)
	}
	missing, err := shellquote.Split(*flagMissing)
	if err != nil {
		log.Fatalf("bad -missing: %s", err)
	}

	// Read the dataset.
	path := "-"
	if len(args) == 2 {
		path = args[1]
	}
	data, err := readData(path, frame.CSVOptions{
		Comma:   sep,
		Missing: append(append([]string(nil), frame.DefaultMissing...), missing...),
	})
	if err != nil {
		log.Fatal(err)
	}

	if *flagDescribe {
		width := 0
		if fd := int(os.Stdout.Fd()); terminal.IsTerminal(fd) {
			width, _, _ = terminal.GetSize(fd)
		}
		if err := data.Describe().Fprint(os.Stdout, width); err != nil {
			log.Fatal(err)
		}
		return
	}

	cols := data.Columns()
	if *flagCols != "" {
		cols, err = shellquote.Split(*flagCols)
		if err != nil {
			log.Fatalf("bad -cols: %s", err)
		}
		for _, col := range cols {
			if !data.Has(col) {
				log.Printf("ignoring unknown column %q", col)
			}
		}
	}

	if *flagTable {
		for _, k := range kinds {
			clean, err := eda.Preprocess(data, k, cols)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("# %s\n", k)
			table.Fprint(os.Stdout, clean.Table())
		}
		return
	}

	opts := eda.Options{
		Dir:      *flagOut,
		Renderer: renderer,
		Width:    *flagWidth,
		Height:   *flagHeight,
	}
	failed := false
	for _, k := range kinds {
		name, err := eda.Generate(data, k, cols, opts)
		if err != nil {
			log.Printf("%s: %s", k, err)
			failed = true
			continue
		}
		fmt.Println(filepath.Join(opts.Dir, name))
	}
	if failed {
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}

func readData(path string, opts frame.CSVOptions) (*frame.Frame, error) {
	f := os.Stdin
	if path != "-" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
	}
	data, err := frame.ReadCSV(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}
