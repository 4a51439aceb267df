// Copyright (c) 2026 The lzma-rust Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of lzma-rust.
//
// lzma-rust is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// lzma-rust is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with lzma-rust.  If not, see <https://www.gnu.org/licenses/>.

// Command lzmacat decompresses a legacy .lzma file or a raw LZMA2 chunk
// stream to stdout (or a file given with -o).
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/lafrenierejm/lzma-rust/internal/bufpool"
	"github.com/lafrenierejm/lzma-rust/lzma"
	"github.com/lafrenierejm/lzma-rust/lzma2"
)

const appVersion = "0.1.0"

// bufferPoolSize is the number of distinct dictionary sizes the window
// buffer pool keeps a spare buffer for. lzmacat decodes a single -i file
// per run with one Reader, so within one run the pool only receives that
// Reader's buffer on Close and never hands one back out.
const bufferPoolSize = 4

func main() {
	os.Exit(run(afero.NewOsFs(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(fs afero.Fs, args []string, stdout, stderr io.Writer) int {
	fset := flag.NewFlagSet("lzmacat", flag.ContinueOnError)
	fset.SetOutput(stderr)

	var (
		inputFile  = fset.String("i", "", "input file path (required)")
		outputFile = fset.String("o", "", "output file path (default: stdout)")
		format     = fset.String("format", "auto", "input format: auto, lzma, lzma2")
		dictSize   = fset.Uint("dict-size", 1<<23, "dictionary size in bytes for a raw lzma2 stream (ignored for .lzma input)")
		memLimitKB = fset.Uint64("mem-limit-kb", math.MaxUint64, "memory-usage limit in KiB for .lzma input")
		version    = fset.Bool("version", false, "print version and exit")
	)
	fset.Usage = func() {
		fmt.Fprintf(stderr, "Usage: lzmacat -i <file> [options]\n\n")
		fmt.Fprintf(stderr, "Decompresses a legacy .lzma file or a raw LZMA2 chunk stream.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fset.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  lzmacat -i archive.lzma -o out.bin\n")
		fmt.Fprintf(stderr, "  lzmacat -i chunks.lzma2 -format lzma2 -dict-size 4194304\n")
	}

	if err := fset.Parse(args); err != nil {
		return 2
	}

	if *version {
		fmt.Fprintf(stdout, "lzmacat version %s\n", appVersion)
		return 0
	}

	if *inputFile == "" {
		fmt.Fprintf(stderr, "Error: input file required (-i)\n")
		fset.Usage()
		return 1
	}

	in, err := fs.Open(*inputFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error opening input: %v\n", err)
		return 1
	}
	defer in.Close()

	out := stdout
	if *outputFile != "" {
		f, err := fs.Create(*outputFile)
		if err != nil {
			fmt.Fprintf(stderr, "Error creating output: %v\n", err)
			return 1
		}
		defer f.Close()
		out = f
	}

	pool, err := bufpool.New(bufferPoolSize)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	resolvedFormat := *format
	if resolvedFormat == "auto" {
		resolvedFormat = detectFormat(*inputFile)
	}

	var r io.ReadCloser
	switch resolvedFormat {
	case "lzma":
		rd, err := lzma.NewReaderWithPool(in, *memLimitKB, nil, pool)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		r = rd
	case "lzma2":
		rd, err := lzma2.NewReaderWithPool(in, uint32(*dictSize), nil, pool)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		r = rd
	default:
		fmt.Fprintf(stderr, "Error: unknown format %q (want lzma or lzma2)\n", resolvedFormat)
		return 1
	}
	defer r.Close()

	if _, err := io.Copy(out, r); err != nil {
		fmt.Fprintf(stderr, "Error decompressing: %v\n", err)
		return 1
	}
	return 0
}

// detectFormat guesses the stream format from the input file's
// extension: ".lzma2" selects the raw LZMA2 chunk stream, everything
// else is treated as a legacy .lzma file (the common case).
func detectFormat(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".lzma2") {
		return "lzma2"
	}
	return "lzma"
}
