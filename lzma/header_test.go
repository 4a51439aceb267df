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

package lzma_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lafrenierejm/lzma-rust/lzma"
)

func TestParseHeaderKnownGoodStream(t *testing.T) {
	t.Parallel()

	raw := []byte{
		0x5D, 0x00, 0x00, 0x80, 0x00,
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	}
	hdr, err := lzma.ParseHeader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}
	if want := (lzma.Props{LC: 3, LP: 0, PB: 2}); hdr.Props != want {
		t.Fatalf("ParseHeader().Props = %+v, want %+v", hdr.Props, want)
	}
	if want := uint32(8 << 20); hdr.DictSize != want {
		t.Fatalf("ParseHeader().DictSize = %d, want %d", hdr.DictSize, want)
	}
	if hdr.UncompSize != lzma.UncompSizeUnknown {
		t.Fatalf("ParseHeader().UncompSize = %d, want UncompSizeUnknown", hdr.UncompSize)
	}
}

func TestParseHeaderRejectsInvalidProps(t *testing.T) {
	t.Parallel()

	raw := []byte{
		0xE1, 0x00, 0x00, 0x80, 0x00,
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	}
	_, err := lzma.ParseHeader(bytes.NewReader(raw))
	if !errors.Is(err, lzma.ErrInvalidProps) {
		t.Fatalf("ParseHeader() error = %v, want ErrInvalidProps", err)
	}
}

func TestParseHeaderRejectsTruncatedInput(t *testing.T) {
	t.Parallel()

	raw := []byte{0x5D, 0x00, 0x00}
	if _, err := lzma.ParseHeader(bytes.NewReader(raw)); err == nil {
		t.Fatal("ParseHeader() error = nil, want non-nil for truncated header")
	}
}

func TestParseHeaderKnownUncompressedSize(t *testing.T) {
	t.Parallel()

	raw := []byte{
		0x5D, 0x00, 0x00, 0x80, 0x00,
		0x0D, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	hdr, err := lzma.ParseHeader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}
	if want := uint64(13); hdr.UncompSize != want {
		t.Fatalf("ParseHeader().UncompSize = %d, want %d", hdr.UncompSize, want)
	}
}
