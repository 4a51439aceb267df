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

package lzma

import (
	"fmt"
	"io"
	"math"

	"github.com/icza/bitio"

	"github.com/lafrenierejm/lzma-rust/internal/binary"
)

// UncompSizeUnknown is the .lzma header's sentinel uncompressed-size
// value: the stream has no declared length and must be read to its
// encoder-emitted end marker.
const UncompSizeUnknown = math.MaxUint64

// Header is the 13-byte fixed layout that precedes the range-coded
// payload in a legacy .lzma file.
type Header struct {
	Props      Props
	DictSize   uint32
	UncompSize uint64
}

// ParseHeader reads the 13-byte .lzma header: one props byte, a 4-byte
// little-endian declared dictionary size, and an 8-byte little-endian
// uncompressed size (UncompSizeUnknown meaning "use the end marker").
func ParseHeader(r io.Reader) (Header, error) {
	return parseHeaderFrom(bitio.NewReader(r))
}

func parseHeaderFrom(br *bitio.Reader) (Header, error) {
	propsByte, err := br.ReadByte()
	if err != nil {
		return Header{}, fmt.Errorf("lzma: read props byte: %w", err)
	}
	props, err := ParseProps(propsByte)
	if err != nil {
		return Header{}, err
	}

	declaredDictSize, err := binary.ReadUint32LE(br)
	if err != nil {
		return Header{}, fmt.Errorf("lzma: read dict size: %w", err)
	}
	effDictSize, err := EffectiveDictSize(uint64(declaredDictSize))
	if err != nil {
		return Header{}, err
	}

	uncompSize, err := binary.ReadUint64LE(br)
	if err != nil {
		return Header{}, fmt.Errorf("lzma: read uncompressed size: %w", err)
	}

	return Header{Props: props, DictSize: effDictSize, UncompSize: uncompSize}, nil
}

// byteReader adapts a *bitio.Reader's ReadByte method to io.Reader and
// io.ByteReader. Header parsing and the range decoder that follows it
// must observe the same underlying byte stream with nothing skipped or
// re-read in between; building both interfaces purely in terms of the
// one ReadByte call already used for header parsing guarantees that,
// regardless of what buffering bitio.Reader does internally.
type byteReader struct{ br *bitio.Reader }

func (a byteReader) ReadByte() (byte, error) { return a.br.ReadByte() }

func (a byteReader) Read(p []byte) (int, error) {
	for i := range p {
		b, err := a.br.ReadByte()
		if err != nil {
			return i, err
		}
		p[i] = b
	}
	return len(p), nil
}

