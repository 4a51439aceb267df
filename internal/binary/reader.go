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

// Package binary reads the small fixed-width fields that precede every
// .lzma header and LZMA2 chunk header. Every field here is read off a
// sequential byte source: the range decoder that follows a header must
// observe the same stream with nothing skipped or re-read, so these
// functions accept a plain io.ByteReader rather than a ReaderAt.
package binary

import "io"

// ReadUint16BE reads a 2-byte big-endian field, the encoding every LZMA2
// chunk-header size field uses.
func ReadUint16BE(r io.ByteReader) (uint16, error) {
	hi, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	lo, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// ReadUint32LE reads a 4-byte little-endian field, the encoding the
// .lzma legacy header's dictionary-size field uses.
func ReadUint32LE(r io.ByteReader) (uint32, error) {
	var v uint32
	for i := uint(0); i < 4; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		v |= uint32(b) << (8 * i)
	}
	return v, nil
}

// ReadUint64LE reads an 8-byte little-endian field, the encoding the
// .lzma legacy header's uncompressed-size field uses.
func ReadUint64LE(r io.ByteReader) (uint64, error) {
	var v uint64
	for i := uint(0); i < 8; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		v |= uint64(b) << (8 * i)
	}
	return v, nil
}

// ByteReaderFrom adapts any io.Reader that does not already implement
// io.ByteReader into one that reads a single byte at a time, matching the
// byteReader adapters lzma.Reader and lzma2.Reader build over bitio.Reader.
type ByteReaderFrom struct{ R io.Reader }

func (b ByteReaderFrom) ReadByte() (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(b.R, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}
