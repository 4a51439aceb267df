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

package lzma2

import (
	"fmt"

	"github.com/icza/bitio"

	"github.com/lafrenierejm/lzma-rust/internal/binary"
	"github.com/lafrenierejm/lzma-rust/lzma"
)

// Chunk control byte ranges. A control byte is classified by comparing it
// against these low bounds, highest match wins.
const (
	controlEndOfStream           = 0x00
	controlUncompressedDictReset = 0x01
	controlUncompressedNoReset   = 0x02
	controlLZMANoReset           = 0x80
	controlLZMAStateReset        = 0xA0
	controlLZMAStatePropsReset   = 0xC0
	controlLZMAFullReset         = 0xE0
)

// readUint16BE reads a 2-byte big-endian field, the encoding every LZMA2
// chunk-header size field uses.
func readUint16BE(br *bitio.Reader) (uint16, error) {
	return binary.ReadUint16BE(br)
}

// decodeProps reads a single props byte and parses it with the same rules
// the .lzma legacy header uses.
func decodeProps(br *bitio.Reader) (lzma.Props, error) {
	b, err := br.ReadByte()
	if err != nil {
		return lzma.Props{}, fmt.Errorf("lzma2: read props byte: %w", err)
	}
	return lzma.ParseProps(b)
}
