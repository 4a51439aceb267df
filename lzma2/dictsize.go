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

	"github.com/lafrenierejm/lzma-rust/lzma"
)

// compressedSizeMax is the largest compressed size an LZMA chunk header
// can declare (a 16-bit field plus one).
const compressedSizeMax = 1 << 16

// effectiveDictSize rounds dictSize up to a multiple of 16, the same
// rounding the .lzma legacy header applies, but without its 4096-byte
// floor: LZMA2 chunk headers carry their own uncompressed-size fields, so
// there is no reason to force a minimum working-set size on a caller that
// requested a smaller dictionary.
func effectiveDictSize(dictSize uint32) (uint32, error) {
	d := uint64(dictSize)
	if d > uint64(lzma.DictSizeMax) {
		return 0, fmt.Errorf("%w: %d > %d", lzma.ErrDictSizeTooLarge, d, lzma.DictSizeMax)
	}
	d = (d + 15) &^ 15
	return uint32(d), nil
}

// EstimateMemoryUsage returns the approximate working-set size, in KiB,
// of an LZMA2 Reader over the given dictionary size: the window itself,
// plus a fixed allowance for the range decoder's compressed-bytes buffer
// and the remaining fixed-shape state.
func EstimateMemoryUsage(dictSize uint32) (uint64, error) {
	effDict, err := effectiveDictSize(dictSize)
	if err != nil {
		return 0, err
	}
	return 40 + uint64(compressedSizeMax)/1024 + uint64(effDict)/1024, nil
}
