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

import "fmt"

// DictSizeMax is the largest dictionary size this format can express:
// u32::MAX rounded down to a multiple of 16.
const DictSizeMax = ^uint32(0) &^ 15

// EffectiveDictSize clamps a declared dictionary size into
// [4096, DictSizeMax] and rounds it up to a multiple of 16, rejecting
// values above DictSizeMax outright.
func EffectiveDictSize(dictSize uint64) (uint32, error) {
	if dictSize > uint64(DictSizeMax) {
		return 0, fmt.Errorf("%w: %d > %d", ErrDictSizeTooLarge, dictSize, DictSizeMax)
	}
	d := dictSize
	if d < 4096 {
		d = 4096
	}
	d = (d + 15) &^ 15
	return uint32(d), nil
}

// EstimateMemoryUsage returns the approximate working-set size, in
// KiB, of a decoder configured with the given dictionary size and
// literal coder parameters: the window itself, plus the literal coder's
// 1<<(lc+lp) tables of 768 two-byte probabilities, plus a fixed
// overhead for the remaining fixed-shape tables and buffers.
func EstimateMemoryUsage(dictSize uint64, lc, lp int) (uint64, error) {
	effDict, err := EffectiveDictSize(dictSize)
	if err != nil {
		return 0, err
	}
	if lc > 8 || lp > 4 {
		return 0, fmt.Errorf("%w: lc=%d lp=%d", ErrInvalidProps, lc, lp)
	}
	return 10 + uint64(effDict)/1024 + (uint64(2*literalSubdecoderSize)<<uint(lc+lp))/1024, nil
}

// EstimateMemoryUsageByProps is EstimateMemoryUsage taking a raw props
// byte instead of decoded (lc, lp) fields, matching the `.lzma` header's
// on-disk representation.
func EstimateMemoryUsageByProps(dictSize uint64, propsByte byte) (uint64, error) {
	props, err := ParseProps(propsByte)
	if err != nil {
		return 0, err
	}
	return EstimateMemoryUsage(dictSize, props.LC, props.LP)
}
