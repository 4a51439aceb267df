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

// Props holds the three runtime-configurable LZMA parameters: the number
// of literal context bits, literal position bits, and position bits.
type Props struct {
	LC int
	LP int
	PB int
}

// maxPropsByte is (4*5+4)*9+8, the highest value a valid props byte can
// take (lc=8, lp=4, pb=4, before the additional lc+lp<=4 constraint this
// format enforces).
const maxPropsByte = (4*5+4)*9 + 8

// Byte encodes p as a single properties byte: (pb*5+lp)*9+lc.
func (p Props) Byte() byte {
	return byte((p.PB*5+p.LP)*9 + p.LC)
}

// ParseProps decodes a single LZMA properties byte into its three fields,
// rejecting values that don't satisfy lc+lp <= 4.
func ParseProps(b byte) (Props, error) {
	if b > maxPropsByte {
		return Props{}, fmt.Errorf("%w: byte %d exceeds %d", ErrInvalidProps, b, maxPropsByte)
	}
	d := int(b)
	lc := d % 9
	d /= 9
	lp := d % 5
	pb := d / 5
	if lc+lp > 4 {
		return Props{}, fmt.Errorf("%w: lc=%d lp=%d sums to more than 4", ErrInvalidProps, lc, lp)
	}
	return Props{LC: lc, LP: lp, PB: pb}, nil
}
