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

import "github.com/lafrenierejm/lzma-rust/rangecoder"

const (
	lowSymbols  = 8
	midSymbols  = 8
	highSymbols = 256
)

// lengthCoder decodes a match length as one of three ranges selected by
// two binary choices: [MATCH_LEN_MIN, +7], [+8, +15], or [+16, +271].
type lengthCoder struct {
	choice [2]rangecoder.Prob
	low    [numPosStates][lowSymbols]rangecoder.Prob
	mid    [numPosStates][midSymbols]rangecoder.Prob
	high   [highSymbols]rangecoder.Prob
}

func newLengthCoder() *lengthCoder {
	c := &lengthCoder{}
	c.reset()
	return c
}

func (c *lengthCoder) reset() {
	rangecoder.ResetProbs(c.choice[:])
	for i := range c.low {
		rangecoder.ResetProbs(c.low[i][:])
		rangecoder.ResetProbs(c.mid[i][:])
	}
	rangecoder.ResetProbs(c.high[:])
}

func (c *lengthCoder) decode(rc rangeSource, posState int) (int, error) {
	bit, err := rc.DecodeBit(&c.choice[0])
	if err != nil {
		return 0, err
	}
	if bit == 0 {
		sym, err := rc.DecodeBitTree(c.low[posState][:])
		if err != nil {
			return 0, err
		}
		return matchLenMin + int(sym), nil
	}

	bit, err = rc.DecodeBit(&c.choice[1])
	if err != nil {
		return 0, err
	}
	if bit == 0 {
		sym, err := rc.DecodeBitTree(c.mid[posState][:])
		if err != nil {
			return 0, err
		}
		return matchLenMin + lowSymbols + int(sym), nil
	}

	sym, err := rc.DecodeBitTree(c.high[:])
	if err != nil {
		return 0, err
	}
	return matchLenMin + lowSymbols + midSymbols + int(sym), nil
}
