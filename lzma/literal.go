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

// literalSubdecoderSize is the number of probabilities per literal
// sub-decoder: 256 for a plain 8-bit tree, plus two more 256-entry
// regions (offsets 0x100 and 0x200) used only in matched-literal mode.
const literalSubdecoderSize = 0x300

// literalCoder owns 1<<(lc+lp) independent 768-probability sub-decoders,
// selected per byte by the previous output byte's high lc bits and the
// current position's low lp bits.
type literalCoder struct {
	lc, lp int
	probs  [][literalSubdecoderSize]rangecoder.Prob
}

func newLiteralCoder(lc, lp int) *literalCoder {
	c := &literalCoder{
		lc:    lc,
		lp:    lp,
		probs: make([][literalSubdecoderSize]rangecoder.Prob, 1<<uint(lc+lp)),
	}
	c.reset()
	return c
}

func (c *literalCoder) reset() {
	for i := range c.probs {
		rangecoder.ResetProbs(c.probs[i][:])
	}
}

// subDecoderIndex selects which of the 1<<(lc+lp) sub-decoders applies
// for the byte about to be decoded at output position pos, given the
// previously emitted byte prevByte.
func (c *literalCoder) subDecoderIndex(prevByte byte, pos int) int {
	lpMask := uint32(1<<uint(c.lp)) - 1
	return int(((uint32(pos) & lpMask) << uint(c.lc)) | (uint32(prevByte) >> uint(8-c.lc)))
}

// decodePlain decodes a literal byte with no dictionary reference: a
// standard 256-leaf binary tree rooted at symbol 1.
func decodePlain(rc rangeSource, probs *[literalSubdecoderSize]rangecoder.Prob) (byte, error) {
	sym, err := rc.DecodeBitTree(probs[:0x100])
	if err != nil {
		return 0, err
	}
	return byte(sym), nil
}

// decodeMatched decodes a literal byte in matched-literal mode: each bit
// is first compared against the corresponding bit of matchByte (the byte
// at distance reps[0]), which selects one of two 256-entry regions of
// probs until the reference and decoded bits first disagree, after which
// offset collapses to the plain region for the remaining bits.
func decodeMatched(rc rangeSource, probs *[literalSubdecoderSize]rangecoder.Prob, matchByte byte) (byte, error) {
	symbol := uint32(1)
	mb := uint32(matchByte)
	offset := uint32(0x100)
	for symbol < 0x100 {
		mb <<= 1
		matchBit := mb & offset
		bit, err := rc.DecodeBit(&probs[offset+matchBit+symbol])
		if err != nil {
			return 0, err
		}
		symbol = symbol<<1 | bit
		offset &= (0 - bit) ^ ^matchBit
	}
	return byte(symbol - 0x100), nil
}
