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

package rangecoder

// Prob is an adaptive 11-bit probability estimate stored in 16 bits.
type Prob uint16

const (
	// probBits is the number of bits of precision in a Prob (BIT_MODEL_TOTAL_BITS).
	probBits = 11

	// ProbTotal is the value representing certainty (1 << probBits).
	ProbTotal Prob = 1 << probBits

	// ProbInit is the initial value of every adaptive probability: half of ProbTotal.
	ProbInit Prob = ProbTotal / 2

	// moveBits controls the adaptation rate on each decode_bit call.
	moveBits = 5
)

// NewProbs allocates a probability table of n entries, each set to ProbInit.
func NewProbs(n int) []Prob {
	p := make([]Prob, n)
	ResetProbs(p)
	return p
}

// ResetProbs reinitializes every entry of p to ProbInit in place, so a
// previously allocated table can be reused across a state reset without
// reallocating.
func ResetProbs(p []Prob) {
	for i := range p {
		p[i] = ProbInit
	}
}
