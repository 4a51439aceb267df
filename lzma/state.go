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

// coderState classifies the last few decoded events into one of 12
// values, indexing the is_match/is_rep*/is_rep0_long probability tables.
// States 0-6 follow a literal; 7-11 follow a match or rep-match, which is
// what makes matched-literal decoding (state.IsLiteral() == false)
// meaningful.
type coderState uint8

const numStates = 12

// IsLiteral reports whether the most recent event was a literal byte, as
// opposed to a match or rep-match.
func (s coderState) IsLiteral() bool {
	return s < 7
}

// UpdateLiteral transitions the state after emitting a literal byte.
func (s *coderState) UpdateLiteral() {
	switch {
	case *s < 4:
		*s = 0
	case *s < 10:
		*s -= 3
	default:
		*s -= 6
	}
}

// UpdateMatch transitions the state after a regular (non-rep) match.
func (s *coderState) UpdateMatch() {
	if *s < 7 {
		*s = 7
	} else {
		*s = 10
	}
}

// UpdateLongRep transitions the state after a rep-match with an explicit
// length-coder round (as opposed to a short-rep).
func (s *coderState) UpdateLongRep() {
	if *s < 7 {
		*s = 8
	} else {
		*s = 11
	}
}

// UpdateShortRep transitions the state after a single-byte rep-match at
// distance reps[0] decoded without a length-coder round.
func (s *coderState) UpdateShortRep() {
	if *s < 7 {
		*s = 9
	} else {
		*s = 11
	}
}
