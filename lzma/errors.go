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

import "errors"

var (
	// ErrInvalidProps indicates a props byte decodes to lc+lp > 4 or is
	// otherwise out of the representable (pb*5+lp)*9+lc range.
	ErrInvalidProps = errors.New("lzma: invalid properties byte")

	// ErrDictSizeTooLarge indicates a declared dictionary size exceeds
	// DictSizeMax.
	ErrDictSizeTooLarge = errors.New("lzma: dictionary size too large")

	// ErrOutOfMemory indicates a stream's estimated working-set size
	// exceeds the caller-supplied memory limit.
	ErrOutOfMemory = errors.New("lzma: memory limit exceeded")

	// ErrCorrupted indicates the decoder detected a state inconsistent
	// with a clean end of stream: a pending repeat, or unconsumed
	// range-decoder input, at the point end-of-stream was declared.
	ErrCorrupted = errors.New("lzma: corrupted stream")
)
