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

import "errors"

var (
	// ErrInvalidChunk indicates a reserved or out-of-sequence chunk
	// control byte: 0x03..0x7F, an LZMA chunk before any props-reset, or
	// a non-reset chunk before the stream's first dictionary reset.
	ErrInvalidChunk = errors.New("lzma2: invalid chunk control byte")

	// ErrCorrupted indicates a chunk's declared boundaries and the
	// decoder's actual consumption disagree: the range decoder did not
	// finish its compressed buffer, or a match-copy is still pending,
	// when the chunk's uncompressed size reached zero.
	ErrCorrupted = errors.New("lzma2: corrupted input")
)
