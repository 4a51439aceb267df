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

import "errors"

var (
	// ErrInvalidInput indicates the range coder prime byte was not 0x00.
	ErrInvalidInput = errors.New("rangecoder: invalid input")

	// ErrBufferExhausted indicates a read past the end of a buffered
	// decoder's fixed-size compressed-bytes buffer.
	ErrBufferExhausted = errors.New("rangecoder: read past end of buffer")

	// ErrNotBuffered indicates a buffered-only operation was called on a
	// stream-backed Decoder.
	ErrNotBuffered = errors.New("rangecoder: decoder is not buffer-backed")
)
