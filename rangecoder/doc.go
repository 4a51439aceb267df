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

// Package rangecoder implements the adaptive binary range decoder shared
// by the legacy .lzma stream format and LZMA2 chunk framing. It reads
// compressed bytes from either a streaming io.Reader or a fixed-size
// buffer filled ahead of time by a caller, and decodes adaptive binary
// symbols, fixed-probability direct bits, and bit-tree structures.
package rangecoder
