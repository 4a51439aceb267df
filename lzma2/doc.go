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

// Package lzma2 decodes a raw LZMA2 chunk stream: the framing used inside
// container formats such as .xz and .7z, with no container header of its
// own. Chunks concatenate until a terminator byte; each chunk either
// copies bytes verbatim into the dictionary or drives an embedded LZMA
// decoder (package lzma) over a self-contained range-coded body.
package lzma2
