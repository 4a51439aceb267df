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

package window

import (
	"fmt"
	"io"
)

// Window is a cyclic byte buffer holding the decoder's dictionary
// history. pos is the next write offset, full is the high-water mark of
// bytes ever written, start is the first unflushed byte, and limit caps
// how far pos may advance before the current decode invocation must
// yield.
type Window struct {
	buf   []byte
	start int
	pos   int
	full  int
	limit int

	pendingDist uint32
	pendingLen  int
}

// New allocates a window of dictSize bytes and, if presetDict is
// non-empty, installs its trailing dictSize bytes (or all of it, if
// shorter) as initial history.
func New(dictSize uint32, presetDict []byte) *Window {
	return NewFromBuffer(make([]byte, dictSize), presetDict)
}

// NewFromBuffer builds a Window directly over a caller-supplied backing
// array instead of allocating one, so a pool (internal/bufpool) can hand
// back a buffer from a prior Reader instead of every Reader construction
// allocating a fresh dict-sized array. buf's length is the window's
// dictionary size; its prior contents are discarded (full starts at 0
// unless presetDict is supplied, so stale bytes are never reachable
// through GetByte or Repeat, which both check dist against full).
func NewFromBuffer(buf []byte, presetDict []byte) *Window {
	w := &Window{buf: buf}
	if len(presetDict) == 0 {
		return w
	}
	n := len(presetDict)
	if n > len(w.buf) {
		n = len(w.buf)
	}
	copy(w.buf[:n], presetDict[len(presetDict)-n:])
	w.pos = n
	w.full = n
	w.start = n
	return w
}

// ReleaseBuffer returns the window's backing array, for a caller that
// wants to hand it to a buffer pool once the Window is no longer in use.
// The Window itself must not be used again afterward.
func (w *Window) ReleaseBuffer() []byte {
	return w.buf
}

// Reset clears the window's bookkeeping. Buffer contents become
// semantically undefined: because full drops to zero, Repeat rejects
// requests against the stale contents and GetByte returns 0 for them.
func (w *Window) Reset() {
	w.start = 0
	w.pos = 0
	w.full = 0
	w.limit = 0
	w.pendingLen = 0
}

// SetLimit bounds how many bytes may be produced by the next decode
// invocation: limit = min(pos+outMax, len(buf)).
func (w *Window) SetLimit(outMax int) {
	w.limit = w.pos + outMax
	if w.limit > len(w.buf) {
		w.limit = len(w.buf)
	}
}

// HasSpace reports whether pos has not yet reached limit.
func (w *Window) HasSpace() bool {
	return w.pos < w.limit
}

// HasPending reports whether a match-copy was truncated by limit and is
// awaiting replay via RepeatPending.
func (w *Window) HasPending() bool {
	return w.pendingLen > 0
}

// Pos returns the current write offset.
func (w *Window) Pos() int {
	return w.pos
}

// GetByte returns the byte at logical distance dist behind pos (0 is the
// most recently written byte). For dist >= full, a position no byte has
// been written to since construction or the last Reset, it returns 0.
func (w *Window) GetByte(dist uint32) byte {
	d := int(dist)
	if d >= w.full {
		return 0
	}
	var offset int
	if d >= w.pos {
		offset = len(w.buf) + w.pos - d - 1
	} else {
		offset = w.pos - d - 1
	}
	return w.buf[offset]
}

// PutByte appends a single literal byte to the window.
func (w *Window) PutByte(b byte) {
	w.buf[w.pos] = b
	w.pos++
	if w.full < w.pos {
		w.full = w.pos
	}
}

// Repeat copies length bytes starting at logical distance dist behind the
// current position, appending them to the output. If the copy would
// exceed limit, the unwritten remainder is stashed as a pending repeat to
// be replayed by the next call to RepeatPending.
func (w *Window) Repeat(dist uint32, length int) error {
	d := int(dist)
	if d >= w.full {
		return fmt.Errorf("%w: dist=%d full=%d", ErrDistanceTooFar, dist, w.full)
	}

	left := length
	if room := w.limit - w.pos; room < left {
		left = room
	}
	w.pendingLen = length - left
	w.pendingDist = dist

	var back int
	if w.pos < d+1 {
		// The distance wraps past the end of the cyclic buffer, which can
		// only happen once the dictionary has filled completely.
		back = len(w.buf) + w.pos - d - 1
		copySize := len(w.buf) - back
		if copySize > left {
			copySize = left
		}
		copy(w.buf[w.pos:w.pos+copySize], w.buf[back:back+copySize])
		w.pos += copySize
		left -= copySize
		if left == 0 {
			if w.full < w.pos {
				w.full = w.pos
			}
			return nil
		}
		back = 0
	} else {
		back = w.pos - d - 1
	}

	for left > 0 {
		// copySize is always bounded by pos-back, so the source and
		// destination ranges never overlap even when dist+1 < length: the
		// output just written on a prior iteration becomes readable
		// source for the next, growing the copyable span each time.
		copySize := w.pos - back
		if copySize > left {
			copySize = left
		}
		copy(w.buf[w.pos:w.pos+copySize], w.buf[back:back+copySize])
		w.pos += copySize
		left -= copySize
	}

	if w.full < w.pos {
		w.full = w.pos
	}
	return nil
}

// RepeatPending replays a match-copy truncated by a previous limit. It
// must be called at the top of every decode invocation, before any other
// window operation.
func (w *Window) RepeatPending() error {
	if w.pendingLen == 0 {
		return nil
	}
	length := w.pendingLen
	w.pendingLen = 0
	return w.Repeat(w.pendingDist, length)
}

// CopyUncompressed reads min(length, len(buf)-pos) bytes directly from r
// into the window, for LZMA2's uncompressed chunk type.
func (w *Window) CopyUncompressed(r io.Reader, length int) error {
	copySize := len(w.buf) - w.pos
	if copySize > length {
		copySize = length
	}
	if _, err := io.ReadFull(r, w.buf[w.pos:w.pos+copySize]); err != nil {
		return fmt.Errorf("window: copy uncompressed: %w", err)
	}
	w.pos += copySize
	if w.full < w.pos {
		w.full = w.pos
	}
	return nil
}

// Flush copies the unflushed bytes [start, pos) into dst starting at
// off, wraps pos to zero if the buffer is exactly full, and returns the
// number of bytes copied.
func (w *Window) Flush(dst []byte, off int) int {
	n := w.pos - w.start
	copy(dst[off:off+n], w.buf[w.start:w.pos])
	if w.pos == len(w.buf) {
		w.pos = 0
	}
	w.start = w.pos
	return n
}
