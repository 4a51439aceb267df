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

import (
	"fmt"
	"io"

	"github.com/icza/bitio"

	"github.com/lafrenierejm/lzma-rust/internal/bufpool"
	"github.com/lafrenierejm/lzma-rust/rangecoder"
	"github.com/lafrenierejm/lzma-rust/window"
)

// Reader decompresses a single continuous LZMA stream: either a legacy
// .lzma file (header plus payload) or a raw range-coded stream whose
// properties and size are supplied by the caller, as used by LZMA2's
// individual chunks.
type Reader struct {
	lz  *window.Window
	rc  *rangecoder.Decoder
	dec *Decoder

	pool     *bufpool.Pool
	dictSize uint32
	closed   bool

	endReached     bool
	relaxedEndCond bool
	remainingSize  uint64

	err error
}

// NewReader parses a 13-byte .lzma header from r, verifies the stream's
// estimated memory usage against memLimitKB (UncompSizeUnknown-style
// "no limit" is expressed by passing math.MaxUint64), and returns a
// Reader positioned to decode the payload that follows.
//
// When the header declares a known uncompressed size smaller than the
// declared dictionary size, the window is sized to the smaller of the
// two (rounded per EffectiveDictSize): a stream provably can't use more
// history than its own length.
func NewReader(r io.Reader, memLimitKB uint64, presetDict []byte) (*Reader, error) {
	return NewReaderWithPool(r, memLimitKB, presetDict, nil)
}

// NewReaderWithPool is NewReader, but satisfies the dictionary window's
// backing buffer from pool when non-nil instead of always allocating a
// fresh one, and returns the buffer to pool once the Reader is Close'd.
func NewReaderWithPool(r io.Reader, memLimitKB uint64, presetDict []byte, pool *bufpool.Pool) (*Reader, error) {
	br := bitio.NewReader(r)
	hdr, err := parseHeaderFrom(br)
	if err != nil {
		return nil, err
	}

	need, err := EstimateMemoryUsage(uint64(hdr.DictSize), hdr.Props.LC, hdr.Props.LP)
	if err != nil {
		return nil, err
	}
	if memLimitKB < need {
		return nil, fmt.Errorf("%w: %d KiB needed, limit is %d KiB", ErrOutOfMemory, need, memLimitKB)
	}

	dictSize := hdr.DictSize
	if hdr.UncompSize != UncompSizeUnknown {
		if effSize, err := EffectiveDictSize(hdr.UncompSize); err == nil && effSize < dictSize {
			dictSize = effSize
		}
	}

	return newReader(byteReader{br}, hdr.Props, dictSize, hdr.UncompSize, presetDict, pool)
}

// NewReaderWithProps constructs a raw-stream Reader (no .lzma header):
// the caller supplies the properties byte, dictionary size, and
// uncompressed size directly.
func NewReaderWithProps(r io.Reader, propsByte byte, dictSize uint32, uncompSize uint64, presetDict []byte) (*Reader, error) {
	props, err := ParseProps(propsByte)
	if err != nil {
		return nil, err
	}
	effDictSize, err := EffectiveDictSize(uint64(dictSize))
	if err != nil {
		return nil, err
	}
	return newReader(r, props, effDictSize, uncompSize, presetDict, nil)
}

func newReader(r io.Reader, props Props, dictSize uint32, uncompSize uint64, presetDict []byte, pool *bufpool.Pool) (*Reader, error) {
	rc := rangecoder.NewStreamDecoder(r)
	if err := rc.Prime(); err != nil {
		return nil, err
	}
	var buf []byte
	if pool != nil {
		buf = pool.Get(dictSize)
	} else {
		buf = make([]byte, dictSize)
	}
	return &Reader{
		lz:             window.NewFromBuffer(buf, presetDict),
		rc:             rc,
		dec:            NewDecoder(props),
		pool:           pool,
		dictSize:       dictSize,
		relaxedEndCond: true,
		remainingSize:  uncompSize,
	}, nil
}

// Close releases the dictionary window's backing buffer back to the pool
// supplied to NewReaderWithPool, if any. It is safe to call more than
// once and safe to omit entirely when no pool was used.
func (rd *Reader) Close() error {
	if rd.closed {
		return nil
	}
	rd.closed = true
	if rd.pool != nil {
		rd.pool.Put(rd.dictSize, rd.lz.ReleaseBuffer())
	}
	return nil
}

// SetRelaxedEndCondition controls whether an encoder-emitted end marker
// is accepted as a clean end of stream even when the range decoder's
// internal code word hasn't reached zero. The legacy .lzma format
// enables this by default; disabling it enforces the strict
// IsFinished() check.
func (rd *Reader) SetRelaxedEndCondition(relaxed bool) {
	rd.relaxedEndCond = relaxed
}

// Read implements io.Reader. It returns io.EOF once the declared
// uncompressed size (or an accepted end marker) has been reached; the
// first error encountered is cached and returned on every subsequent
// call instead of being retried.
func (rd *Reader) Read(buf []byte) (int, error) {
	if rd.err != nil {
		return 0, rd.err
	}
	if len(buf) == 0 {
		return 0, nil
	}
	if rd.endReached {
		rd.err = io.EOF
		return 0, io.EOF
	}

	n, err := rd.readDecode(buf)
	if err != nil {
		rd.err = err
		return n, err
	}
	if n == 0 {
		rd.err = io.EOF
		return 0, io.EOF
	}
	return n, nil
}

func (rd *Reader) readDecode(buf []byte) (int, error) {
	size := 0
	off := 0
	remaining := len(buf)

	for remaining > 0 {
		copySizeMax := remaining
		if rd.remainingSize != UncompSizeUnknown && rd.remainingSize < uint64(remaining) {
			copySizeMax = int(rd.remainingSize)
		}
		rd.lz.SetLimit(copySizeMax)

		if err := rd.dec.Decode(rd.lz, rd.rc); err != nil {
			if rd.remainingSize != UncompSizeUnknown || !rd.dec.EndMarkerDetected() {
				return size, err
			}
			rd.endReached = true
			if err := rd.rc.Normalize(); err != nil {
				return size, err
			}
		}

		copied := rd.lz.Flush(buf, off)
		off += copied
		remaining -= copied
		size += copied

		if rd.remainingSize != UncompSizeUnknown {
			rd.remainingSize -= uint64(copied)
			if rd.remainingSize == 0 {
				rd.endReached = true
			}
		}

		if rd.endReached {
			if rd.lz.HasPending() || (!rd.relaxedEndCond && !rd.rc.IsFinished()) {
				return size, ErrCorrupted
			}
			return size, nil
		}
	}
	return size, nil
}
