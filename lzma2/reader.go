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

import (
	"fmt"
	"io"

	"github.com/icza/bitio"

	"github.com/lafrenierejm/lzma-rust/internal/bufpool"
	"github.com/lafrenierejm/lzma-rust/lzma"
	"github.com/lafrenierejm/lzma-rust/rangecoder"
	"github.com/lafrenierejm/lzma-rust/window"
)

// Reader decompresses a raw LZMA2 chunk stream. It owns the dictionary
// window, a buffered range decoder refilled once per LZMA chunk, and the
// embedded LZMA decoder, which is rebuilt only when a chunk's control
// byte requests a props reset.
type Reader struct {
	br *bitio.Reader

	lz  *window.Window
	rc  *rangecoder.Decoder
	dec *lzma.Decoder

	pool     *bufpool.Pool
	dictSize uint32
	closed   bool

	uncompressedSize int
	isLZMAChunk      bool
	needDictReset    bool
	needProps        bool
	needStateReset   bool
	endReached       bool

	err error
}

// byteReader adapts a *bitio.Reader's ReadByte method to io.Reader. A
// chunk's header fields and its body (compressed or uncompressed) must
// come from the same byte stream with nothing skipped or re-read in
// between; routing both through the one ReadByte call already used for
// header parsing guarantees that regardless of what buffering
// bitio.Reader does internally.
type byteReader struct{ br *bitio.Reader }

func (a byteReader) Read(p []byte) (int, error) {
	for i := range p {
		b, err := a.br.ReadByte()
		if err != nil {
			return i, err
		}
		p[i] = b
	}
	return len(p), nil
}

// NewReader constructs a Reader over r with the given dictionary size and
// optional preset-dictionary bytes. A preset dictionary satisfies the
// stream's first required dictionary reset, so the first chunk need not
// carry one itself.
func NewReader(r io.Reader, dictSize uint32, presetDict []byte) (*Reader, error) {
	return NewReaderWithPool(r, dictSize, presetDict, nil)
}

// NewReaderWithPool is NewReader, but satisfies the dictionary window's
// backing buffer from pool when non-nil instead of always allocating a
// fresh one, and returns the buffer to pool once the Reader is Close'd.
// Readers built in sequence over one pool reuse a single dict-sized array
// instead of allocating one each. cmd/lzmacat constructs its Reader
// through this function, one Reader per run.
func NewReaderWithPool(r io.Reader, dictSize uint32, presetDict []byte, pool *bufpool.Pool) (*Reader, error) {
	effDictSize, err := effectiveDictSize(dictSize)
	if err != nil {
		return nil, err
	}
	var buf []byte
	if pool != nil {
		buf = pool.Get(effDictSize)
	} else {
		buf = make([]byte, effDictSize)
	}
	return &Reader{
		br:            bitio.NewReader(r),
		lz:            window.NewFromBuffer(buf, presetDict),
		rc:            rangecoder.NewBufferedDecoder(),
		pool:          pool,
		dictSize:      effDictSize,
		needDictReset: len(presetDict) == 0,
		needProps:     true,
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

// Read implements io.Reader. It returns io.EOF once the stream's
// terminator chunk (control byte 0x00) has been consumed; the first
// error encountered is cached and returned on every subsequent call.
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
		if rd.uncompressedSize == 0 {
			if err := rd.decodeChunkHeader(); err != nil {
				return size, err
			}
			if rd.endReached {
				return size, nil
			}
		}

		copySizeMax := remaining
		if rd.uncompressedSize < copySizeMax {
			copySizeMax = rd.uncompressedSize
		}

		if rd.isLZMAChunk {
			rd.lz.SetLimit(copySizeMax)
			if rd.dec != nil {
				if err := rd.dec.Decode(rd.lz, rd.rc); err != nil {
					return size, fmt.Errorf("%w: %v", ErrCorrupted, err)
				}
			}
		} else if err := rd.lz.CopyUncompressed(byteReader{rd.br}, copySizeMax); err != nil {
			return size, err
		}

		copied := rd.lz.Flush(buf, off)
		off += copied
		remaining -= copied
		size += copied
		rd.uncompressedSize -= copied

		if rd.uncompressedSize == 0 && (!rd.rc.IsFinished() || rd.lz.HasPending()) {
			return size, ErrCorrupted
		}
	}
	return size, nil
}

// decodeChunkHeader parses one chunk's control byte and any header
// fields it implies, leaving the Reader positioned to either copy
// uncompressed bytes or drive the LZMA decoder for uncompressedSize
// bytes.
func (rd *Reader) decodeChunkHeader() error {
	control, err := rd.br.ReadByte()
	if err != nil {
		return fmt.Errorf("lzma2: read chunk control byte: %w", err)
	}
	if control == controlEndOfStream {
		rd.endReached = true
		return nil
	}

	if control >= controlLZMAFullReset || control == controlUncompressedDictReset {
		rd.needProps = true
		rd.needDictReset = false
		rd.lz.Reset()
	} else if rd.needDictReset {
		return fmt.Errorf("%w: chunk before first dictionary reset", ErrInvalidChunk)
	}

	switch {
	case control >= controlLZMANoReset:
		rd.isLZMAChunk = true
		hi, err := readUint16BE(rd.br)
		if err != nil {
			return fmt.Errorf("lzma2: read uncompressed size: %w", err)
		}
		rd.uncompressedSize = int(control&0x1F)<<16 + int(hi) + 1

		compressedSize, err := readUint16BE(rd.br)
		if err != nil {
			return fmt.Errorf("lzma2: read compressed size: %w", err)
		}

		switch {
		case control >= controlLZMAStatePropsReset:
			rd.needProps = false
			rd.needStateReset = false
			props, err := decodeProps(rd.br)
			if err != nil {
				return err
			}
			rd.dec = lzma.NewDecoder(props)
		case rd.needProps:
			return fmt.Errorf("%w: LZMA chunk before first props reset", ErrInvalidChunk)
		case control >= controlLZMAStateReset:
			rd.needStateReset = false
			if rd.dec != nil {
				rd.dec.Reset()
			}
		case rd.needStateReset:
			return fmt.Errorf("%w: LZMA chunk reuses coder state across an uncompressed chunk", ErrInvalidChunk)
		}

		if err := rd.rc.Fill(byteReader{rd.br}, int(compressedSize)+1); err != nil {
			return err
		}
		if err := rd.rc.Prime(); err != nil {
			return err
		}
	case control > controlUncompressedNoReset:
		return fmt.Errorf("%w: 0x%02X", ErrInvalidChunk, control)
	default:
		rd.isLZMAChunk = false
		rd.needStateReset = true
		lo, err := readUint16BE(rd.br)
		if err != nil {
			return fmt.Errorf("lzma2: read uncompressed size: %w", err)
		}
		rd.uncompressedSize = int(lo) + 1
	}
	return nil
}
