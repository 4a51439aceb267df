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

// Package bufpool caches reusable dictionary-window backing buffers keyed
// by dictionary size. Opening many short-lived Readers against one
// archive's chunk/hunk stream (the common case this module is embedded
// in) would otherwise allocate a fresh DICT_SIZE-byte array per Reader;
// a Pool lets them borrow one back from the last Reader that released it.
//
// This generalizes a mutex-guarded-map registry pattern (construct once,
// key by a small tag) from "construct a codec for this tag" to "hand
// back a buffer for this size," backed by an LRU rather than an
// unbounded map since a long-running process embedding this module may
// see many distinct dictionary sizes over its lifetime and must not
// grow the cache without bound.
package bufpool

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Pool is a bounded, concurrency-safe cache of spare dictionary-window
// buffers. The zero value is not usable; construct with New.
type Pool struct {
	mu    sync.Mutex
	cache *lru.Cache[uint32, []byte]
}

// New returns a Pool that retains at most maxEntries distinct dictionary
// sizes' worth of spare buffers, evicting the least-recently-used size
// once that cap is reached.
func New(maxEntries int) (*Pool, error) {
	cache, err := lru.New[uint32, []byte](maxEntries)
	if err != nil {
		return nil, err
	}
	return &Pool{cache: cache}, nil
}

// Get returns a buffer of exactly size bytes, reusing one a prior Put
// left behind for this size if available, and allocating a fresh one
// otherwise. The returned buffer's contents are not zeroed; callers that
// care (Window.Reset's dist < full guard makes stale contents harmless
// for this module's own use) must clear it themselves.
func (p *Pool) Get(size uint32) []byte {
	p.mu.Lock()
	buf, ok := p.cache.Get(size)
	if ok {
		p.cache.Remove(size)
	}
	p.mu.Unlock()

	if ok && uint32(len(buf)) == size {
		return buf
	}
	return make([]byte, size)
}

// Put returns buf to the pool for reuse by a future Get of the same
// size. A size mismatch is a caller bug and is silently ignored rather
// than corrupting the cache with a buffer the wrong length.
func (p *Pool) Put(size uint32, buf []byte) {
	if uint32(len(buf)) != size {
		return
	}
	p.mu.Lock()
	p.cache.Add(size, buf)
	p.mu.Unlock()
}
