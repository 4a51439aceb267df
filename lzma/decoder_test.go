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
	"bytes"
	"testing"

	"github.com/lafrenierejm/lzma-rust/rangecoder"
)

func TestNewDecoderStartsWithEndMarkerNotDetected(t *testing.T) {
	t.Parallel()

	d := NewDecoder(Props{LC: 3, LP: 0, PB: 2})
	if d.EndMarkerDetected() {
		t.Fatal("EndMarkerDetected() = true for a freshly constructed decoder")
	}
}

func TestEndMarkerDetectedTracksReps0(t *testing.T) {
	t.Parallel()

	d := NewDecoder(Props{LC: 0, LP: 0, PB: 0})
	d.reps[0] = -1
	if !d.EndMarkerDetected() {
		t.Fatal("EndMarkerDetected() = false with reps[0] == -1")
	}
	d.reps[0] = 41
	if d.EndMarkerDetected() {
		t.Fatal("EndMarkerDetected() = true with reps[0] != -1")
	}
}

func TestDecoderResetRestoresStateAndReps(t *testing.T) {
	t.Parallel()

	d := NewDecoder(Props{LC: 3, LP: 0, PB: 2})
	d.state = 9
	d.reps = [4]int32{1, 2, 3, 4}

	d.Reset()
	if d.state != 0 {
		t.Fatalf("Reset() left state = %d, want 0", d.state)
	}
	if d.reps != ([4]int32{}) {
		t.Fatalf("Reset() left reps = %v, want zero value", d.reps)
	}
	if d.probs.isMatch[0][0] != rangecoder.ProbInit {
		t.Fatal("Reset() did not restore probability tables to ProbInit")
	}
}

func TestDecodeDistanceLiteralSlots(t *testing.T) {
	t.Parallel()

	d := NewDecoder(Props{LC: 0, LP: 0, PB: 0})
	rc := rangecoder.NewStreamDecoder(bytes.NewReader(bytes.Repeat([]byte{0}, 16)))
	if err := rc.Prime(); err != nil {
		t.Fatalf("Prime() error = %v", err)
	}

	for slot := uint32(0); slot < distModelStart; slot++ {
		dist, err := d.decodeDistance(rc, slot)
		if err != nil {
			t.Fatalf("decodeDistance(%d) error = %v", slot, err)
		}
		if dist != slot {
			t.Fatalf("decodeDistance(%d) = %d, want %d", slot, dist, slot)
		}
	}
}

func TestDecodeDistanceSpecialSlotRange(t *testing.T) {
	t.Parallel()

	d := NewDecoder(Props{LC: 0, LP: 0, PB: 0})
	data := append([]byte{0x00}, bytes.Repeat([]byte{0x5A, 0x3C, 0x91, 0xE0}, 40)...)

	for slot := uint32(distModelStart); slot < distModelEnd; slot++ {
		rc := rangecoder.NewStreamDecoder(bytes.NewReader(data))
		if err := rc.Prime(); err != nil {
			t.Fatalf("Prime() error = %v", err)
		}
		dist, err := d.decodeDistance(rc, slot)
		if err != nil {
			t.Fatalf("decodeDistance(%d) error = %v", slot, err)
		}
		limit := uint64(slot>>1) - 1
		base := uint64(2|(slot&1)) << limit
		span := uint64(1) << limit
		if got := uint64(dist); got < base || got >= base+span {
			t.Fatalf("decodeDistance(%d) = %d, out of [%d, %d)", slot, dist, base, base+span)
		}
	}
}

func TestDecodeDistanceDirectSlotRange(t *testing.T) {
	t.Parallel()

	d := NewDecoder(Props{LC: 0, LP: 0, PB: 0})
	data := append([]byte{0x00}, bytes.Repeat([]byte{0x5A, 0x3C, 0x91, 0xE0, 0x01, 0xFE}, 60)...)

	for _, slot := range []uint32{distModelEnd, 40, numDistSlots - 1} {
		rc := rangecoder.NewStreamDecoder(bytes.NewReader(data))
		if err := rc.Prime(); err != nil {
			t.Fatalf("Prime() error = %v", err)
		}
		dist, err := d.decodeDistance(rc, slot)
		if err != nil {
			t.Fatalf("decodeDistance(%d) error = %v", slot, err)
		}
		limit := uint64(slot>>1) - 1
		base := uint64(2|(slot&1)) << limit
		span := uint64(1) << limit
		if got := uint64(dist); got < base || got >= base+span {
			t.Fatalf("decodeDistance(%d) = %d, out of [%d, %d)", slot, dist, base, base+span)
		}
	}
}
