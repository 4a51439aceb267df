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
	"errors"
	"testing"

	"github.com/lafrenierejm/lzma-rust/lzma"
)

func TestEffectiveDictSizeRoundsUpWithNoFloor(t *testing.T) {
	t.Parallel()

	got, err := effectiveDictSize(1)
	if err != nil {
		t.Fatalf("effectiveDictSize() error = %v", err)
	}
	// (1+15) &^ 15 = 16, unlike the .lzma facade's 4096-byte floor.
	if want := uint32(16); got != want {
		t.Fatalf("effectiveDictSize(1) = %d, want %d", got, want)
	}
}

func TestEffectiveDictSizeZeroStaysZero(t *testing.T) {
	t.Parallel()

	got, err := effectiveDictSize(0)
	if err != nil {
		t.Fatalf("effectiveDictSize() error = %v", err)
	}
	if got != 0 {
		t.Fatalf("effectiveDictSize(0) = %d, want 0", got)
	}
}

func TestEffectiveDictSizeRejectsTooLarge(t *testing.T) {
	t.Parallel()

	_, err := effectiveDictSize(lzma.DictSizeMax + 1)
	if !errors.Is(err, lzma.ErrDictSizeTooLarge) {
		t.Fatalf("effectiveDictSize() error = %v, want ErrDictSizeTooLarge", err)
	}
}

func TestEstimateMemoryUsage(t *testing.T) {
	t.Parallel()

	kib, err := EstimateMemoryUsage(1 << 16)
	if err != nil {
		t.Fatalf("EstimateMemoryUsage() error = %v", err)
	}
	// effective dict = 65536 -> 64 KiB; compressed buffer -> 64 KiB; fixed 40.
	if want := uint64(40 + 64 + 64); kib != want {
		t.Fatalf("EstimateMemoryUsage() = %d, want %d", kib, want)
	}
}

func TestEstimateMemoryUsagePropagatesDictSizeError(t *testing.T) {
	t.Parallel()

	_, err := EstimateMemoryUsage(lzma.DictSizeMax + 1)
	if !errors.Is(err, lzma.ErrDictSizeTooLarge) {
		t.Fatalf("EstimateMemoryUsage() error = %v, want ErrDictSizeTooLarge", err)
	}
}
