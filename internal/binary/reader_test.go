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

package binary_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/lafrenierejm/lzma-rust/internal/binary"
)

func TestReadUint16BE(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		want    uint16
		wantErr bool
	}{
		{"zero", []byte{0x00, 0x00}, 0x0000, false},
		{"max", []byte{0xFF, 0xFF}, 0xFFFF, false},
		{"mixed", []byte{0x12, 0x34}, 0x1234, false},
		{"short", []byte{0x12}, 0, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := binary.ReadUint16BE(binary.ByteReaderFrom{R: bytes.NewReader(tt.data)})
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadUint16BE() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Fatalf("ReadUint16BE() = 0x%04X, want 0x%04X", got, tt.want)
			}
		})
	}
}

func TestReadUint32LE(t *testing.T) {
	t.Parallel()

	data := []byte{0x78, 0x56, 0x34, 0x12}
	got, err := binary.ReadUint32LE(binary.ByteReaderFrom{R: bytes.NewReader(data)})
	if err != nil {
		t.Fatalf("ReadUint32LE() error = %v", err)
	}
	if want := uint32(0x12345678); got != want {
		t.Fatalf("ReadUint32LE() = 0x%08X, want 0x%08X", got, want)
	}
}

func TestReadUint64LE(t *testing.T) {
	t.Parallel()

	data := []byte{0xF0, 0xDE, 0xBC, 0x9A, 0x78, 0x56, 0x34, 0x12}
	got, err := binary.ReadUint64LE(binary.ByteReaderFrom{R: bytes.NewReader(data)})
	if err != nil {
		t.Fatalf("ReadUint64LE() error = %v", err)
	}
	if want := uint64(0x123456789ABCDEF0); got != want {
		t.Fatalf("ReadUint64LE() = 0x%016X, want 0x%016X", got, want)
	}
}

func TestReadUint64LETruncated(t *testing.T) {
	t.Parallel()

	data := []byte{0x01, 0x02, 0x03}
	if _, err := binary.ReadUint64LE(binary.ByteReaderFrom{R: bytes.NewReader(data)}); err == nil {
		t.Fatal("ReadUint64LE() error = nil, want non-nil on truncated input")
	}
}

func TestByteReaderFrom(t *testing.T) {
	t.Parallel()

	br := binary.ByteReaderFrom{R: bytes.NewReader([]byte{0x42})}
	b, err := br.ReadByte()
	if err != nil {
		t.Fatalf("ReadByte() error = %v", err)
	}
	if b != 0x42 {
		t.Fatalf("ReadByte() = 0x%02X, want 0x42", b)
	}
	if _, err := br.ReadByte(); err != io.EOF {
		t.Fatalf("ReadByte() at EOF error = %v, want io.EOF", err)
	}
}

// FuzzReadUint32LE fuzzes the header dictionary-size field reader: it
// must never panic and must round-trip any 4-byte little-endian value.
func FuzzReadUint32LE(f *testing.F) {
	f.Add([]byte{0x00, 0x00, 0x00, 0x00})
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	f.Add([]byte{0x01, 0x02, 0x03, 0x04})
	f.Add([]byte{0x00})

	f.Fuzz(func(t *testing.T, data []byte) {
		got, err := binary.ReadUint32LE(binary.ByteReaderFrom{R: bytes.NewReader(data)})
		if err != nil {
			if len(data) >= 4 {
				t.Fatalf("ReadUint32LE() error = %v on %d-byte input", err, len(data))
			}
			return
		}
		var want uint32
		for i := 0; i < 4; i++ {
			want |= uint32(data[i]) << (8 * uint(i))
		}
		if got != want {
			t.Fatalf("ReadUint32LE() = 0x%08X, want 0x%08X", got, want)
		}
	})
}

// FuzzReadUint16BE fuzzes the chunk-header size field reader.
func FuzzReadUint16BE(f *testing.F) {
	f.Add([]byte{0x00, 0x00})
	f.Add([]byte{0xFF, 0xFF})
	f.Add([]byte{0x12, 0x34})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		got, err := binary.ReadUint16BE(binary.ByteReaderFrom{R: bytes.NewReader(data)})
		if err != nil {
			if len(data) >= 2 {
				t.Fatalf("ReadUint16BE() error = %v on %d-byte input", err, len(data))
			}
			return
		}
		want := uint16(data[0])<<8 | uint16(data[1])
		if got != want {
			t.Fatalf("ReadUint16BE() = 0x%04X, want 0x%04X", got, want)
		}
	})
}
