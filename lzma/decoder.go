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
	"github.com/lafrenierejm/lzma-rust/rangecoder"
	"github.com/lafrenierejm/lzma-rust/window"
)

// rangeSource is the subset of rangecoder.Decoder's API the LZMA state
// machine needs. Both the stream and buffered range decoder variants
// satisfy it.
type rangeSource interface {
	DecodeBit(prob *rangecoder.Prob) (uint32, error)
	DecodeBitTree(probs []rangecoder.Prob) (uint32, error)
	DecodeReverseBitTree(probs []rangecoder.Prob) (uint32, error)
	DecodeDirectBits(count uint32) (uint32, error)
	Normalize() error
	IsFinished() bool
}

// Decoder is the LZMA literal/match/rep-match state machine: the
// coder state, the 4-entry match-distance history, and every
// probability table. A Decoder is reused across LZMA2 chunks that don't
// request a state reset.
type Decoder struct {
	props Props

	state coderState
	reps  [4]int32

	probs           *probTables
	literals        *literalCoder
	matchLenDecoder *lengthCoder
	repLenDecoder   *lengthCoder
}

// NewDecoder allocates a Decoder for the given properties. Every table
// is sized once here, per the "allocate at construction" choice recorded
// in DESIGN.md.
func NewDecoder(props Props) *Decoder {
	return &Decoder{
		props:           props,
		probs:           newProbTables(),
		literals:        newLiteralCoder(props.LC, props.LP),
		matchLenDecoder: newLengthCoder(),
		repLenDecoder:   newLengthCoder(),
	}
}

// Reset reinitializes the coder state, reps, and every probability table
// to their construction-time values without reallocating.
func (d *Decoder) Reset() {
	d.state = 0
	d.reps = [4]int32{}
	d.probs.reset()
	d.literals.reset()
	d.matchLenDecoder.reset()
	d.repLenDecoder.reset()
}

// EndMarkerDetected reports whether the most recently decoded match
// distance was the LZMA end-of-stream sentinel (reps[0] == -1).
func (d *Decoder) EndMarkerDetected() bool {
	return d.reps[0] == -1
}

// Decode replays any pending match-copy truncated by a previous call,
// then decodes literal/match/rep-match events into w until w.HasSpace()
// is false. It returns an error from the range decoder's byte source, or
// from w.Repeat when a decoded distance is not covered by the window's
// history (a malformed stream, or the end-marker sentinel).
func (d *Decoder) Decode(w *window.Window, rc rangeSource) error {
	if err := w.RepeatPending(); err != nil {
		return err
	}

	posMask := (1 << uint(d.props.PB)) - 1
	for w.HasSpace() {
		posState := w.Pos() & posMask

		bit, err := rc.DecodeBit(&d.probs.isMatch[d.state][posState])
		if err != nil {
			return err
		}
		if bit == 0 {
			if err := d.decodeLiteral(w, rc); err != nil {
				return err
			}
			continue
		}

		bit, err = rc.DecodeBit(&d.probs.isRep[d.state])
		if err != nil {
			return err
		}
		var length int
		if bit == 0 {
			length, err = d.decodeMatch(rc, posState)
		} else {
			length, err = d.decodeRepMatch(rc, posState)
		}
		if err != nil {
			return err
		}
		if err := w.Repeat(uint32(d.reps[0]), length); err != nil {
			return err
		}
	}
	return rc.Normalize()
}

func (d *Decoder) decodeLiteral(w *window.Window, rc rangeSource) error {
	prevByte := w.GetByte(0)
	idx := d.literals.subDecoderIndex(prevByte, w.Pos())
	probs := &d.literals.probs[idx]

	var b byte
	var err error
	if d.state.IsLiteral() {
		b, err = decodePlain(rc, probs)
	} else {
		matchByte := w.GetByte(uint32(d.reps[0]))
		b, err = decodeMatched(rc, probs, matchByte)
	}
	if err != nil {
		return err
	}

	w.PutByte(b)
	d.state.UpdateLiteral()
	return nil
}

func (d *Decoder) decodeMatch(rc rangeSource, posState int) (int, error) {
	d.state.UpdateMatch()
	d.reps[3] = d.reps[2]
	d.reps[2] = d.reps[1]
	d.reps[1] = d.reps[0]

	length, err := d.matchLenDecoder.decode(rc, posState)
	if err != nil {
		return 0, err
	}

	distState := length - matchLenMin
	if distState > numLenToPosStates-1 {
		distState = numLenToPosStates - 1
	}

	distSlot, err := rc.DecodeBitTree(d.probs.distSlots[distState][:])
	if err != nil {
		return 0, err
	}

	dist, err := d.decodeDistance(rc, distSlot)
	if err != nil {
		return 0, err
	}
	d.reps[0] = int32(dist)

	return length, nil
}

func (d *Decoder) decodeDistance(rc rangeSource, distSlot uint32) (uint32, error) {
	if distSlot < distModelStart {
		return distSlot, nil
	}

	limit := (distSlot >> 1) - 1
	dist := (2 | (distSlot & 1)) << limit

	if distSlot < distModelEnd {
		idx := int(distSlot) - distModelStart
		probs := d.probs.distSpecial[distSpecialIndex[idx]:distSpecialEnd[idx]]
		bits, err := rc.DecodeReverseBitTree(probs)
		if err != nil {
			return 0, err
		}
		return dist | bits, nil
	}

	direct, err := rc.DecodeDirectBits(limit - alignBits)
	if err != nil {
		return 0, err
	}
	dist |= direct << alignBits

	align, err := rc.DecodeReverseBitTree(d.probs.distAlign[:])
	if err != nil {
		return 0, err
	}
	return dist | align, nil
}

func (d *Decoder) decodeRepMatch(rc rangeSource, posState int) (int, error) {
	bit, err := rc.DecodeBit(&d.probs.isRep0[d.state])
	if err != nil {
		return 0, err
	}
	if bit == 0 {
		bit, err := rc.DecodeBit(&d.probs.isRep0Long[d.state][posState])
		if err != nil {
			return 0, err
		}
		if bit == 0 {
			d.state.UpdateShortRep()
			return 1, nil
		}
	} else {
		var tmp int32
		bit, err := rc.DecodeBit(&d.probs.isRep1[d.state])
		if err != nil {
			return 0, err
		}
		if bit == 0 {
			tmp = d.reps[1]
		} else {
			bit, err := rc.DecodeBit(&d.probs.isRep2[d.state])
			if err != nil {
				return 0, err
			}
			if bit == 0 {
				tmp = d.reps[2]
			} else {
				tmp = d.reps[3]
				d.reps[3] = d.reps[2]
			}
			d.reps[2] = d.reps[1]
		}
		d.reps[1] = d.reps[0]
		d.reps[0] = tmp
	}

	d.state.UpdateLongRep()
	return d.repLenDecoder.decode(rc, posState)
}
