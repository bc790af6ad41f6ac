//
// Corvid - a UCI chess engine written in Go
//
// MIT License
//
// Copyright (c) 2020-2024 Anders Brix
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package types

import (
	"fmt"

	"github.com/andersbrix/corvid/internal/assert"
)

// Square is a board square index 0..63 (SqA1..SqH8), plus the sentinel
// SqNone. Square 0 is a1; squares increase across a rank then up a file,
// matching the little-endian rank-file mapping the magic bitboard tables
// are generated against.
type Square uint8

// Square constants, a1 through h8, plus SqNone.
const (
	SqA1   Square = iota // 0
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8   // 63
	SqNone // 64
)

// IsValid reports whether sq is one of the 64 real board squares.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of the square.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of the square.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// MakeSquare parses a two character algebraic square string ("e4") and
// returns SqNone if it does not name a valid square.
func MakeSquare(s string) Square {
	if assert.DEBUG {
		assert.Assert(len(s) == 2, "square string is not 2 characters long")
	}
	if len(s) != 2 {
		return SqNone
	}
	file := File(s[0] - 'a')
	rank := Rank(s[1] - '1')
	if !file.IsValid() || !rank.IsValid() {
		return SqNone
	}
	return SquareOf(file, rank)
}

// String returns the algebraic notation for the square ("e4"), or "-" for
// SqNone.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// SquareOf combines a file and rank into a square, or SqNone if either is
// invalid.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square((int(r) << 3) + int(f))
}

// To returns the square one step away from sq in direction d, or SqNone if
// that step would leave the board (including wrapping around a file edge).
func (sq Square) To(d Direction) Square {
	switch d {
	case North, South:
		sq += Square(d)
	case East, Northeast, Southeast:
		if sq.FileOf() < FileH {
			sq += Square(d)
		} else {
			return SqNone
		}
	case West, Southwest, Northwest:
		if sq.FileOf() > FileA {
			sq += Square(d)
		} else {
			return SqNone
		}
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
	if sq > SqH8 {
		return SqNone
	}
	return sq
}
