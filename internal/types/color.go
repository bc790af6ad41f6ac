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

import "fmt"

// Color represents the side to move or the owner of a piece.
type Color uint8

// Constants for each color.
const (
	White Color = 0
	Black Color = 1
)

// direction factor per color, used to orient pawn pushes and piece-square
// table lookups without branching.
var colorDir = [2]int{1, -1}

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid checks that c is White or Black.
func (c Color) IsValid() bool {
	return c < 2
}

// String returns "w" or "b".
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		panic(fmt.Sprintf("invalid color %d", c))
	}
}

// Direction returns +1 for White and -1 for Black, the rank direction a
// pawn of that color advances in.
func (c Color) Direction() int {
	return colorDir[c]
}

// ColorLength is the number of colors, used to size [ColorLength]-indexed
// arrays.
const ColorLength int = 2

var pawnDir = [2]Direction{North, South}

// MoveDirection returns the compass Direction a pawn of this color pushes
// towards: North for White, South for Black.
func (c Color) MoveDirection() Direction {
	return pawnDir[c]
}

var promRankBb = [2]Bitboard{Rank8_Bb, Rank1_Bb}

// PromotionRankBb returns the bitboard of the rank on which a pawn of this
// color promotes.
func (c Color) PromotionRankBb() Bitboard {
	return promRankBb[c]
}

var pawnDoubleRankBb = [2]Bitboard{Rank3_Bb, Rank6_Bb}

// PawnDoubleRank returns the bitboard of the rank a pawn of this color
// passes through when making a two-square push.
func (c Color) PawnDoubleRank() Bitboard {
	return pawnDoubleRankBb[c]
}
