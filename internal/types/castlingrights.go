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

import "strings"

// CastlingRights packs the four castling availability bits (white/black x
// kingside/queenside) into a single byte.
type CastlingRights uint8

// Constants for castling rights; any subset of the four bits is a valid
// value, hence CastlingLength = 16.
const (
	CastlingNone CastlingRights = 0 // 0000

	CastlingWhiteOO  CastlingRights = 1                                  // 0001
	CastlingWhiteOOO CastlingRights = CastlingWhiteOO << 1               // 0010
	CastlingWhite    CastlingRights = CastlingWhiteOO | CastlingWhiteOOO // 0011

	CastlingBlackOO  CastlingRights = CastlingWhiteOO << 2               // 0100
	CastlingBlackOOO CastlingRights = CastlingBlackOO << 1               // 1000
	CastlingBlack    CastlingRights = CastlingBlackOO | CastlingBlackOOO // 1100

	CastlingAny    CastlingRights = CastlingWhite | CastlingBlack // 1111
	CastlingLength CastlingRights = 16
)

// Has reports whether any bit set in rhs is also set in the receiver.
func (lhs CastlingRights) Has(rhs CastlingRights) bool {
	return lhs&rhs > 0
}

// Remove clears the given right(s) and returns the new value.
func (lhs *CastlingRights) Remove(rhs CastlingRights) CastlingRights {
	*lhs = *lhs &^ rhs
	return *lhs
}

// Add sets the given right(s) and returns the new value.
func (lhs *CastlingRights) Add(rhs CastlingRights) CastlingRights {
	*lhs = *lhs | rhs
	return *lhs
}

// String renders the UCI/FEN castling field, e.g. "KQkq" or "-".
func (lhs CastlingRights) String() string {
	if lhs == CastlingNone {
		return "-"
	}
	var sb strings.Builder
	if lhs.Has(CastlingWhiteOO) {
		sb.WriteString("K")
	}
	if lhs.Has(CastlingWhiteOOO) {
		sb.WriteString("Q")
	}
	if lhs.Has(CastlingBlackOO) {
		sb.WriteString("k")
	}
	if lhs.Has(CastlingBlackOOO) {
		sb.WriteString("q")
	}
	return sb.String()
}
