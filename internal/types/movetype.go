//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
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

// MoveType is the 2-bit move kind encoded into a Move: a plain move,
// a promotion, an en passant capture or a castle.
type MoveType int8

const (
	Normal    MoveType = 0
	Promotion MoveType = 1
	EnPassant MoveType = 2
	Castling  MoveType = 3
	MtLength  int      = 4
)

var moveTypeToString = [MtLength]string{"n", "p", "e", "c"}

// String returns a one letter label for the move type.
func (mt MoveType) String() string {
	return moveTypeToString[mt]
}

// IsValid checks if mt is one of the four defined move types.
func (mt MoveType) IsValid() bool {
	return mt >= Normal && mt <= Castling
}
