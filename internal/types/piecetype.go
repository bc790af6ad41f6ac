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

// PieceType is a set of constants for the six chess piece types, independent
// of color.
type PieceType int8

// Constants for piece type. PtNone is the zero value so a zeroed PieceType
// field reads as "no piece" rather than "pawn".
const (
	PtNone   PieceType = 0
	King     PieceType = 1
	Pawn     PieceType = 2
	Knight   PieceType = 3
	Bishop   PieceType = 4
	Rook     PieceType = 5
	Queen    PieceType = 6
	PtLength PieceType = 7
)

var pieceTypeToString = [PtLength]string{"NoPiece", "King", "Pawn", "Knight", "Bishop", "Rook", "Queen"}
var pieceTypeToChar = string("-KPNBRQ")

// String returns a human readable piece type name.
func (pt PieceType) String() string {
	return pieceTypeToString[pt]
}

// Char returns the single-letter algebraic notation for the piece type.
func (pt PieceType) Char() string {
	return string(pieceTypeToChar[pt])
}

// gamePhaseValue weights each piece type's contribution to the game phase
// counter used to interpolate midgame/endgame evaluation.
var gamePhaseValue = [PtLength]int{0, 0, 0, 1, 1, 2, 4}

// GamePhaseValue returns this piece type's weight for the game phase
// counter.
func (pt PieceType) GamePhaseValue() int {
	return gamePhaseValue[pt]
}

// pieceTypeValue holds the material value in centipawns, per spec.md §4.9:
// P=100, N=320, B=330, R=500, Q=900, K=20000.
var pieceTypeValue = [PtLength]int{0, 20000, 100, 320, 330, 500, 900}

// ValueOf returns the material value of this piece type in centipawns.
func (pt PieceType) ValueOf() Value {
	return Value(pieceTypeValue[pt])
}

// IsValid checks that pt names one of the six real piece types.
func (pt PieceType) IsValid() bool {
	return pt > PtNone && pt < PtLength
}
