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

// Package types contains the board representation primitives shared by every
// other package in the engine: squares, files, ranks, pieces, colors,
// bitboards, magic attack tables and the 16 bit move encoding. Nothing in
// this package depends on Position or the move generator, so it can be
// initialized exactly once before any concurrency begins.
package types

import (
	"github.com/andersbrix/corvid/internal/logging"
)

var log = logging.GetLog()

var initialized = false

// init precomputes the bitboard attack tables and piece-square tables used
// throughout the engine. It runs once per process, guarded by initialized,
// since package level init() can otherwise run multiple times in tests that
// import this package from several packages.
func init() {
	if initialized {
		return
	}
	log.Debug("initializing board representation tables")
	initBb()
	initPosValues()
	initialized = true
}

const (
	// SqLength is the number of squares on a board.
	SqLength int = 64

	// MaxDepth is the maximum search depth the engine will iterate to.
	MaxDepth = 128

	// MaxMoves is the upper bound on legal moves in any reachable position,
	// generously above the theoretical maximum of 218.
	MaxMoves = 256

	// KB is 1024 bytes.
	KB uint64 = 1024
	// MB is KB*KB bytes.
	MB uint64 = KB * KB
	// GB is KB*MB bytes.
	GB uint64 = KB * MB

	// GamePhaseMax is the maximum game phase value, reached with all officers
	// still on the board. Used to interpolate between midgame and endgame
	// piece-square tables.
	GamePhaseMax = 24
)
