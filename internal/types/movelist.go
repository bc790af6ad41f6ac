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
	"strings"
)

// MoveList is a growable slice of moves, used throughout move generation
// and search as the basic move container.
type MoveList []Move

// NewMoveList creates a MoveList with the given capacity and 0 elements.
func NewMoveList(cap int) MoveList {
	return make(MoveList, 0, cap)
}

// PushBack appends a move at the end of the list.
func (ml *MoveList) PushBack(m Move) {
	*ml = append(*ml, m)
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return len(*ml)
}

// At returns the move at index i without removing it.
func (ml *MoveList) At(i int) Move {
	return (*ml)[i]
}

// Set overwrites the move at index i.
func (ml *MoveList) Set(i int, m Move) {
	(*ml)[i] = m
}

// Front returns the first move in the list. Panics if the list is empty.
func (ml *MoveList) Front() Move {
	if len(*ml) == 0 {
		panic("MoveList: Front() called when empty")
	}
	return (*ml)[0]
}

// Back returns the last move in the list. Panics if the list is empty.
func (ml *MoveList) Back() Move {
	if len(*ml) == 0 {
		panic("MoveList: Back() called when empty")
	}
	return (*ml)[len(*ml)-1]
}

// Data exposes the underlying slice for range loops. Use with care: the
// returned slice aliases the list's backing array.
func (ml *MoveList) Data() []Move {
	return *ml
}

// Clear empties the list while retaining its capacity, useful when the
// same list is reused at high frequency during search.
func (ml *MoveList) Clear() {
	*ml = (*ml)[:0]
}

// Contains reports whether m appears anywhere in the list.
func (ml *MoveList) Contains(m Move) bool {
	for _, x := range *ml {
		if x == m {
			return true
		}
	}
	return false
}

// SortByScore orders the list from highest to lowest score using the
// caller-supplied score slice (index-aligned with the list) and an
// insertion sort, since move lists are small and usually already close to
// sorted after the previous iteration's ordering.
func (ml *MoveList) SortByScore(score []int32) {
	l := len(*ml)
	for i := 1; i < l; i++ {
		tmpMove, tmpScore := (*ml)[i], score[i]
		j := i
		for j > 0 && tmpScore > score[j-1] {
			(*ml)[j] = (*ml)[j-1]
			score[j] = score[j-1]
			j--
		}
		(*ml)[j] = tmpMove
		score[j] = tmpScore
	}
}

// String returns a human readable representation of the move list.
func (ml *MoveList) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("MoveList: [%d] { ", len(*ml)))
	for i, m := range *ml {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(m.String())
	}
	sb.WriteString(" }")
	return sb.String()
}

// StringUci returns a space separated list of the moves in UCI notation.
func (ml *MoveList) StringUci() string {
	var sb strings.Builder
	for i, m := range *ml {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(m.StringUci())
	}
	return sb.String()
}
