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
	"strconv"
	"strings"

	"github.com/andersbrix/corvid/internal/util"
)

// Value is a centipawn evaluation or search score, side-to-move relative.
type Value int16

// Value constants. ValueCheckMate and ValueCheckMateThreshold bound the
// range reserved for mate scores: a search returning a value whose absolute
// magnitude falls between the threshold and ValueCheckMate is reporting
// "mate in N", where N is recovered from how far below the maximum the
// value sits (see String below).
const (
	ValueZero               Value = 0
	ValueDraw               Value = 0
	ValueInf                Value = 15_000
	ValueNA                 Value = -ValueInf - 1
	ValueMax                Value = 10_000
	ValueMin                Value = -ValueMax
	ValueCheckMate          Value = ValueMax
	ValueCheckMateThreshold Value = ValueCheckMate - Value(MaxDepth) - 1
)

// IsValid reports whether v is within the legal [ValueMin, ValueMax] range.
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

// IsCheckMateValue reports whether v encodes a mate score rather than a
// plain centipawn evaluation.
func (v Value) IsCheckMateValue() bool {
	return util.Abs(int(v)) > int(ValueCheckMateThreshold) && util.Abs(int(v)) <= int(ValueCheckMate)
}

// String renders the value the way UCI "info score" expects: "cp N" for a
// centipawn score or "mate N" (possibly negative) for a forced mate.
func (v Value) String() string {
	var sb strings.Builder
	switch {
	case v.IsCheckMateValue():
		sb.WriteString("mate ")
		if v < ValueZero {
			sb.WriteString("-")
		}
		pliesToMate := int(ValueCheckMate) - util.Abs(int(v))
		movesToMate := (pliesToMate + 1) / 2
		sb.WriteString(strconv.Itoa(movesToMate))
	case v == ValueNA:
		sb.WriteString("N/A")
	default:
		sb.WriteString("cp ")
		sb.WriteString(strconv.Itoa(int(v)))
	}
	return sb.String()
}
