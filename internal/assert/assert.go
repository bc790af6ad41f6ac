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

// Package assert provides a cheap, build-time-togglable invariant check.
// Assertions are compiled into every build but only panic when DEBUG is
// true, so release builds pay only the cost of a boolean test at each call
// site instead of an `if DEBUG { ... }` guard duplicated everywhere.
package assert

import "fmt"

// DEBUG toggles whether Assert panics on a failed condition. Left false for
// release builds; flip to true (e.g. via a -tags build or by editing this
// file in a development checkout) to turn every assertion into a hard
// failure while debugging the generator or make/unmake.
var DEBUG = false

// Assert panics with a formatted message if cond is false and DEBUG is
// enabled. It is a no-op otherwise.
func Assert(cond bool, format string, args ...interface{}) {
	if DEBUG && !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
