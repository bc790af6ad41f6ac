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

package util

import (
	"os"
	"path/filepath"
)

// ResolveFile cleans the given path and, when it is not already absolute,
// resolves it relative to the running executable's directory. This allows
// config/log file paths on the command line to be given relative to the
// engine binary rather than the caller's working directory (useful for GUIs
// that launch the engine with an arbitrary cwd).
func ResolveFile(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	exe, err := os.Executable()
	if err != nil {
		return filepath.Clean(path), err
	}
	return filepath.Clean(filepath.Join(filepath.Dir(exe), path)), nil
}

// ResolveCreateFolder resolves the given folder the same way ResolveFile
// resolves a file and creates it (and any missing parents) if it does not
// exist yet.
func ResolveCreateFolder(path string) (string, error) {
	resolved, err := ResolveFile(path)
	if err != nil {
		return resolved, err
	}
	if err := os.MkdirAll(resolved, 0755); err != nil {
		return resolved, err
	}
	return resolved, nil
}
