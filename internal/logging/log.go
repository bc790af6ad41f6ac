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

// Package logging is a thin helper around "github.com/op/go-logging" that
// reduces every call site to a single GetLog()/GetUciLog() line instead of
// repeating backend/formatter wiring throughout the engine.
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"

	"github.com/andersbrix/corvid/internal/config"
)

var (
	standardLog *logging.Logger
	uciLog      *logging.Logger
	uciLogFile  *os.File

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)

	uciFormat = logging.MustStringFormatter(`%{time:15:04:05.000} UCI %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("corvid")
	uciLog = logging.MustGetLogger("uci")
}

// GetLog returns the engine's standard logger, preconfigured with an
// os.Stdout backend at the currently configured log level.
func GetLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.LogLevel), "")
	standardLog.SetBackend(leveled)
	return standardLog
}

// GetUciLog returns a logger dedicated to UCI protocol command tracing. It
// always writes to stdout and, when config.Settings.Log.File names a file,
// also appends to that file so a GUI's command/response trace survives
// across sessions. No UCI option sets this path.
func GetUciLog() *logging.Logger {
	backend1 := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, uciFormat)
	uciBackend1 := logging.AddModuleLevel(backend1Formatter)
	uciBackend1.SetLevel(logging.DEBUG, "")

	path := config.Settings.Log.File
	if path == "" {
		uciLog.SetBackend(uciBackend1)
		return uciLog
	}

	var err error
	uciLogFile, err = os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Println("uci log file could not be opened:", err)
		uciLog.SetBackend(uciBackend1)
		return uciLog
	}
	backend2 := logging.NewLogBackend(uciLogFile, "", log.Lmsgprefix)
	backend2Formatter := logging.NewBackendFormatter(backend2, uciFormat)
	uciBackend2 := logging.AddModuleLevel(backend2Formatter)
	uciBackend2.SetLevel(logging.DEBUG, "")
	multi := logging.SetBackend(uciBackend1, uciBackend2)
	uciLog.SetBackend(multi)
	return uciLog
}

// CloseUciLog closes the UCI log file, if one was opened. The engine itself
// does not call it; an opened file stays open until the process exits.
func CloseUciLog() {
	if uciLogFile != nil {
		_ = uciLogFile.Close()
		uciLogFile = nil
	}
}
