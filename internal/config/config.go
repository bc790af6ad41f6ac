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

// Package config holds globally available configuration variables which are
// either set by defaults, read from a config file or overridden by UCI
// setoption commands.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/andersbrix/corvid/internal/util"
)

// globally available config values.
var (
	// ConfFile holds the path to the used config file (relative to the
	// engine executable unless absolute).
	ConfFile = "./config.toml"

	// LogLevel defines the general log level - can be overwritten by cmd
	// line options, the config file, or left at its default.
	LogLevel = 5

	// SearchLogLevel defines the log level of the dedicated search trace
	// log, kept separate so search tracing can be noisier (or quieter)
	// than the rest of the engine.
	SearchLogLevel = 5

	// Settings is the global configuration, read in from file and then
	// selectively overridden by UCI options.
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

type logConfiguration struct {
	Level int
	File  string
}

func init() {
	Settings.Log.Level = LogLevel
	Settings.Log.File = ""
}

// Setup reads the configuration file and applies its values, falling back to
// the compiled-in defaults set by each sub-configuration's init() whenever a
// key is absent or the file cannot be found.
func Setup() {
	if initialized {
		return
	}
	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("config file not found, using defaults (", err, ")")
	}
	setupLogLvl()
	setupSearch()
	setupEval()
	initialized = true
}

func setupLogLvl() {
	if Settings.Log.Level != 0 {
		LogLevel = Settings.Log.Level
	} else {
		Settings.Log.Level = LogLevel
	}
}

// String prints out the current configuration settings and values using
// reflection over the Search and Eval sub-configurations.
func (settings *conf) String() string {
	var c strings.Builder
	c.WriteString("Search Config:\n")
	s := reflect.ValueOf(&settings.Search).Elem()
	typeOfT := s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		c.WriteString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, typeOfT.Field(i).Name, f.Type(), f.Interface()))
	}
	c.WriteString("\nEvaluation Config:\n")
	s = reflect.ValueOf(&settings.Eval).Elem()
	typeOfT = s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		c.WriteString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, typeOfT.Field(i).Name, f.Type(), f.Interface()))
	}
	return c.String()
}
