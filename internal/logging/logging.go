// corechess - a Go chess engine core (move generation, search, evaluation)
//
// MIT License
//
// Copyright (c) 2024 corechess contributors
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

// Package logging wires every other package to one process-wide
// github.com/op/go-logging backend, so UCI stdout stays uncluttered by
// default (engine logs go to stderr) while still letting a caller bump the
// level to DEBUG for diagnosing search or move-generation issues.
package logging

import (
	"os"
	"sync"

	logging "github.com/op/go-logging"
)

var (
	once    sync.Once
	leveled logging.LeveledBackend
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}: %{message}`,
)

func configure() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled = logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
}

// MustGetLogger returns the named logger, configuring the shared backend
// on first use.
func MustGetLogger(name string) *logging.Logger {
	once.Do(configure)
	return logging.MustGetLogger(name)
}

// SetLevel adjusts the verbosity of every logger sharing the process-wide
// backend; module is "" for all modules, or a specific logger name.
func SetLevel(level logging.Level, module string) {
	once.Do(configure)
	leveled.SetLevel(level, module)
}
