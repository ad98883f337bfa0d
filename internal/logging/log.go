/*
 * Corvid - UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2026 Corvid contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package logging is a helper for "github.com/op/go-logging" that
// reduces each call site to a single line: log = logging.GetLog("position").
//
// Every logger writes to stderr, never stdout - stdout is reserved for
// the UCI protocol stream, and diagnostic logging must never be
// interleaved with it.
package logging

import (
	"os"

	golog "github.com/op/go-logging"
)

var format = golog.MustStringFormatter(
	`%{time:15:04:05.000} %{shortpkg:-12.12s} %{level:-7.7s}: %{message}`,
)

var level = golog.INFO

// backends holds the leveled backend of each module GetLog has set up,
// so SetLevel can re-apply a new level to loggers that already exist.
var backends = map[string]golog.LeveledBackend{}

// SetLevel changes the level every logger returned by GetLog, earlier or
// later, is filtered at. Intended to be called once from config.Setup.
func SetLevel(l int) {
	level = golog.Level(l)
	for module, b := range backends {
		b.SetLevel(level, module)
	}
}

// GetLog returns a logger for the named module, preconfigured with a
// stderr backend and the standard time/level/message format.
func GetLog(module string) *golog.Logger {
	log := golog.MustGetLogger(module)
	backend := golog.NewLogBackend(os.Stderr, "", 0)
	formatted := golog.NewBackendFormatter(backend, format)
	leveled := golog.AddModuleLevel(formatted)
	leveled.SetLevel(level, module)
	backends[module] = leveled
	log.SetBackend(leveled)
	return log
}
