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

// Command corvid is a UCI chess engine. It reads commands from stdin and
// writes "id"/"uciok"/"info"/"bestmove" to stdout, per the UCI protocol.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/pkg/profile"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/uci"
)

const version = "1.0.0"

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.Int("loglvl", -1, "standard log level, 0=CRITICAL .. 5=DEBUG\n(overrides config file and defaults when set)")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile to ./cpu.pprof for the duration of the run")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	// must be set before config.Setup(), otherwise the default path is used.
	config.ConfFile = *configFile
	config.Setup()

	if *logLvl >= 0 {
		config.Settings.Log.Level = *logLvl
		logging.SetLevel(*logLvl)
	}

	// resetting the standard logger is required: most packages hold a
	// package-level logger created at init() time, before config.Setup()
	// has had a chance to run, so their level must be re-applied here.
	logging.SetLevel(config.Settings.Log.Level)

	h := uci.NewHandler(os.Stdin, os.Stdout)
	h.Run()
}

func printVersionInfo() {
	fmt.Printf("Corvid %s\n", version)
	fmt.Println("Environment:")
	fmt.Printf("  Using GO version %s\n", runtime.Version())
	fmt.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	fmt.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	fmt.Printf("  Working directory: %s\n", cwd)
}
