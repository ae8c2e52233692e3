/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
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
 *
 *
 */

package config

import "fmt"

// Options is the validated configuration gdbwire-tap runs with.
type Options struct {
	// GDBPath is the GDB executable to spawn, or "-" to read an MI
	// transcript from stdin instead of launching a subprocess.
	GDBPath string `mapstructure:"gdb-path"`
	// WorkDir is the working directory for the spawned GDB process.
	WorkDir string `mapstructure:"work-dir"`
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `mapstructure:"log-level"`
	// LogToStderr mirrors the core engine's GDBWIRE_DEBUG_TO_STDERR knob:
	// when true, parse warnings/errors are also emitted on stderr.
	LogToStderr bool `mapstructure:"log-to-stderr"`
}

// Default returns the zero-configuration Options: read a transcript from
// stdin, current directory, info level, no forced stderr diagnostics.
func Default() Options {
	return Options{
		GDBPath:  "-",
		WorkDir:  ".",
		LogLevel: "info",
	}
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate rejects an Options value with an unrecognized log level or an
// empty GDB path/work directory.
func (o Options) Validate() error {
	if o.GDBPath == "" {
		return fmt.Errorf("config: gdb-path must not be empty")
	}
	if o.WorkDir == "" {
		return fmt.Errorf("config: work-dir must not be empty")
	}
	if !validLevels[o.LogLevel] {
		return fmt.Errorf("config: log-level %q is not one of debug, info, warn, error", o.LogLevel)
	}
	return nil
}
