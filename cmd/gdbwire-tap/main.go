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

// Command gdbwire-tap is a minimal, scriptable front end for the mi
// engine: it reads MI transcript lines from stdin (or, with --gdb-path, from a
// spawned GDB subprocess's stdout) and prints every dispatched record as
// one JSON object per line, colorized on a TTY. It replaces none of a
// real curses-based debugger UI — it exists so the engine has a runnable
// entry point outside its test suite.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	libcfg "github.com/nabbar/gdbwire/config"
	"github.com/nabbar/gdbwire/logging"
	"github.com/nabbar/gdbwire/mi"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gdbwire-tap",
		Short: "Stream GDB/MI records as JSON",
		Long:  "gdbwire-tap feeds a GDB/MI byte stream through the mi engine and prints every dispatched record as JSON, one per line.",
	}

	loader, err := libcfg.NewLoader(cmd)
	if err != nil {
		// RegisterFlag-equivalent wiring only fails on a programmer error
		// (binding a flag that was never registered); there is nothing a
		// user can do about it.
		panic(err)
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		opt, err := loader.Load(cmd)
		if err != nil {
			return err
		}
		return run(cmd, opt, loader)
	}

	return cmd
}

func run(cmd *cobra.Command, opt libcfg.Options, loader *libcfg.Loader) error {
	sink, logger := buildSink(opt)
	if logger != nil {
		loader.WatchLogLevel(func(o libcfg.Options) {
			logger.SetLevel(parseLevel(o.LogLevel))
		})
	}

	var src io.ReadCloser
	if opt.GDBPath == "-" {
		src = io.NopCloser(os.Stdin)
	} else {
		proc := exec.Command(opt.GDBPath, "--interpreter=mi2")
		proc.Dir = opt.WorkDir
		proc.Stderr = os.Stderr
		stdout, err := proc.StdoutPipe()
		if err != nil {
			return fmt.Errorf("gdbwire-tap: pipe gdb stdout: %w", err)
		}
		if err := proc.Start(); err != nil {
			return fmt.Errorf("gdbwire-tap: start gdb: %w", err)
		}
		src = stdout
		defer func() { _ = proc.Wait() }()
	}
	defer src.Close()

	enc := json.NewEncoder(cmd.OutOrStdout())
	driver := mi.NewDriver(mi.Callbacks{
		OnPrompt: func(line []byte) {
			printRecord(enc, "prompt", map[string]interface{}{"line": string(line)})
		},
		OnStream: func(rec *mi.StreamRecord) {
			printRecord(enc, "stream", map[string]interface{}{
				"kind": rec.Kind.String(),
				"text": colorizeStream(rec.Kind, rec.Text),
			})
		},
		OnAsync: func(rec *mi.AsyncRecord) {
			printRecord(enc, "async", map[string]interface{}{
				"kind":  rec.Kind.String(),
				"class": rec.ClassLiteral,
				"token": rec.Token,
			})
		},
		OnResult: func(rec *mi.ResultRecord) {
			printRecord(enc, "result", map[string]interface{}{
				"class": rec.Class.String(),
				"token": rec.Token,
			})
		},
		OnParseError: func(line []byte, token string, start, end int) {
			printRecord(enc, "error", map[string]interface{}{
				"token": token,
				"start": start,
				"end":   end,
			})
		},
	}, mi.WithLogSink(sink))
	defer driver.Close()

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := driver.PushString(scanner.Text() + "\n"); err != nil {
			sink.Errorf("gdbwire-tap: push: %v", err)
		}
	}
	return scanner.Err()
}

func printRecord(enc *json.Encoder, label string, fields map[string]interface{}) {
	fields["kind"] = colorizeLabel(label)
	_ = enc.Encode(fields)
}

func buildSink(opt libcfg.Options) (logging.Sink, *logrus.Logger) {
	if !opt.LogToStderr {
		return logging.Noop(), nil
	}

	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(parseLevel(opt.LogLevel))
	return logging.New(l), l
}

func parseLevel(level string) logrus.Level {
	switch level {
	case "debug":
		return logrus.DebugLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
