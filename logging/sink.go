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

package logging

import (
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
)

// Sink is the diagnostic surface a Driver logs warnings and assertion
// failures through. A Sink is safe to share across Driver instances; it
// carries no per-call state of its own.
type Sink interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// noop discards every entry. It is the default Sink for a Driver that was
// not given one explicitly, and the Sink NewFromEnv returns when
// GDBWIRE_DEBUG_TO_STDERR is unset.
type noop struct{}

func (noop) Debugf(string, ...interface{}) {}
func (noop) Warnf(string, ...interface{})  {}
func (noop) Errorf(string, ...interface{}) {}

// Noop returns the shared no-op Sink.
func Noop() Sink {
	return noop{}
}

type logrusSink struct {
	log *logrus.Logger
}

func (s *logrusSink) entry() *logrus.Entry {
	file, line := callerFileLine()
	return s.log.WithField(fieldFile, file).WithField(fieldLine, line)
}

func (s *logrusSink) Debugf(format string, args ...interface{}) {
	s.entry().Debugf(format, args...)
}

func (s *logrusSink) Warnf(format string, args ...interface{}) {
	s.entry().Warnf(format, args...)
}

func (s *logrusSink) Errorf(format string, args ...interface{}) {
	s.entry().Errorf(format, args...)
}

const (
	fieldFile = "file"
	fieldLine = "line"
)

// callerFileLine walks one frame above the Sink method that invoked it, so
// the emitted FILE:LINE names the caller inside the mi/milex/miparse
// packages rather than a line inside this package.
func callerFileLine() (string, int) {
	_, file, line, ok := runtime.Caller(3)
	if !ok {
		return "?", 0
	}
	return file, line
}

// New wraps an already configured *logrus.Logger as a Sink, formatted with
// Formatter so entries read "[LEVEL] FILE:LINE message".
func New(log *logrus.Logger) Sink {
	log.SetFormatter(&Formatter{})
	return &logrusSink{log: log}
}

// NewFromEnv samples GDBWIRE_DEBUG_TO_STDERR once and returns a Sink
// writing to stderr if the variable is set to any value, or the shared
// Noop Sink otherwise. The variable is not re-sampled afterward: a Driver
// created from the returned Sink keeps logging (or not) for its entire
// lifetime regardless of later changes to the environment.
func NewFromEnv() Sink {
	if _, set := os.LookupEnv("GDBWIRE_DEBUG_TO_STDERR"); !set {
		return Noop()
	}

	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.DebugLevel)
	return New(l)
}
