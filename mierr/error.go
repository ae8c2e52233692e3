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

package mierr

import "fmt"

// Code is one of the four outcomes a public operation of this module may
// return. The set is closed: no caller may register a new code.
type Code uint8

const (
	// OK means success.
	OK Code = iota
	// Assert means a shape precondition failed: unexpected tree structure,
	// missing mandatory field, wrong kind. Recoverable by the caller.
	Assert
	// Logic means a value was parsed but is out of domain, e.g. line="abc".
	Logic
	// NoMem means an allocation failed.
	NoMem
)

// String returns the lowercase name of the code, matching the vocabulary
// used throughout spec-facing documentation and tests.
func (c Code) String() string {
	switch c {
	case OK:
		return "ok"
	case Assert:
		return "assert"
	case Logic:
		return "logic"
	case NoMem:
		return "nomem"
	default:
		return "unknown"
	}
}

// Error is the interface every public operation returns in place of a bare
// error. It behaves like a standard error but additionally exposes its
// Code and an optional parent for chaining via errors.Is/errors.As.
type Error interface {
	error
	Code() Code
	Unwrap() error
}

type wireErr struct {
	code   Code
	msg    string
	parent error
}

func (e *wireErr) Error() string {
	if e.parent != nil {
		return fmt.Sprintf("%s: %s: %s", e.code, e.msg, e.parent.Error())
	}
	return fmt.Sprintf("%s: %s", e.code, e.msg)
}

func (e *wireErr) Code() Code {
	return e.code
}

func (e *wireErr) Unwrap() error {
	return e.parent
}

// New builds an Error carrying the given code, message and optional parent.
// A nil message is not allowed by the wire contract; callers should always
// supply a short, human readable diagnostic.
func New(code Code, msg string, parent ...error) Error {
	var p error
	if len(parent) > 0 {
		p = parent[0]
	}
	return &wireErr{code: code, msg: msg, parent: p}
}

// Newf is New with fmt.Sprintf-style formatting of msg.
func Newf(code Code, format string, args ...interface{}) Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Assertf returns an Assert-coded Error, the common case for shape
// mismatches encountered while walking a generic Result tree.
func Assertf(format string, args ...interface{}) Error {
	return Newf(Assert, format, args...)
}

// Logicf returns a Logic-coded Error, the common case for well-shaped but
// out-of-domain field values (a non-numeric "line", an unrecognized
// "macro-info" literal, ...).
func Logicf(format string, args ...interface{}) Error {
	return Newf(Logic, format, args...)
}

// NoMemErr returns the fixed NoMem-coded Error. Allocation failures carry
// no useful extra context in Go (they surface as a panic before any code
// here could run), so this exists mainly for API parity with the source
// engine's four-way return contract and for tests that exercise the
// plumbing around it.
func NoMemErr() Error {
	return New(NoMem, "allocation failure")
}

// IsOK reports whether err is nil or carries the OK code.
func IsOK(err Error) bool {
	return err == nil || err.Code() == OK
}
