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

package miproj

import (
	"github.com/nabbar/gdbwire/mierr"
	"github.com/nabbar/gdbwire/miparse"
)

// StackFrame is the projection of a `frame` tuple, as produced by
// `-stack-info-frame`.
type StackFrame struct {
	Level    uint64
	Address  string
	Func     string
	File     string
	FullName string
	From     string
	Line     uint64
}

const unavailableAddress = "<unavailable>"

func projectStackFrame(results []*miparse.Result) (interface{}, mierr.Error) {
	if len(results) != 1 {
		return nil, mierr.Assertf("stack-info-frame: expected exactly one top-level result, got %d", len(results))
	}
	frame := results[0]
	if frame.Key != "frame" || frame.Kind != miparse.TupleKind {
		return nil, mierr.Assertf("stack-info-frame: expected tuple %q", "frame")
	}

	levelField := findByKey(frame.Children, "level")
	if levelField == nil {
		return nil, mierr.Logicf("stack-info-frame: missing required field %q", "level")
	}
	levelStr, ok := cstringOf(levelField)
	if !ok {
		return nil, mierr.Assertf("stack-info-frame: field %q is not a c-string", "level")
	}
	level, err := parseStrictUint(levelStr)
	if err != nil {
		return nil, err
	}

	addrField := findByKey(frame.Children, "addr")
	if addrField == nil {
		return nil, mierr.Logicf("stack-info-frame: missing required field %q", "addr")
	}
	addr, ok := cstringOf(addrField)
	if !ok {
		return nil, mierr.Assertf("stack-info-frame: field %q is not a c-string", "addr")
	}
	if addr == unavailableAddress {
		addr = ""
	}

	sf := &StackFrame{Level: level, Address: addr}

	if f := findByKey(frame.Children, "func"); f != nil {
		sf.Func, _ = cstringOf(f)
	}
	if f := findByKey(frame.Children, "file"); f != nil {
		sf.File, _ = cstringOf(f)
	}
	if f := findByKey(frame.Children, "fullname"); f != nil {
		sf.FullName, _ = cstringOf(f)
	}
	if f := findByKey(frame.Children, "from"); f != nil {
		sf.From, _ = cstringOf(f)
	}
	if f := findByKey(frame.Children, "line"); f != nil {
		if s, ok := cstringOf(f); ok {
			v, err := parseStrictUint(s)
			if err != nil {
				return nil, err
			}
			sf.Line = v
		}
	}

	return sf, nil
}
