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

package mi

import (
	"strings"

	"github.com/nabbar/gdbwire/mi/miproj"
	"github.com/nabbar/gdbwire/mierr"
)

// Interpret runs line (expected to be exactly one MI line, with or
// without its trailing terminator) through a throwaway Driver, captures
// the single result record it produces, and projects it via kind. It
// fails with mierr.Logic if line yields a stream record, async record,
// prompt, parse error, or no record at all.
func Interpret(line string, kind miproj.CommandKind) (interface{}, mierr.Error) {
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}

	var result *ResultRecord
	var count int

	d := NewDriver(Callbacks{
		OnResult: func(rec *ResultRecord) {
			result = rec
			count++
		},
		OnStream:     func(*StreamRecord) { count++ },
		OnAsync:      func(*AsyncRecord) { count++ },
		OnPrompt:     func([]byte) { count++ },
		OnParseError: func([]byte, string, int, int) { count++ },
	})
	defer d.Close()

	if err := d.PushString(line); err != nil {
		return nil, err
	}

	if count != 1 || result == nil {
		return nil, mierr.Logicf("interpret: expected exactly one result record, got %d record(s)", count)
	}

	return miproj.Project(result, kind)
}
