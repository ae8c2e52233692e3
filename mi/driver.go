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

	"github.com/nabbar/gdbwire/logging"
	"github.com/nabbar/gdbwire/mierr"
	"github.com/nabbar/gdbwire/miparse"
	"github.com/nabbar/gdbwire/strbuf"
)

// Driver converts arbitrary chunks of MI bytes into a sequence of Output
// dispatches. It performs no I/O: callers feed it bytes from wherever they
// came from (a pipe, a file, a test fixture) via PushBytes/PushString.
//
// A Driver is not safe for concurrent use; independent Drivers share no
// state and may run on different goroutines freely.
type Driver struct {
	buf *strbuf.Buffer
	cb  Callbacks
	log logging.Sink
}

// NewDriver builds a Driver that dispatches into cb. Any zero-value field
// of cb simply drops that record kind.
func NewDriver(cb Callbacks, opts ...Option) *Driver {
	d := &Driver{
		buf: strbuf.New(),
		cb:  cb,
		log: logging.Noop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Close releases the internal buffer. Calling it immediately after
// NewDriver is safe; a Driver needs no explicit Close if left to the
// garbage collector, but releasing the buffer early helps long-lived
// callers that keep many idle Drivers around.
func (d *Driver) Close() {
	d.buf = strbuf.New()
}

// PushString is PushBytes over s's bytes.
func (d *Driver) PushString(s string) mierr.Error {
	return d.PushBytes([]byte(s))
}

// PushBytes appends data to the internal buffer, then extracts and
// dispatches every complete line it now contains. A line is terminated by
// `\n`, `\r`, or `\r\n`; `\r\n` counts as a single terminator. A trailing
// `\r` with nothing after it is ambiguous (it might be the start of
// `\r\n`) and is held back for the next push, per spec. Pushing an empty
// slice is a no-op.
func (d *Driver) PushBytes(data []byte) mierr.Error {
	if len(data) == 0 {
		return nil
	}
	if err := d.buf.AppendBytes(data); err != nil {
		return mierr.NoMemErr()
	}
	return d.drain()
}

func (d *Driver) drain() mierr.Error {
	for {
		size := d.buf.Size()
		if size == 0 {
			return nil
		}

		raw := d.buf.Data()
		idx := d.buf.FindFirstOf("\r\n")
		if idx >= size {
			return nil
		}

		var consumed int
		if raw[idx] == '\n' {
			consumed = idx + 1
		} else if idx+1 >= size {
			// lone trailing '\r': could still become '\r\n', wait for more.
			return nil
		} else if raw[idx+1] == '\n' {
			consumed = idx + 2
		} else {
			consumed = idx + 1
		}

		line := make([]byte, consumed)
		copy(line, raw[:consumed])

		out := miparse.ParseLine(line)
		if out.Kind == ParseErrorOutput {
			d.log.Warnf("miparse: col %d-%d: unexpected token %q in %q", out.ErrorStart, out.ErrorEnd, out.ErrorToken, strings.TrimRight(string(line), "\r\n"))
		}
		d.cb.dispatch(out)

		if err := d.buf.Erase(0, consumed); err != nil {
			return mierr.Newf(mierr.Assert, "internal buffer erase failed: %v", err)
		}
	}
}
