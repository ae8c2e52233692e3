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

// Callbacks is the five-entry dispatch surface a Driver fires into as it
// parses lines. Every field is optional; a nil entry silently drops that
// kind of record. Callbacks run synchronously on the goroutine that called
// Push*; the Output/record handed to a callback is only valid for the
// duration of the call — copy anything you want to keep past it.
type Callbacks struct {
	OnStream     func(rec *StreamRecord)
	OnAsync      func(rec *AsyncRecord)
	OnResult     func(rec *ResultRecord)
	OnPrompt     func(line []byte)
	OnParseError func(line []byte, token string, start, end int)
}

func (c Callbacks) dispatch(out *Output) {
	switch out.Kind {
	case OutOfBand:
		switch out.OOB.Kind {
		case StreamRecordKind:
			if c.OnStream != nil {
				c.OnStream(out.OOB.Stream)
			}
		case AsyncRecordKind:
			if c.OnAsync != nil {
				c.OnAsync(out.OOB.Async)
			}
		}
	case ResultOutput:
		if c.OnResult != nil {
			c.OnResult(out.Result)
		}
	case PromptOutput:
		if c.OnPrompt != nil {
			c.OnPrompt(out.Line)
		}
	case ParseErrorOutput:
		if c.OnParseError != nil {
			c.OnParseError(out.Line, out.ErrorToken, out.ErrorStart, out.ErrorEnd)
		}
	}
}
