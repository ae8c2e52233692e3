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

package miparse_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/nabbar/gdbwire/miparse"
)

func TestParsePrompt(t *testing.T) {
	g := NewWithT(t)
	out := miparse.ParseLine([]byte("(gdb)\n"))
	g.Expect(out.Kind).To(Equal(miparse.PromptOutput))
}

func TestParsePromptRejectsOtherIdentifier(t *testing.T) {
	g := NewWithT(t)
	out := miparse.ParseLine([]byte("(notgdb)\n"))
	g.Expect(out.Kind).To(Equal(miparse.ParseErrorOutput))
}

func TestParseSimpleDone(t *testing.T) {
	g := NewWithT(t)
	out := miparse.ParseLine([]byte("^done\n"))
	g.Expect(out.Kind).To(Equal(miparse.ResultOutput))
	g.Expect(out.Result.Class).To(Equal(miparse.ClassDone))
	g.Expect(out.Result.Token).To(BeEmpty())
	g.Expect(out.Result.Results).To(BeEmpty())
}

func TestParseTokenedError(t *testing.T) {
	g := NewWithT(t)
	out := miparse.ParseLine([]byte(`0042^error,msg="oops"` + "\n"))
	g.Expect(out.Kind).To(Equal(miparse.ResultOutput))
	r := out.Result
	g.Expect(r.Token).To(Equal("0042"))
	g.Expect(r.Class).To(Equal(miparse.ClassError))
	g.Expect(r.Results).To(HaveLen(1))
	g.Expect(r.Results[0].Key).To(Equal("msg"))
	g.Expect(r.Results[0].Str).To(Equal("oops"))
}

func TestParseExecStopped(t *testing.T) {
	g := NewWithT(t)
	out := miparse.ParseLine([]byte(`*stopped,reason="breakpoint-hit",bkptno="1"` + "\n"))
	g.Expect(out.Kind).To(Equal(miparse.OutOfBand))
	g.Expect(out.OOB.Kind).To(Equal(miparse.AsyncRecordKind))
	a := out.OOB.Async
	g.Expect(a.Kind).To(Equal(miparse.AsyncExec))
	g.Expect(a.Class).To(Equal(miparse.AsyncStopped))
	g.Expect(a.Results).To(HaveLen(2))
	g.Expect(a.Results[0].Key).To(Equal("reason"))
	g.Expect(a.Results[1].Key).To(Equal("bkptno"))
}

func TestParseConsoleStream(t *testing.T) {
	g := NewWithT(t)
	out := miparse.ParseLine([]byte(`~"hello\n"` + "\n"))
	g.Expect(out.Kind).To(Equal(miparse.OutOfBand))
	g.Expect(out.OOB.Kind).To(Equal(miparse.StreamRecordKind))
	s := out.OOB.Stream
	g.Expect(s.Kind).To(Equal(miparse.StreamConsole))
	g.Expect(s.Text).To(Equal("hello\n"))
}

func TestParseUnknownAsyncClassIsUnsupportedButLiteralKept(t *testing.T) {
	g := NewWithT(t)
	out := miparse.ParseLine([]byte(`=some-future-thing,x="1"` + "\n"))
	a := out.OOB.Async
	g.Expect(a.Class).To(Equal(miparse.AsyncUnsupported))
	g.Expect(a.ClassLiteral).To(Equal("some-future-thing"))
}

func TestParseKeylessTupleMember(t *testing.T) {
	g := NewWithT(t)
	out := miparse.ParseLine([]byte(`^done,bkpt={number="1"},{number="1.1"}` + "\n"))
	g.Expect(out.Kind).To(Equal(miparse.ResultOutput))
	g.Expect(out.Result.Results).To(HaveLen(2))
	g.Expect(out.Result.Results[0].Key).To(Equal("bkpt"))
	g.Expect(out.Result.Results[1].Key).To(BeEmpty())
}

func TestParseNestedTupleAndList(t *testing.T) {
	g := NewWithT(t)
	out := miparse.ParseLine([]byte(`^done,frame={level="0",args=[]}` + "\n"))
	r := out.Result.Results[0]
	g.Expect(r.Kind).To(Equal(miparse.TupleKind))
	var args *miparse.Result
	for _, c := range r.Children {
		if c.Key == "args" {
			args = c
		}
	}
	g.Expect(args).NotTo(BeNil())
	g.Expect(args.Kind).To(Equal(miparse.ListKind))
	g.Expect(args.Children).To(BeEmpty())
}

func TestParseErrorColumnSpan(t *testing.T) {
	g := NewWithT(t)
	out := miparse.ParseLine([]byte("^done,\n"))
	g.Expect(out.Kind).To(Equal(miparse.ParseErrorOutput))
	g.Expect(out.ErrorStart).To(Equal(out.ErrorEnd))
}

func TestParseErrorLineIsAttached(t *testing.T) {
	g := NewWithT(t)
	line := []byte("not valid mi\n")
	out := miparse.ParseLine(line)
	g.Expect(out.Line).To(Equal(line))
}
