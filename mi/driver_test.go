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

package mi_test

import (
	"github.com/nabbar/gdbwire/mi"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type capture struct {
	order   []string
	prompts [][]byte
	streams []*mi.StreamRecord
	asyncs  []*mi.AsyncRecord
	results []*mi.ResultRecord
	errs    []string
}

func newCapture() (*capture, mi.Callbacks) {
	c := &capture{}
	cb := mi.Callbacks{
		OnStream: func(rec *mi.StreamRecord) {
			c.order = append(c.order, "stream")
			c.streams = append(c.streams, rec)
		},
		OnAsync: func(rec *mi.AsyncRecord) {
			c.order = append(c.order, "async")
			c.asyncs = append(c.asyncs, rec)
		},
		OnResult: func(rec *mi.ResultRecord) {
			c.order = append(c.order, "result")
			c.results = append(c.results, rec)
		},
		OnPrompt: func(line []byte) {
			c.order = append(c.order, "prompt")
			c.prompts = append(c.prompts, line)
		},
		OnParseError: func(line []byte, token string, start, end int) {
			c.order = append(c.order, "error")
			c.errs = append(c.errs, token)
		},
	}
	return c, cb
}

var _ = Describe("Driver", func() {
	Describe("the end-to-end scenarios 1-6", func() {
		It("scenario 1: dispatches a prompt", func() {
			c, cb := newCapture()
			d := mi.NewDriver(cb)
			Expect(d.PushString("(gdb)\n")).To(BeNil())
			Expect(c.order).To(Equal([]string{"prompt"}))
		})

		It("scenario 2: dispatches a console stream record", func() {
			c, cb := newCapture()
			d := mi.NewDriver(cb)
			Expect(d.PushString(`~"hello\n"` + "\n")).To(BeNil())
			Expect(c.streams).To(HaveLen(1))
			Expect(c.streams[0].Kind).To(Equal(mi.StreamConsole))
			Expect(c.streams[0].Text).To(Equal("hello\n"))
		})

		It("scenario 3: dispatches a simple done result", func() {
			c, cb := newCapture()
			d := mi.NewDriver(cb)
			Expect(d.PushString("^done\n")).To(BeNil())
			Expect(c.results).To(HaveLen(1))
			r := c.results[0]
			Expect(r.Class).To(Equal(mi.ClassDone))
			Expect(r.Token).To(BeEmpty())
			Expect(r.Results).To(BeEmpty())
		})

		It("scenario 4: dispatches a tokened error result", func() {
			c, cb := newCapture()
			d := mi.NewDriver(cb)
			Expect(d.PushString(`0042^error,msg="oops"` + "\n")).To(BeNil())
			r := c.results[0]
			Expect(r.Token).To(Equal("0042"))
			Expect(r.Class).To(Equal(mi.ClassError))
			Expect(r.Results).To(HaveLen(1))
			Expect(r.Results[0].Key).To(Equal("msg"))
			Expect(r.Results[0].Str).To(Equal("oops"))
		})

		It("scenario 5: dispatches an exec-stopped async record", func() {
			c, cb := newCapture()
			d := mi.NewDriver(cb)
			Expect(d.PushString(`*stopped,reason="breakpoint-hit",bkptno="1"` + "\n")).To(BeNil())
			Expect(c.asyncs).To(HaveLen(1))
			a := c.asyncs[0]
			Expect(a.Kind).To(Equal(mi.AsyncExec))
			Expect(a.Results).To(HaveLen(2))
		})

		It("scenario 6: holds a chunked newline until the terminator completes", func() {
			c, cb := newCapture()
			d := mi.NewDriver(cb)

			Expect(d.PushString("^done\r")).To(BeNil())
			Expect(c.results).To(BeEmpty())

			Expect(d.PushString("\nfoo")).To(BeNil())
			Expect(c.results).To(HaveLen(1))
			Expect(c.results[0].Class).To(Equal(mi.ClassDone))
		})
	})

	It("treats an empty push as a no-op", func() {
		c, cb := newCapture()
		d := mi.NewDriver(cb)
		Expect(d.PushBytes(nil)).To(BeNil())
		Expect(c.order).To(BeEmpty())
	})

	It("tolerates Close immediately after NewDriver", func() {
		_, cb := newCapture()
		d := mi.NewDriver(cb)
		d.Close()
	})

	It("dispatches identically byte-at-a-time and all-at-once", func() {
		input := "(gdb)\n^done,a=\"1\"\n~\"hi\\n\"\n*stopped,reason=\"x\"\nbad token here\n"

		c1, cb1 := newCapture()
		d1 := mi.NewDriver(cb1)
		Expect(d1.PushString(input)).To(BeNil())

		c2, cb2 := newCapture()
		d2 := mi.NewDriver(cb2)
		for i := 0; i < len(input); i++ {
			Expect(d2.PushBytes([]byte{input[i]})).To(BeNil())
		}

		Expect(c2.order).To(Equal(c1.order))
	})

	It("preserves callback ordering regardless of how pushes are grouped", func() {
		lines := "^done\n*stopped,reason=\"x\"\n~\"y\\n\"\n"

		c1, cb1 := newCapture()
		d1 := mi.NewDriver(cb1)
		_ = d1.PushString(lines)

		c2, cb2 := newCapture()
		d2 := mi.NewDriver(cb2)
		mid := len(lines) / 2
		_ = d2.PushString(lines[:mid])
		_ = d2.PushString(lines[mid:])

		Expect(c1.order).To(HaveLen(3))
		Expect(c2.order).To(Equal(c1.order))
	})
})
