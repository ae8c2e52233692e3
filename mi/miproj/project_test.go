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

package miproj_test

import (
	"github.com/nabbar/gdbwire/mi/miproj"
	"github.com/nabbar/gdbwire/miparse"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// parseResult parses a single MI line and returns its ResultRecord,
// failing the spec if the line is not a well-formed result record.
func parseResult(line string) *miparse.ResultRecord {
	out := miparse.ParseLine([]byte(line + "\n"))
	ExpectWithOffset(1, out.Kind).To(Equal(miparse.ResultOutput), "line %q did not parse as a result record", line)
	return out.Result
}

var _ = Describe("Project", func() {
	Describe("file-list-exec-source-file", func() {
		It("scenario 7: projects line/file/fullname/macro-info", func() {
			rec := parseResult(`^done,line="12",file="a.c",fullname="/tmp/a.c",macro-info="1"`)
			got, err := miproj.Project(rec, miproj.FileListExecSourceFile)
			Expect(err).To(BeNil())

			sf := got.(*miproj.SourceFile)
			Expect(sf.Line).To(BeEquivalentTo(12))
			Expect(sf.File).To(Equal("a.c"))
			Expect(sf.FullName).To(Equal("/tmp/a.c"))
			Expect(sf.MacroInfoExists).To(BeTrue())
			Expect(sf.MacroInfo).To(BeTrue())
		})

		It("treats a missing macro-info as absent, not false", func() {
			rec := parseResult(`^done,line="12",file="a.c"`)
			got, err := miproj.Project(rec, miproj.FileListExecSourceFile)
			Expect(err).To(BeNil())

			sf := got.(*miproj.SourceFile)
			Expect(sf.MacroInfoExists).To(BeFalse())
		})

		It("rejects a macro-info value other than \"0\"/\"1\" as a logic error", func() {
			rec := parseResult(`^done,line="12",file="a.c",macro-info="maybe"`)
			_, err := miproj.Project(rec, miproj.FileListExecSourceFile)
			Expect(err).NotTo(BeNil())
			Expect(err.Code().String()).To(Equal("logic"))
		})
	})

	Describe("break-insert", func() {
		It("scenario 8: projects a modern locations-list multi-location insert", func() {
			rec := parseResult(`^done,bkpt={number="1",type="breakpoint",disp="keep",enabled="y",addr="<MULTIPLE>",times="0",original-location="foo",locations=[{number="1.1",enabled="y",addr="0x400000"},{number="1.2",enabled="y",addr="0x400010"}]}`)
			got, err := miproj.Project(rec, miproj.BreakInsert)
			Expect(err).To(BeNil())

			bps := got.([]*miproj.Breakpoint)
			Expect(bps).To(HaveLen(1))

			parent := bps[0]
			Expect(parent.Multi).To(BeTrue())
			Expect(parent.Number).To(Equal("1"))
			Expect(parent.FromMulti).To(BeFalse())
			Expect(parent.MultiBreakpoints).To(HaveLen(2))

			for i, want := range []string{"1.1", "1.2"} {
				child := parent.MultiBreakpoints[i]
				Expect(child.Number).To(Equal(want))
				Expect(child.MultiBreakpoint).To(BeIdenticalTo(parent))
				Expect(child.FromMulti).To(BeTrue(), "child %d should be marked from_multi", i)
			}
		})

		It("scenario 9: projects a legacy dotted-sibling multi-location insert", func() {
			rec := parseResult(`^done,bkpt={number="1",addr="<MULTIPLE>",enabled="y"},{number="1.1",enabled="y",addr="0x400000"},{number="1.2",enabled="y",addr="0x400010"}`)
			got, err := miproj.Project(rec, miproj.BreakInsert)
			Expect(err).To(BeNil())

			bps := got.([]*miproj.Breakpoint)
			Expect(bps).To(HaveLen(1))

			parent := bps[0]
			Expect(parent.Multi).To(BeTrue())
			Expect(parent.FromMulti).To(BeFalse())
			Expect(parent.MultiBreakpoints).To(HaveLen(2))
			Expect(parent.MultiBreakpoints[0].Number).To(Equal("1.1"))
			Expect(parent.MultiBreakpoints[1].Number).To(Equal("1.2"))
			Expect(parent.MultiBreakpoints[0].MultiBreakpoint).To(BeIdenticalTo(parent))

			for i, child := range parent.MultiBreakpoints {
				Expect(child.FromMulti).To(BeTrue(), "legacy child %d should be marked from_multi", i)
			}
		})
	})

	Describe("break-info", func() {
		It("walks BreakpointTable down to its body", func() {
			rec := parseResult(`^done,BreakpointTable={nr_rows="1",nr_cols="1",body=[bkpt={number="2",type="breakpoint",disp="keep",enabled="y",addr="0x1000",func="main",file="a.c",line="10",times="1"}]}`)
			got, err := miproj.Project(rec, miproj.BreakInfo)
			Expect(err).To(BeNil())

			bps := got.([]*miproj.Breakpoint)
			Expect(bps).To(HaveLen(1))

			bp := bps[0]
			Expect(bp.Number).To(Equal("2"))
			Expect(bp.FuncName).To(Equal("main"))
			Expect(bp.Line).To(BeEquivalentTo(10))
			Expect(bp.Times).To(BeEquivalentTo(1))
			Expect(bp.FromMulti).To(BeFalse())
			Expect(bp.Disposition.String()).To(Equal("keep"))
		})
	})

	Describe("stack-info-frame", func() {
		It("projects level/addr/func/file/line", func() {
			rec := parseResult(`^done,frame={level="0",addr="0x08048564",func="main",file="hello.c",fullname="/home/user/hello.c",line="6"}`)
			got, err := miproj.Project(rec, miproj.StackInfoFrame)
			Expect(err).To(BeNil())

			sf := got.(*miproj.StackFrame)
			Expect(sf.Level).To(BeEquivalentTo(0))
			Expect(sf.Address).To(Equal("0x08048564"))
			Expect(sf.Func).To(Equal("main"))
			Expect(sf.File).To(Equal("hello.c"))
			Expect(sf.Line).To(BeEquivalentTo(6))
		})

		It("rejects a frame missing the required addr field as a logic error", func() {
			rec := parseResult(`^done,frame={level="0",func="main"}`)
			_, err := miproj.Project(rec, miproj.StackInfoFrame)
			Expect(err).NotTo(BeNil())
			Expect(err.Code().String()).To(Equal("logic"))
		})
	})

	Describe("file-list-exec-source-files", func() {
		It("projects the debug-fully-read field state", func() {
			rec := parseResult(`^done,files=[{file="a.c",fullname="/tmp/a.c",debug-fully-read="true"},{file="b.c"}]`)
			got, err := miproj.Project(rec, miproj.FileListExecSourceFiles)
			Expect(err).To(BeNil())

			entries := got.([]*miproj.SourceFileEntry)
			Expect(entries).To(HaveLen(2))
			Expect(entries[0].File).To(Equal("a.c"))
			Expect(entries[0].DebugFullyRead).To(Equal(miproj.DebugFullyReadTrue))
			Expect(entries[1].File).To(Equal("b.c"))
			Expect(entries[1].DebugFullyRead).To(Equal(miproj.DebugFullyReadAbsent))
		})
	})

	It("rejects a non-done result class regardless of command kind", func() {
		rec := parseResult(`^running`)
		_, err := miproj.Project(rec, miproj.StackInfoFrame)
		Expect(err).NotTo(BeNil())
		Expect(err.Code().String()).To(Equal("assert"))
	})
})
