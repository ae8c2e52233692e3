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

package miparse

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestUnescapeNoBackslashIsIdentity(t *testing.T) {
	g := NewWithT(t)
	g.Expect(unescape("hello world")).To(Equal("hello world"))
}

func TestUnescapeKnownEscapes(t *testing.T) {
	g := NewWithT(t)
	cases := map[string]string{
		`\n`: "\n",
		`\r`: "\r",
		`\t`: "\t",
		`\b`: "\b",
		`\f`: "\f",
		`\e`: "\x1B",
		`\a`: "\x07",
		`\"`: `"`,
		`\\`: `\`,
	}
	for in, want := range cases {
		g.Expect(unescape(in)).To(Equal(want), "unescape(%q)", in)
	}
}

func TestUnescapeUnknownEscapeDropsBackslashKeepsChar(t *testing.T) {
	g := NewWithT(t)
	// spec §9, Open Question 2: an unrecognized escape sequence drops the
	// backslash and keeps the following character literally.
	g.Expect(unescape(`\x`)).To(Equal("x"))
	g.Expect(unescape(`\q41`)).To(Equal("q41"))
}

func TestUnescapeTrailingBackslashIsKeptLiteral(t *testing.T) {
	g := NewWithT(t)
	g.Expect(unescape(`abc\`)).To(Equal(`abc\`))
}

func TestUnescapeMixedContent(t *testing.T) {
	g := NewWithT(t)
	in := `line one\nline two\ttabbed\\done`
	want := "line one\nline two\ttabbed\\done"
	g.Expect(unescape(in)).To(Equal(want))
}

func TestUnescapeConsecutiveEscapes(t *testing.T) {
	g := NewWithT(t)
	g.Expect(unescape(`\n\t\r`)).To(Equal("\n\t\r"))
}
