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

package mierr_test

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/nabbar/gdbwire/mierr"
)

func TestCodeString(t *testing.T) {
	g := NewWithT(t)
	cases := map[mierr.Code]string{
		mierr.OK:     "ok",
		mierr.Assert: "assert",
		mierr.Logic:  "logic",
		mierr.NoMem:  "nomem",
	}
	for code, want := range cases {
		g.Expect(code.String()).To(Equal(want))
	}
}

func TestAssertfCode(t *testing.T) {
	g := NewWithT(t)
	err := mierr.Assertf("missing field %q", "bkpt")
	g.Expect(err.Code()).To(Equal(mierr.Assert))
	g.Expect(err.Error()).NotTo(BeEmpty())
}

func TestLogicfCode(t *testing.T) {
	g := NewWithT(t)
	err := mierr.Logicf("line=%q is not numeric", "abc")
	g.Expect(err.Code()).To(Equal(mierr.Logic))
}

func TestUnwrapChain(t *testing.T) {
	g := NewWithT(t)
	parent := errors.New("strconv: parsing \"abc\": invalid syntax")
	err := mierr.New(mierr.Logic, "bad line", parent)
	g.Expect(errors.Is(err, parent)).To(BeTrue())
}

func TestIsOK(t *testing.T) {
	g := NewWithT(t)
	g.Expect(mierr.IsOK(nil)).To(BeTrue())
	g.Expect(mierr.IsOK(mierr.Assertf("x"))).To(BeFalse())
}
