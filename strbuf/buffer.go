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

package strbuf

import (
	"errors"
	"strings"
)

// ErrEraseOutOfRange is returned by Erase when start is negative or past
// the end of the buffer.
var ErrEraseOutOfRange = errors.New("strbuf: erase start out of range")

const (
	initialCapacity    = 128
	capacityDoublingMax = 4096
	capacityStep        = 4096
)

// Buffer is a growable byte sequence that is usable both as an
// array-of-bytes (it may contain embedded NULs) and as a C-style
// terminated string: Data always has a NUL byte immediately past its
// logical end, even on a freshly created, empty Buffer.
//
// The zero value is not ready to use; call New.
type Buffer struct {
	buf []byte // len(buf) == capacity+1; buf[size] is always the terminator
	cap int
	size int
}

// New returns a Buffer whose logical size is zero but whose first byte is
// the NUL terminator, so a terminated-string view is always valid.
func New() *Buffer {
	return &Buffer{buf: make([]byte, 1)}
}

// Size returns the number of logical bytes currently stored, excluding the
// trailing terminator.
func (b *Buffer) Size() int {
	return b.size
}

// Cap returns the current capacity, following the growth policy: 0 until
// the first append, then 128, doubling up to 4096, then growing in
// additive 4096-byte steps.
func (b *Buffer) Cap() int {
	return b.cap
}

// Data returns the underlying bytes for the current logical range.
// Mutation of the returned slice in place, within Size bounds, is allowed
// and is reflected by the Buffer.
func (b *Buffer) Data() []byte {
	return b.buf[:b.size]
}

// nextCapacity returns the capacity the buffer grows to from cur, per the
// documented growth policy.
func nextCapacity(cur int) int {
	if cur == 0 {
		return initialCapacity
	}
	if cur < capacityDoublingMax {
		next := cur * 2
		if next > capacityDoublingMax {
			return capacityDoublingMax
		}
		return next
	}
	return cur + capacityStep
}

// growTo ensures the buffer can hold at least need logical bytes plus the
// terminator, growing capacity one step at a time so callers can observe
// the documented curve via Cap.
func (b *Buffer) growTo(need int) {
	for b.cap < need {
		b.cap = nextCapacity(b.cap)
	}
	if len(b.buf) < b.cap+1 {
		nb := make([]byte, b.cap+1)
		copy(nb, b.buf[:b.size])
		b.buf = nb
	}
}

func (b *Buffer) terminate() {
	b.buf[b.size] = 0
}

// AppendByte appends a single byte.
func (b *Buffer) AppendByte(c byte) error {
	b.growTo(b.size + 1)
	b.buf[b.size] = c
	b.size++
	b.terminate()
	return nil
}

// AppendBytes appends the given slice in full.
func (b *Buffer) AppendBytes(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	b.growTo(b.size + len(data))
	copy(b.buf[b.size:], data)
	b.size += len(data)
	b.terminate()
	return nil
}

// AppendString appends s as-is, as AppendBytes([]byte(s)) would. It mirrors
// the source engine's append-terminated-string operation: the logical size
// reported afterward excludes any terminator, matching Go's NUL-free
// string representation.
func (b *Buffer) AppendString(s string) (int, error) {
	if err := b.AppendBytes([]byte(s)); err != nil {
		return 0, err
	}
	return len(s), nil
}

// Clear resets the logical size to zero and restores the terminator at
// offset zero. Capacity is not released.
func (b *Buffer) Clear() {
	b.size = 0
	if len(b.buf) > 0 {
		b.terminate()
	}
}

// FindFirstOf returns the index of the first byte in the buffer that
// equals any character of chars, interpreted as a set of characters (not
// as a substring), or Size if none match.
func (b *Buffer) FindFirstOf(chars string) int {
	for i := 0; i < b.size; i++ {
		if strings.IndexByte(chars, b.buf[i]) >= 0 {
			return i
		}
	}
	return b.size
}

// Erase removes count bytes starting at start and shifts the tail left,
// never reallocating. A range extending past the end is clipped to the
// end. Erase fails with ErrEraseOutOfRange if start is negative or greater
// than Size.
func (b *Buffer) Erase(start, count int) error {
	if start < 0 || start > b.size {
		return ErrEraseOutOfRange
	}
	if count <= 0 {
		return nil
	}

	end := start + count
	if end > b.size {
		end = b.size
	}

	copy(b.buf[start:], b.buf[end:b.size])
	b.size -= end - start
	b.terminate()
	return nil
}
