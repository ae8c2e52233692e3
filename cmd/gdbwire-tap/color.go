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

package main

import (
	"github.com/fatih/color"

	"github.com/nabbar/gdbwire/mi"
)

var streamColor = map[mi.StreamKind]*color.Color{
	mi.StreamConsole: color.New(color.FgWhite),
	mi.StreamTarget:  color.New(color.FgCyan),
	mi.StreamLog:     color.New(color.FgYellow),
}

var kindColor = map[string]*color.Color{
	"prompt": color.New(color.FgGreen),
	"result": color.New(color.FgBlue),
	"async":  color.New(color.FgMagenta),
	"error":  color.New(color.FgRed, color.Bold),
}

func colorizeLabel(label string) string {
	if c, ok := kindColor[label]; ok {
		return c.Sprint(label)
	}
	return label
}

func colorizeStream(kind mi.StreamKind, text string) string {
	if c, ok := streamColor[kind]; ok {
		return c.Sprint(text)
	}
	return text
}
