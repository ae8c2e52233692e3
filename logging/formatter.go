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

package logging

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Formatter renders "[LEVEL] FILE:LINE message" lines, the format the
// source engine's stderr logger used. It intentionally drops timestamps:
// the source format never carried one either.
type Formatter struct{}

func (f *Formatter) Format(e *logrus.Entry) ([]byte, error) {
	var buf bytes.Buffer

	level := strings.ToUpper(e.Level.String())
	file, _ := e.Data[fieldFile].(string)
	line, _ := e.Data[fieldLine].(int)

	fmt.Fprintf(&buf, "[%s] %s:%d %s\n", level, file, line, e.Message)
	return buf.Bytes(), nil
}
