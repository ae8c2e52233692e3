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

package miproj

import (
	"github.com/nabbar/gdbwire/mierr"
	"github.com/nabbar/gdbwire/miparse"
)

// CommandKind names a projectable MI command so Project knows which shape
// to expect from the result record.
type CommandKind uint8

const (
	BreakInfo CommandKind = iota
	BreakInsert
	StackInfoFrame
	FileListExecSourceFile
	FileListExecSourceFiles
)

func (k CommandKind) String() string {
	switch k {
	case BreakInfo:
		return "break-info"
	case BreakInsert:
		return "break-insert"
	case StackInfoFrame:
		return "stack-info-frame"
	case FileListExecSourceFile:
		return "file-list-exec-source-file"
	case FileListExecSourceFiles:
		return "file-list-exec-source-files"
	default:
		return "?"
	}
}

// Project walks result according to kind and returns the typed record it
// describes. result must be a `done`-class ResultRecord; a nil record or
// any other class is rejected with an Assert-coded error before kind is
// looked at.
func Project(result *miparse.ResultRecord, kind CommandKind) (interface{}, mierr.Error) {
	if result == nil {
		return nil, mierr.Assertf("projector: nil result record")
	}
	if result.Class != miparse.ClassDone {
		return nil, mierr.Assertf("projector: expected class done, got %s", result.Class)
	}

	switch kind {
	case BreakInfo:
		return projectBreakInfo(result.Results)
	case BreakInsert:
		return projectBreakInsert(result.Results)
	case StackInfoFrame:
		return projectStackFrame(result.Results)
	case FileListExecSourceFile:
		return projectSourceFile(result.Results)
	case FileListExecSourceFiles:
		return projectSourceFiles(result.Results)
	default:
		return nil, mierr.Assertf("projector: unknown command kind %d", kind)
	}
}

func findByKey(results []*miparse.Result, key string) *miparse.Result {
	for _, r := range results {
		if r.Key == key {
			return r
		}
	}
	return nil
}
