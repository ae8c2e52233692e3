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

// SourceFile is the projection of `-file-list-exec-source-file`'s result.
// MacroInfoExists records whether GDB sent the `macro-info` field at all;
// MacroInfo is only meaningful when it does.
type SourceFile struct {
	Line            uint64
	File            string
	FullName        string
	MacroInfoExists bool
	MacroInfo       bool
}

func projectSourceFile(results []*miparse.Result) (interface{}, mierr.Error) {
	lineField := findByKey(results, "line")
	if lineField == nil {
		return nil, mierr.Assertf("file-list-exec-source-file: missing required field %q", "line")
	}
	lineStr, ok := cstringOf(lineField)
	if !ok {
		return nil, mierr.Assertf("file-list-exec-source-file: field %q is not a c-string", "line")
	}
	line, err := parseStrictUint(lineStr)
	if err != nil {
		return nil, err
	}

	fileField := findByKey(results, "file")
	if fileField == nil {
		return nil, mierr.Assertf("file-list-exec-source-file: missing required field %q", "file")
	}
	file, ok := cstringOf(fileField)
	if !ok {
		return nil, mierr.Assertf("file-list-exec-source-file: field %q is not a c-string", "file")
	}

	sf := &SourceFile{Line: line, File: file}

	if f := findByKey(results, "fullname"); f != nil {
		sf.FullName, _ = cstringOf(f)
	}

	if f := findByKey(results, "macro-info"); f != nil {
		s, ok := cstringOf(f)
		if !ok {
			return nil, mierr.Assertf("file-list-exec-source-file: field %q is not a c-string", "macro-info")
		}
		// spec.md §9, Open Question 3: the source enforces exactly "0" or
		// "1" — any other value is a logic error, not an absent field.
		switch s {
		case "0":
			sf.MacroInfoExists = true
			sf.MacroInfo = false
		case "1":
			sf.MacroInfoExists = true
			sf.MacroInfo = true
		default:
			return nil, mierr.Logicf("file-list-exec-source-file: field %q must be \"0\" or \"1\", got %q", "macro-info", s)
		}
	}

	return sf, nil
}

// SourceFileEntry is one element of `-file-list-exec-source-files`'
// `files` list.
type SourceFileEntry struct {
	File           string
	FullName       string
	DebugFullyRead SourceFileDebugState
}

// SourceFileDebugState is the closed set of states of the optional
// `debug-fully-read` field: absent, "true", "false", or any other value
// (unknown).
type SourceFileDebugState uint8

const (
	DebugFullyReadAbsent SourceFileDebugState = iota
	DebugFullyReadTrue
	DebugFullyReadFalse
	DebugFullyReadUnknown
)

func projectSourceFiles(results []*miparse.Result) (interface{}, mierr.Error) {
	filesField := findByKey(results, "files")
	if filesField == nil || filesField.Kind != miparse.ListKind {
		return nil, mierr.Assertf("file-list-exec-source-files: missing list %q", "files")
	}

	entries := make([]*SourceFileEntry, 0, len(filesField.Children))
	for _, elem := range filesField.Children {
		if elem.Kind != miparse.TupleKind {
			return nil, mierr.Assertf("file-list-exec-source-files: files element is not a tuple")
		}

		fileField := findByKey(elem.Children, "file")
		if fileField == nil {
			return nil, mierr.Assertf("file-list-exec-source-files: missing required field %q", "file")
		}
		file, ok := cstringOf(fileField)
		if !ok {
			return nil, mierr.Assertf("file-list-exec-source-files: field %q is not a c-string", "file")
		}

		entry := &SourceFileEntry{File: file}

		if f := findByKey(elem.Children, "fullname"); f != nil {
			entry.FullName, _ = cstringOf(f)
		}

		entry.DebugFullyRead = DebugFullyReadAbsent
		if f := findByKey(elem.Children, "debug-fully-read"); f != nil {
			s, ok := cstringOf(f)
			if !ok {
				return nil, mierr.Assertf("file-list-exec-source-files: field %q is not a c-string", "debug-fully-read")
			}
			switch s {
			case "true":
				entry.DebugFullyRead = DebugFullyReadTrue
			case "false":
				entry.DebugFullyRead = DebugFullyReadFalse
			default:
				entry.DebugFullyRead = DebugFullyReadUnknown
			}
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
