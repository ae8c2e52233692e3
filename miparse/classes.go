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

var resultClasses = map[string]ResultClass{
	"done":      ClassDone,
	"running":   ClassRunning,
	"connected": ClassConnected,
	"error":     ClassError,
	"exit":      ClassExit,
}

// mapResultClass maps an MI result-class literal to the closed
// ResultClass enum. Any literal outside the documented set maps to
// ClassUnsupported.
func mapResultClass(literal string) ResultClass {
	if c, ok := resultClasses[literal]; ok {
		return c
	}
	return ClassUnsupported
}

var asyncClasses = map[string]AsyncClass{
	"download":             AsyncDownload,
	"stopped":               AsyncStopped,
	"running":                AsyncRunning,
	"thread-group-added":    AsyncThreadGroupAdded,
	"thread-group-removed":  AsyncThreadGroupRemoved,
	"thread-group-started":  AsyncThreadGroupStarted,
	"thread-group-exited":   AsyncThreadGroupExited,
	"thread-created":        AsyncThreadCreated,
	"thread-exited":         AsyncThreadExited,
	"thread-selected":       AsyncThreadSelected,
	"library-loaded":        AsyncLibraryLoaded,
	"library-unloaded":      AsyncLibraryUnloaded,
	"traceframe-changed":    AsyncTraceframeChanged,
	"tsv-created":           AsyncTsvCreated,
	"tsv-modified":          AsyncTsvModified,
	"tsv-deleted":           AsyncTsvDeleted,
	"breakpoint-created":    AsyncBreakpointCreated,
	"breakpoint-modified":   AsyncBreakpointModified,
	"breakpoint-deleted":    AsyncBreakpointDeleted,
	"record-started":        AsyncRecordStarted,
	"record-stopped":        AsyncRecordStopped,
	"cmd-param-changed":     AsyncCmdParamChanged,
	"memory-changed":        AsyncMemoryChanged,
}

// mapAsyncClass maps an MI async-class literal to the closed AsyncClass
// enum. Any literal outside the documented set maps to AsyncUnsupported;
// callers should keep the literal itself (AsyncRecord.ClassLiteral) since
// future GDB versions are expected to add classes this engine does not
// yet know (spec.md §9, Open Question 1).
func mapAsyncClass(literal string) AsyncClass {
	if c, ok := asyncClasses[literal]; ok {
		return c
	}
	return AsyncUnsupported
}
