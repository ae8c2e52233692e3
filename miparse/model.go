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

// OutputKind discriminates the four shapes an Output can take.
type OutputKind uint8

const (
	OutOfBand OutputKind = iota
	ResultOutput
	PromptOutput
	ParseErrorOutput
)

func (k OutputKind) String() string {
	switch k {
	case OutOfBand:
		return "out-of-band"
	case ResultOutput:
		return "result"
	case PromptOutput:
		return "prompt"
	case ParseErrorOutput:
		return "parse-error"
	default:
		return "?"
	}
}

// Output is the top-level result of parsing one MI line. Result or OOB is
// populated depending on Kind; a PromptOutput populates neither, and a
// ParseErrorOutput instead populates ErrorToken/ErrorStart/ErrorEnd. Line always carries the
// original bytes handed to ParseLine, for diagnostics.
type Output struct {
	Line []byte
	Kind OutputKind

	Result *ResultRecord // populated iff Kind == ResultOutput
	OOB    *OOBRecord    // populated iff Kind == OutOfBand

	// ErrorToken/ErrorStart/ErrorEnd are populated iff Kind ==
	// ParseErrorOutput. Columns are 1-based and inclusive; a
	// single-character offending token has ErrorStart == ErrorEnd.
	ErrorToken string
	ErrorStart int
	ErrorEnd   int
}

// ResultClass is the closed set of MI result-record classes.
type ResultClass uint8

const (
	ClassDone ResultClass = iota
	ClassRunning
	ClassConnected
	ClassError
	ClassExit
	ClassUnsupported
)

func (c ResultClass) String() string {
	switch c {
	case ClassDone:
		return "done"
	case ClassRunning:
		return "running"
	case ClassConnected:
		return "connected"
	case ClassError:
		return "error"
	case ClassExit:
		return "exit"
	default:
		return "unsupported"
	}
}

// ResultRecord is produced when a line begins with `^`.
type ResultRecord struct {
	// Token is the caller-supplied numeric prefix from the originating MI
	// command, or "" if absent.
	Token   string
	Class   ResultClass
	Results []*Result
}

// OOBKind distinguishes the two out-of-band record shapes.
type OOBKind uint8

const (
	AsyncRecordKind OOBKind = iota
	StreamRecordKind
)

// OOBRecord wraps either an AsyncRecord or a StreamRecord.
type OOBRecord struct {
	Kind   OOBKind
	Async  *AsyncRecord  // populated iff Kind == AsyncRecordKind
	Stream *StreamRecord // populated iff Kind == StreamRecordKind
}

// AsyncKind is the `*`/`+`/`=` prefix of an async record.
type AsyncKind uint8

const (
	AsyncExec AsyncKind = iota
	AsyncStatus
	AsyncNotify
)

func (k AsyncKind) String() string {
	switch k {
	case AsyncExec:
		return "exec"
	case AsyncStatus:
		return "status"
	case AsyncNotify:
		return "notify"
	default:
		return "?"
	}
}

// AsyncClass is the closed enumeration of recognized MI async classes,
// plus AsyncUnsupported for forward compatibility with future GDB
// versions; see ClassLiteral on AsyncRecord for the preserved raw string.
type AsyncClass uint8

const (
	AsyncDownload AsyncClass = iota
	AsyncStopped
	AsyncRunning
	AsyncThreadGroupAdded
	AsyncThreadGroupRemoved
	AsyncThreadGroupStarted
	AsyncThreadGroupExited
	AsyncThreadCreated
	AsyncThreadExited
	AsyncThreadSelected
	AsyncLibraryLoaded
	AsyncLibraryUnloaded
	AsyncTraceframeChanged
	AsyncTsvCreated
	AsyncTsvModified
	AsyncTsvDeleted
	AsyncBreakpointCreated
	AsyncBreakpointModified
	AsyncBreakpointDeleted
	AsyncRecordStarted
	AsyncRecordStopped
	AsyncCmdParamChanged
	AsyncMemoryChanged
	AsyncUnsupported
)

// AsyncRecord is an out-of-band record triggered by `*`, `+`, or `=`.
// Token is documented as reserved by the MI manual and modern GDB omits
// it; the parser accepts it if present but never requires it.
type AsyncRecord struct {
	Token string
	Kind  AsyncKind
	Class AsyncClass
	// ClassLiteral is the raw class string as GDB sent it, preserved even
	// when Class == AsyncUnsupported (spec.md §9, Open Question 1).
	ClassLiteral string
	Results      []*Result
}

// StreamKind is the `~`/`@`/`&` prefix of a stream record.
type StreamKind uint8

const (
	StreamConsole StreamKind = iota
	StreamTarget
	StreamLog
)

func (k StreamKind) String() string {
	switch k {
	case StreamConsole:
		return "console"
	case StreamTarget:
		return "target"
	case StreamLog:
		return "log"
	default:
		return "?"
	}
}

// StreamRecord is an out-of-band record triggered by `~`, `@`, or `&`,
// carrying one already-unescaped c-string.
type StreamRecord struct {
	Kind StreamKind
	Text string
}

// ResultKind discriminates the three shapes a Result value can take.
type ResultKind uint8

const (
	CStringKind ResultKind = iota
	TupleKind
	ListKind
)

// Result is a key/value node. Key may be absent ("") per relaxation R1.
// For CStringKind, Str carries the already-unescaped payload; for
// TupleKind/ListKind, Children carries the ordered child sequence.
type Result struct {
	Key      string
	Kind     ResultKind
	Str      string
	Children []*Result
}
